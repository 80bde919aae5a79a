package imaging

import (
	"path/filepath"
	"testing"
)

// savePNG writes a small pattern image and returns its path.
func savePNG(t *testing.T, name string, width, height int) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := FromImage(createPatternImage(width, height)).Save(path); err != nil {
		t.Fatalf("failed to write test image: %v", err)
	}
	return path
}

func TestImageCache_LoadCaches(t *testing.T) {
	path := savePNG(t, "a.png", 4, 4)
	cache := NewImageCache()

	img1, err := cache.Load(path)
	if err != nil {
		t.Fatalf("first Load failed: %v", err)
	}
	img2, err := cache.Load(path)
	if err != nil {
		t.Fatalf("second Load failed: %v", err)
	}

	if img1 != img2 {
		t.Error("second Load returned a different buffer; expected cache hit")
	}
}

func TestImageCache_Evict(t *testing.T) {
	path := savePNG(t, "a.png", 4, 4)
	cache := NewImageCache()

	img1, err := cache.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	cache.Evict(path)

	img2, err := cache.Load(path)
	if err != nil {
		t.Fatalf("Load after Evict failed: %v", err)
	}
	if img1 == img2 {
		t.Error("Load after Evict returned the cached buffer")
	}

	// Evicting an unknown path is a no-op.
	cache.Evict("never-loaded.png")
}

func TestImageCache_Clear(t *testing.T) {
	path := savePNG(t, "a.png", 4, 4)
	cache := NewImageCache()

	img1, _ := cache.Load(path)
	cache.Clear()
	img2, err := cache.Load(path)
	if err != nil {
		t.Fatalf("Load after Clear failed: %v", err)
	}
	if img1 == img2 {
		t.Error("Load after Clear returned the cached buffer")
	}
}

func TestImageCache_LoadError(t *testing.T) {
	cache := NewImageCache()
	if _, err := cache.Load("does-not-exist.png"); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadImageInfo(t *testing.T) {
	path := savePNG(t, "info.png", 6, 3)
	cache := NewImageCache()

	info, err := LoadImageInfo(cache, path)
	if err != nil {
		t.Fatalf("LoadImageInfo failed: %v", err)
	}

	if info.Width != 6 || info.Height != 3 {
		t.Errorf("dimensions: got %dx%d, want 6x3", info.Width, info.Height)
	}
	if info.Format != "png" {
		t.Errorf("Format: got %s, want png", info.Format)
	}
	if info.FileSizeBytes <= 0 {
		t.Errorf("FileSizeBytes: got %d, want > 0", info.FileSizeBytes)
	}
}

func TestGetDimensions(t *testing.T) {
	path := savePNG(t, "dims.png", 5, 7)
	cache := NewImageCache()

	dims, err := GetDimensions(cache, path)
	if err != nil {
		t.Fatalf("GetDimensions failed: %v", err)
	}
	if dims.Width != 5 || dims.Height != 7 {
		t.Errorf("dimensions: got %dx%d, want 5x7", dims.Width, dims.Height)
	}
}
