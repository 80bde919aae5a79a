package server

import (
	"encoding/json"
	"fmt"

	"github.com/ironsheep/fieldtint/internal/analysis"
	"github.com/ironsheep/fieldtint/internal/curve"
	"github.com/ironsheep/fieldtint/internal/field"
	"github.com/ironsheep/fieldtint/internal/imaging"
	"github.com/ironsheep/fieldtint/internal/pipeline"
)

// ToolCallParams represents the parameters for a tools/call request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "pipeline_apply", "color_diff_map").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified
// tool. Tool execution errors return a JSON-RPC error response with code
// -32000; the result of a successful call is the tool's JSON result object.
func (s *Server) handleToolsCall(req *Request) *Response {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &Response{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result:  result,
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
//
// Each tool handler:
//  1. Unmarshals arguments from JSON
//  2. Applies default values for optional parameters
//  3. Loads images from the session cache as needed
//  4. Calls the appropriate imaging/field/pipeline/analysis function
//  5. Returns the result or error
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Basic image information
	case "image_info":
		return s.handleImageInfo(args)
	case "image_dimensions":
		return s.handleImageDimensions(args)

	// Color operations
	case "image_sample_color":
		return s.handleImageSampleColor(args)

	// Field adjustment
	case "field_preview":
		return s.handleFieldPreview(args)
	case "pipeline_apply":
		return s.handlePipelineApply(args)

	// Analysis
	case "color_diff_map":
		return s.handleColorDiffMap(args)
	case "timeseries_stats":
		return s.handleTimeSeriesStats(args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *Response {
	return &Response{
		JSONRPC: "2.0",
		ID:      id,
		Error: &Error{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// loadConfig resolves the configuration for a tool call: the file at path
// when given, otherwise the built-in two-focus default.
func loadConfig(path string) (curve.Config, error) {
	if path == "" {
		return curve.DefaultConfig(), nil
	}
	return curve.LoadConfig(path)
}

// === Basic Image Information Handlers ===

type imagePathArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageInfo(args json.RawMessage) (interface{}, error) {
	var a imagePathArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.LoadImageInfo(s.cache, a.Path)
}

func (s *Server) handleImageDimensions(args json.RawMessage) (interface{}, error) {
	var a imagePathArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.GetDimensions(s.cache, a.Path)
}

// === Color Operation Handlers ===

type imageSampleColorArgs struct {
	Path string `json:"path"`
	X    int    `json:"x"`
	Y    int    `json:"y"`
}

func (s *Server) handleImageSampleColor(args json.RawMessage) (interface{}, error) {
	var a imageSampleColorArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.SampleColor(img, a.X, a.Y)
}

// === Field Adjustment Handlers ===

type fieldPreviewArgs struct {
	ConfigPath string `json:"config_path,omitempty"`
	Width      int    `json:"width"`
	Height     int    `json:"height"`
	X          int    `json:"x"`
	Y          int    `json:"y"`
}

// FocusWeight is one focus's influence at a previewed coordinate.
type FocusWeight struct {
	Name   string  `json:"name"`
	Weight float64 `json:"weight"`
}

// FieldPreviewResult reports the composite field at a single coordinate.
type FieldPreviewResult struct {
	Weights  []FocusWeight `json:"weights"`
	Total    float64       `json:"total"`
	Dominant string        `json:"dominant"`
}

func (s *Server) handleFieldPreview(args json.RawMessage) (interface{}, error) {
	var a fieldPreviewArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Width <= 0 || a.Height <= 0 {
		return nil, fmt.Errorf("width and height must be > 0, got %dx%d", a.Width, a.Height)
	}
	if a.X < 0 || a.X >= a.Width || a.Y < 0 || a.Y >= a.Height {
		return nil, fmt.Errorf("coordinates (%d,%d) outside %dx%d grid", a.X, a.Y, a.Width, a.Height)
	}

	cfg, err := loadConfig(a.ConfigPath)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	fields := make([]*field.Field, len(cfg.Foci))
	for i, f := range cfg.Foci {
		fields[i] = field.Compute(f, a.Width, a.Height)
	}
	comp, err := field.Compose(fields)
	if err != nil {
		return nil, err
	}

	result := &FieldPreviewResult{
		Total:    comp.TotalAt(a.X, a.Y),
		Dominant: cfg.Foci[comp.DominantAt(a.X, a.Y)].Name,
	}
	for i, f := range fields {
		result.Weights = append(result.Weights, FocusWeight{
			Name:   cfg.Foci[i].Name,
			Weight: f.At(a.X, a.Y),
		})
	}
	return result, nil
}

type pipelineApplyArgs struct {
	InPath     string `json:"in_path"`
	OutPath    string `json:"out_path"`
	ConfigPath string `json:"config_path,omitempty"`
}

func (s *Server) handlePipelineApply(args json.RawMessage) (interface{}, error) {
	var a pipelineApplyArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	cfg, err := loadConfig(a.ConfigPath)
	if err != nil {
		return nil, err
	}
	return pipeline.Run(a.InPath, a.OutPath, cfg)
}

// === Analysis Handlers ===

type colorDiffMapArgs struct {
	PathA   string `json:"path_a"`
	PathB   string `json:"path_b"`
	OutPath string `json:"out_path,omitempty"`
}

// ColorDiffResult reports the aggregate difference plus where the optional
// grayscale map was written.
type ColorDiffResult struct {
	analysis.DiffSummary
	OutPath string `json:"out_path,omitempty"`
}

func (s *Server) handleColorDiffMap(args json.RawMessage) (interface{}, error) {
	var a colorDiffMapArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	imgA, err := s.cache.Load(a.PathA)
	if err != nil {
		return nil, err
	}
	imgB, err := s.cache.Load(a.PathB)
	if err != nil {
		return nil, err
	}

	m, err := analysis.ColorDifference(imgA, imgB)
	if err != nil {
		return nil, err
	}

	result := &ColorDiffResult{DiffSummary: m.Summary()}
	if a.OutPath != "" {
		if err := m.SaveGrayscale(a.OutPath); err != nil {
			return nil, err
		}
		result.OutPath = a.OutPath
	}
	return result, nil
}

type timeSeriesStatsArgs struct {
	Paths []string `json:"paths"`
}

// FeatureRange is the z-score range of one extracted feature.
type FeatureRange struct {
	Feature string  `json:"feature"`
	MinZ    float64 `json:"min_z"`
	MaxZ    float64 `json:"max_z"`
}

// TimeSeriesResult summarizes per-pixel time statistics for transport; the
// full per-pixel arrays stay in process.
type TimeSeriesResult struct {
	Width    int            `json:"width"`
	Height   int            `json:"height"`
	Frames   int            `json:"frames"`
	Features []FeatureRange `json:"features"`
}

var featureNames = [analysis.FeaturesPerPixel]string{"r", "g", "b", "magnitude"}

func (s *Server) handleTimeSeriesStats(args json.RawMessage) (interface{}, error) {
	var a timeSeriesStatsArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	frames := make([]*imaging.Image, 0, len(a.Paths))
	for _, p := range a.Paths {
		img, err := s.cache.Load(p)
		if err != nil {
			return nil, err
		}
		frames = append(frames, img)
	}

	stats, err := analysis.TimeSeries(frames)
	if err != nil {
		return nil, err
	}

	result := &TimeSeriesResult{
		Width:  stats.Width,
		Height: stats.Height,
		Frames: stats.Frames,
	}
	for c := 0; c < analysis.FeaturesPerPixel; c++ {
		fr := FeatureRange{Feature: featureNames[c]}
		first := true
		for j := c; j < len(stats.Z); j += analysis.FeaturesPerPixel {
			z := stats.Z[j]
			if first || z < fr.MinZ {
				fr.MinZ = z
			}
			if first || z > fr.MaxZ {
				fr.MaxZ = z
			}
			first = false
		}
		result.Features = append(result.Features, fr)
	}
	return result, nil
}
