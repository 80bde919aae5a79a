package server

// Tool represents a tool definition advertised by tools/list.
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// GetToolDefinitions returns all available tools.
func GetToolDefinitions() []Tool {
	return []Tool{
		// Basic image information
		{
			Name:        "image_info",
			Description: "Load an image file and return its dimensions, format, and file size.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Path to the image file",
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_dimensions",
			Description: "Get the width and height of an image file.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Path to the image file",
					},
				},
				"required": []string{"path"},
			},
		},

		// Color operations
		{
			Name:        "image_sample_color",
			Description: "Get the color at a pixel coordinate as hex, 8-bit RGB, and the engine's HSL working value.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Path to the image file",
					},
					"x": map[string]interface{}{
						"type":        "integer",
						"description": "X coordinate (0-based, from left)",
					},
					"y": map[string]interface{}{
						"type":        "integer",
						"description": "Y coordinate (0-based, from top)",
					},
				},
				"required": []string{"path", "x", "y"},
			},
		},

		// Field adjustment
		{
			Name:        "field_preview",
			Description: "Report each focus's influence weight, the composite total, and the dominant focus at one coordinate of a width x height grid, without processing an image.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"config_path": map[string]interface{}{
						"type":        "string",
						"description": "Optional JSON configuration file. Defaults to the built-in two-focus configuration",
					},
					"width": map[string]interface{}{
						"type":        "integer",
						"description": "Grid width in pixels",
					},
					"height": map[string]interface{}{
						"type":        "integer",
						"description": "Grid height in pixels",
					},
					"x": map[string]interface{}{
						"type":        "integer",
						"description": "X coordinate to preview (0-based)",
					},
					"y": map[string]interface{}{
						"type":        "integer",
						"description": "Y coordinate to preview (0-based)",
					},
				},
				"required": []string{"width", "height", "x", "y"},
			},
		},
		{
			Name:        "pipeline_apply",
			Description: "Run the full radial field adjustment pipeline: load an image, apply the configured focus-point HSL curves, and write the adjusted image.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"in_path": map[string]interface{}{
						"type":        "string",
						"description": "Path to the input image",
					},
					"out_path": map[string]interface{}{
						"type":        "string",
						"description": "Path to write the adjusted image; format chosen from the extension",
					},
					"config_path": map[string]interface{}{
						"type":        "string",
						"description": "Optional JSON configuration file. Defaults to the built-in two-focus configuration",
					},
				},
				"required": []string{"in_path", "out_path"},
			},
		},

		// Analysis
		{
			Name:        "color_diff_map",
			Description: "Compute the per-pixel Euclidean RGB difference between two images; optionally write a grayscale difference map scaled to the maximum difference.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path_a": map[string]interface{}{
						"type":        "string",
						"description": "Path to the first image",
					},
					"path_b": map[string]interface{}{
						"type":        "string",
						"description": "Path to the second image (same dimensions)",
					},
					"out_path": map[string]interface{}{
						"type":        "string",
						"description": "Optional path to write the grayscale difference map",
					},
				},
				"required": []string{"path_a", "path_b"},
			},
		},
		{
			Name:        "timeseries_stats",
			Description: "Compute per-pixel mean, standard deviation, and z-scores over a sequence of equally sized frames; returns per-feature z-score ranges.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"paths": map[string]interface{}{
						"type":        "array",
						"items":       map[string]interface{}{"type": "string"},
						"description": "Frame image paths, in time order",
					},
				},
				"required": []string{"paths"},
			},
		},
	}
}
