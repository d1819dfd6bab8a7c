package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Image inspection
		{
			Name:        "image_info",
			Description: "Load an image file and return its dimensions, format, color depth, and file size.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
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
						"description": "Absolute path to the image file",
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_sample_color",
			Description: "Get the exact color value at a specific pixel coordinate, including whether it counts as colorable background.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
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
		{
			Name:        "lineart_check",
			Description: "Check whether an image honors the line-art input contract (background near pure white, outlines in dark ink). Images that fail should be regenerated, not segmented.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
				},
				"required": []string{"path"},
			},
		},

		// Page rendering
		{
			Name:        "annotate_regions",
			Description: "Segment enclosed colorable regions in a line-art image, stamp label numbers at region centroids, and append a color legend strip. Returns the annotated page as base64 PNG.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the line-art image file",
					},
					"stride": map[string]interface{}{
						"type":        "integer",
						"description": "Seed-grid spacing in pixels (default 4)",
						"default":     4,
					},
					"min_region_pixels": map[string]interface{}{
						"type":        "integer",
						"description": "Minimum pixel count for a region to be labeled (default 800)",
						"default":     800,
					},
					"brightness_min": map[string]interface{}{
						"type":        "integer",
						"description": "Per-channel brightness threshold for colorable pixels (default 200)",
						"default":     200,
					},
					"seed": map[string]interface{}{
						"type":        "integer",
						"description": "Label RNG seed for reproducible output (default 0 = time-seeded)",
						"default":     0,
					},
					"page_width": map[string]interface{}{
						"type":        "integer",
						"description": "Scale the annotated page to this width before encoding (default 0 = keep native size)",
						"default":     0,
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "render_worksheet",
			Description: "Compose a handwriting-practice page for a list of letters: ruled guide lines plus dashed tracing glyphs. Returns the page as base64 PNG.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"letters": map[string]interface{}{
						"type": "array",
						"items": map[string]interface{}{
							"type": "string",
						},
						"description": "Ordered list of single letters to practice",
					},
					"font": map[string]interface{}{
						"type":        "string",
						"description": "Font selector (see list_fonts). Default 'print'.",
						"default":     "print",
					},
				},
				"required": []string{"letters"},
			},
		},
		{
			Name:        "list_fonts",
			Description: "List the available worksheet font selectors.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": map[string]interface{}{},
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
