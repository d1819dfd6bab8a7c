package server

import (
	"encoding/json"
	"fmt"

	"github.com/johnalai/Dream-Color/internal/fonts"
	"github.com/johnalai/Dream-Color/internal/imaging"
	"github.com/johnalai/Dream-Color/internal/segment"
	"github.com/johnalai/Dream-Color/internal/worksheet"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "annotate_regions").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Image inspection
	case "image_info":
		return s.handleImageInfo(args)
	case "image_dimensions":
		return s.handleImageDimensions(args)
	case "image_sample_color":
		return s.handleImageSampleColor(args)
	case "lineart_check":
		return s.handleLineArtCheck(args)

	// Page rendering
	case "annotate_regions":
		return s.handleAnnotateRegions(args)
	case "render_worksheet":
		return s.handleRenderWorksheet(args)
	case "list_fonts":
		return s.handleListFonts(args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// Panics are suppressed; on marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// === Image Inspection Handlers ===

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

func (s *Server) handleLineArtCheck(args json.RawMessage) (interface{}, error) {
	var a imagePathArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.CheckLineArt(img), nil
}

// === Page Rendering Handlers ===

type annotateRegionsArgs struct {
	Path            string `json:"path"`
	Stride          int    `json:"stride"`
	MinRegionPixels int    `json:"min_region_pixels"`
	BrightnessMin   int    `json:"brightness_min"`
	Seed            int64  `json:"seed"`
	PageWidth       int    `json:"page_width"`
}

// AnnotateRegionsResult is the annotate_regions tool payload.
type AnnotateRegionsResult struct {
	// RegionCount is the number of colorable regions that received labels.
	RegionCount int `json:"region_count"`

	// Regions lists the labeled regions (centroid, size, label).
	Regions []segment.Region `json:"regions,omitempty"`

	// Page is the annotated image. When RegionCount is zero the page still
	// carries the legend strip; annotation never fails the caller.
	Page *imaging.PageImageResult `json:"page"`
}

func (s *Server) handleAnnotateRegions(args json.RawMessage) (interface{}, error) {
	var a annotateRegionsArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	opts := segment.Options{
		Stride:          a.Stride,
		MinRegionPixels: a.MinRegionPixels,
		BrightnessMin:   uint8(a.BrightnessMin),
		Seed:            a.Seed,
	}

	regions := segment.FindRegions(img, opts)
	annotated := segment.AnnotateRegions(img, segment.DefaultLegend(), regions)

	if a.PageWidth > 0 {
		annotated, err = imaging.NormalizeToPage(annotated, a.PageWidth)
		if err != nil {
			return nil, err
		}
	}

	page, err := imaging.NewPageImageResult(annotated)
	if err != nil {
		return nil, err
	}
	return &AnnotateRegionsResult{
		RegionCount: len(regions),
		Regions:     regions,
		Page:        page,
	}, nil
}

type renderWorksheetArgs struct {
	Letters []string `json:"letters"`
	Font    string   `json:"font"`
}

// RenderWorksheetResult is the render_worksheet tool payload.
type RenderWorksheetResult struct {
	// Layout is the computed row geometry of the page.
	Layout worksheet.Layout `json:"layout"`

	// Page is the composed worksheet image.
	Page *imaging.PageImageResult `json:"page"`
}

func (s *Server) handleRenderWorksheet(args json.RawMessage) (interface{}, error) {
	var a renderWorksheetArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	spec := worksheet.Spec{Letters: a.Letters, Font: a.Font}
	img := worksheet.Render(spec)

	page, err := imaging.NewPageImageResult(img)
	if err != nil {
		return nil, err
	}
	return &RenderWorksheetResult{
		Layout: worksheet.ComputeLayout(a.Letters),
		Page:   page,
	}, nil
}

// ListFontsResult is the list_fonts tool payload.
type ListFontsResult struct {
	Fonts   []string `json:"fonts"`
	Default string   `json:"default"`
}

func (s *Server) handleListFonts(json.RawMessage) (interface{}, error) {
	return &ListFontsResult{
		Fonts:   fonts.Selectors(),
		Default: fonts.DefaultSelector,
	}, nil
}
