// Package server implements the MCP (Model Context Protocol) server for
// activity-book page rendering.
//
// This package provides a JSON-RPC 2.0 server that exposes the Dream-Color
// raster pipeline through the MCP protocol: validating generated line art,
// annotating colorable regions for color-by-number pages, and composing
// handwriting-practice worksheets.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
// Image inspection:
//   - image_info: Load image and get metadata
//   - image_dimensions: Get width and height
//   - image_sample_color: Get color at pixel
//   - lineart_check: Validate the line-art input contract
//
// Page rendering:
//   - annotate_regions: Segment colorable regions and render labels + legend
//   - render_worksheet: Compose a handwriting-practice page
//   - list_fonts: Enumerate worksheet font selectors
//
// # Image Caching
//
// The server maintains an in-memory cache of loaded images. Images are
// cached by path and reused across multiple tool calls, avoiding redundant
// disk I/O. The cache persists for the lifetime of the server process.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: Additional error details (typically the Go error string)
//
// Content-level degradation is not an error: an image with no qualifying
// regions still yields a page, per the best-effort annotation contract.
//
// # Usage
//
// The server is typically started by an MCP client:
//
//	srv := server.New()
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
