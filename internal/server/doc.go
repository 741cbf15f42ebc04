// Package server implements the MCP (Model Context Protocol) server for seam carving tools.
//
// This package provides a JSON-RPC 2.0 server that exposes content-aware image
// resizing through the MCP protocol, so an MCP client can inspect energy, preview
// seams, and carve images without leaving the conversation.
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
// Basic Image Information:
//   - image_load: Load image and report how many seams can be removed
//   - image_dimensions: Get width and height
//   - image_sample_color: Get color at pixel
//   - image_crop: Extract rectangular region
//
// Energy:
//   - seam_energy: Dual-gradient energy of one pixel
//   - seam_energy_map: Energy of every pixel as a grayscale image
//
// Seams:
//   - seam_find: Lowest-energy vertical or horizontal seam
//   - seam_overlay: Draw the next N seams over the original
//   - seam_carve: Remove seams by count or down to a target size
//
// The seam tools accept blur_radius. When it is positive, seams are chosen on a
// Gaussian-blurred copy but pixels are removed from the original.
//
// # Image Caching
//
// Decoded source images are cached by path for the lifetime of the process.
// Every tool call builds its own carver from the cached image, so carving never
// changes what later calls see. Writing a result with output_path evicts that
// path from the cache.
//
// # Cancellation
//
// Serve passes its context to tool calls. Carving checks it between seams and
// stops with the context's error.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure), -32602 (malformed params) or -32601 (unknown method)
//   - message: Human-readable error description
//   - data: The Go error string
//
// # Usage
//
//	cfg, _ := config.FromEnv()
//	srv := server.New(server.WithLogger(logger.FromEnv(cfg.LogLevel)), server.WithConfig(cfg))
//	if err := srv.Run(); err != nil {
//	    os.Exit(1)
//	}
package server
