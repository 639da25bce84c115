// Package server implements the MCP (Model Context Protocol) server for the
// puzzle tools.
//
// This package provides a JSON-RPC 2.0 server that exposes tile-puzzle
// solving through the MCP protocol, so an MCP client can scramble, solve and
// inspect tile-grid images.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Diagnostics go to the injected logger, never to stdout.
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
//   - image_load: Load image and get metadata
//   - puzzle_solve: Reassemble a scrambled tile grid, report and save
//   - puzzle_shuffle: Scramble an image into a tile puzzle
//   - puzzle_tile_scores: Ranked border scores and neighbors of one tile
//   - puzzle_tile_image: One tile as PNG, optionally enlarged
//   - puzzle_link_graph: Neighbor links as Graphviz DOT or SVG
//   - puzzle_grid_overlay: Draw the tile grid and tile ids over an image
//
// Grid dimensions default to the server config when across or down is
// omitted.
//
// # Image Caching
//
// Images are cached by path and reused across tool calls for the lifetime of
// the server process.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: Additional error details (typically the Go error string)
package server
