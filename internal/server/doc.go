// Package server exposes the field-tint engine as a line-delimited JSON-RPC
// tool server over a byte stream, typically stdin/stdout.
//
// The protocol is JSON-RPC 2.0 with one request or response per line. Three
// methods are supported:
//   - "tools/list" returns the tool catalog with JSON schemas
//   - "tools/call" executes a named tool with JSON arguments
//   - "ping" returns an empty result for liveness checks
//
// Tools cover image inspection (info, dimensions, color sampling), the
// adjustment pipeline (field_preview, pipeline_apply), and output analysis
// (color_diff_map, timeseries_stats). A session shares one image cache, so
// repeated calls against the same file do not re-read it from disk.
//
// # Error Handling
//
// Protocol-level failures use standard JSON-RPC codes (-32601 unknown
// method, -32602 invalid params); tool execution failures use -32000 with
// the underlying error text in the data field. Malformed request lines are
// logged and skipped so one bad client message does not end the session.
//
// # Logging
//
// When serving over stdio, stdout carries protocol traffic only; all
// logging goes to stderr via slog.
package server
