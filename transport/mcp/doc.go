// Package mcp provides Model Context Protocol server implementation for the
// Tron duel server.
//
// The mcp package implements:
//   - MCP server for AI agent integration
//   - Monitoring tools over the REST API (list_games, game_details,
//     server_stats)
//   - A protocol_reference tool documenting the websocket protocol for bot
//     authors
//
// Architecture:
//
// The package is a thin proxy: every tool call is translated into a REST API
// request against the running server, so MCP observes exactly what the HTTP
// API exposes. Gameplay is not reachable over MCP; duels happen exclusively
// on the websocket transport.
//
// Usage:
//
//	client := mcp.NewClient("http://localhost:8080")
//	httpServer := server.NewStreamableHTTPServer(client.GetMCPServer())
package mcp
