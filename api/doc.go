// Package api provides HTTP REST API handlers for the Tron duel server.
//
// The api package implements:
//   - Monitoring endpoints for active games and server load
//   - Health check endpoint
//   - WebSocket upgrade route wired to the game service
//   - Static file serving for the browser game client
//
// Endpoints:
//
//	GET /api/games         - list active game sessions (order, limit params)
//	GET /api/games/{group} - single game session by group ID
//	GET /api/stats         - active games, waiting players, open connections
//	GET /api/health        - health check
//	/ws                    - websocket upgrade
//	/                      - static game client
//
// The API is read-only: gameplay happens exclusively over the websocket
// transport, so the REST surface only observes state.
package api
