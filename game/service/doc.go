// Package service provides the coordination layer for the Tron duel server.
//
// The service package implements:
//   - Matchmaking: pairing join requests by board shape
//   - Session creation and teardown
//   - Relaying direction changes and game results between session members
//   - Disconnect cleanup for waiting and in-game players
//
// Core Interfaces:
//
// GameService is the main interface driven by the websocket transport.
// SessionRegistry maps connection IDs to their active session. Broadcaster
// abstracts the transport's point-to-point and group send primitives so the
// coordinator never touches websocket details directly.
//
// Architecture:
//
// The service layer sits between the transport layer (WebSocket/HTTP/MCP)
// and the in-memory matchmaking and registry state. The pairing decision and
// the registry mutations each run inside their own short critical section;
// every transport send happens outside any lock.
//
// Usage:
//
//	queue := matchmaking.NewQueue()
//	registry := session.NewRegistry()
//	svc := service.NewGameService(queue, registry, hub, limits)
//
//	// A websocket client asks for a game:
//	err := svc.FindGame(ctx, connID, service.FindGameRequest{
//		PlayerName: "Alice",
//		Board:      engine.Board{Cols: 25, Rows: 25},
//	})
//
// Failure Semantics:
//
// Stale events (a direction change or finish from a connection with no
// session) and double-finishes are silent no-ops. Transport send errors
// propagate to the caller and are not retried here.
package service
