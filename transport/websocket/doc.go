// Package websocket provides the real-time transport for the Tron duel
// server.
//
// The websocket package implements:
//   - Per-connection stable identifiers assigned at upgrade time
//   - Point-to-point sends to a connection ID
//   - Named broadcast groups with add/remove membership and
//     send-to-group-excluding-one-member
//   - Dispatch of inbound client events to the game service
//   - Connection lifecycle management with disconnect notification
//
// Architecture:
//
// The package uses a hub-and-spoke model where a central Hub owns the
// connection table and group membership. Each client connection is handled
// by a dedicated pair of goroutines managing reading, writing and cleanup,
// so events from one connection never block another's.
//
// Message Protocol:
//
// Every frame is a JSON envelope {type, data}:
//   - Incoming: findGame, directionChanged, gameFinished
//   - Outgoing: gameStarted, playerDirectionChanged, gameFinished, playerLeft
//
// Frames arrive in order per connection; the read pump dispatches them
// sequentially, so a single connection's events are processed in arrival
// order.
//
// Usage:
//
//	hub := websocket.NewHub(settings)
//	go hub.Run()
//
//	// on the /ws route:
//	hub.ServeWS(w, r, gameService)
package websocket
