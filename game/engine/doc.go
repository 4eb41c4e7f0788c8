// Package engine provides the core value types for the Tron duel server.
//
// The engine package defines:
//   - Board dimensions used as the matchmaking key
//   - Positions and directions on the grid
//   - Player identity (connection ID plus display name)
//   - Deterministic spawn position computation
//
// Movement, collision detection and trail rendering are client-authoritative
// and intentionally absent from the server: the server only relays direction
// changes and game results between the members of a session.
//
// Wire Format:
//
// Directions travel as their numeric values (None=0, Left=1, Up=2, Right=3,
// Down=4), matching the browser client's direction enum. Positions serialize
// as {col, row} objects.
package engine
