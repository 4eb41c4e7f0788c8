// Package matchmaking pairs waiting players into two-person games.
//
// The Queue holds at most one pending entry per distinct board shape. A join
// for a shape that already has a waiting entry removes and returns that entry
// so the caller can start a game; otherwise the join is stored and waits for
// the next player requesting the same shape.
//
// The pair-or-enqueue decision is a single critical section, so two
// concurrent joins for the same shape can never both pair against the same
// stored entry, and no entry is ever handed to more than one caller.
//
// There is no timeout on stored entries: a player requesting a board shape
// nobody else wants waits until a match arrives, the connection drops, or
// the process restarts.
package matchmaking
