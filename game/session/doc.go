// Package session stores the connection-to-session mapping for active games.
//
// The Registry is the single source of truth for "which connections are in
// this game". Registering a session makes every member visible in one
// observable step; evicting a session removes every member atomically and
// reports which connection IDs were actually removed, so a racing eviction
// of the same session sees nothing left and becomes a no-op.
//
// The registry guards its map with a single RWMutex, independent of the
// matchmaking queue's lock. Neither lock is ever held while calling into
// the other structure or into the transport.
package session
