package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/tronweb/gameserver/game/engine"
	"github.com/tronweb/gameserver/game/matchmaking"
)

// SessionState tracks the lifecycle of a game session. Sessions are created
// directly in the playing state; there is no pending state because a session
// does not exist until two players are paired.
type SessionState string

const (
	StatePlaying  SessionState = "playing"
	StateFinished SessionState = "finished"
)

// Session represents an active paired game. The group name doubles as the
// transport broadcast group identity. Players are stored in discovery order:
// the joiner that completed the pair first, then the player that was waiting.
type Session struct {
	Group     string
	State     SessionState
	CreatedAt time.Time
	Players   []engine.Player
	Board     engine.Board
}

// PlayerName resolves the display name of a session member by connection ID.
func (s *Session) PlayerName(connectionID string) (string, bool) {
	for _, p := range s.Players {
		if p.ConnectionID == connectionID {
			return p.Name, true
		}
	}
	return "", false
}

// GameService defines all operations the transports drive.
type GameService interface {
	// Client events
	FindGame(ctx context.Context, connectionID string, req FindGameRequest) error
	DirectionChanged(ctx context.Context, connectionID string, req DirectionChangedRequest) error
	GameFinished(ctx context.Context, connectionID string, payload json.RawMessage) error
	Disconnected(ctx context.Context, connectionID string) error

	// Monitoring
	ListGames(ctx context.Context) []*GameInfo
	Stats(ctx context.Context) *ServerStats
}

// SessionRegistry maps connection IDs to their active session.
type SessionRegistry interface {
	// Lookup returns the session the connection belongs to, if any.
	Lookup(connectionID string) (*Session, bool)

	// Register makes every member of the session visible in one step.
	Register(s *Session)

	// Evict removes every member of the session and returns the connection
	// IDs actually removed. A second eviction of the same session removes
	// nothing and returns an empty result.
	Evict(s *Session) []string

	// Sessions lists the distinct active sessions.
	Sessions() []*Session
}

// PendingQueue is the matchmaking queue contract the coordinator relies on.
type PendingQueue interface {
	TryFind(game matchmaking.PendingGame) (matchmaking.PendingGame, bool)
	Remove(connectionID string) bool
	Len() int
}

// Broadcaster abstracts the transport's send and group-membership
// primitives. The websocket hub implements it.
type Broadcaster interface {
	SendToConnection(connectionID, event string, data any) error
	AddToGroup(group, connectionID string)
	RemoveFromGroup(group, connectionID string)
	BroadcastToGroupExcept(group, exceptConnectionID, event string, data any) error
}
