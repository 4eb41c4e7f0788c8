package service

import (
	"time"

	"github.com/tronweb/gameserver/game/engine"
)

// Event names used as the websocket message envelope type.
const (
	// Inbound (client -> server)
	EventFindGame         = "findGame"
	EventDirectionChanged = "directionChanged"
	EventGameFinished     = "gameFinished"

	// Outbound (server -> client)
	EventGameStarted            = "gameStarted"
	EventPlayerDirectionChanged = "playerDirectionChanged"
	EventPlayerLeft             = "playerLeft"
)

// FindGameRequest asks to be paired with an opponent on a board of the
// given shape.
type FindGameRequest struct {
	PlayerName string       `json:"playerName"`
	Board      engine.Board `json:"playerBoard"`
}

// DirectionChangedRequest reports the sender's new heading.
type DirectionChangedRequest struct {
	Direction engine.Direction `json:"direction"`
}

// GameStartedMessage is sent privately to each member of a freshly created
// session. Position is the receiver's own spawn point; Enemies lists every
// other member with their spawn point.
type GameStartedMessage struct {
	Position engine.Position `json:"position"`
	Enemies  []EnemyPlayer   `json:"enemies"`
}

// EnemyPlayer describes an opposing session member.
type EnemyPlayer struct {
	Name     string          `json:"name"`
	Position engine.Position `json:"position"`
}

// PlayerDirectionChangedMessage fans a direction change out to the other
// session members.
type PlayerDirectionChangedMessage struct {
	Direction  engine.Direction `json:"direction"`
	PlayerName string           `json:"playerName"`
}

// PlayerLeftMessage tells the remaining members that a peer disconnected
// before reporting a result.
type PlayerLeftMessage struct {
	PlayerName string `json:"playerName"`
}

// GameInfo summarizes an active session for monitoring surfaces.
type GameInfo struct {
	Group     string       `json:"group"`
	State     SessionState `json:"state"`
	Board     engine.Board `json:"board"`
	Players   []string     `json:"players"`
	CreatedAt time.Time    `json:"created_at"`
}

// ServerStats is a point-in-time snapshot of server load. Connections is
// filled in by the transport layer, which owns the connection table.
type ServerStats struct {
	ActiveGames    int `json:"active_games"`
	WaitingPlayers int `json:"waiting_players"`
	Connections    int `json:"connections,omitempty"`
}
