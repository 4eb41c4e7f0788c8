package engine

import "fmt"

// Direction represents a player's heading on the board.
type Direction int

const (
	None Direction = iota
	Left
	Up
	Right
	Down
)

// directionNames maps wire values to human-readable names for logs.
var directionNames = map[Direction]string{
	None:  "none",
	Left:  "left",
	Up:    "up",
	Right: "right",
	Down:  "down",
}

// String returns the lowercase name of the direction.
func (d Direction) String() string {
	if name, ok := directionNames[d]; ok {
		return name
	}
	return fmt.Sprintf("direction(%d)", int(d))
}

// Valid reports whether d is one of the known wire values.
func (d Direction) Valid() bool {
	_, ok := directionNames[d]
	return ok
}

// Board describes the playing field shape. It is the sole matchmaking key:
// two players pair only when both dimensions match exactly.
type Board struct {
	Cols int `json:"cols"`
	Rows int `json:"rows"`
}

// String formats the board as "colsxrows" for logs.
func (b Board) String() string {
	return fmt.Sprintf("%dx%d", b.Cols, b.Rows)
}

// Position represents a cell coordinate on the board.
type Position struct {
	Col int `json:"col"`
	Row int `json:"row"`
}

// Player identifies a connected participant. The connection ID is the
// transport-level identity and never leaves the server.
type Player struct {
	ConnectionID string `json:"-"`
	Name         string `json:"name"`
}
