// Package validate checks inbound findGame payloads against the server's
// configured limits. It checks:
//   - Player name presence and length
//   - Board dimensions within the configured bounds
//
// Rejected requests never reach the matchmaking queue.
package validate

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tronweb/gameserver/game/config"
	"github.com/tronweb/gameserver/game/engine"
)

var (
	ErrEmptyPlayerName   = errors.New("player name is empty")
	ErrPlayerNameTooLong = errors.New("player name too long")
	ErrBoardOutOfBounds  = errors.New("board dimensions out of bounds")
)

// PlayerName checks a display name against the configured limit. Leading and
// trailing whitespace does not count toward presence.
func PlayerName(name string, settings *config.Settings) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyPlayerName
	}
	if len(name) > settings.MaxPlayerNameLength {
		return fmt.Errorf("%w: %d characters (max %d)",
			ErrPlayerNameTooLong, len(name), settings.MaxPlayerNameLength)
	}
	return nil
}

// Board checks that the requested board shape is within the configured
// bounds.
func Board(board engine.Board, settings *config.Settings) error {
	if board.Cols < settings.MinBoardCols || board.Cols > settings.MaxBoardCols {
		return fmt.Errorf("%w: %d cols (allowed %d-%d)",
			ErrBoardOutOfBounds, board.Cols, settings.MinBoardCols, settings.MaxBoardCols)
	}
	if board.Rows < settings.MinBoardRows || board.Rows > settings.MaxBoardRows {
		return fmt.Errorf("%w: %d rows (allowed %d-%d)",
			ErrBoardOutOfBounds, board.Rows, settings.MinBoardRows, settings.MaxBoardRows)
	}
	return nil
}
