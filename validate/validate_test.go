package validate

import (
	"errors"
	"strings"
	"testing"

	"github.com/tronweb/gameserver/game/config"
	"github.com/tronweb/gameserver/game/engine"
)

func TestPlayerName(t *testing.T) {
	settings := config.Default()

	t.Run("valid name", func(t *testing.T) {
		if err := PlayerName("Alice", settings); err != nil {
			t.Errorf("Expected valid name, got %v", err)
		}
	})

	t.Run("empty name", func(t *testing.T) {
		if err := PlayerName("", settings); !errors.Is(err, ErrEmptyPlayerName) {
			t.Errorf("Expected ErrEmptyPlayerName, got %v", err)
		}
	})

	t.Run("whitespace-only name", func(t *testing.T) {
		if err := PlayerName("   ", settings); !errors.Is(err, ErrEmptyPlayerName) {
			t.Errorf("Expected ErrEmptyPlayerName, got %v", err)
		}
	})

	t.Run("name at limit", func(t *testing.T) {
		name := strings.Repeat("a", settings.MaxPlayerNameLength)
		if err := PlayerName(name, settings); err != nil {
			t.Errorf("Expected name at limit to pass, got %v", err)
		}
	})

	t.Run("name over limit", func(t *testing.T) {
		name := strings.Repeat("a", settings.MaxPlayerNameLength+1)
		if err := PlayerName(name, settings); !errors.Is(err, ErrPlayerNameTooLong) {
			t.Errorf("Expected ErrPlayerNameTooLong, got %v", err)
		}
	})
}

func TestBoard(t *testing.T) {
	settings := config.Default()

	cases := []struct {
		name  string
		board engine.Board
		valid bool
	}{
		{"typical board", engine.Board{Cols: 25, Rows: 25}, true},
		{"minimum board", engine.Board{Cols: settings.MinBoardCols, Rows: settings.MinBoardRows}, true},
		{"maximum board", engine.Board{Cols: settings.MaxBoardCols, Rows: settings.MaxBoardRows}, true},
		{"zero board", engine.Board{}, false},
		{"cols too small", engine.Board{Cols: settings.MinBoardCols - 1, Rows: 25}, false},
		{"cols too large", engine.Board{Cols: settings.MaxBoardCols + 1, Rows: 25}, false},
		{"rows too small", engine.Board{Cols: 25, Rows: settings.MinBoardRows - 1}, false},
		{"rows too large", engine.Board{Cols: 25, Rows: settings.MaxBoardRows + 1}, false},
		{"negative dimensions", engine.Board{Cols: -5, Rows: -5}, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := Board(c.board, settings)
			if c.valid && err != nil {
				t.Errorf("Expected %v to be valid, got %v", c.board, err)
			}
			if !c.valid && !errors.Is(err, ErrBoardOutOfBounds) {
				t.Errorf("Expected ErrBoardOutOfBounds for %v, got %v", c.board, err)
			}
		})
	}
}
