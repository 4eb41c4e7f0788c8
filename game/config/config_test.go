package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	settings := Default()

	if err := settings.Validate(); err != nil {
		t.Fatalf("Default settings should validate: %v", err)
	}
	if settings.MaxBoardCols < settings.MinBoardCols {
		t.Error("Default board column limits inverted")
	}
	if settings.PingPeriod() >= settings.PongWait() {
		t.Error("Ping period must be shorter than pong wait")
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	t.Run("overrides merge with defaults", func(t *testing.T) {
		path := filepath.Join(dir, "settings.json")
		content := `{"max_board_cols": 50, "max_player_name_length": 16}`
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}

		settings, err := Load(path)
		if err != nil {
			t.Fatalf("Failed to load settings: %v", err)
		}

		if settings.MaxBoardCols != 50 {
			t.Errorf("Expected max_board_cols 50, got %d", settings.MaxBoardCols)
		}
		if settings.MaxPlayerNameLength != 16 {
			t.Errorf("Expected max_player_name_length 16, got %d", settings.MaxPlayerNameLength)
		}
		// Untouched field keeps its default.
		if settings.MinBoardCols != Default().MinBoardCols {
			t.Errorf("Expected default min_board_cols, got %d", settings.MinBoardCols)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(dir, "no-such-file.json"))
		if !errors.Is(err, ErrConfigNotFound) {
			t.Errorf("Expected ErrConfigNotFound, got %v", err)
		}
	})

	t.Run("invalid JSON", func(t *testing.T) {
		path := filepath.Join(dir, "broken.json")
		if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
			t.Fatal(err)
		}

		_, err := Load(path)
		if !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("Expected ErrInvalidConfig, got %v", err)
		}
	})

	t.Run("inconsistent limits rejected", func(t *testing.T) {
		path := filepath.Join(dir, "inconsistent.json")
		content := `{"min_board_cols": 50, "max_board_cols": 10}`
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}

		_, err := Load(path)
		if !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("Expected ErrInvalidConfig, got %v", err)
		}
	})
}

func TestDurations(t *testing.T) {
	settings := Default()
	settings.WriteWaitSeconds = 5
	settings.PongWaitSeconds = 40

	if settings.WriteWait() != 5*time.Second {
		t.Errorf("Expected 5s write wait, got %v", settings.WriteWait())
	}
	if settings.PongWait() != 40*time.Second {
		t.Errorf("Expected 40s pong wait, got %v", settings.PongWait())
	}
	if settings.PingPeriod() != 36*time.Second {
		t.Errorf("Expected 36s ping period, got %v", settings.PingPeriod())
	}
}
