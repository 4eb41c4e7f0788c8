package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"
)

var (
	ErrConfigNotFound = errors.New("configuration file not found")
	ErrInvalidConfig  = errors.New("invalid configuration")
)

// Settings are the tunable limits and timeouts of the server.
type Settings struct {
	// Board shapes accepted from findGame requests.
	MinBoardCols int `json:"min_board_cols"`
	MaxBoardCols int `json:"max_board_cols"`
	MinBoardRows int `json:"min_board_rows"`
	MaxBoardRows int `json:"max_board_rows"`

	// Player display name limit.
	MaxPlayerNameLength int `json:"max_player_name_length"`

	// WebSocket connection tuning.
	WriteWaitSeconds int   `json:"write_wait_seconds"`
	PongWaitSeconds  int   `json:"pong_wait_seconds"`
	MaxMessageSize   int64 `json:"max_message_size"`
}

// Default returns the settings used when no configuration file is provided.
func Default() *Settings {
	return &Settings{
		MinBoardCols:        5,
		MaxBoardCols:        100,
		MinBoardRows:        5,
		MaxBoardRows:        100,
		MaxPlayerNameLength: 32,
		WriteWaitSeconds:    10,
		PongWaitSeconds:     60,
		MaxMessageSize:      512,
	}
}

// Load reads settings from a JSON file. Fields absent from the file keep
// their default values.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	settings := Default()
	if err := json.Unmarshal(data, settings); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	if err := settings.Validate(); err != nil {
		return nil, err
	}

	return settings, nil
}

// Validate checks the settings for internal consistency.
func (s *Settings) Validate() error {
	if s.MinBoardCols <= 0 || s.MinBoardRows <= 0 {
		return fmt.Errorf("%w: board minimums must be positive", ErrInvalidConfig)
	}
	if s.MaxBoardCols < s.MinBoardCols {
		return fmt.Errorf("%w: max_board_cols (%d) below min_board_cols (%d)",
			ErrInvalidConfig, s.MaxBoardCols, s.MinBoardCols)
	}
	if s.MaxBoardRows < s.MinBoardRows {
		return fmt.Errorf("%w: max_board_rows (%d) below min_board_rows (%d)",
			ErrInvalidConfig, s.MaxBoardRows, s.MinBoardRows)
	}
	if s.MaxPlayerNameLength <= 0 {
		return fmt.Errorf("%w: max_player_name_length must be positive", ErrInvalidConfig)
	}
	if s.WriteWaitSeconds <= 0 || s.PongWaitSeconds <= 0 {
		return fmt.Errorf("%w: websocket timeouts must be positive", ErrInvalidConfig)
	}
	if s.MaxMessageSize <= 0 {
		return fmt.Errorf("%w: max_message_size must be positive", ErrInvalidConfig)
	}
	return nil
}

// WriteWait is the time allowed to write a message to a peer.
func (s *Settings) WriteWait() time.Duration {
	return time.Duration(s.WriteWaitSeconds) * time.Second
}

// PongWait is the time allowed to read the next pong message from a peer.
func (s *Settings) PongWait() time.Duration {
	return time.Duration(s.PongWaitSeconds) * time.Second
}

// PingPeriod is the interval between pings. Must be less than PongWait.
func (s *Settings) PingPeriod() time.Duration {
	return s.PongWait() * 9 / 10
}
