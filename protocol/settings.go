package protocol

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrRoomNameRequired = errors.New("room-name-required")
	ErrNoDeckSelected   = errors.New("no-deck-selected")
	ErrInvalidTimeout   = errors.New("invalid-timeout")
	ErrInvalidSettings  = errors.New("invalid-settings")
)

const (
	MinPlayers   = 2
	MaxPlayers   = 20
	MinHandSize  = 1
	MaxHandSize  = 20
	MinWinScore  = 1
	MaxWinScore  = 50
	MaxTimeout   = 600
	MaxNameRunes = 32
)

// RoomSettings configures a new room. A nil Password makes the room open and
// a nil Timeout makes every round wait for all players.
type RoomSettings struct {
	Name           string   `json:"name"`
	Password       *string  `json:"password"`
	MaxPlayers     int      `json:"max_players"`
	HandSize       int      `json:"hand_size"`
	WinScore       int      `json:"win_score"`
	AnyoneCanStart bool     `json:"anyone_can_start"`
	Timeout        *int     `json:"timeout"`
	Decks          []string `json:"decks"`
}

func DefaultRoomSettings(name string, decks []string) RoomSettings {
	return RoomSettings{
		Name:       name,
		MaxPlayers: 8,
		HandSize:   10,
		WinScore:   5,
		Decks:      decks,
	}
}

// Validate checks the settings before they are sent. The first problem found
// is returned.
func (s RoomSettings) Validate() error {
	name := strings.TrimSpace(s.Name)
	switch {
	case name == "":
		return ErrRoomNameRequired
	case len([]rune(name)) > MaxNameRunes:
		return fmt.Errorf("%w: name cannot exceed %d characters", ErrInvalidSettings, MaxNameRunes)
	case len(s.Decks) == 0:
		return ErrNoDeckSelected
	case s.Timeout != nil && *s.Timeout <= 0:
		return fmt.Errorf("%w: timeout must be positive", ErrInvalidTimeout)
	case s.Timeout != nil && *s.Timeout > MaxTimeout:
		return fmt.Errorf("%w: timeout cannot exceed %d seconds", ErrInvalidTimeout, MaxTimeout)
	case s.MaxPlayers < MinPlayers:
		return fmt.Errorf("%w: max_players must be at least %d", ErrInvalidSettings, MinPlayers)
	case s.MaxPlayers > MaxPlayers:
		return fmt.Errorf("%w: max_players cannot exceed %d", ErrInvalidSettings, MaxPlayers)
	case s.HandSize < MinHandSize:
		return fmt.Errorf("%w: hand_size must be at least %d", ErrInvalidSettings, MinHandSize)
	case s.HandSize > MaxHandSize:
		return fmt.Errorf("%w: hand_size cannot exceed %d", ErrInvalidSettings, MaxHandSize)
	case s.WinScore < MinWinScore:
		return fmt.Errorf("%w: win_score must be at least %d", ErrInvalidSettings, MinWinScore)
	case s.WinScore > MaxWinScore:
		return fmt.Errorf("%w: win_score cannot exceed %d", ErrInvalidSettings, MaxWinScore)
	}
	for _, d := range s.Decks {
		if strings.TrimSpace(d) == "" {
			return ErrNoDeckSelected
		}
	}
	return nil
}

// ErrorKey maps a validation error to its translation key.
func ErrorKey(err error) string {
	switch {
	case errors.Is(err, ErrRoomNameRequired):
		return "ERR_ROOM_NAME_REQUIRED"
	case errors.Is(err, ErrNoDeckSelected):
		return "ERR_NO_DECK_SELECTED"
	case errors.Is(err, ErrInvalidTimeout):
		return "ERR_INVALID_TIMEOUT"
	default:
		return "ERR_INVALID_SETTINGS"
	}
}
