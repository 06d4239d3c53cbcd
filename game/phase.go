package game

import (
	"errors"
	"fmt"
)

var ErrUnknownPhase = errors.New("unknown-phase")

// Phase is the round phase a client mirrors from the server.
type Phase int

const (
	// PhaseUnjoined is the state before any room was joined.
	PhaseUnjoined Phase = iota
	PhaseLobby
	PhaseSelecting
	PhaseJudging
	PhaseSummary
	PhaseGameOver
)

var phaseNames = map[Phase]string{
	PhaseUnjoined:  "UNJOINED",
	PhaseLobby:     "LOBBY",
	PhaseSelecting: "SELECTING",
	PhaseJudging:   "JUDGING",
	PhaseSummary:   "SUMMARY",
	PhaseGameOver:  "GAME_OVER",
}

func (p Phase) String() string {
	if name, ok := phaseNames[p]; ok {
		return name
	}
	return fmt.Sprintf("Phase(%d)", int(p))
}

// ParsePhase reads the phase field of a game update. UNJOINED is never sent by
// the server and is rejected like any other unknown value.
func ParsePhase(s string) (Phase, error) {
	switch s {
	case "LOBBY":
		return PhaseLobby, nil
	case "SELECTING":
		return PhaseSelecting, nil
	case "JUDGING":
		return PhaseJudging, nil
	case "SUMMARY":
		return PhaseSummary, nil
	case "GAME_OVER":
		return PhaseGameOver, nil
	}
	return PhaseUnjoined, fmt.Errorf("%w: %q", ErrUnknownPhase, s)
}
