package game

import (
	"slices"

	"magecards/protocol"
)

// Snapshot is the client's copy of one GAME_UPDATE. A new update replaces it
// wholesale.
type Snapshot struct {
	Phase        Phase
	BlackCard    *protocol.BlackCard
	Hand         []protocol.HandCard
	IsCzar       bool
	HasSubmitted bool
	Submissions  []protocol.Submission
	Ready        protocol.ReadyStatus
	AmIReady     bool
	Players      []protocol.RoomPlayer
	Winner       *string
	CanStartGame bool
	RoomName     string
}

func SnapshotFrom(u protocol.GameUpdate) (Snapshot, error) {
	phase, err := ParsePhase(u.Phase)
	if err != nil {
		return Snapshot{}, err
	}
	snap := Snapshot{
		Phase:        phase,
		Hand:         orEmpty(u.Hand),
		IsCzar:       u.IsCzar,
		HasSubmitted: u.HasSubmitted,
		Submissions:  orEmpty(u.Submissions),
		Ready:        u.ReadyStatus,
		AmIReady:     u.AmIReady,
		Players:      orEmpty(u.PlayersList),
		CanStartGame: u.CanStartGame,
		RoomName:     u.RoomName,
	}
	if u.BlackCard != nil {
		bc := *u.BlackCard
		bc.Pick = max(1, bc.Pick)
		snap.BlackCard = &bc
	}
	if u.Winner != nil {
		w := *u.Winner
		snap.Winner = &w
	}
	return snap, nil
}

// Participating reports whether this client takes part in the running round.
// Players who joined mid-round hold no hand and are not the Czar.
func (s Snapshot) Participating() bool {
	return len(s.Hand) > 0 || s.IsCzar
}

// RequiredPick is the pick count of the current black card, 1 without one.
func (s Snapshot) RequiredPick() int {
	if s.BlackCard == nil {
		return 1
	}
	return s.BlackCard.Pick
}

func (s Snapshot) HandIDs() []string {
	ids := make([]string, 0, len(s.Hand))
	for _, c := range s.Hand {
		ids = append(ids, c.ID)
	}
	return ids
}

// selecting is true when the local selection machine is live for s.
func (s Snapshot) selecting() bool {
	return s.Phase == PhaseSelecting && !s.IsCzar && !s.HasSubmitted && len(s.Hand) > 0
}

// sameRound reports whether s and other show the same black card.
func (s Snapshot) sameRound(other Snapshot) bool {
	if s.BlackCard == nil || other.BlackCard == nil {
		return false
	}
	return *s.BlackCard == *other.BlackCard
}

func (s Snapshot) hasSubmission(id int) bool {
	return slices.ContainsFunc(s.Submissions, func(sub protocol.Submission) bool {
		return sub.ID == id
	})
}

func orEmpty[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return slices.Clone(s)
}
