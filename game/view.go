package game

import (
	"fmt"

	"magecards/protocol"
)

// View is what a client shows for its current state. The set of views is
// closed; renderers switch over the concrete types below.
type View interface {
	isView()
}

// BrowserView is shown outside of any room: login, room list and lobby chat.
type BrowserView struct {
	Authenticated bool
	Nick          string
	Rooms         []protocol.RoomSummary
	Players       []protocol.LobbyPlayer
	Decks         []string
}

type LobbyView struct {
	RoomName string
	Players  []protocol.RoomPlayer
	CanStart bool
}

// WaitingView is shown to a player who joined mid-round.
type WaitingView struct {
	RoomName  string
	BlackCard string
	Players   []protocol.RoomPlayer
}

type CzarWaitView struct {
	BlackCard string
	Players   []protocol.RoomPlayer
}

type SubmittedView struct {
	BlackCard string
	Players   []protocol.RoomPlayer
}

type HandCardView struct {
	ID      string
	Text    string
	Ordinal int
}

type HandView struct {
	BlackCard string
	Required  int
	Cards     []HandCardView
	CanSubmit bool
	Players   []protocol.RoomPlayer
}

// AnonymousSubmission carries no author on purpose.
type AnonymousSubmission struct {
	ID       int
	FullText string
}

type JudgingView struct {
	BlackCard   string
	Submissions []AnonymousSubmission
	IsCzar      bool
	CanPick     bool
	Players     []protocol.RoomPlayer
}

type SummaryView struct {
	// BlackCard holds the winning full text when a winner is marked.
	BlackCard     string
	WinningAuthor string
	Submissions   []protocol.Submission
	Ready         protocol.ReadyStatus
	ReadyEnabled  bool
	Players       []protocol.RoomPlayer
}

type GameOverView struct {
	Winner  string
	Players []protocol.RoomPlayer
}

func (BrowserView) isView()   {}
func (LobbyView) isView()     {}
func (WaitingView) isView()   {}
func (CzarWaitView) isView()  {}
func (SubmittedView) isView() {}
func (HandView) isView()      {}
func (JudgingView) isView()   {}
func (SummaryView) isView()   {}
func (GameOverView) isView()  {}

// ViewFor projects s onto the view its phase calls for.
func ViewFor(s State) (View, error) {
	if s.Room == "" {
		return BrowserView{
			Authenticated: s.Authenticated,
			Nick:          s.Nick,
			Rooms:         s.Rooms,
			Players:       s.LobbyPlayers,
			Decks:         s.Decks,
		}, nil
	}
	if s.Snapshot == nil {
		return LobbyView{RoomName: s.Room, Players: []protocol.RoomPlayer{}}, nil
	}

	snap := *s.Snapshot
	switch snap.Phase {
	case PhaseUnjoined, PhaseLobby:
		return LobbyView{RoomName: s.Room, Players: snap.Players, CanStart: snap.CanStartGame}, nil
	case PhaseSelecting:
		return selectingView(s, snap), nil
	case PhaseJudging:
		return judgingView(s, snap), nil
	case PhaseSummary:
		return summaryView(s, snap), nil
	case PhaseGameOver:
		winner := ""
		if snap.Winner != nil {
			winner = *snap.Winner
		}
		return GameOverView{Winner: winner, Players: snap.Players}, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownPhase, snap.Phase)
}

func selectingView(s State, snap Snapshot) View {
	text := blackCardText(snap)
	switch {
	case !snap.Participating():
		return WaitingView{RoomName: s.Room, BlackCard: text, Players: snap.Players}
	case snap.IsCzar:
		return CzarWaitView{BlackCard: text, Players: snap.Players}
	case snap.HasSubmitted || s.Submitted:
		return SubmittedView{BlackCard: text, Players: snap.Players}
	}

	cards := make([]HandCardView, 0, len(snap.Hand))
	for _, c := range snap.Hand {
		cards = append(cards, HandCardView{ID: c.ID, Text: c.Text, Ordinal: s.Selection.Ordinal(c.ID)})
	}
	return HandView{
		BlackCard: text,
		Required:  snap.RequiredPick(),
		Cards:     cards,
		CanSubmit: s.Selection.CanSubmit(),
		Players:   snap.Players,
	}
}

func judgingView(s State, snap Snapshot) View {
	subs := make([]AnonymousSubmission, 0, len(snap.Submissions))
	for _, sub := range snap.Submissions {
		subs = append(subs, AnonymousSubmission{ID: sub.ID, FullText: sub.FullText})
	}
	return JudgingView{
		BlackCard:   blackCardText(snap),
		Submissions: subs,
		IsCzar:      snap.IsCzar,
		CanPick:     snap.IsCzar && !s.Picked && len(subs) > 0,
		Players:     snap.Players,
	}
}

func summaryView(s State, snap Snapshot) View {
	v := SummaryView{
		BlackCard:    blackCardText(snap),
		Submissions:  snap.Submissions,
		Ready:        snap.Ready,
		ReadyEnabled: !snap.AmIReady && !s.Readied,
		Players:      snap.Players,
	}
	for _, sub := range snap.Submissions {
		if sub.IsWinner && sub.FullText != "" {
			v.BlackCard = sub.FullText
			v.WinningAuthor = sub.Author
			break
		}
	}
	return v
}

func blackCardText(snap Snapshot) string {
	if snap.BlackCard == nil {
		return "..."
	}
	return snap.BlackCard.Text
}
