package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"magecards/protocol"
)

func joined(snap Snapshot) State {
	return State{Authenticated: true, Nick: "Diego", Room: "Bractwo", Snapshot: &snap}
}

func TestViewFor(t *testing.T) {
	t.Parallel()
	black := &protocol.BlackCard{Text: "<B> to moja pasja.", Pick: 1}
	hand := []protocol.HandCard{{ID: "w1", Text: "Ogień"}, {ID: "w2", Text: "Woda"}}
	winner := "Milten"

	testCases := []struct {
		desc     string
		state    State
		expected View
	}{
		{
			desc:     "unjoined",
			state:    State{Authenticated: true, Nick: "Diego", Decks: []string{"base"}},
			expected: BrowserView{Authenticated: true, Nick: "Diego", Decks: []string{"base"}},
		},
		{
			desc:     "joined without update",
			state:    State{Authenticated: true, Room: "Bractwo"},
			expected: LobbyView{RoomName: "Bractwo", Players: []protocol.RoomPlayer{}},
		},
		{
			desc:     "lobby",
			state:    joined(Snapshot{Phase: PhaseLobby, CanStartGame: true, Players: []protocol.RoomPlayer{{Nick: "Diego"}}}),
			expected: LobbyView{RoomName: "Bractwo", CanStart: true, Players: []protocol.RoomPlayer{{Nick: "Diego"}}},
		},
		{
			desc:     "selecting without hand and not czar waits",
			state:    joined(Snapshot{Phase: PhaseSelecting, BlackCard: black, Hand: []protocol.HandCard{}}),
			expected: WaitingView{RoomName: "Bractwo", BlackCard: black.Text},
		},
		{
			desc:     "czar gets no hand",
			state:    joined(Snapshot{Phase: PhaseSelecting, BlackCard: black, IsCzar: true, Hand: hand}),
			expected: CzarWaitView{BlackCard: black.Text},
		},
		{
			desc:     "submitted hides the hand",
			state:    joined(Snapshot{Phase: PhaseSelecting, BlackCard: black, HasSubmitted: true, Hand: hand}),
			expected: SubmittedView{BlackCard: black.Text},
		},
		{
			desc:     "game over",
			state:    joined(Snapshot{Phase: PhaseGameOver, Winner: &winner}),
			expected: GameOverView{Winner: "Milten"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			t.Parallel()
			view, err := ViewFor(tc.state)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, view)
		})
	}
}

func TestViewForHand(t *testing.T) {
	t.Parallel()
	snap := Snapshot{
		Phase:     PhaseSelecting,
		BlackCard: &protocol.BlackCard{Text: "<B> i <M>", Pick: 2},
		Hand:      []protocol.HandCard{{ID: "w1", Text: "Ogień"}, {ID: "w2", Text: "Woda"}, {ID: "w3", Text: "Ruda"}},
	}
	s := joined(snap)
	s.Selection = ArmSelection(snap.HandIDs(), 2).Toggle("w3").Toggle("w1")

	view, err := ViewFor(s)
	require.NoError(t, err)
	hv, ok := view.(HandView)
	require.True(t, ok)
	assert.Equal(t, 2, hv.Required)
	assert.True(t, hv.CanSubmit)
	assert.Equal(t, []HandCardView{
		{ID: "w1", Text: "Ogień", Ordinal: 2},
		{ID: "w2", Text: "Woda", Ordinal: 0},
		{ID: "w3", Text: "Ruda", Ordinal: 1},
	}, hv.Cards)
}

func TestViewForJudgingHidesAuthors(t *testing.T) {
	t.Parallel()
	subs := []protocol.Submission{{ID: 1, FullText: "x", Author: "Alice"}, {ID: 2, FullText: "y", Author: "Bob", IsWinner: true}}

	for _, czar := range []bool{false, true} {
		view, err := ViewFor(joined(Snapshot{Phase: PhaseJudging, IsCzar: czar, Submissions: subs}))
		require.NoError(t, err)
		jv, ok := view.(JudgingView)
		require.True(t, ok)
		assert.Equal(t, []AnonymousSubmission{{ID: 1, FullText: "x"}, {ID: 2, FullText: "y"}}, jv.Submissions)
		assert.Equal(t, czar, jv.CanPick)
	}

	s := joined(Snapshot{Phase: PhaseJudging, IsCzar: true, Submissions: subs})
	s.Picked = true
	view, err := ViewFor(s)
	require.NoError(t, err)
	assert.False(t, view.(JudgingView).CanPick)
}

func TestViewForSummary(t *testing.T) {
	t.Parallel()
	snap := Snapshot{
		Phase:     PhaseSummary,
		BlackCard: &protocol.BlackCard{Text: "<B> to moja pasja.", Pick: 1},
		Submissions: []protocol.Submission{
			{ID: 1, FullText: "Ogień to moja pasja.", Author: "Alice"},
			{ID: 2, FullText: "Ruda to moja pasja.", Author: "Bob", IsWinner: true},
		},
		Ready:    protocol.ReadyStatus{Ready: 1, Total: 3},
		AmIReady: false,
	}

	view, err := ViewFor(joined(snap))
	require.NoError(t, err)
	sv := view.(SummaryView)
	assert.Equal(t, "Ruda to moja pasja.", sv.BlackCard)
	assert.Equal(t, "Bob", sv.WinningAuthor)
	assert.Equal(t, "Alice", sv.Submissions[0].Author)
	assert.Equal(t, protocol.ReadyStatus{Ready: 1, Total: 3}, sv.Ready)
	assert.True(t, sv.ReadyEnabled)

	snap.AmIReady = true
	view, err = ViewFor(joined(snap))
	require.NoError(t, err)
	assert.False(t, view.(SummaryView).ReadyEnabled)
}

func TestViewForUnknownPhase(t *testing.T) {
	t.Parallel()
	_, err := ViewFor(joined(Snapshot{Phase: Phase(42)}))
	assert.ErrorIs(t, err, ErrUnknownPhase)
}

func TestParsePhase(t *testing.T) {
	t.Parallel()
	for _, p := range []Phase{PhaseLobby, PhaseSelecting, PhaseJudging, PhaseSummary, PhaseGameOver} {
		parsed, err := ParsePhase(p.String())
		require.NoError(t, err)
		assert.Equal(t, p, parsed)
	}
	_, err := ParsePhase("UNJOINED")
	assert.ErrorIs(t, err, ErrUnknownPhase)
	_, err = ParsePhase("lobby")
	assert.ErrorIs(t, err, ErrUnknownPhase)
}
