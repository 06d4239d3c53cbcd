package bot

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"magecards/game"
	"magecards/protocol"
)

func newTestStrategy() *Strategy {
	return NewStrategy(rand.New(rand.NewPCG(1, 2)), DefaultDelays)
}

func stateWith(snap game.Snapshot) game.State {
	return game.State{Authenticated: true, Room: "Bractwo", Snapshot: &snap}
}

func TestStrategyNext(t *testing.T) {
	t.Parallel()
	subs := []protocol.Submission{{ID: 4, FullText: "a"}, {ID: 9, FullText: "b"}}

	testCases := []struct {
		desc         string
		state        game.State
		expectedKind Kind
		delay        Span
	}{
		{desc: "not logged in", state: game.State{}, expectedKind: KindNone},
		{
			desc: "joins the first open room",
			state: game.State{Authenticated: true, Rooms: []protocol.RoomSummary{
				{Name: "locked", Players: 1, Max: 4, HasPassword: true},
				{Name: "full", Players: 4, Max: 4},
				{Name: "open", Players: 2, Max: 4},
			}},
			expectedKind: KindJoin,
			delay:        DefaultDelays.Join,
		},
		{
			desc:         "polls without rooms",
			state:        game.State{Authenticated: true, Rooms: []protocol.RoomSummary{{Name: "full", Players: 4, Max: 4}}},
			expectedKind: KindPoll,
			delay:        DefaultDelays.Poll,
		},
		{desc: "idles in the lobby", state: stateWith(game.Snapshot{Phase: game.PhaseLobby, CanStartGame: true}), expectedKind: KindNone},
		{desc: "czar waits", state: stateWith(game.Snapshot{Phase: game.PhaseSelecting, IsCzar: true}), expectedKind: KindNone},
		{
			desc:         "czar picks",
			state:        stateWith(game.Snapshot{Phase: game.PhaseJudging, IsCzar: true, Submissions: subs}),
			expectedKind: KindPick,
			delay:        DefaultDelays.Pick,
		},
		{desc: "player does not pick", state: stateWith(game.Snapshot{Phase: game.PhaseJudging, Submissions: subs}), expectedKind: KindNone},
		{
			desc:         "ready in summary",
			state:        stateWith(game.Snapshot{Phase: game.PhaseSummary}),
			expectedKind: KindReady,
			delay:        DefaultDelays.Ready,
		},
		{desc: "already ready", state: stateWith(game.Snapshot{Phase: game.PhaseSummary, AmIReady: true}), expectedKind: KindNone},
		{desc: "game over", state: stateWith(game.Snapshot{Phase: game.PhaseGameOver}), expectedKind: KindNone},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			t.Parallel()
			plan := newTestStrategy().Next(tc.state)
			assert.Equal(t, tc.expectedKind, plan.Kind)
			if tc.expectedKind == KindNone {
				assert.Empty(t, plan.Intents)
				return
			}
			assert.GreaterOrEqual(t, plan.Delay, tc.delay.Min)
			assert.LessOrEqual(t, plan.Delay, tc.delay.Max)
		})
	}
}

func TestStrategyJoinTarget(t *testing.T) {
	t.Parallel()
	plan := newTestStrategy().Next(game.State{Authenticated: true, Rooms: []protocol.RoomSummary{
		{Name: "locked", Players: 1, Max: 4, HasPassword: true},
		{Name: "open", Players: 2, Max: 4},
	}})
	assert.Equal(t, []game.Intent{game.JoinRoom{Name: "open"}}, plan.Intents)
}

func TestStrategySubmitSamplesPickCards(t *testing.T) {
	t.Parallel()
	hand := []protocol.HandCard{{ID: "w1"}, {ID: "w2"}, {ID: "w3"}, {ID: "w4"}}
	snap := game.Snapshot{Phase: game.PhaseSelecting, BlackCard: &protocol.BlackCard{Text: "<B> i <M>", Pick: 2}, Hand: hand}
	st := stateWith(snap)
	st.Selection = game.ArmSelection(snap.HandIDs(), 2)

	plan := newTestStrategy().Next(st)
	require.Equal(t, KindSubmit, plan.Kind)
	require.Len(t, plan.Intents, 3)
	assert.Equal(t, game.SubmitCards{}, plan.Intents[2])

	first := plan.Intents[0].(game.ToggleCard).ID
	second := plan.Intents[1].(game.ToggleCard).ID
	assert.NotEqual(t, first, second)
	assert.Contains(t, snap.HandIDs(), first)
	assert.Contains(t, snap.HandIDs(), second)
}

func TestStrategyShortHand(t *testing.T) {
	t.Parallel()
	snap := game.Snapshot{Phase: game.PhaseSelecting, BlackCard: &protocol.BlackCard{Text: "<B> i <M>", Pick: 2}, Hand: []protocol.HandCard{{ID: "w1"}}}
	st := stateWith(snap)
	st.Selection = game.ArmSelection(snap.HandIDs(), 2)

	assert.Equal(t, KindNone, newTestStrategy().Next(st).Kind)
}

func TestSpanDraw(t *testing.T) {
	t.Parallel()
	rng := rand.New(rand.NewPCG(3, 4))
	fixed := Span{time.Second, time.Second}
	assert.Equal(t, time.Second, fixed.draw(rng))

	s := Span{2 * time.Second, 5 * time.Second}
	for range 100 {
		d := s.draw(rng)
		assert.GreaterOrEqual(t, d, s.Min)
		assert.LessOrEqual(t, d, s.Max)
	}
}
