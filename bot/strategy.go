// Package bot is an autoplayer that drives a session through the same views a
// human player sees.
package bot

import (
	"math/rand/v2"
	"time"

	"magecards/game"
)

type Kind string

const (
	KindNone   Kind = ""
	KindPoll   Kind = "poll"
	KindJoin   Kind = "join"
	KindSubmit Kind = "submit"
	KindPick   Kind = "pick"
	KindReady  Kind = "ready"
)

// Span is a closed range a random delay is drawn from.
type Span struct {
	Min, Max time.Duration
}

func (s Span) draw(rng *rand.Rand) time.Duration {
	if s.Max <= s.Min {
		return s.Min
	}
	return s.Min + time.Duration(rng.Int64N(int64(s.Max-s.Min)+1))
}

// Delays make the bot look less like a bot.
type Delays struct {
	Poll   Span
	Join   Span
	Submit Span
	Pick   Span
	Ready  Span
}

var DefaultDelays = Delays{
	Poll:   Span{2 * time.Second, 2 * time.Second},
	Join:   Span{time.Second, time.Second},
	Submit: Span{2 * time.Second, 8 * time.Second},
	Pick:   Span{3 * time.Second, 8 * time.Second},
	Ready:  Span{2 * time.Second, 5 * time.Second},
}

// Plan is one thing the bot wants to do after Delay.
type Plan struct {
	Kind    Kind
	Delay   time.Duration
	Intents []game.Intent
}

type Strategy struct {
	rng    *rand.Rand
	delays Delays
}

func NewStrategy(rng *rand.Rand, delays Delays) *Strategy {
	return &Strategy{rng: rng, delays: delays}
}

// Next decides what to do in s. Kind is KindNone when there is nothing to do.
func (st *Strategy) Next(s game.State) Plan {
	if !s.Authenticated {
		return Plan{}
	}
	view, err := s.View()
	if err != nil {
		return Plan{}
	}

	switch v := view.(type) {
	case game.BrowserView:
		for _, r := range v.Rooms {
			if !r.HasPassword && r.Players < r.Max {
				return Plan{
					Kind:    KindJoin,
					Delay:   st.delays.Join.draw(st.rng),
					Intents: []game.Intent{game.JoinRoom{Name: r.Name}},
				}
			}
		}
		return Plan{Kind: KindPoll, Delay: st.delays.Poll.draw(st.rng), Intents: []game.Intent{game.RequestRooms{}}}

	case game.HandView:
		if len(v.Cards) < v.Required {
			return Plan{}
		}
		intents := []game.Intent{}
		for _, i := range st.rng.Perm(len(v.Cards))[:v.Required] {
			intents = append(intents, game.ToggleCard{ID: v.Cards[i].ID})
		}
		return Plan{
			Kind:    KindSubmit,
			Delay:   st.delays.Submit.draw(st.rng),
			Intents: append(intents, game.SubmitCards{}),
		}

	case game.JudgingView:
		if !v.CanPick {
			return Plan{}
		}
		choice := v.Submissions[st.rng.IntN(len(v.Submissions))]
		return Plan{
			Kind:    KindPick,
			Delay:   st.delays.Pick.draw(st.rng),
			Intents: []game.Intent{game.PickWinner{SubmissionID: choice.ID}},
		}

	case game.SummaryView:
		if !v.ReadyEnabled {
			return Plan{}
		}
		return Plan{Kind: KindReady, Delay: st.delays.Ready.draw(st.rng), Intents: []game.Intent{game.Ready{}}}
	}
	return Plan{}
}
