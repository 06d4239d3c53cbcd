package bot

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"magecards/game"
)

// Session is the part of transport.Session the bot drives.
type Session interface {
	Do(ctx context.Context, intent game.Intent) error
	Updates() <-chan game.State
	Done() <-chan struct{}
}

var ErrSessionEnded = errors.New("session-ended")

type Bot struct {
	session  Session
	strategy *Strategy
	nick     string
	tick     time.Duration
	log      zerolog.Logger
}

func New(session Session, strategy *Strategy, nick string, log zerolog.Logger) *Bot {
	return &Bot{
		session:  session,
		strategy: strategy,
		nick:     nick,
		tick:     time.Second,
		log:      log.With().Str("component", "bot").Str("nick", nick).Logger(),
	}
}

// Run plays until ctx ends or the session is gone. It never reconnects.
func (b *Bot) Run(ctx context.Context) error {
	if err := b.session.Do(ctx, game.SetNick{Nickname: b.nick}); err != nil {
		return err
	}

	var latest game.State
	ticker := time.NewTicker(b.tick)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-b.session.Done():
			return ErrSessionEnded
		case latest = <-b.session.Updates():
			b.reportNotice(ctx, latest)
		case <-ticker.C:
			plan := b.strategy.Next(latest)
			if plan.Kind == KindNone {
				continue
			}
			var err error
			if latest, err = b.wait(ctx, plan.Delay, latest); err != nil {
				return err
			}

			// act on what the state looks like now, not when the plan was made
			fresh := b.strategy.Next(latest)
			if fresh.Kind != plan.Kind {
				b.log.Debug().Str("planned", string(plan.Kind)).Str("now", string(fresh.Kind)).Msg("plan dropped")
				continue
			}
			b.execute(ctx, fresh)
		}
	}
}

func (b *Bot) wait(ctx context.Context, d time.Duration, latest game.State) (game.State, error) {
	timer := time.NewTimer(d)
	defer timer.Stop()
	for {
		select {
		case <-ctx.Done():
			return latest, ctx.Err()
		case <-b.session.Done():
			return latest, ErrSessionEnded
		case latest = <-b.session.Updates():
			b.reportNotice(ctx, latest)
		case <-timer.C:
			return latest, nil
		}
	}
}

func (b *Bot) execute(ctx context.Context, plan Plan) {
	for _, intent := range plan.Intents {
		if err := b.session.Do(ctx, intent); err != nil {
			if !errors.Is(err, game.ErrActionNotAllowed) {
				b.log.Warn().Err(err).Str("plan", string(plan.Kind)).Msg("intent failed")
			}
			return
		}
	}
	b.log.Info().Str("plan", string(plan.Kind)).Msg("done")
}

func (b *Bot) reportNotice(ctx context.Context, s game.State) {
	if s.Notice == nil {
		return
	}
	b.log.Warn().Str("key", s.Notice.Key).Msg(s.Notice.Text)
	if err := b.session.Do(ctx, game.DismissNotice{}); err != nil {
		b.log.Debug().Err(err).Msg("dismiss failed")
	}
}
