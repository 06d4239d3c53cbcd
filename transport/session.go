package transport

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"magecards/game"
	"magecards/protocol"
)

var (
	ErrConnectionLost  = errors.New("connection-lost")
	ErrSessionClosed   = errors.New("session-closed")
	ErrChatRateLimited = errors.New("chat-rate-limited")
	ErrOutboxFull      = errors.New("outbox-full")
)

const outboxSize = 64

type intentRequest struct {
	intent game.Intent
	result chan error
}

// Session runs one client over one Connection. Inbound frames and user
// intents are folded into a game.Controller by a single loop, one at a time.
type Session struct {
	conn         Connection
	controller   *game.Controller
	log          zerolog.Logger
	chatLimiter  *rate.Limiter
	pingInterval time.Duration

	intents chan intentRequest
	updates chan game.State
	done    chan struct{}
	once    sync.Once
}

type Option func(*Session)

func WithPingInterval(d time.Duration) Option {
	return func(s *Session) { s.pingInterval = d }
}

func WithChatLimit(limit rate.Limit, burst int) Option {
	return func(s *Session) { s.chatLimiter = rate.NewLimiter(limit, burst) }
}

func NewSession(conn Connection, log zerolog.Logger, opts ...Option) *Session {
	s := &Session{
		conn:         conn,
		controller:   game.NewController(),
		log:          log.With().Str("component", "session").Logger(),
		chatLimiter:  rate.NewLimiter(1, 5),
		pingInterval: PingInterval,
		intents:      make(chan intentRequest),
		updates:      make(chan game.State, 1),
		done:         make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Updates yields the latest state after every change. Slow readers only see
// the newest value.
func (s *Session) Updates() <-chan game.State {
	return s.updates
}

// Done is closed once Run has returned.
func (s *Session) Done() <-chan struct{} {
	return s.done
}

// Do hands intent to the session loop and waits until it was applied.
func (s *Session) Do(ctx context.Context, intent game.Intent) error {
	req := intentRequest{intent: intent, result: make(chan error, 1)}
	select {
	case s.intents <- req:
	case <-s.done:
		return ErrSessionClosed
	case <-ctx.Done():
		return ctx.Err()
	}
	select {
	case err := <-req.result:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Run blocks until ctx is cancelled or the connection fails. A failed
// connection yields ErrConnectionLost and all state must be discarded; the
// session does not reconnect.
func (s *Session) Run(ctx context.Context) error {
	inbox := make(chan []byte, outboxSize)
	outbox := make(chan []byte, outboxSize)
	readErr := make(chan error, 1)
	writeErr := make(chan error, 1)
	quit := make(chan struct{})

	var reader, writer sync.WaitGroup
	reader.Go(func() { s.readPump(inbox, readErr, quit) })
	writer.Go(func() { s.writePump(outbox, writeErr, quit) })

	defer func() {
		close(quit)
		writer.Wait()
		s.conn.Close("bye")
		reader.Wait()
		s.once.Do(func() { close(s.done) })
	}()

	s.publish(s.controller.State())

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case err := <-readErr:
			s.log.Warn().Err(err).Msg("read failed")
			return fmt.Errorf("%w: %w", ErrConnectionLost, err)

		case err := <-writeErr:
			s.log.Warn().Err(err).Msg("write failed")
			return fmt.Errorf("%w: %w", ErrConnectionLost, err)

		case data := <-inbox:
			s.handleFrame(data)

		case req := <-s.intents:
			err := s.handleIntent(req.intent, outbox)
			req.result <- err
			if errors.Is(err, ErrOutboxFull) {
				return fmt.Errorf("%w: %w", ErrConnectionLost, err)
			}
		}
	}
}

func (s *Session) handleFrame(data []byte) {
	msg, err := protocol.DecodeServer(data)
	if err != nil {
		s.log.Warn().Err(err).Bytes("frame", data).Msg("dropping frame")
		return
	}
	state, err := s.controller.HandleServer(msg)
	if err != nil {
		s.log.Warn().Err(err).Str("type", string(msg.MessageType())).Msg("dropping message")
		return
	}
	s.log.Debug().Str("type", string(msg.MessageType())).Stringer("phase", state.Phase()).Msg("applied")
	s.publish(state)
}

func (s *Session) handleIntent(intent game.Intent, outbox chan<- []byte) error {
	if _, ok := intent.(game.SendChat); ok && !s.chatLimiter.Allow() {
		s.log.Warn().Msg("chat throttled")
		return ErrChatRateLimited
	}

	msgs, state, err := s.controller.Dispatch(intent)
	s.publish(state)
	if err != nil {
		return err
	}
	for _, msg := range msgs {
		data, err := protocol.Encode(msg)
		if err != nil {
			return err
		}
		select {
		case outbox <- data:
		default:
			return ErrOutboxFull
		}
	}
	return nil
}

func (s *Session) publish(state game.State) {
	select {
	case <-s.updates:
	default:
	}
	s.updates <- state
}

func (s *Session) readPump(inbox chan<- []byte, readErr chan<- error, quit <-chan struct{}) {
	for {
		data, err := s.conn.Read()
		if err != nil {
			readErr <- err
			return
		}
		select {
		case inbox <- data:
		case <-quit:
			return
		}
	}
}

func (s *Session) writePump(outbox <-chan []byte, writeErr chan<- error, quit <-chan struct{}) {
	ticker := time.NewTicker(s.pingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-quit:
			return
		case data := <-outbox:
			if err := s.conn.Write(data); err != nil {
				writeErr <- err
				return
			}
		case <-ticker.C:
			if err := s.conn.Ping(); err != nil {
				writeErr <- err
				return
			}
		}
	}
}
