// Command bot joins the first open room on the server and plays by itself.
// It exits when the connection drops; run it under a supervisor to keep it
// around.
package main

import (
	"context"
	"errors"
	"math/rand/v2"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"magecards/bot"
	"magecards/config"
	"magecards/logger"
	"magecards/transport"
)

func main() {
	envs, err := config.Load("SERVER_URL", "NICKNAME")
	if err != nil {
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(2)
	}
	log := logger.Setup(envs.LOG_LEVEL, envs.Release())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	conn, err := transport.Dial(ctx, envs.SERVER_URL, nil)
	if err != nil {
		log.Fatal().Err(err).Str("url", envs.SERVER_URL).Msg("cannot reach server")
	}
	session := transport.NewSession(conn, log)

	seed := uint64(time.Now().UnixNano())
	strategy := bot.NewStrategy(rand.New(rand.NewPCG(seed, seed>>1|1)), bot.DefaultDelays)
	player := bot.New(session, strategy, envs.NICKNAME, log)

	ctx, cancel := context.WithCancel(ctx)
	var wg sync.WaitGroup
	var sessionErr, botErr error
	wg.Go(func() {
		sessionErr = session.Run(ctx)
		cancel()
	})
	wg.Go(func() {
		botErr = player.Run(ctx)
		cancel()
	})
	wg.Wait()

	if errors.Is(sessionErr, transport.ErrConnectionLost) {
		log.Error().Err(sessionErr).Msg("connection lost")
		os.Exit(1)
	}
	if botErr != nil && !errors.Is(botErr, context.Canceled) && !errors.Is(botErr, bot.ErrSessionEnded) {
		log.Error().Err(botErr).Msg("bot stopped")
		os.Exit(1)
	}
	log.Info().Msg("bye")
}
