// Command client plays the card game from a terminal. It reads one command
// per line from stdin and prints the current screen after every change.
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"magecards/config"
	"magecards/game"
	"magecards/i18n"
	"magecards/logger"
	"magecards/render"
	"magecards/transport"
)

func main() {
	envs, err := config.Load("SERVER_URL")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	// stdout is the screen; logs go to stderr
	log := logger.New(os.Stderr, envs.LOG_LEVEL, envs.Release())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, envs, os.Stdin, os.Stdout, log); err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintln(os.Stdout, "[reload]", i18n.Translate("ERR_DISCONNECTED"))
		log.Error().Err(err).Msg("client stopped")
		os.Exit(1)
	}
}

func run(ctx context.Context, envs config.Envs, in io.Reader, out io.Writer, log zerolog.Logger) error {
	conn, err := transport.Dial(ctx, envs.SERVER_URL, nil)
	if err != nil {
		return err
	}
	session := transport.NewSession(conn, log)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	runErr := make(chan error, 1)
	go func() { runErr <- session.Run(ctx) }()

	if envs.NICKNAME != "" {
		if err := session.Do(ctx, game.SetNick{Nickname: envs.NICKNAME}); err != nil {
			return err
		}
	}

	lines := make(chan string)
	go func() {
		defer close(lines)
		sc := bufio.NewScanner(in)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-ctx.Done():
				return
			}
		}
	}()

	fmt.Fprintln(out, usage)
	lastChat := 0
	for {
		select {
		case err := <-runErr:
			return err
		case state := <-session.Updates():
			screen, err := render.State(state)
			if err != nil {
				log.Warn().Err(err).Msg("state cannot be shown")
				continue
			}
			fmt.Fprint(out, "\n", screen)
			for _, line := range newChatLines(lastChat, state.Chat) {
				fmt.Fprintln(out, render.Chat(line))
			}
			if n := len(state.Chat); n > 0 {
				lastChat = max(lastChat, state.Chat[n-1].Seq)
			}
		case line, ok := <-lines:
			if !ok {
				return nil
			}
			intent, err := parseCommand(line)
			switch {
			case errors.Is(err, errQuit):
				return nil
			case err != nil:
				fmt.Fprintln(out, err)
				fmt.Fprintln(out, usage)
				continue
			case intent == nil:
				continue
			}
			if err := session.Do(ctx, intent); err != nil {
				if errors.Is(err, transport.ErrSessionClosed) {
					return <-runErr
				}
				fmt.Fprintln(out, "!", err)
			}
		}
	}
}
