package main

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"magecards/game"
	"magecards/protocol"
)

var (
	ErrUnknownCommand = errors.New("unknown-command")
	ErrMissingArgs    = errors.New("missing-arguments")
	ErrBadNumber      = errors.New("bad-number")
)

const usage = `commands:
  nick NAME                 choose a nickname
  rooms | decks             refresh the room or deck list
  create NAME DECK[,DECK] [password=P] [players=N] [hand=N] [score=N] [timeout=S] [anyone]
  join NAME [PASSWORD]      enter a room
  leave | start | submit | ready | dismiss
  say TEXT                  chat in the current scope
  toggle ID                 select or unselect a hand card
  pick N                    choose the winning submission
  help | quit`

// errQuit asks the read loop to stop.
var errQuit = errors.New("quit")

// parseCommand turns one input line into an intent. An empty line yields a
// nil intent and no error.
func parseCommand(line string) (game.Intent, error) {
	verb, rest, _ := strings.Cut(strings.TrimSpace(line), " ")
	rest = strings.TrimSpace(rest)
	args := strings.Fields(rest)

	switch strings.ToLower(verb) {
	case "":
		return nil, nil
	case "quit", "exit":
		return nil, errQuit
	case "nick":
		if rest == "" {
			return nil, fmt.Errorf("%w: nick NAME", ErrMissingArgs)
		}
		return game.SetNick{Nickname: rest}, nil
	case "rooms":
		return game.RequestRooms{}, nil
	case "decks":
		return game.RequestDecks{}, nil
	case "create":
		return parseCreate(args)
	case "join":
		if len(args) == 0 {
			return nil, fmt.Errorf("%w: join NAME [PASSWORD]", ErrMissingArgs)
		}
		intent := game.JoinRoom{Name: args[0]}
		if len(args) > 1 {
			password := args[1]
			intent.Password = &password
		}
		return intent, nil
	case "leave":
		return game.LeaveRoom{}, nil
	case "start":
		return game.StartGame{}, nil
	case "say":
		return game.SendChat{Message: rest}, nil
	case "toggle":
		if len(args) == 0 {
			return nil, fmt.Errorf("%w: toggle ID", ErrMissingArgs)
		}
		return game.ToggleCard{ID: args[0]}, nil
	case "submit":
		return game.SubmitCards{}, nil
	case "pick":
		if len(args) == 0 {
			return nil, fmt.Errorf("%w: pick N", ErrMissingArgs)
		}
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrBadNumber, args[0])
		}
		return game.PickWinner{SubmissionID: n}, nil
	case "ready":
		return game.Ready{}, nil
	case "dismiss":
		return game.DismissNotice{}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownCommand, verb)
	}
}

// parseCreate reads "NAME DECK[,DECK] key=value... [anyone]" on top of the
// default room settings. Validation is left to the controller.
func parseCreate(args []string) (game.Intent, error) {
	if len(args) < 2 {
		return nil, fmt.Errorf("%w: create NAME DECK[,DECK]", ErrMissingArgs)
	}
	settings := protocol.DefaultRoomSettings(args[0], strings.Split(args[1], ","))

	for _, opt := range args[2:] {
		if opt == "anyone" {
			settings.AnyoneCanStart = true
			continue
		}
		key, value, ok := strings.Cut(opt, "=")
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownCommand, opt)
		}
		switch key {
		case "password":
			settings.Password = &value
			continue
		case "players", "hand", "score", "timeout":
		default:
			return nil, fmt.Errorf("%w: %s", ErrUnknownCommand, opt)
		}
		n, err := strconv.Atoi(value)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrBadNumber, opt)
		}
		switch key {
		case "players":
			settings.MaxPlayers = n
		case "hand":
			settings.HandSize = n
		case "score":
			settings.WinScore = n
		case "timeout":
			settings.Timeout = &n
		}
	}
	return game.CreateRoom{Settings: settings}, nil
}

// newChatLines returns the lines of next numbered after lastSeq, the last
// line already shown.
func newChatLines(lastSeq int, next []game.ChatLine) []game.ChatLine {
	i := slices.IndexFunc(next, func(l game.ChatLine) bool { return l.Seq > lastSeq })
	if i < 0 {
		return nil
	}
	return next[i:]
}
