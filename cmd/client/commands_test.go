package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"magecards/game"
	"magecards/protocol"
)

func ptr[T any](v T) *T { return &v }

func TestParseCommand(t *testing.T) {
	t.Parallel()

	settings := protocol.DefaultRoomSettings("Obóz", []string{"base", "extra"})
	settings.Password = ptr("tajne")
	settings.MaxPlayers = 4
	settings.Timeout = ptr(90)
	settings.AnyoneCanStart = true

	testCases := []struct {
		desc   string
		line   string
		intent game.Intent
		err    error
	}{
		{desc: "blank", line: "   "},
		{desc: "quit", line: "quit", err: errQuit},
		{desc: "nick keeps spaces", line: "nick  Stary Wiarus ", intent: game.SetNick{Nickname: "Stary Wiarus"}},
		{desc: "nick needs name", line: "nick", err: ErrMissingArgs},
		{desc: "rooms", line: "ROOMS", intent: game.RequestRooms{}},
		{desc: "decks", line: "decks", intent: game.RequestDecks{}},
		{desc: "join open", line: "join Obóz", intent: game.JoinRoom{Name: "Obóz"}},
		{desc: "join locked", line: "join Obóz tajne", intent: game.JoinRoom{Name: "Obóz", Password: ptr("tajne")}},
		{desc: "say", line: "say siema wszystkim", intent: game.SendChat{Message: "siema wszystkim"}},
		{desc: "toggle", line: "toggle w-12", intent: game.ToggleCard{ID: "w-12"}},
		{desc: "pick", line: "pick 3", intent: game.PickWinner{SubmissionID: 3}},
		{desc: "pick not a number", line: "pick trzy", err: ErrBadNumber},
		{desc: "submit", line: "submit", intent: game.SubmitCards{}},
		{desc: "ready", line: "ready", intent: game.Ready{}},
		{desc: "leave", line: "leave", intent: game.LeaveRoom{}},
		{desc: "start", line: "start", intent: game.StartGame{}},
		{desc: "dismiss", line: "dismiss", intent: game.DismissNotice{}},
		{
			desc:   "create with options",
			line:   "create Obóz base,extra password=tajne players=4 timeout=90 anyone",
			intent: game.CreateRoom{Settings: settings},
		},
		{
			desc:   "create defaults",
			line:   "create Obóz base",
			intent: game.CreateRoom{Settings: protocol.DefaultRoomSettings("Obóz", []string{"base"})},
		},
		{desc: "create without deck", line: "create Obóz", err: ErrMissingArgs},
		{desc: "create bad option", line: "create Obóz base colour=red", err: ErrUnknownCommand},
		{desc: "create bad option with number", line: "create Obóz base colour=3", err: ErrUnknownCommand},
		{desc: "create bad number", line: "create Obóz base hand=many", err: ErrBadNumber},
		{desc: "unknown", line: "dance", err: ErrUnknownCommand},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			t.Parallel()
			intent, err := parseCommand(tc.line)
			assert.ErrorIs(t, err, tc.err)
			assert.Equal(t, tc.intent, intent)
		})
	}
}

func TestNewChatLines(t *testing.T) {
	t.Parallel()
	a := game.ChatLine{Seq: 1, Author: "a", Message: "1"}
	b := game.ChatLine{Seq: 2, Author: "b", Message: "2"}
	c := game.ChatLine{Seq: 3, Lobby: true, Author: "c", Message: "3"}
	again := game.ChatLine{Seq: 4, Lobby: true, Author: "c", Message: "3"}

	assert.Equal(t, []game.ChatLine{a, b}, newChatLines(0, []game.ChatLine{a, b}))
	assert.Equal(t, []game.ChatLine{c}, newChatLines(2, []game.ChatLine{a, b, c}))
	assert.Empty(t, newChatLines(3, []game.ChatLine{a, b, c}))
	// same author and text twice in a row
	assert.Equal(t, []game.ChatLine{again}, newChatLines(3, []game.ChatLine{a, b, c, again}))
	// room lines dropped on leave
	assert.Empty(t, newChatLines(4, []game.ChatLine{c}))
}
