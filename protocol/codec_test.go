package protocol

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode(t *testing.T) {
	t.Parallel()
	password := "tajne"
	timeout := 60

	testCases := []struct {
		desc     string
		msg      ClientMessage
		expected string
	}{
		{
			desc:     "set nick",
			msg:      MakeSetNick("Diego"),
			expected: `{"type":"SET_NICK","nickname":"Diego"}`,
		},
		{
			desc:     "empty payload",
			msg:      MakeGetDecks(),
			expected: `{"type":"GET_DECKS"}`,
		},
		{
			desc:     "join without password omits the field",
			msg:      MakeJoinRoom("Stary Obóz", nil),
			expected: `{"type":"JOIN_ROOM","name":"Stary Obóz"}`,
		},
		{
			desc:     "join with password",
			msg:      MakeJoinRoom("Nowy Obóz", &password),
			expected: `{"type":"JOIN_ROOM","name":"Nowy Obóz","password":"tajne"}`,
		},
		{
			desc:     "submit keeps the order",
			msg:      MakeSubmitCards([]string{"w2", "w1"}),
			expected: `{"type":"SUBMIT_CARDS","cards":["w2","w1"]}`,
		},
		{
			desc:     "pick winner",
			msg:      MakePickWinner(3),
			expected: `{"type":"PICK_WINNER","index":3}`,
		},
		{
			desc: "create room with null password",
			msg: MakeCreateRoom(RoomSettings{
				Name: "Bractwo", MaxPlayers: 8, HandSize: 10, WinScore: 5,
				AnyoneCanStart: true, Timeout: &timeout, Decks: []string{"base"},
			}),
			expected: `{"type":"CREATE_ROOM","settings":{"name":"Bractwo","password":null,"max_players":8,"hand_size":10,"win_score":5,"anyone_can_start":true,"timeout":60,"decks":["base"]}}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			t.Parallel()
			data, err := Encode(tc.msg)
			require.NoError(t, err)
			assert.JSONEq(t, tc.expected, string(data))
		})
	}
}

func TestDecodeServer(t *testing.T) {
	t.Parallel()

	t.Run("game update", func(t *testing.T) {
		t.Parallel()
		raw := `{"type":"GAME_UPDATE","phase":"SELECTING","black_card":{"text":"<B> to moja pasja.","pick":1},
			"hand":[{"id":"w1","text":"Ogień"}],"is_czar":false,"has_submitted":false,"submissions":[],
			"ready_status":{"ready":0,"total":3},"am_i_ready":false,
			"players_list":[{"nick":"Diego","score":2,"is_czar":true}],"winner":null,"can_start_game":false}`

		msg, err := DecodeServer([]byte(raw))
		require.NoError(t, err)
		update, ok := msg.(GameUpdate)
		require.True(t, ok)
		assert.Equal(t, "SELECTING", update.Phase)
		require.NotNil(t, update.BlackCard)
		assert.Equal(t, 1, update.BlackCard.Pick)
		assert.Equal(t, []HandCard{{ID: "w1", Text: "Ogień"}}, update.Hand)
		assert.Equal(t, ReadyStatus{Ready: 0, Total: 3}, update.ReadyStatus)
		assert.Nil(t, update.Winner)
		assert.Equal(t, []RoomPlayer{{Nick: "Diego", Score: 2, IsCzar: true}}, update.PlayersList)
	})

	t.Run("null hand", func(t *testing.T) {
		t.Parallel()
		msg, err := DecodeServer([]byte(`{"type":"GAME_UPDATE","phase":"LOBBY","hand":null,"black_card":null}`))
		require.NoError(t, err)
		update := msg.(GameUpdate)
		assert.Empty(t, update.Hand)
		assert.Nil(t, update.BlackCard)
	})

	t.Run("lobby players with null room", func(t *testing.T) {
		t.Parallel()
		msg, err := DecodeServer([]byte(`{"type":"LOBBY_PLAYERS","players":[{"nick":"Milten","room":null},{"nick":"Lester","room":"Bractwo"}]}`))
		require.NoError(t, err)
		players := msg.(LobbyPlayers).Players
		require.Len(t, players, 2)
		assert.Nil(t, players[0].Room)
		require.NotNil(t, players[1].Room)
		assert.Equal(t, "Bractwo", *players[1].Room)
	})

	t.Run("every server type", func(t *testing.T) {
		t.Parallel()
		for _, typ := range []MessageType{
			TypeNickOk, TypeError, TypeRoomList, TypeRoomUpdate, TypeLobbyPlayers,
			TypeDeckList, TypeJoinRoomOk, TypeGameUpdate, TypeChat, TypeLeftRoom,
		} {
			raw, _ := json.Marshal(map[string]string{"type": string(typ)})
			msg, err := DecodeServer(raw)
			require.NoError(t, err, typ)
			assert.Equal(t, typ, msg.MessageType())
		}
	})

	t.Run("errors", func(t *testing.T) {
		t.Parallel()
		testCases := []struct {
			desc        string
			raw         string
			expectedErr error
		}{
			{desc: "not json", raw: `{"type":`, expectedErr: ErrMalformedMessage},
			{desc: "missing type", raw: `{"message":"x"}`, expectedErr: ErrMalformedMessage},
			{desc: "wrong payload shape", raw: `{"type":"DECK_LIST","decks":"base"}`, expectedErr: ErrMalformedMessage},
			{desc: "unknown type", raw: `{"type":"FOO"}`, expectedErr: ErrUnknownMessageType},
			{desc: "client type from server", raw: `{"type":"SET_NICK","nickname":"x"}`, expectedErr: ErrUnknownMessageType},
		}
		for _, tc := range testCases {
			_, err := DecodeServer([]byte(tc.raw))
			assert.ErrorIs(t, err, tc.expectedErr, tc.desc)
		}
	})
}

func TestDecodeClient(t *testing.T) {
	t.Parallel()

	msg, err := DecodeClient([]byte(`{"type":"SUBMIT_CARDS","cards":["w1","w7"]}`))
	require.NoError(t, err)
	assert.Equal(t, MakeSubmitCards([]string{"w1", "w7"}), msg)

	msg, err = DecodeClient([]byte(`{"type":"PICK_WINNER","index":2}`))
	require.NoError(t, err)
	assert.Equal(t, MakePickWinner(2), msg)

	_, err = DecodeClient([]byte(`{"type":"GAME_UPDATE"}`))
	assert.ErrorIs(t, err, ErrUnknownMessageType)
}
