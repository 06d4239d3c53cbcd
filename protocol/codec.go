package protocol

import (
	"encoding/json"
	"errors"
	"fmt"
)

var (
	ErrMalformedMessage   = errors.New("malformed-message")
	ErrUnknownMessageType = errors.New("unknown-message-type")
)

type envelope struct {
	Type MessageType `json:"type"`
}

// Encode serializes msg to a JSON text frame.
func Encode(msg interface{ MessageType() MessageType }) ([]byte, error) {
	data, err := json.Marshal(msg)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedMessage, err)
	}
	return data, nil
}

// DecodeServer parses a frame pushed by the server.
func DecodeServer(data []byte) (ServerMessage, error) {
	t, err := peekType(data)
	if err != nil {
		return nil, err
	}

	var msg ServerMessage
	switch t {
	case TypeNickOk:
		msg, err = decodeAs[NickOk](data)
	case TypeError:
		msg, err = decodeAs[Error](data)
	case TypeRoomList:
		msg, err = decodeAs[RoomList](data)
	case TypeRoomUpdate:
		msg, err = decodeAs[RoomUpdate](data)
	case TypeLobbyPlayers:
		msg, err = decodeAs[LobbyPlayers](data)
	case TypeDeckList:
		msg, err = decodeAs[DeckList](data)
	case TypeJoinRoomOk:
		msg, err = decodeAs[JoinRoomOk](data)
	case TypeGameUpdate:
		msg, err = decodeAs[GameUpdate](data)
	case TypeChat:
		msg, err = decodeAs[Chat](data)
	case TypeLeftRoom:
		msg, err = decodeAs[LeftRoom](data)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMessageType, t)
	}
	if err != nil {
		return nil, err
	}
	return msg, nil
}

// DecodeClient parses a frame sent by a client. Used by test servers and tools
// that sit on the server side of the socket.
func DecodeClient(data []byte) (ClientMessage, error) {
	t, err := peekType(data)
	if err != nil {
		return nil, err
	}

	var msg ClientMessage
	switch t {
	case TypeSetNick:
		msg, err = decodeAs[SetNick](data)
	case TypeGetDecks:
		msg, err = decodeAs[GetDecks](data)
	case TypeGetRooms:
		msg, err = decodeAs[GetRooms](data)
	case TypeCreateRoom:
		msg, err = decodeAs[CreateRoom](data)
	case TypeJoinRoom:
		msg, err = decodeAs[JoinRoom](data)
	case TypeLeaveRoom:
		msg, err = decodeAs[LeaveRoom](data)
	case TypeStartGame:
		msg, err = decodeAs[StartGame](data)
	case TypeChatMsg:
		msg, err = decodeAs[ChatMsg](data)
	case TypeSubmitCards:
		msg, err = decodeAs[SubmitCards](data)
	case TypePickWinner:
		msg, err = decodeAs[PickWinner](data)
	case TypePlayerReady:
		msg, err = decodeAs[PlayerReady](data)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMessageType, t)
	}
	if err != nil {
		return nil, err
	}
	return msg, nil
}

func peekType(data []byte) (MessageType, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return "", fmt.Errorf("%w: %w", ErrMalformedMessage, err)
	}
	if env.Type == "" {
		return "", fmt.Errorf("%w: missing type", ErrMalformedMessage)
	}
	return env.Type, nil
}

func decodeAs[T any](data []byte) (T, error) {
	var msg T
	if err := json.Unmarshal(data, &msg); err != nil {
		return msg, fmt.Errorf("%w: %w", ErrMalformedMessage, err)
	}
	return msg, nil
}
