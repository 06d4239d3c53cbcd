package game

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"magecards/protocol"
)

var (
	ErrActionNotAllowed  = errors.New("action-not-allowed")
	ErrNicknameRequired  = errors.New("nickname-required")
	ErrEmptyChatMessage  = errors.New("empty-chat-message")
	ErrUpdateOutsideRoom = errors.New("update-outside-room")
)

// Intent is a user action offered to the Controller.
type Intent interface {
	isIntent()
}

type SetNick struct{ Nickname string }
type RequestDecks struct{}
type RequestRooms struct{}
type CreateRoom struct{ Settings protocol.RoomSettings }
type JoinRoom struct {
	Name     string
	Password *string
}
type LeaveRoom struct{}
type StartGame struct{}
type SendChat struct{ Message string }
type ToggleCard struct{ ID string }
type SubmitCards struct{}
type PickWinner struct{ SubmissionID int }
type Ready struct{}
type DismissNotice struct{}

func (SetNick) isIntent()       {}
func (RequestDecks) isIntent()  {}
func (RequestRooms) isIntent()  {}
func (CreateRoom) isIntent()    {}
func (JoinRoom) isIntent()      {}
func (LeaveRoom) isIntent()     {}
func (StartGame) isIntent()     {}
func (SendChat) isIntent()      {}
func (ToggleCard) isIntent()    {}
func (SubmitCards) isIntent()   {}
func (PickWinner) isIntent()    {}
func (Ready) isIntent()         {}
func (DismissNotice) isIntent() {}

// Controller folds server messages and user intents into State. It is owned
// by a single goroutine and is not safe for concurrent use.
type Controller struct {
	state State
}

func NewController() *Controller {
	return &Controller{}
}

func (c *Controller) State() State {
	return c.state
}

// HandleServer applies one inbound message. On error the state is left as it
// was and the message should be dropped.
func (c *Controller) HandleServer(msg protocol.ServerMessage) (State, error) {
	next := c.state

	switch m := msg.(type) {
	case protocol.NickOk:
		next.Authenticated = true
		next.Nick = next.PendingNick
		next.Notice = nil
	case protocol.Error:
		next = next.withNotice(m.Message)
	case protocol.RoomList:
		next.Rooms = orEmpty(m.Rooms)
		if m.Players != nil {
			next.LobbyPlayers = orEmpty(m.Players)
		}
	case protocol.RoomUpdate:
		next.Rooms = patchRoom(next.Rooms, m.Room)
	case protocol.LobbyPlayers:
		next.LobbyPlayers = orEmpty(m.Players)
	case protocol.DeckList:
		next.Decks = orEmpty(m.Decks)
	case protocol.JoinRoomOk:
		next = next.leaveRoom()
		next.Room = m.Room
	case protocol.GameUpdate:
		var err error
		if next, err = applyUpdate(next, m); err != nil {
			return c.state, err
		}
	case protocol.Chat:
		next = next.withChat(ChatLine{
			Lobby:   m.Scope == protocol.ChatScopeLobby,
			Author:  m.Author,
			Message: m.Message,
		})
	case protocol.LeftRoom:
		next = next.leaveRoom()
	default:
		return c.state, fmt.Errorf("%w: %T", protocol.ErrUnknownMessageType, msg)
	}

	c.state = next
	return next, nil
}

func applyUpdate(s State, u protocol.GameUpdate) (State, error) {
	snap, err := SnapshotFrom(u)
	if err != nil {
		return s, fmt.Errorf("%w: %w", protocol.ErrMalformedMessage, err)
	}
	if s.Room == "" {
		if snap.RoomName == "" {
			return s, ErrUpdateOutsideRoom
		}
		s.Room = snap.RoomName
	}

	prev := s.Snapshot
	sameStep := prev != nil && prev.Phase == snap.Phase && prev.sameRound(snap)

	switch {
	case !snap.selecting():
		s.Selection = Selection{}
	case sameStep && prev.selecting():
		s.Selection = s.Selection.retain(snap.HandIDs())
	default:
		s.Selection = ArmSelection(snap.HandIDs(), snap.RequiredPick())
	}
	// the snapshot decides from here on; a rejected submit or pick shows up
	// as has_submitted=false or a winnerless JUDGING update
	s.Submitted, s.Picked, s.Readied = false, false, false

	s.Snapshot = &snap
	return s, nil
}

// Dispatch turns an intent into outbound messages. Intents the current view
// does not offer fail with ErrActionNotAllowed and send nothing.
func (c *Controller) Dispatch(in Intent) ([]protocol.ClientMessage, State, error) {
	s := c.state
	view, err := ViewFor(s)
	if err != nil {
		return nil, s, err
	}

	var out []protocol.ClientMessage
	switch in := in.(type) {
	case SetNick:
		nick := strings.TrimSpace(in.Nickname)
		if s.Authenticated {
			return nil, s, ErrActionNotAllowed
		}
		if nick == "" {
			return nil, s, ErrNicknameRequired
		}
		s.PendingNick = nick
		out = append(out, protocol.MakeSetNick(nick))

	case RequestDecks:
		if !s.Authenticated {
			return nil, s, ErrActionNotAllowed
		}
		out = append(out, protocol.MakeGetDecks())

	case RequestRooms:
		if !s.Authenticated {
			return nil, s, ErrActionNotAllowed
		}
		out = append(out, protocol.MakeGetRooms())

	case CreateRoom:
		if !s.Authenticated || s.Room != "" {
			return nil, s, ErrActionNotAllowed
		}
		if err := in.Settings.Validate(); err != nil {
			s = s.withInlineNotice(protocol.ErrorKey(err))
			c.state = s
			return nil, s, err
		}
		settings := in.Settings
		settings.Name = strings.TrimSpace(settings.Name)
		settings.Decks = slices.Clone(settings.Decks)
		out = append(out, protocol.MakeCreateRoom(settings))

	case JoinRoom:
		if !s.Authenticated || s.Room != "" {
			return nil, s, ErrActionNotAllowed
		}
		if strings.TrimSpace(in.Name) == "" {
			s = s.withInlineNotice("ERR_ROOM_NAME_REQUIRED")
			c.state = s
			return nil, s, protocol.ErrRoomNameRequired
		}
		out = append(out, protocol.MakeJoinRoom(in.Name, in.Password))

	case LeaveRoom:
		if s.Room == "" {
			return nil, s, ErrActionNotAllowed
		}
		out = append(out, protocol.MakeLeaveRoom())

	case StartGame:
		if v, ok := view.(LobbyView); !ok || !v.CanStart {
			return nil, s, ErrActionNotAllowed
		}
		out = append(out, protocol.MakeStartGame())

	case SendChat:
		if !s.Authenticated {
			return nil, s, ErrActionNotAllowed
		}
		msg := strings.TrimSpace(in.Message)
		if msg == "" {
			return nil, s, ErrEmptyChatMessage
		}
		out = append(out, protocol.MakeChatMsg(msg))

	case ToggleCard:
		if _, ok := view.(HandView); !ok {
			return nil, s, ErrActionNotAllowed
		}
		s.Selection = s.Selection.Toggle(in.ID)

	case SubmitCards:
		if _, ok := view.(HandView); !ok {
			return nil, s, ErrActionNotAllowed
		}
		ids, sel, ok := s.Selection.Submit()
		if !ok {
			return nil, s, ErrActionNotAllowed
		}
		s.Selection = sel
		s.Submitted = true
		out = append(out, protocol.MakeSubmitCards(ids))

	case PickWinner:
		v, ok := view.(JudgingView)
		if !ok || !v.CanPick || !s.Snapshot.hasSubmission(in.SubmissionID) {
			return nil, s, ErrActionNotAllowed
		}
		s.Picked = true
		out = append(out, protocol.MakePickWinner(in.SubmissionID))

	case Ready:
		if v, ok := view.(SummaryView); !ok || !v.ReadyEnabled {
			return nil, s, ErrActionNotAllowed
		}
		s.Readied = true
		out = append(out, protocol.MakePlayerReady())

	case DismissNotice:
		s.Notice = nil

	default:
		return nil, s, fmt.Errorf("%w: %T", ErrActionNotAllowed, in)
	}

	c.state = s
	return out, s, nil
}
