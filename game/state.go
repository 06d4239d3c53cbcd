package game

import (
	"slices"

	"magecards/i18n"
	"magecards/protocol"
)

// MaxChatLines bounds the chat history kept in State.
const MaxChatLines = 200

// Notice is a server or validation message for the user. Inline notices are
// shown next to the login form; the others block until dismissed.
type Notice struct {
	Key    string
	Text   string
	Inline bool
}

// ChatLine is one received message. Seq numbers lines in arrival order,
// starting at 1, and is never reused.
type ChatLine struct {
	Seq     int
	Lobby   bool
	Author  string
	Message string
}

// State is everything one client knows. Controller never mutates a State it
// has handed out; each event yields a fresh value.
type State struct {
	Authenticated bool
	Nick          string
	PendingNick   string
	Room          string
	Rooms         []protocol.RoomSummary
	LobbyPlayers  []protocol.LobbyPlayer
	Decks         []string
	Chat          []ChatLine
	Snapshot      *Snapshot
	Selection     Selection

	// Set locally after the matching action is sent and cleared by the next
	// game update.
	Submitted bool
	Picked    bool
	Readied   bool

	Notice *Notice

	chatSeq int
}

// Phase derives the mirrored round phase. A joined room without any update
// yet counts as the lobby.
func (s State) Phase() Phase {
	switch {
	case s.Room == "":
		return PhaseUnjoined
	case s.Snapshot == nil:
		return PhaseLobby
	}
	return s.Snapshot.Phase
}

func (s State) View() (View, error) {
	return ViewFor(s)
}

func (s State) withNotice(key string) State {
	s.Notice = &Notice{Key: key, Text: i18n.Translate(key), Inline: !s.Authenticated}
	return s
}

func (s State) withInlineNotice(key string) State {
	s.Notice = &Notice{Key: key, Text: i18n.Translate(key), Inline: true}
	return s
}

func (s State) withChat(line ChatLine) State {
	s.chatSeq++
	line.Seq = s.chatSeq
	chat := append(slices.Clone(s.Chat), line)
	if len(chat) > MaxChatLines {
		chat = chat[len(chat)-MaxChatLines:]
	}
	s.Chat = chat
	return s
}

func (s State) leaveRoom() State {
	s.Room = ""
	s.Snapshot = nil
	s.Selection = Selection{}
	s.Submitted, s.Picked, s.Readied = false, false, false
	s.Chat = lobbyChat(s.Chat)
	return s
}

// lobbyChat drops the lines of the room being left.
func lobbyChat(chat []ChatLine) []ChatLine {
	return slices.DeleteFunc(slices.Clone(chat), func(l ChatLine) bool { return !l.Lobby })
}

// patchRoom replaces the room with the same name, appending it when unseen.
func patchRoom(rooms []protocol.RoomSummary, room protocol.RoomSummary) []protocol.RoomSummary {
	next := slices.Clone(rooms)
	i := slices.IndexFunc(next, func(r protocol.RoomSummary) bool { return r.Name == room.Name })
	if i < 0 {
		return append(next, room)
	}
	next[i] = room
	return next
}
