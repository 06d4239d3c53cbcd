package protocol

// MessageType is the "type" field of every JSON frame.
type MessageType string

// client -> server
const (
	TypeSetNick     MessageType = "SET_NICK"
	TypeGetDecks    MessageType = "GET_DECKS"
	TypeGetRooms    MessageType = "GET_ROOMS"
	TypeCreateRoom  MessageType = "CREATE_ROOM"
	TypeJoinRoom    MessageType = "JOIN_ROOM"
	TypeLeaveRoom   MessageType = "LEAVE_ROOM"
	TypeStartGame   MessageType = "START_GAME"
	TypeChatMsg     MessageType = "CHAT_MSG"
	TypeSubmitCards MessageType = "SUBMIT_CARDS"
	TypePickWinner  MessageType = "PICK_WINNER"
	TypePlayerReady MessageType = "PLAYER_READY"
)

// server -> client
const (
	TypeNickOk       MessageType = "NICK_OK"
	TypeError        MessageType = "ERROR"
	TypeRoomList     MessageType = "ROOM_LIST"
	TypeRoomUpdate   MessageType = "ROOM_UPDATE"
	TypeLobbyPlayers MessageType = "LOBBY_PLAYERS"
	TypeDeckList     MessageType = "DECK_LIST"
	TypeJoinRoomOk   MessageType = "JOIN_ROOM_OK"
	TypeGameUpdate   MessageType = "GAME_UPDATE"
	TypeChat         MessageType = "CHAT"
	TypeLeftRoom     MessageType = "LEFT_ROOM"
)

// ChatScopeLobby marks chat sent outside of any room.
const ChatScopeLobby = "LOBBY"

// ClientMessage is anything the client may send.
type ClientMessage interface {
	MessageType() MessageType
	clientMessage()
}

// ServerMessage is anything the server may push.
type ServerMessage interface {
	MessageType() MessageType
	serverMessage()
}

type SetNick struct {
	Type     MessageType `json:"type"`
	Nickname string      `json:"nickname"`
}

type GetDecks struct {
	Type MessageType `json:"type"`
}

type GetRooms struct {
	Type MessageType `json:"type"`
}

type CreateRoom struct {
	Type     MessageType  `json:"type"`
	Settings RoomSettings `json:"settings"`
}

type JoinRoom struct {
	Type     MessageType `json:"type"`
	Name     string      `json:"name"`
	Password *string     `json:"password,omitempty"`
}

type LeaveRoom struct {
	Type MessageType `json:"type"`
}

type StartGame struct {
	Type MessageType `json:"type"`
}

type ChatMsg struct {
	Type    MessageType `json:"type"`
	Message string      `json:"message"`
}

// SubmitCards carries hand card ids in slot fill order.
type SubmitCards struct {
	Type  MessageType `json:"type"`
	Cards []string    `json:"cards"`
}

// PickWinner names a submission by the id the server gave it.
type PickWinner struct {
	Type  MessageType `json:"type"`
	Index int         `json:"index"`
}

type PlayerReady struct {
	Type MessageType `json:"type"`
}

func (SetNick) MessageType() MessageType     { return TypeSetNick }
func (GetDecks) MessageType() MessageType    { return TypeGetDecks }
func (GetRooms) MessageType() MessageType    { return TypeGetRooms }
func (CreateRoom) MessageType() MessageType  { return TypeCreateRoom }
func (JoinRoom) MessageType() MessageType    { return TypeJoinRoom }
func (LeaveRoom) MessageType() MessageType   { return TypeLeaveRoom }
func (StartGame) MessageType() MessageType   { return TypeStartGame }
func (ChatMsg) MessageType() MessageType     { return TypeChatMsg }
func (SubmitCards) MessageType() MessageType { return TypeSubmitCards }
func (PickWinner) MessageType() MessageType  { return TypePickWinner }
func (PlayerReady) MessageType() MessageType { return TypePlayerReady }

func (SetNick) clientMessage() {}
func (GetDecks) clientMessage() {}
func (GetRooms) clientMessage() {}
func (CreateRoom) clientMessage() {}
func (JoinRoom) clientMessage() {}
func (LeaveRoom) clientMessage() {}
func (StartGame) clientMessage() {}
func (ChatMsg) clientMessage() {}
func (SubmitCards) clientMessage() {}
func (PickWinner) clientMessage() {}
func (PlayerReady) clientMessage() {}

func MakeSetNick(nickname string) SetNick { return SetNick{Type: TypeSetNick, Nickname: nickname} }
func MakeGetDecks() GetDecks               { return GetDecks{Type: TypeGetDecks} }
func MakeGetRooms() GetRooms               { return GetRooms{Type: TypeGetRooms} }
func MakeCreateRoom(settings RoomSettings) CreateRoom {
	return CreateRoom{Type: TypeCreateRoom, Settings: settings}
}
func MakeJoinRoom(name string, password *string) JoinRoom {
	return JoinRoom{Type: TypeJoinRoom, Name: name, Password: password}
}
func MakeLeaveRoom() LeaveRoom              { return LeaveRoom{Type: TypeLeaveRoom} }
func MakeStartGame() StartGame              { return StartGame{Type: TypeStartGame} }
func MakeChatMsg(message string) ChatMsg    { return ChatMsg{Type: TypeChatMsg, Message: message} }
func MakeSubmitCards(cards []string) SubmitCards {
	return SubmitCards{Type: TypeSubmitCards, Cards: cards}
}
func MakePickWinner(index int) PickWinner { return PickWinner{Type: TypePickWinner, Index: index} }
func MakePlayerReady() PlayerReady        { return PlayerReady{Type: TypePlayerReady} }

type NickOk struct {
	Type MessageType `json:"type"`
}

// Error.Message is either a key of the translation table or a literal sentence.
type Error struct {
	Type    MessageType `json:"type"`
	Message string      `json:"message"`
}

type RoomSummary struct {
	Name        string `json:"name"`
	Players     int    `json:"players"`
	Max         int    `json:"max"`
	HasPassword bool   `json:"has_password"`
}

// LobbyPlayer is a connected player; Room is nil while they sit in the lobby.
type LobbyPlayer struct {
	Nick string  `json:"nick"`
	Room *string `json:"room"`
}

type RoomList struct {
	Type    MessageType   `json:"type"`
	Rooms   []RoomSummary `json:"rooms"`
	Players []LobbyPlayer `json:"players,omitempty"`
}

// RoomUpdate patches one entry of the last RoomList.
type RoomUpdate struct {
	Type MessageType `json:"type"`
	Room RoomSummary `json:"room"`
}

type LobbyPlayers struct {
	Type    MessageType   `json:"type"`
	Players []LobbyPlayer `json:"players"`
}

type DeckList struct {
	Type  MessageType `json:"type"`
	Decks []string    `json:"decks"`
}

type JoinRoomOk struct {
	Type MessageType `json:"type"`
	Room string      `json:"room"`
}

type BlackCard struct {
	Text string `json:"text"`
	Pick int    `json:"pick"`
}

type HandCard struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// Submission.Author is only filled by the server once the round is summarized.
type Submission struct {
	ID       int    `json:"id"`
	FullText string `json:"full_text"`
	Author   string `json:"author,omitempty"`
	IsWinner bool   `json:"is_winner,omitempty"`
}

type ReadyStatus struct {
	Ready int `json:"ready"`
	Total int `json:"total"`
}

type RoomPlayer struct {
	Nick   string `json:"nick"`
	Score  int    `json:"score"`
	IsCzar bool   `json:"is_czar"`
}

// GameUpdate is a complete round snapshot as seen by one participant.
type GameUpdate struct {
	Type         MessageType  `json:"type"`
	Phase        string       `json:"phase"`
	BlackCard    *BlackCard   `json:"black_card"`
	Hand         []HandCard   `json:"hand"`
	IsCzar       bool         `json:"is_czar"`
	HasSubmitted bool         `json:"has_submitted"`
	Submissions  []Submission `json:"submissions"`
	ReadyStatus  ReadyStatus  `json:"ready_status"`
	AmIReady     bool         `json:"am_i_ready"`
	PlayersList  []RoomPlayer `json:"players_list"`
	Winner       *string      `json:"winner"`
	CanStartGame bool         `json:"can_start_game"`
	RoomName     string       `json:"room_name,omitempty"`
}

type Chat struct {
	Type    MessageType `json:"type"`
	Scope   string      `json:"scope,omitempty"`
	Author  string      `json:"author"`
	Message string      `json:"message"`
}

type LeftRoom struct {
	Type MessageType `json:"type"`
}

func (NickOk) MessageType() MessageType       { return TypeNickOk }
func (Error) MessageType() MessageType        { return TypeError }
func (RoomList) MessageType() MessageType     { return TypeRoomList }
func (RoomUpdate) MessageType() MessageType   { return TypeRoomUpdate }
func (LobbyPlayers) MessageType() MessageType { return TypeLobbyPlayers }
func (DeckList) MessageType() MessageType     { return TypeDeckList }
func (JoinRoomOk) MessageType() MessageType   { return TypeJoinRoomOk }
func (GameUpdate) MessageType() MessageType   { return TypeGameUpdate }
func (Chat) MessageType() MessageType         { return TypeChat }
func (LeftRoom) MessageType() MessageType     { return TypeLeftRoom }

func (NickOk) serverMessage() {}
func (Error) serverMessage() {}
func (RoomList) serverMessage() {}
func (RoomUpdate) serverMessage() {}
func (LobbyPlayers) serverMessage() {}
func (DeckList) serverMessage() {}
func (JoinRoomOk) serverMessage() {}
func (GameUpdate) serverMessage() {}
func (Chat) serverMessage() {}
func (LeftRoom) serverMessage() {}
