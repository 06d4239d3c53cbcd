package transport

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
)

const (
	pongWait     = time.Minute
	writeWait    = 10 * time.Second
	PingInterval = 30 * time.Second
)

var ErrDialFailed = errors.New("dial-failed")

// Connection is one duplex channel of JSON text frames.
type Connection interface {
	Read() ([]byte, error)
	Write(data []byte) error
	Ping() error
	Close(reason string)
}

type WebsocketConnection struct {
	socket *websocket.Conn
}

func (wc *WebsocketConnection) Write(data []byte) error {
	wc.socket.SetWriteDeadline(time.Now().Add(writeWait))
	return wc.socket.WriteMessage(websocket.TextMessage, data)
}

func (wc *WebsocketConnection) Ping() error {
	wc.socket.SetWriteDeadline(time.Now().Add(writeWait))
	return wc.socket.WriteMessage(websocket.PingMessage, nil)
}

func (wc *WebsocketConnection) Read() ([]byte, error) {
	_, p, err := wc.socket.ReadMessage()
	return p, err
}

// Close sends a close frame with reason and drops the socket. It must not run
// concurrently with Write or Ping.
func (wc *WebsocketConnection) Close(reason string) {
	wc.socket.SetWriteDeadline(time.Now().Add(time.Second))
	wc.socket.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, reason))
	wc.socket.Close()
}

// NewWebsocketConnection arms the read deadline. Every pong pushes it back.
func NewWebsocketConnection(conn *websocket.Conn) *WebsocketConnection {
	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(appData string) error {
		conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})
	return &WebsocketConnection{conn}
}

// Dial opens the game socket at url, e.g. ws://host:2137/ws.
func Dial(ctx context.Context, url string, header http.Header) (*WebsocketConnection, error) {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, url, header)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDialFailed, err)
	}
	return NewWebsocketConnection(conn), nil
}
