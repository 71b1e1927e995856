package ws

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/cwrk-planet/chat-service/internal/domain"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

var (
	errConnClosed   = errors.New("connection closed")
	errSlowConsumer = errors.New("send buffer full")
)

// Коды закрытия из приватного диапазона 4000-4999
const (
	CloseReplaced     = 4001
	CloseSlowConsumer = 4002
)

type Conn interface {
	ID() string
	UserID() int64
	Send(msg Message) error
	Close() error
	// Done закрывается, когда обработчик соединения завершился и отпустил состояние пользователя.
	Done() <-chan struct{}
}

type wsConn struct {
	id     string
	conn   *websocket.Conn
	user   domain.Identity
	send   chan Message
	closed chan struct{}
	done   chan struct{}
	once   sync.Once

	// ctx отменяется при закрытии: обработчики событий не переживают соединение
	ctx    context.Context
	cancel context.CancelFunc

	writeTimeout time.Duration
	onSlow       func()
}

func newWsConn(parent context.Context, c *websocket.Conn, user domain.Identity, buffer int, writeTimeout time.Duration) *wsConn {
	ctx, cancel := context.WithCancel(parent)
	return &wsConn{
		id:           uuid.NewString(),
		conn:         c,
		user:         user,
		send:         make(chan Message, buffer),
		closed:       make(chan struct{}),
		done:         make(chan struct{}),
		ctx:          ctx,
		cancel:       cancel,
		writeTimeout: writeTimeout,
	}
}

func (c *wsConn) ID() string            { return c.id }
func (c *wsConn) UserID() int64         { return c.user.ID }
func (c *wsConn) Done() <-chan struct{} { return c.done }

func (c *wsConn) isClosed() bool {
	select {
	case <-c.closed:
		return true
	default:
		return false
	}
}

// Send не блокируется: при переполненном буфере соединение закрывается.
// Вызывается под локами hub/registry, поэтому в сеть отсюда не пишем.
func (c *wsConn) Send(msg Message) error {
	if c.isClosed() {
		return errConnClosed
	}

	select {
	case c.send <- msg:
		return nil
	case <-c.closed:
		return errConnClosed
	default:
		slog.Warn("ws send buffer full, closing", "conn", c.id, "user", c.user.ID, "type", msg.Type)
		if c.onSlow != nil {
			c.onSlow()
		}
		c.closeWith(CloseSlowConsumer, "send buffer full")
		return errSlowConsumer
	}
}

func (c *wsConn) Close() error {
	c.closeWith(websocket.CloseNormalClosure, "")
	return nil
}

// closeWith помечает соединение закрытым сразу, а close-фрейм и закрытие сокета
// уходят в отдельную горутину.
func (c *wsConn) closeWith(code int, reason string) {
	c.once.Do(func() {
		close(c.closed)
		c.cancel()
		go func() {
			_ = c.conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(code, reason),
				time.Now().Add(time.Second))
			_ = c.conn.Close()
		}()
	})
}

func (c *wsConn) writeLoop(pingEvery time.Duration) {
	ticker := time.NewTicker(pingEvery)
	defer ticker.Stop()

	for {
		select {
		case msg := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(c.writeTimeout))
			if err := c.conn.WriteJSON(msg); err != nil {
				slog.Debug("ws write failed", "conn", c.id, "user", c.user.ID, "err", err)
				_ = c.Close()
				return
			}
		case <-ticker.C:
			if err := c.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(c.writeTimeout)); err != nil {
				_ = c.Close()
				return
			}
		case <-c.closed:
			return
		}
	}
}
