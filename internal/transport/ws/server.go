package ws

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/cwrk-planet/chat-service/internal/domain"
	"github.com/cwrk-planet/chat-service/internal/metrics"
	"github.com/cwrk-planet/chat-service/internal/presence"

	"github.com/gorilla/websocket"
	"golang.org/x/time/rate"
)

type IdentityResolver interface {
	Resolve(ctx context.Context, token string) (domain.Identity, error)
}

type Presence interface {
	Connect(id domain.Identity) ([]domain.Identity, bool)
	Disconnect(userID int64) presence.Departure
	Typing(room string) []domain.Identity
}

type RoomSvc interface {
	Join(ctx context.Context, id domain.Identity, slug string) error
	Leave(ctx context.Context, id domain.Identity, slug string)
	Typing(ctx context.Context, id domain.Identity, slug string, isTyping bool) error
}

type ChatSvc interface {
	Send(ctx context.Context, id domain.Identity, slug, content string, replyTo *int64) (*domain.Message, error)
	Edit(ctx context.Context, id domain.Identity, messageID int64, content string) (*domain.Message, error)
	Delete(ctx context.Context, id domain.Identity, messageID int64) (*domain.Message, error)
}

type VoiceSvc interface {
	Join(id domain.Identity) bool
	Leave(id domain.Identity) bool
	Signal(id domain.Identity, targetID int64, signal json.RawMessage) bool
	SetSpeaking(id domain.Identity, speaking bool) bool
	Request(id domain.Identity)
}

type Options struct {
	PingInterval   time.Duration
	WriteTimeout   time.Duration
	SendBuffer     int
	ReadLimit      int64
	RateLimit      float64 // событий в секунду на соединение; 0 — без лимита
	RateBurst      int
	AllowedOrigins []string // пусто — любой Origin
}

func (o *Options) withDefaults() {
	if o.PingInterval <= 0 {
		o.PingInterval = 15 * time.Second
	}
	if o.WriteTimeout <= 0 {
		o.WriteTimeout = 5 * time.Second
	}
	if o.SendBuffer <= 0 {
		o.SendBuffer = 64
	}
	if o.ReadLimit <= 0 {
		o.ReadLimit = 64 << 10
	}
	if o.RateBurst <= 0 {
		o.RateBurst = 20
	}
}

type Server struct {
	upgrader websocket.Upgrader
	hub      *Hub
	resolver IdentityResolver
	presence Presence
	rooms    RoomSvc
	chat     ChatSvc
	voice    VoiceSvc
	metrics  *metrics.Metrics
	opts     Options

	// сериализует attach/connect и detach/disconnect одного и того же пользователя
	lifecycleMu sync.Mutex
}

func NewServer(
	hub *Hub,
	resolver IdentityResolver,
	presence Presence,
	rooms RoomSvc,
	chat ChatSvc,
	voice VoiceSvc,
	m *metrics.Metrics,
	opts Options,
) *Server {
	opts.withDefaults()
	if m == nil {
		m = metrics.New(nil)
	}
	s := &Server{
		hub:      hub,
		resolver: resolver,
		presence: presence,
		rooms:    rooms,
		chat:     chat,
		voice:    voice,
		metrics:  m,
		opts:     opts,
	}
	s.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     s.checkOrigin,
	}
	return s
}

func (s *Server) checkOrigin(r *http.Request) bool {
	if len(s.opts.AllowedOrigins) == 0 {
		return true
	}
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	for _, o := range s.opts.AllowedOrigins {
		if o == "*" || strings.EqualFold(o, origin) {
			return true
		}
	}
	return false
}

// WS endpoint: GET /ws?access_token=...
func (s *Server) HandleWS(w http.ResponseWriter, r *http.Request) {
	token := strings.TrimSpace(r.URL.Query().Get("access_token"))
	if token == "" {
		if auth := r.Header.Get("Authorization"); strings.HasPrefix(auth, "Bearer ") {
			token = strings.TrimSpace(auth[7:])
		}
	}

	id, err := s.resolver.Resolve(r.Context(), token)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			slog.Debug("ws unauthorized", "err", err)
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		slog.Error("ws identity lookup failed", slog.Any("err", err))
		http.Error(w, "identity lookup failed", http.StatusServiceUnavailable)
		return
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Warn("ws upgrade failed", "user", id.ID, "err", err)
		return
	}

	c := newWsConn(r.Context(), conn, id, s.opts.SendBuffer, s.opts.WriteTimeout)
	c.onSlow = s.metrics.SlowConsumers.Inc
	defer close(c.done)
	go c.writeLoop(s.opts.PingInterval)

	if !s.attach(r.Context(), c) {
		_ = c.Close()
		return
	}
	s.metrics.Connections.Inc()
	slog.Info("ws connected", "conn", c.id, "user", id.ID)

	s.readLoop(c)

	s.detach(c)
	s.metrics.Connections.Dec()
	_ = c.Close()
	slog.Info("ws disconnected", "conn", c.id, "user", id.ID)
}

// attach делает c активным соединением пользователя. Прежнее соединение закрывается,
// и регистрация ждёт, пока его обработчик доработает и отпустит состояние:
// события старого соединения не применяются после подключения нового.
func (s *Server) attach(ctx context.Context, c *wsConn) bool {
	for {
		s.lifecycleMu.Lock()
		prev := s.hub.Active(c.user.ID)
		if prev == nil {
			s.hub.Attach(c)
			roster, changed := s.presence.Connect(c.user)
			if !changed {
				// рассылки не было — снапшот только новому соединению
				_ = c.Send(Message{Type: TypeOnlineUpdate, Payload: OnlineUpdatePayload{Users: userItems(roster)}})
			}
			s.lifecycleMu.Unlock()
			return true
		}
		s.lifecycleMu.Unlock()

		if pc, ok := prev.(*wsConn); ok {
			pc.closeWith(CloseReplaced, "replaced by a new connection")
		} else {
			_ = prev.Close()
		}
		s.metrics.Replaced.Inc()
		slog.Info("ws connection replaced", "user", c.user.ID, "prev", prev.ID(), "conn", c.id)

		select {
		case <-prev.Done():
		case <-ctx.Done():
			return false
		}
	}
}

// detach: состояние освобождается, только если соединение ещё активное.
func (s *Server) detach(c *wsConn) {
	s.lifecycleMu.Lock()
	defer s.lifecycleMu.Unlock()

	if !s.hub.Detach(c) {
		return
	}
	if dep := s.presence.Disconnect(c.user.ID); dep.Changed() {
		slog.Debug("ws presence released", "conn", c.id, "user", c.user.ID,
			"typing_rooms", dep.TypingRooms, "voice", dep.Voice, "was_speaking", dep.WasSpeaking)
	}
}

func (s *Server) readLoop(c *wsConn) {
	var limiter *rate.Limiter
	if s.opts.RateLimit > 0 {
		limiter = rate.NewLimiter(rate.Limit(s.opts.RateLimit), s.opts.RateBurst)
	}

	c.conn.SetReadLimit(s.opts.ReadLimit)
	_ = c.conn.SetReadDeadline(time.Now().Add(2 * s.opts.PingInterval))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(2 * s.opts.PingInterval))
	})

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				slog.Debug("ws read failed", "conn", c.id, "user", c.user.ID, "err", err)
			}
			return
		}
		_ = c.conn.SetReadDeadline(time.Now().Add(2 * s.opts.PingInterval))
		if c.isClosed() {
			return
		}

		var msg Message
		if err := json.Unmarshal(data, &msg); err != nil {
			s.metrics.Event("invalid", "bad_json")
			continue
		}

		if limiter != nil && !limiter.Allow() {
			s.metrics.Event(msg.Type, "rate_limited")
			if msg.Ref != "" {
				s.ack(c, msg.Ref, AckPayload{Error: "rate_limited"})
			}
			continue
		}

		s.dispatch(c.ctx, c, msg)
	}
}
