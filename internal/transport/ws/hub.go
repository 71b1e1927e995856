package ws

import (
	"sort"
	"sync"
)

// Hub — pub/sub по комнатам. На пользователя одно активное соединение.
type Hub struct {
	mu     sync.RWMutex
	users  map[int64]Conn                // userID -> активное соединение
	rooms  map[string]map[int64]struct{} // room -> userIDs
	joined map[int64]map[string]struct{} // userID -> rooms
}

func NewHub() *Hub {
	return &Hub{
		users:  make(map[int64]Conn),
		rooms:  make(map[string]map[int64]struct{}),
		joined: make(map[int64]map[string]struct{}),
	}
}

// Attach делает c активным соединением пользователя и возвращает вытесненное (или nil).
// Подписки вытесненного соединения сбрасываются.
func (h *Hub) Attach(c Conn) Conn {
	h.mu.Lock()
	defer h.mu.Unlock()

	prev := h.users[c.UserID()]
	if prev != nil {
		h.dropRoomsLocked(c.UserID())
	}
	h.users[c.UserID()] = c
	return prev
}

// Active — текущее соединение пользователя или nil.
func (h *Hub) Active(userID int64) Conn {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return h.users[userID]
}

// Detach убирает c, только если оно всё ещё активное. false — соединение уже вытеснено.
func (h *Hub) Detach(c Conn) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	cur, ok := h.users[c.UserID()]
	if !ok || cur.ID() != c.ID() {
		return false
	}
	delete(h.users, c.UserID())
	h.dropRoomsLocked(c.UserID())
	return true
}

func (h *Hub) Subscribe(userID int64, room string) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.users[userID]; !ok {
		return false
	}
	rs, ok := h.rooms[room]
	if !ok {
		rs = make(map[int64]struct{})
		h.rooms[room] = rs
	}
	if _, ok := rs[userID]; ok {
		return false
	}
	rs[userID] = struct{}{}

	js, ok := h.joined[userID]
	if !ok {
		js = make(map[string]struct{})
		h.joined[userID] = js
	}
	js[room] = struct{}{}
	return true
}

func (h *Hub) Unsubscribe(userID int64, room string) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.unsubscribeLocked(userID, room)
}

func (h *Hub) IsMember(userID int64, room string) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()

	_, ok := h.rooms[room][userID]
	return ok
}

// Rooms — комнаты, на которые подписан пользователь.
func (h *Hub) Rooms(userID int64) []string {
	h.mu.RLock()
	defer h.mu.RUnlock()

	out := make([]string, 0, len(h.joined[userID]))
	for room := range h.joined[userID] {
		out = append(out, room)
	}
	sort.Strings(out)
	return out
}

func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.users)
}

func (h *Hub) Broadcast(room string, msg Message) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for uid := range h.rooms[room] {
		if c, ok := h.users[uid]; ok {
			_ = c.Send(msg) // best-effort
		}
	}
}

func (h *Hub) BroadcastAll(msg Message) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, c := range h.users {
		_ = c.Send(msg)
	}
}

// SendTo — точечная отправка активному соединению пользователя.
func (h *Hub) SendTo(userID int64, msg Message) bool {
	h.mu.RLock()
	c, ok := h.users[userID]
	h.mu.RUnlock()
	if !ok {
		return false
	}
	return c.Send(msg) == nil
}

// CloseAll закрывает все активные соединения (graceful shutdown).
// Отписка и presence отрабатывают в readLoop, как при обычном разрыве.
func (h *Hub) CloseAll() int {
	h.mu.RLock()
	conns := make([]Conn, 0, len(h.users))
	for _, c := range h.users {
		conns = append(conns, c)
	}
	h.mu.RUnlock()

	for _, c := range conns {
		_ = c.Close()
	}
	return len(conns)
}

func (h *Hub) unsubscribeLocked(userID int64, room string) bool {
	rs, ok := h.rooms[room]
	if !ok {
		return false
	}
	if _, ok := rs[userID]; !ok {
		return false
	}
	delete(rs, userID)
	if len(rs) == 0 {
		delete(h.rooms, room)
	}
	if js, ok := h.joined[userID]; ok {
		delete(js, room)
		if len(js) == 0 {
			delete(h.joined, userID)
		}
	}
	return true
}

func (h *Hub) dropRoomsLocked(userID int64) {
	for room := range h.joined[userID] {
		h.unsubscribeLocked(userID, room)
	}
}
