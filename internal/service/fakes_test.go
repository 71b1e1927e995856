package service

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/cwrk-planet/chat-service/internal/domain"
)

type fakeUsers struct {
	users map[int64]domain.Identity
}

func (f *fakeUsers) GetByID(_ context.Context, id int64) (domain.Identity, error) {
	u, ok := f.users[id]
	if !ok {
		return domain.Identity{}, domain.ErrUserNotFound
	}
	return u, nil
}

type fakeChannels struct {
	bySlug map[string]domain.Channel
}

func newFakeChannels(chs ...domain.Channel) *fakeChannels {
	f := &fakeChannels{bySlug: make(map[string]domain.Channel)}
	for _, ch := range chs {
		f.bySlug[ch.Slug] = ch
	}
	return f
}

func (f *fakeChannels) GetBySlug(_ context.Context, slug string) (domain.Channel, error) {
	ch, ok := f.bySlug[slug]
	if !ok {
		return domain.Channel{}, domain.ErrChannelNotFound
	}
	return ch, nil
}

func (f *fakeChannels) GetByID(_ context.Context, id int64) (domain.Channel, error) {
	for _, ch := range f.bySlug {
		if ch.ID == id {
			return ch, nil
		}
	}
	return domain.Channel{}, domain.ErrChannelNotFound
}

func (f *fakeChannels) List(context.Context) ([]domain.Channel, error) {
	out := make([]domain.Channel, 0, len(f.bySlug))
	for _, ch := range f.bySlug {
		out = append(out, ch)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Priority != out[j].Priority {
			return out[i].Priority > out[j].Priority
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

type ovKey struct{ ch, user int64 }

type fakeOverrides struct {
	mu    sync.Mutex
	rows  map[ovKey]domain.Override
	calls int
}

func newFakeOverrides() *fakeOverrides {
	return &fakeOverrides{rows: make(map[ovKey]domain.Override)}
}

func (f *fakeOverrides) set(o domain.Override) {
	f.mu.Lock()
	f.rows[ovKey{o.ChannelID, o.UserID}] = o
	f.mu.Unlock()
}

func (f *fakeOverrides) Get(_ context.Context, channelID, userID int64) (*domain.Override, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	o, ok := f.rows[ovKey{channelID, userID}]
	if !ok {
		return nil, nil
	}
	return &o, nil
}

var errHookFailed = errors.New("points hook failed")

type fakeMessages struct {
	mu       sync.Mutex
	nextID   int64
	rows     map[int64]domain.Message
	clock    time.Time
	failHook bool
	points   map[int64]int
}

func newFakeMessages() *fakeMessages {
	return &fakeMessages{
		rows:   make(map[int64]domain.Message),
		clock:  time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		points: make(map[int64]int),
	}
}

func (f *fakeMessages) tick() time.Time {
	f.clock = f.clock.Add(time.Second)
	return f.clock
}

func (f *fakeMessages) Create(_ context.Context, m *domain.Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	// хук в той же "транзакции": при ошибке ничего не сохраняется
	if f.failHook {
		return errHookFailed
	}
	f.nextID++
	m.ID = f.nextID
	m.CreatedAt = f.tick()
	m.UpdatedAt = m.CreatedAt
	f.rows[m.ID] = *m
	f.points[m.UserID]++
	return nil
}

func (f *fakeMessages) Get(_ context.Context, id int64) (*domain.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	m, ok := f.rows[id]
	if !ok {
		return nil, domain.ErrMessageNotFound
	}
	return &m, nil
}

func (f *fakeMessages) Mutate(_ context.Context, id int64, fn func(m *domain.Message) error) (*domain.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	m, ok := f.rows[id]
	if !ok {
		return nil, domain.ErrMessageNotFound
	}
	if err := fn(&m); err != nil {
		return nil, err
	}
	m.UpdatedAt = f.tick()
	f.rows[id] = m
	return &m, nil
}

func (f *fakeMessages) History(_ context.Context, channelID int64, _ string, limit int) ([]domain.Message, string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.Message
	for _, m := range f.rows {
		if m.ChannelID == channelID {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, "", nil
}

func (f *fakeMessages) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.rows)
}

type fakeCosmetics struct {
	accessories map[int64][]domain.Accessory
	public      []domain.Emoji
	granted     map[int64][]domain.Emoji
	fail        bool
}

func (f *fakeCosmetics) Accessories(_ context.Context, userID int64) ([]domain.Accessory, error) {
	if f.fail {
		return nil, errors.New("db down")
	}
	return f.accessories[userID], nil
}

func (f *fakeCosmetics) Emojis(_ context.Context, userID int64) ([]domain.Emoji, []domain.Emoji, error) {
	if f.fail {
		return nil, nil, errors.New("db down")
	}
	return f.public, f.granted[userID], nil
}

type fakeMarkers struct {
	mu      sync.Mutex
	touched map[ovKey]int64
}

func (f *fakeMarkers) Touch(_ context.Context, channelID, userID, messageID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.touched == nil {
		f.touched = make(map[ovKey]int64)
	}
	f.touched[ovKey{channelID, userID}] = messageID
	return nil
}

type fakeNotifications struct {
	mu   sync.Mutex
	rows []domain.Notification
	fail bool
}

func (f *fakeNotifications) Create(_ context.Context, n *domain.Notification) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail {
		return errors.New("insert failed")
	}
	n.ID = int64(len(f.rows) + 1)
	f.rows = append(f.rows, *n)
	return nil
}

type roomKey struct {
	user int64
	room string
}

type fakeRooms struct {
	mu      sync.Mutex
	members map[roomKey]bool
}

func newFakeRooms() *fakeRooms {
	return &fakeRooms{members: make(map[roomKey]bool)}
}

func (f *fakeRooms) Subscribe(userID int64, room string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	k := roomKey{userID, room}
	if f.members[k] {
		return false
	}
	f.members[k] = true
	return true
}

func (f *fakeRooms) Unsubscribe(userID int64, room string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	k := roomKey{userID, room}
	if !f.members[k] {
		return false
	}
	delete(f.members, k)
	return true
}

func (f *fakeRooms) IsMember(userID int64, room string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.members[roomKey{userID, room}]
}

type published struct {
	kind string
	room string
	to   int64
	view MessageView
	id   int64
	note domain.Notification
}

type fakePublisher struct {
	mu     sync.Mutex
	events []published
}

func (f *fakePublisher) add(p published) {
	f.mu.Lock()
	f.events = append(f.events, p)
	f.mu.Unlock()
}

func (f *fakePublisher) MessageCreated(room string, v MessageView) {
	f.add(published{kind: "new_message", room: room, view: v, id: v.ID})
}
func (f *fakePublisher) MessageUpdated(room string, v MessageView) {
	f.add(published{kind: "message_updated", room: room, view: v, id: v.ID})
}
func (f *fakePublisher) MessageDeleted(room string, id int64) {
	f.add(published{kind: "message_deleted", room: room, id: id})
}
func (f *fakePublisher) Notify(userID int64, n domain.Notification) {
	f.add(published{kind: "notification", to: userID, note: n})
}
func (f *fakePublisher) VoiceSignal(to, from int64, _ json.RawMessage) bool {
	f.add(published{kind: "voice_signal", to: to, id: from})
	return true
}
func (f *fakePublisher) VoiceRoster(to int64, members []domain.Identity, _ []int64) {
	f.add(published{kind: "voice_room_update", to: to, id: int64(len(members))})
}

func (f *fakePublisher) byKind(kind string) []published {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []published
	for _, e := range f.events {
		if e.kind == kind {
			out = append(out, e)
		}
	}
	return out
}

type fakeTyping struct {
	mu    sync.Mutex
	rooms map[string]map[int64]bool
}

func newFakeTyping() *fakeTyping {
	return &fakeTyping{rooms: make(map[string]map[int64]bool)}
}

func (f *fakeTyping) SetTyping(room string, userID int64, typing bool) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	set := f.rooms[room]
	if typing {
		if set == nil {
			set = make(map[int64]bool)
			f.rooms[room] = set
		}
		if set[userID] {
			return false
		}
		set[userID] = true
		return true
	}
	if !set[userID] {
		return false
	}
	delete(set, userID)
	if len(set) == 0 {
		delete(f.rooms, room)
	}
	return true
}

func (f *fakeTyping) isTyping(room string, userID int64) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.rooms[room][userID]
}

// fixture собирает сервисы поверх фейков.
type fixture struct {
	users    *fakeUsers
	channels *fakeChannels
	ovs      *fakeOverrides
	msgs     *fakeMessages
	cos      *fakeCosmetics
	markers  *fakeMarkers
	notes    *fakeNotifications
	rooms    *fakeRooms
	pub      *fakePublisher
	typing   *fakeTyping

	perms *PermissionService
	room  *RoomService
	chat  *ChatService
}

var (
	alice = domain.Identity{ID: 1, Username: "alice", DisplayName: "Alice"}
	bob   = domain.Identity{ID: 2, Username: "bob", DisplayName: "Bob"}
	admin = domain.Identity{ID: 99, Username: "root", IsAdmin: true}

	general = domain.Channel{ID: 10, Slug: "general", Name: "General", Defaults: domain.Capabilities{View: true, Read: true, Send: true}}
	notice  = domain.Channel{ID: 11, Slug: "notice", Name: "Notice", Defaults: domain.Capabilities{View: true, Read: true}}
	staff   = domain.Channel{ID: 12, Slug: "staff", Name: "Staff"}
)

func newFixture() *fixture {
	f := &fixture{
		users:    &fakeUsers{users: map[int64]domain.Identity{1: alice, 2: bob, 99: admin}},
		channels: newFakeChannels(general, notice, staff),
		ovs:      newFakeOverrides(),
		msgs:     newFakeMessages(),
		cos:      &fakeCosmetics{granted: map[int64][]domain.Emoji{}, accessories: map[int64][]domain.Accessory{}},
		markers:  &fakeMarkers{},
		notes:    &fakeNotifications{},
		rooms:    newFakeRooms(),
		pub:      &fakePublisher{},
		typing:   newFakeTyping(),
	}
	f.perms = NewPermissionService(f.channels, f.ovs)
	f.room = NewRoomService(f.perms, f.rooms, f.typing)
	f.chat = NewChatService(ChatDeps{
		Perms:         f.perms,
		Users:         f.users,
		Channels:      f.channels,
		Messages:      f.msgs,
		Cosmetics:     f.cos,
		Markers:       f.markers,
		Notifications: f.notes,
		Rooms:         f.rooms,
		Publisher:     f.pub,
	}, ChatConfig{MaxLength: 100})
	return f
}
