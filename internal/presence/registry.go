package presence

import (
	"sort"
	"sync"

	"github.com/cwrk-planet/chat-service/internal/domain"
)

// Notifier получает ростеры после каждой фактической мутации.
// Вызывается под локом реестра: реализация не должна блокироваться и звать Registry.
type Notifier interface {
	OnlineChanged(roster []domain.Identity)
	TypingChanged(room string, typing []domain.Identity)
	VoiceChanged(members []domain.Identity)
	SpeakingChanged(speaking []int64)
}

// Departure — что именно было снято с пользователя при отключении.
type Departure struct {
	Online      bool
	TypingRooms []string
	Voice       bool
	WasSpeaking bool
}

// Changed — отключение что-то изменило.
func (d Departure) Changed() bool {
	return d.Online || len(d.TypingRooms) > 0 || d.Voice || d.WasSpeaking
}

// Registry — эфемерное состояние процесса: онлайн, typing по комнатам, голосовая комната.
// Все контейнеры под одним мьютексом; Notifier вызывается под ним же, в порядке мутаций.
type Registry struct {
	mu sync.Mutex

	online   map[int64]domain.Identity
	typing   map[string]map[int64]struct{} // room -> userIDs
	voice    map[int64]struct{}
	speaking map[int64]struct{} // всегда ⊆ voice

	notify Notifier
}

func NewRegistry(n Notifier) *Registry {
	if n == nil {
		n = nopNotifier{}
	}
	return &Registry{
		online:   make(map[int64]domain.Identity),
		typing:   make(map[string]map[int64]struct{}),
		voice:    make(map[int64]struct{}),
		speaking: make(map[int64]struct{}),
		notify:   n,
	}
}

// Connect добавляет пользователя в онлайн и возвращает снапшот ростера.
func (r *Registry) Connect(id domain.Identity) ([]domain.Identity, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, was := r.online[id.ID]
	r.online[id.ID] = id
	roster := r.onlineLocked()
	if !was {
		r.notify.OnlineChanged(roster)
	}
	return roster, !was
}

// Disconnect снимает пользователя отовсюду. Для неизвестного пользователя — no-op.
func (r *Registry) Disconnect(userID int64) Departure {
	r.mu.Lock()
	defer r.mu.Unlock()

	var d Departure

	for room, set := range r.typing {
		if _, ok := set[userID]; ok {
			d.TypingRooms = append(d.TypingRooms, room)
		}
	}
	sort.Strings(d.TypingRooms)
	for _, room := range d.TypingRooms {
		r.clearTypingLocked(room, userID)
		r.notify.TypingChanged(room, r.typingLocked(room))
	}

	d.Voice, d.WasSpeaking = r.leaveVoiceLocked(userID)
	if d.Voice {
		r.notify.VoiceChanged(r.voiceLocked())
	}
	if d.WasSpeaking {
		r.notify.SpeakingChanged(r.speakingLocked())
	}

	if _, ok := r.online[userID]; ok {
		delete(r.online, userID)
		d.Online = true
		r.notify.OnlineChanged(r.onlineLocked())
	}

	return d
}

func (r *Registry) IsOnline(userID int64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.online[userID]
	return ok
}

func (r *Registry) Online() []domain.Identity {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.onlineLocked()
}

// SetTyping меняет typing-флаг в комнате. Возвращает true, если набор изменился.
func (r *Registry) SetTyping(room string, userID int64, typing bool) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	var changed bool
	if typing {
		set, ok := r.typing[room]
		if !ok {
			set = make(map[int64]struct{})
			r.typing[room] = set
		}
		if _, ok := set[userID]; !ok {
			set[userID] = struct{}{}
			changed = true
		}
	} else {
		changed = r.clearTypingLocked(room, userID)
	}

	if changed {
		r.notify.TypingChanged(room, r.typingLocked(room))
	}
	return changed
}

// ClearTyping — то же, что SetTyping(room, userID, false).
func (r *Registry) ClearTyping(room string, userID int64) bool {
	return r.SetTyping(room, userID, false)
}

func (r *Registry) Typing(room string) []domain.Identity {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.typingLocked(room)
}

// TypingRooms — список комнат с непустым typing-набором.
func (r *Registry) TypingRooms() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]string, 0, len(r.typing))
	for room := range r.typing {
		out = append(out, room)
	}
	sort.Strings(out)
	return out
}

// JoinVoice добавляет в голосовую комнату. Возвращает true, если пользователя там не было.
func (r *Registry) JoinVoice(userID int64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.voice[userID]; ok {
		return false
	}
	r.voice[userID] = struct{}{}
	r.notify.VoiceChanged(r.voiceLocked())
	return true
}

// LeaveVoice убирает из голосовой комнаты и из speaking.
func (r *Registry) LeaveVoice(userID int64) (left, speakingChanged bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	left, speakingChanged = r.leaveVoiceLocked(userID)
	if left {
		r.notify.VoiceChanged(r.voiceLocked())
	}
	if speakingChanged {
		r.notify.SpeakingChanged(r.speakingLocked())
	}
	return left, speakingChanged
}

func (r *Registry) InVoice(userID int64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.voice[userID]
	return ok
}

// BothInVoice проверяет обоих участников под одним локом.
func (r *Registry) BothInVoice(a, b int64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, okA := r.voice[a]
	_, okB := r.voice[b]
	return okA && okB
}

// SetSpeaking — no-op, если пользователь не в голосовой комнате или флаг не изменился.
func (r *Registry) SetSpeaking(userID int64, speaking bool) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.voice[userID]; !ok {
		return false
	}
	_, was := r.speaking[userID]
	if was == speaking {
		return false
	}
	if speaking {
		r.speaking[userID] = struct{}{}
	} else {
		delete(r.speaking, userID)
	}
	r.notify.SpeakingChanged(r.speakingLocked())
	return true
}

func (r *Registry) Voice() []domain.Identity {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.voiceLocked()
}

func (r *Registry) Speaking() []int64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.speakingLocked()
}

// Stats — размеры контейнеров для метрик.
type Stats struct {
	Online      int
	TypingRooms int
	Voice       int
	Speaking    int
}

func (r *Registry) Stats() Stats {
	r.mu.Lock()
	defer r.mu.Unlock()

	return Stats{
		Online:      len(r.online),
		TypingRooms: len(r.typing),
		Voice:       len(r.voice),
		Speaking:    len(r.speaking),
	}
}

// --- helpers (вызываются под r.mu) ---

func (r *Registry) clearTypingLocked(room string, userID int64) bool {
	set, ok := r.typing[room]
	if !ok {
		return false
	}
	if _, ok := set[userID]; !ok {
		return false
	}
	delete(set, userID)
	if len(set) == 0 {
		delete(r.typing, room)
	}
	return true
}

func (r *Registry) leaveVoiceLocked(userID int64) (left, speakingChanged bool) {
	if _, ok := r.voice[userID]; !ok {
		return false, false
	}
	delete(r.voice, userID)
	if _, ok := r.speaking[userID]; ok {
		delete(r.speaking, userID)
		speakingChanged = true
	}
	return true, speakingChanged
}

func (r *Registry) identity(userID int64) domain.Identity {
	if id, ok := r.online[userID]; ok {
		return id
	}
	return domain.Identity{ID: userID}
}

func (r *Registry) onlineLocked() []domain.Identity {
	out := make([]domain.Identity, 0, len(r.online))
	for _, id := range r.online {
		out = append(out, id)
	}
	sortIdentities(out)
	return out
}

func (r *Registry) typingLocked(room string) []domain.Identity {
	set := r.typing[room]
	out := make([]domain.Identity, 0, len(set))
	for uid := range set {
		out = append(out, r.identity(uid))
	}
	sortIdentities(out)
	return out
}

func (r *Registry) voiceLocked() []domain.Identity {
	out := make([]domain.Identity, 0, len(r.voice))
	for uid := range r.voice {
		out = append(out, r.identity(uid))
	}
	sortIdentities(out)
	return out
}

func (r *Registry) speakingLocked() []int64 {
	out := make([]int64, 0, len(r.speaking))
	for uid := range r.speaking {
		out = append(out, uid)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func sortIdentities(ids []domain.Identity) {
	sort.Slice(ids, func(i, j int) bool { return ids[i].ID < ids[j].ID })
}

type nopNotifier struct{}

func (nopNotifier) OnlineChanged([]domain.Identity)         {}
func (nopNotifier) TypingChanged(string, []domain.Identity) {}
func (nopNotifier) VoiceChanged([]domain.Identity)          {}
func (nopNotifier) SpeakingChanged([]int64)                 {}
