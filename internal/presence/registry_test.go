package presence

import (
	"math/rand"
	"sync"
	"testing"

	"github.com/cwrk-planet/chat-service/internal/domain"
)

type event struct {
	kind string
	room string
	ids  []int64
}

type recorder struct {
	mu     sync.Mutex
	events []event
}

func ids(list []domain.Identity) []int64 {
	out := make([]int64, 0, len(list))
	for _, id := range list {
		out = append(out, id.ID)
	}
	return out
}

func (r *recorder) add(e event) {
	r.mu.Lock()
	r.events = append(r.events, e)
	r.mu.Unlock()
}

func (r *recorder) OnlineChanged(roster []domain.Identity) {
	r.add(event{kind: "online", ids: ids(roster)})
}
func (r *recorder) TypingChanged(room string, typing []domain.Identity) {
	r.add(event{kind: "typing", room: room, ids: ids(typing)})
}
func (r *recorder) VoiceChanged(members []domain.Identity) {
	r.add(event{kind: "voice", ids: ids(members)})
}
func (r *recorder) SpeakingChanged(speaking []int64) {
	r.add(event{kind: "speaking", ids: speaking})
}

func (r *recorder) count(kind string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, e := range r.events {
		if e.kind == kind {
			n++
		}
	}
	return n
}

func (r *recorder) reset() {
	r.mu.Lock()
	r.events = nil
	r.mu.Unlock()
}

func TestConnect_BroadcastsOnlyOnChange(t *testing.T) {
	rec := &recorder{}
	r := NewRegistry(rec)

	roster, changed := r.Connect(domain.Identity{ID: 1, Username: "a"})
	if !changed || len(roster) != 1 {
		t.Fatalf("first connect: changed=%v roster=%v", changed, roster)
	}
	_, changed = r.Connect(domain.Identity{ID: 1, Username: "a"})
	if changed {
		t.Fatalf("second connect of same identity must not change the set")
	}
	if got := rec.count("online"); got != 1 {
		t.Fatalf("expected 1 online broadcast, got %d", got)
	}
	if len(r.Online()) != 1 {
		t.Fatalf("identity must appear at most once")
	}
}

func TestDisconnect_UnknownIsNoop(t *testing.T) {
	rec := &recorder{}
	r := NewRegistry(rec)

	d := r.Disconnect(42)
	if d.Changed() {
		t.Fatalf("disconnect of unknown identity changed state: %+v", d)
	}
	if len(rec.events) != 0 {
		t.Fatalf("expected no broadcasts, got %+v", rec.events)
	}
}

func TestDisconnect_ClearsEverything(t *testing.T) {
	rec := &recorder{}
	r := NewRegistry(rec)

	r.Connect(domain.Identity{ID: 1})
	r.Connect(domain.Identity{ID: 2})
	r.SetTyping("general", 1, true)
	r.SetTyping("random", 1, true)
	r.SetTyping("random", 2, true)
	r.JoinVoice(1)
	r.SetSpeaking(1, true)
	rec.reset()

	d := r.Disconnect(1)
	if !d.Online || !d.Voice || !d.WasSpeaking || len(d.TypingRooms) != 2 {
		t.Fatalf("unexpected departure: %+v", d)
	}
	if r.IsOnline(1) || r.InVoice(1) || len(r.Speaking()) != 0 {
		t.Fatalf("state not released")
	}
	if len(r.Typing("general")) != 0 {
		t.Fatalf("typing not cleared")
	}
	if got := r.TypingRooms(); len(got) != 1 || got[0] != "random" {
		t.Fatalf("empty typing room must be removed, rooms=%v", got)
	}
	// по одной рассылке на каждый изменённый контейнер
	if rec.count("typing") != 2 || rec.count("voice") != 1 || rec.count("speaking") != 1 || rec.count("online") != 1 {
		t.Fatalf("unexpected broadcasts: %+v", rec.events)
	}

	rec.reset()
	if d := r.Disconnect(1); d.Changed() {
		t.Fatalf("second disconnect must be a no-op: %+v", d)
	}
	if len(rec.events) != 0 {
		t.Fatalf("no broadcasts expected on repeated disconnect: %+v", rec.events)
	}
}

func TestTyping_NoEmptyRooms(t *testing.T) {
	r := NewRegistry(nil)

	if r.SetTyping("general", 1, false) {
		t.Fatalf("stop typing for non-typing user must not change state")
	}
	if len(r.TypingRooms()) != 0 {
		t.Fatalf("stop typing must not create rooms")
	}
	r.SetTyping("general", 1, true)
	if r.SetTyping("general", 1, true) {
		t.Fatalf("repeated typing=true must not change state")
	}
	r.ClearTyping("general", 1)
	if len(r.TypingRooms()) != 0 {
		t.Fatalf("room with empty typing set must be removed")
	}
}

func TestSetSpeaking_RequiresVoiceAndDedups(t *testing.T) {
	rec := &recorder{}
	r := NewRegistry(rec)

	if r.SetSpeaking(1, true) {
		t.Fatalf("non-member cannot speak")
	}
	r.JoinVoice(1)
	if !r.SetSpeaking(1, true) {
		t.Fatalf("member should start speaking")
	}
	if r.SetSpeaking(1, true) {
		t.Fatalf("repeated identical state must not change")
	}
	if rec.count("speaking") != 1 {
		t.Fatalf("expected exactly one speaking broadcast, got %d", rec.count("speaking"))
	}

	left, spk := r.LeaveVoice(1)
	if !left || !spk {
		t.Fatalf("leave voice: left=%v speakingChanged=%v", left, spk)
	}
	if len(r.Speaking()) != 0 {
		t.Fatalf("speaking must be cleared on leave")
	}
}

func TestLeaveVoice_NotSpeakingNoActivityBroadcast(t *testing.T) {
	rec := &recorder{}
	r := NewRegistry(rec)

	r.JoinVoice(3)
	rec.reset()
	left, spk := r.LeaveVoice(3)
	if !left || spk {
		t.Fatalf("left=%v speakingChanged=%v", left, spk)
	}
	if rec.count("speaking") != 0 || rec.count("voice") != 1 {
		t.Fatalf("unexpected broadcasts: %+v", rec.events)
	}
}

func TestBothInVoice(t *testing.T) {
	r := NewRegistry(nil)
	r.JoinVoice(1)
	if r.BothInVoice(1, 2) || r.BothInVoice(2, 1) {
		t.Fatalf("2 is not a voice member")
	}
	r.JoinVoice(2)
	if !r.BothInVoice(1, 2) {
		t.Fatalf("both are members")
	}
}

func TestRosterUsesConnectedIdentity(t *testing.T) {
	r := NewRegistry(nil)
	r.Connect(domain.Identity{ID: 5, DisplayName: "Eve"})
	r.JoinVoice(5)
	v := r.Voice()
	if len(v) != 1 || v[0].DisplayName != "Eve" {
		t.Fatalf("voice roster should carry identity info: %+v", v)
	}
}

func subset(speaking []int64, voice []domain.Identity) bool {
	members := make(map[int64]bool, len(voice))
	for _, v := range voice {
		members[v.ID] = true
	}
	for _, s := range speaking {
		if !members[s] {
			return false
		}
	}
	return true
}

func TestInvariants_RandomSequences(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	r := NewRegistry(nil)
	rooms := []string{"general", "random", "dev"}

	for i := 0; i < 5000; i++ {
		uid := int64(rnd.Intn(6) + 1)
		switch rnd.Intn(7) {
		case 0:
			r.Connect(domain.Identity{ID: uid})
		case 1:
			r.Disconnect(uid)
		case 2:
			r.JoinVoice(uid)
		case 3:
			r.LeaveVoice(uid)
		case 4:
			r.SetSpeaking(uid, rnd.Intn(2) == 0)
		case 5:
			r.SetTyping(rooms[rnd.Intn(len(rooms))], uid, rnd.Intn(2) == 0)
		case 6:
			r.ClearTyping(rooms[rnd.Intn(len(rooms))], uid)
		}

		if !subset(r.Speaking(), r.Voice()) {
			t.Fatalf("step %d: speaking is not a subset of voice", i)
		}
		for _, room := range r.TypingRooms() {
			if len(r.Typing(room)) == 0 {
				t.Fatalf("step %d: room %q has empty typing set", i, room)
			}
		}
	}
}

func TestConcurrentAccess(t *testing.T) {
	r := NewRegistry(&recorder{})
	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func(uid int64) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				r.Connect(domain.Identity{ID: uid})
				r.SetTyping("general", uid, true)
				r.JoinVoice(uid)
				r.SetSpeaking(uid, i%2 == 0)
				r.Disconnect(uid)
			}
		}(int64(w + 1))
	}
	wg.Wait()

	st := r.Stats()
	if st.Online != 0 || st.TypingRooms != 0 || st.Voice != 0 || st.Speaking != 0 {
		t.Fatalf("state leaked after all disconnects: %+v", st)
	}
}
