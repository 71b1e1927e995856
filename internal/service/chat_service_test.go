package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/cwrk-planet/chat-service/internal/domain"
)

func joined(t *testing.T, f *fixture, ids ...domain.Identity) {
	t.Helper()
	for _, id := range ids {
		if err := f.room.Join(context.Background(), id, "general"); err != nil {
			t.Fatalf("join %d: %v", id.ID, err)
		}
	}
}

func TestSend_PersistsAndBroadcasts(t *testing.T) {
	f := newFixture()
	joined(t, f, alice)

	m, err := f.chat.Send(context.Background(), alice, "general", "  hello <b>world</b>  ", nil)
	if err != nil {
		t.Fatalf("send: %v", err)
	}
	if m.Content != "hello <b>world</b>" {
		t.Fatalf("content must be trimmed, got %q", m.Content)
	}

	ev := f.pub.byKind("new_message")
	if len(ev) != 1 || ev[0].room != "general" || ev[0].id != m.ID {
		t.Fatalf("unexpected broadcasts: %+v", ev)
	}
	if strings.Contains(ev[0].view.HTML, "<b>") {
		t.Fatalf("html must be escaped: %q", ev[0].view.HTML)
	}
	if ev[0].view.Author.DisplayName != "Alice" {
		t.Fatalf("author not enriched: %+v", ev[0].view.Author)
	}
	if f.markers.touched[ovKey{general.ID, alice.ID}] != m.ID {
		t.Fatalf("read marker not updated")
	}
	if f.msgs.points[alice.ID] != 1 {
		t.Fatalf("expected chat point to be granted with the insert")
	}
}

func TestSend_CanSendFalseOverride(t *testing.T) {
	f := newFixture()
	joined(t, f, alice)
	f.ovs.set(domain.Override{ChannelID: general.ID, UserID: alice.ID, CanView: true, CanRead: true, CanSend: false})

	_, err := f.chat.Send(context.Background(), alice, "general", "hi", nil)
	if !errors.Is(err, domain.ErrPermissionDenied) {
		t.Fatalf("expected permission denied, got %v", err)
	}
	if domain.ErrorCode(err) != "permission_denied" {
		t.Fatalf("unexpected code %q", domain.ErrorCode(err))
	}
	if f.msgs.count() != 0 {
		t.Fatalf("message must not be persisted")
	}
	if len(f.pub.byKind("new_message")) != 0 {
		t.Fatalf("no broadcast expected")
	}
}

func TestSend_Validation(t *testing.T) {
	f := newFixture()
	joined(t, f, alice)
	ctx := context.Background()

	if _, err := f.chat.Send(ctx, alice, "general", "   \n\t ", nil); !errors.Is(err, domain.ErrEmptyContent) {
		t.Fatalf("expected empty content error, got %v", err)
	}
	if _, err := f.chat.Send(ctx, alice, "general", strings.Repeat("я", 101), nil); !errors.Is(err, domain.ErrContentTooLong) {
		t.Fatalf("expected too long error, got %v", err)
	}
	if _, err := f.chat.Send(ctx, alice, "missing", "hi", nil); !errors.Is(err, domain.ErrChannelNotFound) {
		t.Fatalf("expected channel not found, got %v", err)
	}
	if _, err := f.chat.Send(ctx, bob, "general", "hi", nil); !errors.Is(err, domain.ErrNotInRoom) {
		t.Fatalf("expected not in room, got %v", err)
	}
	if f.msgs.count() != 0 || len(f.pub.events) != 0 {
		t.Fatalf("failed sends must not persist or broadcast")
	}
}

func TestSend_HookFailureRollsBack(t *testing.T) {
	f := newFixture()
	joined(t, f, alice)
	f.msgs.failHook = true

	_, err := f.chat.Send(context.Background(), alice, "general", "hi", nil)
	if !errors.Is(err, errHookFailed) {
		t.Fatalf("expected hook error, got %v", err)
	}
	if f.msgs.count() != 0 || f.msgs.points[alice.ID] != 0 {
		t.Fatalf("neither message nor points may be visible")
	}
	if len(f.pub.byKind("new_message")) != 0 {
		t.Fatalf("no broadcast on failed commit")
	}
}

func TestSend_ReplyNotificationAndPreview(t *testing.T) {
	f := newFixture()
	joined(t, f, alice, bob)
	ctx := context.Background()

	orig, err := f.chat.Send(ctx, bob, "general", "question?", nil)
	if err != nil {
		t.Fatalf("send: %v", err)
	}
	reply, err := f.chat.Send(ctx, alice, "general", "answer", &orig.ID)
	if err != nil {
		t.Fatalf("reply: %v", err)
	}

	ev := f.pub.byKind("new_message")
	last := ev[len(ev)-1]
	if last.id != reply.ID || last.view.ReplyTo == nil || last.view.ReplyTo.Content != "question?" {
		t.Fatalf("reply preview missing: %+v", last.view.ReplyTo)
	}

	notes := f.pub.byKind("notification")
	if len(notes) != 1 || notes[0].to != bob.ID {
		t.Fatalf("expected one notification to bob, got %+v", notes)
	}
	if len(f.notes.rows) != 1 {
		t.Fatalf("notification not stored")
	}

	// ответ самому себе — без уведомления
	if _, err := f.chat.Send(ctx, alice, "general", "self", &reply.ID); err != nil {
		t.Fatalf("self reply: %v", err)
	}
	if len(f.pub.byKind("notification")) != 1 {
		t.Fatalf("self reply must not notify")
	}
}

func TestSend_NotificationFailureDoesNotBlock(t *testing.T) {
	f := newFixture()
	joined(t, f, alice, bob)
	f.notes.fail = true
	ctx := context.Background()

	orig, _ := f.chat.Send(ctx, bob, "general", "q", nil)
	if _, err := f.chat.Send(ctx, alice, "general", "a", &orig.ID); err != nil {
		t.Fatalf("send must succeed when notification fails: %v", err)
	}
	if len(f.pub.byKind("new_message")) != 2 {
		t.Fatalf("both messages must be broadcast")
	}
	if len(f.pub.byKind("notification")) != 0 {
		t.Fatalf("failed notification must not be pushed")
	}
}

func TestSend_ReplyToDeletedHasNoPreview(t *testing.T) {
	f := newFixture()
	joined(t, f, alice, bob)
	ctx := context.Background()

	orig, _ := f.chat.Send(ctx, bob, "general", "secret", nil)
	if _, err := f.chat.Delete(ctx, bob, orig.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := f.chat.Send(ctx, alice, "general", "re", &orig.ID); err != nil {
		t.Fatalf("reply to deleted: %v", err)
	}
	ev := f.pub.byKind("new_message")
	if ev[len(ev)-1].view.ReplyTo != nil {
		t.Fatalf("deleted reply target must not be previewed")
	}
}

func TestSend_ReplyToOtherChannelRejected(t *testing.T) {
	f := newFixture()
	joined(t, f, alice)
	f.msgs.rows[500] = domain.Message{ID: 500, ChannelID: staff.ID, UserID: admin.ID, Content: "x"}

	id := int64(500)
	if _, err := f.chat.Send(context.Background(), alice, "general", "re", &id); !errors.Is(err, domain.ErrMessageNotFound) {
		t.Fatalf("expected not found for foreign reply, got %v", err)
	}
}

func TestSend_EmojiAndAccessoryEnrichment(t *testing.T) {
	f := newFixture()
	joined(t, f, alice)
	owner := alice.ID
	now := time.Now()
	f.cos.public = []domain.Emoji{{ID: 1, Name: "smile", ImageURL: "/e/smile.png"}, {ID: 2, Name: "cat", ImageURL: "/e/cat.png"}}
	f.cos.granted[alice.ID] = []domain.Emoji{{ID: 3, Name: "smile", ImageURL: "/vip/smile.gif", OwnerID: &owner}}
	f.cos.accessories[alice.ID] = []domain.Accessory{
		{ID: 1, Kind: "color", Color: "#f00", ActivatedAt: now.Add(-time.Minute)},
		{ID: 2, Kind: "color", Color: "#0f0", ActivatedAt: now},
	}

	if _, err := f.chat.Send(context.Background(), alice, "general", ":smile: :cat: :dog:", nil); err != nil {
		t.Fatalf("send: %v", err)
	}
	v := f.pub.byKind("new_message")[0].view
	if !strings.Contains(v.HTML, `src="/vip/smile.gif"`) {
		t.Fatalf("granted emoji must win: %s", v.HTML)
	}
	if !strings.Contains(v.HTML, `src="/e/cat.png"`) {
		t.Fatalf("public emoji missing: %s", v.HTML)
	}
	if !strings.Contains(v.HTML, ":dog:") {
		t.Fatalf("unknown shortcode must stay as text: %s", v.HTML)
	}
	if v.Author.Accessory == nil || v.Author.Accessory.Color != "#0f0" {
		t.Fatalf("latest accessory expected, got %+v", v.Author.Accessory)
	}
}

func TestSend_CosmeticsFailureDegrades(t *testing.T) {
	f := newFixture()
	joined(t, f, alice)
	f.cos.fail = true

	if _, err := f.chat.Send(context.Background(), alice, "general", "plain :smile:", nil); err != nil {
		t.Fatalf("send must not fail on cosmetics error: %v", err)
	}
	v := f.pub.byKind("new_message")[0].view
	if v.Author.Accessory != nil || strings.Contains(v.HTML, "<img") {
		t.Fatalf("expected undecorated message: %+v", v)
	}
}

func TestEdit_AuthorRoundTrip(t *testing.T) {
	f := newFixture()
	joined(t, f, alice)
	ctx := context.Background()

	m, _ := f.chat.Send(ctx, alice, "general", "first", nil)
	edited, err := f.chat.Edit(ctx, alice, m.ID, "second")
	if err != nil {
		t.Fatalf("edit: %v", err)
	}
	if edited.Content != "second" || !edited.UpdatedAt.After(edited.CreatedAt) {
		t.Fatalf("edit not applied: %+v", edited)
	}
	ev := f.pub.byKind("message_updated")
	if len(ev) != 1 || ev[0].room != "general" || !ev[0].view.Edited || ev[0].view.Content != "second" {
		t.Fatalf("unexpected update broadcast: %+v", ev)
	}
}

func TestEdit_NonAuthorFails(t *testing.T) {
	f := newFixture()
	joined(t, f, alice, bob)
	ctx := context.Background()

	m, _ := f.chat.Send(ctx, alice, "general", "mine", nil)
	if _, err := f.chat.Edit(ctx, bob, m.ID, "hacked"); !errors.Is(err, domain.ErrPermissionDenied) {
		t.Fatalf("expected denied, got %v", err)
	}
	// админ тоже не редактирует чужие сообщения
	if _, err := f.chat.Edit(ctx, admin, m.ID, "hacked"); !errors.Is(err, domain.ErrPermissionDenied) {
		t.Fatalf("expected denied for admin edit, got %v", err)
	}
	got, _ := f.msgs.Get(ctx, m.ID)
	if got.Content != "mine" {
		t.Fatalf("content changed: %q", got.Content)
	}
	if len(f.pub.byKind("message_updated")) != 0 {
		t.Fatalf("no update broadcast expected")
	}
}

func TestEdit_Validation(t *testing.T) {
	f := newFixture()
	joined(t, f, alice)
	ctx := context.Background()

	m, _ := f.chat.Send(ctx, alice, "general", "x", nil)
	if _, err := f.chat.Edit(ctx, alice, m.ID, "  "); !errors.Is(err, domain.ErrEmptyContent) {
		t.Fatalf("expected empty content, got %v", err)
	}
	if _, err := f.chat.Edit(ctx, alice, 12345, "y"); !errors.Is(err, domain.ErrMessageNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestDelete_AdminThenAuthorEditFails(t *testing.T) {
	f := newFixture()
	joined(t, f, alice)
	ctx := context.Background()

	m, _ := f.chat.Send(ctx, alice, "general", "rude words", nil)
	deleted, err := f.chat.Delete(ctx, admin, m.ID)
	if err != nil {
		t.Fatalf("admin delete: %v", err)
	}
	if !deleted.IsDeleted || deleted.Content != DefaultRedactionMarker {
		t.Fatalf("expected redacted message, got %+v", deleted)
	}

	ev := f.pub.byKind("message_deleted")
	if len(ev) != 1 || ev[0].id != m.ID || ev[0].room != "general" {
		t.Fatalf("unexpected delete broadcast: %+v", ev)
	}

	if _, err := f.chat.Edit(ctx, alice, m.ID, "restored"); !errors.Is(err, domain.ErrMessageDeleted) {
		t.Fatalf("edit after delete must fail, got %v", err)
	}
	got, _ := f.msgs.Get(ctx, m.ID)
	if got.Content != DefaultRedactionMarker || !got.IsDeleted {
		t.Fatalf("row must stay redacted: %+v", got)
	}
}

func TestDelete_Rules(t *testing.T) {
	f := newFixture()
	joined(t, f, alice, bob)
	ctx := context.Background()

	m, _ := f.chat.Send(ctx, alice, "general", "x", nil)
	if _, err := f.chat.Delete(ctx, bob, m.ID); !errors.Is(err, domain.ErrPermissionDenied) {
		t.Fatalf("non-author delete: expected denied, got %v", err)
	}
	if _, err := f.chat.Delete(ctx, alice, m.ID); err != nil {
		t.Fatalf("author delete: %v", err)
	}
	if _, err := f.chat.Delete(ctx, alice, m.ID); !errors.Is(err, domain.ErrMessageDeleted) {
		t.Fatalf("second delete must be rejected, got %v", err)
	}
	if len(f.pub.byKind("message_deleted")) != 1 {
		t.Fatalf("expected a single delete broadcast")
	}
	if _, err := f.chat.Delete(ctx, alice, 777); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("missing message: expected not found, got %v", err)
	}
}

func TestSend_ConcurrentPreservesCommitOrder(t *testing.T) {
	f := newFixture()
	users := []domain.Identity{alice, bob}
	joined(t, f, users...)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if _, err := f.chat.Send(context.Background(), users[i%2], "general", "msg", nil); err != nil {
				t.Errorf("send %d: %v", i, err)
			}
		}(i)
	}
	wg.Wait()

	ev := f.pub.byKind("new_message")
	if len(ev) != 50 {
		t.Fatalf("expected 50 broadcasts, got %d", len(ev))
	}
	for i := 1; i < len(ev); i++ {
		if ev[i].id <= ev[i-1].id {
			t.Fatalf("broadcast order differs from commit order at %d: %d after %d", i, ev[i].id, ev[i-1].id)
		}
	}
}

func TestHistory_RequiresReadAndRedacts(t *testing.T) {
	f := newFixture()
	joined(t, f, alice, bob)
	ctx := context.Background()

	m1, _ := f.chat.Send(ctx, alice, "general", "one", nil)
	m2, _ := f.chat.Send(ctx, bob, "general", "two", &m1.ID)
	_, _ = f.chat.Delete(ctx, alice, m1.ID)

	views, _, err := f.chat.History(ctx, bob, "general", "", 10)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(views) != 2 || views[0].ID != m2.ID {
		t.Fatalf("unexpected history: %+v", views)
	}
	if views[0].Author.Username != "bob" || views[0].ReplyTo != nil {
		t.Fatalf("reply to deleted must have no preview: %+v", views[0])
	}
	if !views[1].IsDeleted || views[1].Content != DefaultRedactionMarker {
		t.Fatalf("deleted message must be redacted: %+v", views[1])
	}

	f.ovs.set(domain.Override{ChannelID: general.ID, UserID: bob.ID, CanView: true})
	if _, _, err := f.chat.History(ctx, bob, "general", "", 10); !errors.Is(err, domain.ErrPermissionDenied) {
		t.Fatalf("history without read: expected denied, got %v", err)
	}
}
