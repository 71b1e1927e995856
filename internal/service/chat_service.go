package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/cwrk-planet/chat-service/internal/domain"
)

const (
	DefaultMaxLength       = 2000
	DefaultRedactionMarker = "[deleted]"
)

type ChatConfig struct {
	MaxLength       int
	RedactionMarker string
}

type ChatDeps struct {
	Perms         *PermissionService
	Users         UserStore
	Channels      ChannelStore
	Messages      MessageStore
	Cosmetics     CosmeticsStore
	Markers       ReadMarkerStore
	Notifications NotificationStore
	Rooms         Rooms
	Publisher     ChatPublisher
}

type ChatService struct {
	perms         *PermissionService
	users         UserStore
	channels      ChannelStore
	messages      MessageStore
	cosmetics     CosmeticsStore
	markers       ReadMarkerStore
	notifications NotificationStore
	rooms         Rooms
	pub           ChatPublisher

	locks  *roomLocks
	maxLen int
	marker string
}

func NewChatService(deps ChatDeps, cfg ChatConfig) *ChatService {
	if cfg.MaxLength <= 0 {
		cfg.MaxLength = DefaultMaxLength
	}
	if cfg.RedactionMarker == "" {
		cfg.RedactionMarker = DefaultRedactionMarker
	}
	return &ChatService{
		perms:         deps.Perms,
		users:         deps.Users,
		channels:      deps.Channels,
		messages:      deps.Messages,
		cosmetics:     deps.Cosmetics,
		markers:       deps.Markers,
		notifications: deps.Notifications,
		rooms:         deps.Rooms,
		pub:           deps.Publisher,
		locks:         newRoomLocks(),
		maxLen:        cfg.MaxLength,
		marker:        cfg.RedactionMarker,
	}
}


func (s *ChatService) validate(content string) (string, error) {
	text := strings.TrimSpace(content)
	if text == "" {
		return "", domain.ErrEmptyContent
	}
	if utf8.RuneCountInString(text) > s.maxLen {
		return "", domain.ErrContentTooLong
	}
	return text, nil
}

// Send сохраняет сообщение (вместе с tx-хуками) и рассылает его в комнату канала.
func (s *ChatService) Send(ctx context.Context, id domain.Identity, slug, content string, replyTo *int64) (*domain.Message, error) {
	text, err := s.validate(content)
	if err != nil {
		return nil, err
	}

	ch, err := s.channels.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if !s.rooms.IsMember(id.ID, slug) {
		return nil, domain.ErrNotInRoom
	}
	caps, err := s.perms.Resolve(ctx, id, ch)
	if err != nil {
		return nil, err
	}
	if !caps.Send {
		return nil, fmt.Errorf("send on %q: %w", slug, domain.ErrPermissionDenied)
	}

	var target *domain.Message
	if replyTo != nil {
		target, err = s.messages.Get(ctx, *replyTo)
		if err != nil {
			return nil, fmt.Errorf("reply target: %w", err)
		}
		if target.ChannelID != ch.ID {
			return nil, fmt.Errorf("reply target in another channel: %w", domain.ErrMessageNotFound)
		}
	}

	deco := decorate(ctx, s.cosmetics, id.ID)

	m := &domain.Message{
		ChannelID: ch.ID,
		UserID:    id.ID,
		Content:   text,
		ReplyToID: replyTo,
	}

	unlock := s.locks.lock(slug)
	if err := s.messages.Create(ctx, m); err != nil {
		unlock()
		return nil, fmt.Errorf("create message: %w", err)
	}
	s.pub.MessageCreated(slug, buildView(slug, id, m, deco, target))
	unlock()

	if s.markers != nil {
		if err := s.markers.Touch(ctx, ch.ID, id.ID, m.ID); err != nil {
			slog.Warn("read marker update failed", "channel", slug, "user", id.ID, slog.Any("err", err))
		}
	}
	if target != nil && target.UserID != id.ID {
		s.notifyReply(ctx, id, slug, m, target)
	}

	return m, nil
}

// notifyReply — best-effort: ошибка только логируется.
func (s *ChatService) notifyReply(ctx context.Context, from domain.Identity, slug string, m, target *domain.Message) {
	n := domain.Notification{
		UserID: target.UserID,
		Title:  from.Name() + " replied to your message",
		Body:   preview(m.Content, 80),
		Link:   fmt.Sprintf("/channels/%s#message-%d", slug, m.ID),
	}
	if s.notifications != nil {
		if err := s.notifications.Create(ctx, &n); err != nil {
			slog.Warn("reply notification failed", "to", target.UserID, "message", m.ID, slog.Any("err", err))
			return
		}
	}
	s.pub.Notify(target.UserID, n)
}

// Edit меняет текст своего неудалённого сообщения и рассылает его заново.
func (s *ChatService) Edit(ctx context.Context, id domain.Identity, messageID int64, content string) (*domain.Message, error) {
	text, err := s.validate(content)
	if err != nil {
		return nil, err
	}

	cur, err := s.messages.Get(ctx, messageID)
	if err != nil {
		return nil, err
	}
	if err := checkEditable(cur, id); err != nil {
		return nil, err
	}
	ch, err := s.channels.GetByID(ctx, cur.ChannelID)
	if err != nil {
		return nil, err
	}

	var target *domain.Message
	if cur.ReplyToID != nil {
		if t, err := s.messages.Get(ctx, *cur.ReplyToID); err == nil {
			target = t
		}
	}
	deco := decorate(ctx, s.cosmetics, id.ID)

	unlock := s.locks.lock(ch.Slug)
	defer unlock()

	m, err := s.messages.Mutate(ctx, messageID, func(m *domain.Message) error {
		if err := checkEditable(m, id); err != nil {
			return err
		}
		m.Content = text
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.pub.MessageUpdated(ch.Slug, buildView(ch.Slug, id, m, deco, target))
	return m, nil
}

func checkEditable(m *domain.Message, id domain.Identity) error {
	if m.IsDeleted {
		return domain.ErrMessageDeleted
	}
	if m.UserID != id.ID {
		return domain.ErrNotAuthor
	}
	return nil
}

// Delete — мягкое удаление: строка остаётся, текст заменяется маркером.
func (s *ChatService) Delete(ctx context.Context, id domain.Identity, messageID int64) (*domain.Message, error) {
	cur, err := s.messages.Get(ctx, messageID)
	if err != nil {
		return nil, err
	}
	if err := checkDeletable(cur, id); err != nil {
		return nil, err
	}
	ch, err := s.channels.GetByID(ctx, cur.ChannelID)
	if err != nil {
		return nil, err
	}

	unlock := s.locks.lock(ch.Slug)
	defer unlock()

	m, err := s.messages.Mutate(ctx, messageID, func(m *domain.Message) error {
		if err := checkDeletable(m, id); err != nil {
			return err
		}
		m.IsDeleted = true
		m.Content = s.marker
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.pub.MessageDeleted(ch.Slug, m.ID)
	return m, nil
}

func checkDeletable(m *domain.Message, id domain.Identity) error {
	if m.IsDeleted {
		return domain.ErrMessageDeleted
	}
	if m.UserID != id.ID && !id.IsAdmin {
		return domain.ErrNotAuthor
	}
	return nil
}

// History — страница истории канала (новые сначала). Нужно право read.
func (s *ChatService) History(ctx context.Context, id domain.Identity, slug, after string, limit int) ([]MessageView, string, error) {
	ch, err := s.perms.Require(ctx, id, slug, domain.CapRead)
	if err != nil {
		return nil, "", err
	}

	msgs, next, err := s.messages.History(ctx, ch.ID, after, limit)
	if err != nil {
		return nil, "", err
	}

	authors := make(map[int64]domain.Identity)
	decos := make(map[int64]decoration)
	replies := make(map[int64]*domain.Message)

	out := make([]MessageView, 0, len(msgs))
	for i := range msgs {
		m := &msgs[i]

		author, ok := authors[m.UserID]
		if !ok {
			author, err = s.users.GetByID(ctx, m.UserID)
			if err != nil {
				slog.Debug("history author lookup failed", "user", m.UserID, slog.Any("err", err))
				author = domain.Identity{ID: m.UserID}
			}
			authors[m.UserID] = author
			decos[m.UserID] = decorate(ctx, s.cosmetics, m.UserID)
		}

		var target *domain.Message
		if m.ReplyToID != nil {
			t, seen := replies[*m.ReplyToID]
			if !seen {
				if got, err := s.messages.Get(ctx, *m.ReplyToID); err == nil {
					t = got
				}
				replies[*m.ReplyToID] = t
			}
			target = t
		}

		out = append(out, buildView(slug, author, m, decos[m.UserID], target))
	}
	return out, next, nil
}

func preview(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	r := []rune(s)
	return string(r[:n]) + "…"
}
