package service

import (
	"context"
	"encoding/json"

	"github.com/cwrk-planet/chat-service/internal/domain"
)

// Хранилища, реализуемые internal/postgres.

type UserStore interface {
	GetByID(ctx context.Context, id int64) (domain.Identity, error)
}

type ChannelStore interface {
	GetBySlug(ctx context.Context, slug string) (domain.Channel, error)
	GetByID(ctx context.Context, id int64) (domain.Channel, error)
	List(ctx context.Context) ([]domain.Channel, error)
}

type OverrideStore interface {
	Get(ctx context.Context, channelID, userID int64) (*domain.Override, error)
}

type MessageStore interface {
	Create(ctx context.Context, m *domain.Message) error
	Get(ctx context.Context, id int64) (*domain.Message, error)
	Mutate(ctx context.Context, id int64, fn func(m *domain.Message) error) (*domain.Message, error)
	History(ctx context.Context, channelID int64, after string, limit int) ([]domain.Message, string, error)
}

type CosmeticsStore interface {
	Accessories(ctx context.Context, userID int64) ([]domain.Accessory, error)
	Emojis(ctx context.Context, userID int64) (public, granted []domain.Emoji, err error)
}

type ReadMarkerStore interface {
	Touch(ctx context.Context, channelID, userID, messageID int64) error
}

type NotificationStore interface {
	Create(ctx context.Context, n *domain.Notification) error
}

// Комнаты и рассылка, реализуемые ws-хабом.

type Rooms interface {
	Subscribe(userID int64, room string) bool
	Unsubscribe(userID int64, room string) bool
	IsMember(userID int64, room string) bool
}

type ChatPublisher interface {
	MessageCreated(room string, v MessageView)
	MessageUpdated(room string, v MessageView)
	MessageDeleted(room string, messageID int64)
	Notify(userID int64, n domain.Notification)
}

type VoicePublisher interface {
	VoiceSignal(to, from int64, signal json.RawMessage) bool
	VoiceRoster(to int64, members []domain.Identity, speaking []int64)
}

// Эфемерное состояние, реализуемое presence.Registry.

type TypingRegistry interface {
	SetTyping(room string, userID int64, typing bool) bool
}

type VoiceRegistry interface {
	JoinVoice(userID int64) bool
	LeaveVoice(userID int64) (left, speakingChanged bool)
	BothInVoice(a, b int64) bool
	SetSpeaking(userID int64, speaking bool) bool
	Voice() []domain.Identity
	Speaking() []int64
}
