package domain

import "time"

type Message struct {
	ID        int64     `db:"id"`
	ChannelID int64     `db:"channel_id"`
	UserID    int64     `db:"user_id"`
	Content   string    `db:"content"`
	ReplyToID *int64    `db:"reply_to_id"`
	IsDeleted bool      `db:"is_deleted"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// Edited — сообщение менялось после создания.
func (m Message) Edited() bool {
	return !m.IsDeleted && m.UpdatedAt.After(m.CreatedAt)
}

type ReadMarker struct {
	ChannelID     int64     `db:"channel_id"`
	UserID        int64     `db:"user_id"`
	LastMessageID int64     `db:"last_message_id"`
	UpdatedAt     time.Time `db:"updated_at"`
}

type Notification struct {
	ID        int64     `db:"id"`
	UserID    int64     `db:"user_id"`
	Title     string    `db:"title"`
	Body      string    `db:"body"`
	Link      string    `db:"link"`
	CreatedAt time.Time `db:"created_at"`
}
