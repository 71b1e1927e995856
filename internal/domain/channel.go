package domain

import "time"

type Channel struct {
	ID       int64        `db:"id"`
	Slug     string       `db:"slug"`
	Name     string       `db:"name"`
	Priority int          `db:"priority"`
	Defaults Capabilities `db:"-"`
}

// Override — персональные флаги пользователя в канале. Одна строка на (channel, user).
type Override struct {
	ChannelID int64     `db:"channel_id"`
	UserID    int64     `db:"user_id"`
	CanView   bool      `db:"can_view"`
	CanRead   bool      `db:"can_read"`
	CanSend   bool      `db:"can_send"`
	UpdatedAt time.Time `db:"updated_at"`
}
