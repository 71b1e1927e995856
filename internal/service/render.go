package service

import (
	"context"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/cwrk-planet/chat-service/internal/domain"

	"golang.org/x/net/html"
)

type AccessoryView struct {
	Kind     string `json:"kind"`
	Color    string `json:"color,omitempty"`
	ImageURL string `json:"image_url,omitempty"`
}

type AuthorView struct {
	ID          int64          `json:"id"`
	Username    string         `json:"username"`
	DisplayName string         `json:"display_name"`
	AvatarURL   string         `json:"avatar_url,omitempty"`
	IsAdmin     bool           `json:"is_admin"`
	Accessory   *AccessoryView `json:"accessory,omitempty"`
}

type ReplyView struct {
	ID      int64  `json:"id"`
	UserID  int64  `json:"user_id"`
	Content string `json:"content"`
}

// MessageView — отрендеренное сообщение в том виде, в каком его получает комната.
type MessageView struct {
	ID        int64      `json:"id"`
	Channel   string     `json:"channel"`
	Author    AuthorView `json:"author"`
	Content   string     `json:"content"`
	HTML      string     `json:"html"`
	ReplyTo   *ReplyView `json:"reply_to,omitempty"`
	IsDeleted bool       `json:"is_deleted"`
	Edited    bool       `json:"edited"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// decoration — то, что зависит только от автора: аксессуар и набор эмодзи.
type decoration struct {
	accessory *domain.Accessory
	emojis    map[string]string // name -> image url
}

var shortcodeRe = regexp.MustCompile(`:([A-Za-z0-9_+\-]{1,32}):`)

// decorate собирает аксессуар и эмодзи автора. Ошибки хранилища не фатальны: рендерим без украшений.
func decorate(ctx context.Context, store CosmeticsStore, userID int64) decoration {
	var d decoration
	if store == nil {
		return d
	}

	grants, err := store.Accessories(ctx, userID)
	if err != nil {
		slog.Warn("load accessories failed", "user", userID, slog.Any("err", err))
	} else {
		d.accessory = domain.PickAccessory(grants)
	}

	public, granted, err := store.Emojis(ctx, userID)
	if err != nil {
		slog.Warn("load emojis failed", "user", userID, slog.Any("err", err))
		return d
	}
	merged := domain.MergeEmojis(public, granted)
	d.emojis = make(map[string]string, len(merged))
	for _, e := range merged {
		d.emojis[e.Name] = e.ImageURL
	}
	return d
}

// renderHTML экранирует текст и подставляет :name: из набора автора.
func renderHTML(content string, emojis map[string]string) string {
	escaped := html.EscapeString(content)
	escaped = strings.ReplaceAll(escaped, "\n", "<br>")
	if len(emojis) == 0 {
		return escaped
	}
	return shortcodeRe.ReplaceAllStringFunc(escaped, func(code string) string {
		name := code[1 : len(code)-1]
		src, ok := emojis[name]
		if !ok {
			return code
		}
		return `<img class="emoji" src="` + html.EscapeString(src) + `" alt="` + code + `">`
	})
}

func replyView(target *domain.Message) *ReplyView {
	if target == nil || target.IsDeleted {
		return nil
	}
	return &ReplyView{ID: target.ID, UserID: target.UserID, Content: target.Content}
}

func buildView(room string, author domain.Identity, m *domain.Message, d decoration, reply *domain.Message) MessageView {
	v := MessageView{
		ID:      m.ID,
		Channel: room,
		Author: AuthorView{
			ID:          author.ID,
			Username:    author.Username,
			DisplayName: author.Name(),
			AvatarURL:   author.AvatarURL,
			IsAdmin:     author.IsAdmin,
		},
		Content:   m.Content,
		IsDeleted: m.IsDeleted,
		Edited:    m.Edited(),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
		ReplyTo:   replyView(reply),
	}
	if d.accessory != nil {
		v.Author.Accessory = &AccessoryView{
			Kind:     d.accessory.Kind,
			Color:    d.accessory.Color,
			ImageURL: d.accessory.ImageURL,
		}
	}
	if m.IsDeleted {
		v.HTML = html.EscapeString(m.Content)
	} else {
		v.HTML = renderHTML(m.Content, d.emojis)
	}
	return v
}
