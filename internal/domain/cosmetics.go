package domain

import (
	"sort"
	"time"
)

// Accessory — косметический грант (цвет ника / картинка) пользователя.
type Accessory struct {
	ID          int64     `db:"id"`
	UserID      int64     `db:"user_id"`
	Kind        string    `db:"kind"`
	Color       string    `db:"color"`
	ImageURL    string    `db:"image_url"`
	ActivatedAt time.Time `db:"activated_at"`
}

// Emoji с OwnerID == nil — публичный, иначе выдан конкретному пользователю.
type Emoji struct {
	ID       int64  `db:"id"`
	Name     string `db:"name"`
	ImageURL string `db:"image_url"`
	OwnerID  *int64 `db:"owner_id"`
}

// PickAccessory выбирает активный аксессуар: позже активированный, при равенстве — больший id.
func PickAccessory(grants []Accessory) *Accessory {
	var best *Accessory
	for i := range grants {
		g := &grants[i]
		if best == nil ||
			g.ActivatedAt.After(best.ActivatedAt) ||
			(g.ActivatedAt.Equal(best.ActivatedAt) && g.ID > best.ID) {
			best = g
		}
	}
	if best == nil {
		return nil
	}
	out := *best
	return &out
}

// MergeEmojis объединяет публичные и выданные эмодзи; при совпадении имени побеждает выданный.
// Результат отсортирован по имени.
func MergeEmojis(public, granted []Emoji) []Emoji {
	byName := make(map[string]Emoji, len(public)+len(granted))
	for _, e := range public {
		byName[e.Name] = e
	}
	for _, e := range granted {
		byName[e.Name] = e
	}

	out := make([]Emoji, 0, len(byName))
	for _, e := range byName {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
