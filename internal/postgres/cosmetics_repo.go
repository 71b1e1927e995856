package postgres

import (
	"context"

	"github.com/cwrk-planet/chat-service/internal/domain"
)

type CosmeticsRepository struct {
	db Querier
}

func NewCosmeticsRepository(db Querier) *CosmeticsRepository {
	return &CosmeticsRepository{db: db}
}

// Accessories — активные гранты пользователя.
func (r *CosmeticsRepository) Accessories(ctx context.Context, userID int64) ([]domain.Accessory, error) {
	rows, err := r.db.Query(ctx, queryListAccessories, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Accessory
	for rows.Next() {
		var a domain.Accessory
		if err := rows.Scan(&a.ID, &a.UserID, &a.Kind, &a.Color, &a.ImageURL, &a.ActivatedAt); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// Emojis возвращает публичные эмодзи и эмодзи, выданные пользователю, раздельно.
func (r *CosmeticsRepository) Emojis(ctx context.Context, userID int64) (public, granted []domain.Emoji, err error) {
	rows, err := r.db.Query(ctx, queryListEmojisForUser, userID)
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var e domain.Emoji
		if err := rows.Scan(&e.ID, &e.Name, &e.ImageURL, &e.OwnerID); err != nil {
			return nil, nil, err
		}
		if e.OwnerID == nil {
			public = append(public, e)
		} else {
			granted = append(granted, e)
		}
	}
	return public, granted, rows.Err()
}
