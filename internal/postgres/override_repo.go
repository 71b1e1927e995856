package postgres

import (
	"context"
	"errors"

	"github.com/cwrk-planet/chat-service/internal/domain"

	"github.com/jackc/pgx/v5"
)

type OverrideRepository struct {
	db Querier
}

func NewOverrideRepository(db Querier) *OverrideRepository {
	return &OverrideRepository{db: db}
}

// Get возвращает override или nil, если строки нет.
func (r *OverrideRepository) Get(ctx context.Context, channelID, userID int64) (*domain.Override, error) {
	var o domain.Override
	err := r.db.QueryRow(ctx, queryGetOverride, channelID, userID).
		Scan(&o.ChannelID, &o.UserID, &o.CanView, &o.CanRead, &o.CanSend, &o.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &o, nil
}
