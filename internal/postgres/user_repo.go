package postgres

import (
	"context"
	"errors"

	"github.com/cwrk-planet/chat-service/internal/domain"

	"github.com/jackc/pgx/v5"
)

type UserRepository struct {
	db Querier
}

func NewUserRepository(db Querier) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (domain.Identity, error) {
	var u domain.Identity
	err := r.db.QueryRow(ctx, queryGetUserByID, id).
		Scan(&u.ID, &u.Username, &u.DisplayName, &u.AvatarURL, &u.IsAdmin)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Identity{}, domain.ErrUserNotFound
		}
		return domain.Identity{}, err
	}
	return u, nil
}
