package postgres

import (
	"context"
	"errors"

	"github.com/cwrk-planet/chat-service/internal/domain"

	"github.com/jackc/pgx/v5"
)

type ChannelRepository struct {
	db Querier
}

func NewChannelRepository(db Querier) *ChannelRepository {
	return &ChannelRepository{db: db}
}

func (r *ChannelRepository) GetBySlug(ctx context.Context, slug string) (domain.Channel, error) {
	return r.getOne(ctx, queryGetChannelBySlug, slug)
}

func (r *ChannelRepository) GetByID(ctx context.Context, id int64) (domain.Channel, error) {
	return r.getOne(ctx, queryGetChannelByID, id)
}

// List — все каналы по priority DESC.
func (r *ChannelRepository) List(ctx context.Context) ([]domain.Channel, error) {
	rows, err := r.db.Query(ctx, queryListChannels)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Channel
	for rows.Next() {
		ch, err := scanChannel(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, ch)
	}
	return out, rows.Err()
}

func (r *ChannelRepository) getOne(ctx context.Context, query string, arg any) (domain.Channel, error) {
	ch, err := scanChannel(r.db.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Channel{}, domain.ErrChannelNotFound
		}
		return domain.Channel{}, err
	}
	return ch, nil
}

func scanChannel(row pgx.Row) (domain.Channel, error) {
	var ch domain.Channel
	err := row.Scan(&ch.ID, &ch.Slug, &ch.Name, &ch.Priority,
		&ch.Defaults.View, &ch.Defaults.Read, &ch.Defaults.Send)
	return ch, err
}
