package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/cwrk-planet/chat-service/internal/domain"

	"github.com/jackc/pgx/v5"
)

// TxHook выполняется в транзакции вставки сообщения. Ошибка хука откатывает вставку.
type TxHook func(ctx context.Context, tx pgx.Tx, m *domain.Message) error

type MessageRepository struct {
	db    Querier
	hooks []TxHook
}

func NewMessageRepository(db Querier, hooks ...TxHook) *MessageRepository {
	return &MessageRepository{db: db, hooks: hooks}
}

// Create вставляет сообщение и прогоняет хуки в одной транзакции.
func (r *MessageRepository) Create(ctx context.Context, m *domain.Message) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx, queryInsertMessage, m.ChannelID, m.UserID, m.Content, m.ReplyToID).
		Scan(&m.ID, &m.IsDeleted, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert message: %w", err)
	}

	for _, hook := range r.hooks {
		if err := hook(ctx, tx, m); err != nil {
			return fmt.Errorf("message hook: %w", err)
		}
	}

	return tx.Commit(ctx)
}

func (r *MessageRepository) Get(ctx context.Context, id int64) (*domain.Message, error) {
	m, err := scanMessage(r.db.QueryRow(ctx, queryGetMessage, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrMessageNotFound
		}
		return nil, err
	}
	return m, nil
}

// Mutate блокирует строку (FOR UPDATE), отдаёт её в fn и сохраняет content/is_deleted.
// Если fn вернула ошибку, ничего не пишется.
func (r *MessageRepository) Mutate(ctx context.Context, id int64, fn func(m *domain.Message) error) (*domain.Message, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	m, err := scanMessage(tx.QueryRow(ctx, queryGetMessageForUpdate, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrMessageNotFound
		}
		return nil, err
	}

	if err := fn(m); err != nil {
		return nil, err
	}

	if err := tx.QueryRow(ctx, queryUpdateMessage, m.ID, m.Content, m.IsDeleted).Scan(&m.UpdatedAt); err != nil {
		return nil, fmt.Errorf("update message: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return m, nil
}

// History возвращает историю канала с курсорной пагинацией (created_at,id DESC).
func (r *MessageRepository) History(ctx context.Context, channelID int64, after string, limit int) ([]domain.Message, string, error) {
	limit = clampLimit(limit)
	cur, err := DecodeCursor(after)
	if err != nil {
		return nil, "", fmt.Errorf("decode cursor: %w", err)
	}

	var createdAt any
	var id any
	if cur != nil {
		createdAt = cur.CreatedAt
		id = cur.ID
	}

	rows, err := r.db.Query(ctx, queryMessageHistory, channelID, createdAt, id, limit)
	if err != nil {
		return nil, "", err
	}
	defer rows.Close()

	var out []domain.Message
	for rows.Next() {
		m, err := scanMessage(rows)
		if err != nil {
			return nil, "", err
		}
		out = append(out, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, "", err
	}

	var next string
	if len(out) == limit {
		last := out[len(out)-1]
		if c, e := EncodeCursor(Cursor{CreatedAt: last.CreatedAt, ID: last.ID}); e == nil {
			next = c
		}
	}
	return out, next, nil
}

func scanMessage(row pgx.Row) (*domain.Message, error) {
	var m domain.Message
	if err := row.Scan(&m.ID, &m.ChannelID, &m.UserID, &m.Content, &m.ReplyToID,
		&m.IsDeleted, &m.CreatedAt, &m.UpdatedAt); err != nil {
		return nil, err
	}
	return &m, nil
}
