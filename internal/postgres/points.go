package postgres

import (
	"context"
	"fmt"

	"github.com/cwrk-planet/chat-service/internal/domain"

	"github.com/jackc/pgx/v5"
)

const PointReasonChat = "chat"

// PointsHook начисляет баллы автору сообщения и пишет строку в point_logs.
// При points <= 0 хук ничего не делает.
func PointsHook(points int) TxHook {
	return func(ctx context.Context, tx pgx.Tx, m *domain.Message) error {
		if points <= 0 {
			return nil
		}
		cmd, err := tx.Exec(ctx, queryAddPoints, m.UserID, points)
		if err != nil {
			return fmt.Errorf("add points: %w", err)
		}
		if cmd.RowsAffected() == 0 {
			return domain.ErrUserNotFound
		}
		if _, err := tx.Exec(ctx, queryInsertPointLog, m.UserID, points, PointReasonChat, m.ID); err != nil {
			return fmt.Errorf("point log: %w", err)
		}
		return nil
	}
}
