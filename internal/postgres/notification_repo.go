package postgres

import (
	"context"

	"github.com/cwrk-planet/chat-service/internal/domain"
)

type NotificationRepository struct {
	db Querier
}

func NewNotificationRepository(db Querier) *NotificationRepository {
	return &NotificationRepository{db: db}
}

func (r *NotificationRepository) Create(ctx context.Context, n *domain.Notification) error {
	return r.db.QueryRow(ctx, queryInsertNotification, n.UserID, n.Title, n.Body, n.Link).
		Scan(&n.ID, &n.CreatedAt)
}
