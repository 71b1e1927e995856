package postgres

import (
	"context"
)

type ReadMarkerRepository struct {
	db Querier
}

func NewReadMarkerRepository(db Querier) *ReadMarkerRepository {
	return &ReadMarkerRepository{db: db}
}

// Touch двигает маркер прочтения вперёд; назад не откатывает.
func (r *ReadMarkerRepository) Touch(ctx context.Context, channelID, userID, messageID int64) error {
	_, err := r.db.Exec(ctx, queryUpsertReadMarker, channelID, userID, messageID)
	return err
}
