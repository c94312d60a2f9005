package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"sportsync/internal/domain"
)

type OutboxStore struct {
	db *sqlx.DB
}

func NewOutboxStore(db *sqlx.DB) *OutboxStore {
	return &OutboxStore{db: db}
}

// Enqueue stages messages for delivery. Runs on the ambient transaction when
// one is present, so messages become visible only after the entity writes
// they accompany have committed.
func (s *OutboxStore) Enqueue(ctx context.Context, msgs ...*domain.OutboxMessage) error {
	query := `
		INSERT INTO outbox (id, kind, routing_key, payload, enqueued_utc)
		VALUES ($1, $2, $3, $4, $5)`

	exec := GetExecutor(ctx, s.db)
	for _, msg := range msgs {
		if _, err := exec.ExecContext(ctx, query,
			msg.ID, msg.Kind, msg.RoutingKey, msg.Payload, msg.EnqueuedUTC,
		); err != nil {
			return translateErr(err)
		}
	}
	return nil
}

func (s *OutboxStore) PendingBatch(ctx context.Context, limit int) ([]*domain.OutboxMessage, error) {
	query := `
		SELECT id, kind, routing_key, payload, enqueued_utc, delivered_utc
		FROM outbox
		WHERE delivered_utc IS NULL
		ORDER BY enqueued_utc
		LIMIT $1`

	var msgs []*domain.OutboxMessage
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &msgs, query, limit)
	return msgs, translateErr(err)
}

func (s *OutboxStore) MarkDelivered(ctx context.Context, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	_, err := GetExecutor(ctx, s.db).ExecContext(ctx,
		`UPDATE outbox SET delivered_utc = NOW() WHERE id = ANY($1)`,
		pq.Array(ids),
	)
	return translateErr(err)
}
