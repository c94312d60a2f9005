package outbox

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/google/uuid"

	"sportsync/internal/domain"
)

type Store interface {
	PendingBatch(ctx context.Context, limit int) ([]*domain.OutboxMessage, error)
	MarkDelivered(ctx context.Context, ids []uuid.UUID) error
}

type Publisher interface {
	Publish(ctx context.Context, routingKey string, body []byte) error
}
