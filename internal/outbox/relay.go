package outbox

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// Relay drains pending outbox messages to the broker. Delivery is
// at-least-once: a message published right before a crash may go out again
// on restart, so downstream consumers dedupe on message id.
type Relay struct {
	store     Store
	publisher Publisher
	interval  time.Duration
	batchSize int
	logger    *slog.Logger
}

func NewRelay(store Store, publisher Publisher, interval time.Duration, batchSize int, logger *slog.Logger) *Relay {
	return &Relay{
		store:     store,
		publisher: publisher,
		interval:  interval,
		batchSize: batchSize,
		logger:    logger,
	}
}

func (r *Relay) Start(ctx context.Context) error {
	r.logger.Info("outbox relay started", "interval", r.interval, "batch_size", r.batchSize)

	r.drain(ctx)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			r.logger.Info("outbox relay stopped")
			return ctx.Err()
		case <-ticker.C:
			r.drain(ctx)
		}
	}
}

func (r *Relay) drain(ctx context.Context) {
	for {
		published, err := r.Flush(ctx)
		if err != nil {
			r.logger.Error("outbox flush failed", "error", err)
			return
		}
		if published < r.batchSize {
			return
		}
	}
}

// Flush publishes one batch of pending messages in enqueue order and marks
// the delivered ones. A mid-batch publish failure delivers the prefix and
// leaves the rest pending for the next tick.
func (r *Relay) Flush(ctx context.Context) (int, error) {
	batch, err := r.store.PendingBatch(ctx, r.batchSize)
	if err != nil {
		return 0, fmt.Errorf("load pending batch: %w", err)
	}
	if len(batch) == 0 {
		return 0, nil
	}

	delivered := make([]uuid.UUID, 0, len(batch))
	var publishErr error
	for _, msg := range batch {
		if err := r.publisher.Publish(ctx, msg.RoutingKey, msg.Payload); err != nil {
			publishErr = fmt.Errorf("publish %s: %w", msg.ID, err)
			break
		}
		delivered = append(delivered, msg.ID)
	}

	if len(delivered) > 0 {
		if err := r.store.MarkDelivered(ctx, delivered); err != nil {
			return 0, fmt.Errorf("mark delivered: %w", err)
		}
		r.logger.Debug("flushed outbox batch", "delivered", len(delivered))
	}

	return len(delivered), publishErr
}
