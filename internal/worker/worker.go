package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	amqp "github.com/rabbitmq/amqp091-go"

	"sportsync/internal/domain"
	"sportsync/internal/processor"
)

// Worker consumes processing commands and drives them through the registry.
// Outcomes map to broker acknowledgements: completed and terminal commands
// are acked, infrastructure failures are nacked for redelivery, and deferred
// commands are republished with an incremented attempt count after their
// dependency requests have been staged.
type Worker struct {
	dispatcher  Dispatcher
	publisher   CommandPublisher
	outbox      OutboxEnqueuer
	tx          TransactionManager
	logger      *slog.Logger
	maxAttempts int
}

type Config struct {
	MaxAttempts int
}

func New(
	dispatcher Dispatcher,
	publisher CommandPublisher,
	outbox OutboxEnqueuer,
	tx TransactionManager,
	logger *slog.Logger,
	cfg Config,
) *Worker {
	return &Worker{
		dispatcher:  dispatcher,
		publisher:   publisher,
		outbox:      outbox,
		tx:          tx,
		logger:      logger,
		maxAttempts: cfg.MaxAttempts,
	}
}

// Run consumes deliveries with the given number of goroutines until the
// channel closes or the context is cancelled.
func (w *Worker) Run(ctx context.Context, deliveries <-chan amqp.Delivery, concurrency int) {
	var wg sync.WaitGroup
	for i := 0; i < concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case d, ok := <-deliveries:
					if !ok {
						return
					}
					w.handle(ctx, d)
				}
			}
		}()
	}
	wg.Wait()
	w.logger.Info("worker stopped")
}

func (w *Worker) handle(ctx context.Context, d amqp.Delivery) {
	var cmd domain.ProcessDocumentCommand
	if err := json.Unmarshal(d.Body, &cmd); err != nil {
		w.logger.Error("dropping undecodable command", "error", err)
		w.reject(d)
		return
	}

	logger := w.logger.With(
		"document_type", cmd.DocumentType,
		"sport", cmd.Sport,
		"url_hash", cmd.URLHash,
		"correlation_id", cmd.CorrelationID,
		"attempt", cmd.Attempt,
	)

	proc, err := w.dispatcher.Resolve(cmd.Provider, cmd.Sport, cmd.DocumentType)
	if err != nil {
		logger.Error("dropping unroutable command", "error", err)
		w.reject(d)
		return
	}

	outcome, err := proc.Process(ctx, &cmd)
	if err != nil {
		logger.Error("processing failed, requeueing", "error", err)
		w.requeue(d)
		return
	}

	switch outcome.Status {
	case processor.StatusCompleted:
		w.ack(d)

	case processor.StatusTerminal:
		logger.Warn("command terminal, dropping", "reason", outcome.Reason)
		w.ack(d)

	case processor.StatusDeferred:
		if err := w.deferCommand(ctx, &cmd, outcome, logger); err != nil {
			logger.Error("deferral failed, requeueing", "error", err)
			w.requeue(d)
			return
		}
		w.ack(d)

	default:
		logger.Error("unknown outcome status, requeueing", "status", outcome.Status)
		w.requeue(d)
	}
}

// deferCommand stages the dependency sourcing requests and republishes the command
// with the attempt count bumped. The requests ride the outbox in their own
// transaction so they survive a crash between staging and republish.
func (w *Worker) deferCommand(ctx context.Context, cmd *domain.ProcessDocumentCommand, outcome processor.Outcome, logger *slog.Logger) error {
	next := cmd.Attempt + 1
	if next > w.maxAttempts {
		logger.Error("attempt ceiling reached, dropping command", "max_attempts", w.maxAttempts)
		return nil
	}

	msgs := make([]*domain.OutboxMessage, 0, len(outcome.Requests))
	for i := range outcome.Requests {
		msg, err := domain.NewDocumentRequestMessage(&outcome.Requests[i])
		if err != nil {
			return fmt.Errorf("build dependency request: %w", err)
		}
		msgs = append(msgs, msg)
	}

	if len(msgs) > 0 {
		err := w.tx.WithTransaction(ctx, func(txCtx context.Context) error {
			return w.outbox.Enqueue(txCtx, msgs...)
		})
		if err != nil {
			return fmt.Errorf("stage dependency requests: %w", err)
		}
	}

	if err := w.publisher.PublishCommand(ctx, cmd.WithAttempt(next)); err != nil {
		return fmt.Errorf("republish command: %w", err)
	}

	logger.Info("deferred command", "requests", len(msgs), "next_attempt", next)
	return nil
}

func (w *Worker) ack(d amqp.Delivery) {
	if err := d.Ack(false); err != nil {
		w.logger.Error("ack failed", "error", err)
	}
}

func (w *Worker) requeue(d amqp.Delivery) {
	if err := d.Nack(false, true); err != nil {
		w.logger.Error("nack failed", "error", err)
	}
}

func (w *Worker) reject(d amqp.Delivery) {
	if err := d.Nack(false, false); err != nil {
		w.logger.Error("reject failed", "error", err)
	}
}
