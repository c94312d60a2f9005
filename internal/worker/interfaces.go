package worker

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"sportsync/internal/domain"
	"sportsync/internal/processor"
)

// Dispatcher routes a command to the processor registered for its
// provider/sport/type triple.
type Dispatcher interface {
	Resolve(provider domain.Provider, sport domain.Sport, docType domain.DocumentType) (processor.Processor, error)
}

// CommandPublisher re-enqueues a processing command onto the ingest queue.
type CommandPublisher interface {
	PublishCommand(ctx context.Context, cmd *domain.ProcessDocumentCommand) error
}

type OutboxEnqueuer interface {
	Enqueue(ctx context.Context, msgs ...*domain.OutboxMessage) error
}

type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
