package processor

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/google/uuid"

	"sportsync/internal/domain"
)

// Processor is the unit of business logic for one document type. Process
// returns an outcome value rather than using errors for expected control
// flow; a non-nil error always means infrastructure failure and the
// transport layer redelivers the whole message.
type Processor interface {
	Process(ctx context.Context, cmd *domain.ProcessDocumentCommand) (Outcome, error)
}

// RefResolver resolves a foreign reference to an internal entity id.
// domain.ErrNotFound means the referenced document has not been sourced yet.
type RefResolver interface {
	Resolve(ctx context.Context, kind domain.EntityKind, provider domain.Provider, urlHash string) (uuid.UUID, error)
}

type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type OutboxEnqueuer interface {
	Enqueue(ctx context.Context, msgs ...*domain.OutboxMessage) error
}

type FranchiseStore interface {
	FindByRef(ctx context.Context, provider domain.Provider, urlHash string) (*domain.Franchise, error)
	Insert(ctx context.Context, entity *domain.Franchise, ref *domain.ExternalRef) error
	Update(ctx context.Context, entity *domain.Franchise) error
}

type FranchiseSeasonStore interface {
	FindByRef(ctx context.Context, provider domain.Provider, urlHash string) (*domain.FranchiseSeason, error)
	Insert(ctx context.Context, entity *domain.FranchiseSeason, ref *domain.ExternalRef) error
	Update(ctx context.Context, entity *domain.FranchiseSeason) error
}

type GroupSeasonStore interface {
	FindByRef(ctx context.Context, provider domain.Provider, urlHash string) (*domain.GroupSeason, error)
	Insert(ctx context.Context, entity *domain.GroupSeason, ref *domain.ExternalRef) error
	Update(ctx context.Context, entity *domain.GroupSeason) error
}

type SeasonWeekStore interface {
	FindByRef(ctx context.Context, provider domain.Provider, urlHash string) (*domain.SeasonWeek, error)
	Insert(ctx context.Context, entity *domain.SeasonWeek, ref *domain.ExternalRef) error
	Update(ctx context.Context, entity *domain.SeasonWeek) error
}

type ContestStore interface {
	FindByRef(ctx context.Context, provider domain.Provider, urlHash string) (*domain.Contest, error)
	Insert(ctx context.Context, entity *domain.Contest, ref *domain.ExternalRef) error
	Update(ctx context.Context, entity *domain.Contest) error
}

type CompetitionStore interface {
	FindByRef(ctx context.Context, provider domain.Provider, urlHash string) (*domain.Competition, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Competition, error)
	Insert(ctx context.Context, entity *domain.Competition, ref *domain.ExternalRef) error
	Update(ctx context.Context, entity *domain.Competition) error
}

type CompetitorStore interface {
	FindByRef(ctx context.Context, provider domain.Provider, urlHash string) (*domain.Competitor, error)
	Insert(ctx context.Context, entity *domain.Competitor, ref *domain.ExternalRef) error
	Update(ctx context.Context, entity *domain.Competitor) error
}

type AthleteStore interface {
	FindByRef(ctx context.Context, provider domain.Provider, urlHash string) (*domain.Athlete, error)
	Insert(ctx context.Context, entity *domain.Athlete, ref *domain.ExternalRef) error
	Update(ctx context.Context, entity *domain.Athlete) error
}

type AthleteSeasonStore interface {
	FindByRef(ctx context.Context, provider domain.Provider, urlHash string) (*domain.AthleteSeason, error)
	Insert(ctx context.Context, entity *domain.AthleteSeason, ref *domain.ExternalRef) error
	Update(ctx context.Context, entity *domain.AthleteSeason) error
}

type OddsStore interface {
	FindByRef(ctx context.Context, provider domain.Provider, urlHash string) (*domain.CompetitionOdds, error)
	Insert(ctx context.Context, entity *domain.CompetitionOdds, ref *domain.ExternalRef) error
	ApplyMerge(ctx context.Context, entity *domain.CompetitionOdds, changes domain.OddsLineChanges) error
}

type StatisticsStore interface {
	ReplaceForAthleteSeason(ctx context.Context, athleteSeasonID uuid.UUID, stats []domain.AthleteSeasonStatistic) error
}
