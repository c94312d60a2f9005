package processor

import (
	"fmt"
	"log/slog"

	"sportsync/internal/domain"
)

// Key routes a command to its processor. The full triple matters: the same
// document type can be handled differently per sport.
type Key struct {
	Provider     domain.Provider
	Sport        domain.Sport
	DocumentType domain.DocumentType
}

// Registry is the explicit dispatch table built at process start. There is
// no runtime discovery; a triple without a processor fails construction.
type Registry struct {
	processors map[Key]Processor
}

func NewRegistry() *Registry {
	return &Registry{processors: make(map[Key]Processor)}
}

func (r *Registry) Register(key Key, p Processor) error {
	if _, ok := r.processors[key]; ok {
		return fmt.Errorf("duplicate processor registration for %v", key)
	}
	r.processors[key] = p
	return nil
}

func (r *Registry) Resolve(provider domain.Provider, sport domain.Sport, docType domain.DocumentType) (Processor, error) {
	p, ok := r.processors[Key{Provider: provider, Sport: sport, DocumentType: docType}]
	if !ok {
		return nil, fmt.Errorf("no processor registered for provider=%s sport=%s type=%s", provider, sport, docType)
	}
	return p, nil
}

// Deps bundles the collaborators processors are built from.
type Deps struct {
	Logger           *slog.Logger
	Tx               TransactionManager
	Refs             RefResolver
	Outbox           OutboxEnqueuer
	Franchises       FranchiseStore
	FranchiseSeasons FranchiseSeasonStore
	GroupSeasons     GroupSeasonStore
	SeasonWeeks      SeasonWeekStore
	Contests         ContestStore
	Competitions     CompetitionStore
	Competitors      CompetitorStore
	Athletes         AthleteStore
	AthleteSeasons   AthleteSeasonStore
	Odds             OddsStore
	Statistics       StatisticsStore
}

// BuildRegistry registers every document type for each configured sport and
// verifies completeness: startup fails if any declared type is left without
// a handler.
func BuildRegistry(deps Deps, sports []domain.Sport) (*Registry, error) {
	r := NewRegistry()

	for _, sport := range sports {
		if !sport.IsValid() {
			return nil, fmt.Errorf("unknown sport %q", sport)
		}

		b := newBase(deps, sport)

		handlers := map[domain.DocumentType]Processor{
			domain.DocFranchise:                  &FranchiseProcessor{base: b.forProducer(domain.ProducerFranchise), franchises: deps.Franchises},
			domain.DocTeamSeason:                 &TeamSeasonProcessor{base: b.forProducer(domain.ProducerTeamSeason), seasons: deps.FranchiseSeasons},
			domain.DocGroupSeason:                &GroupSeasonProcessor{base: b.forProducer(domain.ProducerGroupSeason), groups: deps.GroupSeasons},
			domain.DocSeasonTypeWeek:             &SeasonWeekProcessor{base: b.forProducer(domain.ProducerSeasonWeek), weeks: deps.SeasonWeeks},
			domain.DocEvent:                      &EventProcessor{base: b.forProducer(domain.ProducerEvent), contests: deps.Contests},
			domain.DocEventCompetition:           &CompetitionProcessor{base: b.forProducer(domain.ProducerCompetition), competitions: deps.Competitions},
			domain.DocEventCompetitionCompetitor: &CompetitorProcessor{base: b.forProducer(domain.ProducerCompetitor), competitors: deps.Competitors},
			domain.DocEventCompetitionOdds:       &OddsProcessor{base: b.forProducer(domain.ProducerOdds), odds: deps.Odds, competitions: deps.Competitions},
			domain.DocAthlete:                    &AthleteProcessor{base: b.forProducer(domain.ProducerAthlete), athletes: deps.Athletes},
			domain.DocAthleteSeason:              &AthleteSeasonProcessor{base: b.forProducer(domain.ProducerAthleteSeason), seasons: deps.AthleteSeasons},
			domain.DocAthleteSeasonStatistics:    &StatisticsProcessor{base: b.forProducer(domain.ProducerStatistics), statistics: deps.Statistics},
		}

		for _, docType := range domain.DocumentTypes() {
			p, ok := handlers[docType]
			if !ok {
				return nil, fmt.Errorf("document type %s has no processor for sport %s", docType, sport)
			}
			key := Key{Provider: domain.ProviderESPN, Sport: sport, DocumentType: docType}
			if err := r.Register(key, p); err != nil {
				return nil, err
			}
		}
	}

	return r, nil
}
