package processor_test

import (
	"context"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"sportsync/internal/domain"
	"sportsync/internal/processor"
	"sportsync/internal/processor/mocks"
)

// processorSuite wires a full registry against mocks. Individual suites embed
// it and resolve the processor under test through the registry, the same path
// the worker takes.
type processorSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	refs       *mocks.MockRefResolver
	tx         *mocks.MockTransactionManager
	outbox     *mocks.MockOutboxEnqueuer
	franchises *mocks.MockFranchiseStore
	seasons    *mocks.MockFranchiseSeasonStore
	groups     *mocks.MockGroupSeasonStore
	weeks      *mocks.MockSeasonWeekStore
	contests   *mocks.MockContestStore
	comps      *mocks.MockCompetitionStore
	teams      *mocks.MockCompetitorStore
	athletes   *mocks.MockAthleteStore
	rosters    *mocks.MockAthleteSeasonStore
	odds       *mocks.MockOddsStore
	stats      *mocks.MockStatisticsStore

	registry *processor.Registry
}

func (s *processorSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())

	s.refs = mocks.NewMockRefResolver(s.ctrl)
	s.tx = mocks.NewMockTransactionManager(s.ctrl)
	s.outbox = mocks.NewMockOutboxEnqueuer(s.ctrl)
	s.franchises = mocks.NewMockFranchiseStore(s.ctrl)
	s.seasons = mocks.NewMockFranchiseSeasonStore(s.ctrl)
	s.groups = mocks.NewMockGroupSeasonStore(s.ctrl)
	s.weeks = mocks.NewMockSeasonWeekStore(s.ctrl)
	s.contests = mocks.NewMockContestStore(s.ctrl)
	s.comps = mocks.NewMockCompetitionStore(s.ctrl)
	s.teams = mocks.NewMockCompetitorStore(s.ctrl)
	s.athletes = mocks.NewMockAthleteStore(s.ctrl)
	s.rosters = mocks.NewMockAthleteSeasonStore(s.ctrl)
	s.odds = mocks.NewMockOddsStore(s.ctrl)
	s.stats = mocks.NewMockStatisticsStore(s.ctrl)

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	registry, err := processor.BuildRegistry(processor.Deps{
		Logger:           logger,
		Tx:               s.tx,
		Refs:             s.refs,
		Outbox:           s.outbox,
		Franchises:       s.franchises,
		FranchiseSeasons: s.seasons,
		GroupSeasons:     s.groups,
		SeasonWeeks:      s.weeks,
		Contests:         s.contests,
		Competitions:     s.comps,
		Competitors:      s.teams,
		Athletes:         s.athletes,
		AthleteSeasons:   s.rosters,
		Odds:             s.odds,
		Statistics:       s.stats,
	}, []domain.Sport{domain.SportFootballNFL})
	s.Require().NoError(err)
	s.registry = registry
}

func (s *processorSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *processorSuite) resolve(docType domain.DocumentType) processor.Processor {
	p, err := s.registry.Resolve(domain.ProviderESPN, domain.SportFootballNFL, docType)
	s.Require().NoError(err)
	return p
}

func newCommand(docType domain.DocumentType, doc string) *domain.ProcessDocumentCommand {
	return &domain.ProcessDocumentCommand{
		Document:      doc,
		Provider:      domain.ProviderESPN,
		Sport:         domain.SportFootballNFL,
		DocumentType:  docType,
		CorrelationID: uuid.New(),
		CausationID:   uuid.New(),
	}
}

// expectTx makes the transaction manager run the callback inline, so store
// expectations fire inside it.
func (s *processorSuite) expectTx() {
	s.tx.EXPECT().WithTransaction(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	)
}
