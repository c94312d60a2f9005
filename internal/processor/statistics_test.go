package processor_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"sportsync/internal/domain"
	"sportsync/internal/identity"
	"sportsync/internal/processor"
)

const (
	statisticsURL    = "https://sports.core.api.example.com/v2/sports/football/leagues/nfl/seasons/2024/athletes/3139477/statistics?lang=en"
	athleteSeasonURL = "https://sports.core.api.example.com/v2/sports/football/leagues/nfl/seasons/2024/athletes/3139477?lang=en"
)

func statisticsDoc() string {
	return `{"$ref":"` + statisticsURL + `","athleteSeason":{"$ref":"` + athleteSeasonURL + `"},"splits":[{"name":"passing","stats":[{"name":"passingYards","value":4183,"displayValue":"4,183"},{"name":"passingTouchdowns","value":28,"displayValue":"28"}]},{"name":"rushing","stats":[{"name":"rushingYards","value":523,"displayValue":"523"}]}]}`
}

type StatisticsProcessorSuite struct {
	processorSuite
}

func TestStatisticsProcessorSuite(t *testing.T) {
	suite.Run(t, new(StatisticsProcessorSuite))
}

func (s *StatisticsProcessorSuite) TestProcess_MissingAthleteSeasonDefers() {
	ctx := context.Background()
	cmd := newCommand(domain.DocAthleteSeasonStatistics, statisticsDoc())

	seasonIdent, err := identity.Generate(athleteSeasonURL)
	s.Require().NoError(err)

	s.refs.EXPECT().Resolve(ctx, domain.KindAthleteSeason, domain.ProviderESPN, seasonIdent.URLHash).Return(uuid.Nil, domain.ErrNotFound)

	outcome, err := s.resolve(domain.DocAthleteSeasonStatistics).Process(ctx, cmd)
	s.NoError(err)
	s.Equal(processor.StatusDeferred, outcome.Status)
	s.Require().Len(outcome.Requests, 1)
	s.Equal(domain.DocAthleteSeason, outcome.Requests[0].DocumentType)
	s.Equal(seasonIdent.CleanURL, outcome.Requests[0].URI)
}

func (s *StatisticsProcessorSuite) TestProcess_ReplacesAllRows() {
	ctx := context.Background()
	cmd := newCommand(domain.DocAthleteSeasonStatistics, statisticsDoc())

	seasonIdent, err := identity.Generate(athleteSeasonURL)
	s.Require().NoError(err)
	seasonID := uuid.New()

	s.refs.EXPECT().Resolve(ctx, domain.KindAthleteSeason, domain.ProviderESPN, seasonIdent.URLHash).Return(seasonID, nil)
	s.expectTx()
	s.stats.EXPECT().ReplaceForAthleteSeason(gomock.Any(), seasonID, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ uuid.UUID, stats []domain.AthleteSeasonStatistic) error {
			s.Require().Len(stats, 3)
			s.Equal("passing", stats[0].Category)
			s.Equal("passingYards", stats[0].StatKey)
			s.Equal(4183.0, stats[0].Value)
			s.Equal("rushing", stats[2].Category)
			for _, stat := range stats {
				s.Equal(seasonID, stat.AthleteSeasonID)
			}
			return nil
		},
	)
	s.outbox.EXPECT().Enqueue(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, msgs ...*domain.OutboxMessage) error {
			s.Require().Len(msgs, 1)
			s.Equal("events.athlete_season.updated", msgs[0].RoutingKey)
			return nil
		},
	)

	outcome, err := s.resolve(domain.DocAthleteSeasonStatistics).Process(ctx, cmd)
	s.NoError(err)
	s.Equal(processor.StatusCompleted, outcome.Status)
}

func (s *StatisticsProcessorSuite) TestProcess_MalformedDocumentIsTerminal() {
	cmd := newCommand(domain.DocAthleteSeasonStatistics, `not json`)

	outcome, err := s.resolve(domain.DocAthleteSeasonStatistics).Process(context.Background(), cmd)
	s.NoError(err)
	s.Equal(processor.StatusTerminal, outcome.Status)
}
