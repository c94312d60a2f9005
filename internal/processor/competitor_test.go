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
	competitorURL  = "https://sports.core.api.example.com/v2/sports/football/leagues/nfl/events/401547401/competitions/401547401/competitors/23?lang=en"
	competitionURL = "https://sports.core.api.example.com/v2/sports/football/leagues/nfl/events/401547401/competitions/401547401?lang=en"
	teamSeasonURL  = "https://sports.core.api.example.com/v2/sports/football/leagues/nfl/seasons/2024/teams/23?lang=en"
)

func competitorDoc() string {
	return `{"$ref":"` + competitorURL + `","competition":{"$ref":"` + competitionURL + `"},"team":{"$ref":"` + teamSeasonURL + `"},"homeAway":"home","order":1}`
}

type CompetitorProcessorSuite struct {
	processorSuite
}

func TestCompetitorProcessorSuite(t *testing.T) {
	suite.Run(t, new(CompetitorProcessorSuite))
}

func (s *CompetitorProcessorSuite) TestProcess_MissingCompetitionDefers() {
	ctx := context.Background()
	cmd := newCommand(domain.DocEventCompetitionCompetitor, competitorDoc())
	cmd.ParentID = uuid.New().String()

	selfIdent, err := identity.Generate(competitorURL)
	s.Require().NoError(err)
	compIdent, err := identity.Generate(competitionURL)
	s.Require().NoError(err)

	s.teams.EXPECT().FindByRef(ctx, domain.ProviderESPN, selfIdent.URLHash).Return(nil, domain.ErrNotFound)
	s.refs.EXPECT().Resolve(ctx, domain.KindCompetition, domain.ProviderESPN, compIdent.URLHash).Return(uuid.Nil, domain.ErrNotFound)

	outcome, err := s.resolve(domain.DocEventCompetitionCompetitor).Process(ctx, cmd)
	s.NoError(err)
	s.Equal(processor.StatusDeferred, outcome.Status)
	s.Require().Len(outcome.Requests, 1)

	req := outcome.Requests[0]
	s.Equal(domain.DocEventCompetition, req.DocumentType)
	s.Equal(compIdent.CleanURL, req.URI)
	s.Equal(compIdent.URLHash, req.URLHash)
	s.Equal(cmd.ParentID, req.ParentID)
	s.Equal(cmd.CorrelationID, req.CorrelationID)
	s.Equal(domain.ProducerCompetitor, req.CausationID)
}

func (s *CompetitorProcessorSuite) TestProcess_MissingTeamSeasonDefers() {
	ctx := context.Background()
	cmd := newCommand(domain.DocEventCompetitionCompetitor, competitorDoc())

	selfIdent, err := identity.Generate(competitorURL)
	s.Require().NoError(err)
	compIdent, err := identity.Generate(competitionURL)
	s.Require().NoError(err)
	teamIdent, err := identity.Generate(teamSeasonURL)
	s.Require().NoError(err)

	s.teams.EXPECT().FindByRef(ctx, domain.ProviderESPN, selfIdent.URLHash).Return(nil, domain.ErrNotFound)
	s.refs.EXPECT().Resolve(ctx, domain.KindCompetition, domain.ProviderESPN, compIdent.URLHash).Return(uuid.New(), nil)
	s.refs.EXPECT().Resolve(ctx, domain.KindFranchiseSeason, domain.ProviderESPN, teamIdent.URLHash).Return(uuid.Nil, domain.ErrNotFound)

	outcome, err := s.resolve(domain.DocEventCompetitionCompetitor).Process(ctx, cmd)
	s.NoError(err)
	s.Equal(processor.StatusDeferred, outcome.Status)
	s.Require().Len(outcome.Requests, 1)
	s.Equal(domain.DocTeamSeason, outcome.Requests[0].DocumentType)
}

func (s *CompetitorProcessorSuite) TestProcess_AllDependenciesResolvedCreates() {
	ctx := context.Background()
	cmd := newCommand(domain.DocEventCompetitionCompetitor, competitorDoc())

	selfIdent, err := identity.Generate(competitorURL)
	s.Require().NoError(err)
	compIdent, err := identity.Generate(competitionURL)
	s.Require().NoError(err)
	teamIdent, err := identity.Generate(teamSeasonURL)
	s.Require().NoError(err)

	competitionID := uuid.New()
	teamSeasonID := uuid.New()

	s.teams.EXPECT().FindByRef(ctx, domain.ProviderESPN, selfIdent.URLHash).Return(nil, domain.ErrNotFound)
	s.refs.EXPECT().Resolve(ctx, domain.KindCompetition, domain.ProviderESPN, compIdent.URLHash).Return(competitionID, nil)
	s.refs.EXPECT().Resolve(ctx, domain.KindFranchiseSeason, domain.ProviderESPN, teamIdent.URLHash).Return(teamSeasonID, nil)
	s.expectTx()
	s.teams.EXPECT().Insert(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, entity *domain.Competitor, ref *domain.ExternalRef) error {
			s.Equal(selfIdent.CanonicalID, entity.ID)
			s.Equal(competitionID, entity.CompetitionID)
			s.Equal(teamSeasonID, entity.FranchiseSeasonID)
			s.Equal("home", entity.HomeAway)
			s.Equal(domain.KindCompetitor, ref.EntityKind)
			return nil
		},
	)
	s.outbox.EXPECT().Enqueue(gomock.Any(), gomock.Any()).Return(nil)

	outcome, err := s.resolve(domain.DocEventCompetitionCompetitor).Process(ctx, cmd)
	s.NoError(err)
	s.Equal(processor.StatusCompleted, outcome.Status)
}

func (s *CompetitorProcessorSuite) TestProcess_MissingCompetitionRefIsTerminal() {
	cmd := newCommand(domain.DocEventCompetitionCompetitor,
		`{"$ref":"`+competitorURL+`","team":{"$ref":"`+teamSeasonURL+`"},"homeAway":"home"}`)

	selfIdent, err := identity.Generate(competitorURL)
	s.Require().NoError(err)
	s.teams.EXPECT().FindByRef(gomock.Any(), domain.ProviderESPN, selfIdent.URLHash).Return(nil, domain.ErrNotFound)

	outcome, err := s.resolve(domain.DocEventCompetitionCompetitor).Process(context.Background(), cmd)
	s.NoError(err)
	s.Equal(processor.StatusTerminal, outcome.Status)
}
