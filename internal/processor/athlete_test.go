package processor_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"sportsync/internal/domain"
	"sportsync/internal/identity"
	"sportsync/internal/processor"
)

const (
	athleteURL     = "https://sports.core.api.example.com/v2/sports/football/leagues/nfl/athletes/3045147?lang=en"
	athleteTeamURL = "https://sports.core.api.example.com/v2/sports/football/leagues/nfl/franchises/23?lang=en"
)

type AthleteProcessorSuite struct {
	processorSuite
}

func TestAthleteProcessorSuite(t *testing.T) {
	suite.Run(t, new(AthleteProcessorSuite))
}

// A free agent carries no team, headshot, or position. None of them is a
// dependency; the document completes on first sight.
func (s *AthleteProcessorSuite) TestProcess_FreeAgentWithoutOptionalRefsCreates() {
	ctx := context.Background()
	doc := `{"$ref":"` + athleteURL + `","firstName":"Joe","lastName":"Flacco","displayName":"Joe Flacco","active":true}`
	cmd := newCommand(domain.DocAthlete, doc)

	ident, err := identity.Generate(athleteURL)
	s.Require().NoError(err)

	s.athletes.EXPECT().FindByRef(ctx, domain.ProviderESPN, ident.URLHash).Return(nil, domain.ErrNotFound)
	s.expectTx()
	s.athletes.EXPECT().Insert(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, entity *domain.Athlete, ref *domain.ExternalRef) error {
			s.Equal(ident.CanonicalID, entity.ID)
			s.Equal("Joe Flacco", entity.DisplayName)
			s.Nil(entity.FranchiseID)
			s.Nil(entity.Position)
			s.Nil(entity.HeadshotURL)
			s.Equal(domain.KindAthlete, ref.EntityKind)
			return nil
		},
	)
	s.outbox.EXPECT().Enqueue(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, msgs ...*domain.OutboxMessage) error {
			s.Require().Len(msgs, 1)
			s.Equal("events.athlete.created", msgs[0].RoutingKey)
			return nil
		},
	)

	outcome, err := s.resolve(domain.DocAthlete).Process(ctx, cmd)
	s.NoError(err)
	s.Equal(processor.StatusCompleted, outcome.Status)
}

func (s *AthleteProcessorSuite) TestProcess_UnresolvedTeamRefStillCompletes() {
	ctx := context.Background()
	doc := `{"$ref":"` + athleteURL + `","firstName":"Joe","lastName":"Flacco","displayName":"Joe Flacco","active":true,"team":{"$ref":"` + athleteTeamURL + `"}}`
	cmd := newCommand(domain.DocAthlete, doc)

	ident, err := identity.Generate(athleteURL)
	s.Require().NoError(err)
	teamIdent, err := identity.Generate(athleteTeamURL)
	s.Require().NoError(err)

	s.athletes.EXPECT().FindByRef(ctx, domain.ProviderESPN, ident.URLHash).Return(nil, domain.ErrNotFound)
	s.refs.EXPECT().Resolve(ctx, domain.KindFranchise, domain.ProviderESPN, teamIdent.URLHash).Return(uuid.Nil, domain.ErrNotFound)
	s.expectTx()
	s.athletes.EXPECT().Insert(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, entity *domain.Athlete, _ *domain.ExternalRef) error {
			s.Nil(entity.FranchiseID)
			return nil
		},
	)
	s.outbox.EXPECT().Enqueue(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, msgs ...*domain.OutboxMessage) error {
			s.Require().Len(msgs, 2)
			s.Equal("events.athlete.created", msgs[0].RoutingKey)
			s.Equal("documents.requested", msgs[1].RoutingKey)

			var req domain.DocumentRequested
			s.Require().NoError(json.Unmarshal(msgs[1].Payload, &req))
			s.Equal(domain.DocFranchise, req.DocumentType)
			s.Equal(teamIdent.URLHash, req.URLHash)
			s.Equal(domain.ProducerAthlete, req.CausationID)
			return nil
		},
	)

	outcome, err := s.resolve(domain.DocAthlete).Process(ctx, cmd)
	s.NoError(err)
	s.Equal(processor.StatusCompleted, outcome.Status)
}

func (s *AthleteProcessorSuite) TestProcess_UnchangedAthleteStillRequestsUnresolvedTeam() {
	ctx := context.Background()
	doc := `{"$ref":"` + athleteURL + `","firstName":"Joe","lastName":"Flacco","displayName":"Joe Flacco","active":true,"team":{"$ref":"` + athleteTeamURL + `"}}`
	cmd := newCommand(domain.DocAthlete, doc)

	ident, err := identity.Generate(athleteURL)
	s.Require().NoError(err)
	teamIdent, err := identity.Generate(athleteTeamURL)
	s.Require().NoError(err)

	existing := &domain.Athlete{
		ID:          ident.CanonicalID,
		FirstName:   "Joe",
		LastName:    "Flacco",
		DisplayName: "Joe Flacco",
		IsActive:    true,
	}

	s.athletes.EXPECT().FindByRef(ctx, domain.ProviderESPN, ident.URLHash).Return(existing, nil)
	s.refs.EXPECT().Resolve(ctx, domain.KindFranchise, domain.ProviderESPN, teamIdent.URLHash).Return(uuid.Nil, domain.ErrNotFound)
	s.expectTx()
	s.outbox.EXPECT().Enqueue(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, msgs ...*domain.OutboxMessage) error {
			s.Require().Len(msgs, 1)
			s.Equal("documents.requested", msgs[0].RoutingKey)

			var req domain.DocumentRequested
			s.Require().NoError(json.Unmarshal(msgs[0].Payload, &req))
			s.Equal(domain.DocFranchise, req.DocumentType)
			return nil
		},
	)

	outcome, err := s.resolve(domain.DocAthlete).Process(ctx, cmd)
	s.NoError(err)
	s.Equal(processor.StatusCompleted, outcome.Status)
}
