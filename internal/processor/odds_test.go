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

const oddsURL = "https://sports.core.api.example.com/v2/sports/football/leagues/nfl/events/401547401/competitions/401547401/odds/58?lang=en"

type OddsProcessorSuite struct {
	processorSuite
}

func TestOddsProcessorSuite(t *testing.T) {
	suite.Run(t, new(OddsProcessorSuite))
}

func (s *OddsProcessorSuite) TestProcess_MissingParentIsTerminal() {
	cmd := newCommand(domain.DocEventCompetitionOdds, `{"$ref":"`+oddsURL+`","provider":"Book"}`)

	outcome, err := s.resolve(domain.DocEventCompetitionOdds).Process(context.Background(), cmd)
	s.NoError(err)
	s.Equal(processor.StatusTerminal, outcome.Status)
	s.Contains(outcome.Reason, "parent")
}

func (s *OddsProcessorSuite) TestProcess_UnknownCompetitionIsTerminal() {
	ctx := context.Background()
	cmd := newCommand(domain.DocEventCompetitionOdds, `{"$ref":"`+oddsURL+`","provider":"Book"}`)
	competitionID := uuid.New()
	cmd.ParentID = competitionID.String()

	s.comps.EXPECT().FindByID(ctx, competitionID).Return(nil, domain.ErrNotFound)

	outcome, err := s.resolve(domain.DocEventCompetitionOdds).Process(ctx, cmd)
	s.NoError(err)
	s.Equal(processor.StatusTerminal, outcome.Status)
}

func (s *OddsProcessorSuite) TestProcess_UnchangedFingerprintIsNoOp() {
	ctx := context.Background()
	doc := `{"$ref":"` + oddsURL + `","provider":"Book","overUnder":47.5,"lines":[{"side":"home","phase":"regular","value":-3.5}]}`
	cmd := newCommand(domain.DocEventCompetitionOdds, doc)
	competitionID := uuid.New()
	cmd.ParentID = competitionID.String()

	ident, err := identity.Generate(oddsURL)
	s.Require().NoError(err)
	fingerprint, err := identity.Fingerprint([]byte(doc))
	s.Require().NoError(err)

	s.comps.EXPECT().FindByID(ctx, competitionID).Return(&domain.Competition{ID: competitionID}, nil)
	s.odds.EXPECT().FindByRef(ctx, domain.ProviderESPN, ident.URLHash).Return(&domain.CompetitionOdds{
		ID:          ident.CanonicalID,
		ContentHash: fingerprint,
	}, nil)

	outcome, err := s.resolve(domain.DocEventCompetitionOdds).Process(ctx, cmd)
	s.NoError(err)
	s.Equal(processor.StatusCompleted, outcome.Status)
}

func (s *OddsProcessorSuite) TestProcess_ReformattedDocumentIsStillNoOp() {
	ctx := context.Background()
	doc := `{"provider":"Book","$ref":"` + oddsURL + `",  "overUnder": 47.5}`
	canonical := `{"$ref":"` + oddsURL + `","provider":"Book","overUnder":47.5}`
	cmd := newCommand(domain.DocEventCompetitionOdds, doc)
	competitionID := uuid.New()
	cmd.ParentID = competitionID.String()

	ident, err := identity.Generate(oddsURL)
	s.Require().NoError(err)
	fingerprint, err := identity.Fingerprint([]byte(canonical))
	s.Require().NoError(err)

	s.comps.EXPECT().FindByID(ctx, competitionID).Return(&domain.Competition{ID: competitionID}, nil)
	s.odds.EXPECT().FindByRef(ctx, domain.ProviderESPN, ident.URLHash).Return(&domain.CompetitionOdds{
		ID:          ident.CanonicalID,
		ContentHash: fingerprint,
	}, nil)

	outcome, err := s.resolve(domain.DocEventCompetitionOdds).Process(ctx, cmd)
	s.NoError(err)
	s.Equal(processor.StatusCompleted, outcome.Status)
}

func (s *OddsProcessorSuite) TestProcess_CreatesNewOddsWithLines() {
	ctx := context.Background()
	doc := `{"$ref":"` + oddsURL + `","provider":"Book","spread":-3.5,"lines":[{"side":"home","phase":"regular","value":-3.5,"favorite":true},{"side":"away","phase":"regular","value":3.5,"underdog":true}]}`
	cmd := newCommand(domain.DocEventCompetitionOdds, doc)
	competitionID := uuid.New()
	cmd.ParentID = competitionID.String()

	ident, err := identity.Generate(oddsURL)
	s.Require().NoError(err)
	fingerprint, err := identity.Fingerprint([]byte(doc))
	s.Require().NoError(err)

	s.comps.EXPECT().FindByID(ctx, competitionID).Return(&domain.Competition{ID: competitionID}, nil)
	s.odds.EXPECT().FindByRef(ctx, domain.ProviderESPN, ident.URLHash).Return(nil, domain.ErrNotFound)
	s.expectTx()
	s.odds.EXPECT().Insert(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, entity *domain.CompetitionOdds, ref *domain.ExternalRef) error {
			s.Equal(ident.CanonicalID, entity.ID)
			s.Equal(competitionID, entity.CompetitionID)
			s.Equal("Book", entity.BookName)
			s.Equal(fingerprint, entity.ContentHash)
			s.Len(entity.Lines, 2)
			s.Equal(domain.KindCompetitionOdds, ref.EntityKind)
			return nil
		},
	)
	s.outbox.EXPECT().Enqueue(gomock.Any(), gomock.Any()).Return(nil)

	outcome, err := s.resolve(domain.DocEventCompetitionOdds).Process(ctx, cmd)
	s.NoError(err)
	s.Equal(processor.StatusCompleted, outcome.Status)
}

func (s *OddsProcessorSuite) TestProcess_ChangedLinesAreMerged() {
	ctx := context.Background()
	doc := `{"$ref":"` + oddsURL + `","provider":"Book","spread":-2.5,"lines":[{"side":"home","phase":"regular","value":-2.5},{"side":"home","phase":"live","value":-1.0}]}`
	cmd := newCommand(domain.DocEventCompetitionOdds, doc)
	competitionID := uuid.New()
	cmd.ParentID = competitionID.String()

	ident, err := identity.Generate(oddsURL)
	s.Require().NoError(err)
	fingerprint, err := identity.Fingerprint([]byte(doc))
	s.Require().NoError(err)

	oldValue := -3.5
	staleLine := domain.OddsLine{ID: uuid.New(), OddsID: ident.CanonicalID, Side: "away", Phase: "regular", Value: &oldValue}
	movedLine := domain.OddsLine{ID: uuid.New(), OddsID: ident.CanonicalID, Side: "home", Phase: "regular", Value: &oldValue}

	existing := &domain.CompetitionOdds{
		ID:            ident.CanonicalID,
		CompetitionID: competitionID,
		BookName:      "Book",
		ContentHash:   "stale-hash",
		Lines:         []domain.OddsLine{movedLine, staleLine},
	}

	s.comps.EXPECT().FindByID(ctx, competitionID).Return(&domain.Competition{ID: competitionID}, nil)
	s.odds.EXPECT().FindByRef(ctx, domain.ProviderESPN, ident.URLHash).Return(existing, nil)
	s.expectTx()
	s.odds.EXPECT().ApplyMerge(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, entity *domain.CompetitionOdds, changes domain.OddsLineChanges) error {
			s.Equal(fingerprint, entity.ContentHash)
			s.NotNil(entity.ModifiedUTC)

			s.Len(changes.Add, 1)
			s.Equal("live", changes.Add[0].Phase)

			s.Require().Len(changes.Update, 1)
			s.Equal(movedLine.ID, changes.Update[0].ID)
			s.Equal(-2.5, *changes.Update[0].Value)

			s.Require().Len(changes.Remove, 1)
			s.Equal(staleLine.ID, changes.Remove[0])
			return nil
		},
	)
	s.outbox.EXPECT().Enqueue(gomock.Any(), gomock.Any()).Return(nil)

	outcome, err := s.resolve(domain.DocEventCompetitionOdds).Process(ctx, cmd)
	s.NoError(err)
	s.Equal(processor.StatusCompleted, outcome.Status)
}
