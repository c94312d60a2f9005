package processor_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"sportsync/internal/domain"
	"sportsync/internal/identity"
	"sportsync/internal/processor"
)

const franchiseURL = "https://sports.core.api.example.com/v2/sports/football/leagues/nfl/franchises/12?lang=en&region=us"

type FranchiseProcessorSuite struct {
	processorSuite
}

func TestFranchiseProcessorSuite(t *testing.T) {
	suite.Run(t, new(FranchiseProcessorSuite))
}

func (s *FranchiseProcessorSuite) TestProcess_CreatesNewFranchise() {
	ctx := context.Background()
	doc := `{"$ref":"` + franchiseURL + `","name":"Steelers","displayName":"Pittsburgh Steelers","abbreviation":"PIT","location":"Pittsburgh","isActive":true}`
	cmd := newCommand(domain.DocFranchise, doc)

	ident, err := identity.Generate(franchiseURL)
	s.Require().NoError(err)

	s.franchises.EXPECT().FindByRef(ctx, domain.ProviderESPN, ident.URLHash).Return(nil, domain.ErrNotFound)
	s.expectTx()
	s.franchises.EXPECT().Insert(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, entity *domain.Franchise, ref *domain.ExternalRef) error {
			s.Equal(ident.CanonicalID, entity.ID)
			s.Equal("Steelers", entity.Name)
			s.Equal(cmd.CorrelationID, entity.CreatedBy)
			s.Equal(domain.KindFranchise, ref.EntityKind)
			s.Equal(ident.URLHash, ref.SourceURLHash)
			return nil
		},
	)
	s.outbox.EXPECT().Enqueue(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, msgs ...*domain.OutboxMessage) error {
			s.Require().Len(msgs, 1)
			s.Equal("events.franchise.created", msgs[0].RoutingKey)

			var evt domain.EntityEvent
			s.Require().NoError(json.Unmarshal(msgs[0].Payload, &evt))
			s.Equal(cmd.CorrelationID, evt.CorrelationID)
			s.Equal(domain.ProducerFranchise, evt.CausationID)
			return nil
		},
	)

	outcome, err := s.resolve(domain.DocFranchise).Process(ctx, cmd)
	s.NoError(err)
	s.Equal(processor.StatusCompleted, outcome.Status)
}

func (s *FranchiseProcessorSuite) TestProcess_UpdatesChangedFranchise() {
	ctx := context.Background()
	doc := `{"$ref":"` + franchiseURL + `","name":"Steelers","displayName":"Pittsburgh Steelers","abbreviation":"PIT","location":"Pittsburgh","isActive":true}`
	cmd := newCommand(domain.DocFranchise, doc)

	ident, err := identity.Generate(franchiseURL)
	s.Require().NoError(err)

	existing := &domain.Franchise{
		ID:           ident.CanonicalID,
		Name:         "Old Name",
		DisplayName:  "Pittsburgh Steelers",
		Abbreviation: "PIT",
		Location:     "Pittsburgh",
		IsActive:     true,
	}

	s.franchises.EXPECT().FindByRef(ctx, domain.ProviderESPN, ident.URLHash).Return(existing, nil)
	s.expectTx()
	s.franchises.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, entity *domain.Franchise) error {
			s.Equal("Steelers", entity.Name)
			s.NotNil(entity.ModifiedUTC)
			s.Equal(cmd.CorrelationID, *entity.ModifiedBy)
			return nil
		},
	)
	s.outbox.EXPECT().Enqueue(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, msgs ...*domain.OutboxMessage) error {
			s.Require().Len(msgs, 1)
			s.Equal("events.franchise.updated", msgs[0].RoutingKey)
			return nil
		},
	)

	outcome, err := s.resolve(domain.DocFranchise).Process(ctx, cmd)
	s.NoError(err)
	s.Equal(processor.StatusCompleted, outcome.Status)
}

func (s *FranchiseProcessorSuite) TestProcess_UnchangedDocumentWritesNothing() {
	ctx := context.Background()
	doc := `{"$ref":"` + franchiseURL + `","name":"Steelers","displayName":"Pittsburgh Steelers","abbreviation":"PIT","location":"Pittsburgh","isActive":true}`
	cmd := newCommand(domain.DocFranchise, doc)

	ident, err := identity.Generate(franchiseURL)
	s.Require().NoError(err)

	existing := &domain.Franchise{
		ID:           ident.CanonicalID,
		Name:         "Steelers",
		DisplayName:  "Pittsburgh Steelers",
		Abbreviation: "PIT",
		Location:     "Pittsburgh",
		IsActive:     true,
	}

	s.franchises.EXPECT().FindByRef(ctx, domain.ProviderESPN, ident.URLHash).Return(existing, nil)

	outcome, err := s.resolve(domain.DocFranchise).Process(ctx, cmd)
	s.NoError(err)
	s.Equal(processor.StatusCompleted, outcome.Status)
}

func (s *FranchiseProcessorSuite) TestProcess_MalformedDocumentIsTerminal() {
	cmd := newCommand(domain.DocFranchise, `{not json`)

	outcome, err := s.resolve(domain.DocFranchise).Process(context.Background(), cmd)
	s.NoError(err)
	s.Equal(processor.StatusTerminal, outcome.Status)
	s.Contains(outcome.Reason, "deserialize")
}

func (s *FranchiseProcessorSuite) TestProcess_MissingSelfReferenceIsTerminal() {
	cmd := newCommand(domain.DocFranchise, `{"name":"Steelers"}`)

	outcome, err := s.resolve(domain.DocFranchise).Process(context.Background(), cmd)
	s.NoError(err)
	s.Equal(processor.StatusTerminal, outcome.Status)
}

func (s *FranchiseProcessorSuite) TestProcess_DuplicateInsertRaceIsSuccess() {
	ctx := context.Background()
	doc := `{"$ref":"` + franchiseURL + `","name":"Steelers","displayName":"Pittsburgh Steelers","abbreviation":"PIT","location":"Pittsburgh","isActive":true}`
	cmd := newCommand(domain.DocFranchise, doc)

	ident, err := identity.Generate(franchiseURL)
	s.Require().NoError(err)

	s.franchises.EXPECT().FindByRef(ctx, domain.ProviderESPN, ident.URLHash).Return(nil, domain.ErrNotFound)
	s.expectTx()
	s.franchises.EXPECT().Insert(gomock.Any(), gomock.Any(), gomock.Any()).Return(domain.ErrDuplicate)
	s.franchises.EXPECT().FindByRef(ctx, domain.ProviderESPN, ident.URLHash).Return(&domain.Franchise{ID: ident.CanonicalID}, nil)

	outcome, err := s.resolve(domain.DocFranchise).Process(ctx, cmd)
	s.NoError(err)
	s.Equal(processor.StatusCompleted, outcome.Status)
}
