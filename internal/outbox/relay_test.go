package outbox

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"sportsync/internal/domain"
	"sportsync/internal/outbox/mocks"
)

type RelayTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	store     *mocks.MockStore
	publisher *mocks.MockPublisher

	relay *Relay
}

func (s *RelayTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.store = mocks.NewMockStore(s.ctrl)
	s.publisher = mocks.NewMockPublisher(s.ctrl)

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	s.relay = NewRelay(s.store, s.publisher, time.Second, 10, logger)
}

func (s *RelayTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestRelayTestSuite(t *testing.T) {
	suite.Run(t, new(RelayTestSuite))
}

func message(routingKey string) *domain.OutboxMessage {
	return &domain.OutboxMessage{
		ID:          uuid.New(),
		Kind:        domain.OutboxEntityEvent,
		RoutingKey:  routingKey,
		Payload:     []byte(`{"x":1}`),
		EnqueuedUTC: time.Now().UTC(),
	}
}

func (s *RelayTestSuite) TestFlush_EmptyOutboxDoesNothing() {
	ctx := context.Background()
	s.store.EXPECT().PendingBatch(ctx, 10).Return(nil, nil)

	published, err := s.relay.Flush(ctx)
	s.NoError(err)
	s.Zero(published)
}

func (s *RelayTestSuite) TestFlush_PublishesInOrderAndMarksDelivered() {
	ctx := context.Background()
	first := message("events.franchise.created")
	second := message("documents.requested")

	s.store.EXPECT().PendingBatch(ctx, 10).Return([]*domain.OutboxMessage{first, second}, nil)

	gomock.InOrder(
		s.publisher.EXPECT().Publish(ctx, first.RoutingKey, first.Payload).Return(nil),
		s.publisher.EXPECT().Publish(ctx, second.RoutingKey, second.Payload).Return(nil),
	)
	s.store.EXPECT().MarkDelivered(ctx, []uuid.UUID{first.ID, second.ID}).Return(nil)

	published, err := s.relay.Flush(ctx)
	s.NoError(err)
	s.Equal(2, published)
}

func (s *RelayTestSuite) TestFlush_MidBatchFailureDeliversPrefix() {
	ctx := context.Background()
	first := message("events.contest.created")
	second := message("events.contest.updated")

	s.store.EXPECT().PendingBatch(ctx, 10).Return([]*domain.OutboxMessage{first, second}, nil)
	s.publisher.EXPECT().Publish(ctx, first.RoutingKey, first.Payload).Return(nil)
	s.publisher.EXPECT().Publish(ctx, second.RoutingKey, second.Payload).Return(errors.New("broker gone"))
	s.store.EXPECT().MarkDelivered(ctx, []uuid.UUID{first.ID}).Return(nil)

	published, err := s.relay.Flush(ctx)
	s.Error(err)
	s.Equal(1, published)
}

func (s *RelayTestSuite) TestFlush_FirstPublishFailureMarksNothing() {
	ctx := context.Background()
	msg := message("events.athlete.created")

	s.store.EXPECT().PendingBatch(ctx, 10).Return([]*domain.OutboxMessage{msg}, nil)
	s.publisher.EXPECT().Publish(ctx, msg.RoutingKey, msg.Payload).Return(errors.New("broker gone"))

	published, err := s.relay.Flush(ctx)
	s.Error(err)
	s.Zero(published)
}

func (s *RelayTestSuite) TestFlush_BatchLoadFailure() {
	ctx := context.Background()
	s.store.EXPECT().PendingBatch(ctx, 10).Return(nil, errors.New("db down"))

	_, err := s.relay.Flush(ctx)
	s.Error(err)
}
