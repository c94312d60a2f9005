//go:build integration

package transport

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/rabbitmq"
	"github.com/testcontainers/testcontainers-go/wait"

	"sportsync/internal/domain"
)

type RabbitMQIntegrationSuite struct {
	suite.Suite
	ctx       context.Context
	container *rabbitmq.RabbitMQContainer
	amqpURL   string
	logger    *slog.Logger
}

func (s *RabbitMQIntegrationSuite) SetupSuite() {
	s.ctx = context.Background()
	s.logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	container, err := rabbitmq.Run(s.ctx,
		"rabbitmq:3.13-management-alpine",
		testcontainers.WithWaitStrategy(
			wait.ForLog("Server startup complete").
				WithStartupTimeout(60*time.Second),
		),
	)
	s.Require().NoError(err)
	s.container = container

	amqpURL, err := container.AmqpURL(s.ctx)
	s.Require().NoError(err)
	s.amqpURL = amqpURL
}

func (s *RabbitMQIntegrationSuite) TearDownSuite() {
	if s.container != nil {
		_ = s.container.Terminate(s.ctx)
	}
}

func TestRabbitMQIntegrationSuite(t *testing.T) {
	suite.Run(t, new(RabbitMQIntegrationSuite))
}

func (s *RabbitMQIntegrationSuite) config(suffix string) Config {
	return Config{
		URL:               s.amqpURL,
		Exchange:          "test-exchange-" + suffix,
		CommandQueue:      "test-queue-" + suffix,
		CommandRoutingKey: "documents.process",
		Prefetch:          4,
	}
}

func (s *RabbitMQIntegrationSuite) TestBroker_Connection() {
	broker, err := NewBroker(s.config("conn"), s.logger)
	s.NoError(err)
	s.NotNil(broker)
	s.NoError(broker.Close())
}

func (s *RabbitMQIntegrationSuite) TestBroker_CommandRoundTrip() {
	broker, err := NewBroker(s.config("roundtrip"), s.logger)
	s.Require().NoError(err)
	defer broker.Close()

	cmd := &domain.ProcessDocumentCommand{
		Document:      `{"$ref":"https://example.com/doc"}`,
		Provider:      domain.ProviderESPN,
		Sport:         domain.SportFootballNFL,
		DocumentType:  domain.DocFranchise,
		URLHash:       "abc",
		CorrelationID: uuid.New(),
		Attempt:       2,
	}
	s.Require().NoError(broker.PublishCommand(s.ctx, cmd))

	deliveries, err := broker.Consume(s.ctx)
	s.Require().NoError(err)

	select {
	case d := <-deliveries:
		s.Equal("application/json", d.ContentType)
		s.Equal(uint8(amqp.Persistent), d.DeliveryMode)

		var received domain.ProcessDocumentCommand
		s.Require().NoError(json.Unmarshal(d.Body, &received))
		s.Equal(cmd.URLHash, received.URLHash)
		s.Equal(cmd.DocumentType, received.DocumentType)
		s.Equal(2, received.Attempt)
		s.NoError(d.Ack(false))
	case <-time.After(5 * time.Second):
		s.Fail("timeout waiting for command")
	}
}

func (s *RabbitMQIntegrationSuite) TestBroker_TopicRoutingIgnoresOtherKeys() {
	broker, err := NewBroker(s.config("routing"), s.logger)
	s.Require().NoError(err)
	defer broker.Close()

	// Event routing keys are not bound to the command queue.
	s.Require().NoError(broker.Publish(s.ctx, "events.franchise.created", []byte(`{}`)))
	s.Require().NoError(broker.Publish(s.ctx, "documents.process", []byte(`{"urlHash":"wanted"}`)))

	deliveries, err := broker.Consume(s.ctx)
	s.Require().NoError(err)

	select {
	case d := <-deliveries:
		s.Contains(string(d.Body), "wanted")
		s.NoError(d.Ack(false))
	case <-time.After(5 * time.Second):
		s.Fail("timeout waiting for message")
	}

	select {
	case d := <-deliveries:
		s.Failf("unexpected delivery", "body: %s", d.Body)
	case <-time.After(500 * time.Millisecond):
	}
}
