package transport

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"sportsync/internal/domain"
)

// Broker owns the AMQP connection for both sides of the pipeline: consuming
// ingest commands and publishing outbox messages to the topic exchange.
type Broker struct {
	conn       *amqp.Connection
	channel    *amqp.Channel
	exchange   string
	queue      string
	routingKey string
	prefetch   int
	logger     *slog.Logger
}

type Config struct {
	URL               string
	Exchange          string
	CommandQueue      string
	CommandRoutingKey string
	Prefetch          int
}

func NewBroker(cfg Config, logger *slog.Logger) (*Broker, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("connect to rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	err = ch.ExchangeDeclare(
		cfg.Exchange,
		"topic",
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}

	q, err := ch.QueueDeclare(
		cfg.CommandQueue,
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("declare queue: %w", err)
	}

	err = ch.QueueBind(
		q.Name,
		cfg.CommandRoutingKey,
		cfg.Exchange,
		false,
		nil,
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("bind queue: %w", err)
	}

	logger.Info("connected to rabbitmq",
		"exchange", cfg.Exchange,
		"queue", cfg.CommandQueue,
		"routing_key", cfg.CommandRoutingKey,
	)

	return &Broker{
		conn:       conn,
		channel:    ch,
		exchange:   cfg.Exchange,
		queue:      q.Name,
		routingKey: cfg.CommandRoutingKey,
		prefetch:   cfg.Prefetch,
		logger:     logger,
	}, nil
}

// Publish sends a raw JSON body under the given routing key. Messages are
// persistent; the broker survives a restart without losing them.
func (b *Broker) Publish(ctx context.Context, routingKey string, body []byte) error {
	err := b.channel.PublishWithContext(
		ctx,
		b.exchange,
		routingKey,
		false,
		false,
		amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			ContentType:  "application/json",
			Body:         body,
			Timestamp:    time.Now(),
		},
	)
	if err != nil {
		return fmt.Errorf("publish message: %w", err)
	}

	b.logger.Debug("published message", "routing_key", routingKey, "bytes", len(body))
	return nil
}

// PublishCommand re-enqueues a processing command onto the ingest queue.
// Used by the worker to retry a deferred command after its dependency
// requests have been dispatched.
func (b *Broker) PublishCommand(ctx context.Context, cmd *domain.ProcessDocumentCommand) error {
	body, err := json.Marshal(cmd)
	if err != nil {
		return fmt.Errorf("marshal command: %w", err)
	}
	return b.Publish(ctx, b.routingKey, body)
}

// Consume opens the command delivery stream. Ack/Nack is the caller's
// responsibility; prefetch bounds the number of unacked deliveries in flight.
func (b *Broker) Consume(ctx context.Context) (<-chan amqp.Delivery, error) {
	if err := b.channel.Qos(b.prefetch, 0, false); err != nil {
		return nil, fmt.Errorf("set qos: %w", err)
	}

	deliveries, err := b.channel.ConsumeWithContext(
		ctx,
		b.queue,
		"",
		false,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("consume queue: %w", err)
	}

	return deliveries, nil
}

func (b *Broker) Close() error {
	if b.channel != nil {
		b.channel.Close()
	}
	if b.conn != nil {
		return b.conn.Close()
	}
	return nil
}
