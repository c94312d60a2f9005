package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type EventAction string

const (
	ActionCreated EventAction = "created"
	ActionUpdated EventAction = "updated"
)

// EntityEvent is the envelope for domain events published to downstream
// consumers after an entity change commits.
type EntityEvent struct {
	Kind          EntityKind      `json:"kind"`
	Action        EventAction     `json:"action"`
	EntityID      uuid.UUID       `json:"entityId"`
	Snapshot      json.RawMessage `json:"snapshot"`
	CorrelationID uuid.UUID       `json:"correlationId"`
	CausationID   uuid.UUID       `json:"causationId"`
	OccurredUTC   time.Time       `json:"occurredUtc"`
}

type OutboxKind string

const (
	OutboxEntityEvent     OutboxKind = "entity_event"
	OutboxDocumentRequest OutboxKind = "document_request"
)

// OutboxMessage is a pending delivery staged in the same transaction as the
// entity change it describes. The relay publishes it at-least-once and marks
// it delivered; a message is never visible on the broker before its
// originating transaction commits.
type OutboxMessage struct {
	ID           uuid.UUID  `db:"id"`
	Kind         OutboxKind `db:"kind"`
	RoutingKey   string     `db:"routing_key"`
	Payload      []byte     `db:"payload"`
	EnqueuedUTC  time.Time  `db:"enqueued_utc"`
	DeliveredUTC *time.Time `db:"delivered_utc"`
}

// NewEntityEventMessage wraps a domain event as an outbox message routed by
// kind and action, e.g. "events.contest.created".
func NewEntityEventMessage(evt *EntityEvent) (*OutboxMessage, error) {
	payload, err := json.Marshal(evt)
	if err != nil {
		return nil, err
	}
	return &OutboxMessage{
		ID:          uuid.New(),
		Kind:        OutboxEntityEvent,
		RoutingKey:  "events." + string(evt.Kind) + "." + string(evt.Action),
		Payload:     payload,
		EnqueuedUTC: time.Now().UTC(),
	}, nil
}

// NewDocumentRequestMessage wraps a sourcing request as an outbox message.
func NewDocumentRequestMessage(req *DocumentRequested) (*OutboxMessage, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}
	return &OutboxMessage{
		ID:          uuid.New(),
		Kind:        OutboxDocumentRequest,
		RoutingKey:  "documents.requested",
		Payload:     payload,
		EnqueuedUTC: time.Now().UTC(),
	}, nil
}
