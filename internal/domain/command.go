package domain

import (
	"github.com/google/uuid"
)

// ProcessDocumentCommand is the unit of work consumed from the ingest queue.
// Commands are never mutated in place; a deferred command is republished as a
// copy with Attempt incremented.
type ProcessDocumentCommand struct {
	Document      string            `json:"document"`
	Provider      Provider          `json:"provider"`
	Sport         Sport             `json:"sport"`
	SeasonYear    *int              `json:"seasonYear,omitempty"`
	DocumentType  DocumentType      `json:"documentType"`
	ParentID      string            `json:"parentId,omitempty"`
	URLHash       string            `json:"urlHash"`
	CorrelationID uuid.UUID         `json:"correlationId"`
	CausationID   uuid.UUID         `json:"causationId"`
	Attempt       int               `json:"attempt"`
	Properties    map[string]string `json:"properties,omitempty"`
}

// WithAttempt returns a copy of the command carrying the given attempt count.
func (c *ProcessDocumentCommand) WithAttempt(attempt int) *ProcessDocumentCommand {
	next := *c
	next.Attempt = attempt
	return &next
}

// DocumentRequested asks the sourcing pipeline to fetch a document that is
// not yet present locally. It is published both for child documents of a
// newly created entity and for missing dependencies of a deferred command.
type DocumentRequested struct {
	URLHash       string       `json:"urlHash"`
	ParentID      string       `json:"parentId,omitempty"`
	URI           string       `json:"uri"`
	Sport         Sport        `json:"sport"`
	SeasonYear    *int         `json:"seasonYear,omitempty"`
	DocumentType  DocumentType `json:"documentType"`
	Provider      Provider     `json:"provider"`
	CorrelationID uuid.UUID    `json:"correlationId"`
	CausationID   uuid.UUID    `json:"causationId"`
	BypassCache   bool         `json:"bypassCache,omitempty"`
}
