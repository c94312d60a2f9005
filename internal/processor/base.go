package processor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"sportsync/internal/domain"
	"sportsync/internal/identity"
	"sportsync/internal/provider/espn"
)

// errBadRef marks a structurally unusable reference (missing or unparseable).
// Processors translate it to a terminal outcome; redelivery cannot help.
var errBadRef = errors.New("unusable reference")

// base carries the collaborators and helpers every processor shares.
type base struct {
	logger   *slog.Logger
	sport    domain.Sport
	producer uuid.UUID
	tx       TransactionManager
	refs     RefResolver
	outbox   OutboxEnqueuer
}

func newBase(deps Deps, sport domain.Sport) base {
	return base{
		logger: deps.Logger.With("sport", sport),
		sport:  sport,
		tx:     deps.Tx,
		refs:   deps.Refs,
		outbox: deps.Outbox,
	}
}

// forProducer returns a copy of the base stamped with the causation
// identifier of the processor being built. Every request and event the
// processor emits carries it.
func (b base) forProducer(id uuid.UUID) base {
	b.producer = id
	return b
}

// resolveRequired resolves a required foreign reference. Outcomes:
// resolved id; or a DocumentRequested to source the missing dependency; or
// errBadRef when the reference itself is unusable.
func (b base) resolveRequired(
	ctx context.Context,
	cmd *domain.ProcessDocumentCommand,
	kind domain.EntityKind,
	ref *espn.Ref,
	docType domain.DocumentType,
	parentID string,
) (uuid.UUID, *domain.DocumentRequested, error) {
	if ref.Empty() {
		return uuid.Nil, nil, fmt.Errorf("%w: required %s reference missing", errBadRef, kind)
	}

	ident, err := identity.Generate(ref.Href)
	if err != nil {
		return uuid.Nil, nil, fmt.Errorf("%w: %v", errBadRef, err)
	}

	id, err := b.refs.Resolve(ctx, kind, cmd.Provider, ident.URLHash)
	if err == nil {
		return id, nil, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return uuid.Nil, nil, err
	}

	return uuid.Nil, b.request(cmd, ident, docType, parentID), nil
}

// resolveOptional resolves an optional reference. An absent reference is
// skipped silently; a present but unresolved one yields a non-blocking
// sourcing request and processing continues without the id.
func (b base) resolveOptional(
	ctx context.Context,
	cmd *domain.ProcessDocumentCommand,
	kind domain.EntityKind,
	ref *espn.Ref,
	docType domain.DocumentType,
) (*uuid.UUID, *domain.DocumentRequested, error) {
	if ref.Empty() {
		return nil, nil, nil
	}

	ident, err := identity.Generate(ref.Href)
	if err != nil {
		b.logger.Warn("skipping unparseable optional reference", "kind", kind, "ref", ref.Href, "error", err)
		return nil, nil, nil
	}

	id, err := b.refs.Resolve(ctx, kind, cmd.Provider, ident.URLHash)
	if err == nil {
		return &id, nil, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, nil, err
	}

	return nil, b.request(cmd, ident, docType, ""), nil
}

// childRequest builds a sourcing request for a sub-resource a new entity
// exposes. Returns nil when the link is simply absent.
func (b base) childRequest(
	cmd *domain.ProcessDocumentCommand,
	ref *espn.Ref,
	parentID uuid.UUID,
	docType domain.DocumentType,
) *domain.DocumentRequested {
	if ref.Empty() {
		b.logger.Debug("no reference for child document", "parent_id", parentID, "child_type", docType)
		return nil
	}

	ident, err := identity.Generate(ref.Href)
	if err != nil {
		b.logger.Error("failed to generate identity for child document",
			"parent_id", parentID, "child_type", docType, "ref", ref.Href, "error", err)
		return nil
	}

	return b.request(cmd, ident, docType, parentID.String())
}

func (b base) request(cmd *domain.ProcessDocumentCommand, ident identity.Identity, docType domain.DocumentType, parentID string) *domain.DocumentRequested {
	return &domain.DocumentRequested{
		URLHash:       ident.URLHash,
		ParentID:      parentID,
		URI:           ident.CleanURL,
		Sport:         cmd.Sport,
		SeasonYear:    cmd.SeasonYear,
		DocumentType:  docType,
		Provider:      cmd.Provider,
		CorrelationID: cmd.CorrelationID,
		CausationID:   b.producer,
	}
}

// event builds the outbox message for a domain event carrying the entity
// snapshot.
func (b base) event(cmd *domain.ProcessDocumentCommand, kind domain.EntityKind, action domain.EventAction, entityID uuid.UUID, snapshot any) (*domain.OutboxMessage, error) {
	raw, err := json.Marshal(snapshot)
	if err != nil {
		return nil, fmt.Errorf("marshal %s snapshot: %w", kind, err)
	}
	return domain.NewEntityEventMessage(&domain.EntityEvent{
		Kind:          kind,
		Action:        action,
		EntityID:      entityID,
		Snapshot:      raw,
		CorrelationID: cmd.CorrelationID,
		CausationID:   b.producer,
		OccurredUTC:   nowUTC(),
	})
}

// requestMessages wraps child sourcing requests as outbox messages, dropping
// nils from absent optional links.
func requestMessages(requests ...*domain.DocumentRequested) ([]*domain.OutboxMessage, error) {
	var msgs []*domain.OutboxMessage
	for _, req := range requests {
		if req == nil {
			continue
		}
		msg, err := domain.NewDocumentRequestMessage(req)
		if err != nil {
			return nil, err
		}
		msgs = append(msgs, msg)
	}
	return msgs, nil
}

// enqueueRequests stages sourcing requests that must go out even when the
// entity write is skipped, e.g. an unchanged document still naming an
// unresolved optional reference.
func (b base) enqueueRequests(ctx context.Context, reqs ...*domain.DocumentRequested) error {
	msgs, err := requestMessages(reqs...)
	if err != nil {
		return err
	}
	if len(msgs) == 0 {
		return nil
	}
	return b.tx.WithTransaction(ctx, func(txCtx context.Context) error {
		return b.outbox.Enqueue(txCtx, msgs...)
	})
}

// persist runs the entity write plus its outbox messages in one transaction.
func (b base) persist(ctx context.Context, write func(txCtx context.Context) error, msgs []*domain.OutboxMessage) error {
	return b.tx.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := write(txCtx); err != nil {
			return err
		}
		if len(msgs) == 0 {
			return nil
		}
		return b.outbox.Enqueue(txCtx, msgs...)
	})
}

// selfIdentity decodes the document's own reference into its canonical
// identity. A missing or malformed self-reference is terminal.
func selfIdentity(ref espn.Ref) (identity.Identity, error) {
	if ref.Empty() {
		return identity.Identity{}, fmt.Errorf("%w: document self-reference missing", errBadRef)
	}
	ident, err := identity.Generate(ref.Href)
	if err != nil {
		return identity.Identity{}, fmt.Errorf("%w: %v", errBadRef, err)
	}
	return ident, nil
}

// seasonYearOf prefers the year stated by the document, falling back to the
// command's season hint.
func seasonYearOf(cmd *domain.ProcessDocumentCommand, docYear int) int {
	if docYear != 0 {
		return docYear
	}
	if cmd.SeasonYear != nil {
		return *cmd.SeasonYear
	}
	return 0
}

func externalRef(kind domain.EntityKind, entityID uuid.UUID, provider domain.Provider, ident identity.Identity) *domain.ExternalRef {
	return &domain.ExternalRef{
		EntityKind:    kind,
		EntityID:      entityID,
		Provider:      provider,
		SourceURL:     ident.CleanURL,
		SourceURLHash: ident.URLHash,
	}
}
