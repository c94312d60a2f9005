package processor

import (
	"context"
	"encoding/json"
	"errors"

	"sportsync/internal/domain"
	"sportsync/internal/identity"
	"sportsync/internal/provider/espn"
)

// FranchiseProcessor ingests franchise documents. Franchises are leaves in
// the dependency graph: nothing has to exist before one can be created.
type FranchiseProcessor struct {
	base
	franchises FranchiseStore
}

func (p *FranchiseProcessor) Process(ctx context.Context, cmd *domain.ProcessDocumentCommand) (Outcome, error) {
	var doc espn.FranchiseDoc
	if err := json.Unmarshal([]byte(cmd.Document), &doc); err != nil {
		return Terminal("deserialize franchise document: %v", err), nil
	}

	ident, err := selfIdentity(doc.Ref)
	if err != nil {
		return Terminal("franchise document: %v", err), nil
	}

	// Existence comes from the store, never from a flag on the command.
	existing, err := p.franchises.FindByRef(ctx, cmd.Provider, ident.URLHash)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return Outcome{}, err
	}

	if existing == nil {
		return p.create(ctx, cmd, &doc, ident)
	}
	return p.update(ctx, cmd, &doc, existing)
}

func (p *FranchiseProcessor) create(ctx context.Context, cmd *domain.ProcessDocumentCommand, doc *espn.FranchiseDoc, ident identity.Identity) (Outcome, error) {
	entity := &domain.Franchise{
		ID:           ident.CanonicalID,
		Sport:        cmd.Sport,
		Name:         doc.Name,
		DisplayName:  doc.DisplayName,
		Abbreviation: doc.Abbreviation,
		Location:     doc.Location,
		IsActive:     doc.IsActive,
		Audit: domain.Audit{
			CreatedUTC: nowUTC(),
			CreatedBy:  cmd.CorrelationID,
		},
	}

	evt, err := p.event(cmd, domain.KindFranchise, domain.ActionCreated, entity.ID, entity)
	if err != nil {
		return Outcome{}, err
	}

	ref := externalRef(domain.KindFranchise, entity.ID, cmd.Provider, ident)
	err = p.persist(ctx, func(txCtx context.Context) error {
		return p.franchises.Insert(txCtx, entity, ref)
	}, []*domain.OutboxMessage{evt})

	if errors.Is(err, domain.ErrDuplicate) {
		return p.confirmRace(ctx, cmd, ident)
	}
	if err != nil {
		return Outcome{}, err
	}

	p.logger.Info("created franchise", "id", entity.ID, "name", entity.Name)
	return Completed(), nil
}

func (p *FranchiseProcessor) update(ctx context.Context, cmd *domain.ProcessDocumentCommand, doc *espn.FranchiseDoc, entity *domain.Franchise) (Outcome, error) {
	if !mergeFranchise(entity, doc) {
		p.logger.Debug("franchise unchanged", "id", entity.ID)
		return Completed(), nil
	}

	now := nowUTC()
	entity.ModifiedUTC = &now
	entity.ModifiedBy = &cmd.CorrelationID

	evt, err := p.event(cmd, domain.KindFranchise, domain.ActionUpdated, entity.ID, entity)
	if err != nil {
		return Outcome{}, err
	}

	err = p.persist(ctx, func(txCtx context.Context) error {
		return p.franchises.Update(txCtx, entity)
	}, []*domain.OutboxMessage{evt})
	if err != nil {
		return Outcome{}, err
	}

	p.logger.Info("updated franchise", "id", entity.ID)
	return Completed(), nil
}

// confirmRace handles the duplicate-key race: if another worker created the
// row first, that is success, not failure.
func (p *FranchiseProcessor) confirmRace(ctx context.Context, cmd *domain.ProcessDocumentCommand, ident identity.Identity) (Outcome, error) {
	if _, err := p.franchises.FindByRef(ctx, cmd.Provider, ident.URLHash); err != nil {
		return Outcome{}, errors.New("duplicate key on franchise insert but row not found by identity")
	}
	p.logger.Info("franchise created concurrently by another worker", "url_hash", ident.URLHash)
	return Completed(), nil
}

// mergeFranchise applies incoming fields and reports whether anything
// actually changed.
func mergeFranchise(entity *domain.Franchise, doc *espn.FranchiseDoc) bool {
	changed := false
	if entity.Name != doc.Name {
		entity.Name = doc.Name
		changed = true
	}
	if entity.DisplayName != doc.DisplayName {
		entity.DisplayName = doc.DisplayName
		changed = true
	}
	if entity.Abbreviation != doc.Abbreviation {
		entity.Abbreviation = doc.Abbreviation
		changed = true
	}
	if entity.Location != doc.Location {
		entity.Location = doc.Location
		changed = true
	}
	if entity.IsActive != doc.IsActive {
		entity.IsActive = doc.IsActive
		changed = true
	}
	return changed
}
