package processor

import (
	"context"
	"encoding/json"
	"errors"

	"sportsync/internal/domain"
	"sportsync/internal/provider/espn"
)

// GroupSeasonProcessor ingests conference-season documents. No hard
// dependencies; a new group season requests its member team documents.
type GroupSeasonProcessor struct {
	base
	groups GroupSeasonStore
}

func (p *GroupSeasonProcessor) Process(ctx context.Context, cmd *domain.ProcessDocumentCommand) (Outcome, error) {
	var doc espn.GroupSeasonDoc
	if err := json.Unmarshal([]byte(cmd.Document), &doc); err != nil {
		return Terminal("deserialize group season document: %v", err), nil
	}

	ident, err := selfIdentity(doc.Ref)
	if err != nil {
		return Terminal("group season document: %v", err), nil
	}

	existing, err := p.groups.FindByRef(ctx, cmd.Provider, ident.URLHash)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return Outcome{}, err
	}

	if existing != nil {
		return p.update(ctx, cmd, &doc, existing)
	}

	entity := &domain.GroupSeason{
		ID:         ident.CanonicalID,
		Name:       doc.Name,
		ShortName:  doc.ShortName,
		SeasonYear: seasonYearOf(cmd, doc.SeasonYear),
		Audit: domain.Audit{
			CreatedUTC: nowUTC(),
			CreatedBy:  cmd.CorrelationID,
		},
	}

	evt, err := p.event(cmd, domain.KindGroupSeason, domain.ActionCreated, entity.ID, entity)
	if err != nil {
		return Outcome{}, err
	}

	msgs := []*domain.OutboxMessage{evt}
	reqMsgs, err := requestMessages(p.childRequest(cmd, doc.Teams, entity.ID, domain.DocTeamSeason))
	if err != nil {
		return Outcome{}, err
	}
	msgs = append(msgs, reqMsgs...)

	ref := externalRef(domain.KindGroupSeason, entity.ID, cmd.Provider, ident)
	err = p.persist(ctx, func(txCtx context.Context) error {
		return p.groups.Insert(txCtx, entity, ref)
	}, msgs)

	if errors.Is(err, domain.ErrDuplicate) {
		if _, ferr := p.groups.FindByRef(ctx, cmd.Provider, ident.URLHash); ferr != nil {
			return Outcome{}, errors.New("duplicate key on group season insert but row not found by identity")
		}
		p.logger.Info("group season created concurrently by another worker", "url_hash", ident.URLHash)
		return Completed(), nil
	}
	if err != nil {
		return Outcome{}, err
	}

	p.logger.Info("created group season", "id", entity.ID, "name", entity.Name)
	return Completed(), nil
}

func (p *GroupSeasonProcessor) update(ctx context.Context, cmd *domain.ProcessDocumentCommand, doc *espn.GroupSeasonDoc, entity *domain.GroupSeason) (Outcome, error) {
	changed := false
	if doc.Name != "" && entity.Name != doc.Name {
		entity.Name = doc.Name
		changed = true
	}
	if doc.ShortName != "" && entity.ShortName != doc.ShortName {
		entity.ShortName = doc.ShortName
		changed = true
	}
	if !changed {
		p.logger.Debug("group season unchanged", "id", entity.ID)
		return Completed(), nil
	}

	now := nowUTC()
	entity.ModifiedUTC = &now
	entity.ModifiedBy = &cmd.CorrelationID

	evt, err := p.event(cmd, domain.KindGroupSeason, domain.ActionUpdated, entity.ID, entity)
	if err != nil {
		return Outcome{}, err
	}

	err = p.persist(ctx, func(txCtx context.Context) error {
		return p.groups.Update(txCtx, entity)
	}, []*domain.OutboxMessage{evt})
	if err != nil {
		return Outcome{}, err
	}

	p.logger.Info("updated group season", "id", entity.ID)
	return Completed(), nil
}
