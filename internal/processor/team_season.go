package processor

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"

	"sportsync/internal/domain"
	"sportsync/internal/identity"
	"sportsync/internal/provider/espn"
)

// TeamSeasonProcessor materializes a franchise-season. The franchise itself
// is a hard dependency; the conference (group season) is best-effort.
type TeamSeasonProcessor struct {
	base
	seasons FranchiseSeasonStore
}

func (p *TeamSeasonProcessor) Process(ctx context.Context, cmd *domain.ProcessDocumentCommand) (Outcome, error) {
	var doc espn.TeamSeasonDoc
	if err := json.Unmarshal([]byte(cmd.Document), &doc); err != nil {
		return Terminal("deserialize team season document: %v", err), nil
	}

	ident, err := selfIdentity(doc.Ref)
	if err != nil {
		return Terminal("team season document: %v", err), nil
	}

	existing, err := p.seasons.FindByRef(ctx, cmd.Provider, ident.URLHash)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return Outcome{}, err
	}

	franchiseID, req, err := p.resolveRequired(ctx, cmd, domain.KindFranchise, doc.Franchise, domain.DocFranchise, "")
	if errors.Is(err, errBadRef) {
		return Terminal("team season document: %v", err), nil
	}
	if err != nil {
		return Outcome{}, err
	}
	if req != nil {
		p.logger.Warn("franchise not sourced yet, deferring team season",
			"ref", doc.Franchise.Href, "attempt", cmd.Attempt)
		return Deferred(*req), nil
	}

	groupID, groupReq, err := p.resolveOptional(ctx, cmd, domain.KindGroupSeason, doc.Group, domain.DocGroupSeason)
	if err != nil {
		return Outcome{}, err
	}

	if existing == nil {
		return p.create(ctx, cmd, &doc, ident, franchiseID, groupID, groupReq)
	}
	return p.update(ctx, cmd, &doc, existing, groupID, groupReq)
}

func (p *TeamSeasonProcessor) create(
	ctx context.Context,
	cmd *domain.ProcessDocumentCommand,
	doc *espn.TeamSeasonDoc,
	ident identity.Identity,
	franchiseID uuid.UUID,
	groupID *uuid.UUID,
	groupReq *domain.DocumentRequested,
) (Outcome, error) {
	entity := &domain.FranchiseSeason{
		ID:            ident.CanonicalID,
		FranchiseID:   franchiseID,
		GroupSeasonID: groupID,
		SeasonYear:    seasonYearOf(cmd, doc.SeasonYear),
		Name:          doc.Name,
		Abbreviation:  doc.Abbreviation,
		Location:      doc.Location,
		IsActive:      doc.IsActive,
		Audit: domain.Audit{
			CreatedUTC: nowUTC(),
			CreatedBy:  cmd.CorrelationID,
		},
	}

	evt, err := p.event(cmd, domain.KindFranchiseSeason, domain.ActionCreated, entity.ID, entity)
	if err != nil {
		return Outcome{}, err
	}

	msgs := []*domain.OutboxMessage{evt}
	reqMsgs, err := requestMessages(groupReq)
	if err != nil {
		return Outcome{}, err
	}
	msgs = append(msgs, reqMsgs...)

	ref := externalRef(domain.KindFranchiseSeason, entity.ID, cmd.Provider, ident)
	err = p.persist(ctx, func(txCtx context.Context) error {
		return p.seasons.Insert(txCtx, entity, ref)
	}, msgs)

	if errors.Is(err, domain.ErrDuplicate) {
		if _, ferr := p.seasons.FindByRef(ctx, cmd.Provider, ident.URLHash); ferr != nil {
			return Outcome{}, errors.New("duplicate key on franchise season insert but row not found by identity")
		}
		p.logger.Info("franchise season created concurrently by another worker", "url_hash", ident.URLHash)
		return Completed(), nil
	}
	if err != nil {
		return Outcome{}, err
	}

	p.logger.Info("created franchise season", "id", entity.ID, "franchise_id", franchiseID)
	return Completed(), nil
}

func (p *TeamSeasonProcessor) update(
	ctx context.Context,
	cmd *domain.ProcessDocumentCommand,
	doc *espn.TeamSeasonDoc,
	entity *domain.FranchiseSeason,
	groupID *uuid.UUID,
	groupReq *domain.DocumentRequested,
) (Outcome, error) {
	changed := mergeFranchiseSeason(entity, doc, groupID)
	if !changed {
		if err := p.enqueueRequests(ctx, groupReq); err != nil {
			return Outcome{}, err
		}
		p.logger.Debug("franchise season unchanged", "id", entity.ID)
		return Completed(), nil
	}

	now := nowUTC()
	entity.ModifiedUTC = &now
	entity.ModifiedBy = &cmd.CorrelationID

	evt, err := p.event(cmd, domain.KindFranchiseSeason, domain.ActionUpdated, entity.ID, entity)
	if err != nil {
		return Outcome{}, err
	}

	msgs := []*domain.OutboxMessage{evt}
	reqMsgs, err := requestMessages(groupReq)
	if err != nil {
		return Outcome{}, err
	}
	msgs = append(msgs, reqMsgs...)

	err = p.persist(ctx, func(txCtx context.Context) error {
		return p.seasons.Update(txCtx, entity)
	}, msgs)
	if err != nil {
		return Outcome{}, err
	}

	p.logger.Info("updated franchise season", "id", entity.ID)
	return Completed(), nil
}

func mergeFranchiseSeason(entity *domain.FranchiseSeason, doc *espn.TeamSeasonDoc, groupID *uuid.UUID) bool {
	changed := false
	if doc.Name != "" && entity.Name != doc.Name {
		entity.Name = doc.Name
		changed = true
	}
	if doc.Abbreviation != "" && entity.Abbreviation != doc.Abbreviation {
		entity.Abbreviation = doc.Abbreviation
		changed = true
	}
	if doc.Location != "" && entity.Location != doc.Location {
		entity.Location = doc.Location
		changed = true
	}
	if entity.IsActive != doc.IsActive {
		entity.IsActive = doc.IsActive
		changed = true
	}
	if groupID != nil && (entity.GroupSeasonID == nil || *entity.GroupSeasonID != *groupID) {
		entity.GroupSeasonID = groupID
		changed = true
	}
	return changed
}
