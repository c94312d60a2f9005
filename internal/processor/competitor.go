package processor

import (
	"context"
	"encoding/json"
	"errors"

	"sportsync/internal/domain"
	"sportsync/internal/provider/espn"
)

// CompetitorProcessor attaches a team to a competition. Both the competition
// and the team's franchise-season are hard dependencies; either one missing
// defers the command until it has been sourced.
type CompetitorProcessor struct {
	base
	competitors CompetitorStore
}

func (p *CompetitorProcessor) Process(ctx context.Context, cmd *domain.ProcessDocumentCommand) (Outcome, error) {
	var doc espn.CompetitorDoc
	if err := json.Unmarshal([]byte(cmd.Document), &doc); err != nil {
		return Terminal("deserialize competitor document: %v", err), nil
	}

	ident, err := selfIdentity(doc.Ref)
	if err != nil {
		return Terminal("competitor document: %v", err), nil
	}

	existing, err := p.competitors.FindByRef(ctx, cmd.Provider, ident.URLHash)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return Outcome{}, err
	}

	competitionID, compReq, err := p.resolveRequired(ctx, cmd, domain.KindCompetition, doc.Competition, domain.DocEventCompetition, cmd.ParentID)
	if errors.Is(err, errBadRef) {
		return Terminal("competitor document: %v", err), nil
	}
	if err != nil {
		return Outcome{}, err
	}
	if compReq != nil {
		p.logger.Warn("competition not sourced yet, deferring competitor",
			"ref", doc.Competition.Href, "attempt", cmd.Attempt)
		return Deferred(*compReq), nil
	}

	teamSeasonID, teamReq, err := p.resolveRequired(ctx, cmd, domain.KindFranchiseSeason, doc.Team, domain.DocTeamSeason, "")
	if errors.Is(err, errBadRef) {
		return Terminal("competitor document: %v", err), nil
	}
	if err != nil {
		return Outcome{}, err
	}
	if teamReq != nil {
		p.logger.Warn("franchise season not sourced yet, deferring competitor",
			"ref", doc.Team.Href, "attempt", cmd.Attempt)
		return Deferred(*teamReq), nil
	}

	if existing != nil {
		return p.update(ctx, cmd, &doc, existing)
	}

	entity := &domain.Competitor{
		ID:                ident.CanonicalID,
		CompetitionID:     competitionID,
		FranchiseSeasonID: teamSeasonID,
		HomeAway:          doc.HomeAway,
		Order:             doc.Order,
		Winner:            doc.Winner,
		Audit: domain.Audit{
			CreatedUTC: nowUTC(),
			CreatedBy:  cmd.CorrelationID,
		},
	}

	evt, err := p.event(cmd, domain.KindCompetitor, domain.ActionCreated, entity.ID, entity)
	if err != nil {
		return Outcome{}, err
	}

	ref := externalRef(domain.KindCompetitor, entity.ID, cmd.Provider, ident)
	err = p.persist(ctx, func(txCtx context.Context) error {
		return p.competitors.Insert(txCtx, entity, ref)
	}, []*domain.OutboxMessage{evt})

	if errors.Is(err, domain.ErrDuplicate) {
		if _, ferr := p.competitors.FindByRef(ctx, cmd.Provider, ident.URLHash); ferr != nil {
			return Outcome{}, errors.New("duplicate key on competitor insert but row not found by identity")
		}
		p.logger.Info("competitor created concurrently by another worker", "url_hash", ident.URLHash)
		return Completed(), nil
	}
	if err != nil {
		return Outcome{}, err
	}

	p.logger.Info("created competitor", "id", entity.ID, "competition_id", competitionID, "franchise_season_id", teamSeasonID)
	return Completed(), nil
}

func (p *CompetitorProcessor) update(ctx context.Context, cmd *domain.ProcessDocumentCommand, doc *espn.CompetitorDoc, entity *domain.Competitor) (Outcome, error) {
	changed := false
	if doc.HomeAway != "" && entity.HomeAway != doc.HomeAway {
		entity.HomeAway = doc.HomeAway
		changed = true
	}
	if entity.Order != doc.Order {
		entity.Order = doc.Order
		changed = true
	}
	if doc.Winner != nil && (entity.Winner == nil || *entity.Winner != *doc.Winner) {
		entity.Winner = doc.Winner
		changed = true
	}

	if !changed {
		p.logger.Debug("competitor unchanged", "id", entity.ID)
		return Completed(), nil
	}

	now := nowUTC()
	entity.ModifiedUTC = &now
	entity.ModifiedBy = &cmd.CorrelationID

	evt, err := p.event(cmd, domain.KindCompetitor, domain.ActionUpdated, entity.ID, entity)
	if err != nil {
		return Outcome{}, err
	}

	err = p.persist(ctx, func(txCtx context.Context) error {
		return p.competitors.Update(txCtx, entity)
	}, []*domain.OutboxMessage{evt})
	if err != nil {
		return Outcome{}, err
	}

	p.logger.Info("updated competitor", "id", entity.ID)
	return Completed(), nil
}
