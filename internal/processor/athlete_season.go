package processor

import (
	"context"
	"encoding/json"
	"errors"

	"sportsync/internal/domain"
	"sportsync/internal/provider/espn"
)

// AthleteSeasonProcessor links an athlete to a franchise-season roster. Both
// sides of the link must already exist.
type AthleteSeasonProcessor struct {
	base
	seasons AthleteSeasonStore
}

func (p *AthleteSeasonProcessor) Process(ctx context.Context, cmd *domain.ProcessDocumentCommand) (Outcome, error) {
	var doc espn.AthleteSeasonDoc
	if err := json.Unmarshal([]byte(cmd.Document), &doc); err != nil {
		return Terminal("deserialize athlete season document: %v", err), nil
	}

	ident, err := selfIdentity(doc.Ref)
	if err != nil {
		return Terminal("athlete season document: %v", err), nil
	}

	existing, err := p.seasons.FindByRef(ctx, cmd.Provider, ident.URLHash)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return Outcome{}, err
	}

	athleteID, athleteReq, err := p.resolveRequired(ctx, cmd, domain.KindAthlete, doc.Athlete, domain.DocAthlete, "")
	if errors.Is(err, errBadRef) {
		return Terminal("athlete season document: %v", err), nil
	}
	if err != nil {
		return Outcome{}, err
	}
	if athleteReq != nil {
		p.logger.Warn("athlete not sourced yet, deferring athlete season",
			"ref", doc.Athlete.Href, "attempt", cmd.Attempt)
		return Deferred(*athleteReq), nil
	}

	teamSeasonID, teamReq, err := p.resolveRequired(ctx, cmd, domain.KindFranchiseSeason, doc.Team, domain.DocTeamSeason, "")
	if errors.Is(err, errBadRef) {
		return Terminal("athlete season document: %v", err), nil
	}
	if err != nil {
		return Outcome{}, err
	}
	if teamReq != nil {
		p.logger.Warn("franchise season not sourced yet, deferring athlete season",
			"ref", doc.Team.Href, "attempt", cmd.Attempt)
		return Deferred(*teamReq), nil
	}

	var position *string
	if doc.Position != nil && doc.Position.Name != "" {
		position = &doc.Position.Name
	}

	if existing != nil {
		return p.update(ctx, cmd, &doc, existing, position)
	}

	entity := &domain.AthleteSeason{
		ID:                ident.CanonicalID,
		AthleteID:         athleteID,
		FranchiseSeasonID: teamSeasonID,
		SeasonYear:        seasonYearOf(cmd, doc.SeasonYear),
		Jersey:            doc.Jersey,
		Position:          position,
		Audit: domain.Audit{
			CreatedUTC: nowUTC(),
			CreatedBy:  cmd.CorrelationID,
		},
	}

	evt, err := p.event(cmd, domain.KindAthleteSeason, domain.ActionCreated, entity.ID, entity)
	if err != nil {
		return Outcome{}, err
	}

	ref := externalRef(domain.KindAthleteSeason, entity.ID, cmd.Provider, ident)
	err = p.persist(ctx, func(txCtx context.Context) error {
		return p.seasons.Insert(txCtx, entity, ref)
	}, []*domain.OutboxMessage{evt})

	if errors.Is(err, domain.ErrDuplicate) {
		if _, ferr := p.seasons.FindByRef(ctx, cmd.Provider, ident.URLHash); ferr != nil {
			return Outcome{}, errors.New("duplicate key on athlete season insert but row not found by identity")
		}
		p.logger.Info("athlete season created concurrently by another worker", "url_hash", ident.URLHash)
		return Completed(), nil
	}
	if err != nil {
		return Outcome{}, err
	}

	p.logger.Info("created athlete season", "id", entity.ID, "athlete_id", athleteID)
	return Completed(), nil
}

func (p *AthleteSeasonProcessor) update(ctx context.Context, cmd *domain.ProcessDocumentCommand, doc *espn.AthleteSeasonDoc, entity *domain.AthleteSeason, position *string) (Outcome, error) {
	changed := false
	if doc.Jersey != nil && !stringPtrMatch(entity.Jersey, doc.Jersey) {
		entity.Jersey = doc.Jersey
		changed = true
	}
	if position != nil && !stringPtrMatch(entity.Position, position) {
		entity.Position = position
		changed = true
	}

	if !changed {
		p.logger.Debug("athlete season unchanged", "id", entity.ID)
		return Completed(), nil
	}

	now := nowUTC()
	entity.ModifiedUTC = &now
	entity.ModifiedBy = &cmd.CorrelationID

	evt, err := p.event(cmd, domain.KindAthleteSeason, domain.ActionUpdated, entity.ID, entity)
	if err != nil {
		return Outcome{}, err
	}

	err = p.persist(ctx, func(txCtx context.Context) error {
		return p.seasons.Update(txCtx, entity)
	}, []*domain.OutboxMessage{evt})
	if err != nil {
		return Outcome{}, err
	}

	p.logger.Info("updated athlete season", "id", entity.ID)
	return Completed(), nil
}
