package processor

import (
	"context"
	"encoding/json"
	"errors"

	"sportsync/internal/domain"
	"sportsync/internal/provider/espn"
)

// AthleteProcessor ingests athlete profile documents. Every foreign
// reference an athlete carries is optional: a free agent has no team, a
// placeholder roster entry has no headshot or position. Absence of any of
// them is never a dependency failure.
type AthleteProcessor struct {
	base
	athletes AthleteStore
}

func (p *AthleteProcessor) Process(ctx context.Context, cmd *domain.ProcessDocumentCommand) (Outcome, error) {
	var doc espn.AthleteDoc
	if err := json.Unmarshal([]byte(cmd.Document), &doc); err != nil {
		return Terminal("deserialize athlete document: %v", err), nil
	}

	ident, err := selfIdentity(doc.Ref)
	if err != nil {
		return Terminal("athlete document: %v", err), nil
	}

	existing, err := p.athletes.FindByRef(ctx, cmd.Provider, ident.URLHash)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return Outcome{}, err
	}

	franchiseID, teamReq, err := p.resolveOptional(ctx, cmd, domain.KindFranchise, doc.Team, domain.DocFranchise)
	if err != nil {
		return Outcome{}, err
	}

	var position, headshot *string
	if doc.Position != nil && doc.Position.Name != "" {
		position = &doc.Position.Name
	}
	if doc.Headshot != nil && doc.Headshot.Href != "" {
		headshot = &doc.Headshot.Href
	}

	if existing != nil {
		return p.update(ctx, cmd, &doc, existing, position, headshot, teamReq)
	}

	entity := &domain.Athlete{
		ID:          ident.CanonicalID,
		FirstName:   doc.FirstName,
		LastName:    doc.LastName,
		DisplayName: doc.DisplayName,
		WeightLb:    doc.Weight,
		HeightIn:    doc.Height,
		Position:    position,
		HeadshotURL: headshot,
		FranchiseID: franchiseID,
		IsActive:    doc.IsActive,
		Audit: domain.Audit{
			CreatedUTC: nowUTC(),
			CreatedBy:  cmd.CorrelationID,
		},
	}

	evt, err := p.event(cmd, domain.KindAthlete, domain.ActionCreated, entity.ID, entity)
	if err != nil {
		return Outcome{}, err
	}

	msgs := []*domain.OutboxMessage{evt}
	reqMsgs, err := requestMessages(teamReq)
	if err != nil {
		return Outcome{}, err
	}
	msgs = append(msgs, reqMsgs...)

	ref := externalRef(domain.KindAthlete, entity.ID, cmd.Provider, ident)
	err = p.persist(ctx, func(txCtx context.Context) error {
		return p.athletes.Insert(txCtx, entity, ref)
	}, msgs)

	if errors.Is(err, domain.ErrDuplicate) {
		if _, ferr := p.athletes.FindByRef(ctx, cmd.Provider, ident.URLHash); ferr != nil {
			return Outcome{}, errors.New("duplicate key on athlete insert but row not found by identity")
		}
		p.logger.Info("athlete created concurrently by another worker", "url_hash", ident.URLHash)
		return Completed(), nil
	}
	if err != nil {
		return Outcome{}, err
	}

	p.logger.Info("created athlete", "id", entity.ID, "name", entity.DisplayName)
	return Completed(), nil
}

func (p *AthleteProcessor) update(
	ctx context.Context,
	cmd *domain.ProcessDocumentCommand,
	doc *espn.AthleteDoc,
	entity *domain.Athlete,
	position, headshot *string,
	teamReq *domain.DocumentRequested,
) (Outcome, error) {
	if !mergeAthlete(entity, doc, position, headshot) {
		if err := p.enqueueRequests(ctx, teamReq); err != nil {
			return Outcome{}, err
		}
		p.logger.Debug("athlete unchanged", "id", entity.ID)
		return Completed(), nil
	}

	now := nowUTC()
	entity.ModifiedUTC = &now
	entity.ModifiedBy = &cmd.CorrelationID

	evt, err := p.event(cmd, domain.KindAthlete, domain.ActionUpdated, entity.ID, entity)
	if err != nil {
		return Outcome{}, err
	}

	msgs := []*domain.OutboxMessage{evt}
	reqMsgs, err := requestMessages(teamReq)
	if err != nil {
		return Outcome{}, err
	}
	msgs = append(msgs, reqMsgs...)

	err = p.persist(ctx, func(txCtx context.Context) error {
		return p.athletes.Update(txCtx, entity)
	}, msgs)
	if err != nil {
		return Outcome{}, err
	}

	p.logger.Info("updated athlete", "id", entity.ID)
	return Completed(), nil
}

func mergeAthlete(entity *domain.Athlete, doc *espn.AthleteDoc, position, headshot *string) bool {
	changed := false
	if doc.FirstName != "" && entity.FirstName != doc.FirstName {
		entity.FirstName = doc.FirstName
		changed = true
	}
	if doc.LastName != "" && entity.LastName != doc.LastName {
		entity.LastName = doc.LastName
		changed = true
	}
	if doc.DisplayName != "" && entity.DisplayName != doc.DisplayName {
		entity.DisplayName = doc.DisplayName
		changed = true
	}
	if doc.Weight != nil && !float64PtrMatch(entity.WeightLb, doc.Weight) {
		entity.WeightLb = doc.Weight
		changed = true
	}
	if doc.Height != nil && !float64PtrMatch(entity.HeightIn, doc.Height) {
		entity.HeightIn = doc.Height
		changed = true
	}
	if position != nil && !stringPtrMatch(entity.Position, position) {
		entity.Position = position
		changed = true
	}
	if headshot != nil && !stringPtrMatch(entity.HeadshotURL, headshot) {
		entity.HeadshotURL = headshot
		changed = true
	}
	if entity.IsActive != doc.IsActive {
		entity.IsActive = doc.IsActive
		changed = true
	}
	return changed
}

func float64PtrMatch(a, b *float64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func stringPtrMatch(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
