package processor

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"

	"sportsync/internal/domain"
	"sportsync/internal/provider/espn"
)

// CompetitionProcessor ingests competition documents. The owning contest id
// arrives as the command's parent id, set by the event processor's child
// request; a competition cannot be anchored without it.
type CompetitionProcessor struct {
	base
	competitions CompetitionStore
}

func (p *CompetitionProcessor) Process(ctx context.Context, cmd *domain.ProcessDocumentCommand) (Outcome, error) {
	var doc espn.CompetitionDoc
	if err := json.Unmarshal([]byte(cmd.Document), &doc); err != nil {
		return Terminal("deserialize competition document: %v", err), nil
	}

	ident, err := selfIdentity(doc.Ref)
	if err != nil {
		return Terminal("competition document: %v", err), nil
	}

	if cmd.ParentID == "" {
		return Terminal("competition command has no parent contest id"), nil
	}
	contestID, err := uuid.Parse(cmd.ParentID)
	if err != nil {
		return Terminal("competition parent id %q is not a uuid: %v", cmd.ParentID, err), nil
	}

	date, err := parseProviderDate(doc.Date)
	if err != nil {
		return Terminal("competition date %q: %v", doc.Date, err), nil
	}

	existing, err := p.competitions.FindByRef(ctx, cmd.Provider, ident.URLHash)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return Outcome{}, err
	}

	if existing != nil {
		return p.update(ctx, cmd, &doc, existing, date)
	}

	entity := &domain.Competition{
		ID:          ident.CanonicalID,
		ContestID:   contestID,
		Date:        date,
		NeutralSite: doc.NeutralSite,
		Status:      doc.Status,
		Audit: domain.Audit{
			CreatedUTC: nowUTC(),
			CreatedBy:  cmd.CorrelationID,
		},
	}

	evt, err := p.event(cmd, domain.KindCompetition, domain.ActionCreated, entity.ID, entity)
	if err != nil {
		return Outcome{}, err
	}

	children := []*domain.DocumentRequested{
		p.childRequest(cmd, doc.Odds, entity.ID, domain.DocEventCompetitionOdds),
	}
	for i := range doc.Competitors {
		children = append(children, p.childRequest(cmd, &doc.Competitors[i], entity.ID, domain.DocEventCompetitionCompetitor))
	}
	msgs, err := requestMessages(children...)
	if err != nil {
		return Outcome{}, err
	}
	msgs = append([]*domain.OutboxMessage{evt}, msgs...)

	ref := externalRef(domain.KindCompetition, entity.ID, cmd.Provider, ident)
	err = p.persist(ctx, func(txCtx context.Context) error {
		return p.competitions.Insert(txCtx, entity, ref)
	}, msgs)

	if errors.Is(err, domain.ErrDuplicate) {
		if _, ferr := p.competitions.FindByRef(ctx, cmd.Provider, ident.URLHash); ferr != nil {
			return Outcome{}, errors.New("duplicate key on competition insert but row not found by identity")
		}
		p.logger.Info("competition created concurrently by another worker", "url_hash", ident.URLHash)
		return Completed(), nil
	}
	if err != nil {
		return Outcome{}, err
	}

	p.logger.Info("created competition", "id", entity.ID, "contest_id", contestID, "competitors", len(doc.Competitors))
	return Completed(), nil
}

func (p *CompetitionProcessor) update(ctx context.Context, cmd *domain.ProcessDocumentCommand, doc *espn.CompetitionDoc, entity *domain.Competition, date time.Time) (Outcome, error) {
	changed := false
	if !entity.Date.Equal(date) {
		entity.Date = date
		changed = true
	}
	if entity.NeutralSite != doc.NeutralSite {
		entity.NeutralSite = doc.NeutralSite
		changed = true
	}
	if doc.Status != "" && entity.Status != doc.Status {
		entity.Status = doc.Status
		changed = true
	}

	if !changed {
		p.logger.Debug("competition unchanged", "id", entity.ID)
		return Completed(), nil
	}

	now := nowUTC()
	entity.ModifiedUTC = &now
	entity.ModifiedBy = &cmd.CorrelationID

	evt, err := p.event(cmd, domain.KindCompetition, domain.ActionUpdated, entity.ID, entity)
	if err != nil {
		return Outcome{}, err
	}

	err = p.persist(ctx, func(txCtx context.Context) error {
		return p.competitions.Update(txCtx, entity)
	}, []*domain.OutboxMessage{evt})
	if err != nil {
		return Outcome{}, err
	}

	p.logger.Info("updated competition", "id", entity.ID)
	return Completed(), nil
}
