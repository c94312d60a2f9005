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

// EventProcessor materializes a contest from an event document and fans out
// sourcing requests for each competition the event exposes.
type EventProcessor struct {
	base
	contests ContestStore
}

func (p *EventProcessor) Process(ctx context.Context, cmd *domain.ProcessDocumentCommand) (Outcome, error) {
	var doc espn.EventDoc
	if err := json.Unmarshal([]byte(cmd.Document), &doc); err != nil {
		return Terminal("deserialize event document: %v", err), nil
	}

	ident, err := selfIdentity(doc.Ref)
	if err != nil {
		return Terminal("event document: %v", err), nil
	}

	start, err := parseProviderDate(doc.Date)
	if err != nil {
		return Terminal("event date %q: %v", doc.Date, err), nil
	}

	existing, err := p.contests.FindByRef(ctx, cmd.Provider, ident.URLHash)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return Outcome{}, err
	}

	// The week is informational; absence never blocks a contest.
	weekID, weekReq, err := p.resolveOptional(ctx, cmd, domain.KindSeasonWeek, doc.Week, domain.DocSeasonTypeWeek)
	if err != nil {
		return Outcome{}, err
	}

	if existing != nil {
		return p.update(ctx, cmd, &doc, existing, start, weekID, weekReq)
	}

	entity := &domain.Contest{
		ID:           ident.CanonicalID,
		Sport:        cmd.Sport,
		Name:         doc.Name,
		ShortName:    doc.ShortName,
		SeasonYear:   seasonYearOf(cmd, doc.SeasonYear),
		SeasonWeekID: weekID,
		StartUTC:     start,
		Audit: domain.Audit{
			CreatedUTC: nowUTC(),
			CreatedBy:  cmd.CorrelationID,
		},
	}

	evt, err := p.event(cmd, domain.KindContest, domain.ActionCreated, entity.ID, entity)
	if err != nil {
		return Outcome{}, err
	}

	children := []*domain.DocumentRequested{weekReq}
	for i := range doc.Competitions {
		children = append(children, p.childRequest(cmd, &doc.Competitions[i], entity.ID, domain.DocEventCompetition))
	}
	msgs, err := requestMessages(children...)
	if err != nil {
		return Outcome{}, err
	}
	msgs = append([]*domain.OutboxMessage{evt}, msgs...)

	ref := externalRef(domain.KindContest, entity.ID, cmd.Provider, ident)
	err = p.persist(ctx, func(txCtx context.Context) error {
		return p.contests.Insert(txCtx, entity, ref)
	}, msgs)

	if errors.Is(err, domain.ErrDuplicate) {
		if _, ferr := p.contests.FindByRef(ctx, cmd.Provider, ident.URLHash); ferr != nil {
			return Outcome{}, errors.New("duplicate key on contest insert but row not found by identity")
		}
		p.logger.Info("contest created concurrently by another worker", "url_hash", ident.URLHash)
		return Completed(), nil
	}
	if err != nil {
		return Outcome{}, err
	}

	p.logger.Info("created contest", "id", entity.ID, "name", entity.Name, "competitions", len(doc.Competitions))
	return Completed(), nil
}

func (p *EventProcessor) update(
	ctx context.Context,
	cmd *domain.ProcessDocumentCommand,
	doc *espn.EventDoc,
	entity *domain.Contest,
	start time.Time,
	weekID *uuid.UUID,
	weekReq *domain.DocumentRequested,
) (Outcome, error) {
	changed := false
	if doc.Name != "" && entity.Name != doc.Name {
		entity.Name = doc.Name
		changed = true
	}
	if doc.ShortName != "" && entity.ShortName != doc.ShortName {
		entity.ShortName = doc.ShortName
		changed = true
	}
	if !entity.StartUTC.Equal(start) {
		entity.StartUTC = start
		changed = true
	}
	if weekID != nil && (entity.SeasonWeekID == nil || *entity.SeasonWeekID != *weekID) {
		entity.SeasonWeekID = weekID
		changed = true
	}

	if !changed {
		// The week request still goes out; an unchanged contest may name a
		// week that has never been sourced.
		if err := p.enqueueRequests(ctx, weekReq); err != nil {
			return Outcome{}, err
		}
		p.logger.Debug("contest unchanged", "id", entity.ID)
		return Completed(), nil
	}

	now := nowUTC()
	entity.ModifiedUTC = &now
	entity.ModifiedBy = &cmd.CorrelationID

	evt, err := p.event(cmd, domain.KindContest, domain.ActionUpdated, entity.ID, entity)
	if err != nil {
		return Outcome{}, err
	}

	msgs := []*domain.OutboxMessage{evt}
	reqMsgs, err := requestMessages(weekReq)
	if err != nil {
		return Outcome{}, err
	}
	msgs = append(msgs, reqMsgs...)

	err = p.persist(ctx, func(txCtx context.Context) error {
		return p.contests.Update(txCtx, entity)
	}, msgs)
	if err != nil {
		return Outcome{}, err
	}

	p.logger.Info("updated contest", "id", entity.ID)
	return Completed(), nil
}
