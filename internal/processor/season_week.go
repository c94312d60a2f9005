package processor

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"sportsync/internal/domain"
	"sportsync/internal/provider/espn"
)

type SeasonWeekProcessor struct {
	base
	weeks SeasonWeekStore
}

func (p *SeasonWeekProcessor) Process(ctx context.Context, cmd *domain.ProcessDocumentCommand) (Outcome, error) {
	var doc espn.SeasonTypeWeekDoc
	if err := json.Unmarshal([]byte(cmd.Document), &doc); err != nil {
		return Terminal("deserialize season week document: %v", err), nil
	}

	ident, err := selfIdentity(doc.Ref)
	if err != nil {
		return Terminal("season week document: %v", err), nil
	}

	start, err := parseProviderDate(doc.StartDate)
	if err != nil {
		return Terminal("season week start date %q: %v", doc.StartDate, err), nil
	}
	end, err := parseProviderDate(doc.EndDate)
	if err != nil {
		return Terminal("season week end date %q: %v", doc.EndDate, err), nil
	}

	existing, err := p.weeks.FindByRef(ctx, cmd.Provider, ident.URLHash)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return Outcome{}, err
	}

	if existing != nil {
		if existing.StartUTC.Equal(start) && existing.EndUTC.Equal(end) {
			p.logger.Debug("season week unchanged", "id", existing.ID)
			return Completed(), nil
		}

		now := nowUTC()
		existing.StartUTC = start
		existing.EndUTC = end
		existing.ModifiedUTC = &now
		existing.ModifiedBy = &cmd.CorrelationID

		evt, err := p.event(cmd, domain.KindSeasonWeek, domain.ActionUpdated, existing.ID, existing)
		if err != nil {
			return Outcome{}, err
		}
		if err := p.persist(ctx, func(txCtx context.Context) error {
			return p.weeks.Update(txCtx, existing)
		}, []*domain.OutboxMessage{evt}); err != nil {
			return Outcome{}, err
		}
		return Completed(), nil
	}

	entity := &domain.SeasonWeek{
		ID:         ident.CanonicalID,
		SeasonYear: seasonYearOf(cmd, doc.SeasonYear),
		TypeCode:   doc.TypeCode,
		Number:     doc.Number,
		StartUTC:   start,
		EndUTC:     end,
		Audit: domain.Audit{
			CreatedUTC: nowUTC(),
			CreatedBy:  cmd.CorrelationID,
		},
	}

	evt, err := p.event(cmd, domain.KindSeasonWeek, domain.ActionCreated, entity.ID, entity)
	if err != nil {
		return Outcome{}, err
	}

	ref := externalRef(domain.KindSeasonWeek, entity.ID, cmd.Provider, ident)
	err = p.persist(ctx, func(txCtx context.Context) error {
		return p.weeks.Insert(txCtx, entity, ref)
	}, []*domain.OutboxMessage{evt})

	if errors.Is(err, domain.ErrDuplicate) {
		if _, ferr := p.weeks.FindByRef(ctx, cmd.Provider, ident.URLHash); ferr != nil {
			return Outcome{}, errors.New("duplicate key on season week insert but row not found by identity")
		}
		p.logger.Info("season week created concurrently by another worker", "url_hash", ident.URLHash)
		return Completed(), nil
	}
	if err != nil {
		return Outcome{}, err
	}

	p.logger.Info("created season week", "id", entity.ID, "number", entity.Number)
	return Completed(), nil
}

// parseProviderDate accepts the two timestamp layouts the provider emits.
func parseProviderDate(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse("2006-01-02T15:04Z", raw)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}
