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

// OddsProcessor ingests competition odds. The provider re-issues the whole
// document on every fetch, so a content fingerprint short-circuits no-op
// updates; real changes are merged into the line collection by business key.
type OddsProcessor struct {
	base
	odds         OddsStore
	competitions CompetitionStore
}

func (p *OddsProcessor) Process(ctx context.Context, cmd *domain.ProcessDocumentCommand) (Outcome, error) {
	var doc espn.OddsDoc
	if err := json.Unmarshal([]byte(cmd.Document), &doc); err != nil {
		return Terminal("deserialize odds document: %v", err), nil
	}

	ident, err := selfIdentity(doc.Ref)
	if err != nil {
		return Terminal("odds document: %v", err), nil
	}

	if cmd.ParentID == "" {
		return Terminal("odds command has no parent competition id"), nil
	}
	competitionID, err := uuid.Parse(cmd.ParentID)
	if err != nil {
		return Terminal("odds parent id %q is not a uuid: %v", cmd.ParentID, err), nil
	}

	// The parent id was minted by the competition processor; a dangling one
	// is a data-integrity problem, not a missing dependency we can request.
	if _, err := p.competitions.FindByID(ctx, competitionID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return Terminal("competition %s not found for odds document", competitionID), nil
		}
		return Outcome{}, err
	}

	fingerprint, err := identity.Fingerprint([]byte(cmd.Document))
	if err != nil {
		return Terminal("odds document: %v", err), nil
	}

	existing, err := p.odds.FindByRef(ctx, cmd.Provider, ident.URLHash)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return Outcome{}, err
	}

	if existing == nil {
		return p.create(ctx, cmd, &doc, ident, competitionID, fingerprint)
	}

	if existing.ContentHash == fingerprint {
		p.logger.Debug("odds unchanged, skipping", "id", existing.ID)
		return Completed(), nil
	}
	return p.merge(ctx, cmd, &doc, existing, fingerprint)
}

func (p *OddsProcessor) create(
	ctx context.Context,
	cmd *domain.ProcessDocumentCommand,
	doc *espn.OddsDoc,
	ident identity.Identity,
	competitionID uuid.UUID,
	fingerprint string,
) (Outcome, error) {
	entity := &domain.CompetitionOdds{
		ID:            ident.CanonicalID,
		CompetitionID: competitionID,
		BookName:      doc.BookName,
		Details:       doc.Details,
		OverUnder:     doc.OverUnder,
		Spread:        doc.Spread,
		ContentHash:   fingerprint,
		Lines:         linesFromDoc(ident.CanonicalID, doc.Lines),
		Audit: domain.Audit{
			CreatedUTC: nowUTC(),
			CreatedBy:  cmd.CorrelationID,
		},
	}

	evt, err := p.event(cmd, domain.KindCompetitionOdds, domain.ActionCreated, entity.ID, entity)
	if err != nil {
		return Outcome{}, err
	}

	ref := externalRef(domain.KindCompetitionOdds, entity.ID, cmd.Provider, ident)
	err = p.persist(ctx, func(txCtx context.Context) error {
		return p.odds.Insert(txCtx, entity, ref)
	}, []*domain.OutboxMessage{evt})

	if errors.Is(err, domain.ErrDuplicate) {
		if _, ferr := p.odds.FindByRef(ctx, cmd.Provider, ident.URLHash); ferr != nil {
			return Outcome{}, errors.New("duplicate key on odds insert but row not found by identity")
		}
		p.logger.Info("odds created concurrently by another worker", "url_hash", ident.URLHash)
		return Completed(), nil
	}
	if err != nil {
		return Outcome{}, err
	}

	p.logger.Info("created competition odds", "id", entity.ID, "book", entity.BookName, "lines", len(entity.Lines))
	return Completed(), nil
}

func (p *OddsProcessor) merge(
	ctx context.Context,
	cmd *domain.ProcessDocumentCommand,
	doc *espn.OddsDoc,
	entity *domain.CompetitionOdds,
	fingerprint string,
) (Outcome, error) {
	incoming := linesFromDoc(entity.ID, doc.Lines)
	changes := domain.MergeOddsLines(entity.ID, entity.Lines, incoming)

	now := nowUTC()
	entity.Details = doc.Details
	entity.OverUnder = doc.OverUnder
	entity.Spread = doc.Spread
	entity.ContentHash = fingerprint
	entity.ModifiedUTC = &now
	entity.ModifiedBy = &cmd.CorrelationID

	evt, err := p.event(cmd, domain.KindCompetitionOdds, domain.ActionUpdated, entity.ID, entity)
	if err != nil {
		return Outcome{}, err
	}

	err = p.persist(ctx, func(txCtx context.Context) error {
		return p.odds.ApplyMerge(txCtx, entity, changes)
	}, []*domain.OutboxMessage{evt})
	if err != nil {
		return Outcome{}, err
	}

	p.logger.Info("merged competition odds", "id", entity.ID,
		"added", len(changes.Add), "updated", len(changes.Update), "removed", len(changes.Remove))
	return Completed(), nil
}

func linesFromDoc(oddsID uuid.UUID, docs []espn.OddsLineDoc) []domain.OddsLine {
	lines := make([]domain.OddsLine, 0, len(docs))
	for _, d := range docs {
		lines = append(lines, domain.OddsLine{
			ID:       uuid.New(),
			OddsID:   oddsID,
			Side:     d.Side,
			Phase:    d.Phase,
			Value:    d.Value,
			PriceUS:  d.PriceUS,
			Favorite: d.Favorite,
			Underdog: d.Underdog,
		})
	}
	return lines
}
