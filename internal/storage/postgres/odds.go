package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"sportsync/internal/domain"
)

type OddsStore struct {
	db *sqlx.DB
}

func NewOddsStore(db *sqlx.DB) *OddsStore {
	return &OddsStore{db: db}
}

func (s *OddsStore) FindByRef(ctx context.Context, provider domain.Provider, urlHash string) (*domain.CompetitionOdds, error) {
	query := `
		SELECT o.id, o.competition_id, o.book_name, o.details, o.over_under, o.spread, o.content_hash,
		       o.created_utc, o.created_by, o.modified_utc, o.modified_by
		FROM competition_odds o
		JOIN external_refs r ON r.entity_id = o.id AND r.entity_kind = $1
		WHERE r.provider = $2 AND r.source_url_hash = $3`

	exec := GetExecutor(ctx, s.db)

	var entity domain.CompetitionOdds
	err := sqlx.GetContext(ctx, exec, &entity, query, domain.KindCompetitionOdds, provider, urlHash)
	if err != nil {
		return nil, translateErr(err)
	}

	lineQuery := `
		SELECT id, odds_id, side, phase, value, price_us, favorite, underdog
		FROM competition_odds_lines
		WHERE odds_id = $1
		ORDER BY side, phase`

	if err := sqlx.SelectContext(ctx, exec, &entity.Lines, lineQuery, entity.ID); err != nil {
		return nil, translateErr(err)
	}
	return &entity, nil
}

func (s *OddsStore) Insert(ctx context.Context, entity *domain.CompetitionOdds, ref *domain.ExternalRef) error {
	query := `
		INSERT INTO competition_odds (id, competition_id, book_name, details, over_under, spread, content_hash, created_utc, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	exec := GetExecutor(ctx, s.db)

	_, err := exec.ExecContext(ctx, query,
		entity.ID, entity.CompetitionID, entity.BookName, entity.Details,
		entity.OverUnder, entity.Spread, entity.ContentHash,
		entity.CreatedUTC, entity.CreatedBy,
	)
	if err != nil {
		return translateErr(err)
	}

	for i := range entity.Lines {
		if err := insertOddsLine(ctx, exec, &entity.Lines[i]); err != nil {
			return err
		}
	}
	return bindRef(ctx, s.db, ref)
}

// ApplyMerge persists the header fields, the line diff, and the new content
// fingerprint in one pass. Caller wraps it in a transaction.
func (s *OddsStore) ApplyMerge(ctx context.Context, entity *domain.CompetitionOdds, changes domain.OddsLineChanges) error {
	exec := GetExecutor(ctx, s.db)

	query := `
		UPDATE competition_odds SET
			details = $2, over_under = $3, spread = $4, content_hash = $5,
			modified_utc = $6, modified_by = $7
		WHERE id = $1`

	_, err := exec.ExecContext(ctx, query,
		entity.ID, entity.Details, entity.OverUnder, entity.Spread,
		entity.ContentHash, entity.ModifiedUTC, entity.ModifiedBy,
	)
	if err != nil {
		return translateErr(err)
	}

	for i := range changes.Add {
		if err := insertOddsLine(ctx, exec, &changes.Add[i]); err != nil {
			return err
		}
	}

	for _, line := range changes.Update {
		updateQuery := `
			UPDATE competition_odds_lines SET
				value = $2, price_us = $3, favorite = $4, underdog = $5
			WHERE id = $1`
		if _, err := exec.ExecContext(ctx, updateQuery,
			line.ID, line.Value, line.PriceUS, line.Favorite, line.Underdog,
		); err != nil {
			return translateErr(err)
		}
	}

	if len(changes.Remove) > 0 {
		if _, err := exec.ExecContext(ctx,
			`DELETE FROM competition_odds_lines WHERE id = ANY($1)`,
			pq.Array(changes.Remove),
		); err != nil {
			return translateErr(err)
		}
	}

	return nil
}

func insertOddsLine(ctx context.Context, exec sqlx.ExtContext, line *domain.OddsLine) error {
	query := `
		INSERT INTO competition_odds_lines (id, odds_id, side, phase, value, price_us, favorite, underdog)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := exec.ExecContext(ctx, query,
		line.ID, line.OddsID, line.Side, line.Phase,
		line.Value, line.PriceUS, line.Favorite, line.Underdog,
	)
	return translateErr(err)
}
