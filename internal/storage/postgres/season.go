package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"sportsync/internal/domain"
)

type GroupSeasonStore struct {
	db *sqlx.DB
}

func NewGroupSeasonStore(db *sqlx.DB) *GroupSeasonStore {
	return &GroupSeasonStore{db: db}
}

func (s *GroupSeasonStore) FindByRef(ctx context.Context, provider domain.Provider, urlHash string) (*domain.GroupSeason, error) {
	query := `
		SELECT g.id, g.name, g.short_name, g.season_year,
		       g.created_utc, g.created_by, g.modified_utc, g.modified_by
		FROM group_seasons g
		JOIN external_refs r ON r.entity_id = g.id AND r.entity_kind = $1
		WHERE r.provider = $2 AND r.source_url_hash = $3`

	var entity domain.GroupSeason
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &entity, query, domain.KindGroupSeason, provider, urlHash)
	if err != nil {
		return nil, translateErr(err)
	}
	return &entity, nil
}

func (s *GroupSeasonStore) Insert(ctx context.Context, entity *domain.GroupSeason, ref *domain.ExternalRef) error {
	query := `
		INSERT INTO group_seasons (id, name, short_name, season_year, created_utc, created_by)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, query,
		entity.ID, entity.Name, entity.ShortName, entity.SeasonYear,
		entity.CreatedUTC, entity.CreatedBy,
	)
	if err != nil {
		return translateErr(err)
	}
	return bindRef(ctx, s.db, ref)
}

func (s *GroupSeasonStore) Update(ctx context.Context, entity *domain.GroupSeason) error {
	query := `
		UPDATE group_seasons SET
			name = $2, short_name = $3, modified_utc = $4, modified_by = $5
		WHERE id = $1`

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, query,
		entity.ID, entity.Name, entity.ShortName, entity.ModifiedUTC, entity.ModifiedBy,
	)
	return translateErr(err)
}

type SeasonWeekStore struct {
	db *sqlx.DB
}

func NewSeasonWeekStore(db *sqlx.DB) *SeasonWeekStore {
	return &SeasonWeekStore{db: db}
}

func (s *SeasonWeekStore) FindByRef(ctx context.Context, provider domain.Provider, urlHash string) (*domain.SeasonWeek, error) {
	query := `
		SELECT w.id, w.season_year, w.type_code, w.number, w.start_utc, w.end_utc,
		       w.created_utc, w.created_by, w.modified_utc, w.modified_by
		FROM season_weeks w
		JOIN external_refs r ON r.entity_id = w.id AND r.entity_kind = $1
		WHERE r.provider = $2 AND r.source_url_hash = $3`

	var entity domain.SeasonWeek
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &entity, query, domain.KindSeasonWeek, provider, urlHash)
	if err != nil {
		return nil, translateErr(err)
	}
	return &entity, nil
}

func (s *SeasonWeekStore) Insert(ctx context.Context, entity *domain.SeasonWeek, ref *domain.ExternalRef) error {
	query := `
		INSERT INTO season_weeks (id, season_year, type_code, number, start_utc, end_utc, created_utc, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, query,
		entity.ID, entity.SeasonYear, entity.TypeCode, entity.Number,
		entity.StartUTC, entity.EndUTC, entity.CreatedUTC, entity.CreatedBy,
	)
	if err != nil {
		return translateErr(err)
	}
	return bindRef(ctx, s.db, ref)
}

func (s *SeasonWeekStore) Update(ctx context.Context, entity *domain.SeasonWeek) error {
	query := `
		UPDATE season_weeks SET
			start_utc = $2, end_utc = $3, modified_utc = $4, modified_by = $5
		WHERE id = $1`

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, query,
		entity.ID, entity.StartUTC, entity.EndUTC, entity.ModifiedUTC, entity.ModifiedBy,
	)
	return translateErr(err)
}
