package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"sportsync/internal/domain"
)

type FranchiseStore struct {
	db *sqlx.DB
}

func NewFranchiseStore(db *sqlx.DB) *FranchiseStore {
	return &FranchiseStore{db: db}
}

func (s *FranchiseStore) FindByRef(ctx context.Context, provider domain.Provider, urlHash string) (*domain.Franchise, error) {
	query := `
		SELECT f.id, f.sport, f.name, f.display_name, f.abbreviation, f.location, f.is_active,
		       f.created_utc, f.created_by, f.modified_utc, f.modified_by
		FROM franchises f
		JOIN external_refs r ON r.entity_id = f.id AND r.entity_kind = $1
		WHERE r.provider = $2 AND r.source_url_hash = $3`

	var entity domain.Franchise
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &entity, query, domain.KindFranchise, provider, urlHash)
	if err != nil {
		return nil, translateErr(err)
	}
	return &entity, nil
}

func (s *FranchiseStore) Insert(ctx context.Context, entity *domain.Franchise, ref *domain.ExternalRef) error {
	query := `
		INSERT INTO franchises (id, sport, name, display_name, abbreviation, location, is_active, created_utc, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, query,
		entity.ID, entity.Sport, entity.Name, entity.DisplayName,
		entity.Abbreviation, entity.Location, entity.IsActive,
		entity.CreatedUTC, entity.CreatedBy,
	)
	if err != nil {
		return translateErr(err)
	}
	return bindRef(ctx, s.db, ref)
}

func (s *FranchiseStore) Update(ctx context.Context, entity *domain.Franchise) error {
	query := `
		UPDATE franchises SET
			name = $2, display_name = $3, abbreviation = $4, location = $5,
			is_active = $6, modified_utc = $7, modified_by = $8
		WHERE id = $1`

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, query,
		entity.ID, entity.Name, entity.DisplayName, entity.Abbreviation,
		entity.Location, entity.IsActive, entity.ModifiedUTC, entity.ModifiedBy,
	)
	return translateErr(err)
}

type FranchiseSeasonStore struct {
	db *sqlx.DB
}

func NewFranchiseSeasonStore(db *sqlx.DB) *FranchiseSeasonStore {
	return &FranchiseSeasonStore{db: db}
}

func (s *FranchiseSeasonStore) FindByRef(ctx context.Context, provider domain.Provider, urlHash string) (*domain.FranchiseSeason, error) {
	query := `
		SELECT fs.id, fs.franchise_id, fs.group_season_id, fs.season_year, fs.name,
		       fs.abbreviation, fs.location, fs.is_active,
		       fs.created_utc, fs.created_by, fs.modified_utc, fs.modified_by
		FROM franchise_seasons fs
		JOIN external_refs r ON r.entity_id = fs.id AND r.entity_kind = $1
		WHERE r.provider = $2 AND r.source_url_hash = $3`

	var entity domain.FranchiseSeason
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &entity, query, domain.KindFranchiseSeason, provider, urlHash)
	if err != nil {
		return nil, translateErr(err)
	}
	return &entity, nil
}

func (s *FranchiseSeasonStore) Insert(ctx context.Context, entity *domain.FranchiseSeason, ref *domain.ExternalRef) error {
	query := `
		INSERT INTO franchise_seasons (id, franchise_id, group_season_id, season_year, name,
			abbreviation, location, is_active, created_utc, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, query,
		entity.ID, entity.FranchiseID, entity.GroupSeasonID, entity.SeasonYear,
		entity.Name, entity.Abbreviation, entity.Location, entity.IsActive,
		entity.CreatedUTC, entity.CreatedBy,
	)
	if err != nil {
		return translateErr(err)
	}
	return bindRef(ctx, s.db, ref)
}

func (s *FranchiseSeasonStore) Update(ctx context.Context, entity *domain.FranchiseSeason) error {
	query := `
		UPDATE franchise_seasons SET
			group_season_id = $2, name = $3, abbreviation = $4, location = $5,
			is_active = $6, modified_utc = $7, modified_by = $8
		WHERE id = $1`

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, query,
		entity.ID, entity.GroupSeasonID, entity.Name, entity.Abbreviation,
		entity.Location, entity.IsActive, entity.ModifiedUTC, entity.ModifiedBy,
	)
	return translateErr(err)
}
