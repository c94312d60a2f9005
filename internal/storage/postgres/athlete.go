package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"sportsync/internal/domain"
)

type AthleteStore struct {
	db *sqlx.DB
}

func NewAthleteStore(db *sqlx.DB) *AthleteStore {
	return &AthleteStore{db: db}
}

func (s *AthleteStore) FindByRef(ctx context.Context, provider domain.Provider, urlHash string) (*domain.Athlete, error) {
	query := `
		SELECT a.id, a.first_name, a.last_name, a.display_name, a.weight_lb, a.height_in,
		       a.position, a.headshot_url, a.franchise_id, a.is_active,
		       a.created_utc, a.created_by, a.modified_utc, a.modified_by
		FROM athletes a
		JOIN external_refs r ON r.entity_id = a.id AND r.entity_kind = $1
		WHERE r.provider = $2 AND r.source_url_hash = $3`

	var entity domain.Athlete
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &entity, query, domain.KindAthlete, provider, urlHash)
	if err != nil {
		return nil, translateErr(err)
	}
	return &entity, nil
}

func (s *AthleteStore) Insert(ctx context.Context, entity *domain.Athlete, ref *domain.ExternalRef) error {
	query := `
		INSERT INTO athletes (id, first_name, last_name, display_name, weight_lb, height_in,
			position, headshot_url, franchise_id, is_active, created_utc, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, query,
		entity.ID, entity.FirstName, entity.LastName, entity.DisplayName,
		entity.WeightLb, entity.HeightIn, entity.Position, entity.HeadshotURL,
		entity.FranchiseID, entity.IsActive, entity.CreatedUTC, entity.CreatedBy,
	)
	if err != nil {
		return translateErr(err)
	}
	return bindRef(ctx, s.db, ref)
}

func (s *AthleteStore) Update(ctx context.Context, entity *domain.Athlete) error {
	query := `
		UPDATE athletes SET
			first_name = $2, last_name = $3, display_name = $4, weight_lb = $5, height_in = $6,
			position = $7, headshot_url = $8, franchise_id = $9, is_active = $10,
			modified_utc = $11, modified_by = $12
		WHERE id = $1`

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, query,
		entity.ID, entity.FirstName, entity.LastName, entity.DisplayName,
		entity.WeightLb, entity.HeightIn, entity.Position, entity.HeadshotURL,
		entity.FranchiseID, entity.IsActive, entity.ModifiedUTC, entity.ModifiedBy,
	)
	return translateErr(err)
}

type AthleteSeasonStore struct {
	db *sqlx.DB
}

func NewAthleteSeasonStore(db *sqlx.DB) *AthleteSeasonStore {
	return &AthleteSeasonStore{db: db}
}

func (s *AthleteSeasonStore) FindByRef(ctx context.Context, provider domain.Provider, urlHash string) (*domain.AthleteSeason, error) {
	query := `
		SELECT a.id, a.athlete_id, a.franchise_season_id, a.season_year, a.jersey, a.position,
		       a.created_utc, a.created_by, a.modified_utc, a.modified_by
		FROM athlete_seasons a
		JOIN external_refs r ON r.entity_id = a.id AND r.entity_kind = $1
		WHERE r.provider = $2 AND r.source_url_hash = $3`

	var entity domain.AthleteSeason
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &entity, query, domain.KindAthleteSeason, provider, urlHash)
	if err != nil {
		return nil, translateErr(err)
	}
	return &entity, nil
}

func (s *AthleteSeasonStore) Insert(ctx context.Context, entity *domain.AthleteSeason, ref *domain.ExternalRef) error {
	query := `
		INSERT INTO athlete_seasons (id, athlete_id, franchise_season_id, season_year, jersey, position, created_utc, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, query,
		entity.ID, entity.AthleteID, entity.FranchiseSeasonID, entity.SeasonYear,
		entity.Jersey, entity.Position, entity.CreatedUTC, entity.CreatedBy,
	)
	if err != nil {
		return translateErr(err)
	}
	return bindRef(ctx, s.db, ref)
}

func (s *AthleteSeasonStore) Update(ctx context.Context, entity *domain.AthleteSeason) error {
	query := `
		UPDATE athlete_seasons SET
			jersey = $2, position = $3, modified_utc = $4, modified_by = $5
		WHERE id = $1`

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, query,
		entity.ID, entity.Jersey, entity.Position, entity.ModifiedUTC, entity.ModifiedBy,
	)
	return translateErr(err)
}
