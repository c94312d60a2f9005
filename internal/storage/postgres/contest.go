package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"sportsync/internal/domain"
)

type ContestStore struct {
	db *sqlx.DB
}

func NewContestStore(db *sqlx.DB) *ContestStore {
	return &ContestStore{db: db}
}

func (s *ContestStore) FindByRef(ctx context.Context, provider domain.Provider, urlHash string) (*domain.Contest, error) {
	query := `
		SELECT c.id, c.sport, c.name, c.short_name, c.season_year, c.season_week_id, c.start_utc,
		       c.created_utc, c.created_by, c.modified_utc, c.modified_by
		FROM contests c
		JOIN external_refs r ON r.entity_id = c.id AND r.entity_kind = $1
		WHERE r.provider = $2 AND r.source_url_hash = $3`

	var entity domain.Contest
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &entity, query, domain.KindContest, provider, urlHash)
	if err != nil {
		return nil, translateErr(err)
	}
	return &entity, nil
}

func (s *ContestStore) Insert(ctx context.Context, entity *domain.Contest, ref *domain.ExternalRef) error {
	query := `
		INSERT INTO contests (id, sport, name, short_name, season_year, season_week_id, start_utc, created_utc, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, query,
		entity.ID, entity.Sport, entity.Name, entity.ShortName, entity.SeasonYear,
		entity.SeasonWeekID, entity.StartUTC, entity.CreatedUTC, entity.CreatedBy,
	)
	if err != nil {
		return translateErr(err)
	}
	return bindRef(ctx, s.db, ref)
}

func (s *ContestStore) Update(ctx context.Context, entity *domain.Contest) error {
	query := `
		UPDATE contests SET
			name = $2, short_name = $3, season_week_id = $4, start_utc = $5,
			modified_utc = $6, modified_by = $7
		WHERE id = $1`

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, query,
		entity.ID, entity.Name, entity.ShortName, entity.SeasonWeekID,
		entity.StartUTC, entity.ModifiedUTC, entity.ModifiedBy,
	)
	return translateErr(err)
}

type CompetitionStore struct {
	db *sqlx.DB
}

func NewCompetitionStore(db *sqlx.DB) *CompetitionStore {
	return &CompetitionStore{db: db}
}

func (s *CompetitionStore) FindByRef(ctx context.Context, provider domain.Provider, urlHash string) (*domain.Competition, error) {
	query := `
		SELECT c.id, c.contest_id, c.date, c.neutral_site, c.status,
		       c.created_utc, c.created_by, c.modified_utc, c.modified_by
		FROM competitions c
		JOIN external_refs r ON r.entity_id = c.id AND r.entity_kind = $1
		WHERE r.provider = $2 AND r.source_url_hash = $3`

	var entity domain.Competition
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &entity, query, domain.KindCompetition, provider, urlHash)
	if err != nil {
		return nil, translateErr(err)
	}
	return &entity, nil
}

func (s *CompetitionStore) FindByID(ctx context.Context, id uuid.UUID) (*domain.Competition, error) {
	query := `
		SELECT id, contest_id, date, neutral_site, status,
		       created_utc, created_by, modified_utc, modified_by
		FROM competitions WHERE id = $1`

	var entity domain.Competition
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &entity, query, id)
	if err != nil {
		return nil, translateErr(err)
	}
	return &entity, nil
}

func (s *CompetitionStore) Insert(ctx context.Context, entity *domain.Competition, ref *domain.ExternalRef) error {
	query := `
		INSERT INTO competitions (id, contest_id, date, neutral_site, status, created_utc, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, query,
		entity.ID, entity.ContestID, entity.Date, entity.NeutralSite,
		entity.Status, entity.CreatedUTC, entity.CreatedBy,
	)
	if err != nil {
		return translateErr(err)
	}
	return bindRef(ctx, s.db, ref)
}

func (s *CompetitionStore) Update(ctx context.Context, entity *domain.Competition) error {
	query := `
		UPDATE competitions SET
			date = $2, neutral_site = $3, status = $4, modified_utc = $5, modified_by = $6
		WHERE id = $1`

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, query,
		entity.ID, entity.Date, entity.NeutralSite, entity.Status,
		entity.ModifiedUTC, entity.ModifiedBy,
	)
	return translateErr(err)
}

type CompetitorStore struct {
	db *sqlx.DB
}

func NewCompetitorStore(db *sqlx.DB) *CompetitorStore {
	return &CompetitorStore{db: db}
}

func (s *CompetitorStore) FindByRef(ctx context.Context, provider domain.Provider, urlHash string) (*domain.Competitor, error) {
	query := `
		SELECT c.id, c.competition_id, c.franchise_season_id, c.home_away, c.display_order, c.winner,
		       c.created_utc, c.created_by, c.modified_utc, c.modified_by
		FROM competitors c
		JOIN external_refs r ON r.entity_id = c.id AND r.entity_kind = $1
		WHERE r.provider = $2 AND r.source_url_hash = $3`

	var entity domain.Competitor
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &entity, query, domain.KindCompetitor, provider, urlHash)
	if err != nil {
		return nil, translateErr(err)
	}
	return &entity, nil
}

func (s *CompetitorStore) Insert(ctx context.Context, entity *domain.Competitor, ref *domain.ExternalRef) error {
	query := `
		INSERT INTO competitors (id, competition_id, franchise_season_id, home_away, display_order, winner, created_utc, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, query,
		entity.ID, entity.CompetitionID, entity.FranchiseSeasonID, entity.HomeAway,
		entity.Order, entity.Winner, entity.CreatedUTC, entity.CreatedBy,
	)
	if err != nil {
		return translateErr(err)
	}
	return bindRef(ctx, s.db, ref)
}

func (s *CompetitorStore) Update(ctx context.Context, entity *domain.Competitor) error {
	query := `
		UPDATE competitors SET
			home_away = $2, display_order = $3, winner = $4, modified_utc = $5, modified_by = $6
		WHERE id = $1`

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, query,
		entity.ID, entity.HomeAway, entity.Order, entity.Winner,
		entity.ModifiedUTC, entity.ModifiedBy,
	)
	return translateErr(err)
}
