package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"sportsync/internal/domain"
)

// StatisticsStore persists aggregated athlete-season statistics. The
// provider replaces the whole block on every fetch, so updates are a delete
// plus insert of the full sub-graph rather than a field diff.
type StatisticsStore struct {
	db *sqlx.DB
}

func NewStatisticsStore(db *sqlx.DB) *StatisticsStore {
	return &StatisticsStore{db: db}
}

func (s *StatisticsStore) ReplaceForAthleteSeason(ctx context.Context, athleteSeasonID uuid.UUID, stats []domain.AthleteSeasonStatistic) error {
	exec := GetExecutor(ctx, s.db)

	if _, err := exec.ExecContext(ctx,
		`DELETE FROM athlete_season_statistics WHERE athlete_season_id = $1`,
		athleteSeasonID,
	); err != nil {
		return translateErr(err)
	}

	query := `
		INSERT INTO athlete_season_statistics (id, athlete_season_id, category, stat_key, value, display_value)
		VALUES ($1, $2, $3, $4, $5, $6)`

	for _, stat := range stats {
		if _, err := exec.ExecContext(ctx, query,
			stat.ID, stat.AthleteSeasonID, stat.Category, stat.StatKey,
			stat.Value, stat.DisplayValue,
		); err != nil {
			return translateErr(err)
		}
	}
	return nil
}

func (s *StatisticsStore) CountForAthleteSeason(ctx context.Context, athleteSeasonID uuid.UUID) (int, error) {
	var count int
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &count,
		`SELECT COUNT(*) FROM athlete_season_statistics WHERE athlete_season_id = $1`,
		athleteSeasonID,
	)
	return count, translateErr(err)
}
