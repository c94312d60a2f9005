package processor

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"

	"sportsync/internal/domain"
	"sportsync/internal/provider/espn"
)

// StatisticsProcessor ingests athlete season statistics. The provider never
// sends partial updates, so the whole row set is replaced on every document.
type StatisticsProcessor struct {
	base
	statistics StatisticsStore
}

func (p *StatisticsProcessor) Process(ctx context.Context, cmd *domain.ProcessDocumentCommand) (Outcome, error) {
	var doc espn.AthleteStatisticsDoc
	if err := json.Unmarshal([]byte(cmd.Document), &doc); err != nil {
		return Terminal("deserialize athlete statistics document: %v", err), nil
	}

	seasonID, seasonReq, err := p.resolveRequired(ctx, cmd, domain.KindAthleteSeason, doc.Season, domain.DocAthleteSeason, "")
	if errors.Is(err, errBadRef) {
		return Terminal("athlete statistics document: %v", err), nil
	}
	if err != nil {
		return Outcome{}, err
	}
	if seasonReq != nil {
		p.logger.Warn("athlete season not sourced yet, deferring statistics",
			"ref", doc.Season.Href, "attempt", cmd.Attempt)
		return Deferred(*seasonReq), nil
	}

	stats := statsFromDoc(seasonID, doc.Splits)

	evt, err := p.event(cmd, domain.KindAthleteSeason, domain.ActionUpdated, seasonID, struct {
		AthleteSeasonID uuid.UUID                       `json:"athleteSeasonId"`
		Statistics      []domain.AthleteSeasonStatistic `json:"statistics"`
	}{seasonID, stats})
	if err != nil {
		return Outcome{}, err
	}

	err = p.persist(ctx, func(txCtx context.Context) error {
		return p.statistics.ReplaceForAthleteSeason(txCtx, seasonID, stats)
	}, []*domain.OutboxMessage{evt})
	if err != nil {
		return Outcome{}, err
	}

	p.logger.Info("replaced athlete season statistics", "athlete_season_id", seasonID, "rows", len(stats))
	return Completed(), nil
}

func statsFromDoc(seasonID uuid.UUID, splits []espn.StatCategoryDoc) []domain.AthleteSeasonStatistic {
	var stats []domain.AthleteSeasonStatistic
	for _, cat := range splits {
		for _, s := range cat.Stats {
			stats = append(stats, domain.AthleteSeasonStatistic{
				ID:              uuid.New(),
				AthleteSeasonID: seasonID,
				Category:        cat.Name,
				StatKey:         s.Name,
				Value:           s.Value,
				DisplayValue:    s.DisplayValue,
			})
		}
	}
	return stats
}
