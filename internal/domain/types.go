package domain

// Provider identifies the external data provider a document came from.
type Provider string

const (
	ProviderESPN Provider = "espn"
)

func (p Provider) IsValid() bool {
	return p == ProviderESPN
}

type Sport string

const (
	SportFootballNCAA Sport = "football-ncaa"
	SportFootballNFL  Sport = "football-nfl"
)

func (s Sport) IsValid() bool {
	switch s {
	case SportFootballNCAA, SportFootballNFL:
		return true
	}
	return false
}

// DocumentType is the closed set of provider document shapes the pipeline
// knows how to process. Every type listed here must have a processor
// registered at startup for each configured sport.
type DocumentType string

const (
	DocFranchise                  DocumentType = "Franchise"
	DocTeamSeason                 DocumentType = "TeamSeason"
	DocGroupSeason                DocumentType = "GroupSeason"
	DocSeasonTypeWeek             DocumentType = "SeasonTypeWeek"
	DocEvent                      DocumentType = "Event"
	DocEventCompetition           DocumentType = "EventCompetition"
	DocEventCompetitionCompetitor DocumentType = "EventCompetitionCompetitor"
	DocEventCompetitionOdds       DocumentType = "EventCompetitionOdds"
	DocAthlete                    DocumentType = "Athlete"
	DocAthleteSeason              DocumentType = "AthleteSeason"
	DocAthleteSeasonStatistics    DocumentType = "AthleteSeasonStatistics"
)

// DocumentTypes returns every known document type. The registry uses this to
// verify that no declared type is left without a processor.
func DocumentTypes() []DocumentType {
	return []DocumentType{
		DocFranchise,
		DocTeamSeason,
		DocGroupSeason,
		DocSeasonTypeWeek,
		DocEvent,
		DocEventCompetition,
		DocEventCompetitionCompetitor,
		DocEventCompetitionOdds,
		DocAthlete,
		DocAthleteSeason,
		DocAthleteSeasonStatistics,
	}
}

// EntityKind names a canonical entity table. Used to scope external
// reference lookups so two kinds can never collide on the same url hash.
type EntityKind string

const (
	KindFranchise       EntityKind = "franchise"
	KindFranchiseSeason EntityKind = "franchise_season"
	KindGroupSeason     EntityKind = "group_season"
	KindSeasonWeek      EntityKind = "season_week"
	KindContest         EntityKind = "contest"
	KindCompetition     EntityKind = "competition"
	KindCompetitor      EntityKind = "competitor"
	KindAthlete         EntityKind = "athlete"
	KindAthleteSeason   EntityKind = "athlete_season"
	KindCompetitionOdds EntityKind = "competition_odds"
)
