package domain

import (
	"time"

	"github.com/google/uuid"
)

// Audit carries the created/modified bookkeeping shared by every canonical
// entity. Actor ids are correlation ids of the commands that touched the row.
type Audit struct {
	CreatedUTC  time.Time  `db:"created_utc" json:"createdUtc"`
	CreatedBy   uuid.UUID  `db:"created_by" json:"createdBy"`
	ModifiedUTC *time.Time `db:"modified_utc" json:"modifiedUtc,omitempty"`
	ModifiedBy  *uuid.UUID `db:"modified_by" json:"modifiedBy,omitempty"`
}

// ExternalRef links a canonical entity to one provider source document.
// Unique per (entity kind, provider, source url hash).
type ExternalRef struct {
	EntityKind    EntityKind `db:"entity_kind" json:"entityKind"`
	EntityID      uuid.UUID  `db:"entity_id" json:"entityId"`
	Provider      Provider   `db:"provider" json:"provider"`
	SourceURL     string     `db:"source_url" json:"sourceUrl"`
	SourceURLHash string     `db:"source_url_hash" json:"sourceUrlHash"`
}

type Franchise struct {
	ID           uuid.UUID `db:"id" json:"id"`
	Sport        Sport     `db:"sport" json:"sport"`
	Name         string    `db:"name" json:"name"`
	DisplayName  string    `db:"display_name" json:"displayName"`
	Abbreviation string    `db:"abbreviation" json:"abbreviation"`
	Location     string    `db:"location" json:"location"`
	IsActive     bool      `db:"is_active" json:"isActive"`
	Audit
}

type FranchiseSeason struct {
	ID            uuid.UUID  `db:"id" json:"id"`
	FranchiseID   uuid.UUID  `db:"franchise_id" json:"franchiseId"`
	GroupSeasonID *uuid.UUID `db:"group_season_id" json:"groupSeasonId,omitempty"`
	SeasonYear    int        `db:"season_year" json:"seasonYear"`
	Name          string     `db:"name" json:"name"`
	Abbreviation  string     `db:"abbreviation" json:"abbreviation"`
	Location      string     `db:"location" json:"location"`
	IsActive      bool       `db:"is_active" json:"isActive"`
	Audit
}

// GroupSeason is a conference or division for one season.
type GroupSeason struct {
	ID         uuid.UUID `db:"id" json:"id"`
	Name       string    `db:"name" json:"name"`
	ShortName  string    `db:"short_name" json:"shortName"`
	SeasonYear int       `db:"season_year" json:"seasonYear"`
	Audit
}

type SeasonWeek struct {
	ID         uuid.UUID `db:"id" json:"id"`
	SeasonYear int       `db:"season_year" json:"seasonYear"`
	TypeCode   int       `db:"type_code" json:"typeCode"`
	Number     int       `db:"number" json:"number"`
	StartUTC   time.Time `db:"start_utc" json:"startUtc"`
	EndUTC     time.Time `db:"end_utc" json:"endUtc"`
	Audit
}

// Contest is a scheduled sporting event. A contest owns one or more
// competitions (almost always exactly one).
type Contest struct {
	ID           uuid.UUID  `db:"id" json:"id"`
	Sport        Sport      `db:"sport" json:"sport"`
	Name         string     `db:"name" json:"name"`
	ShortName    string     `db:"short_name" json:"shortName"`
	SeasonYear   int        `db:"season_year" json:"seasonYear"`
	SeasonWeekID *uuid.UUID `db:"season_week_id" json:"seasonWeekId,omitempty"`
	StartUTC     time.Time  `db:"start_utc" json:"startUtc"`
	Audit
}

type Competition struct {
	ID          uuid.UUID `db:"id" json:"id"`
	ContestID   uuid.UUID `db:"contest_id" json:"contestId"`
	Date        time.Time `db:"date" json:"date"`
	NeutralSite bool      `db:"neutral_site" json:"neutralSite"`
	Status      string    `db:"status" json:"status"`
	Audit
}

type Competitor struct {
	ID                uuid.UUID `db:"id" json:"id"`
	CompetitionID     uuid.UUID `db:"competition_id" json:"competitionId"`
	FranchiseSeasonID uuid.UUID `db:"franchise_season_id" json:"franchiseSeasonId"`
	HomeAway          string    `db:"home_away" json:"homeAway"`
	Order             int       `db:"display_order" json:"order"`
	Winner            *bool     `db:"winner" json:"winner,omitempty"`
	Audit
}

type Athlete struct {
	ID          uuid.UUID  `db:"id" json:"id"`
	FirstName   string     `db:"first_name" json:"firstName"`
	LastName    string     `db:"last_name" json:"lastName"`
	DisplayName string     `db:"display_name" json:"displayName"`
	WeightLb    *float64   `db:"weight_lb" json:"weightLb,omitempty"`
	HeightIn    *float64   `db:"height_in" json:"heightIn,omitempty"`
	Position    *string    `db:"position" json:"position,omitempty"`
	HeadshotURL *string    `db:"headshot_url" json:"headshotUrl,omitempty"`
	FranchiseID *uuid.UUID `db:"franchise_id" json:"franchiseId,omitempty"`
	IsActive    bool       `db:"is_active" json:"isActive"`
	Audit
}

type AthleteSeason struct {
	ID                uuid.UUID `db:"id" json:"id"`
	AthleteID         uuid.UUID `db:"athlete_id" json:"athleteId"`
	FranchiseSeasonID uuid.UUID `db:"franchise_season_id" json:"franchiseSeasonId"`
	SeasonYear        int       `db:"season_year" json:"seasonYear"`
	Jersey            *string   `db:"jersey" json:"jersey,omitempty"`
	Position          *string   `db:"position" json:"position,omitempty"`
	Audit
}

// CompetitionOdds is an incrementally updated entity: the provider re-issues
// the whole document on every line move, so a content fingerprint decides
// whether anything changed at all.
type CompetitionOdds struct {
	ID            uuid.UUID  `db:"id" json:"id"`
	CompetitionID uuid.UUID  `db:"competition_id" json:"competitionId"`
	BookName      string     `db:"book_name" json:"bookName"`
	Details       *string    `db:"details" json:"details,omitempty"`
	OverUnder     *float64   `db:"over_under" json:"overUnder,omitempty"`
	Spread        *float64   `db:"spread" json:"spread,omitempty"`
	ContentHash   string     `db:"content_hash" json:"contentHash"`
	Lines         []OddsLine `db:"-" json:"lines,omitempty"`
	Audit
}

// OddsLine is one priced side of a market. (Side, Phase) is the stable
// business key lines are merged on across re-fetches.
type OddsLine struct {
	ID        uuid.UUID `db:"id" json:"id"`
	OddsID    uuid.UUID `db:"odds_id" json:"oddsId"`
	Side      string    `db:"side" json:"side"`
	Phase     string    `db:"phase" json:"phase"`
	Value     *float64  `db:"value" json:"value,omitempty"`
	PriceUS   *string   `db:"price_us" json:"priceUs,omitempty"`
	Favorite  bool      `db:"favorite" json:"favorite"`
	Underdog  bool      `db:"underdog" json:"underdog"`
}

// AthleteSeasonStatistic rows are wholesale-replaced on every fetch; the
// provider does not support partial statistic updates.
type AthleteSeasonStatistic struct {
	ID              uuid.UUID `db:"id" json:"id"`
	AthleteSeasonID uuid.UUID `db:"athlete_season_id" json:"athleteSeasonId"`
	Category        string    `db:"category" json:"category"`
	StatKey         string    `db:"stat_key" json:"statKey"`
	Value           float64   `db:"value" json:"value"`
	DisplayValue    string    `db:"display_value" json:"displayValue"`
}
