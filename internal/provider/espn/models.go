// Package espn defines the provider document shapes the ingest pipeline
// deserializes. Only fields the processors map are declared; the raw
// document is fingerprinted separately for change detection.
package espn

import "encoding/json"

// Ref is a link to another provider document. The provider is inconsistent
// about its shape: a document's own top-level "$ref" is a bare string, while
// nested references are objects of the form {"$ref": "..."}. Both decode
// into Href.
type Ref struct {
	Href string `json:"$ref"`
}

func (r *Ref) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		return json.Unmarshal(data, &r.Href)
	}
	var obj struct {
		Href string `json:"$ref"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	r.Href = obj.Href
	return nil
}

func (r *Ref) Empty() bool {
	return r == nil || r.Href == ""
}

type FranchiseDoc struct {
	Ref          Ref    `json:"$ref"`
	Name         string `json:"name"`
	DisplayName  string `json:"displayName"`
	Abbreviation string `json:"abbreviation"`
	Location     string `json:"location"`
	IsActive     bool   `json:"isActive"`
}

type TeamSeasonDoc struct {
	Ref          Ref    `json:"$ref"`
	Franchise    *Ref   `json:"franchise"`
	Group        *Ref   `json:"groups"`
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation"`
	Location     string `json:"location"`
	IsActive     bool   `json:"isActive"`
	SeasonYear   int    `json:"season"`
}

type GroupSeasonDoc struct {
	Ref        Ref    `json:"$ref"`
	Name       string `json:"name"`
	ShortName  string `json:"shortName"`
	SeasonYear int    `json:"season"`
	Teams      *Ref   `json:"teams"`
}

type SeasonTypeWeekDoc struct {
	Ref        Ref    `json:"$ref"`
	SeasonYear int    `json:"season"`
	TypeCode   int    `json:"type"`
	Number     int    `json:"number"`
	StartDate  string `json:"startDate"`
	EndDate    string `json:"endDate"`
}

type EventDoc struct {
	Ref          Ref    `json:"$ref"`
	Name         string `json:"name"`
	ShortName    string `json:"shortName"`
	Date         string `json:"date"`
	SeasonYear   int    `json:"season"`
	Week         *Ref   `json:"week"`
	Competitions []Ref  `json:"competitions"`
}

type CompetitionDoc struct {
	Ref         Ref    `json:"$ref"`
	Date        string `json:"date"`
	NeutralSite bool   `json:"neutralSite"`
	Status      string `json:"status"`
	Competitors []Ref  `json:"competitors"`
	Odds        *Ref   `json:"odds"`
}

type CompetitorDoc struct {
	Ref         Ref    `json:"$ref"`
	Competition *Ref   `json:"competition"`
	Team        *Ref   `json:"team"`
	HomeAway    string `json:"homeAway"`
	Order       int    `json:"order"`
	Winner      *bool  `json:"winner"`
}

type AthleteDoc struct {
	Ref         Ref      `json:"$ref"`
	FirstName   string   `json:"firstName"`
	LastName    string   `json:"lastName"`
	DisplayName string   `json:"displayName"`
	Weight      *float64 `json:"weight"`
	Height      *float64 `json:"height"`
	IsActive    bool     `json:"active"`
	Position    *struct {
		Name string `json:"name"`
	} `json:"position"`
	Headshot *struct {
		Href string `json:"href"`
	} `json:"headshot"`
	Team *Ref `json:"team"`
}

type AthleteSeasonDoc struct {
	Ref        Ref     `json:"$ref"`
	Athlete    *Ref    `json:"athlete"`
	Team       *Ref    `json:"team"`
	SeasonYear int     `json:"season"`
	Jersey     *string `json:"jersey"`
	Position   *struct {
		Name string `json:"name"`
	} `json:"position"`
}

type OddsDoc struct {
	Ref       Ref           `json:"$ref"`
	BookName  string        `json:"provider"`
	Details   *string       `json:"details"`
	OverUnder *float64      `json:"overUnder"`
	Spread    *float64      `json:"spread"`
	Lines     []OddsLineDoc `json:"lines"`
}

type OddsLineDoc struct {
	Side     string   `json:"side"`
	Phase    string   `json:"phase"`
	Value    *float64 `json:"value"`
	PriceUS  *string  `json:"moneyLine"`
	Favorite bool     `json:"favorite"`
	Underdog bool     `json:"underdog"`
}

type AthleteStatisticsDoc struct {
	Ref    Ref               `json:"$ref"`
	Season *Ref              `json:"athleteSeason"`
	Splits []StatCategoryDoc `json:"splits"`
}

type StatCategoryDoc struct {
	Name  string    `json:"name"`
	Stats []StatDoc `json:"stats"`
}

type StatDoc struct {
	Name         string  `json:"name"`
	Value        float64 `json:"value"`
	DisplayValue string  `json:"displayValue"`
}
