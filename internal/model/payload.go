package model

import "time"

// Division values accepted by downstream product creation.
const (
	DivisionOpen = "Open"
	DivisionWTNB = "WTNB+"
)

// Season names derived from the season start date.
const (
	SeasonWinter = "Winter"
	SeasonSpring = "Spring"
	SeasonSummer = "Summer"
	SeasonFall   = "Fall"
)

// OptionalLeagueInfo carries the categorical extras that only apply to some
// sports. Types is the signup-style list (e.g. "Draft", "Buddy Sign-up").
type OptionalLeagueInfo struct {
	SportSubCategory string   `json:"sportSubCategory,omitempty"`
	SocialOrAdvanced string   `json:"socialOrAdvanced,omitempty"`
	Types            []string `json:"types,omitempty"`
	NumberOfWeeks    int      `json:"numberOfWeeks,omitempty"`
}

// ImportantDates holds every calendar field of the offering. Date-only values
// are anchored at 04:00 UTC (Eastern midnight); date-time values carry the
// parsed Eastern wall-clock time on the same fixed offset.
type ImportantDates struct {
	SeasonStartDate                *time.Time  `json:"seasonStartDate"`
	SeasonEndDate                  *time.Time  `json:"seasonEndDate"`
	OffDates                       []time.Time `json:"offDates"`
	NewPlayerOrientationDateTime   *time.Time  `json:"newPlayerOrientationDateTime,omitempty"`
	ScoutNightDateTime             *time.Time  `json:"scoutNightDateTime,omitempty"`
	OpeningPartyDate               *time.Time  `json:"openingPartyDate,omitempty"`
	ClosingPartyDate               *time.Time  `json:"closingPartyDate,omitempty"`
	RainDate                       *time.Time  `json:"rainDate,omitempty"`
	VetRegistrationStartDateTime   *time.Time  `json:"vetRegistrationStartDateTime,omitempty"`
	EarlyRegistrationStartDateTime *time.Time  `json:"earlyRegistrationStartDateTime,omitempty"`
	OpenRegistrationStartDateTime  *time.Time  `json:"openRegistrationStartDateTime,omitempty"`
}

// InventoryInfo is the pricing/capacity block of the payload.
type InventoryInfo struct {
	Price                           float64 `json:"price"`
	TotalInventory                  int     `json:"totalInventory"`
	NumberVetSpotsToReleaseAtGoLive int     `json:"numberVetSpotsToReleaseAtGoLive"`
}

// CanonicalPayload is the strictly-shaped result of one row parse, mapped 1:1
// onto the downstream product-creation request. Field names and nesting are a
// contract and must not change.
type CanonicalPayload struct {
	SportName            string             `json:"sportName"`
	DayOfPlay            string             `json:"dayOfPlay"`
	Division             string             `json:"division"`
	Season               string             `json:"season"`
	Year                 int                `json:"year"`
	Location             string             `json:"location"`
	OptionalLeagueInfo   OptionalLeagueInfo `json:"optionalLeagueInfo"`
	ImportantDates       ImportantDates     `json:"importantDates"`
	LeagueStartTime      string             `json:"leagueStartTime"`
	LeagueEndTime        string             `json:"leagueEndTime"`
	AlternativeStartTime string             `json:"alternativeStartTime,omitempty"`
	AlternativeEndTime   string             `json:"alternativeEndTime,omitempty"`
	InventoryInfo        InventoryInfo      `json:"inventoryInfo"`
}
