package parser

// Canonical payload field names tracked by the unresolved set. These are the
// exact strings handed to the confirmation UI.
const (
	FieldDayOfPlay                       = "dayOfPlay"
	FieldDivision                        = "division"
	FieldSeason                          = "season"
	FieldYear                            = "year"
	FieldLocation                        = "location"
	FieldSportSubCategory                = "sportSubCategory"
	FieldSocialOrAdvanced                = "socialOrAdvanced"
	FieldTypes                           = "types"
	FieldSeasonStartDate                 = "seasonStartDate"
	FieldSeasonEndDate                   = "seasonEndDate"
	FieldOffDates                        = "offDates"
	FieldNewPlayerOrientationDateTime    = "newPlayerOrientationDateTime"
	FieldScoutNightDateTime              = "scoutNightDateTime"
	FieldOpeningPartyDate                = "openingPartyDate"
	FieldClosingPartyDate                = "closingPartyDate"
	FieldRainDate                        = "rainDate"
	FieldVetRegistrationStartDateTime    = "vetRegistrationStartDateTime"
	FieldEarlyRegistrationStartDateTime  = "earlyRegistrationStartDateTime"
	FieldOpenRegistrationStartDateTime   = "openRegistrationStartDateTime"
	FieldLeagueStartTime                 = "leagueStartTime"
	FieldLeagueEndTime                   = "leagueEndTime"
	FieldPrice                           = "price"
	FieldTotalInventory                  = "totalInventory"
	FieldNumberVetSpotsToReleaseAtGoLive = "numberVetSpotsToReleaseAtGoLive"
)

// comprehensiveFields is the master seed list, in the order the confirmation
// UI presents gaps.
var comprehensiveFields = []string{
	FieldDayOfPlay,
	FieldDivision,
	FieldSeason,
	FieldYear,
	FieldLocation,
	FieldSportSubCategory,
	FieldSocialOrAdvanced,
	FieldTypes,
	FieldSeasonStartDate,
	FieldSeasonEndDate,
	FieldOffDates,
	FieldNewPlayerOrientationDateTime,
	FieldScoutNightDateTime,
	FieldOpeningPartyDate,
	FieldClosingPartyDate,
	FieldRainDate,
	FieldVetRegistrationStartDateTime,
	FieldEarlyRegistrationStartDateTime,
	FieldOpenRegistrationStartDateTime,
	FieldLeagueStartTime,
	FieldLeagueEndTime,
	FieldPrice,
	FieldTotalInventory,
	FieldNumberVetSpotsToReleaseAtGoLive,
}

// sportExcludedFields is the sport-relevance matrix: fields that never apply
// to a sport are dropped at seed time and can never appear unresolved.
// Scout night and rain dates are Kickball-only; the ball sub-category is
// Dodgeball-only; Bowling has no skill split and no orientation.
var sportExcludedFields = map[string][]string{
	"Kickball": {
		FieldSportSubCategory,
	},
	"Dodgeball": {
		FieldScoutNightDateTime,
		FieldRainDate,
	},
	"Bowling": {
		FieldSportSubCategory,
		FieldScoutNightDateTime,
		FieldRainDate,
		FieldSocialOrAdvanced,
		FieldNewPlayerOrientationDateTime,
	},
	"Pickleball": {
		FieldSportSubCategory,
		FieldScoutNightDateTime,
		FieldRainDate,
	},
}

// defaultExcludedFields applies to sports absent from the matrix.
var defaultExcludedFields = []string{
	FieldSportSubCategory,
	FieldScoutNightDateTime,
	FieldRainDate,
}

// Unresolved is the per-row mutable set of field names still lacking a
// confident value. It is caller-owned and threaded through every parser; a
// field is removed exactly when its parser produced a non-empty value, and
// never re-added within one parse pass.
type Unresolved struct {
	order   []string
	present map[string]bool
}

// NewUnresolved seeds the set from the comprehensive list filtered by the
// sport-relevance matrix.
func NewUnresolved(sportName string) *Unresolved {
	excluded, ok := sportExcludedFields[sportName]
	if !ok {
		excluded = defaultExcludedFields
	}
	skip := make(map[string]bool, len(excluded))
	for _, f := range excluded {
		skip[f] = true
	}

	u := &Unresolved{present: make(map[string]bool, len(comprehensiveFields))}
	for _, f := range comprehensiveFields {
		if skip[f] {
			continue
		}
		u.order = append(u.order, f)
		u.present[f] = true
	}
	return u
}

// Resolve removes a field from the set. Resolving an absent field is a no-op,
// so parsers never need to consult the matrix themselves.
func (u *Unresolved) Resolve(field string) {
	if !u.present[field] {
		return
	}
	delete(u.present, field)
	for i, f := range u.order {
		if f == field {
			u.order = append(u.order[:i], u.order[i+1:]...)
			break
		}
	}
}

// Contains reports whether the field is still unresolved.
func (u *Unresolved) Contains(field string) bool {
	return u.present[field]
}

// Fields returns the remaining field names in seed order.
func (u *Unresolved) Fields() []string {
	out := make([]string, len(u.order))
	copy(out, u.order)
	return out
}

// Len returns the number of unresolved fields.
func (u *Unresolved) Len() int {
	return len(u.order)
}
