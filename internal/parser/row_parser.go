package parser

import (
	"fmt"
	"strconv"
	"time"

	"github.com/barswebadmin/BigAppleRecSports-sub001/internal/model"
)

// ParseRowResult pairs the canonical payload with the fields no parser could
// populate for this row.
type ParseRowResult struct {
	Payload          model.CanonicalPayload `json:"payload"`
	UnresolvedFields []string               `json:"unresolvedFields"`
}

// ParseRow parses one spreadsheet row into the canonical payload. The only
// error is a structurally invalid row (missing column key); malformed cell
// content surfaces as unresolved fields, never as an error.
func ParseRow(cells model.RowInput, sportName string) (*ParseRowResult, error) {
	return ParseRowAt(cells, sportName, time.Now())
}

// ParseRowAt is ParseRow with an explicit reference time, making the whole
// parse a pure function of the row contents.
func ParseRowAt(cells model.RowInput, sportName string, now time.Time) (*ParseRowResult, error) {
	if err := validateColumns(cells); err != nil {
		return nil, err
	}

	u := NewUnresolved(sportName)

	season := ParseSeasonDates(cells[model.ColSeasonStart], cells[model.ColSeasonEnd], now, u)
	flags := ParseFlags(cells[model.ColDayDetails], sportName, u)
	notes := ParseNotes(cells[model.ColNotes], now, u)
	location := ParseLocation(cells[model.ColLocation], u)

	payload := model.CanonicalPayload{
		SportName: sportName,
		DayOfPlay: flags.DayOfPlay,
		Division:  flags.Division,
		Season:    season.Season,
		Year:      season.Year,
		Location:  location,
		OptionalLeagueInfo: model.OptionalLeagueInfo{
			SportSubCategory: flags.SportSubCategory,
			SocialOrAdvanced: flags.SocialOrAdvanced,
			Types:            flags.Types,
			NumberOfWeeks:    notes.WeekCount,
		},
		ImportantDates: model.ImportantDates{
			SeasonStartDate:              season.Start,
			SeasonEndDate:                season.End,
			OffDates:                     notes.OffDates,
			NewPlayerOrientationDateTime: notes.OrientationDateTime,
			ScoutNightDateTime:           notes.ScoutNightDateTime,
			OpeningPartyDate:             notes.OpeningPartyDate,
			ClosingPartyDate:             notes.ClosingPartyDate,
			RainDate:                     notes.RainDate,
		},
	}

	if times := ParseTimeRange(cells[model.ColPlayTimes]); times != nil {
		payload.LeagueStartTime = FormatClock(times.Start1)
		payload.LeagueEndTime = FormatClock(times.End1)
		u.Resolve(FieldLeagueStartTime)
		u.Resolve(FieldLeagueEndTime)
		if times.Start2 != nil && times.End2 != nil {
			payload.AlternativeStartTime = FormatClock(*times.Start2)
			payload.AlternativeEndTime = FormatClock(*times.End2)
		}
	}

	if price := ParsePrice(cells[model.ColPrice]); price != "" {
		if v, err := strconv.ParseFloat(price, 64); err == nil {
			payload.InventoryInfo.Price = v
			u.Resolve(FieldPrice)
		}
	}

	if count, ok := ParseInventoryCount(cells[model.ColTotalInventory]); ok {
		payload.InventoryInfo.TotalInventory = count
		u.Resolve(FieldTotalInventory)
	}

	reg := ParseRegistrationWindows(
		cells[model.ColEarlyReg],
		cells[model.ColVetReg],
		cells[model.ColOpenReg],
		payload.InventoryInfo.TotalInventory,
		now,
		u,
	)
	payload.ImportantDates.EarlyRegistrationStartDateTime = reg.Early
	payload.ImportantDates.VetRegistrationStartDateTime = reg.Vet
	payload.ImportantDates.OpenRegistrationStartDateTime = reg.Open
	payload.InventoryInfo.NumberVetSpotsToReleaseAtGoLive = reg.VetSpots

	return &ParseRowResult{
		Payload:          payload,
		UnresolvedFields: u.Fields(),
	}, nil
}

// validateColumns fails fast on a caller contract violation: every required
// column key must be present, even with an empty value.
func validateColumns(cells model.RowInput) error {
	if cells == nil {
		return fmt.Errorf("row cells are nil")
	}
	for _, col := range model.RequiredColumns {
		if _, ok := cells[col]; !ok {
			return fmt.Errorf("row is missing required column %q", col)
		}
	}
	return nil
}
