package parser

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/barswebadmin/BigAppleRecSports-sub001/internal/model"
)

// anchorHourUTC encodes Eastern midnight: every date-only value is stored at
// 04:00 UTC on the intended calendar day so callers compare dates by equality.
const anchorHourUTC = 4

var monthNames = map[string]time.Month{
	"january": time.January, "february": time.February, "march": time.March,
	"april": time.April, "may": time.May, "june": time.June,
	"july": time.July, "august": time.August, "september": time.September,
	"october": time.October, "november": time.November, "december": time.December,
}

var (
	ordinalSuffixRe = regexp.MustCompile(`(?i)(\d{1,2})(st|nd|rd|th)\b`)
	numericDateRe   = regexp.MustCompile(`^(\d{1,2})[/-](\d{1,2})(?:[/-](\d{2,4}))?$`)
	monthNameDateRe = regexp.MustCompile(`(?i)^([a-z]+)\.?\s+(\d{1,2})(?:,?\s+(\d{4}))?$`)
	timeOfDayRe     = regexp.MustCompile(`(?i)\b(\d{1,2})(?::(\d{2}))?\s*(am|pm|a\.m\.|p\.m\.)`)

	// dateTokenRe locates a date-like substring inside prose, numeric or
	// month-name form, with optional ordinal suffix and year.
	dateTokenRe = regexp.MustCompile(`(?i)\b(?:\d{1,2}[/-]\d{1,2}(?:[/-]\d{2,4})?|(?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\.?\s+\d{1,2}(?:st|nd|rd|th)?(?:,?\s+\d{4})?)\b`)
)

// AnchorDate builds the canonical UTC instant for a calendar day.
func AnchorDate(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, anchorHourUTC, 0, 0, 0, time.UTC)
}

// MonthByName resolves a month name or abbreviation of at least three
// letters ("Oct", "Sept", "october."). The token must be a prefix of the full
// name, so "Octember" is rejected.
func MonthByName(name string) (time.Month, bool) {
	key := strings.ToLower(strings.TrimSuffix(strings.TrimSpace(name), "."))
	if len(key) < 3 {
		return 0, false
	}
	for full, m := range monthNames {
		if strings.HasPrefix(full, key) {
			return m, true
		}
	}
	return 0, false
}

// NormalizeTwoDigitYear maps 00-30 to the 2000s and 31-99 to the 1900s.
// Four-digit years pass through.
func NormalizeTwoDigitYear(year int) int {
	if year >= 100 {
		return year
	}
	if year <= 30 {
		return 2000 + year
	}
	return 1900 + year
}

// inferYear picks the year for a yearless date: the current year unless that
// calendar day already passed, in which case next year. Rows describe upcoming
// seasons; a back-filled past season will infer one year too far (known quirk,
// kept as-is).
func inferYear(month time.Month, day int, now time.Time) int {
	today := AnchorDate(now.Year(), now.Month(), now.Day())
	candidate := AnchorDate(now.Year(), month, day)
	if candidate.Before(today) {
		return now.Year() + 1
	}
	return now.Year()
}

// ParseFlexibleDate parses a single free-text date token relative to the
// current date. Unparseable input returns nil, never an error.
func ParseFlexibleDate(raw string) *time.Time {
	return ParseFlexibleDateFrom(raw, time.Now())
}

// ParseFlexibleDateFrom is ParseFlexibleDate with an explicit reference time
// for year inference, so callers and tests stay deterministic.
func ParseFlexibleDateFrom(raw string, now time.Time) *time.Time {
	token := NormalizeSpace(ordinalSuffixRe.ReplaceAllString(raw, "$1"))
	if token == "" {
		return nil
	}

	if m := numericDateRe.FindStringSubmatch(token); m != nil {
		month, _ := strconv.Atoi(m[1])
		day, _ := strconv.Atoi(m[2])
		year := 0
		if m[3] != "" {
			y, _ := strconv.Atoi(m[3])
			year = NormalizeTwoDigitYear(y)
		}
		return buildDate(year, time.Month(month), day, now)
	}

	if m := monthNameDateRe.FindStringSubmatch(token); m != nil {
		month, ok := MonthByName(m[1])
		if !ok {
			return nil
		}
		day, _ := strconv.Atoi(m[2])
		year := 0
		if m[3] != "" {
			year, _ = strconv.Atoi(m[3])
		}
		return buildDate(year, month, day, now)
	}

	return nil
}

// buildDate validates the calendar day and anchors it, inferring the year
// when absent.
func buildDate(year int, month time.Month, day int, now time.Time) *time.Time {
	if month < time.January || month > time.December || day < 1 || day > 31 {
		return nil
	}
	if year == 0 {
		year = inferYear(month, day, now)
	}
	d := AnchorDate(year, month, day)
	// time.Date normalizes overflow (e.g. Feb 30); reject anything that moved.
	if d.Day() != day || d.Month() != month {
		return nil
	}
	return &d
}

// ParseFlexibleDateTime parses a date token with an optional time of day
// ("10/1/25 at 6pm", "October 1 @ 6:30 PM"). Without a time the result is the
// plain 04:00 anchor; with one, the Eastern wall-clock time is added on the
// same fixed offset.
func ParseFlexibleDateTime(raw string) *time.Time {
	return ParseFlexibleDateTimeFrom(raw, time.Now())
}

// ParseFlexibleDateTimeFrom is ParseFlexibleDateTime with an explicit
// reference time.
func ParseFlexibleDateTimeFrom(raw string, now time.Time) *time.Time {
	text := NormalizeSpace(raw)
	if text == "" {
		return nil
	}

	hour, minute, hasTime := extractTimeOfDay(text)
	if hasTime {
		text = NormalizeSpace(timeOfDayRe.ReplaceAllString(text, ""))
		text = strings.TrimRight(text, " @,")
		for _, conj := range []string{" at", " @", " on"} {
			text = strings.TrimSuffix(text, conj)
		}
	}

	token := dateTokenRe.FindString(text)
	if token == "" {
		return nil
	}
	d := ParseFlexibleDateFrom(token, now)
	if d == nil {
		return nil
	}
	if !hasTime {
		return d
	}
	dt := d.Add(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute)
	return &dt
}

// extractTimeOfDay pulls the first 12-hour clock reference out of the text.
func extractTimeOfDay(text string) (hour, minute int, ok bool) {
	m := timeOfDayRe.FindStringSubmatch(text)
	if m == nil {
		return 0, 0, false
	}
	hour, _ = strconv.Atoi(m[1])
	if m[2] != "" {
		minute, _ = strconv.Atoi(m[2])
	}
	if hour < 1 || hour > 12 || minute > 59 {
		return 0, 0, false
	}
	return to24Hour(hour, m[3]), minute, true
}

// to24Hour converts a 12-hour clock hour with its am/pm marker.
func to24Hour(hour int, meridiem string) int {
	pm := strings.HasPrefix(strings.ToLower(meridiem), "p")
	if pm && hour != 12 {
		return hour + 12
	}
	if !pm && hour == 12 {
		return 0
	}
	return hour
}

// SeasonForMonth buckets a calendar month into its league season.
func SeasonForMonth(m time.Month) string {
	switch {
	case m == time.December || m <= time.February:
		return model.SeasonWinter
	case m <= time.May:
		return model.SeasonSpring
	case m <= time.August:
		return model.SeasonSummer
	default:
		return model.SeasonFall
	}
}

// SeasonDates is the result of parsing the start/end date pair.
type SeasonDates struct {
	Start  *time.Time
	End    *time.Time
	Season string
	Year   int
}

// ParseSeasonDates parses the season start/end cells. Season and year derive
// from the start date alone; each of the four fields resolves independently,
// and nothing is guessed when a side fails to parse.
func ParseSeasonDates(startRaw, endRaw string, now time.Time, u *Unresolved) SeasonDates {
	result := SeasonDates{
		Start: ParseFlexibleDateFrom(startRaw, now),
		End:   ParseFlexibleDateFrom(endRaw, now),
	}

	if result.Start != nil {
		result.Season = SeasonForMonth(result.Start.Month())
		result.Year = result.Start.Year()
		u.Resolve(FieldSeasonStartDate)
		u.Resolve(FieldSeason)
		u.Resolve(FieldYear)
	}
	if result.End != nil {
		u.Resolve(FieldSeasonEndDate)
	}
	return result
}
