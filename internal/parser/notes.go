package parser

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	weekCountRe = regexp.MustCompile(`(?i)(\d+)[\s-]*weeks?\b`)

	offDateMarkers = []string{"skipping", "skip", "no games", "off"}
)

// noteDateKeywords anchors each special-event field to the prose keywords
// that introduce its date. Evaluated per line; first hit per field wins.
var noteDateKeywords = []struct {
	field    string
	keywords []string
	withTime bool
}{
	{FieldNewPlayerOrientationDateTime, []string{"orientation"}, true},
	{FieldScoutNightDateTime, []string{"scout night", "scout-night"}, true},
	{FieldOpeningPartyDate, []string{"opening party"}, false},
	{FieldClosingPartyDate, []string{"closing party"}, false},
	{FieldRainDate, []string{"rain date", "rain-date", "raindate"}, false},
}

// Notes is the result of scanning the free-form notes column.
type Notes struct {
	OrientationDateTime *time.Time
	ScoutNightDateTime  *time.Time
	OpeningPartyDate    *time.Time
	ClosingPartyDate    *time.Time
	RainDate            *time.Time
	OffDates            []time.Time
	WeekCount           int
}

// ParseNotes scans prose notes for keyword-anchored dates, an off-dates list,
// and a week count. Each extraction is independent; a missing keyword leaves
// its field unresolved and is never an error.
func ParseNotes(raw string, now time.Time, u *Unresolved) Notes {
	var result Notes
	lines := SplitLines(raw)

	for _, kw := range noteDateKeywords {
		date := findKeywordDate(lines, kw.keywords, kw.withTime, now)
		if date == nil {
			continue
		}
		switch kw.field {
		case FieldNewPlayerOrientationDateTime:
			result.OrientationDateTime = date
		case FieldScoutNightDateTime:
			result.ScoutNightDateTime = date
		case FieldOpeningPartyDate:
			result.OpeningPartyDate = date
		case FieldClosingPartyDate:
			result.ClosingPartyDate = date
		case FieldRainDate:
			result.RainDate = date
		}
		u.Resolve(kw.field)
	}

	result.OffDates = parseOffDates(lines, now)
	if len(result.OffDates) > 0 {
		u.Resolve(FieldOffDates)
	}

	if m := weekCountRe.FindStringSubmatch(raw); m != nil {
		result.WeekCount, _ = strconv.Atoi(m[1])
	}

	return result
}

// findKeywordDate locates the first line containing one of the keywords and
// parses the nearest date token after it.
func findKeywordDate(lines []string, keywords []string, withTime bool, now time.Time) *time.Time {
	for _, line := range lines {
		lower := strings.ToLower(line)
		for _, kw := range keywords {
			idx := strings.Index(lower, kw)
			if idx < 0 {
				continue
			}
			tail := line[idx+len(kw):]
			token := dateTokenRe.FindString(tail)
			if token == "" {
				// The date may precede the keyword ("10/3 opening party").
				token = dateTokenRe.FindString(line)
			}
			if token == "" {
				continue
			}
			if withTime {
				// Keep the tail so a trailing time of day is picked up too.
				if dt := ParseFlexibleDateTimeFrom(tail, now); dt != nil {
					return dt
				}
			}
			return ParseFlexibleDateFrom(token, now)
		}
	}
	return nil
}

// parseOffDates collects every date token on lines flagged with an off-week
// marker ("skipping 11/27 and 12/25").
func parseOffDates(lines []string, now time.Time) []time.Time {
	var dates []time.Time
	for _, line := range lines {
		marker := offDateMarkerIndex(line)
		if marker < 0 {
			continue
		}
		for _, token := range dateTokenRe.FindAllString(line[marker:], -1) {
			if d := ParseFlexibleDateFrom(token, now); d != nil {
				dates = append(dates, *d)
			}
		}
	}
	return dates
}

// offDateMarkerIndex returns the position just past the first off-week marker
// in the line, or -1. "off" only counts as a whole word so "playoff" and
// "drop-off" never trigger it.
func offDateMarkerIndex(line string) int {
	lower := strings.ToLower(line)
	for _, marker := range offDateMarkers {
		if marker == "off" {
			if loc := offWordRe.FindStringIndex(lower); loc != nil {
				return loc[1]
			}
			continue
		}
		if idx := strings.Index(lower, marker); idx >= 0 {
			return idx + len(marker)
		}
	}
	return -1
}

var offWordRe = regexp.MustCompile(`(?i)\boff\b`)
