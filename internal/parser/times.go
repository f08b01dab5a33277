package parser

import (
	"regexp"
	"strconv"
	"time"
)

// timeRangeRe matches one "H[:MM] am - H[:MM] pm" session.
var timeRangeRe = regexp.MustCompile(`(?i)(\d{1,2})(?::(\d{2}))?\s*(am|pm)\s*[-–—]\s*(\d{1,2})(?::(\d{2}))?\s*(am|pm)`)

// PlayTimes holds one or two play sessions. The date component of each value
// is a carrier (year 0); only hour and minute are meaningful.
type PlayTimes struct {
	Start1 time.Time
	End1   time.Time
	Start2 *time.Time
	End2   *time.Time
}

// ParseTimeRange parses a compact play-time string such as
// "8:00 PM - 11:00 PM", with an optional second session. Returns nil when the
// primary pattern does not match.
func ParseTimeRange(raw string) *PlayTimes {
	matches := timeRangeRe.FindAllStringSubmatch(raw, 2)
	if len(matches) == 0 {
		return nil
	}

	start1, end1, ok := sessionTimes(matches[0])
	if !ok {
		return nil
	}
	result := &PlayTimes{Start1: start1, End1: end1}

	if len(matches) > 1 {
		if start2, end2, ok := sessionTimes(matches[1]); ok {
			result.Start2 = &start2
			result.End2 = &end2
		}
	}
	return result
}

// sessionTimes converts one regex match into carrier start/end times.
func sessionTimes(m []string) (start, end time.Time, ok bool) {
	sh, sm, ok1 := clockParts(m[1], m[2], m[3])
	eh, em, ok2 := clockParts(m[4], m[5], m[6])
	if !ok1 || !ok2 {
		return time.Time{}, time.Time{}, false
	}
	return carrierTime(sh, sm), carrierTime(eh, em), true
}

func clockParts(hourStr, minuteStr, meridiem string) (hour, minute int, ok bool) {
	hour, _ = strconv.Atoi(hourStr)
	if minuteStr != "" {
		minute, _ = strconv.Atoi(minuteStr)
	}
	if hour < 1 || hour > 12 || minute > 59 {
		return 0, 0, false
	}
	return to24Hour(hour, meridiem), minute, true
}

func carrierTime(hour, minute int) time.Time {
	return time.Date(0, time.January, 1, hour, minute, 0, 0, time.UTC)
}

// FormatClock renders a carrier time the way the payload expects ("8:00 PM").
func FormatClock(t time.Time) string {
	return t.Format("3:04 PM")
}
