package parser

import (
	"regexp"
	"time"
)

var (
	regPrefixRe = regexp.MustCompile(`(?i)^\s*(?:early|veteran|vet)?\s*registration\s*(?:opens|begins|starts)?\s*:?\s*`)
	regSuffixRe = regexp.MustCompile(`(?i)\s*\b(?:through|until|thru)\b.*$`)

	vetSpotKeywords = []string{"vet", "inventory", "spot"}
)

// RegistrationWindows is the result of parsing the three registration-open
// columns plus the derived veteran spot count.
type RegistrationWindows struct {
	Early    *time.Time
	Vet      *time.Time
	Open     *time.Time
	VetSpots int
}

// ParseRegistrationWindows parses the early/veteran/open cells. Each column
// is stripped of boilerplate and parsed independently; the vet spot count
// comes from a number near a vet/inventory/spot keyword in the veteran
// column, falling back to the row's total inventory.
func ParseRegistrationWindows(earlyRaw, vetRaw, openRaw string, totalInventory int, now time.Time, u *Unresolved) RegistrationWindows {
	result := RegistrationWindows{
		Early: parseWindow(earlyRaw, now),
		Vet:   parseWindow(vetRaw, now),
		Open:  parseWindow(openRaw, now),
	}

	if result.Early != nil {
		u.Resolve(FieldEarlyRegistrationStartDateTime)
	}
	if result.Vet != nil {
		u.Resolve(FieldVetRegistrationStartDateTime)
	}
	if result.Open != nil {
		u.Resolve(FieldOpenRegistrationStartDateTime)
	}

	result.VetSpots = parseVetSpots(vetRaw, totalInventory)
	if result.VetSpots > 0 {
		u.Resolve(FieldNumberVetSpotsToReleaseAtGoLive)
	}

	return result
}

// parseWindow strips the boilerplate prefix/suffix and parses the remainder
// as a date with optional time of day.
func parseWindow(raw string, now time.Time) *time.Time {
	text := NormalizeSpace(raw)
	if text == "" {
		return nil
	}
	// Only the first line carries the open timestamp; later lines hold
	// spot-count notes.
	if lines := SplitLines(raw); len(lines) > 0 {
		text = lines[0]
	}
	text = regPrefixRe.ReplaceAllString(text, "")
	text = regSuffixRe.ReplaceAllString(text, "")
	return ParseFlexibleDateTimeFrom(text, now)
}

// parseVetSpots scans the veteran column for a count near a vet/inventory/
// spot keyword. Date and clock tokens are removed first so "opens 10/1 at
// 6pm" never reads as a count.
func parseVetSpots(vetRaw string, totalInventory int) int {
	for _, line := range SplitLines(vetRaw) {
		if !ContainsAny(line, vetSpotKeywords) {
			continue
		}
		cleaned := dateTokenRe.ReplaceAllString(line, "")
		cleaned = timeOfDayRe.ReplaceAllString(cleaned, "")
		if n, ok := FirstInt(cleaned); ok && n > 0 {
			return n
		}
	}
	return totalInventory
}
