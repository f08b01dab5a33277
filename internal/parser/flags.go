package parser

import (
	"regexp"
	"strings"

	"github.com/barswebadmin/BigAppleRecSports-sub001/internal/model"
)

// Signup-style values accepted by downstream product creation.
const (
	TypeDraft      = "Draft"
	TypeNewbie     = "Sign up with a newbie (randomized otherwise)"
	TypeRandomized = "Randomized Teams"
	TypeBuddy      = "Buddy Sign-up"
)

const mixedSocialAdvanced = "Mixed Social/Advanced"

var dayNames = map[string]string{
	"mon": "Monday", "tue": "Tuesday", "wed": "Wednesday",
	"thu": "Thursday", "fri": "Friday", "sat": "Saturday", "sun": "Sunday",
}

var (
	ballSmallKeywords = []string{"small", "no-sting", "no sting"}
	ballBigKeywords   = []string{"big", "8.5"}
	ballFoamKeywords  = []string{"foam"}
	ballKeywords      = []string{"small", "big", "foam", "8.5", "no-sting", "no sting"}

	socialKeywords   = []string{"social"}
	advancedKeywords = []string{"advanced", "competitive", "intermediate"}

	newbieRe = regexp.MustCompile(`(?i)with.*new`)
)

// Flags is the result of parsing the multi-line details column.
type Flags struct {
	DayOfPlay        string
	Division         string
	SocialOrAdvanced string
	SportSubCategory string
	Types            []string
}

// detailLines is the immutable working list of candidate lines. Rules mark
// indices consumed instead of mutating the list, so rule order stays the only
// source of precedence.
type detailLines struct {
	lines    []string
	consumed []bool
}

func newDetailLines(text string) *detailLines {
	lines := SplitLines(text)
	return &detailLines{lines: lines, consumed: make([]bool, len(lines))}
}

// find returns the first unconsumed line index satisfying pred, or -1.
func (d *detailLines) find(pred func(string) bool) int {
	for i, l := range d.lines {
		if !d.consumed[i] && pred(l) {
			return i
		}
	}
	return -1
}

// remainingText joins the unconsumed lines for whole-text keyword scans.
func (d *detailLines) remainingText() string {
	var parts []string
	for i, l := range d.lines {
		if !d.consumed[i] {
			parts = append(parts, l)
		}
	}
	return strings.Join(parts, "\n")
}

// ParseFlags extracts day, division, skill level, ball sub-category, and
// signup types from the details column. Rules run in priority order; each
// consumes its matched line so later rules never re-match the same text.
func ParseFlags(details, sportName string, u *Unresolved) Flags {
	var result Flags
	d := newDetailLines(details)

	// Day of play: always the first line.
	if len(d.lines) > 0 {
		if day, ok := NormalizeDayName(d.lines[0]); ok {
			result.DayOfPlay = day
			d.consumed[0] = true
			u.Resolve(FieldDayOfPlay)
		}
	}

	// Division: wtnb beats open within a line; first matching line wins.
	if i := d.find(func(l string) bool {
		return ContainsAny(l, []string{"wtnb", "open"})
	}); i >= 0 {
		if ContainsAny(d.lines[i], []string{"wtnb"}) {
			result.Division = model.DivisionWTNB
		} else {
			result.Division = model.DivisionOpen
		}
		d.consumed[i] = true
		u.Resolve(FieldDivision)
	}

	result.SocialOrAdvanced = parseSocialOrAdvanced(d, sportName)
	if result.SocialOrAdvanced != "" {
		u.Resolve(FieldSocialOrAdvanced)
	}

	// Ball sub-category re-scans after the skill rule on purpose: for
	// Dodgeball both values usually live on the same line.
	if sportName == "Dodgeball" {
		result.SportSubCategory = parseBallSubCategory(d)
		if result.SportSubCategory != "" {
			u.Resolve(FieldSportSubCategory)
		}
	}

	result.Types = parseSignupTypes(d.remainingText())
	if len(result.Types) > 0 {
		u.Resolve(FieldTypes)
	}

	return result
}

// NormalizeDayName resolves day abbreviations ("Tues", "THURSDAY") to the
// canonical day-of-week string.
func NormalizeDayName(raw string) (string, bool) {
	key := strings.ToLower(NormalizeSpace(raw))
	key = strings.TrimSuffix(key, ".")
	if len(key) < 3 {
		return "", false
	}
	day, ok := dayNames[key[:3]]
	if !ok {
		return "", false
	}
	// Reject lines that merely start with a day-like word ("monthly fee").
	full := strings.ToLower(day)
	if key != full && !strings.HasPrefix(full, key) && !isDayAbbrev(key) {
		return "", false
	}
	return day, true
}

// isDayAbbrev accepts the common shorthand forms that are not prefixes of the
// full name ("tues", "thurs", "weds").
func isDayAbbrev(key string) bool {
	switch key {
	case "tues", "thurs", "weds":
		return true
	}
	return false
}

// parseSocialOrAdvanced finds the skill-level line. For Dodgeball a ball-type
// line doubles as the skill text and stays unconsumed so the sub-category
// rule can still read it; otherwise the matched line is consumed.
func parseSocialOrAdvanced(d *detailLines, sportName string) string {
	if sportName == "Dodgeball" {
		if i := d.find(func(l string) bool { return ContainsAny(l, ballKeywords) }); i >= 0 {
			return NormalizeSpace(d.lines[i])
		}
	}

	i := d.find(func(l string) bool {
		return ContainsAny(l, socialKeywords) || ContainsAny(l, advancedKeywords)
	})
	if i < 0 {
		return ""
	}
	line := d.lines[i]
	d.consumed[i] = true
	if ContainsAny(line, socialKeywords) && ContainsAny(line, advancedKeywords) {
		return mixedSocialAdvanced
	}
	return NormalizeSpace(line)
}

// parseBallSubCategory maps a ball-type keyword line to the canonical
// sub-category and consumes it.
func parseBallSubCategory(d *detailLines) string {
	i := d.find(func(l string) bool { return ContainsAny(l, ballKeywords) })
	if i < 0 {
		return ""
	}
	line := d.lines[i]
	d.consumed[i] = true
	switch {
	case ContainsAny(line, ballSmallKeywords):
		return "Small Ball"
	case ContainsAny(line, ballBigKeywords):
		return "Big Ball"
	case ContainsAny(line, ballFoamKeywords):
		return "Foam"
	}
	return ""
}

// parseSignupTypes applies the signup-style priority cascade to the remaining
// text: draft is exclusive, then the newbie pattern, then randomized/buddy
// detected independently.
func parseSignupTypes(text string) []string {
	if ContainsAny(text, []string{"draft"}) {
		return []string{TypeDraft}
	}
	if newbieRe.MatchString(text) {
		return []string{TypeNewbie}
	}

	var types []string
	if ContainsAny(text, []string{"random"}) {
		types = append(types, TypeRandomized)
	}
	if ContainsAny(text, []string{"buddy", "friend", "partner"}) {
		types = append(types, TypeBuddy)
	}
	return types
}
