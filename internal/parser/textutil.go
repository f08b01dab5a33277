package parser

import (
	"regexp"
	"strings"
)

var spaceRe = regexp.MustCompile(`\s+`)

// SplitLines breaks multi-line cell text into trimmed, non-empty lines.
func SplitLines(text string) []string {
	raw := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	lines := make([]string, 0, len(raw))
	for _, l := range raw {
		l = strings.TrimSpace(l)
		if l != "" {
			lines = append(lines, l)
		}
	}
	return lines
}

// NormalizeSpace trims the text and collapses internal whitespace runs to a
// single space.
func NormalizeSpace(text string) string {
	return spaceRe.ReplaceAllString(strings.TrimSpace(text), " ")
}

// ContainsAny reports whether the lowercased text contains any keyword.
// Keywords are expected lowercase.
func ContainsAny(text string, keywords []string) bool {
	lower := strings.ToLower(text)
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// MatchPattern reports whether text matches the regex pattern. Invalid
// patterns match nothing.
func MatchPattern(text, pattern string) bool {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return false
	}
	return re.MatchString(text)
}

// FirstInt extracts the first unsigned integer in the text, if any.
func FirstInt(text string) (int, bool) {
	m := firstIntRe.FindString(text)
	if m == "" {
		return 0, false
	}
	n := 0
	for _, c := range m {
		n = n*10 + int(c-'0')
	}
	return n, true
}

var firstIntRe = regexp.MustCompile(`\d+`)
