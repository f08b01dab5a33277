package parser

import (
	"regexp"
	"strings"
)

// priceRe matches the first currency-like numeric substring ("$45",
// "$ 45.50", bare "45").
var priceRe = regexp.MustCompile(`\$?\s*(\d+(?:\.\d{1,2})?)`)

// ParsePrice extracts the numeric price substring from free text. The string
// form is kept to preserve the operator's formatting; empty means no match.
func ParsePrice(raw string) string {
	m := priceRe.FindStringSubmatch(raw)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}

// ParseInventoryCount extracts the first integer from the inventory cell.
func ParseInventoryCount(raw string) (int, bool) {
	return FirstInt(raw)
}
