package parser

// Canonical venue strings accepted by downstream product creation.
const (
	LocationDewittClinton = "Dewitt Clinton Park"
	LocationMcCarren      = "McCarren Park"
	LocationGotham        = "Gotham Pickleball"
	LocationFrames        = "Frames Bowling Lounge"
	LocationJohnJay       = "John Jay College"
	LocationPier40        = "Pier 40"
)

// locationAliases maps the keyword forms humans type into the fixed canon.
// Evaluated in order; first keyword hit wins.
var locationAliases = []struct {
	keywords  []string
	canonical string
}{
	{[]string{"dewitt", "de witt", "clinton"}, LocationDewittClinton},
	{[]string{"mccarren", "mc carren"}, LocationMcCarren},
	{[]string{"gotham"}, LocationGotham},
	{[]string{"frames", "bowling lounge"}, LocationFrames},
	{[]string{"john jay"}, LocationJohnJay},
	{[]string{"pier 40", "pier40"}, LocationPier40},
}

// CanonicalLocation maps free-text venue text to its canonical string.
func CanonicalLocation(raw string) (string, bool) {
	text := NormalizeSpace(raw)
	if text == "" {
		return "", false
	}
	for _, alias := range locationAliases {
		if ContainsAny(text, alias.keywords) {
			return alias.canonical, true
		}
	}
	return "", false
}

// ParseLocation canonicalizes the location cell and resolves the field.
func ParseLocation(raw string, u *Unresolved) string {
	loc, ok := CanonicalLocation(raw)
	if !ok {
		return ""
	}
	u.Resolve(FieldLocation)
	return loc
}
