package parser

import "testing"

func TestParsePrice(t *testing.T) {
	t.Parallel()

	cases := []struct {
		raw  string
		want string
	}{
		{"$45", "45"},
		{"Registration fee is $45 per person", "45"},
		{"$ 52.50 early bird", "52.50"},
		{"45 dollars", "45"},
		{"free", ""},
		{"", ""},
	}
	for _, c := range cases {
		if got := ParsePrice(c.raw); got != c.want {
			t.Fatalf("%q: want %q got %q", c.raw, c.want, got)
		}
	}
}

func TestParseInventoryCount(t *testing.T) {
	t.Parallel()

	if n, ok := ParseInventoryCount("120 players"); !ok || n != 120 {
		t.Fatalf("want 120, got %d (%v)", n, ok)
	}
	if _, ok := ParseInventoryCount("lots"); ok {
		t.Fatalf("expected no count")
	}
}
