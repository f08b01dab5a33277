package parser

import "testing"

func TestParseTimeRange_SingleSession(t *testing.T) {
	t.Parallel()

	got := ParseTimeRange("8:00 PM - 11:00 PM")
	if got == nil {
		t.Fatalf("expected a match")
	}
	if FormatClock(got.Start1) != "8:00 PM" || FormatClock(got.End1) != "11:00 PM" {
		t.Fatalf("unexpected session: %s - %s", FormatClock(got.Start1), FormatClock(got.End1))
	}
	if got.Start2 != nil || got.End2 != nil {
		t.Fatalf("no second session expected")
	}
}

func TestParseTimeRange_DualSession(t *testing.T) {
	t.Parallel()

	got := ParseTimeRange("6:30 pm - 8:30 pm / 8:30 pm - 10:30 pm")
	if got == nil {
		t.Fatalf("expected a match")
	}
	if FormatClock(got.Start1) != "6:30 PM" || FormatClock(got.End1) != "8:30 PM" {
		t.Fatalf("unexpected first session: %s - %s", FormatClock(got.Start1), FormatClock(got.End1))
	}
	if got.Start2 == nil || got.End2 == nil {
		t.Fatalf("expected a second session")
	}
	if FormatClock(*got.Start2) != "8:30 PM" || FormatClock(*got.End2) != "10:30 PM" {
		t.Fatalf("unexpected second session: %s - %s", FormatClock(*got.Start2), FormatClock(*got.End2))
	}
}

func TestParseTimeRange_HourOnly(t *testing.T) {
	t.Parallel()

	got := ParseTimeRange("7pm-10pm")
	if got == nil {
		t.Fatalf("expected a match")
	}
	if got.Start1.Hour() != 19 || got.End1.Hour() != 22 {
		t.Fatalf("unexpected hours: %d - %d", got.Start1.Hour(), got.End1.Hour())
	}
}

func TestParseTimeRange_NoonAndMidnight(t *testing.T) {
	t.Parallel()

	got := ParseTimeRange("12:00 PM - 12:00 AM")
	if got == nil {
		t.Fatalf("expected a match")
	}
	if got.Start1.Hour() != 12 || got.End1.Hour() != 0 {
		t.Fatalf("unexpected hours: %d - %d", got.Start1.Hour(), got.End1.Hour())
	}
}

func TestParseTimeRange_NoMatch(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{"", "evenings", "8-11", "25pm - 26pm"} {
		if got := ParseTimeRange(raw); got != nil {
			t.Fatalf("%q: expected nil, got %+v", raw, got)
		}
	}
}
