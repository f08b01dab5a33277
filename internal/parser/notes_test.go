package parser

import (
	"testing"
	"time"
)

func TestParseNotes_OrientationWithTime(t *testing.T) {
	t.Parallel()

	u := NewUnresolved("Kickball")
	got := ParseNotes("New player orientation on 10/8 at 6:30 PM", refNow, u)

	if got.OrientationDateTime == nil {
		t.Fatalf("expected an orientation datetime")
	}
	want := time.Date(2025, time.October, 8, 22, 30, 0, 0, time.UTC)
	if !got.OrientationDateTime.Equal(want) {
		t.Fatalf("want %v got %v", want, got.OrientationDateTime)
	}
	if u.Contains(FieldNewPlayerOrientationDateTime) {
		t.Fatalf("orientation should be resolved")
	}
}

func TestParseNotes_PartyAndRainDates(t *testing.T) {
	t.Parallel()

	u := NewUnresolved("Kickball")
	notes := "Opening party Oct 17th.\nClosing party 12/12.\nRain date 12/13."
	got := ParseNotes(notes, refNow, u)

	if got.OpeningPartyDate == nil || !got.OpeningPartyDate.Equal(AnchorDate(2025, time.October, 17)) {
		t.Fatalf("opening party: got %v", got.OpeningPartyDate)
	}
	if got.ClosingPartyDate == nil || !got.ClosingPartyDate.Equal(AnchorDate(2025, time.December, 12)) {
		t.Fatalf("closing party: got %v", got.ClosingPartyDate)
	}
	if got.RainDate == nil || !got.RainDate.Equal(AnchorDate(2025, time.December, 13)) {
		t.Fatalf("rain date: got %v", got.RainDate)
	}
}

func TestParseNotes_OffDatesAndWeekCount(t *testing.T) {
	t.Parallel()

	u := NewUnresolved("Kickball")
	got := ParseNotes("8 week season. Skipping 11/27 and 12/25.", refNow, u)

	if got.WeekCount != 8 {
		t.Fatalf("weeks: want 8 got %d", got.WeekCount)
	}
	if len(got.OffDates) != 2 {
		t.Fatalf("off dates: want 2 got %v", got.OffDates)
	}
	if !got.OffDates[0].Equal(AnchorDate(2025, time.November, 27)) ||
		!got.OffDates[1].Equal(AnchorDate(2025, time.December, 25)) {
		t.Fatalf("unexpected off dates: %v", got.OffDates)
	}
	if u.Contains(FieldOffDates) {
		t.Fatalf("offDates should be resolved")
	}
}

func TestParseNotes_OffWordBoundary(t *testing.T) {
	t.Parallel()

	u := NewUnresolved("Kickball")
	got := ParseNotes("Playoffs start 12/18.", refNow, u)

	if len(got.OffDates) != 0 {
		t.Fatalf("playoffs must not read as off-dates: %v", got.OffDates)
	}
	if !u.Contains(FieldOffDates) {
		t.Fatalf("offDates should remain unresolved")
	}
}

func TestParseNotes_Empty(t *testing.T) {
	t.Parallel()

	u := NewUnresolved("Kickball")
	before := u.Len()
	got := ParseNotes("", refNow, u)

	if got.OrientationDateTime != nil || got.RainDate != nil || len(got.OffDates) != 0 || got.WeekCount != 0 {
		t.Fatalf("expected empty notes result: %+v", got)
	}
	if u.Len() != before {
		t.Fatalf("unresolved set should be unchanged")
	}
}

func TestParseNotes_KeywordWithoutDate(t *testing.T) {
	t.Parallel()

	u := NewUnresolved("Kickball")
	got := ParseNotes("Rain date TBD", refNow, u)

	if got.RainDate != nil {
		t.Fatalf("expected nil rain date, got %v", got.RainDate)
	}
	if !u.Contains(FieldRainDate) {
		t.Fatalf("rainDate should remain unresolved")
	}
}
