package parser

import (
	"testing"
	"time"
)

func TestParseRegistrationWindows_AllThree(t *testing.T) {
	t.Parallel()

	u := NewUnresolved("Kickball")
	got := ParseRegistrationWindows(
		"Early Registration opens 10/1/25 at 6pm",
		"Veteran registration 9/29/25 at 6pm\nRelease 25 vet spots at go-live",
		"Registration: 10/3/25 at 6pm through 10/12",
		120,
		refNow,
		u,
	)

	if got.Early == nil || !got.Early.Equal(time.Date(2025, time.October, 1, 22, 0, 0, 0, time.UTC)) {
		t.Fatalf("early: got %v", got.Early)
	}
	if got.Vet == nil || !got.Vet.Equal(time.Date(2025, time.September, 29, 22, 0, 0, 0, time.UTC)) {
		t.Fatalf("vet: got %v", got.Vet)
	}
	if got.Open == nil || !got.Open.Equal(time.Date(2025, time.October, 3, 22, 0, 0, 0, time.UTC)) {
		t.Fatalf("open: got %v", got.Open)
	}
	if got.VetSpots != 25 {
		t.Fatalf("vet spots: want 25 got %d", got.VetSpots)
	}
	for _, f := range []string{
		FieldEarlyRegistrationStartDateTime,
		FieldVetRegistrationStartDateTime,
		FieldOpenRegistrationStartDateTime,
		FieldNumberVetSpotsToReleaseAtGoLive,
	} {
		if u.Contains(f) {
			t.Fatalf("field %q should be resolved", f)
		}
	}
}

func TestParseRegistrationWindows_VetSpotsFallback(t *testing.T) {
	t.Parallel()

	u := NewUnresolved("Kickball")
	got := ParseRegistrationWindows("", "Vet registration opens 9/29/25 at 6pm", "", 64, refNow, u)

	// The date digits must not read as a count; fall back to total inventory.
	if got.VetSpots != 64 {
		t.Fatalf("vet spots: want 64 got %d", got.VetSpots)
	}
	if got.Early != nil || got.Open != nil {
		t.Fatalf("empty columns must stay nil")
	}
	if !u.Contains(FieldEarlyRegistrationStartDateTime) || !u.Contains(FieldOpenRegistrationStartDateTime) {
		t.Fatalf("empty columns must stay unresolved")
	}
}

func TestParseRegistrationWindows_EmptyEverything(t *testing.T) {
	t.Parallel()

	u := NewUnresolved("Kickball")
	got := ParseRegistrationWindows("", "", "", 0, refNow, u)

	if got.Early != nil || got.Vet != nil || got.Open != nil || got.VetSpots != 0 {
		t.Fatalf("expected all-empty result: %+v", got)
	}
	if !u.Contains(FieldNumberVetSpotsToReleaseAtGoLive) {
		t.Fatalf("vet spots should remain unresolved with no fallback")
	}
}

func TestParseWindow_StripsBoilerplate(t *testing.T) {
	t.Parallel()

	got := parseWindow("Registration opens October 3rd at 6pm until filled", refNow)
	if got == nil {
		t.Fatalf("expected a datetime")
	}
	want := time.Date(2025, time.October, 3, 22, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("want %v got %v", want, got)
	}
}
