package astroglide_test

import (
	"testing"
	"time"

	"github.com/thurmanmarka/astroglide"
)

func TestLunarPhasesInMonth_QuarterSpacing(t *testing.T) {
	locLondon, err := time.LoadLocation("Europe/London")
	if err != nil {
		t.Fatalf("failed to load Europe/London: %v", err)
	}

	month := time.Date(2026, time.January, 1, 0, 0, 0, 0, locLondon)
	phases := astroglide.LunarPhasesInMonth(month)

	if len(phases) < 3 {
		t.Fatalf("expected at least 3 phase instants in a 31-day month, got %d", len(phases))
	}

	for i := 1; i < len(phases); i++ {
		gap := phases[i].Time.Sub(phases[i-1].Time).Hours() / 24.0
		// Consecutive named phases (new -> first quarter -> full -> last
		// quarter -> new) are spaced about a quarter-synodic-month apart
		// (~7.38 days), with real variation from lunar eccentricity.
		if gap < 5.0 || gap > 10.0 {
			t.Errorf("phase gap #%d = %.2f days, want roughly 7.38 (5-10 range)", i, gap)
		}
	}

	for _, p := range phases {
		if p.Time.Location().String() != locLondon.String() {
			t.Errorf("phase instant %v not converted to the requested location", p.Time)
		}
	}
}

func TestCalendar_CoversRequestedRange(t *testing.T) {
	locPHX, _ := time.LoadLocation("America/Phoenix")
	phoenix := astroglide.Coordinates{Lat: 33.4484, Lon: -112.0740}

	start := time.Date(2025, time.November, 28, 0, 0, 0, 0, locPHX)
	end := time.Date(2025, time.November, 30, 0, 0, 0, 0, locPHX)

	rows, err := astroglide.Calendar(phoenix, start, end)
	if err != nil {
		t.Fatalf("Calendar error: %v", err)
	}

	if len(rows) != 3 {
		t.Fatalf("expected 3 rows for a 3-day inclusive range, got %d", len(rows))
	}

	for i, r := range rows {
		wantDay := start.AddDate(0, 0, i).Day()
		if r.Date.Day() != wantDay {
			t.Errorf("row %d: date %v, want day %d", i, r.Date, wantDay)
		}
		if sunrise, ok := r.SolarEvents[astroglide.SolarSunrise]; !ok || sunrise.IsZero() {
			t.Errorf("row %d: missing sunrise time", i)
		}
		if r.NoonIllumination < 0 || r.NoonIllumination > 1 {
			t.Errorf("row %d: illuminated fraction %.3f out of [0,1]", i, r.NoonIllumination)
		}
	}
}

func TestCalendar_InvalidDateRange(t *testing.T) {
	locPHX, _ := time.LoadLocation("America/Phoenix")
	phoenix := astroglide.Coordinates{Lat: 33.4484, Lon: -112.0740}

	start := time.Date(2025, time.November, 30, 0, 0, 0, 0, locPHX)
	end := time.Date(2025, time.November, 28, 0, 0, 0, 0, locPHX)

	if _, err := astroglide.Calendar(phoenix, start, end); err == nil {
		t.Fatal("expected an error when end precedes start")
	}
}
