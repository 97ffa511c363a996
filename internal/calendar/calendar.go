// Package calendar implements the Calendar Aggregator of spec §4.8: for
// each civil date in a range, it drives the Solar Event Solver (nine
// kinds), the Lunar Event Solver (rise/transit/set), and attributes noon
// illumination/phase angle and any Lunar Phase Solver instants that land
// on that civil date.
package calendar

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/thurmanmarka/astroglide/internal/moon"
	"github.com/thurmanmarka/astroglide/internal/moonphase"
	"github.com/thurmanmarka/astroglide/internal/sun"
)

// SolarEvents holds the nine named solar event times (UTC) for a date,
// keyed by sun.Kind, with per-event ok flags for polar day/night.
type SolarEvents struct {
	Times map[sun.Kind]time.Time
	OK    map[sun.Kind]bool
}

// Row is one civil date's full aggregation.
type Row struct {
	Date          time.Time // local midnight of the civil date
	Solar         SolarEvents
	MoonRiseSet   moon.RiseSet
	OKMoonRise    bool
	OKMoonSet     bool
	OKMoonTransit bool
	NoonIllum     float64             // illuminated fraction at local noon
	NoonPhase     float64             // phase angle (degrees) at local noon
	PhaseEvents   []moonphase.Instant // phase instants (if any) attributed to this date
}

// Build computes one Row for a single civil date at (lat, lon,
// elevationMeters); loc is used to define "midnight"/"noon" and convert
// returned UTC instants to local date boundaries.
func Build(lat, lon, elevationMeters float64, date time.Time, loc *time.Location) Row {
	year, month, day := date.Date()
	midnight := time.Date(year, month, day, 0, 0, 0, 0, loc)
	noon := midnight.Add(12 * time.Hour)

	solar := SolarEvents{Times: make(map[sun.Kind]time.Time), OK: make(map[sun.Kind]bool)}
	for _, kind := range sun.AllKinds {
		t, ok := sun.EventTime(lat, lon, elevationMeters, midnight, kind)
		solar.Times[kind] = t
		solar.OK[kind] = ok
	}

	rs, okRise, okSet, okTransit := moon.RiseSetForDate(lat, lon, elevationMeters, midnight)

	full := moon.Evaluate(noon.UTC(), lat, lon, elevationMeters)

	phaseEvents := moonphase.InstantsInRange(midnight, midnight.Add(24*time.Hour))

	return Row{
		Date:          midnight,
		Solar:         solar,
		MoonRiseSet:   rs,
		OKMoonRise:    okRise,
		OKMoonSet:     okSet,
		OKMoonTransit: okTransit,
		NoonIllum:     full.IlluminatedFrac,
		NoonPhase:     full.PhaseAngle,
		PhaseEvents:   phaseEvents,
	}
}

// Range computes one Row per civil date in [startDate, endDate], in
// order, sequentially.
func Range(lat, lon, elevationMeters float64, startDate, endDate time.Time, loc *time.Location) []Row {
	dates := civilDates(startDate, endDate, loc)
	rows := make([]Row, len(dates))
	for i, d := range dates {
		rows[i] = Build(lat, lon, elevationMeters, d, loc)
	}
	return rows
}

// RangeParallel computes the same rows as Range, but fans each civil
// date's Build call out across an errgroup (spec's optional parallel
// Calendar entry point). Row order in the result matches the civil-date
// order regardless of completion order.
func RangeParallel(ctx context.Context, lat, lon, elevationMeters float64, startDate, endDate time.Time, loc *time.Location) ([]Row, error) {
	dates := civilDates(startDate, endDate, loc)
	rows := make([]Row, len(dates))

	g, _ := errgroup.WithContext(ctx)
	for i, d := range dates {
		i, d := i, d
		g.Go(func() error {
			rows[i] = Build(lat, lon, elevationMeters, d, loc)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return rows, nil
}

func civilDates(start, end time.Time, loc *time.Location) []time.Time {
	y, m, d := start.Date()
	cur := time.Date(y, m, d, 0, 0, 0, 0, loc)
	ey, em, ed := end.Date()
	last := time.Date(ey, em, ed, 0, 0, 0, 0, loc)

	var out []time.Time
	for !cur.After(last) {
		out = append(out, cur)
		cur = cur.AddDate(0, 0, 1)
	}
	return out
}
