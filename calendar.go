package astroglide

import (
	"context"
	"time"

	"github.com/thurmanmarka/astroglide/internal/calendar"
	"github.com/thurmanmarka/astroglide/internal/moonphase"
	"github.com/thurmanmarka/astroglide/internal/sun"
)

// SolarEventKind identifies one of the nine solar horizon events, mirroring
// internal/sun.Kind for public consumption.
type SolarEventKind int

const (
	SolarAstronomicalDawn SolarEventKind = iota
	SolarNauticalDawn
	SolarCivilDawn
	SolarSunrise
	SolarNoon
	SolarSunset
	SolarCivilDusk
	SolarNauticalDusk
	SolarAstronomicalDusk
)

var solarKindToInternal = map[SolarEventKind]sun.Kind{
	SolarAstronomicalDawn: sun.KindAstronomicalDawn,
	SolarNauticalDawn:     sun.KindNauticalDawn,
	SolarCivilDawn:        sun.KindCivilDawn,
	SolarSunrise:          sun.KindSunrise,
	SolarNoon:             sun.KindSolarNoon,
	SolarSunset:           sun.KindSunset,
	SolarCivilDusk:        sun.KindCivilDusk,
	SolarNauticalDusk:     sun.KindNauticalDusk,
	SolarAstronomicalDusk: sun.KindAstronomicalDusk,
}

// LunarPhaseKind identifies one of the four named lunar phases.
type LunarPhaseKind int

const (
	NewMoon LunarPhaseKind = iota
	FirstQuarter
	FullMoonKind
	LastQuarter
)

func (k LunarPhaseKind) String() string {
	switch k {
	case FirstQuarter:
		return "First Quarter"
	case FullMoonKind:
		return "Full Moon"
	case LastQuarter:
		return "Last Quarter"
	default:
		return "New Moon"
	}
}

// PhaseInstant is a single solved lunar phase event.
type PhaseInstant struct {
	Kind LunarPhaseKind
	Time time.Time
}

func fromInternalPhaseKind(k moonphase.Kind) LunarPhaseKind {
	switch k {
	case moonphase.KindFirstQuarter:
		return FirstQuarter
	case moonphase.KindFullMoon:
		return FullMoonKind
	case moonphase.KindLastQuarter:
		return LastQuarter
	default:
		return NewMoon
	}
}

// LunarPhasesInMonth returns every New/First Quarter/Full/Last Quarter
// instant (converted to the month's location) that falls within the
// calendar month containing `month`, per spec §4.7.
func LunarPhasesInMonth(month time.Time) []PhaseInstant {
	loc := month.Location()
	y, m, _ := month.Date()
	start := time.Date(y, m, 1, 0, 0, 0, 0, loc)
	end := start.AddDate(0, 1, 0)

	instants := moonphase.InstantsInRange(start, end)
	out := make([]PhaseInstant, len(instants))
	for i, in := range instants {
		out[i] = PhaseInstant{Kind: fromInternalPhaseKind(in.Kind), Time: in.Time.In(loc)}
	}
	return out
}

// CalendarRow is one civil date's full solar/lunar aggregation, per spec
// §4.8.
type CalendarRow struct {
	Date time.Time

	SolarEvents   map[SolarEventKind]time.Time
	SolarEventsOK map[SolarEventKind]bool

	MoonRise, MoonTransit, MoonSet       time.Time
	OKMoonRise, OKMoonTransit, OKMoonSet bool

	NoonIllumination float64
	NoonPhaseAngle   float64
	PhaseEvents      []PhaseInstant
}

func toCalendarRow(r calendar.Row, loc *time.Location) CalendarRow {
	out := CalendarRow{
		Date:             r.Date,
		SolarEvents:      make(map[SolarEventKind]time.Time, len(solarKindToInternal)),
		SolarEventsOK:    make(map[SolarEventKind]bool, len(solarKindToInternal)),
		NoonIllumination: r.NoonIllum,
		NoonPhaseAngle:   r.NoonPhase,
	}
	for pub, internalKind := range solarKindToInternal {
		out.SolarEvents[pub] = r.Solar.Times[internalKind].In(loc)
		out.SolarEventsOK[pub] = r.Solar.OK[internalKind]
	}

	if r.OKMoonRise {
		out.MoonRise = r.MoonRiseSet.Rise.In(loc)
		out.OKMoonRise = true
	}
	if r.OKMoonSet {
		out.MoonSet = r.MoonRiseSet.Set.In(loc)
		out.OKMoonSet = true
	}
	if r.OKMoonTransit {
		out.MoonTransit = r.MoonRiseSet.Transit.In(loc)
		out.OKMoonTransit = true
	}

	out.PhaseEvents = make([]PhaseInstant, len(r.PhaseEvents))
	for i, p := range r.PhaseEvents {
		out.PhaseEvents[i] = PhaseInstant{Kind: fromInternalPhaseKind(p.Kind), Time: p.Time.In(loc)}
	}

	return out
}

// Calendar computes one CalendarRow per civil date in [start, end]
// (inclusive), sequentially, for an observer at loc. start's Location
// defines the civil-date boundaries and the zone of the returned times;
// the clock components of start and end are ignored.
func Calendar(loc Coordinates, start, end time.Time) ([]CalendarRow, error) {
	if err := validateCoordinates(loc); err != nil {
		return nil, err
	}
	if err := validateDateRange(start, end); err != nil {
		return nil, err
	}

	rows := calendar.Range(loc.Lat, loc.Lon, loc.Elevation, start, end, start.Location())
	out := make([]CalendarRow, len(rows))
	for i, r := range rows {
		out[i] = toCalendarRow(r, start.Location())
	}
	return out, nil
}

// CalendarParallel is Calendar, but computes each civil date's row
// concurrently via an errgroup, returning on the first error (ctx
// cancellation never originates internally -- Build cannot fail).
func CalendarParallel(ctx context.Context, loc Coordinates, start, end time.Time) ([]CalendarRow, error) {
	if err := validateCoordinates(loc); err != nil {
		return nil, err
	}
	if err := validateDateRange(start, end); err != nil {
		return nil, err
	}

	rows, err := calendar.RangeParallel(ctx, loc.Lat, loc.Lon, loc.Elevation, start, end, start.Location())
	if err != nil {
		return nil, err
	}
	out := make([]CalendarRow, len(rows))
	for i, r := range rows {
		out[i] = toCalendarRow(r, start.Location())
	}
	return out, nil
}
