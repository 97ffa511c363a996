package sun

import (
	"math"
	"time"

	"github.com/thurmanmarka/astroglide/internal/horizon"
	"github.com/thurmanmarka/astroglide/internal/timeutil"
)

// Kind identifies one of the nine solar horizon events of spec §3/§4.5.
type Kind int

const (
	KindSunrise Kind = iota
	KindSunset
	KindSolarNoon
	KindCivilDawn
	KindCivilDusk
	KindNauticalDawn
	KindNauticalDusk
	KindAstronomicalDawn
	KindAstronomicalDusk
)

// role describes whether a kind's hour angle is subtracted (morning) or
// added (evening) to solar noon, per spec §4.5's table. Noon has no role.
type role int

const (
	roleNoon role = iota
	roleMorning
	roleEvening
)

func (k Kind) targetAltitude() float64 {
	switch k {
	case KindSunrise, KindSunset:
		return horizon.TargetSunriseSunset
	case KindCivilDawn, KindCivilDusk:
		return horizon.TargetCivilTwilight
	case KindNauticalDawn, KindNauticalDusk:
		return horizon.TargetNauticalTwilight
	case KindAstronomicalDawn, KindAstronomicalDusk:
		return horizon.TargetAstronomicalTwilight
	default:
		return 0
	}
}

func (k Kind) role() role {
	switch k {
	case KindSolarNoon:
		return roleNoon
	case KindSunrise, KindCivilDawn, KindNauticalDawn, KindAstronomicalDawn:
		return roleMorning
	default:
		return roleEvening
	}
}

// EventTime computes the single named solar event for the given
// calendar date (the local date of `date`) at (lat, lon, elevationMeters),
// using the NOAA closed-form hour-angle inversion of spec §4.5. Returns
// ok=false for polar day/night at this kind's target altitude.
func EventTime(lat, lon, elevationMeters float64, date time.Time, kind Kind) (utc time.Time, ok bool) {
	year, month, day := date.Date()
	midnightUTC := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	jdMidnight := timeutil.JulianDay(midnightUTC)

	h0 := kind.targetAltitude()
	if h0 != 0 {
		h0 -= horizon.ElevationDip(elevationMeters)
	}

	if kind.role() == roleNoon {
		rec := NOAAPosition(timeutil.JulianCenturiesFromJD(jdMidnight))
		n := 720 - 4*lon - rec.EquationOfTimeMin
		n = fixedPointNoon(jdMidnight, lon, n)
		return timeutil.TimeFromJulianDay(jdMidnight + n/1440.0), true
	}

	// Initial guess: noon, then iterate per spec §4.5 step 6.
	t := 720.0 - 4*lon
	const maxIter = 5
	const convergeSeconds = 0.5

	for i := 0; i < maxIter; i++ {
		jd := jdMidnight + t/1440.0
		T := timeutil.JulianCenturiesFromJD(jd)
		rec := NOAAPosition(T)

		n := 720 - 4*lon - rec.EquationOfTimeMin

		cosH0 := (timeutil.SinD(h0) - timeutil.SinD(lat)*timeutil.SinD(rec.Declination)) /
			(timeutil.CosD(lat) * timeutil.CosD(rec.Declination))

		if cosH0 > 1 || cosH0 < -1 {
			return time.Time{}, false
		}
		omega0 := timeutil.Rad2Deg(math.Acos(cosH0))

		var next float64
		if kind.role() == roleMorning {
			next = n - 4*omega0
		} else {
			next = n + 4*omega0
		}

		converged := math.Abs(next-t)*60 < convergeSeconds
		t = next
		if converged {
			break
		}
	}

	return timeutil.TimeFromJulianDay(jdMidnight + t/1440.0), true
}

// fixedPointNoon refines solar noon by re-evaluating the equation of time
// at the candidate instant, converging per spec §4.5 step 6.
func fixedPointNoon(jdMidnight, lon, n float64) float64 {
	const maxIter = 5
	const convergeSeconds = 0.5
	t := n
	for i := 0; i < maxIter; i++ {
		jd := jdMidnight + t/1440.0
		T := timeutil.JulianCenturiesFromJD(jd)
		rec := NOAAPosition(T)
		next := 720 - 4*lon - rec.EquationOfTimeMin
		if math.Abs(next-t)*60 < convergeSeconds {
			t = next
			break
		}
		t = next
	}
	return t
}

// EventForDate computes a morning/evening pair (e.g. sunrise/sunset,
// civil dawn/dusk) in one call, mirroring the teacher's
// eventsForDateAtAltitude signature so astroglide.go's wrappers don't need
// to change shape.
func EventForDate(lat, lon, elevationMeters float64, date time.Time, morningKind, eveningKind Kind) (morningUTC, eveningUTC time.Time, okMorning, okEvening bool) {
	morningUTC, okMorning = EventTime(lat, lon, elevationMeters, date, morningKind)
	eveningUTC, okEvening = EventTime(lat, lon, elevationMeters, date, eveningKind)
	return
}

// AllKinds lists the nine SolarEventKinds in chronological order, for callers
// (the Calendar Aggregator) that need to iterate over all of them.
var AllKinds = []Kind{
	KindAstronomicalDawn,
	KindNauticalDawn,
	KindCivilDawn,
	KindSunrise,
	KindSolarNoon,
	KindSunset,
	KindCivilDusk,
	KindNauticalDusk,
	KindAstronomicalDusk,
}
