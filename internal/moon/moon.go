package moon

import (
	"time"

	"github.com/thurmanmarka/astroglide/internal/horizon"
	"github.com/thurmanmarka/astroglide/internal/solver"
	"github.com/thurmanmarka/astroglide/internal/timeutil"
)

// RiseSet holds lunar rise, transit, and set times in UTC. Transit is the
// zero-value time.Time when RiseSetForDate's okTransit return is false (the
// highest sampled altitude lies at an edge of the day's window, so the day
// has no interior altitude maximum).
type RiseSet struct {
	Rise    time.Time
	Transit time.Time
	Set     time.Time
}

// RiseSetForDate computes the Moon's rise, transit, and set times for a
// given calendar date and observer location, per spec §4.6.
//
// lat, lon in degrees (north/east positive, west negative); elevationMeters
// is the observer's height above sea level. date can be any time on the
// calendar date of interest (its Location defines "midnight" for the
// search window). Returned times are UTC.
func RiseSetForDate(lat, lon, elevationMeters float64, date time.Time) (rs RiseSet, okRise, okSet, okTransit bool) {
	loc := date.Location()

	startLocal := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, loc)
	endLocal := startLocal.Add(24 * time.Hour)

	altFunc := func(t time.Time) float64 {
		return apparentAltitude(lat, lon, elevationMeters, t)
	}

	const (
		steps = 144 // samples across the day (every 10 minutes, spec §4.6 step 1)
		tol   = time.Second // bisection convergence, spec §4.6 step 3
	)

	// The rise/set target altitude depends on distance (semidiameter and
	// parallax both shrink with distance), so it isn't a single constant
	// the way the Sun's is. We evaluate it at local noon as a good enough
	// approximation across the few hours the actual crossing can drift
	// (spec §4.6 note: target altitude changes by a few hundredths of a
	// degree per day, negligible over a single search window).
	noonT := timeutil.JulianCenturies(startLocal.Add(12 * time.Hour))
	targetAlt := horizon.MoonTargetAltitude(GeocentricPosition(noonT).Distance) - horizon.ElevationDip(elevationMeters)

	riseRes := solver.FindAltitudeEvent(altFunc, startLocal, endLocal, targetAlt, solver.CrossingUp, steps, tol)
	if riseRes.OK {
		rs.Rise = riseRes.Time.UTC()
		okRise = true
	}

	setRes := solver.FindAltitudeEvent(altFunc, startLocal, endLocal, targetAlt, solver.CrossingDown, steps, tol)
	if setRes.OK {
		rs.Set = setRes.Time.UTC()
		okSet = true
	}

	transit, okTransit := transitForWindow(altFunc, startLocal, endLocal, steps)
	if okTransit {
		rs.Transit = transit.UTC()
	}

	return rs, okRise, okSet, okTransit
}

// transitForWindow locates the Moon's altitude maximum within [start, end)
// by coarse sampling followed by a quadratic (parabolic) interpolation of
// the three samples around the peak, per spec §4.6 step 2.
func transitForWindow(altFunc func(time.Time) float64, start, end time.Time, steps int) (time.Time, bool) {
	if steps < 3 {
		return time.Time{}, false
	}
	span := end.Sub(start)
	step := span / time.Duration(steps)

	best := 0
	bestAlt := altFunc(start)
	alts := make([]float64, steps+1)
	alts[0] = bestAlt
	for i := 1; i <= steps; i++ {
		a := altFunc(start.Add(step * time.Duration(i)))
		alts[i] = a
		if a > bestAlt {
			bestAlt = a
			best = i
		}
	}

	if best == 0 || best == steps {
		// Peak at a window edge: no interior maximum, so no transit.
		return time.Time{}, false
	}

	y1, y2, y3 := alts[best-1], alts[best], alts[best+1]
	denom := y1 - 2*y2 + y3
	if denom == 0 {
		return start.Add(step * time.Duration(best)), true
	}
	offset := 0.5 * (y1 - y3) / denom // fraction of a step, in [-0.5, 0.5]

	peakTime := start.Add(step * time.Duration(best)).Add(time.Duration(offset * float64(step)))
	return peakTime, true
}

// apparentAltitude computes the Moon's refraction-corrected topocentric
// altitude (degrees) at geographic location (lat, lon, elevationMeters)
// at time t, using the full Meeus geocentric model plus nutation and
// topocentric parallax (spec §4.3/§4.4).
func apparentAltitude(lat, lon, elevationMeters float64, t time.Time) float64 {
	full := Evaluate(t, lat, lon, elevationMeters)
	return full.TopocentricAltAz.Altitude
}
