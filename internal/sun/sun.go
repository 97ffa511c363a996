package sun

import (
	"time"

	"github.com/thurmanmarka/astroglide/internal/horizon"
	"github.com/thurmanmarka/astroglide/internal/solver"
	"github.com/thurmanmarka/astroglide/internal/timeutil"
)

// StandardZenith is the commonly used zenith angle (in degrees) for sunrise/sunset:
// 90°50' ≈ 90.833°, accounting for refraction + Sun's apparent radius.
const StandardZenith = 90.833

// ApparentHorizonAltitudeSun is the altitude (in degrees) of the Sun's center
// when the apparent upper limb is on the horizon under "standard" conditions.
const ApparentHorizonAltitudeSun = horizon.TargetSunriseSunset

// RiseSetForDate computes sunrise and sunset for the Sun on the given calendar date
// for an observer at lat, lon (degrees). Returned times are in UTC.
// `zenith` is in degrees; for standard sunrise/sunset use StandardZenith.
//
// Standard zenith routes through the closed-form NOAA solver (events.go);
// any other zenith falls back to the generic bracket-and-bisect scan,
// since it isn't one of the nine named kinds the closed form covers.
func RiseSetForDate(lat, lon float64, date time.Time, zenith float64) (sunriseUTC, sunsetUTC time.Time, okRise, okSet bool) {
	if zenith == StandardZenith {
		return EventForDate(lat, lon, 0, date, KindSunrise, KindSunset)
	}
	targetAlt := 90.0 - zenith
	return eventsForDateAtAltitude(lat, lon, date, targetAlt)
}

// TwilightForDate computes the times when the Sun crosses a given altitude
// (in degrees) during the local calendar day: "dawn" as the upward crossing,
// "dusk" as the downward crossing. Returned times are in UTC.
func TwilightForDate(lat, lon float64, date time.Time, targetAlt float64) (dawnUTC, duskUTC time.Time, okDawn, okDusk bool) {
	switch targetAlt {
	case horizon.TargetCivilTwilight:
		return EventForDate(lat, lon, 0, date, KindCivilDawn, KindCivilDusk)
	case horizon.TargetNauticalTwilight:
		return EventForDate(lat, lon, 0, date, KindNauticalDawn, KindNauticalDusk)
	case horizon.TargetAstronomicalTwilight:
		return EventForDate(lat, lon, 0, date, KindAstronomicalDawn, KindAstronomicalDusk)
	default:
		return eventsForDateAtAltitude(lat, lon, date, targetAlt)
	}
}

// eventsForDateAtAltitude finds the times when the Sun's apparent altitude
// crosses targetAlt (degrees) during the local calendar day of `date` at
// (lat, lon), via the generic bracket-and-bisect scan. Used for altitudes
// that are not one of the nine named SolarEventKinds (golden hour, blue
// hour), where no closed-form hour-angle inversion applies.
func eventsForDateAtAltitude(lat, lon float64, date time.Time, targetAlt float64) (riseUTC, setUTC time.Time, okRise, okSet bool) {
	loc := date.Location()
	year, month, day := date.Date()

	startLocal := time.Date(year, month, day, 0, 0, 0, 0, loc)
	endLocal := startLocal.Add(24 * time.Hour)

	altFunc := func(t time.Time) float64 {
		return ApparentAltitude(lat, lon, t)
	}

	const (
		steps = 48 // samples across the day (every 30 minutes)
		tol   = 30 * time.Second
	)

	riseRes := solver.FindAltitudeEvent(altFunc, startLocal, endLocal, targetAlt, solver.CrossingUp, steps, tol)
	if riseRes.OK {
		riseUTC = riseRes.Time.UTC()
		okRise = true
	}

	setRes := solver.FindAltitudeEvent(altFunc, startLocal, endLocal, targetAlt, solver.CrossingDown, steps, tol)
	if setRes.OK {
		setUTC = setRes.Time.UTC()
		okSet = true
	}

	return riseUTC, setUTC, okRise, okSet
}

// ApparentAltitude computes the Sun's geometric altitude (in degrees) at
// geographic location (lat, lon) at time t, using the cheap approximate
// RA/Dec model. Used by the generic crossing scan (golden/blue hour),
// where arcminute precision is plenty.
func ApparentAltitude(lat, lon float64, t time.Time) float64 {
	eq := approxEquatorial(t)

	jd := timeutil.JulianDay(t)
	tc := timeutil.JulianCenturiesFromJD(jd)
	gmst := horizon.MeanSiderealTime(jd, tc)
	lst := horizon.LocalSiderealTime(gmst, lon)
	H := horizon.HourAngle(lst, eq.RA)

	return horizon.FromEquatorial(H, eq.Dec, lat).Altitude
}

// TopocentricPosition returns the Sun's refraction-corrected altitude and
// azimuth at time t for an observer at (lat, lon), using the full NOAA
// model. Parallax is not applied (negligible for the Sun per spec §3).
func TopocentricPosition(lat, lon float64, t time.Time) horizon.AltAz {
	rec := PositionAt(t)

	jd := timeutil.JulianDay(t)
	tc := timeutil.JulianCenturiesFromJD(jd)
	gmst := horizon.MeanSiderealTime(jd, tc)
	lst := horizon.LocalSiderealTime(gmst, lon)
	H := horizon.HourAngle(lst, rec.RightAscension)

	aa := horizon.FromEquatorial(H, rec.Declination, lat)
	aa.Altitude += horizon.Refraction(aa.Altitude)
	return aa
}
