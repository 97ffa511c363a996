// Package timeutil provides the Time Base shared by the Solar and Lunar
// models: Julian Day / Julian Century conversion and angle normalization.
// Every computation downstream of here runs in UTC; converting to a
// caller's named zone happens once, at the public API boundary.
package timeutil

import (
	"math"
	"time"

	"github.com/skrushinsky/scaliger/mathutils"
)

// DayOfYear returns the 1-based day of year for the given date.
func DayOfYear(year int, month time.Month, day int) int {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return t.YearDay()
}

// FractionalHoursToTime converts fractional hours [0,24) into a UTC time on the given date.
func FractionalHoursToTime(year int, month time.Month, day int, h float64) time.Time {
	base := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	seconds := h * 3600
	sec := int64(math.Round(seconds))
	return base.Add(time.Duration(sec) * time.Second)
}

// j2000 is the J2000.0 epoch: 2000-01-01 12:00:00 UTC.
var j2000 = time.Date(2000, time.January, 1, 12, 0, 0, 0, time.UTC)

// DaysSinceJ2000 returns the number of (UTC) days since the J2000.0 epoch.
// Kept for the cheap low-precision solar model (sun.approxEquatorial)
// behind the golden/blue-hour crossing scan.
func DaysSinceJ2000(t time.Time) float64 {
	return t.UTC().Sub(j2000).Hours() / 24.0
}

// JulianDay returns the continuous Julian Day number for instant t (UTC),
// per the proleptic-Gregorian formula of spec §4.1. Accepts astronomical
// year numbering (year 0 = 1 BCE) since time.Time's Date already does.
func JulianDay(t time.Time) float64 {
	u := t.UTC()
	year, month, day := u.Date()
	hour := float64(u.Hour()) +
		float64(u.Minute())/60.0 +
		float64(u.Second())/3600.0 +
		float64(u.Nanosecond())/(3600.0*1e9)

	y := year
	m := int(month)

	if m <= 2 {
		y--
		m += 12
	}

	a := y / 100
	b := 2 - a + a/4

	jd := math.Floor(365.25*float64(y+4716)) +
		math.Floor(30.6001*float64(m+1)) +
		float64(day) + float64(b) - 1524.5 +
		hour/24.0

	return jd
}

// JulianCenturies returns T, Julian centuries since J2000.0 TT≈UTC.
func JulianCenturies(t time.Time) float64 {
	return (JulianDay(t) - 2451545.0) / 36525.0
}

// JulianCenturiesFromJD is JulianCenturies without re-deriving JD from a
// time.Time; used by solvers that already iterate on a raw JD.
func JulianCenturiesFromJD(jd float64) float64 {
	return (jd - 2451545.0) / 36525.0
}

// TimeFromJulianDay converts a Julian Day back to a UTC time.Time.
func TimeFromJulianDay(jd float64) time.Time {
	return j2000.Add(time.Duration((jd - 2451545.0) * 24 * float64(time.Hour)))
}

func Deg2Rad(d float64) float64 { return mathutils.Radians(d) }
func Rad2Deg(r float64) float64 { return mathutils.Degrees(r) }

func SinD(deg float64) float64 { return math.Sin(Deg2Rad(deg)) }
func CosD(deg float64) float64 { return math.Cos(Deg2Rad(deg)) }
func TanD(deg float64) float64 { return math.Tan(Deg2Rad(deg)) }

// Normalize360 reduces d to [0, 360).
func Normalize360(d float64) float64 {
	return mathutils.ReduceDeg(d)
}

// Normalize180 reduces d to (-180, +180], the convention spec §4.1 wants
// for hour angles and other signed bearings.
func Normalize180(d float64) float64 {
	d = Normalize360(d)
	if d > 180 {
		d -= 360
	}
	return d
}

func Normalize24(h float64) float64 {
	h = math.Mod(h, 24.0)
	if h < 0 {
		h += 24.0
	}
	return h
}

// Polynome evaluates c0 + c1*t + c2*t^2 + ... via Horner's rule, routed
// through scaliger/mathutils so every T-polynomial in the Solar and Lunar
// models (and the Lunar Phase Solver's JDE expansion) shares one
// implementation instead of each package re-deriving Horner's rule.
func Polynome(t float64, coeffs ...float64) float64 {
	return mathutils.Polynome(t, coeffs...)
}

// Clamp restricts x to [-1, 1], the domain of Asin/Acos. Per spec §7,
// clamping beyond epsilon on well-formed inputs indicates a bug upstream,
// not a legitimate edge case; callers should treat a large correction as
// a signal to investigate, not silently accept.
func Clamp(x float64) float64 {
	if x > 1 {
		return 1
	}
	if x < -1 {
		return -1
	}
	return x
}
