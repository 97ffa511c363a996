// Package deltat approximates ΔT = TT - UT, the correction the Lunar
// Phase Solver needs to convert a dynamical-time phase instant (computed
// from Meeus' lunation polynomial, which is in Terrestrial Time) back to
// UTC, per spec §4.7.
package deltat

import "github.com/thurmanmarka/astroglide/internal/timeutil"

// Seconds returns ΔT in seconds for the given calendar year (fractional
// years are fine), using piecewise polynomials after Espenak & Meeus for
// 1900-2050 (no lookup table) and the long-term quadratic
// -20 + 32·((year-1820)/100)² before 1900 and from 2050 on.
func Seconds(year float64) float64 {
	switch {
	case year < 1900:
		u := (year - 1820) / 100
		return -20 + 32*u*u
	case year < 1987:
		t := year - 1950
		return timeutil.Polynome(t, 29.07, 0.407, -1.0/233, 1.0/2547)
	case year < 2005:
		t := year - 2000
		return timeutil.Polynome(t, 63.86, 0.3345, -0.060374, 0.0017275, 0.000651814, 0.00002373599)
	case year < 2050:
		t := year - 2000
		return timeutil.Polynome(t, 62.92, 0.32217, 0.005589)
	default:
		u := (year - 1820) / 100
		return -20 + 32*u*u
	}
}

// ForJD returns ΔT in seconds for a Julian Day, converting it to a
// fractional calendar year first.
func ForJD(jd float64) float64 {
	year := 2000.0 + (jd-2451545.0)/365.25
	return Seconds(year)
}
