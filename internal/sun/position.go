package sun

import (
	"math"
	"time"

	"github.com/thurmanmarka/astroglide/internal/timeutil"
)

// Equatorial represents equatorial coordinates (right ascension and declination)
// in degrees. RA is in degrees (0-360).
type Equatorial struct {
	RA  float64 // right ascension, degrees
	Dec float64 // declination, degrees
}

// approxEquatorial is the original low/medium-precision solar position
// model (good to arcminute-level accuracy). It is kept for
// ApparentAltitude in sun.go, which drives the generic crossing scan
// (golden/blue hour); the NOAA iteration in events.go does not use it.
func approxEquatorial(t time.Time) Equatorial {
	d := timeutil.DaysSinceJ2000(t)

	g := timeutil.Deg2Rad(357.529 + 0.98560028*d)
	q := timeutil.Deg2Rad(280.459 + 0.98564736*d)

	L := q +
		timeutil.Deg2Rad(1.915)*math.Sin(g) +
		timeutil.Deg2Rad(0.020)*math.Sin(2*g)

	eps := timeutil.Deg2Rad(23.439 - 0.00000036*d)

	x := math.Cos(L)
	y := math.Cos(eps) * math.Sin(L)
	z := math.Sin(eps) * math.Sin(L)

	ra := math.Atan2(y, x)
	if ra < 0 {
		ra += 2 * math.Pi
	}
	dec := math.Asin(z)

	return Equatorial{
		RA:  timeutil.Rad2Deg(ra),
		Dec: timeutil.Rad2Deg(dec),
	}
}

// Record is the full NOAA-polynomial solar model output of spec §4.2: the
// sole solar output consumed by the Horizon Geometry and Solar Event
// Solver components.
type Record struct {
	MeanLongitude     float64 // L0, degrees
	MeanAnomaly       float64 // M, degrees
	Eccentricity      float64 // e
	EquationOfCenter  float64 // C, degrees
	TrueLongitude     float64 // degrees
	ApparentLongitude float64 // λ, degrees
	MeanObliquity     float64 // ε0, degrees
	TrueObliquity     float64 // ε, degrees
	Declination       float64 // δ☉, degrees
	RightAscension    float64 // α☉, degrees [0,360)
	EquationOfTimeMin float64 // minutes, (-20, +20)
	OmegaDeg          float64 // Ω, moon ascending node longitude term used for apparent correction
	NutationLongitude float64 // not set by NOAAPosition (always zero)
}

// NOAAPosition evaluates the Solar Model of spec §4.2 for Julian Century T.
func NOAAPosition(t float64) Record {
	L0 := timeutil.Normalize360(280.46646 + t*(36000.76983+0.0003032*t))
	M := 357.52911 + t*(35999.05029-0.0001537*t)
	e := 0.016708634 - t*(0.000042037+0.0000001267*t)

	Mr := timeutil.Deg2Rad(M)
	C := math.Sin(Mr)*(1.914602-t*(0.004817+0.000014*t)) +
		math.Sin(2*Mr)*(0.019993-0.000101*t) +
		math.Sin(3*Mr)*0.000289

	trueLon := L0 + C

	omega := 125.04 - 1934.136*t
	apparentLon := trueLon - 0.00569 - 0.00478*timeutil.SinD(omega)

	eps0 := 23.439291 - t*(0.0130042+t*(1.64e-7-t*5.03e-7))
	eps := eps0 + 0.00256*timeutil.CosD(omega)

	lonRad := timeutil.Deg2Rad(apparentLon)
	epsRad := timeutil.Deg2Rad(eps)

	decl := math.Asin(timeutil.Clamp(math.Sin(epsRad) * math.Sin(lonRad)))

	ra := timeutil.Normalize360(timeutil.Rad2Deg(math.Atan2(
		math.Cos(epsRad)*math.Sin(lonRad),
		math.Cos(lonRad),
	)))

	eot := 4 * (L0 - 0.0057183 - ra)
	// Reduce to (-20, +20) minutes: the raw expression can be off by a
	// multiple of 1440 (24h) if it wraps around midnight.
	for eot > 20 {
		eot -= 1440
	}
	for eot < -20 {
		eot += 1440
	}

	return Record{
		MeanLongitude:     L0,
		MeanAnomaly:       timeutil.Normalize360(M),
		Eccentricity:      e,
		EquationOfCenter:  C,
		TrueLongitude:     timeutil.Normalize360(trueLon),
		ApparentLongitude: timeutil.Normalize360(apparentLon),
		MeanObliquity:     eps0,
		TrueObliquity:     eps,
		Declination:       timeutil.Rad2Deg(decl),
		RightAscension:    ra,
		EquationOfTimeMin: eot,
		OmegaDeg:          omega,
	}
}

// PositionAt is a convenience wrapper computing the NOAA Record at a
// civil instant.
func PositionAt(t time.Time) Record {
	return NOAAPosition(timeutil.JulianCenturies(t))
}

// MeanDistanceKm returns the Sun-Earth distance R (km) per spec §4.3,
// needed by the Lunar Model's phase-angle computation.
func MeanDistanceKm(meanAnomalyDeg float64) float64 {
	m := timeutil.Deg2Rad(meanAnomalyDeg)
	e := 0.0167
	return 149598000.0 * (1 - e*math.Cos(m-e*math.Sin(m)))
}
