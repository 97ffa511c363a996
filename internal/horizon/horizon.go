// Package horizon implements the altitude/azimuth transforms, sidereal
// time, refraction, and target-altitude constants shared by the Solar
// and Lunar event solvers (spec §4.4). It replaces the near-identical
// sidereal-time/altitude code that used to live separately in
// internal/sun and internal/moon.
package horizon

import (
	"math"

	"github.com/thurmanmarka/astroglide/internal/timeutil"
)

// EarthRadiusKm is the WGS-84 equatorial radius used for horizontal
// parallax and the observer's geocentric radius.
const EarthRadiusKm = 6378.14

// EarthFlattening is the Earth's flattening, f = 1/298.257.
const EarthFlattening = 1.0 / 298.257

// MeanSiderealTime returns Greenwich mean sidereal time θ̄₀ (degrees,
// normalized) for the given UTC Julian Day and Julian Century T.
func MeanSiderealTime(jd, t float64) float64 {
	theta := 280.46061837 + 360.98564736629*(jd-2451545) +
		0.000387933*t*t - t*t*t/38710000
	return timeutil.Normalize360(theta)
}

// ApparentSiderealTime returns θ₀ = θ̄₀ + Δψ·cos(ε), the equation of the
// equinoxes applied to mean sidereal time.
func ApparentSiderealTime(meanSidereal, nutationInLongitude, trueObliquity float64) float64 {
	return meanSidereal + nutationInLongitude*timeutil.CosD(trueObliquity)
}

// LocalSiderealTime returns local apparent sidereal time θ at east-positive
// longitude lonDeg.
func LocalSiderealTime(apparentSidereal, lonDeg float64) float64 {
	return timeutil.Normalize360(apparentSidereal + lonDeg)
}

// HourAngle returns H = θ - α, normalized to (-180, +180].
func HourAngle(localSiderealDeg, raDeg float64) float64 {
	return timeutil.Normalize180(localSiderealDeg - raDeg)
}

// AltAz holds a topocentric horizon position.
type AltAz struct {
	Altitude float64 // degrees, [-90, +90]
	Azimuth  float64 // degrees, [0, 360), 0 = north, 90 = east
}

// FromEquatorial converts hour angle H and declination δ, observed from
// latitude φ, to altitude/azimuth. Azimuth uses atan2 of the independent
// sine/cosine components (never acos of a normalized ratio): per spec
// §4.4 and the Design Notes, acos loses sign and is numerically unstable
// near the zenith, where the Sun or Moon frequently sits for
// high-latitude callers.
func FromEquatorial(hourAngleDeg, decDeg, latDeg float64) AltAz {
	H := timeutil.Deg2Rad(hourAngleDeg)
	dec := timeutil.Deg2Rad(decDeg)
	lat := timeutil.Deg2Rad(latDeg)

	sinAlt := math.Sin(lat)*math.Sin(dec) + math.Cos(lat)*math.Cos(dec)*math.Cos(H)
	alt := math.Asin(timeutil.Clamp(sinAlt))

	azNorthBased := math.Atan2(
		math.Sin(H),
		math.Cos(H)*math.Sin(lat)-math.Tan(dec)*math.Cos(lat),
	)
	// Rotate 180° so 0 = north, 90 = east (the raw formula is
	// south-referenced).
	az := timeutil.Normalize360(timeutil.Rad2Deg(azNorthBased) + 180)

	return AltAz{
		Altitude: timeutil.Rad2Deg(alt),
		Azimuth:  az,
	}
}

// Refraction returns the Bennett atmospheric-refraction correction (degrees)
// to add to a true altitude to get the apparent altitude. For a ≤ -1° the
// refraction is held at its value for a = -1°.
func Refraction(trueAltDeg float64) float64 {
	a := trueAltDeg
	if a <= -1 {
		a = -1
	}
	arg := a + 10.3/(a+5.11)
	t := math.Tan(timeutil.Deg2Rad(arg))
	if t == 0 {
		return 0
	}
	return (1.02 / t) / 60.0
}

// ElevationDip returns the additional (positive) altitude dip, in degrees,
// visible horizon drops by for an observer at elevation h meters above
// sea level: arccos(R/(R+h)), per spec §4.4. Zero for h <= 0.
func ElevationDip(elevationMeters float64) float64 {
	if elevationMeters <= 0 {
		return 0
	}
	r := EarthRadiusKm * 1000
	ratio := r / (r + elevationMeters)
	return timeutil.Rad2Deg(math.Acos(timeutil.Clamp(ratio)))
}

// Target altitudes (degrees) for the standard rise/set/twilight thresholds,
// per spec §4.4's table.
const (
	TargetSunriseSunset        = -0.833
	TargetCivilTwilight        = -6.0
	TargetNauticalTwilight     = -12.0
	TargetAstronomicalTwilight = -18.0
)

// MoonTargetAltitude returns the Moon rise/set target altitude h₀,
// accounting for the Moon's own semidiameter and horizontal parallax at
// distance deltaKm, per spec §4.4: h₀ = -0.566° - SD + π_horizontal.
func MoonTargetAltitude(deltaKm float64) float64 {
	sd := timeutil.Rad2Deg(math.Asin(timeutil.Clamp(1737.4 / deltaKm)))
	parallax := timeutil.Rad2Deg(math.Asin(timeutil.Clamp(EarthRadiusKm / deltaKm)))
	return -0.566 - sd + parallax
}

// GeocentricObserver returns ρsinφ′ and ρcosφ′ for an observer at
// geodetic latitude latDeg and elevation elevationMeters, using the
// WGS-84 flattening, per spec §4.3.
func GeocentricObserver(latDeg, elevationMeters float64) (rhoSinPhiPrime, rhoCosPhiPrime float64) {
	lat := timeutil.Deg2Rad(latDeg)
	u := math.Atan(math.Sqrt(1-EarthFlattening*(2-EarthFlattening)) * math.Tan(lat))
	hKm := elevationMeters / 1000.0

	rhoSinPhiPrime = math.Sqrt(1-EarthFlattening*(2-EarthFlattening))*math.Sin(u) + (hKm/EarthRadiusKm)*math.Sin(lat)
	rhoCosPhiPrime = math.Cos(u) + (hKm/EarthRadiusKm)*math.Cos(lat)
	return
}
