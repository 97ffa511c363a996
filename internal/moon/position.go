package moon

import (
	"math"

	"github.com/thurmanmarka/astroglide/internal/timeutil"
)

// Equatorial represents equatorial coordinates (right ascension and declination)
// in degrees. RA is in degrees (0-360) instead of hours to stay consistent with
// internal math helpers.
type Equatorial struct {
	RA  float64 // right ascension, degrees
	Dec float64 // declination, degrees
}

// Arguments holds the Meeus mean arguments of spec §4.3, all normalized
// degrees, plus the eccentricity scale E.
type Arguments struct {
	Lprime float64 // mean longitude of the Moon
	D      float64 // mean elongation from the Sun
	M      float64 // Sun mean anomaly
	Mp     float64 // Moon mean anomaly
	F      float64 // argument of latitude
	E      float64 // eccentricity scale
}

// MeanArguments evaluates the five fundamental arguments and E at Julian
// Century T, per spec §4.3.
func MeanArguments(t float64) Arguments {
	lprime := timeutil.Polynome(t, 218.3164477, 481267.88123421, -0.0015786, 1.0/538841, -1.0/65194000)
	d := timeutil.Polynome(t, 297.8501921, 445267.1114034, -0.0018819, 1.0/545868, -1.0/113065000)
	m := timeutil.Polynome(t, 357.5291092, 35999.0502909, -0.0001536, 1.0/24490000)
	mp := timeutil.Polynome(t, 134.9633964, 477198.8675055, 0.0087414, 1.0/69699, -1.0/14712000)
	f := timeutil.Polynome(t, 93.2720950, 483202.0175233, -0.0036539, -1.0/3526000, 1.0/863310000)
	e := timeutil.Polynome(t, 1, -0.002516, -0.0000074)

	return Arguments{
		Lprime: timeutil.Normalize360(lprime),
		D:      timeutil.Normalize360(d),
		M:      timeutil.Normalize360(m),
		Mp:     timeutil.Normalize360(mp),
		F:      timeutil.Normalize360(f),
		E:      e,
	}
}

func sumPeriodic(terms []periodicTerm, args Arguments) float64 {
	dr := timeutil.Deg2Rad(args.D)
	mr := timeutil.Deg2Rad(args.M)
	mpr := timeutil.Deg2Rad(args.Mp)
	fr := timeutil.Deg2Rad(args.F)

	var sum float64
	for _, term := range terms {
		arg := float64(term.d)*dr + float64(term.m)*mr + float64(term.mp)*mpr + float64(term.f)*fr
		scale := 1.0
		switch term.m {
		case 1, -1:
			scale = args.E
		case 2, -2:
			scale = args.E * args.E
		}
		sum += term.amp * scale * math.Sin(arg)
	}
	return sum
}

func sumPeriodicCos(terms []periodicTerm, args Arguments) float64 {
	dr := timeutil.Deg2Rad(args.D)
	mr := timeutil.Deg2Rad(args.M)
	mpr := timeutil.Deg2Rad(args.Mp)
	fr := timeutil.Deg2Rad(args.F)

	var sum float64
	for _, term := range terms {
		arg := float64(term.d)*dr + float64(term.m)*mr + float64(term.mp)*mpr + float64(term.f)*fr
		scale := 1.0
		switch term.m {
		case 1, -1:
			scale = args.E
		case 2, -2:
			scale = args.E * args.E
		}
		sum += term.amp * scale * math.Cos(arg)
	}
	return sum
}

// Geocentric is the full Lunar Model output of spec §4.3: geocentric
// ecliptic longitude/latitude, Earth-Moon distance, and the mean
// arguments used downstream by the phase-angle and nutation
// computations.
type Geocentric struct {
	Longitude float64 // λ☾, degrees (geometric, before nutation)
	Latitude  float64 // β☾, degrees
	Distance  float64 // Δ, km
	Args      Arguments
}

// GeocentricPosition evaluates the Meeus periodic series of spec §4.3 at
// Julian Century T: Σl/Σr from Table 47.A's principal terms, Σb from
// Table 47.B's, plus the three planetary-perturbation additions to λ☾
// (Venus, Jupiter, and the flattening of the Earth, per Meeus ch.47's
// closing paragraph).
func GeocentricPosition(t float64) Geocentric {
	args := MeanArguments(t)

	sigmaL := sumPeriodic(longitudeTerms, args)
	sigmaR := sumPeriodicCos(distanceTerms, args)
	sigmaB := sumPeriodic(latitudeTerms, args)

	a1 := timeutil.Normalize360(119.75 + 131.849*t)
	a2 := timeutil.Normalize360(53.09 + 479264.29*t)
	a3 := timeutil.Normalize360(313.45 + 481266.484*t)

	sigmaL += 3958*timeutil.SinD(a1) + 1962*timeutil.SinD(args.Lprime-args.F) + 318*timeutil.SinD(a2)
	sigmaB += -2235*timeutil.SinD(args.Lprime) + 382*timeutil.SinD(a3) +
		175*timeutil.SinD(a1-args.F) + 175*timeutil.SinD(a1+args.F) +
		127*timeutil.SinD(args.Lprime-args.Mp) - 115*timeutil.SinD(args.Lprime+args.Mp)

	lambda := timeutil.Normalize360(args.Lprime + sigmaL/1e6)
	beta := sigmaB / 1e6
	delta := 385000.56 + sigmaR/1000.0

	return Geocentric{
		Longitude: lambda,
		Latitude:  beta,
		Distance:  delta,
		Args:      args,
	}
}

// Nutation evaluates the abbreviated IAU 1980 series (terms.go) at
// Julian Century T, returning Δψ (nutation in longitude) and Δε
// (nutation in obliquity), both in degrees.
func Nutation(t float64) (dpsi, deps float64) {
	args := MeanArguments(t)
	omega := timeutil.Normalize360(125.04452 - 1934.136261*t)

	var psiSum, epsSum float64
	for _, term := range nutationTerms {
		arg := timeutil.Deg2Rad(
			float64(term.mp)*args.Mp + float64(term.m)*args.M +
				float64(term.f)*args.F + float64(term.d)*args.D +
				float64(term.omega)*omega,
		)
		psiSum += (term.psiAmp + term.psiRate*t) * math.Sin(arg)
		epsSum += (term.epsAmp + term.epsRate*t) * math.Cos(arg)
	}

	// Amplitudes are in 1e-4 arcsec; convert to degrees.
	dpsi = psiSum / 1e4 / 3600.0
	deps = epsSum / 1e4 / 3600.0
	return dpsi, deps
}

// Equatorial converts geocentric ecliptic (λ☾ including nutation, β☾) to
// right ascension / declination using obliquity ε = ε0 + Δε, per spec
// §4.3's "Equatorial conversion".
func (g Geocentric) Equatorial(apparentLambda, trueObliquity float64) Equatorial {
	lr := timeutil.Deg2Rad(apparentLambda)
	br := timeutil.Deg2Rad(g.Latitude)
	er := timeutil.Deg2Rad(trueObliquity)

	ra := timeutil.Normalize360(timeutil.Rad2Deg(math.Atan2(
		math.Sin(lr)*math.Cos(er)-math.Tan(br)*math.Sin(er),
		math.Cos(lr),
	)))
	dec := timeutil.Rad2Deg(math.Asin(timeutil.Clamp(
		math.Sin(br)*math.Cos(er) + math.Cos(br)*math.Sin(er)*math.Sin(lr),
	)))

	return Equatorial{RA: ra, Dec: dec}
}

// MeanObliquity returns ε0, degrees, per spec §4.2's polynomial (shared
// with the Solar Model): ε0 = 23.439291 - T(0.0130042 + T(1.64e-7 - T·5.03e-7)).
func MeanObliquity(t float64) float64 {
	return timeutil.Polynome(t, 23.439291, -0.0130042, -1.64e-7, 5.03e-7)
}
