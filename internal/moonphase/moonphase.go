// Package moonphase implements the Lunar Phase Solver of spec §4.7: the
// lunation-index (k) based instant solver for New Moon, First Quarter,
// Full Moon, and Last Quarter, following Meeus chapter 49.
package moonphase

import (
	"math"
	"time"

	"github.com/thurmanmarka/astroglide/internal/deltat"
	"github.com/thurmanmarka/astroglide/internal/timeutil"
)

// Kind identifies one of the four named lunar phases.
type Kind int

const (
	KindNewMoon Kind = iota
	KindFirstQuarter
	KindFullMoon
	KindLastQuarter
)

func (k Kind) String() string {
	switch k {
	case KindNewMoon:
		return "New Moon"
	case KindFirstQuarter:
		return "First Quarter"
	case KindFullMoon:
		return "Full Moon"
	case KindLastQuarter:
		return "Last Quarter"
	default:
		return "unknown"
	}
}

// InstantTT computes the phase instant (Terrestrial Time, as a Julian
// Ephemeris Day) for lunation index k and the named Kind, per Meeus
// (49.1) plus the Table 49.A/49.B/49.W periodic corrections.
func InstantTT(k float64, kind Kind) float64 {
	t := k / 1236.85

	// The linear terms are per lunation (k); the higher-order terms are in T.
	jde := 29.530588861*k + timeutil.Polynome(t,
		2451550.09766, 0, 0.00015437, -0.000000150, 0.00000000073)

	e := timeutil.Polynome(t, 1, -0.002516, -0.0000074)

	m := timeutil.Normalize360(29.10535670*k + timeutil.Polynome(t, 2.5534, 0, -0.0000014, -0.00000011))
	mp := timeutil.Normalize360(385.81693528*k + timeutil.Polynome(t, 201.5643, 0, 0.0107582, 0.00001238, -0.000000058))
	f := timeutil.Normalize360(390.67050284*k + timeutil.Polynome(t, 160.7108, 0, -0.0016118, -0.00000227, 0.000000011))
	omega := timeutil.Normalize360(-1.56375588*k + timeutil.Polynome(t, 124.7746, 0, 0.0020672, 0.00000215))

	var correction float64
	switch kind {
	case KindNewMoon, KindFullMoon:
		// Table 49.A's corrections are shared between New Moon and Full
		// Moon; newFullMoonTerms already carries the correct per-row signs.
		correction = sumCorrections(newFullMoonTerms, e, m, mp, f, omega)
	case KindFirstQuarter, KindLastQuarter:
		correction = sumCorrections(quarterTerms, e, m, mp, f, omega)
		w := sumAsymmetry(e, m, mp, f, omega)
		if kind == KindFirstQuarter {
			correction += w
		} else {
			correction -= w
		}
	}

	correction += planetaryCorrection(t)

	return jde + correction
}

func sumCorrections(terms []correctionTerm, e, m, mp, f, o float64) float64 {
	var sum float64
	for _, term := range terms {
		scale := eScale(term.eFactor, e)
		arg := float64(term.m)*m + float64(term.mp)*mp + float64(term.f)*f + float64(term.o)*o
		sum += term.coeff * scale * timeutil.SinD(arg)
	}
	return sum
}

func sumAsymmetry(e, m, mp, f, o float64) float64 {
	var sum float64
	for _, term := range quarterAsymmetryTerms {
		scale := eScale(term.eFactor, e)
		arg := float64(term.m)*m + float64(term.mp)*mp + float64(term.f)*f + float64(term.o)*o
		sum += term.coeff * scale * timeutil.CosD(arg)
	}
	return sum
}

func eScale(factor int, e float64) float64 {
	switch factor {
	case 1:
		return e
	case 2:
		return e * e
	default:
		return 1
	}
}

func planetaryCorrection(t float64) float64 {
	var sum float64
	for _, term := range planetaryTerms {
		arg := timeutil.Normalize360(term.baseDeg + term.perCentury*t)
		sum += term.amp * timeutil.SinD(arg)
	}
	return sum
}

// Instant is a solved phase event: the named Kind and the instant in UTC.
type Instant struct {
	Kind Kind
	Time time.Time
}

// InstantsInRange returns every phase instant of all four kinds whose UTC
// time falls within [start, end), per spec §4.7. start/end should be in
// the same location the caller wants results attributed to; comparisons
// are done after converting to UTC.
func InstantsInRange(start, end time.Time) []Instant {
	startUTC := start.UTC()
	endUTC := end.UTC()

	// Scan a little wider than the requested window in lunation-index
	// space, then filter by exact instant, so phases straddling the
	// window edges aren't missed by the coarse year-based k estimate.
	y1 := yearFraction(startUTC) - 0.1
	y2 := yearFraction(endUTC) + 0.1

	var out []Instant
	kinds := []Kind{KindNewMoon, KindFirstQuarter, KindFullMoon, KindLastQuarter}

	kStart := math.Floor((y1 - 2000) * 12.3685)
	kEnd := math.Ceil((y2-2000)*12.3685) + 1

	for k := kStart; k <= kEnd; k++ {
		for _, kind := range kinds {
			kOffset := kForYearOffset(k, kind)
			jde := InstantTT(kOffset, kind)
			dt := deltat.ForJD(jde)
			jdUTC := jde - dt/86400.0
			tm := timeutil.TimeFromJulianDay(jdUTC)

			if !tm.Before(startUTC) && tm.Before(endUTC) {
				out = append(out, Instant{Kind: kind, Time: tm})
			}
		}
	}

	sortInstants(out)
	return out
}

// kForYearOffset maps an integer base lunation count k to the fractional
// index for the requested Kind's quarter offset.
func kForYearOffset(k float64, kind Kind) float64 {
	switch kind {
	case KindFirstQuarter:
		return k + 0.25
	case KindFullMoon:
		return k + 0.5
	case KindLastQuarter:
		return k + 0.75
	default:
		return k
	}
}

func yearFraction(t time.Time) float64 {
	year := t.Year()
	startOfYear := time.Date(year, 1, 1, 0, 0, 0, 0, time.UTC)
	startOfNext := time.Date(year+1, 1, 1, 0, 0, 0, 0, time.UTC)
	frac := t.Sub(startOfYear).Seconds() / startOfNext.Sub(startOfYear).Seconds()
	return float64(year) + frac
}

func sortInstants(in []Instant) {
	for i := 1; i < len(in); i++ {
		for j := i; j > 0 && in[j].Time.Before(in[j-1].Time); j-- {
			in[j], in[j-1] = in[j-1], in[j]
		}
	}
}
