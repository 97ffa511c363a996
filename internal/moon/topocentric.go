package moon

import (
	"math"
	"time"

	"github.com/thurmanmarka/astroglide/internal/horizon"
	"github.com/thurmanmarka/astroglide/internal/sun"
	"github.com/thurmanmarka/astroglide/internal/timeutil"
)

// Full is the complete geocentric + topocentric + phase evaluation for a
// single instant and observer, per spec §4.3 and §3's LunarPosition
// entity.
type Full struct {
	Geo                Geocentric
	ApparentLongitude  float64 // λ☾ + Δψ
	TrueObliquity      float64 // ε0 + Δε
	GeocentricEq       Equatorial
	TopocentricAltAz   horizon.AltAz // refraction-corrected, parallax-corrected
	PhaseAngle         float64       // Sun-Moon elongation in longitude, degrees [0,360), 0=new, 180=full
	IlluminatedFrac    float64       // [0,1]
	ApparentDiamArcmin float64
	AgeDays            float64
}

// Evaluate computes the full lunar position/phase record at instant t for
// an observer at (latDeg, lonDeg, elevationMeters).
func Evaluate(t time.Time, latDeg, lonDeg, elevationMeters float64) Full {
	T := timeutil.JulianCenturies(t)
	geo := GeocentricPosition(T)

	dpsi, deps := Nutation(T)
	eps0 := MeanObliquity(T)
	trueObliquity := eps0 + deps
	apparentLambda := geo.Longitude + dpsi

	geoEq := geo.Equatorial(apparentLambda, trueObliquity)

	jd := timeutil.JulianDay(t)
	gmst := horizon.MeanSiderealTime(jd, T)
	apparentSidereal := horizon.ApparentSiderealTime(gmst, dpsi, trueObliquity)
	lst := horizon.LocalSiderealTime(apparentSidereal, lonDeg)

	topo := topocentricAltAz(geoEq, geo.Distance, latDeg, elevationMeters, lst)
	topo.Altitude += horizon.Refraction(topo.Altitude)

	sunRec := sun.PositionAt(t)
	phase := phaseDetail(sunRec, geoEq, geo.Distance)
	elongation := timeutil.Normalize360(apparentLambda - sunRec.ApparentLongitude)

	return Full{
		Geo:                geo,
		ApparentLongitude:  apparentLambda,
		TrueObliquity:      trueObliquity,
		GeocentricEq:       geoEq,
		TopocentricAltAz:   topo,
		PhaseAngle:         elongation,
		IlluminatedFrac:    phase.fraction,
		ApparentDiamArcmin: apparentDiameterArcmin(geo.Distance),
		AgeDays:            elongation * 29.530588 / 360.0,
	}
}

// topocentricAltAz applies the Meeus topocentric shift of spec §4.3 to a
// geocentric RA/Dec, given Earth-Moon distance and observer geodetics,
// then converts to altitude/azimuth.
func topocentricAltAz(geoEq Equatorial, distanceKm, latDeg, elevationMeters, lstDeg float64) horizon.AltAz {
	rhoSinPhi, rhoCosPhi := horizon.GeocentricObserver(latDeg, elevationMeters)

	pi := math.Asin(timeutil.Clamp(horizon.EarthRadiusKm / distanceKm)) // horizontal parallax, radians
	sinPi := math.Sin(pi)

	H := timeutil.Deg2Rad(horizon.HourAngle(lstDeg, geoEq.RA))
	decRad := timeutil.Deg2Rad(geoEq.Dec)

	deltaAlpha := math.Atan2(
		-rhoCosPhi*sinPi*math.Sin(H),
		math.Cos(decRad)-rhoCosPhi*sinPi*math.Cos(H),
	)

	raTopoRad := timeutil.Deg2Rad(geoEq.RA) + deltaAlpha
	decTopoRad := math.Atan2(
		(math.Sin(decRad)-rhoSinPhi*sinPi)*math.Cos(deltaAlpha),
		math.Cos(decRad)-rhoCosPhi*sinPi*math.Cos(H),
	)

	raTopo := timeutil.Rad2Deg(raTopoRad)
	decTopo := timeutil.Rad2Deg(decTopoRad)

	Htopo := horizon.HourAngle(lstDeg, raTopo)
	return horizon.FromEquatorial(Htopo, decTopo, latDeg)
}

type phaseResult struct {
	angle    float64
	fraction float64
}

// phaseDetail computes the phase angle and illuminated fraction of spec
// §4.3, using the full geometric formula (Sun-Earth distance R, the
// Sun-Moon angular separation ψ, then i = atan2(R sinψ, Δ - R cosψ)) --
// not the simpler Sun-Moon-separation-only approximation the teacher's
// MoonPhaseAt used. This i is the Sun-Moon angle seen from the Moon:
// 180° at new moon, 0° at full, within [0°, 180°]; it feeds only the
// illuminated fraction. Evaluate reports the 0°=new/180°=full elongation
// as Full.PhaseAngle.
func phaseDetail(sunRec sun.Record, moonEq Equatorial, deltaKm float64) phaseResult {
	R := sun.MeanDistanceKm(sunRec.MeanAnomaly)

	decSun := timeutil.Deg2Rad(sunRec.Declination)
	decMoon := timeutil.Deg2Rad(moonEq.Dec)
	dRA := timeutil.Deg2Rad(sunRec.RightAscension - moonEq.RA)

	cosPsi := timeutil.Clamp(math.Sin(decSun)*math.Sin(decMoon) +
		math.Cos(decSun)*math.Cos(decMoon)*math.Cos(dRA))
	psi := math.Acos(cosPsi)

	i := timeutil.Normalize360(timeutil.Rad2Deg(math.Atan2(
		R*math.Sin(psi),
		deltaKm-R*math.Cos(psi),
	)))

	k := (1 + timeutil.CosD(i)) / 2
	if k < 0 {
		k = 0
	} else if k > 1 {
		k = 1
	}

	return phaseResult{angle: i, fraction: k}
}

// apparentDiameterArcmin returns the Moon's apparent angular diameter in
// arcminutes at distance deltaKm, per spec §4.3.
func apparentDiameterArcmin(deltaKm float64) float64 {
	rad := 2 * math.Atan(1737.4/deltaKm)
	return timeutil.Rad2Deg(rad) * 60.0
}
