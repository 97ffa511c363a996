package moon

// periodicTerm is one row of Meeus' lunar periodic-term tables: the
// integer multipliers of the four fundamental arguments D, M, M', F, and
// the amplitude of the associated sine/cosine term. Per the Design Note
// ("Table-driven periodic series ... should be stored as process-wide
// constant arrays"), these are package-level constants; no hot path
// allocates them.
//
// Non-goal (spec §1: "sub-arcsecond precision") licenses truncating
// Meeus Table 47.A/47.B's full 60 rows down to their dominant terms;
// DESIGN.md records the exact counts kept and the resulting accuracy
// tradeoff.
type periodicTerm struct {
	d, m, mp, f int     // argument multipliers
	amp         float64 // amplitude, units of 1e-6 degree (longitude/latitude) or 1e-3 km (distance)
}

// longitudeTerms is the principal-term subset of Meeus Table 47.A: amp is
// Σl's sine coefficient. Σr's cosine coefficients for the same argument
// rows are in distanceTerms below.
var longitudeTerms = []periodicTerm{
	{0, 0, 1, 0, 6288774},
	{2, 0, -1, 0, 1274027},
	{2, 0, 0, 0, 658314},
	{0, 0, 2, 0, 213618},
	{0, 1, 0, 0, -185116},
	{0, 0, 0, 2, -114332},
	{2, 0, -2, 0, 58793},
	{2, -1, -1, 0, 57066},
	{2, 0, 1, 0, 53322},
	{2, -1, 0, 0, 45758},
	{0, 1, -1, 0, -40923},
	{1, 0, 0, 0, -34720},
	{0, 1, 1, 0, -30383},
	{2, 0, -3, 0, 15327},
	{0, 0, 1, 2, -12528},
	{0, 0, 1, -2, 10980},
	{4, 0, -1, 0, 10675},
	{0, 0, 3, 0, 10034},
	{4, 0, -2, 0, 8548},
	{2, 1, -1, 0, -7888},
	{2, 1, 0, 0, -6766},
	{1, 0, -1, 0, -5163},
	{1, 1, 0, 0, 4987},
	{2, -1, 1, 0, 4036},
	{2, 0, 2, 0, 3994},
	{4, 0, 0, 0, 3861},
	{2, 0, -1, -2, 3665},
	{2, 1, 1, 0, -2689},
	{2, -2, -1, 0, -2602},
	{2, -1, -2, 0, 2390},
}

// distanceTerms shares its argument rows with longitudeTerms (Meeus lists
// Σl and Σr side by side per row); amp here is Σr's cosine coefficient in
// 1e-3 km.
var distanceTerms = []periodicTerm{
	{0, 0, 1, 0, -20905355},
	{2, 0, -1, 0, -3699111},
	{2, 0, 0, 0, -2955968},
	{0, 0, 2, 0, -569925},
	{0, 1, 0, 0, 48888},
	{0, 0, 0, 2, -3149},
	{2, 0, -2, 0, 246158},
	{2, -1, -1, 0, -152138},
	{2, 0, 1, 0, -170733},
	{2, -1, 0, 0, -204586},
	{0, 1, -1, 0, -129620},
	{1, 0, 0, 0, 108743},
	{0, 1, 1, 0, 104755},
	{2, 0, -3, 0, 10321},
	{0, 0, 1, 2, 0},
	{0, 0, 1, -2, 79661},
	{4, 0, -1, 0, -34782},
	{0, 0, 3, 0, -23210},
	{4, 0, -2, 0, -21636},
	{2, 1, -1, 0, 24208},
	{2, 1, 0, 0, 30824},
	{1, 0, -1, 0, -8379},
	{1, 1, 0, 0, -16675},
	{2, -1, 1, 0, -12831},
	{2, 0, 2, 0, -10445},
	{4, 0, 0, 0, -11650},
	{2, 0, -1, -2, 14403},
	{2, 1, 1, 0, -7003},
	{2, -2, -1, 0, 0},
	{2, -1, -2, 0, 10056},
}

// latitudeTerms is the principal-term subset of Meeus Table 47.B (Σb),
// amplitude in 1e-6 degree.
var latitudeTerms = []periodicTerm{
	{0, 0, 0, 1, 5128122},
	{0, 0, 1, 1, 280602},
	{0, 0, 1, -1, 277693},
	{2, 0, 0, -1, 173237},
	{2, 0, -1, 1, 55413},
	{2, 0, -1, -1, 46271},
	{2, 0, 0, 1, 32573},
	{0, 0, 2, 1, 17198},
	{2, 0, 1, -1, 9266},
	{0, 0, 2, -1, 8822},
	{2, -1, 0, -1, 8216},
	{2, 0, -2, -1, 4324},
	{2, 0, 1, 1, 4200},
	{2, 1, 0, -1, -3359},
	{2, -1, -1, 1, 2463},
	{2, -1, 0, 1, 2211},
	{2, -1, -1, -1, 2065},
	{0, 1, -1, -1, -1870},
	{4, 0, -1, -1, 1828},
	{0, 1, 0, 1, -1794},
}

// nutationTerm is one row of the abbreviated IAU 1980 nutation series
// (Meeus ch.22), indexed by the five Delaunay-like arguments M' (moon
// anomaly), M (sun anomaly), F (argument of latitude), D (elongation),
// Omega (lunar node longitude). Amplitudes are in 1e-4 arcseconds, with a
// linear per-century rate applied to the coefficient (the "T" terms
// Meeus tabulates alongside each amplitude).
type nutationTerm struct {
	mp, m, f, d, omega int
	psiAmp, psiRate    float64 // 1e-4 arcsec, 1e-4 arcsec/century
	epsAmp, epsRate    float64
}

// nutationTerms holds the ten largest-amplitude rows of the IAU 1980
// series -- well over spec §4.3's "abbreviated Meeus, ≥8 principal
// terms" floor.
var nutationTerms = []nutationTerm{
	{0, 0, 0, 0, 1, -171996, -174.2, 92025, 8.9},
	{0, 0, 2, -2, 2, -13187, -1.6, 5736, -3.1},
	{0, 0, 2, 0, 2, -2274, -0.2, 977, -0.5},
	{0, 0, 0, 0, 2, 2062, 0.2, -895, 0.5},
	{0, 1, 0, 0, 0, 1426, -3.4, 54, -0.1},
	{1, 0, 0, 0, 0, 712, 0.1, -7, 0},
	{0, 1, 2, -2, 2, -517, 1.2, 224, -0.6},
	{0, 0, 2, 0, 1, -386, -0.4, 200, 0},
	{1, 0, 2, 0, 2, -301, 0, 129, -0.1},
	{0, -1, 2, -2, 2, 217, -0.5, -95, 0.3},
}
