package moonphase

// correctionTerm is one row of Meeus Table 49.A/49.B: integer multipliers
// of the phase-relative arguments E^n (implicit via eFactor), M, M', F, Ω
// and the coefficient of the periodic correction (days) added to the mean
// phase JDE.
type correctionTerm struct {
	eFactor     int // 0, 1, or 2: power of E applied to the coefficient
	m, mp, f, o int // multipliers of M, M', F, Omega
	coeff       float64
}

// newMoonTerms is Table 49.A's correction series for New Moon and Full
// Moon (the "general" phases), applied to both with a sign flip on a
// handful of sine terms per Meeus' recipe -- both phases read this same
// table, so it is shared rather than duplicated.
var newFullMoonTerms = []correctionTerm{
	{1, 0, 1, 0, 0, -0.40720},
	{0, 1, 0, 0, 0, 0.17241},
	{1, 0, 2, 0, 0, 0.01608},
	{1, 0, 0, 2, 0, 0.01039},
	{2, 2, -1, 0, 0, 0.00739},
	{0, 0, 0, 2, 0, -0.00514},
	{2, 2, 1, 0, 0, 0.00208},
	{0, 1, -1, 0, 0, -0.00111},
	{0, 0, 2, 0, 0, -0.00057},
	{0, 1, 1, 0, 0, 0.00056},
	{0, 0, 0, 0, 1, -0.00042},
	{0, 1, 0, 2, 0, 0.00042},
	{0, 1, 0, -2, 0, 0.00038},
	{0, 2, 1, 0, 0, -0.00024},
}

// quarterTerms is Table 49.B's correction series for First/Last Quarter.
var quarterTerms = []correctionTerm{
	{1, 0, 1, 0, 0, -0.62801},
	{0, 1, 0, 0, 0, 0.17172},
	{1, 0, 2, 0, 0, -0.01183},
	{1, 0, 0, 2, 0, 0.00862},
	{2, 2, -1, 0, 0, 0.00804},
	{0, 0, 0, 2, 0, 0.00454},
	{2, 2, 1, 0, 0, 0.00204},
	{0, 1, -1, 0, 0, -0.00180},
	{0, 0, 2, 0, 0, -0.00070},
	{0, 1, 1, 0, 0, -0.00040},
	{0, 0, 0, 0, 1, -0.00034},
	{0, 1, 0, 2, 0, 0.00032},
	{0, 1, 0, -2, 0, 0.00032},
}

// quarterAsymmetry (Meeus' "W") is added to First Quarter and subtracted
// from Last Quarter; it captures the quarter-specific asymmetry the New/
// Full terms don't need.
type asymmetryTerm struct {
	eFactor     int
	m, mp, f, o int
	coeff       float64
}

var quarterAsymmetryTerms = []asymmetryTerm{
	{0, 0, 0, 0, 0, 0.00306},
	{1, 1, 0, 0, 0, -0.00038},
	{0, 0, 1, 0, 0, 0.00026},
	{0, -1, 1, 0, 0, -0.00002},
	{0, 1, 1, 0, 0, 0.00002},
	{0, 0, 0, 2, 0, 0.00002},
}

// planetaryTerms is the short list of additional periodic corrections
// Meeus applies to every phase (A1..A14 in his notation), argument in
// degrees, amplitude in days.
type planetaryTerm struct {
	baseDeg, perCentury, amp float64
}

var planetaryTerms = []planetaryTerm{
	{299.77, 132.8475848, 0.000325}, // -0.009173*k*k term folded separately
	{251.88, 0.016321, 0.000165},
	{251.83, 26350.4720, 0.000164},
	{349.42, 36262.4773, 0.000126},
	{84.66, 18206.0677, 0.000110},
	{141.74, 53323.1306, 0.000062},
	{207.14, 2.4543, 0.000060},
	{154.84, 7842.3042, 0.000056},
	{34.52, 368.9652, 0.000047},
	{207.19, 4.9268, 0.000042},
	{291.34, 19939.3154, 0.000040},
	{161.72, 27.1414, 0.000037},
	{239.56, 740.3400, 0.000035},
	{331.55, 12479.6952, 0.000023},
}
