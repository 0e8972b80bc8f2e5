package ucum

// canonicalForm is the rendered shape of a resolved unit expression: its
// dimension vector, its scale factor against the seven SI canonical base
// units, and (for a special unit standing alone) the additive/log
// parameters needed to round-trip a value.
type canonicalForm struct {
	Dim      Dimension
	Factor   float64
	Special  SpecialKind
	Offset   float64
	LogBase  float64
	LogScale float64
	Arbitrary string
}

// knownDerivedSymbols maps a dimension vector to the conventional symbol a
// reader would recognise it as, used only to make GetCanonical's string
// output readable (e.g. "N" instead of "g.m/s2"); it is never consulted
// during evaluation or conversion, which always work in the base-symbol
// vector form. Grounded on the teacher's formatter.go KnownSymbols map,
// which served the identical "recognise a common derived dimension and
// print its name" purpose for its four SI-derived constants.
var knownDerivedSymbols = map[Dimension]string{
	mustDim(0, 0, -1, 0, 0, 0, 0):  "Hz",
	mustDim(1, 1, -2, 0, 0, 0, 0):  "N",
	mustDim(1, -1, -2, 0, 0, 0, 0): "Pa",
	mustDim(1, 2, -2, 0, 0, 0, 0):  "J",
	mustDim(1, 2, -3, 0, 0, 0, 0):  "W",
	mustDim(0, 0, 1, 1, 0, 0, 0):   "C",
	mustDim(1, 2, -3, -1, 0, 0, 0): "V",
}

func mustDim(mass, length, time, current, temp, amount, lum int8) Dimension {
	return Dimension{mass, length, time, current, temp, amount, lum}
}

// CanonicalInfo is the canonical form of a parsed unit expression, as
// returned by Analyse and GetCanonical: its dimension vector and scale
// factor against the registry's canonical base units, plus a human-readable
// Display rendering that prefers a recognised derived-unit symbol over the
// raw base-symbol vector ("1" for a dimensionless result).
type CanonicalInfo struct {
	Dimension Dimension
	Factor    float64
	Display   string
}

func canonicalDisplay(dim Dimension) string {
	if name, ok := knownDerivedSymbols[dim]; ok {
		return name
	}
	return dim.String()
}

// evalToCanonical folds an EvalResult into the public CanonicalInfo shape,
// the bridge between the internal evaluator representation and api.go's
// exported operations.
func evalToCanonical(res EvalResult) CanonicalInfo {
	return CanonicalInfo{
		Dimension: res.Dim,
		Factor:    res.Factor.Float64(),
		Display:   canonicalDisplay(res.Dim),
	}
}
