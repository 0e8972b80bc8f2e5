package ucum

// This file documents the special-unit regime (X) referenced throughout
// evaluator.go and atom.go: the three ways a UCUM atom's relationship to
// its canonical base can deviate from a pure scalar multiply, and the
// invariant that the parser/evaluator jointly enforce around them
// (spec.md §4.4). The dispatch itself lives in evalResultFromAtom,
// toCanonicalValue and fromCanonicalValue (evaluator.go); this file
// supplies the conversion entry points built on top of them.
//
// Temperature (Cel, [degF], [degR]): to_canonical(v) = v*Factor + Offset,
// an affine map, grounded on the teacher's conversion.go registration-table
// pattern (a fixed table of named conversions rather than a derived
// formula), adapted here from the teacher's linear-only table to one that
// also carries the non-linear log case below.
//
// Logarithmic (dB, B, Np): to_canonical(v) = LogBase^(v/LogScale).
//
// Arbitrary ([IU], [arb'U]): dimensionless, and commensurable only with
// itself — two different arbitrary bases never combine or convert, even
// though both report Dimensionless.
//
// The shared invariant: a special unit may only ever appear as the sole
// symbol of an entire expression. "Cel2", "Cel.m", "dB/s" are all rejected
// at evaluation time (ErrOffsetUnitInExpression), not at parse time, since
// the grammar itself cannot distinguish a special atom from an ordinary
// one without a registry lookup.

// convertValue converts value (expressed in the unit described by from) to
// the unit described by to, by round-tripping through the shared canonical
// representation: from's to_canonical, then to's from_canonical.
func convertValue(from, to EvalResult, value float64) (float64, error) {
	if !from.Dim.IsZero() || !to.Dim.IsZero() {
		if from.Dim != to.Dim {
			return 0, &Error{Kind: ErrIncommensurable, FromDim: from.Dim, ToDim: to.Dim}
		}
	}
	if from.IsArbitrary || to.IsArbitrary {
		if from.ArbitraryBase != to.ArbitraryBase {
			return 0, &Error{Kind: ErrIncompatibleArbitrary, FromBase: from.ArbitraryBase, ToBase: to.ArbitraryBase}
		}
		// Arbitrary units are not commensurable with anything but
		// themselves, but a prefixed arbitrary unit (k[IU] vs [IU]) still
		// scales like any other metric atom: the shared base only waives
		// the dimension check, not the factor.
		return value * from.Factor.Float64() / to.Factor.Float64(), nil
	}
	canonical := toCanonicalValue(from, value)
	return fromCanonicalValue(to, canonical), nil
}

// comparableResults reports whether two resolved units could ever be passed to
// convertValue without an ErrIncommensurable/ErrIncompatibleArbitrary
// result, without actually performing a conversion (spec.md's
// is_comparable operation).
func comparableResults(a, b EvalResult) bool {
	if a.IsArbitrary || b.IsArbitrary {
		return a.IsArbitrary && b.IsArbitrary && a.ArbitraryBase == b.ArbitraryBase
	}
	return a.Dim == b.Dim
}
