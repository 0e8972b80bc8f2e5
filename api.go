package ucum

import "fmt"

// This file is the package's public operation surface (spec.md §4):
// Validate, Analyse, Convert, IsComparable, GetCanonical, UnitMultiply,
// UnitDivide and Explain. Each has a DefaultRegistry-bound convenience
// function and a Registry-method form, mirroring the teacher's si.go split
// between package-level constructors (si.Meter, si.New) and the
// lower-level Context/Unit methods they were built from.

func newEvalContext(r *Registry, backend Backend) *evalContext {
	return &evalContext{registry: r, backend: backend}
}

// Validate reports whether expr is a syntactically and semantically valid
// UCUM unit expression against r, returning the first error encountered if
// not.
func (r *Registry) Validate(expr string) error {
	_, err := r.Analyse(expr)
	return err
}

// Validate validates expr against DefaultRegistry().
func Validate(expr string) error {
	return DefaultRegistry().Validate(expr)
}

// Analyse parses and fully resolves expr under the Float64 backend,
// returning its canonical dimension/factor/display form. Use
// AnalyseWithBackend to resolve it exactly under the Decimal backend
// instead (spec.md §5, §8).
func (r *Registry) Analyse(expr string) (CanonicalInfo, error) {
	return r.AnalyseWithBackend(expr, Float64Backend)
}

// Analyse analyses expr against DefaultRegistry().
func Analyse(expr string) (CanonicalInfo, error) {
	return DefaultRegistry().Analyse(expr)
}

// AnalyseWithBackend is Analyse with an explicit choice of numeric backend.
// Every numeric literal in expr and every atom/prefix factor pulled in
// during evaluation is built against the same backend, so the two never
// mix within one call (spec.md §5: the two backends sit behind a single
// abstraction, selected once, not combined mid-expression).
func (r *Registry) AnalyseWithBackend(expr string, backend Backend) (CanonicalInfo, error) {
	node, err := ParseExpression(expr, backend)
	if err != nil {
		return CanonicalInfo{}, attachSuggestion(r, err)
	}
	res, err := node.Eval(newEvalContext(r, backend))
	if err != nil {
		return CanonicalInfo{}, attachSuggestion(r, err)
	}
	return evalToCanonical(res), nil
}

// AnalyseWithBackend analyses expr against DefaultRegistry() under backend.
func AnalyseWithBackend(expr string, backend Backend) (CanonicalInfo, error) {
	return DefaultRegistry().AnalyseWithBackend(expr, backend)
}

// attachSuggestion enriches an ErrUnknownUnit with a fuzzy-matched
// suggestion before returning it to the caller, so every public entry
// point offers a "did you mean" hint without every internal call site
// needing to know about search.go.
func attachSuggestion(r *Registry, err error) error {
	e, ok := err.(*Error)
	if !ok || e.Kind != ErrUnknownUnit || e.Suggest != "" {
		return err
	}
	e.Suggest = suggestClosest(r, e.Code)
	return e
}

// Convert converts value from the unit described by fromExpr to the unit
// described by toExpr, under the Float64 backend. Use ConvertWithBackend
// for exact Decimal-backend arithmetic.
func (r *Registry) Convert(value float64, fromExpr, toExpr string) (float64, error) {
	return r.ConvertWithBackend(value, fromExpr, toExpr, Float64Backend)
}

// Convert converts against DefaultRegistry().
func Convert(value float64, fromExpr, toExpr string) (float64, error) {
	return DefaultRegistry().Convert(value, fromExpr, toExpr)
}

// ConvertWithBackend is Convert with an explicit choice of numeric backend.
func (r *Registry) ConvertWithBackend(value float64, fromExpr, toExpr string, backend Backend) (float64, error) {
	fromNode, err := ParseExpression(fromExpr, backend)
	if err != nil {
		return 0, attachSuggestion(r, err)
	}
	toNode, err := ParseExpression(toExpr, backend)
	if err != nil {
		return 0, attachSuggestion(r, err)
	}
	ctx := newEvalContext(r, backend)
	from, err := fromNode.Eval(ctx)
	if err != nil {
		return 0, attachSuggestion(r, err)
	}
	to, err := toNode.Eval(ctx)
	if err != nil {
		return 0, attachSuggestion(r, err)
	}
	return convertValue(from, to, value)
}

// ConvertWithBackend converts against DefaultRegistry() under backend.
func ConvertWithBackend(value float64, fromExpr, toExpr string, backend Backend) (float64, error) {
	return DefaultRegistry().ConvertWithBackend(value, fromExpr, toExpr, backend)
}

// IsComparable reports whether values expressed in fromExpr could ever be
// converted to toExpr, without performing the conversion.
func (r *Registry) IsComparable(fromExpr, toExpr string) (bool, error) {
	return r.IsComparableWithBackend(fromExpr, toExpr, Float64Backend)
}

// IsComparable checks comparability against DefaultRegistry().
func IsComparable(fromExpr, toExpr string) (bool, error) {
	return DefaultRegistry().IsComparable(fromExpr, toExpr)
}

// IsComparableWithBackend is IsComparable with an explicit choice of
// numeric backend; comparability never depends on the backend (it only
// inspects dimension/arbitrary-base), but expression parsing still needs
// one to build any numeric-literal factor consistently.
func (r *Registry) IsComparableWithBackend(fromExpr, toExpr string, backend Backend) (bool, error) {
	ctx := newEvalContext(r, backend)
	fromNode, err := ParseExpression(fromExpr, backend)
	if err != nil {
		return false, attachSuggestion(r, err)
	}
	toNode, err := ParseExpression(toExpr, backend)
	if err != nil {
		return false, attachSuggestion(r, err)
	}
	from, err := fromNode.Eval(ctx)
	if err != nil {
		return false, attachSuggestion(r, err)
	}
	to, err := toNode.Eval(ctx)
	if err != nil {
		return false, attachSuggestion(r, err)
	}
	return comparableResults(from, to), nil
}

// GetCanonical is an alias for Analyse kept as its own entry point because
// spec.md names get_canonical and analyse as two operations even though
// this implementation's analyse already produces exactly get_canonical's
// result.
func (r *Registry) GetCanonical(expr string) (CanonicalInfo, error) {
	return r.Analyse(expr)
}

// GetCanonical resolves expr's canonical form against DefaultRegistry().
func GetCanonical(expr string) (CanonicalInfo, error) {
	return DefaultRegistry().GetCanonical(expr)
}

// UnitMultiply returns the unit expression for the product of two unit
// expressions, evaluated (not merely textually concatenated) so the result
// carries a correct combined dimension and factor.
func (r *Registry) UnitMultiply(aExpr, bExpr string) (CanonicalInfo, error) {
	return r.combine(aExpr, bExpr, Float64Backend, func(a, b Node) Node {
		return &ProductNode{Left: a, Right: b}
	})
}

// UnitMultiply multiplies against DefaultRegistry().
func UnitMultiply(aExpr, bExpr string) (CanonicalInfo, error) {
	return DefaultRegistry().UnitMultiply(aExpr, bExpr)
}

// UnitDivide returns the unit expression for the quotient of two unit
// expressions.
func (r *Registry) UnitDivide(aExpr, bExpr string) (CanonicalInfo, error) {
	return r.combine(aExpr, bExpr, Float64Backend, func(a, b Node) Node {
		return &QuotientNode{Left: a, Right: b}
	})
}

// UnitDivide divides against DefaultRegistry().
func UnitDivide(aExpr, bExpr string) (CanonicalInfo, error) {
	return DefaultRegistry().UnitDivide(aExpr, bExpr)
}

func (r *Registry) combine(aExpr, bExpr string, backend Backend, join func(a, b Node) Node) (CanonicalInfo, error) {
	aNode, err := ParseExpression(aExpr, backend)
	if err != nil {
		return CanonicalInfo{}, attachSuggestion(r, err)
	}
	bNode, err := ParseExpression(bExpr, backend)
	if err != nil {
		return CanonicalInfo{}, attachSuggestion(r, err)
	}
	res, err := join(aNode, bNode).Eval(newEvalContext(r, backend))
	if err != nil {
		return CanonicalInfo{}, attachSuggestion(r, err)
	}
	return evalToCanonical(res), nil
}

// AtomInfo is Explain's result: everything the registry knows about a
// single resolved atom reference, for tooling and documentation surfaces
// (spec.md's supplemented "explain" operation).
type AtomInfo struct {
	Code        string
	DisplayName string
	Property    string
	IsMetric    bool
	IsSpecial   bool
	SpecialKind string
	IsArbitrary bool
	Dimension   Dimension
	Factor      float64
	Offset      float64
	PrefixCode  string
	PrefixName  string
}

// Explain resolves a single symbol (not a full expression — "mg", not
// "mg/dL") and describes everything known about it, splitting a prefix off
// first if present.
func (r *Registry) Explain(code string) (AtomInfo, error) {
	if a, ok := r.FindAtom(code); ok {
		return atomInfoFrom(a, nil), nil
	}
	if split, ok := r.splitPrefix(code); ok {
		return atomInfoFrom(split.atom, split.prefix), nil
	}
	return AtomInfo{}, &Error{Kind: ErrUnknownUnit, Code: code, Suggest: suggestClosest(r, code)}
}

// Explain resolves code against DefaultRegistry().
func Explain(code string) (AtomInfo, error) {
	return DefaultRegistry().Explain(code)
}

func atomInfoFrom(a *Atom, prefix *Prefix) AtomInfo {
	info := AtomInfo{
		Code:        a.Code,
		DisplayName: a.DisplayName,
		Property:    a.Property,
		IsMetric:    a.IsMetric,
		IsSpecial:   a.IsSpecial,
		SpecialKind: a.SpecialKind.String(),
		IsArbitrary: a.IsArbitrary,
		Dimension:   a.Dimension,
		Factor:      a.Factor,
		Offset:      a.Offset,
	}
	if prefix != nil {
		info.PrefixCode = prefix.Code
		info.PrefixName = prefix.DisplayName
		info.Factor *= prefix.Factor
		info.DisplayName = fmt.Sprintf("%s%s", prefix.DisplayName, a.DisplayName)
	}
	return info
}
