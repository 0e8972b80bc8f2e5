package ucum

import "math"

// evalContext carries everything Eval needs to resolve a symbol and choose
// arithmetic precision, threaded down through the AST rather than held as
// package-level state (spec.md §9: no mutable global registry).
type evalContext struct {
	registry *Registry
	backend  Backend
}

// EvalResult is the folded value of a subtree: a scale Factor against the
// canonical unit of Dim, plus the bookkeeping needed to detect the special-
// unit misuse rules of spec.md §4.4 once evaluation reaches the top.
type EvalResult struct {
	Factor Number
	Dim    Dimension

	// IsSpecial is true when this subtree is exactly one special unit
	// (temperature or log), not combined with anything else. Only a
	// top-level SymbolNode/AnnotatedNode/GroupNode-of-exactly-that can be
	// IsSpecial; as soon as a special unit takes part in a Product/
	// Quotient/Power it is an error (ErrOffsetUnitInExpression), enforced
	// at the point of combination below, not deferred to the caller.
	IsSpecial   bool
	SpecialKind SpecialKind
	// Offset is the additive term for a SpecialTemperature unit, and the
	// log base for a SpecialLog unit is carried via LogBase/LogScale
	// instead of folded into Factor, because canonical conversion for a
	// log unit is not a scalar multiply at all.
	Offset   float64
	LogBase  float64
	LogScale float64

	// IsArbitrary marks an arbitrary unit ([IU], [arb'U]); ArbitraryBase
	// identifies which one, since two different arbitrary units are never
	// commensurable even though both are formally dimensionless.
	IsArbitrary   bool
	ArbitraryBase string
}

func (n *SymbolNode) Eval(ctx *evalContext) (EvalResult, error) {
	return resolveSymbol(ctx, n.Text, 0)
}

// resolveSymbol looks up code directly, then via the prefix splitter,
// matching spec.md §4.1/§4.2's two-stage resolution order. span is passed
// through only for error reporting and is 0 when the caller has no better
// offset (Eval is not position-aware beyond the token that carried Text).
func resolveSymbol(ctx *evalContext, code string, span int) (EvalResult, error) {
	if a, ok := ctx.registry.FindAtom(code); ok {
		return evalResultFromAtom(ctx, a, nil)
	}
	if split, ok := ctx.registry.splitPrefix(code); ok {
		return evalResultFromAtom(ctx, split.atom, split.prefix)
	}
	return EvalResult{}, &Error{Kind: ErrUnknownUnit, Code: code, Span: [2]int{span, span + len(code)}}
}

func evalResultFromAtom(ctx *evalContext, a *Atom, prefix *Prefix) (EvalResult, error) {
	factor := NewNumber(ctx.backend, a.Factor)
	if prefix != nil {
		factor = NewNumber(ctx.backend, prefix.Factor).Mul(factor)
	}
	res := EvalResult{
		Factor: factor,
		Dim:    a.Dimension,
	}
	switch a.SpecialKind {
	case SpecialTemperature:
		res.IsSpecial = true
		res.SpecialKind = SpecialTemperature
		res.Offset = a.Offset
	case SpecialLog:
		res.IsSpecial = true
		res.SpecialKind = SpecialLog
		res.LogBase = a.LogBase
		res.LogScale = a.LogScale
	}
	if a.IsArbitrary {
		res.IsArbitrary = true
		res.ArbitraryBase = a.Code
	}
	return res, nil
}

func (n *NumericNode) Eval(ctx *evalContext) (EvalResult, error) {
	return EvalResult{Factor: n.Value, Dim: Dimensionless}, nil
}

func (n *AnnotationNode) Eval(ctx *evalContext) (EvalResult, error) {
	return EvalResult{Factor: NewNumber(ctx.backend, 1), Dim: Dimensionless}, nil
}

func (n *AnnotatedNode) Eval(ctx *evalContext) (EvalResult, error) {
	return n.Inner.Eval(ctx)
}

func (n *GroupNode) Eval(ctx *evalContext) (EvalResult, error) {
	return n.Inner.Eval(ctx)
}

// Eval for PowerNode enforces that a special unit may never be exponentiated
// (spec.md §4.4: offset and log units are valid only as the sole symbol of
// an expression).
func (n *PowerNode) Eval(ctx *evalContext) (EvalResult, error) {
	inner, err := n.Inner.Eval(ctx)
	if err != nil {
		return EvalResult{}, err
	}
	if inner.IsSpecial {
		return EvalResult{}, &Error{Kind: ErrOffsetUnitInExpression, Reason: "special unit cannot be exponentiated"}
	}
	dim, err := inner.Dim.scale(n.Exponent)
	if err != nil {
		return EvalResult{}, err
	}
	return EvalResult{
		Factor:        inner.Factor.Pow(n.Exponent),
		Dim:           dim,
		IsArbitrary:   inner.IsArbitrary,
		ArbitraryBase: inner.ArbitraryBase,
	}, nil
}

// Eval for ProductNode enforces the same special-unit exclusivity rule, and
// propagates/validates arbitrary-unit compatibility (spec.md §4.4: two
// different arbitrary bases may never combine).
func (n *ProductNode) Eval(ctx *evalContext) (EvalResult, error) {
	left, err := n.Left.Eval(ctx)
	if err != nil {
		return EvalResult{}, err
	}
	right, err := n.Right.Eval(ctx)
	if err != nil {
		return EvalResult{}, err
	}
	if left.IsSpecial || right.IsSpecial {
		return EvalResult{}, &Error{Kind: ErrOffsetUnitInExpression, Reason: "special unit cannot combine with another term"}
	}
	base, err := combineArbitrary(left, right)
	if err != nil {
		return EvalResult{}, err
	}
	dim, err := left.Dim.add(right.Dim)
	if err != nil {
		return EvalResult{}, err
	}
	return EvalResult{
		Factor:        left.Factor.Mul(right.Factor),
		Dim:           dim,
		IsArbitrary:   base != "",
		ArbitraryBase: base,
	}, nil
}

// Eval for QuotientNode divides the result of Left by the result of Right.
// The parser builds a run of slashes left-deep, so for "a/b/c" Left is the
// already-evaluated a/b and each successive divisor divides the result of
// everything to its left, giving the numeric identity a.b⁻¹.c⁻¹.
func (n *QuotientNode) Eval(ctx *evalContext) (EvalResult, error) {
	left, err := n.Left.Eval(ctx)
	if err != nil {
		return EvalResult{}, err
	}
	right, err := n.Right.Eval(ctx)
	if err != nil {
		return EvalResult{}, err
	}
	if left.IsSpecial || right.IsSpecial {
		return EvalResult{}, &Error{Kind: ErrOffsetUnitInExpression, Reason: "special unit cannot combine with another term"}
	}
	base, err := combineArbitrary(left, right)
	if err != nil {
		return EvalResult{}, err
	}
	dim, err := left.Dim.sub(right.Dim)
	if err != nil {
		return EvalResult{}, err
	}
	return EvalResult{
		Factor:        left.Factor.Quo(right.Factor),
		Dim:           dim,
		IsArbitrary:   base != "",
		ArbitraryBase: base,
	}, nil
}

// combineArbitrary returns the arbitrary base that survives combining left
// and right, or an error if both sides carry different arbitrary bases.
func combineArbitrary(left, right EvalResult) (string, error) {
	switch {
	case left.IsArbitrary && right.IsArbitrary:
		if left.ArbitraryBase != right.ArbitraryBase {
			return "", &Error{Kind: ErrIncompatibleArbitrary, FromBase: left.ArbitraryBase, ToBase: right.ArbitraryBase}
		}
		return left.ArbitraryBase, nil
	case left.IsArbitrary:
		return left.ArbitraryBase, nil
	case right.IsArbitrary:
		return right.ArbitraryBase, nil
	default:
		return "", nil
	}
}

// toCanonicalValue applies the special-unit regime (X) described in
// special.go's doc comment: a temperature unit adds Offset after scaling, a
// log unit exponentiates, everything else is a pure scalar multiply.
func toCanonicalValue(res EvalResult, value float64) float64 {
	switch {
	case res.IsSpecial && res.SpecialKind == SpecialTemperature:
		return value*res.Factor.Float64() + res.Offset
	case res.IsSpecial && res.SpecialKind == SpecialLog:
		return math.Pow(res.LogBase, value/res.LogScale)
	default:
		return value * res.Factor.Float64()
	}
}

// fromCanonicalValue inverts toCanonicalValue.
func fromCanonicalValue(res EvalResult, canonical float64) float64 {
	switch {
	case res.IsSpecial && res.SpecialKind == SpecialTemperature:
		return (canonical - res.Offset) / res.Factor.Float64()
	case res.IsSpecial && res.SpecialKind == SpecialLog:
		return res.LogScale * (math.Log(canonical) / math.Log(res.LogBase))
	default:
		return canonical / res.Factor.Float64()
	}
}
