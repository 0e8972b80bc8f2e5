package ucum

import "fmt"

// ErrorKind is the exhaustive error taxonomy an embedder can switch on.
type ErrorKind int

const (
	// ErrSyntax means the parser rejected the input outright.
	ErrSyntax ErrorKind = iota
	// ErrUnknownUnit means a symbol resolved to neither an atom nor a
	// prefix+atom pair.
	ErrUnknownUnit
	// ErrUnknownPrefix is a diagnostic variant for a nonexistent prefix.
	// No operation in this package returns it: a failed prefix split is
	// reported as ErrUnknownUnit.
	ErrUnknownPrefix
	// ErrOffsetUnitInExpression means a special unit (an offset temperature
	// unit such as Cel, [degF], [degR], or a log unit such as dB) appeared
	// somewhere other than as the sole symbol of the whole expression.
	ErrOffsetUnitInExpression
	// ErrIncommensurable means a conversion was attempted between unlike
	// dimensions.
	ErrIncommensurable
	// ErrIncompatibleArbitrary means a conversion or combination mixed two
	// arbitrary units with different bases.
	ErrIncompatibleArbitrary
	// ErrDimensionOverflow means an exponent pushed a dimension component
	// outside the signed 8-bit range.
	ErrDimensionOverflow
	// ErrUnknownProperty means AtomsForProperty received an unrecognised
	// classifier name. (A property-filtered Search with an unknown name
	// returns no results rather than this error.)
	ErrUnknownProperty
	// ErrBadExponent means a non-integer or out-of-range exponent
	// appeared in '^' or bare-integer context.
	ErrBadExponent
)

func (k ErrorKind) String() string {
	switch k {
	case ErrSyntax:
		return "Syntax"
	case ErrUnknownUnit:
		return "UnknownUnit"
	case ErrUnknownPrefix:
		return "UnknownPrefix"
	case ErrOffsetUnitInExpression:
		return "OffsetUnitInExpression"
	case ErrIncommensurable:
		return "Incommensurable"
	case ErrIncompatibleArbitrary:
		return "IncompatibleArbitrary"
	case ErrDimensionOverflow:
		return "DimensionOverflow"
	case ErrUnknownProperty:
		return "UnknownProperty"
	case ErrBadExponent:
		return "BadExponent"
	default:
		return "Unknown"
	}
}

// Error is the error type every parse, evaluation and conversion operation
// in this package returns (wrapped in the standard error interface), so
// callers can recover the structured fields via errors.As. NewRegistry's
// duplicate-code errors are plain fmt.Errorf values instead.
type Error struct {
	Kind   ErrorKind
	Code   string  // offending unit/prefix code, where applicable
	Span   [2]int  // byte offsets [start, end) into the micro-sign-normalised input
	Reason string  // short human-readable reason
	Suggest string // best-effort edit-distance suggestion, never authoritative

	FromDim, ToDim     Dimension // for ErrIncommensurable
	FromBase, ToBase   string    // for ErrIncompatibleArbitrary
	Value              float64   // for ErrBadExponent
}

func (e *Error) Error() string {
	switch e.Kind {
	case ErrUnknownUnit, ErrUnknownPrefix:
		if e.Suggest != "" {
			return fmt.Sprintf("%s: %q at %d (did you mean %q?)", e.Kind, e.Code, e.Span[0], e.Suggest)
		}
		return fmt.Sprintf("%s: %q at %d", e.Kind, e.Code, e.Span[0])
	case ErrOffsetUnitInExpression:
		return fmt.Sprintf("%s: %q", e.Kind, e.Code)
	case ErrIncommensurable:
		return fmt.Sprintf("%s: %s vs %s", e.Kind, e.FromDim, e.ToDim)
	case ErrIncompatibleArbitrary:
		return fmt.Sprintf("%s: %q vs %q", e.Kind, e.FromBase, e.ToBase)
	case ErrUnknownProperty:
		return fmt.Sprintf("%s: %q", e.Kind, e.Code)
	case ErrBadExponent:
		return fmt.Sprintf("%s: %v at %d", e.Kind, e.Value, e.Span[0])
	case ErrSyntax:
		return fmt.Sprintf("%s at [%d,%d): %s", e.Kind, e.Span[0], e.Span[1], e.Reason)
	default:
		return fmt.Sprintf("%s: %s", e.Kind, e.Reason)
	}
}

// Diagnostic is the rich, caller-facing shape of an Error: the original
// input, the offending span, a short reason, and an optional suggestion.
type Diagnostic struct {
	Input   string
	Kind    ErrorKind
	Span    [2]int
	Reason  string
	Suggest string
}

// AsDiagnostic converts any error returned by this package into a
// Diagnostic carrying the original input, or ok=false if err is nil or
// not one of this package's *Error values.
func AsDiagnostic(input string, err error) (Diagnostic, bool) {
	e, ok := err.(*Error)
	if !ok || e == nil {
		return Diagnostic{}, false
	}
	return Diagnostic{
		Input:   input,
		Kind:    e.Kind,
		Span:    e.Span,
		Reason:  e.Reason,
		Suggest: e.Suggest,
	}, true
}
