package ucum

import (
	"math"
	"math/big"
	"strconv"
)

// Number is the numeric abstraction factor arithmetic goes through. Two
// backends are supported: Float64 (default, fastest) and Decimal
// (arbitrary-precision, exact for every scale factor the compiled registry
// carries). Dimensional arithmetic never goes through this interface — it
// is always exact int8 (see dimension.go).
type Number interface {
	Add(Number) Number
	Sub(Number) Number
	Mul(Number) Number
	Quo(Number) Number
	Pow(k int) Number
	Float64() float64
	IsZero() bool
	// Equal reports approximate equality, with a backend-appropriate
	// tolerance (exact for Decimal, relative epsilon for Float64).
	Equal(Number) bool
}

// Backend selects which Number implementation NewNumber constructs.
type Backend int

const (
	// Float64Backend uses IEEE-754 double precision. Default.
	Float64Backend Backend = iota
	// DecimalBackend uses exact rational arithmetic (math/big.Rat),
	// matching the teacher's existing use of math/big for prefix/unit
	// factors, extended here to a Rat rather than a Float so that finite
	// decimal scale factors (e.g. 0.001, 2.54e-2) stay exact under
	// repeated multiplication.
	DecimalBackend
)

// NewNumber constructs a Number over the given backend from a float64
// literal. Decimal-backend callers that need exactness beyond what a
// float64 literal can carry should use NewRatNumber instead.
func NewNumber(backend Backend, v float64) Number {
	switch backend {
	case DecimalBackend:
		// Built from the shortest decimal text that round-trips v, so a
		// factor written as 0.001 becomes exactly 1/1000.
		r, ok := new(big.Rat).SetString(strconv.FormatFloat(v, 'g', -1, 64))
		if !ok {
			r = new(big.Rat).SetFloat64(v)
		}
		return ratNumber{r}
	default:
		return float64Number(v)
	}
}

// NewRatNumber constructs an exact Decimal-backend Number from a
// numerator/denominator pair, for registry entries whose factor is exactly
// representable as a fraction (most of the UCUM essence is).
func NewRatNumber(num, den int64) Number {
	return ratNumber{big.NewRat(num, den)}
}

type float64Number float64

func (f float64Number) Add(o Number) Number { return f + o.(float64Number) }
func (f float64Number) Sub(o Number) Number { return f - o.(float64Number) }
func (f float64Number) Mul(o Number) Number { return f * o.(float64Number) }
func (f float64Number) Quo(o Number) Number { return f / o.(float64Number) }
func (f float64Number) Pow(k int) Number {
	return float64Number(math.Pow(float64(f), float64(k)))
}
func (f float64Number) Float64() float64 { return float64(f) }
func (f float64Number) IsZero() bool     { return float64(f) == 0 }
func (f float64Number) Equal(o Number) bool {
	g := o.(float64Number)
	diff := math.Abs(float64(f) - float64(g))
	scale := math.Max(1, math.Max(math.Abs(float64(f)), math.Abs(float64(g))))
	return diff <= 1e-9*scale
}

type ratNumber struct{ r *big.Rat }

func (n ratNumber) Add(o Number) Number {
	return ratNumber{new(big.Rat).Add(n.r, o.(ratNumber).r)}
}
func (n ratNumber) Sub(o Number) Number {
	return ratNumber{new(big.Rat).Sub(n.r, o.(ratNumber).r)}
}
func (n ratNumber) Mul(o Number) Number {
	return ratNumber{new(big.Rat).Mul(n.r, o.(ratNumber).r)}
}
func (n ratNumber) Quo(o Number) Number {
	return ratNumber{new(big.Rat).Quo(n.r, o.(ratNumber).r)}
}
func (n ratNumber) Pow(k int) Number {
	if k == 0 {
		return ratNumber{big.NewRat(1, 1)}
	}
	neg := k < 0
	if neg {
		k = -k
	}
	result := big.NewRat(1, 1)
	base := new(big.Rat).Set(n.r)
	for i := 0; i < k; i++ {
		result.Mul(result, base)
	}
	if neg {
		result.Inv(result)
	}
	return ratNumber{result}
}
func (n ratNumber) Float64() float64 {
	f, _ := n.r.Float64()
	return f
}
func (n ratNumber) IsZero() bool { return n.r.Sign() == 0 }
func (n ratNumber) Equal(o Number) bool {
	return n.r.Cmp(o.(ratNumber).r) == 0
}
