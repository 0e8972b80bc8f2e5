package ucum

import "testing"

func TestFloat64NumberArithmetic(t *testing.T) {
	a := NewNumber(Float64Backend, 2)
	b := NewNumber(Float64Backend, 3)
	if got := a.Mul(b).Float64(); got != 6 {
		t.Errorf("2*3 = %v, want 6", got)
	}
	if got := a.Add(b).Float64(); got != 5 {
		t.Errorf("2+3 = %v, want 5", got)
	}
	if got := b.Sub(a).Float64(); got != 1 {
		t.Errorf("3-2 = %v, want 1", got)
	}
	if got := a.Pow(3).Float64(); got != 8 {
		t.Errorf("2^3 = %v, want 8", got)
	}
}

func TestRatNumberExactArithmetic(t *testing.T) {
	a := NewRatNumber(1, 3)
	b := NewRatNumber(1, 3)
	sum := a.Add(b)
	want := NewRatNumber(2, 3)
	if !sum.Equal(want) {
		t.Errorf("1/3+1/3 = %v, want %v", sum.Float64(), want.Float64())
	}
}

func TestRatNumberPowNegativeExponent(t *testing.T) {
	a := NewRatNumber(2, 1)
	got := a.Pow(-1)
	want := NewRatNumber(1, 2)
	if !got.Equal(want) {
		t.Errorf("2^-1 = %v, want %v", got.Float64(), want.Float64())
	}
}

func TestFloat64NumberEqualTolerance(t *testing.T) {
	a := NewNumber(Float64Backend, 1.0000000001)
	b := NewNumber(Float64Backend, 1.0000000002)
	if !a.Equal(b) {
		t.Error("values within tolerance reported unequal")
	}
}
