package ucum

import "testing"

func assertDimEqual(t *testing.T, got, want Dimension, name string) {
	t.Helper()
	if got != want {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func TestDimensionAdd(t *testing.T) {
	got, err := DimensionLength.add(DimensionTime)
	if err != nil {
		t.Fatalf("add: unexpected error: %v", err)
	}
	assertDimEqual(t, got, Dimension{dimLength: 1, dimTime: 1}, "length+time")
}

func TestDimensionSub(t *testing.T) {
	got, err := DimensionLength.sub(DimensionTime)
	if err != nil {
		t.Fatalf("sub: unexpected error: %v", err)
	}
	assertDimEqual(t, got, Dimension{dimLength: 1, dimTime: -1}, "length-time")
}

func TestDimensionScaleOverflow(t *testing.T) {
	d := Dimension{dimMass: 120}
	if _, err := d.scale(2); err == nil {
		t.Fatal("scale(2) on component 120: expected overflow error, got nil")
	}
}

func TestDimensionStringDimensionless(t *testing.T) {
	if got := Dimensionless.String(); got != "1" {
		t.Errorf("Dimensionless.String() = %q, want %q", got, "1")
	}
}

func TestDimensionStringNumeratorOnly(t *testing.T) {
	d := Dimension{dimMass: 1, dimLength: 1}
	if got := d.String(); got != "g.m" {
		t.Errorf("String() = %q, want %q", got, "g.m")
	}
}

func TestDimensionStringWithDenominatorAndExponent(t *testing.T) {
	d := Dimension{dimLength: 1, dimTime: -2}
	if got := d.String(); got != "m/s2" {
		t.Errorf("String() = %q, want %q", got, "m/s2")
	}
}

func TestDimensionIsZero(t *testing.T) {
	if !Dimensionless.IsZero() {
		t.Error("Dimensionless.IsZero() = false, want true")
	}
	if DimensionMass.IsZero() {
		t.Error("DimensionMass.IsZero() = true, want false")
	}
}
