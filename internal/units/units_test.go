package units

import (
	"math"
	"testing"
)

func TestIsValid(t *testing.T) {
	for _, u := range ValidUnits {
		if !IsValid(u) {
			t.Errorf("IsValid(%q) = false, want true", u)
		}
	}
	for _, u := range []string{"", "meters", "AU", "bohr"} {
		if IsValid(u) {
			t.Errorf("IsValid(%q) = true, want false", u)
		}
	}
}

func TestConvertLength(t *testing.T) {
	testCases := []struct {
		unit string
		in   float64
		want float64
	}{
		{AU, 2.5, 2.5},
		{Angstrom, 1, 0.529177210544},
		{NM, 1, 0.0529177210544},
		{PM, 1, 52.9177210544},
		{"unknown", 3, 3}, // falls through unchanged
	}
	for _, tc := range testCases {
		got := ConvertLength(tc.in, tc.unit)
		if math.Abs(got-tc.want) > 1e-12*math.Abs(tc.want) {
			t.Errorf("ConvertLength(%g, %q) = %g, want %g", tc.in, tc.unit, got, tc.want)
		}
	}
}

func TestAxisLabel(t *testing.T) {
	if AxisLabel(AU) != "r (a0)" {
		t.Errorf("AxisLabel(au) = %q", AxisLabel(AU))
	}
	if AxisLabel(Angstrom) != "r (Å)" {
		t.Errorf("AxisLabel(angstrom) = %q", AxisLabel(Angstrom))
	}
	if AxisLabel("bogus") != "r (a0)" {
		t.Errorf("AxisLabel must default to atomic units, got %q", AxisLabel("bogus"))
	}
}
