package main

import (
	"math"
	"testing"

	"github.com/atomic-data/orbital.report/internal/hydrogen"
)

func TestAutoRMax(t *testing.T) {
	states := []hydrogen.State{
		{N: 1, L: 0, Z: 1},
		{N: 3, L: 2, Z: 1},
		{N: 2, L: 1, Z: 1},
	}
	got := autoRMax(states, 4.0)
	want := 4.0 * 9.0 // driven by n=3
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("autoRMax = %v, want %v", got, want)
	}

	if got := autoRMax(nil, 4.0); got != 0 {
		t.Errorf("autoRMax(nil) = %v, want 0", got)
	}
}
