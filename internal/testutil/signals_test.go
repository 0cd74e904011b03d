package testutil

import (
	"math"
	"testing"
)

func TestDeterministicNoise(t *testing.T) {
	a := DeterministicNoise(42, 1.0, 64)
	b := DeterministicNoise(42, 1.0, 64)
	if len(a) != 64 {
		t.Fatalf("len = %d, want 64", len(a))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("non-deterministic at index %d", i)
		}
		if a[i] < -1 || a[i] > 1 {
			t.Fatalf("a[%d] = %v out of range", i, a[i])
		}
	}
}

func TestDecayingKernel(t *testing.T) {
	k := DecayingKernel(2, 1, 4)
	want := []float64{2, 1, 2.0 / 3, 0.5}
	for i := range want {
		if math.Abs(k[i]-want[i]) > 1e-15 {
			t.Fatalf("k[%d] = %v, want %v", i, k[i], want[i])
		}
	}
}

func TestOnes(t *testing.T) {
	s := Ones(16)
	for i, v := range s {
		if v != 1 {
			t.Fatalf("s[%d] = %v, want 1", i, v)
		}
	}
}
