package core

import (
	"slices"
	"testing"
)

func TestFillBinaryDeterministic(t *testing.T) {
	a := make([]uint8, 256)
	b := make([]uint8, 256)
	FillBinary(NewRNG(42).Source(), a)
	FillBinary(NewRNG(42).Source(), b)
	if !slices.Equal(a, b) {
		t.Fatal("same seed produced different fills")
	}
	for _, v := range a {
		if v > 1 {
			t.Fatalf("value %d outside {0,1}", v)
		}
	}
}
