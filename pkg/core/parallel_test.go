package core

import (
	"sync"
	"testing"
)

func TestBandsCoverRows(t *testing.T) {
	for _, tc := range []struct{ h, n int }{{10, 3}, {7, 7}, {5, 9}, {100, 1}, {1, 4}, {12, 0}} {
		bands := Bands(tc.h, tc.n)
		next := 0
		for _, b := range bands {
			if b.Y0 != next || b.Y1 <= b.Y0 {
				t.Fatalf("h=%d n=%d: bad band %+v after row %d", tc.h, tc.n, b, next)
			}
			next = b.Y1
		}
		if next != tc.h {
			t.Fatalf("h=%d n=%d: bands end at %d", tc.h, tc.n, next)
		}
	}
	if Bands(0, 4) != nil {
		t.Fatal("zero rows should produce no bands")
	}
}

func TestForEachBandVisitsEveryRowOnce(t *testing.T) {
	const h = 37
	var mu sync.Mutex
	seen := make([]int, h)

	ForEachBand(h, 6, func(y0, y1 int) {
		mu.Lock()
		defer mu.Unlock()
		for y := y0; y < y1; y++ {
			seen[y]++
		}
	})

	for y, n := range seen {
		if n != 1 {
			t.Fatalf("row %d visited %d times", y, n)
		}
	}
}
