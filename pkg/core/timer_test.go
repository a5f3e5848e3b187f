package core

import (
	"testing"
	"time"
)

func TestIntervalFor(t *testing.T) {
	cases := []struct {
		ups  int
		want time.Duration
	}{
		{24, 41 * time.Millisecond},
		{60, 16 * time.Millisecond},
		{1, time.Second},
		{2000, 0},
		{0, 0},
	}
	for _, tc := range cases {
		if got := IntervalFor(tc.ups); got != tc.want {
			t.Errorf("IntervalFor(%d)=%v, want %v", tc.ups, got, tc.want)
		}
	}
}

func TestStepTimerDue(t *testing.T) {
	start := time.Unix(1000, 0)
	timer := NewStepTimer(24, start)

	if timer.Due(start.Add(40 * time.Millisecond)) {
		t.Fatal("due before interval")
	}
	at := start.Add(41 * time.Millisecond)
	if !timer.Due(at) {
		t.Fatal("not due at interval")
	}
	timer.Mark(at)
	if timer.Due(at.Add(time.Millisecond)) {
		t.Fatal("due right after Mark")
	}
	if !timer.Last().Equal(at) {
		t.Fatalf("Last=%v, want %v", timer.Last(), at)
	}
}
