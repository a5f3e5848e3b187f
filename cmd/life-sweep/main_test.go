package main

import (
	"slices"
	"testing"

	"lifegrid/pkg/life"
)

func TestParseWorkers(t *testing.T) {
	got, err := parseWorkers("1, 2,,8")
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(got, []int{1, 2, 8}) {
		t.Fatalf("parseWorkers=%v", got)
	}
	for _, bad := range []string{"", "0", "two", "-1"} {
		if _, err := parseWorkers(bad); err == nil {
			t.Errorf("parseWorkers(%q) accepted", bad)
		}
	}
}

func TestRunAgreesAcrossWorkers(t *testing.T) {
	cfg := life.Config{Width: 80, Height: 70, UpdatesPerSecond: 24}.WithSeed(4)
	cfg.Workers = 1
	one, err := run(cfg, 25)
	if err != nil {
		t.Fatal(err)
	}
	cfg.Workers = 5
	five, err := run(cfg, 25)
	if err != nil {
		t.Fatal(err)
	}
	if !one.final.Equal(five.final) || one.population != five.population {
		t.Fatal("worker counts disagree on the final board")
	}
}
