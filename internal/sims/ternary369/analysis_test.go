package ternary369

import (
	"slices"
	"testing"
)

func TestAnalyzeCycleIsRealPeriod(t *testing.T) {
	for _, cfg := range []Config{
		{Width: 3, Steps: 200},
		{Width: 5, Steps: 200},
		{Width: 9, Steps: 200, Randomize: true, Seed: 3},
	} {
		res, err := Analyze(cfg)
		if err != nil {
			t.Fatal(err)
		}
		if res.Generations != cfg.Steps {
			t.Fatalf("%+v: analyzed %d generations", cfg, res.Generations)
		}
		if !res.HasCycle() {
			continue
		}
		a, _ := New(cfg)
		if err := a.Run(); err != nil {
			t.Fatal(err)
		}
		start, period := res.CycleStart, res.CyclePeriod
		if period <= 0 {
			t.Fatalf("%+v: period %d", cfg, period)
		}
		for k := start; k+period < a.Generation(); k++ {
			x, _ := a.Row(k)
			y, _ := a.Row(k + period)
			if !slices.Equal(x, y) {
				t.Fatalf("%+v: rows %d and %d differ inside reported cycle", cfg, k, k+period)
			}
		}
	}
}

func TestAnalyzeCountsFinalRow(t *testing.T) {
	res, err := Analyze(Config{Width: 5, Steps: 2})
	if err != nil {
		t.Fatal(err)
	}
	// Generation 1 of the centered width-5 run is [0 1 1 1 0].
	if res.FinalCounts != [3]int{2, 3, 0} {
		t.Fatalf("final counts = %v", res.FinalCounts)
	}
	if res.PeakActive != 3 || res.PeakActiveGeneration != 1 {
		t.Fatalf("peak = %d at %d", res.PeakActive, res.PeakActiveGeneration)
	}
	if res.ExtinctAt != -1 {
		t.Fatalf("unexpected extinction at %d", res.ExtinctAt)
	}
}

func TestAnalyzeDetectsExtinction(t *testing.T) {
	// Centered width 3: [0 1 0] at generation 12 sums to 1 per cell, and
	// fib(13) mod 9 = 0 wipes the row.
	res, err := Analyze(Config{Width: 3, Steps: 200})
	if err != nil {
		t.Fatal(err)
	}
	if res.ExtinctAt != 13 {
		t.Fatalf("extinct at %d, want 13", res.ExtinctAt)
	}
	if res.CycleStart != 13 || res.CyclePeriod != 1 {
		t.Fatalf("cycle = %d/%d, want 13/1", res.CycleStart, res.CyclePeriod)
	}
	if res.FinalCounts != [3]int{3, 0, 0} {
		t.Fatalf("final counts = %v", res.FinalCounts)
	}
	if res.PeakActive != 3 || res.PeakActiveGeneration != 1 {
		t.Fatalf("peak = %d at %d", res.PeakActive, res.PeakActiveGeneration)
	}
}

func TestSweepKeepsOrder(t *testing.T) {
	configs := []Config{
		{Width: 5, Steps: 10},
		{Width: 1, Steps: 10},
		{Width: 21, Steps: 40},
		{Width: 7, Steps: 15},
	}
	results, errs := Sweep(configs, 3)
	for i, cfg := range configs {
		if i == 1 {
			if errs[i] == nil {
				t.Fatal("expected width 1 to fail validation")
			}
			continue
		}
		if errs[i] != nil {
			t.Fatalf("config %d: %v", i, errs[i])
		}
		if results[i].Config != cfg || results[i].Generations != cfg.Steps {
			t.Fatalf("result %d does not match its config: %+v", i, results[i])
		}
	}
}
