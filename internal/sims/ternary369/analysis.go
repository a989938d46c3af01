package ternary369

import (
	"sync"

	"ternary369/pkg/ternary"
)

// RunResult summarizes a complete run.
type RunResult struct {
	Config Config
	// Seed is the seed actually used, so clock-seeded runs can be replayed.
	Seed        int64
	Generations int

	// FinalCounts holds the number of cells in each state on the last row.
	FinalCounts [ternary.NumStates]int

	PeakActive           int
	PeakActiveGeneration int

	// ExtinctAt is the first generation whose cells are all quiescent, or -1.
	ExtinctAt int

	// CycleStart is the first generation that later recurs, or -1. A row
	// only counts as recurring when the Fibonacci constant used to evolve it
	// is also the same, so CyclePeriod is a true period of the run.
	CycleStart  int
	CyclePeriod int
}

// HasCycle reports whether a recurrence was found.
func (r RunResult) HasCycle() bool { return r.CycleStart >= 0 }

type cycleKey struct {
	row   string
	phase int
}

// Analyze runs cfg to its step limit and summarizes the history.
func Analyze(cfg Config) (RunResult, error) {
	a, err := New(cfg)
	if err != nil {
		return RunResult{}, err
	}
	if err := a.Run(); err != nil {
		return RunResult{}, err
	}

	res := RunResult{
		Config:      cfg,
		Seed:        a.Seed(),
		Generations: a.Generation(),
		ExtinctAt:   -1,
		CycleStart:  -1,
	}
	seen := make(map[cycleKey]int, a.Generation())
	for k, row := range a.History() {
		active := 0
		for _, c := range row {
			if c != ternary.Quiescent {
				active++
			}
		}
		if active > res.PeakActive {
			res.PeakActive = active
			res.PeakActiveGeneration = k
		}
		if active == 0 && res.ExtinctAt < 0 {
			res.ExtinctAt = k
			// The all-quiescent row maps to itself for every time.
			if !res.HasCycle() {
				res.CycleStart = k
				res.CyclePeriod = 1
			}
		}
		if res.HasCycle() {
			continue
		}
		// Row k is evolved with time k+1.
		key := cycleKey{row: rowKey(row), phase: (k + 1) % 10}
		if first, ok := seen[key]; ok {
			res.CycleStart = first
			res.CyclePeriod = k - first
			continue
		}
		seen[key] = k
	}
	for _, c := range a.Last() {
		res.FinalCounts[c]++
	}
	return res, nil
}

func rowKey(row ternary.Row) string {
	b := make([]byte, len(row))
	for i, c := range row {
		b[i] = byte('0' + c)
	}
	return string(b)
}

// Sweep analyzes every config using a pool of workers. Results keep the
// order of configs; failed runs carry their error at the same index.
func Sweep(configs []Config, workers int) ([]RunResult, []error) {
	if workers <= 0 {
		workers = 1
	}
	results := make([]RunResult, len(configs))
	errs := make([]error, len(configs))

	jobs := make(chan int)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				results[idx], errs[idx] = Analyze(configs[idx])
			}
		}()
	}
	for idx := range configs {
		jobs <- idx
	}
	close(jobs)
	wg.Wait()
	return results, errs
}
