// Command ternary-sweep runs the automaton over a grid of widths and seeds
// and reports how each run settles.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"ternary369/internal/logging"
	"ternary369/internal/sims/ternary369"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "ternary-sweep:", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("ternary-sweep", flag.ContinueOnError)
	fs.SetOutput(stderr)
	widths := fs.String("widths", "11,21,41,81,161,201", "comma separated row widths")
	seeds := fs.Int("seeds", 4, "random seeds per width in addition to the centered start")
	baseSeed := fs.Int64("seed", 1337, "first random seed; later ones count up from it")
	steps := fs.Int("steps", ternary369.MaxSteps, "generations per run, initial row included")
	workers := fs.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	top := fs.Int("top", 0, "only print the first N results (0 prints all)")
	logLevel := fs.String("log-level", "info", "log level: debug, info, warn, error")
	if err := fs.Parse(args); err != nil {
		return err
	}

	logger, err := logging.Setup(stderr, *logLevel)
	if err != nil {
		return err
	}

	ws, err := parseWidths(*widths)
	if err != nil {
		return err
	}
	var configs []ternary369.Config
	for _, w := range ws {
		configs = append(configs, ternary369.Config{Width: w, Steps: *steps})
		for i := 0; i < *seeds; i++ {
			configs = append(configs, ternary369.Config{Width: w, Steps: *steps, Randomize: true, Seed: *baseSeed + int64(i)})
		}
	}
	for _, cfg := range configs {
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	id := uuid.NewString()
	logger.Info("sweep started", "sweep", id, "runs", len(configs), "workers", *workers, "steps", *steps)
	start := time.Now()
	results, errs := ternary369.Sweep(configs, *workers)
	for i, err := range errs {
		if err != nil {
			return fmt.Errorf("run %d (%+v): %w", i, configs[i], err)
		}
	}
	logger.Info("sweep finished", "sweep", id, "elapsed", time.Since(start).Round(time.Millisecond))

	sortResults(results)
	if *top > 0 && *top < len(results) {
		results = results[:*top]
	}
	return writeTable(stdout, results)
}

func parseWidths(s string) ([]int, error) {
	var out []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		w, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("width %q: %w", part, err)
		}
		out = append(out, w)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no widths given")
	}
	return out, nil
}

// sortResults orders runs that settle earliest first; runs without a cycle
// go last, widest first.
func sortResults(results []ternary369.RunResult) {
	sort.SliceStable(results, func(i, j int) bool {
		a, b := results[i], results[j]
		if a.HasCycle() != b.HasCycle() {
			return a.HasCycle()
		}
		if a.CycleStart != b.CycleStart {
			return a.CycleStart < b.CycleStart
		}
		return a.Config.Width > b.Config.Width
	})
}

func writeTable(w io.Writer, results []ternary369.RunResult) error {
	if _, err := fmt.Fprintf(w, "%5s %-8s %20s %6s %6s %8s %6s  %s\n",
		"width", "start", "seed", "cycle", "period", "extinct", "peak", "final[0/1/2]"); err != nil {
		return err
	}
	for _, res := range results {
		start := "center"
		seed := "-"
		if res.Config.Randomize {
			start = "random"
			seed = strconv.FormatInt(res.Seed, 10)
		}
		cycle, period := "-", "-"
		if res.HasCycle() {
			cycle = strconv.Itoa(res.CycleStart)
			period = strconv.Itoa(res.CyclePeriod)
		}
		extinct := "-"
		if res.ExtinctAt >= 0 {
			extinct = strconv.Itoa(res.ExtinctAt)
		}
		c := res.FinalCounts
		if _, err := fmt.Fprintf(w, "%5d %-8s %20s %6s %6s %8s %6d  %d/%d/%d\n",
			res.Config.Width, start, seed, cycle, period, extinct, res.PeakActive, c[0], c[1], c[2]); err != nil {
			return err
		}
	}
	return nil
}
