// Package ternary369 drives the ternary369 automaton: it owns the growing
// history of rows, the step limit and resets, and exposes the run as a
// core.Sim for the terminal and GUI front ends.
package ternary369

import (
	"errors"
	"fmt"
	"slices"

	"ternary369/internal/core"
	pkgcore "ternary369/pkg/core"
	"ternary369/pkg/ternary"
)

// Name is the registry key of the automaton.
const Name = "ternary369"

// ErrComplete is returned by Step once the history holds Steps rows.
var ErrComplete = errors.New("step limit reached")

// Automaton holds one run: generation zero from the initializer and one
// appended row per Step.
type Automaton struct {
	cfg Config

	history []ternary.Row
	display *core.ByteGrid

	seed  int64
	epoch uint64
}

// New validates cfg and seeds generation zero.
func New(cfg Config) (*Automaton, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	a := &Automaton{cfg: cfg}
	a.Reset(cfg.Seed)
	return a, nil
}

// Name returns the simulation identifier.
func (a *Automaton) Name() string { return Name }

// Size reports the display dimensions: one column per cell, one line per
// generation up to the step limit.
func (a *Automaton) Size() core.Size { return core.Size{W: a.cfg.Width, H: a.cfg.Steps} }

// Cells exposes the display buffer. Rows not yet produced are 0; produced
// cells hold state+1.
func (a *Automaton) Cells() []uint8 { return a.display.Cells() }

// Config returns the active configuration.
func (a *Automaton) Config() Config { return a.cfg }

// Seed returns the seed used by the last reset.
func (a *Automaton) Seed() int64 { return a.seed }

// Epoch increments on every reset. Schedulers tag pending steps with it and
// drop them when it has moved on.
func (a *Automaton) Epoch() uint64 { return a.epoch }

// Generation is the number of rows in the history.
func (a *Automaton) Generation() int { return len(a.history) }

// Steps is the history length at which the run stops.
func (a *Automaton) Steps() int { return a.cfg.Steps }

// Width is the row length.
func (a *Automaton) Width() int { return a.cfg.Width }

// Done reports whether the step limit has been reached.
func (a *Automaton) Done() bool { return len(a.history) >= a.cfg.Steps }

// History returns the rows produced so far. Rows must not be modified.
func (a *Automaton) History() []ternary.Row { return slices.Clip(a.history) }

// Row returns generation k.
func (a *Automaton) Row(k int) (ternary.Row, bool) {
	if k < 0 || k >= len(a.history) {
		return nil, false
	}
	return a.history[k], true
}

// Last returns the most recent row.
func (a *Automaton) Last() ternary.Row { return a.history[len(a.history)-1] }

// Reset discards the history and seeds a new generation zero, random when
// the config asks for it.
func (a *Automaton) Reset(seed int64) { a.reset(seed, a.cfg.Randomize) }

// Randomize discards the history and seeds a random generation zero.
func (a *Automaton) Randomize(seed int64) { a.reset(seed, true) }

// Center discards the history and seeds the single centered cell.
func (a *Automaton) Center() { a.reset(a.cfg.Seed, false) }

func (a *Automaton) reset(seed int64, random bool) {
	rng := pkgcore.NewRNG(seed)
	row, err := ternary.CreateInitialRowRand(a.cfg.Width, random, rng)
	if err != nil {
		// Width is validated on every path that changes it.
		panic(err)
	}
	a.seed = rng.Seed()
	a.history = make([]ternary.Row, 1, a.cfg.Steps)
	a.history[0] = row

	size := a.Size()
	if a.display == nil || a.display.W != size.W || a.display.H != size.H {
		a.display = core.NewByteGrid(size.W, size.H)
	} else {
		a.display.Clear()
	}
	a.paint(0)
	a.epoch++
}

// Step appends the next generation. Row k is produced from row k-1 with
// time k.
func (a *Automaton) Step() error {
	if a.Done() {
		return ErrComplete
	}
	k := len(a.history)
	next, err := ternary.EvolveRow(a.history[k-1], k)
	if err != nil {
		return fmt.Errorf("generation %d: %w", k, err)
	}
	a.history = append(a.history, next)
	a.paint(k)
	return nil
}

// Run steps until the limit is reached.
func (a *Automaton) Run() error {
	for !a.Done() {
		if err := a.Step(); err != nil {
			return err
		}
	}
	return nil
}

func (a *Automaton) paint(k int) {
	row := a.history[k]
	a.display.SetRow(k, len(row), func(x int) uint8 { return encodeDisplayValue(row[x]) })
}

// SetIntParameter changes the width ("w") or step limit ("steps"). A valid
// change resets the run; an invalid one leaves everything untouched.
func (a *Automaton) SetIntParameter(key string, value int) error {
	cfg := a.cfg
	switch key {
	case "w":
		cfg.Width = value
	case "steps":
		cfg.Steps = value
	default:
		return fmt.Errorf("unknown parameter %q", key)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg
	a.reset(cfg.Seed, cfg.Randomize)
	return nil
}

func init() {
	core.Register(Name, func(m map[string]string) (core.Sim, error) {
		cfg, err := ParseMap(m)
		if err != nil {
			return nil, err
		}
		return New(cfg)
	})
}
