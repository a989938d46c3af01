// Package ternary implements a one-dimensional three-state cellular automaton
// whose rule weights each neighborhood by a Fibonacci constant and folds the
// result through its digital root.
package ternary

import (
	"errors"
	"fmt"
)

// CellState is the value of a single cell. Only 0, 1 and 2 are valid.
type CellState uint8

const (
	Quiescent CellState = iota
	Primary
	Secondary
)

// NumStates is the number of distinct cell states.
const NumStates = 3

// Valid reports whether s is one of the three automaton states.
func (s CellState) Valid() bool { return s < NumStates }

// Row is one generation of the automaton.
type Row []CellState

// Clone returns an independent copy of the row.
func (r Row) Clone() Row { return append(Row(nil), r...) }

// ErrInvalidArgument is returned for inputs outside the engine's domain.
var ErrInvalidArgument = errors.New("invalid argument")

// fibonacci holds the first ten Fibonacci numbers; generation t uses the
// (t mod 10)th entry, one-based, with 0 selecting the last.
var fibonacci = [10]int{1, 1, 2, 3, 5, 8, 13, 21, 34, 55}

// DigitalRoot collapses n by repeated digit summing. DigitalRoot(0) is 0.
func DigitalRoot(n int) int {
	if n == 0 {
		return 0
	}
	return 1 + (n-1)%9
}

// FibMod returns the modulation constant used to produce generation time.
func FibMod(time int) (int, error) {
	if time < 1 {
		return 0, fmt.Errorf("%w: time %d must be >= 1", ErrInvalidArgument, time)
	}
	return fibMod(time), nil
}

func fibMod(time int) int {
	idx := time % len(fibonacci)
	if idx == 0 {
		idx = len(fibonacci)
	}
	return fibonacci[idx-1] % 9
}

// rootState maps a digital root to the next cell state.
func rootState(dr int) CellState {
	switch dr {
	case 3, 6, 9:
		return Secondary
	case 1, 4, 7:
		return Primary
	default:
		return Quiescent
	}
}

// EvolveRow computes generation time from its predecessor cur. Cells past
// either edge count as quiescent. cur is never modified.
func EvolveRow(cur Row, time int) (Row, error) {
	mod, err := FibMod(time)
	if err != nil {
		return nil, err
	}
	for i, c := range cur {
		if !c.Valid() {
			return nil, fmt.Errorf("%w: cell %d has state %d", ErrInvalidArgument, i, c)
		}
	}

	w := len(cur)
	next := make(Row, w)
	for i := 0; i < w; i++ {
		var left, right CellState
		if i > 0 {
			left = cur[i-1]
		}
		if i < w-1 {
			right = cur[i+1]
		}
		total := int(left) + int(cur[i]) + int(right)
		next[i] = rootState(DigitalRoot(total * mod))
	}
	return next, nil
}
