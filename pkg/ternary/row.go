package ternary

import (
	"fmt"
	"math/rand/v2"
)

// Source yields uniform integers in [0, n). *rand.Rand satisfies it.
type Source interface {
	IntN(n int) int
}

type globalSource struct{}

func (globalSource) IntN(n int) int { return rand.IntN(n) }

// CreateInitialRow returns generation zero. Without randomize a single
// Primary cell sits at index width/2; with randomize every cell is drawn
// uniformly from an unseeded source.
func CreateInitialRow(width int, randomize bool) (Row, error) {
	return CreateInitialRowRand(width, randomize, globalSource{})
}

// CreateInitialRowRand is CreateInitialRow with an explicit random source,
// which allows reproducible random rows.
func CreateInitialRowRand(width int, randomize bool, src Source) (Row, error) {
	if width < 1 {
		return nil, fmt.Errorf("%w: width %d must be >= 1", ErrInvalidArgument, width)
	}
	row := make(Row, width)
	if !randomize {
		row[width/2] = Primary
		return row, nil
	}
	if src == nil {
		src = globalSource{}
	}
	for i := range row {
		row[i] = CellState(src.IntN(NumStates))
	}
	return row, nil
}
