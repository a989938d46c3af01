package ternary369

import (
	"image/color"

	"ternary369/pkg/ternary"
)

// DisplayBlank marks display cells of generations not yet produced.
const DisplayBlank = 0

var palette = []color.RGBA{
	DisplayBlank: {R: 17, G: 24, B: 39, A: 255},
	1:            {R: 31, G: 41, B: 55, A: 255},   // quiescent
	2:            {R: 34, G: 211, B: 238, A: 255}, // primary
	3:            {R: 217, G: 70, B: 239, A: 255}, // secondary
}

// Palette maps display values to colors. Each cell state has its own entry.
func (a *Automaton) Palette() []color.RGBA { return palette }

// StateColor returns the color used for s.
func StateColor(s ternary.CellState) color.RGBA { return palette[encodeDisplayValue(s)] }

func encodeDisplayValue(s ternary.CellState) uint8 { return uint8(s) + 1 }

// DecodeDisplayValue returns the cell state stored in a display value and
// false for blank cells.
func DecodeDisplayValue(v uint8) (ternary.CellState, bool) {
	if v == DisplayBlank {
		return 0, false
	}
	return ternary.CellState(v - 1), true
}
