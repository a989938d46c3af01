package core

// ByteGrid stores a 2D grid of byte-sized cell values in row-major order.
// Rows are filled top to bottom as generations are produced.
type ByteGrid struct {
	W, H int
	data []uint8
}

// NewByteGrid allocates a grid with the given dimensions.
func NewByteGrid(w, h int) *ByteGrid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &ByteGrid{W: w, H: h, data: make([]uint8, w*h)}
}

// Cells exposes the backing slice so callers can read values directly.
func (g *ByteGrid) Cells() []uint8 { return g.data }

// Row returns the slice backing row y, or nil when y is out of range.
func (g *ByteGrid) Row(y int) []uint8 {
	if y < 0 || y >= g.H {
		return nil
	}
	return g.data[y*g.W : (y+1)*g.W]
}

// SetRow writes values into row y, encoding each through enc. Rows beyond
// the grid are ignored.
func (g *ByteGrid) SetRow(y int, n int, enc func(x int) uint8) {
	dst := g.Row(y)
	if dst == nil {
		return
	}
	if n > g.W {
		n = g.W
	}
	for x := 0; x < n; x++ {
		dst[x] = enc(x)
	}
}

// Clear fills the grid with zeros.
func (g *ByteGrid) Clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}
