package grid

import "math/bits"

// Grid stores a fixed-size field of binary cells packed 64 per word in
// row-major order. A set bit means the cell is white (unmarked).
type Grid struct {
	w, h  int
	words []uint64
}

// New allocates a w×h grid with every cell white.
func New(w, h int) *Grid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	total := w * h
	words := make([]uint64, (total+63)/64)
	for i := range words {
		words[i] = ^uint64(0)
	}
	// Bits past the last cell stay clear so popcounts stay honest.
	if rem := total % 64; rem != 0 {
		words[len(words)-1] = uint64(1)<<rem - 1
	}
	return &Grid{w: w, h: h, words: words}
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.w }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.h }

// At reads the cell at a raw coordinate, reporting OutOfRangeError when the
// coordinate lies outside the grid.
func (g *Grid) At(c Coord) (bool, error) {
	if !g.contains(c) {
		return false, &OutOfRangeError{Coord: c, W: g.w, H: g.h}
	}
	return g.bit(c.Y*g.w + c.X), nil
}

// IsWhite reads the cell addressed by a validated position. No bounds check
// is performed; the position proves it already passed one.
func (g *Grid) IsWhite(p Position) bool {
	g.check(p)
	return g.bit(p.y*g.w + p.x)
}

// Toggle flips the cell addressed by a validated position and returns the
// new value.
func (g *Grid) Toggle(p Position) bool {
	g.check(p)
	i := p.y*g.w + p.x
	g.words[i/64] ^= uint64(1) << (i % 64)
	return g.bit(i)
}

// CountMarked returns the number of black cells.
func (g *Grid) CountMarked() int {
	white := 0
	for _, w := range g.words {
		white += bits.OnesCount64(w)
	}
	return g.w*g.h - white
}

// Snapshot copies the cells into a row-major bool slice, true for white.
func (g *Grid) Snapshot() []bool {
	out := make([]bool, g.w*g.h)
	for i := range out {
		out[i] = g.bit(i)
	}
	return out
}

func (g *Grid) bit(i int) bool { return g.words[i/64]&(uint64(1)<<(i%64)) != 0 }

func (g *Grid) contains(c Coord) bool {
	return c.X >= 0 && c.X < g.w && c.Y >= 0 && c.Y < g.h
}

// check guards the unchecked accessors against positions minted by a
// different grid. The zero Position always fails here.
func (g *Grid) check(p Position) {
	if p.g != g {
		panic("grid: position was not validated against this grid")
	}
}
