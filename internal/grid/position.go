package grid

import "fmt"

// Coord is a raw, possibly out-of-bounds cell address.
type Coord struct {
	X, Y int
}

func (c Coord) String() string { return fmt.Sprintf("(%d, %d)", c.X, c.Y) }

// Position is a cell address proven in bounds for one specific Grid. The
// only way to obtain one is Grid.Validate, which is what lets the unchecked
// accessors skip bounds checks of their own.
type Position struct {
	x, y int
	g    *Grid
}

// Validate admits a raw coordinate into the proven-in-bounds domain. On
// failure the returned error carries the rejected coordinate unchanged.
func (g *Grid) Validate(c Coord) (Position, error) {
	if !g.contains(c) {
		return Position{}, &OutOfRangeError{Coord: c, W: g.w, H: g.h}
	}
	return Position{x: c.X, y: c.Y, g: g}, nil
}

// Coord returns the position as a raw coordinate.
func (p Position) Coord() Coord { return Coord{X: p.x, Y: p.y} }

// Shift translates the position by (dx, dy). The result is raw and must be
// validated again before it can address a cell.
func (p Position) Shift(dx, dy int) Coord {
	return Coord{X: p.x + dx, Y: p.y + dy}
}

func (p Position) String() string { return p.Coord().String() }

// OutOfRangeError reports a coordinate outside a grid's bounds.
type OutOfRangeError struct {
	Coord Coord
	W, H  int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("coordinate %v outside %dx%d grid", e.Coord, e.W, e.H)
}
