package walker

import (
	"fmt"

	"antwalk/internal/grid"
)

// Walker is the automaton that marches across a grid toggling cells. It
// holds the grid exclusively for the duration of the run; its position is a
// validated one at every observable point, so the hot loop never re-checks
// bounds on cell access.
type Walker struct {
	grid    *grid.Grid
	pos     grid.Position
	heading Heading
	rule    Rule
	halted  bool
	steps   int
}

// New places a walker on the grid at a raw start coordinate under the
// standard rule. It fails with InvalidStartError when the coordinate lies
// outside the grid.
func New(g *grid.Grid, start grid.Coord, h Heading) (*Walker, error) {
	return NewWithRule(g, start, h, Standard)
}

// NewWithRule is New with an explicit rotation rule. A nil rule means
// Standard.
func NewWithRule(g *grid.Grid, start grid.Coord, h Heading, rule Rule) (*Walker, error) {
	pos, err := g.Validate(start)
	if err != nil {
		return nil, &InvalidStartError{Start: start}
	}
	if rule == nil {
		rule = Standard
	}
	return &Walker{grid: g, pos: pos, heading: h, rule: rule}, nil
}

// Step applies one transition: toggle the current cell, rotate by the rule
// on the cell's new color, advance one cell along the heading. It reports
// whether the walker can keep going; a step off the grid halts it for good
// while it keeps its last in-bounds position.
func (w *Walker) Step() bool {
	if w.halted {
		return false
	}

	white := w.grid.Toggle(w.pos)
	w.heading = w.rule(white, w.heading)
	w.steps++

	dx, dy := w.heading.Vector()
	next, err := w.grid.Validate(w.pos.Shift(dx, dy))
	if err != nil {
		w.halted = true
		return false
	}
	w.pos = next
	return true
}

// Run steps until the walker halts and returns the number of cells toggled.
// Termination is only bounded empirically by the finite grid; the loop has
// no step cap.
func (w *Walker) Run() int {
	for w.Step() {
	}
	return w.steps
}

// Halted reports whether the walker has left the grid.
func (w *Walker) Halted() bool { return w.halted }

// Pos returns the last in-bounds coordinate the walker occupied.
func (w *Walker) Pos() grid.Coord { return w.pos.Coord() }

// Heading returns the current heading.
func (w *Walker) Heading() Heading { return w.heading }

// Steps returns the number of cells toggled so far.
func (w *Walker) Steps() int { return w.steps }

// InvalidStartError reports a start coordinate outside the grid.
type InvalidStartError struct {
	Start grid.Coord
}

func (e *InvalidStartError) Error() string {
	return fmt.Sprintf("invalid start position %v", e.Start)
}
