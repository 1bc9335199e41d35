package sim

import (
	"fmt"
	"strconv"

	"antwalk/internal/grid"
	"antwalk/internal/walker"
)

// Config holds parameters for the walker simulation.
type Config struct {
	Width   int
	Height  int
	StartX  int
	StartY  int
	Heading walker.Heading
	Rule    string
}

// DefaultConfig returns the default configuration: a 1024×1024 map with the
// walker starting at the center, facing north.
func DefaultConfig() Config {
	return Config{
		Width:   1024,
		Height:  1024,
		StartX:  512,
		StartY:  512,
		Heading: walker.North,
		Rule:    "standard",
	}
}

// FromMap populates a Config from a string map. Setting a dimension recenters
// the start unless an explicit start coordinate is also given.
func FromMap(cfg map[string]string) (Config, error) {
	c := DefaultConfig()
	if cfg == nil {
		return c, nil
	}
	if v, ok := cfg["w"]; ok {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed <= 0 {
			return c, fmt.Errorf("bad width %q", v)
		}
		c.Width = parsed
		c.StartX = parsed / 2
	}
	if v, ok := cfg["h"]; ok {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed <= 0 {
			return c, fmt.Errorf("bad height %q", v)
		}
		c.Height = parsed
		c.StartY = parsed / 2
	}
	if v, ok := cfg["x"]; ok {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return c, fmt.Errorf("bad start x %q", v)
		}
		c.StartX = parsed
	}
	if v, ok := cfg["y"]; ok {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return c, fmt.Errorf("bad start y %q", v)
		}
		c.StartY = parsed
	}
	if v, ok := cfg["heading"]; ok {
		h, err := walker.ParseHeading(v)
		if err != nil {
			return c, err
		}
		c.Heading = h
	}
	if v, ok := cfg["rule"]; ok {
		if _, err := walker.LookupRule(v); err != nil {
			return c, err
		}
		c.Rule = v
	}
	return c, nil
}

// Ant adapts the grid and walker engine to the Sim interface.
type Ant struct {
	cfg    Config
	grid   *grid.Grid
	walker *walker.Walker
	cells  []uint8
}

// NewAnt builds the grid and walker described by the config.
func NewAnt(c Config) (*Ant, error) {
	a := &Ant{cfg: c}
	if err := a.build(); err != nil {
		return nil, err
	}
	return a, nil
}

func (a *Ant) build() error {
	rule, err := walker.LookupRule(a.cfg.Rule)
	if err != nil {
		return err
	}
	g := grid.New(a.cfg.Width, a.cfg.Height)
	w, err := walker.NewWithRule(g, grid.Coord{X: a.cfg.StartX, Y: a.cfg.StartY}, a.cfg.Heading, rule)
	if err != nil {
		return err
	}
	a.grid = g
	a.walker = w
	a.cells = make([]uint8, a.cfg.Width*a.cfg.Height)
	for i, white := range g.Snapshot() {
		if white {
			a.cells[i] = 1
		}
	}
	return nil
}

// Name returns the simulation identifier.
func (a *Ant) Name() string { return "ant" }

// Size returns the grid dimensions.
func (a *Ant) Size() Size { return Size{W: a.cfg.Width, H: a.cfg.Height} }

// Cells exposes the render buffer, 1 for white cells.
func (a *Ant) Cells() []uint8 { return a.cells }

// Grid exposes the underlying grid for reporting and export.
func (a *Ant) Grid() *grid.Grid { return a.grid }

// Walker exposes the underlying walker state.
func (a *Ant) Walker() *walker.Walker { return a.walker }

// Reset rebuilds the grid and walker from the original config. The walk is
// deterministic, so a reset reproduces the run exactly.
func (a *Ant) Reset() {
	// build already succeeded once with this config, it cannot fail here
	_ = a.build()
}

// Step advances the walker one transition and patches the render buffer.
func (a *Ant) Step() bool {
	if a.walker.Halted() {
		return false
	}
	p := a.walker.Pos()
	ok := a.walker.Step()
	a.cells[p.Y*a.cfg.Width+p.X] ^= 1
	return ok
}

func init() {
	Register("ant", func(cfg map[string]string) (Sim, error) {
		c, err := FromMap(cfg)
		if err != nil {
			return nil, err
		}
		return NewAnt(c)
	})
}
