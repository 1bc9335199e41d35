package config

import (
	"flag"
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"antwalk/internal/sim"
	"antwalk/internal/walker"
)

// centerStart makes a start coordinate track the grid center.
const centerStart = -1

// Config carries everything the entry points need to set up a run.
type Config struct {
	Width   int
	Height  int
	StartX  int
	StartY  int
	Heading string
	Rule    string
	Output  string
	Depth   int
	Listen  string
}

// Default returns a Config matching the classic run: a 1024×1024 grid, the
// walker centered and facing north, an 8-bit grayscale PNG at the end.
func Default() *Config {
	return &Config{
		Width:   1024,
		Height:  1024,
		StartX:  centerStart,
		StartY:  centerStart,
		Heading: "north",
		Rule:    "standard",
		Output:  "ant.png",
		Depth:   8,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "height", c.Height, "grid height in cells")
	fs.IntVar(&c.StartX, "x", c.StartX, "start column (-1 = center)")
	fs.IntVar(&c.StartY, "y", c.StartY, "start row (-1 = center)")
	fs.StringVar(&c.Heading, "heading", c.Heading, "initial heading (north/east/south/west)")
	fs.StringVar(&c.Rule, "rule", c.Rule, "rotation rule (standard/inverted)")
	fs.StringVar(&c.Output, "out", c.Output, "image file to write after the run")
	fs.IntVar(&c.Depth, "depth", c.Depth, "image bit depth: 8 (PNG) or 1 (PBM)")
	fs.StringVar(&c.Listen, "listen", c.Listen, "optional address for the websocket run monitor")
}

// fileConfig mirrors Config with pointer fields so that attributes absent
// from the file leave the existing values alone.
type fileConfig struct {
	Width   *int    `hcl:"width,optional"`
	Height  *int    `hcl:"height,optional"`
	StartX  *int    `hcl:"start_x,optional"`
	StartY  *int    `hcl:"start_y,optional"`
	Heading *string `hcl:"heading,optional"`
	Rule    *string `hcl:"rule,optional"`
	Output  *string `hcl:"output,optional"`
	Depth   *int    `hcl:"depth,optional"`
	Listen  *string `hcl:"listen,optional"`
}

// ApplyFile overlays values from an HCL file onto the config. Fields named
// in keep (by their flag name) are left alone, so explicit flags win over
// the file.
func (c *Config) ApplyFile(path string, keep map[string]bool) error {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return fmt.Errorf("parse %s: %w", path, diags)
	}
	var fc fileConfig
	if diags := gohcl.DecodeBody(file.Body, nil, &fc); diags.HasErrors() {
		return fmt.Errorf("decode %s: %w", path, diags)
	}

	if fc.Width != nil && !keep["width"] {
		c.Width = *fc.Width
	}
	if fc.Height != nil && !keep["height"] {
		c.Height = *fc.Height
	}
	if fc.StartX != nil && !keep["x"] {
		c.StartX = *fc.StartX
	}
	if fc.StartY != nil && !keep["y"] {
		c.StartY = *fc.StartY
	}
	if fc.Heading != nil && !keep["heading"] {
		c.Heading = *fc.Heading
	}
	if fc.Rule != nil && !keep["rule"] {
		c.Rule = *fc.Rule
	}
	if fc.Output != nil && !keep["out"] {
		c.Output = *fc.Output
	}
	if fc.Depth != nil && !keep["depth"] {
		c.Depth = *fc.Depth
	}
	if fc.Listen != nil && !keep["listen"] {
		c.Listen = *fc.Listen
	}
	return nil
}

// Validate rejects configurations the engine cannot run.
func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("grid dimensions must be positive, got %dx%d", c.Width, c.Height)
	}
	if _, err := walker.ParseHeading(c.Heading); err != nil {
		return err
	}
	if _, err := walker.LookupRule(c.Rule); err != nil {
		return err
	}
	if c.Depth != 1 && c.Depth != 8 {
		return fmt.Errorf("unsupported bit depth %d (want 1 or 8)", c.Depth)
	}
	return nil
}

// Start resolves the start coordinate, mapping the center sentinel onto the
// grid center. Other out-of-bounds values pass through so the walker can
// report them.
func (c *Config) Start() (int, int) {
	x, y := c.StartX, c.StartY
	if x == centerStart {
		x = c.Width / 2
	}
	if y == centerStart {
		y = c.Height / 2
	}
	return x, y
}

// Sim converts the config into the simulation's typed form.
func (c *Config) Sim() (sim.Config, error) {
	if err := c.Validate(); err != nil {
		return sim.Config{}, err
	}
	h, _ := walker.ParseHeading(c.Heading)
	x, y := c.Start()
	return sim.Config{
		Width:   c.Width,
		Height:  c.Height,
		StartX:  x,
		StartY:  y,
		Heading: h,
		Rule:    c.Rule,
	}, nil
}

// Map renders the config in the string form the sim registry consumes.
func (c *Config) Map() map[string]string {
	x, y := c.Start()
	return map[string]string{
		"w":       fmt.Sprint(c.Width),
		"h":       fmt.Sprint(c.Height),
		"x":       fmt.Sprint(x),
		"y":       fmt.Sprint(y),
		"heading": c.Heading,
		"rule":    c.Rule,
	}
}
