package walker

import "fmt"

// Heading is one of the four cardinal movement directions.
type Heading uint8

const (
	North Heading = iota
	East
	South
	West
)

// CW returns the next heading clockwise.
func (h Heading) CW() Heading { return (h + 1) % 4 }

// CCW returns the next heading counter-clockwise.
func (h Heading) CCW() Heading { return (h + 3) % 4 }

// Vector returns the unit displacement for the heading. North decreases the
// row coordinate.
func (h Heading) Vector() (dx, dy int) {
	switch h {
	case North:
		return 0, -1
	case East:
		return 1, 0
	case South:
		return 0, 1
	default:
		return -1, 0
	}
}

func (h Heading) String() string {
	switch h {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	}
	return fmt.Sprintf("Heading(%d)", uint8(h))
}

// ParseHeading maps a configuration string onto a Heading.
func ParseHeading(s string) (Heading, error) {
	switch s {
	case "north", "n":
		return North, nil
	case "east", "e":
		return East, nil
	case "south", "s":
		return South, nil
	case "west", "w":
		return West, nil
	}
	return North, fmt.Errorf("unknown heading %q", s)
}
