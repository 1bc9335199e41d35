package walker

import "fmt"

// Rule decides the walker's new heading after a step toggled a cell, given
// the cell's color after the toggle.
type Rule func(white bool, h Heading) Heading

// Standard is the canonical rule: a cell left white rotates the walker
// clockwise, a cell left black rotates it counter-clockwise.
func Standard(white bool, h Heading) Heading {
	if white {
		return h.CW()
	}
	return h.CCW()
}

// Inverted flips the rotation sense of Standard.
func Inverted(white bool, h Heading) Heading {
	if white {
		return h.CCW()
	}
	return h.CW()
}

var rules = map[string]Rule{
	"standard": Standard,
	"inverted": Inverted,
}

// LookupRule resolves a rule variant by name.
func LookupRule(name string) (Rule, error) {
	if r, ok := rules[name]; ok {
		return r, nil
	}
	return nil, fmt.Errorf("unknown rule %q", name)
}
