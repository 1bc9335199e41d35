package walker

import "testing"

func TestRotation(t *testing.T) {
	if North.CW() != East {
		t.Fatal("North.CW() != East")
	}
	if North.CCW() != West {
		t.Fatal("North.CCW() != West")
	}
	if North.CW().CW() != South {
		t.Fatal("North.CW().CW() != South")
	}
	if North.CCW().CCW() != South {
		t.Fatal("North.CCW().CCW() != South")
	}
}

func TestRotationGroup(t *testing.T) {
	for _, h := range []Heading{North, East, South, West} {
		if h.CW().CCW() != h {
			t.Fatalf("%v: CW then CCW is not identity", h)
		}
		if h.CCW().CW() != h {
			t.Fatalf("%v: CCW then CW is not identity", h)
		}
		if h.CW().CW().CW().CW() != h {
			t.Fatalf("%v: four CW rotations do not return home", h)
		}
	}
}

func TestVectors(t *testing.T) {
	cases := []struct {
		h      Heading
		dx, dy int
	}{
		{North, 0, -1},
		{East, 1, 0},
		{South, 0, 1},
		{West, -1, 0},
	}
	for _, c := range cases {
		dx, dy := c.h.Vector()
		if dx != c.dx || dy != c.dy {
			t.Fatalf("%v vector (%d,%d), want (%d,%d)", c.h, dx, dy, c.dx, c.dy)
		}
	}
}

func TestParseHeading(t *testing.T) {
	for s, want := range map[string]Heading{
		"north": North, "n": North,
		"east": East, "e": East,
		"south": South, "s": South,
		"west": West, "w": West,
	} {
		got, err := ParseHeading(s)
		if err != nil {
			t.Fatalf("ParseHeading(%q): %v", s, err)
		}
		if got != want {
			t.Fatalf("ParseHeading(%q) = %v, want %v", s, got, want)
		}
	}
	if _, err := ParseHeading("up"); err == nil {
		t.Fatal("ParseHeading accepted an unknown heading")
	}
}
