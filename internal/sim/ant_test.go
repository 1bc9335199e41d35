package sim

import (
	"testing"

	"github.com/stretchr/testify/require"

	"antwalk/internal/walker"
)

func TestFromMapDefaults(t *testing.T) {
	c, err := FromMap(nil)
	require.NoError(t, err)
	require.Equal(t, DefaultConfig(), c)
	require.Equal(t, 512, c.StartX)
	require.Equal(t, 512, c.StartY)
}

func TestFromMapRecentersStart(t *testing.T) {
	c, err := FromMap(map[string]string{"w": "9", "h": "5"})
	require.NoError(t, err)
	require.Equal(t, 9, c.Width)
	require.Equal(t, 5, c.Height)
	require.Equal(t, 4, c.StartX)
	require.Equal(t, 2, c.StartY)
}

func TestFromMapExplicitValues(t *testing.T) {
	c, err := FromMap(map[string]string{
		"w": "8", "h": "8", "x": "1", "y": "2",
		"heading": "east", "rule": "inverted",
	})
	require.NoError(t, err)
	require.Equal(t, 1, c.StartX)
	require.Equal(t, 2, c.StartY)
	require.Equal(t, walker.East, c.Heading)
	require.Equal(t, "inverted", c.Rule)
}

func TestFromMapRejectsBadValues(t *testing.T) {
	for name, cfg := range map[string]map[string]string{
		"zero width":  {"w": "0"},
		"junk height": {"h": "tall"},
		"bad heading": {"heading": "up"},
		"bad rule":    {"rule": "spiral"},
	} {
		_, err := FromMap(cfg)
		require.Error(t, err, name)
	}
}

func TestAntStepPatchesCells(t *testing.T) {
	a, err := NewAnt(Config{Width: 3, Height: 3, StartX: 1, StartY: 1, Heading: walker.North, Rule: "standard"})
	require.NoError(t, err)

	for _, c := range a.Cells() {
		require.Equal(t, uint8(1), c)
	}

	require.True(t, a.Step())
	require.Equal(t, uint8(0), a.Cells()[1*3+1], "start cell should render black after one step")
	require.Equal(t, 1, a.Grid().CountMarked())
}

func TestAntRunAndResetReproduce(t *testing.T) {
	cfg := Config{Width: 5, Height: 5, StartX: 2, StartY: 2, Heading: walker.North, Rule: "standard"}
	a, err := NewAnt(cfg)
	require.NoError(t, err)

	for a.Step() {
	}
	steps := a.Walker().Steps()
	first := append([]uint8(nil), a.Cells()...)

	a.Reset()
	require.False(t, a.Walker().Halted())
	for _, c := range a.Cells() {
		require.Equal(t, uint8(1), c)
	}

	for a.Step() {
	}
	require.Equal(t, steps, a.Walker().Steps())
	require.Equal(t, first, a.Cells())
}

func TestAntRejectsInvalidStart(t *testing.T) {
	_, err := NewAnt(Config{Width: 4, Height: 4, StartX: -1, StartY: 0, Heading: walker.North, Rule: "standard"})
	require.Error(t, err)

	var invalid *walker.InvalidStartError
	require.ErrorAs(t, err, &invalid)
}

func TestRegistryBuildsAnt(t *testing.T) {
	factory, ok := Sims()["ant"]
	require.True(t, ok, "ant factory must be registered")

	s, err := factory(map[string]string{"w": "3", "h": "4"})
	require.NoError(t, err)
	require.Equal(t, "ant", s.Name())
	require.Equal(t, Size{W: 3, H: 4}, s.Size())
	require.Len(t, s.Cells(), 12)
}
