package sim

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Sim is the contract a terminating cell automaton exposes to the front
// ends. Step reports whether the sim can advance any further; Reset rebuilds
// the deterministic initial state.
type Sim interface {
	Name() string
	Size() Size
	Reset()
	Step() bool
	Cells() []uint8
}

// Factory constructs a Sim from an optional configuration map.
type Factory func(cfg map[string]string) (Sim, error)

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available simulation factories.
func Sims() map[string]Factory {
	return sims
}
