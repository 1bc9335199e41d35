//go:build ebiten

package app

import (
	"fmt"

	"antwalk/internal/render"
	"antwalk/internal/sim"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a walker simulation to the ebiten.Game interface.
type Game struct {
	sim     sim.Sim
	painter *render.GridPainter
	overlay *Overlay

	scale    int
	paused   bool
	tickOnce bool
	finished bool
}

// New constructs a Game for the provided simulation.
func New(s sim.Sim, scale int) *Game {
	return &Game{
		sim:     s,
		painter: render.NewGridPainter(s.Size().W, s.Size().H),
		overlay: NewOverlay(),
		scale:   scale,
	}
}

// Reset re-runs the deterministic walk from its start.
func (g *Game) Reset() {
	g.sim.Reset()
	g.finished = false
	g.tickOnce = false
}

// Update handles per-frame input and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset()
	}

	if !g.finished && (!g.paused || g.tickOnce) {
		if !g.sim.Step() {
			g.finished = true
		}
		g.tickOnce = false
	}
	return nil
}

// Draw renders the current simulation state plus the status line.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim.Cells(), g.cursor(), g.scale)
	g.overlay.Draw(screen, g.status())
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W * g.scale, s.H * g.scale
}

// cursor returns the walker's cell index, or -1 when the sim has no walker.
func (g *Game) cursor() int {
	a, ok := g.sim.(*sim.Ant)
	if !ok {
		return -1
	}
	p := a.Walker().Pos()
	return p.Y*g.sim.Size().W + p.X
}

func (g *Game) status() string {
	a, ok := g.sim.(*sim.Ant)
	if !ok {
		return ""
	}
	w := a.Walker()
	s := fmt.Sprintf("step %d  pos %v  heading %s  marked %d",
		w.Steps(), w.Pos(), w.Heading(), a.Grid().CountMarked())
	if w.Halted() {
		return s + "  [halted]"
	}
	if g.paused {
		return s + "  [paused]"
	}
	return s
}
