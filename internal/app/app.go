//go:build ebiten

package app

import (
	"errors"
	"log/slog"

	"ternary369/internal/core"
	"ternary369/internal/render"
	"ternary369/internal/sims/ternary369"
	"ternary369/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const hudWidth = 220

// Game adapts the automaton to the ebiten.Game interface.
type Game struct {
	sim     *ternary369.Automaton
	painter *render.GridPainter
	hud     *ui.HUD
	pacer   *core.FixedStep

	scale int
	state runState
}

// New constructs a Game for the provided automaton. It starts paused, like
// a freshly reset run.
func New(sim *ternary369.Automaton, scale, tps int) *Game {
	size := sim.Size()
	return &Game{
		sim:     sim,
		painter: render.NewGridPainter(size.W, size.H),
		hud:     ui.NewHUD(sim, hudWidth),
		pacer:   core.NewFixedStep(tps),
		scale:   scale,
		state:   runState{paused: true},
	}
}

// Reset reseeds generation zero, centered or random, and pauses.
func (g *Game) Reset(random bool) {
	if random {
		g.sim.Randomize(0)
	} else {
		g.sim.Center()
	}
	g.state.restart()
}

// Update handles per-frame logic and advances the automaton.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.state.toggle(g.sim.Done())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.state.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(false)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(true)
	}

	epoch := g.sim.Epoch()
	g.hud.Update(g.viewWidth(), !g.state.paused)
	if g.sim.Epoch() != epoch {
		// The HUD changed the grid; the old painter no longer fits.
		size := g.sim.Size()
		g.painter = render.NewGridPainter(size.W, size.H)
		g.state.restart()
		ebiten.SetWindowSize(g.Layout(0, 0))
	}

	if g.state.shouldStep(g.pacer.ShouldStep) {
		if err := g.sim.Step(); err != nil {
			g.state.paused = true
			if !errors.Is(err, ternary369.ErrComplete) {
				return err
			}
			slog.Info("run complete", "generation", g.sim.Generation())
		}
	}
	return nil
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim.Cells(), g.sim.Palette(), g.scale)
	g.hud.Draw(screen, g.viewWidth(), g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return g.viewWidth() + hudWidth, s.H * g.scale
}

func (g *Game) viewWidth() int { return g.sim.Size().W * g.scale }
