//go:build ebiten

package app

import (
	"log"

	"sandtilt/internal/audio"
	"sandtilt/internal/core"
	"sandtilt/internal/render"
	"sandtilt/internal/sand"
	"sandtilt/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const hudWidth = 220

// Game adapts the sand simulation to the ebiten.Game interface.
type Game struct {
	sim     *sand.Sim
	painter *render.Painter
	palette render.Palette
	view    render.Viewport
	hud     *ui.HUD
	overlay *ui.Overlay
	player  *audio.Player
	timer   *core.FixedStep

	paused   bool
	tickOnce bool
}

// New constructs a Game for the provided simulation. player may be nil.
func New(sim *sand.Sim, cfg *Config, player *audio.Player) *Game {
	view := render.FitViewport(sim.Grid().Size(), cfg.CellSize)
	return &Game{
		sim:     sim,
		painter: render.NewPainter(),
		palette: render.DefaultPalette(),
		view:    view,
		hud:     ui.NewHUD(sim, hudWidth),
		overlay: ui.NewOverlay(sim, view),
		player:  player,
		timer:   core.NewFixedStep(cfg.Tick),
	}
}

// WindowSize returns the outer window size in pixels.
func (g *Game) WindowSize() (int, int) {
	return g.view.W + g.hud.Width(), g.view.H
}

// Update handles per-frame logic and advances the simulation.
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
		g.sim.Reset()
		g.tickOnce = false
		log.Printf("reset scene %q", g.sim.Scene())
	}

	switch {
	case repeating(ebiten.KeyArrowLeft):
		g.sim.SetAngle(g.sim.Angle() - 1)
	case repeating(ebiten.KeyArrowRight):
		g.sim.SetAngle(g.sim.Angle() + 1)
	case repeating(ebiten.KeyArrowDown):
		g.sim.SetAngle(g.sim.Angle() - 10)
	case repeating(ebiten.KeyArrowUp):
		g.sim.SetAngle(g.sim.Angle() + 10)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyA) {
		g.add()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyX) {
		g.remove()
	}

	switch g.hud.Update(g.view.W) {
	case ui.ActionAdd:
		g.add()
	case ui.ActionRemove:
		g.remove()
	}

	g.overlay.Update()

	step := g.timer.ShouldStep()
	if (!g.paused && step) || g.tickOnce {
		g.sim.Step()
		g.tickOnce = false
	}
	return nil
}

func (g *Game) add() {
	if g.sim.AddSand() {
		g.player.Play(audio.CueAdd)
		return
	}
	g.player.Play(audio.CueNoop)
}

func (g *Game) remove() {
	if g.sim.RemoveSand() {
		g.player.Play(audio.CueRemove)
		return
	}
	g.player.Play(audio.CueNoop)
}

// repeating fires on the first press and then every few frames while held.
func repeating(key ebiten.Key) bool {
	const (
		delay    = 15
		interval = 3
	)
	d := inpututil.KeyPressDuration(key)
	if d == 1 {
		return true
	}
	return d >= delay && (d-delay)%interval == 0
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	dl := render.Commands(g.sim.Grid(), g.sim.Angle(), g.view, g.palette)
	g.painter.Draw(screen, dl, g.palette.Background)
	g.overlay.Draw(screen)
	g.hud.Draw(screen, g.view.W, g.view.H)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.WindowSize()
}
