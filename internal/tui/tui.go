// Package tui is a terminal frontend for the sand simulation. The board is
// drawn unrotated with two terminal columns per cell, and gravity is shown
// as an arrow next to the info panel.
package tui

import (
	"context"
	"time"

	"sandtilt/internal/audio"
	"sandtilt/internal/core"
	"sandtilt/internal/sand"

	"github.com/gdamore/tcell/v2"
)

const (
	cellWidth = 2
	panelGap  = 3
)

var (
	styleEmpty  = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleFilled = tcell.StyleDefault.Foreground(tcell.NewRGBColor(255, 200, 0))
	styleWall   = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleSpawn  = tcell.StyleDefault.Foreground(tcell.ColorFuchsia)
	styleLabel  = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleHint   = tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	styleArrow  = tcell.StyleDefault.Foreground(tcell.ColorAqua).Bold(true)
)

// UI owns a tcell screen and drives the simulation from its event loop.
type UI struct {
	screen tcell.Screen
	sim    *sand.Sim
	player *audio.Player
	tick   time.Duration

	paused bool
}

// New wraps an initialised screen. player may be nil.
func New(screen tcell.Screen, sim *sand.Sim, player *audio.Player, tick time.Duration) *UI {
	if tick <= 0 {
		tick = core.DefaultTickInterval
	}
	return &UI{screen: screen, sim: sim, player: player, tick: tick}
}

// Paused reports whether automatic stepping is suspended.
func (u *UI) Paused() bool { return u.paused }

// Run processes input and advances the simulation once per tick until the
// user quits or ctx is cancelled.
func (u *UI) Run(ctx context.Context) error {
	ticker := time.NewTicker(u.tick)
	defer ticker.Stop()

	events := make(chan tcell.Event, 64)
	quit := make(chan struct{})
	defer close(quit)
	go func() {
		for {
			ev := u.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()

	u.Draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			if !u.HandleEvent(ev) {
				return nil
			}
			u.Draw()
		case <-ticker.C:
			if !u.paused {
				u.sim.Step()
			}
			u.Draw()
		}
	}
}

// HandleEvent applies one input event. It returns false when the user asked
// to quit.
func (u *UI) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return u.handleKey(ev)
	case *tcell.EventResize:
		u.screen.Sync()
	}
	return true
}

func (u *UI) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyLeft:
		u.sim.SetAngle(u.sim.Angle() - 1)
	case tcell.KeyRight:
		u.sim.SetAngle(u.sim.Angle() + 1)
	case tcell.KeyDown:
		u.sim.SetAngle(u.sim.Angle() - 10)
	case tcell.KeyUp:
		u.sim.SetAngle(u.sim.Angle() + 10)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return false
		case ' ':
			u.paused = !u.paused
		case 'n', 'N':
			u.sim.Step()
		case 'r', 'R':
			u.sim.Reset()
		case 'a', 'A':
			u.cue(u.sim.AddSand(), audio.CueAdd)
		case 'x', 'X':
			u.cue(u.sim.RemoveSand(), audio.CueRemove)
		}
	}
	return true
}

func (u *UI) cue(changed bool, c audio.Cue) {
	if !changed {
		c = audio.CueNoop
	}
	u.player.Play(c)
}

// Draw paints the board and info panel and shows the frame.
func (u *UI) Draw() {
	u.screen.Clear()
	g := u.sim.Grid()
	n := g.Size()
	spawn := u.sim.SpawnPoint()
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			r, style := glyph(g.At(x, y))
			if x == spawn.X && y == spawn.Y && g.IsEmpty(x, y) {
				r, style = '+', styleSpawn
			}
			for i := 0; i < cellWidth; i++ {
				u.screen.SetContent(x*cellWidth+i, y, r, nil, style)
			}
		}
	}

	px := n*cellWidth + panelGap
	row := 0
	for _, group := range u.sim.Parameters().Groups {
		u.text(px, row, group.Name, styleHint)
		row++
		for _, p := range group.Params {
			u.text(px, row, p.Label+": "+p.Value, styleLabel)
			row++
		}
	}
	u.text(px, row, "Gravity ", styleLabel)
	u.screen.SetContent(px+len("Gravity "), row, Arrow(u.sim.Angle()), nil, styleArrow)
	row++
	if u.paused {
		u.text(px, row, "paused", styleHint)
	}
	row += 2
	for _, hint := range []string{
		"←/→ angle ±1  ↑/↓ ±10",
		"a add  x remove",
		"space pause  n step",
		"r reset  q quit",
	} {
		u.text(px, row, hint, styleHint)
		row++
	}
	u.screen.Show()
}

func (u *UI) text(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		u.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

func glyph(c core.Cell) (rune, tcell.Style) {
	switch c {
	case core.Filled:
		return '█', styleFilled
	case core.Wall:
		return '▓', styleWall
	default:
		return '·', styleEmpty
	}
}

// Arrow returns the compass glyph closest to the gravity direction for angle
// degrees, in board coordinates with y growing downwards.
func Arrow(angle int) rune {
	d := sand.DirectionFromAngle(angle)
	switch {
	case d.DX == 0 && d.DY > 0:
		return '↓'
	case d.DX == 0 && d.DY < 0:
		return '↑'
	case d.DX > 0 && d.DY == 0:
		return '→'
	case d.DX < 0 && d.DY == 0:
		return '←'
	case d.DX > 0 && d.DY > 0:
		return '↘'
	case d.DX < 0 && d.DY > 0:
		return '↙'
	case d.DX > 0 && d.DY < 0:
		return '↗'
	case d.DX < 0 && d.DY < 0:
		return '↖'
	}
	return '·'
}
