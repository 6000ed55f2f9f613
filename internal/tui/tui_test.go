package tui

import (
	"context"
	"testing"
	"time"

	"sandtilt/internal/core"
	"sandtilt/internal/sand"

	"github.com/gdamore/tcell/v2"
)

func newScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(80, 24)
	return screen
}

func key(k tcell.Key) *tcell.EventKey { return tcell.NewEventKey(k, 0, tcell.ModNone) }

func runeKey(r rune) *tcell.EventKey { return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone) }

func TestArrow(t *testing.T) {
	cases := map[int]rune{
		0:    '↓',
		45:   '↘',
		-45:  '↙',
		135:  '↗',
		-135: '↖',
	}
	for angle, want := range cases {
		if got := Arrow(angle); got != want {
			t.Fatalf("Arrow(%d) = %q, want %q", angle, got, want)
		}
	}
}

func TestHandleEventAdjustsAngle(t *testing.T) {
	sim := sand.New(8)
	u := New(newScreen(t), sim, nil, time.Millisecond)

	steps := []struct {
		ev   *tcell.EventKey
		want int
	}{
		{key(tcell.KeyRight), 1},
		{key(tcell.KeyUp), 11},
		{key(tcell.KeyLeft), 10},
		{key(tcell.KeyDown), 0},
		{key(tcell.KeyDown), -10},
	}
	for i, s := range steps {
		if !u.HandleEvent(s.ev) {
			t.Fatalf("step %d: unexpected quit", i)
		}
		if got := sim.Angle(); got != s.want {
			t.Fatalf("step %d: angle = %d, want %d", i, got, s.want)
		}
	}
}

func TestHandleEventEditsAndQuits(t *testing.T) {
	sim := sand.New(8)
	u := New(newScreen(t), sim, nil, time.Millisecond)

	u.HandleEvent(runeKey('a'))
	if !sim.Grid().IsFilled(4, 1) {
		t.Fatal("add key should drop a grain at the spawn point")
	}
	u.HandleEvent(runeKey('n'))
	if sim.Ticks() != 1 || !sim.Grid().IsFilled(4, 2) {
		t.Fatalf("step key should advance one tick, ticks=%d", sim.Ticks())
	}
	u.HandleEvent(runeKey('x'))
	if sim.Counts().Filled != 0 {
		t.Fatalf("remove key left %d grains", sim.Counts().Filled)
	}
	u.HandleEvent(runeKey(' '))
	if !u.Paused() {
		t.Fatal("space should pause")
	}
	if u.HandleEvent(runeKey('q')) {
		t.Fatal("q should quit")
	}
	if u.HandleEvent(key(tcell.KeyEscape)) {
		t.Fatal("escape should quit")
	}
}

func TestDrawBoardAndPanel(t *testing.T) {
	screen := newScreen(t)
	sim := sand.New(8)
	sim.Grid().Set(0, 7, core.Filled)
	sim.Grid().Set(7, 7, core.Wall)
	sim.Recount()
	u := New(screen, sim, nil, time.Millisecond)
	u.Draw()

	check := func(x, y int, want rune) {
		t.Helper()
		if got, _, _, _ := screen.GetContent(x, y); got != want {
			t.Fatalf("cell at (%d,%d) = %q, want %q", x, y, got, want)
		}
	}
	check(0, 7, '█')
	check(1, 7, '█')
	check(14, 7, '▓')
	check(2, 0, '·')
	check(8, 1, '+')

	px := 8*cellWidth + panelGap
	check(px, 0, 'G')
	if got, _, _, _ := screen.GetContent(px+len("Gravity "), 7); got != '↓' {
		t.Fatalf("gravity arrow = %q, want ↓", got)
	}
}

func TestRunStopsOnQuit(t *testing.T) {
	screen := newScreen(t)
	sim := sand.New(8)
	sim.Grid().Set(3, 0, core.Filled)
	sim.Recount()
	u := New(screen, sim, nil, time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- u.Run(ctx) }()
	time.Sleep(20 * time.Millisecond)
	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	if err := <-done; err != nil {
		t.Fatalf("Run returned %v, want nil after quit", err)
	}
	if sim.Ticks() == 0 {
		t.Fatal("Run should have stepped the simulation")
	}
}

func TestRunHonoursContext(t *testing.T) {
	u := New(newScreen(t), sand.New(4), nil, time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := u.Run(ctx); err != context.Canceled {
		t.Fatalf("Run = %v, want context.Canceled", err)
	}
}
