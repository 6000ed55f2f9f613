package ui

import (
	"testing"

	"sandtilt/internal/core"
)

func angleControl() core.ParameterControl {
	return core.ParameterControl{Key: "angle", Label: "Angle", Type: core.ParamTypeInt, Step: 10, Min: -360, Max: 360}
}

func TestLayoutHitTesting(t *testing.T) {
	l := newLayout(220, []core.ParameterControl{angleControl()}, 4)

	var add, minus button
	for _, b := range l.buttons {
		switch {
		case b.action == ActionAdd:
			add = b
		case b.action == ActionAdjust && b.delta < 0:
			minus = b
		}
	}
	if add.rect.Empty() || minus.rect.Empty() {
		t.Fatal("layout must contain add and minus buttons")
	}

	got, ok := l.hit(add.rect.Min.X+1, add.rect.Min.Y+1)
	if !ok || got.action != ActionAdd {
		t.Fatalf("hit on add button returned %+v ok=%v", got, ok)
	}
	got, ok = l.hit(minus.rect.Min.X, minus.rect.Min.Y)
	if !ok || got.action != ActionAdjust || got.delta != -1 || got.control != 0 {
		t.Fatalf("hit on minus button returned %+v ok=%v", got, ok)
	}
	if _, ok := l.hit(0, 0); ok {
		t.Fatal("panel corner should not hit a button")
	}
	if _, ok := l.hit(add.rect.Max.X, add.rect.Min.Y); ok {
		t.Fatal("rect max edge is exclusive")
	}
}

func TestLayoutButtonsDoNotOverlap(t *testing.T) {
	l := newLayout(220, []core.ParameterControl{angleControl()}, 5)
	for i, a := range l.buttons {
		if a.rect.Max.X > 220 {
			t.Fatalf("button %q spills outside the panel", a.label)
		}
		for _, b := range l.buttons[i+1:] {
			if a.rect.Overlaps(b.rect) {
				t.Fatalf("buttons %q and %q overlap", a.label, b.label)
			}
		}
	}
}

func TestAdjustedClamps(t *testing.T) {
	ctrl := angleControl()
	if got := adjusted(ctrl, 355, 1); got != 360 {
		t.Fatalf("adjusted = %d, want 360", got)
	}
	if got := adjusted(ctrl, 0, -1); got != -10 {
		t.Fatalf("adjusted = %d, want -10", got)
	}
	ctrl.Step = 0
	if got := adjusted(ctrl, 0, 1); got != 1 {
		t.Fatalf("zero step should fall back to 1, got %d", got)
	}
}
