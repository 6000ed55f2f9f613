package ui

import (
	"image"

	"sandtilt/internal/core"
)

// Action is what a HUD click asks the game to do.
type Action int

const (
	ActionNone Action = iota
	ActionAdd
	ActionRemove
	ActionAdjust
)

type button struct {
	rect   image.Rectangle
	label  string
	action Action

	// control and delta are set for ActionAdjust buttons.
	control int
	delta   int
}

type controlRow struct {
	control core.ParameterControl
	top     int
}

// layout positions every HUD element inside a panel of the given width.
type layout struct {
	width    int
	infoTop  int
	controls []controlRow
	buttons  []button
}

func newLayout(width int, controls []core.ParameterControl, infoLines int) layout {
	l := layout{width: width, infoTop: panelPadding + headerBaseline + infoSpacing}
	top := l.infoTop + infoLines*infoLineHeight + sectionGap
	for i, ctrl := range controls {
		rowTop := top + i*lineHeight
		buttonY := rowTop + (lineHeight-buttonSize)/2
		plus := image.Rect(width-panelPadding-buttonSize, buttonY, width-panelPadding, buttonY+buttonSize)
		minus := image.Rect(plus.Min.X-buttonGap-buttonSize, buttonY, plus.Min.X-buttonGap, buttonY+buttonSize)
		l.controls = append(l.controls, controlRow{control: ctrl, top: rowTop})
		l.buttons = append(l.buttons,
			button{rect: minus, label: "-", action: ActionAdjust, control: i, delta: -1},
			button{rect: plus, label: "+", action: ActionAdjust, control: i, delta: 1},
		)
	}

	actionsTop := top + len(controls)*lineHeight + sectionGap
	actionWidth := width - 2*panelPadding
	l.buttons = append(l.buttons,
		button{
			rect:   image.Rect(panelPadding, actionsTop, panelPadding+actionWidth, actionsTop+actionHeight),
			label:  "Add sand",
			action: ActionAdd,
		},
		button{
			rect:   image.Rect(panelPadding, actionsTop+actionHeight+buttonGap, panelPadding+actionWidth, actionsTop+2*actionHeight+buttonGap),
			label:  "Remove sand",
			action: ActionRemove,
		},
	)
	return l
}

// hit returns the button under panel-local point (x, y).
func (l layout) hit(x, y int) (button, bool) {
	for _, b := range l.buttons {
		if pointInRect(x, y, b.rect) {
			return b, true
		}
	}
	return button{}, false
}

// adjusted returns the clamped value after one step in direction dir.
func adjusted(ctrl core.ParameterControl, current, dir int) int {
	step := ctrl.Step
	if step <= 0 {
		step = 1
	}
	return ctrl.Clamp(current + dir*step)
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}

const (
	panelPadding   = 12
	lineHeight     = 36
	buttonSize     = 24
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 24
	infoSpacing    = 14
	infoLineHeight = 18
	sectionGap     = 12
	actionHeight   = 28
)
