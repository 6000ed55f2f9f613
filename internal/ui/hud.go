//go:build ebiten

package ui

import (
	"fmt"
	"image"
	"image/color"
	"strconv"

	"sandtilt/internal/core"
	"sandtilt/internal/sand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Source is the simulation view the HUD reads from.
type Source interface {
	Name() string
	Parameters() core.ParameterSnapshot
}

// HUD renders the info panel and controls to the right of the board.
type HUD struct {
	src      Source
	width    int
	panel    *ebiten.Image
	snapshot core.ParameterSnapshot
	layout   layout

	controls  []core.ParameterControl
	intSetter core.IntParameterSetter
	title     string

	pixel *ebiten.Image
}

// NewHUD constructs a HUD for the provided simulation and panel width.
func NewHUD(src Source, width int) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{src: src, width: width, title: "Sand Controls"}
	if name := src.Name(); name != "" {
		h.title = fmt.Sprintf("%s controls", name)
	}
	h.pixel = ebiten.NewImage(1, 1)
	h.pixel.Fill(color.White)
	if provider, ok := src.(core.ParameterControlsProvider); ok {
		h.controls = provider.ParameterControls()
	}
	if setter, ok := src.(core.IntParameterSetter); ok {
		h.intSetter = setter
	}
	h.snapshot = src.Parameters()
	h.layout = newLayout(width, h.controls, infoLineCount(h.snapshot))
	return h
}

// Width returns the panel width in pixels.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}

// Update refreshes the snapshot and reports the action clicked this frame.
// Angle adjustments are applied directly through the parameter setter.
func (h *HUD) Update(panelOffsetX int) Action {
	if h == nil || h.width <= 0 {
		return ActionNone
	}
	h.snapshot = h.src.Parameters()
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return ActionNone
	}
	mx, my := ebiten.CursorPosition()
	if mx < panelOffsetX {
		return ActionNone
	}
	b, ok := h.layout.hit(mx-panelOffsetX, my)
	if !ok {
		return ActionNone
	}
	if b.action == ActionAdjust {
		h.applyAdjustment(b)
	}
	return b.action
}

func (h *HUD) applyAdjustment(b button) {
	if h.intSetter == nil || b.control >= len(h.controls) {
		return
	}
	ctrl := h.controls[b.control]
	current, ok := h.intValue(ctrl.Key)
	if !ok {
		return
	}
	target := adjusted(ctrl, current, b.delta)
	if target != current && h.intSetter.SetIntParameter(ctrl.Key, target) {
		h.snapshot = h.src.Parameters()
	}
}

func (h *HUD) intValue(key string) (int, bool) {
	p, ok := h.snapshot.Lookup(key)
	if !ok {
		return 0, false
	}
	v, err := strconv.Atoi(p.Value)
	return v, err == nil
}

// Draw paints the HUD panel anchored at offsetX with the given height.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dx() != h.width || h.panel.Bounds().Dy() != height {
		h.panel = ebiten.NewImage(h.width, height)
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})

	face := basicfont.Face7x13
	text.Draw(h.panel, h.title, face, panelPadding, panelPadding+headerBaseline, color.RGBA{R: 200, G: 200, B: 210, A: 255})

	y := h.layout.infoTop
	for _, group := range h.snapshot.Groups {
		for _, p := range group.Params {
			line := p.Label + ": " + p.Value
			if p.Key == sand.ParamAngle {
				line += " deg."
			}
			text.Draw(h.panel, line, face, panelPadding, y, color.RGBA{R: 220, G: 220, B: 230, A: 255})
			y += infoLineHeight
		}
	}

	for _, row := range h.layout.controls {
		text.Draw(h.panel, row.control.Label, face, panelPadding, row.top+labelBaseline, color.RGBA{R: 220, G: 220, B: 230, A: 255})
	}
	for _, b := range h.layout.buttons {
		h.drawButton(b.rect, b.label, h.enabled(b))
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) enabled(b button) bool {
	if b.action != ActionAdjust {
		return true
	}
	if h.intSetter == nil || b.control >= len(h.controls) {
		return false
	}
	ctrl := h.controls[b.control]
	current, ok := h.intValue(ctrl.Key)
	return ok && adjusted(ctrl, current, b.delta) != current
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled bool) {
	bg := color.RGBA{R: 54, G: 56, B: 64, A: 255}
	fg := color.RGBA{R: 230, G: 230, B: 240, A: 255}
	if !enabled {
		bg = color.RGBA{R: 32, G: 34, B: 40, A: 255}
		fg = color.RGBA{R: 120, G: 120, B: 130, A: 255}
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(bg)
	h.panel.DrawImage(h.pixel, op)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(h.panel, label, face, x, y, fg)
}

func infoLineCount(s core.ParameterSnapshot) int {
	n := 0
	for _, g := range s.Groups {
		n += len(g.Params)
	}
	return n
}
