//go:build ebiten

package render

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Painter draws a DrawList onto an ebiten image. Cell fills go through a
// single DrawTriangles call per frame.
type Painter struct {
	white    *ebiten.Image
	vertices []ebiten.Vertex
	indices  []uint16
}

// NewPainter allocates the shared white source texture.
func NewPainter() *Painter {
	base := ebiten.NewImage(3, 3)
	base.Fill(color.White)
	return &Painter{white: base.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)}
}

// Draw paints the frame, cells, outlines and centre marker.
func (p *Painter) Draw(dst *ebiten.Image, dl DrawList, background color.Color) {
	dst.Fill(background)

	p.vertices = p.vertices[:0]
	p.indices = p.indices[:0]
	for _, q := range dl.Cells {
		p.appendQuad(q)
		// uint16 indices cap a batch at 65535 vertices.
		if len(p.vertices) >= 65532 {
			p.flush(dst)
		}
	}
	p.flush(dst)

	for _, q := range dl.Cells {
		for i := range q.Corners {
			a, b := q.Corners[i], q.Corners[(i+1)%4]
			vector.StrokeLine(dst, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), 1, q.Outline, false)
		}
	}

	vector.StrokeRect(dst,
		float32(dl.FrameMin.X), float32(dl.FrameMin.Y),
		float32(dl.FrameMax.X-dl.FrameMin.X), float32(dl.FrameMax.Y-dl.FrameMin.Y),
		1, dl.FrameColor, false)
	vector.DrawFilledCircle(dst, float32(dl.Center.X), float32(dl.Center.Y), float32(dl.CenterRadius), dl.FrameColor, true)
}

func (p *Painter) appendQuad(q Quad) {
	base := uint16(len(p.vertices))
	r := float32(q.Fill.R) / 255
	g := float32(q.Fill.G) / 255
	b := float32(q.Fill.B) / 255
	a := float32(q.Fill.A) / 255
	for _, c := range q.Corners {
		p.vertices = append(p.vertices, ebiten.Vertex{
			DstX:   float32(c.X),
			DstY:   float32(c.Y),
			SrcX:   1,
			SrcY:   1,
			ColorR: r,
			ColorG: g,
			ColorB: b,
			ColorA: a,
		})
	}
	p.indices = append(p.indices, base, base+1, base+2, base, base+2, base+3)
}

func (p *Painter) flush(dst *ebiten.Image) {
	if len(p.indices) == 0 {
		return
	}
	dst.DrawTriangles(p.vertices, p.indices, p.white, &ebiten.DrawTrianglesOptions{})
	p.vertices = p.vertices[:0]
	p.indices = p.indices[:0]
}
