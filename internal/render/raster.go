package render

import (
	"image"
	"image/draw"
	"math"

	"golang.org/x/image/vector"
)

// Rasterize paints a DrawList into a w×h RGBA image: background, cell fills
// and the centre marker. Cells not fully inside the image are skipped, and
// outlines are left to interactive painters.
func Rasterize(dl DrawList, w, h int, pal Palette) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(pal.Background), image.Point{}, draw.Src)

	z := &vector.Rasterizer{}
	for _, q := range dl.Cells {
		bounds := quadBounds(q)
		if bounds.Empty() || !bounds.In(img.Bounds()) {
			continue
		}
		z.Reset(bounds.Dx(), bounds.Dy())
		ox, oy := float32(bounds.Min.X), float32(bounds.Min.Y)
		z.MoveTo(float32(q.Corners[0].X)-ox, float32(q.Corners[0].Y)-oy)
		for _, p := range q.Corners[1:] {
			z.LineTo(float32(p.X)-ox, float32(p.Y)-oy)
		}
		z.ClosePath()
		z.DrawOp = draw.Over
		z.Draw(img, bounds, image.NewUniform(q.Fill), image.Point{})
	}

	r := dl.CenterRadius
	centre := image.Rect(
		int(math.Floor(dl.Center.X-r)), int(math.Floor(dl.Center.Y-r)),
		int(math.Ceil(dl.Center.X+r)), int(math.Ceil(dl.Center.Y+r)),
	)
	draw.Draw(img, centre.Intersect(img.Bounds()), image.NewUniform(dl.FrameColor), image.Point{}, draw.Over)
	return img
}

func quadBounds(q Quad) image.Rectangle {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range q.Corners {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	return image.Rect(int(math.Floor(minX)), int(math.Floor(minY)), int(math.Ceil(maxX)), int(math.Ceil(maxY)))
}
