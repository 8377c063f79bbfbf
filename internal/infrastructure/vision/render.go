package vision

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"ring-inspector/internal/domain/entity"
)

var (
	markerColor = color.RGBA{R: 255, A: 255}
	rayColor    = color.RGBA{B: 255, A: 255}
	goodColor   = color.RGBA{G: 160, A: 255}
	badColor    = color.RGBA{R: 220, A: 255}
)

const (
	markerRadius    = 20
	markerThickness = 3
	rayThickness    = 2
	circleSegments  = 64
)

// annotate рисует на изображении маркер дефекта, луч от центра и подпись.
func annotate(dst *image.RGBA, result *entity.InspectionResult) {
	if result.HasDefects() && result.Location != nil && result.Center != nil {
		strokeCircle(dst, *result.Location, markerRadius, markerThickness, markerColor)
		strokeLine(dst, *result.Center, *result.Location, rayThickness, rayColor)
	}

	textColor := badColor
	if result.Status == entity.StatusGood {
		textColor = goodColor
	}
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(textColor),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(10, 20),
	}
	d.DrawString(caption(result))
}

// strokeLine рисует отрезок заданной толщины как четырёхугольник.
func strokeLine(dst *image.RGBA, a, b image.Point, width float32, c color.Color) {
	ax, ay := float32(a.X)+0.5, float32(a.Y)+0.5
	bx, by := float32(b.X)+0.5, float32(b.Y)+0.5
	dx, dy := bx-ax, by-ay
	length := float32(math.Hypot(float64(dx), float64(dy)))
	if length == 0 {
		return
	}
	nx, ny := -dy/length*width/2, dx/length*width/2

	z := newRasterizer(dst)
	z.MoveTo(ax+nx, ay+ny)
	z.LineTo(bx+nx, by+ny)
	z.LineTo(bx-nx, by-ny)
	z.LineTo(ax-nx, ay-ny)
	z.ClosePath()
	z.Draw(dst, dst.Bounds(), image.NewUniform(c), image.Point{})
}

// strokeCircle рисует окружность как кольцо: внутренний контур обходится
// в обратную сторону и вычитается.
func strokeCircle(dst *image.RGBA, center image.Point, radius, width float64, c color.Color) {
	cx, cy := float64(center.X)+0.5, float64(center.Y)+0.5
	z := newRasterizer(dst)
	addCirclePath(z, cx, cy, radius+width/2, 1)
	addCirclePath(z, cx, cy, radius-width/2, -1)
	z.Draw(dst, dst.Bounds(), image.NewUniform(c), image.Point{})
}

func addCirclePath(z *vector.Rasterizer, cx, cy, r, dir float64) {
	for i := 0; i <= circleSegments; i++ {
		a := dir * 2 * math.Pi * float64(i) / circleSegments
		x, y := float32(cx+r*math.Cos(a)), float32(cy+r*math.Sin(a))
		if i == 0 {
			z.MoveTo(x, y)
			continue
		}
		z.LineTo(x, y)
	}
	z.ClosePath()
}

func newRasterizer(dst draw.Image) *vector.Rasterizer {
	b := dst.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	z.DrawOp = draw.Over
	return z
}
