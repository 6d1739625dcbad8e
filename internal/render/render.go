// Package render draws the playing field into an RGBA image: filled piece
// silhouettes in normal mode, outlines with the inner circle and a center
// cross in draft mode, and the docking highlight on top of either.
package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/colornames"
	"golang.org/x/image/vector"

	"gotang/internal/docking"
	"gotang/internal/shape"
	"gotang/pkg/geometry"
)

var (
	backgroundColor = colornames.White
	shapeColor      = colornames.Black
	dockingColor    = colornames.Magenta
)

const (
	strokeWidth    = 1.5
	circleSegments = 64
)

// Scene renders the stationary pieces, the actively dragged piece and the
// docking highlight into a fresh w x h image.
func Scene(pieces []*shape.Shape, active *shape.Shape, highlight *docking.Pair, draft bool, w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(backgroundColor), image.Point{}, draw.Src)

	for _, p := range pieces {
		drawPiece(img, p, draft)
	}
	if active != nil {
		drawPiece(img, active, draft)
	}
	if highlight != nil {
		strokeSegment(img, highlight.Static.Tail, highlight.Static.Head, dockingColor)
		strokeSegment(img, highlight.Floating.Tail, highlight.Floating.Head, dockingColor)
	}
	return img
}

func drawPiece(img *image.RGBA, s *shape.Shape, draft bool) {
	if !draft {
		fillPolygon(img, s.Vertices(), shapeColor)
		return
	}

	for _, e := range s.Edges() {
		strokeSegment(img, e.Tail, e.Head, shapeColor)
	}
	strokeCircle(img, s.RefPoint(), s.InnerRadius(), shapeColor)

	// Center cross with arms a third of the inner radius.
	ref := s.RefPoint()
	arm := s.InnerRadius() / 3
	strokeSegment(img, geometry.NewPoint2D(ref.X-arm, ref.Y), geometry.NewPoint2D(ref.X+arm, ref.Y), shapeColor)
	strokeSegment(img, geometry.NewPoint2D(ref.X, ref.Y-arm), geometry.NewPoint2D(ref.X, ref.Y+arm), shapeColor)
}

// fillPolygon rasterizes a closed polygon with antialiasing.
func fillPolygon(img *image.RGBA, pts []geometry.Point2D, col color.Color) {
	if len(pts) < 3 {
		return
	}
	r := vector.NewRasterizer(img.Bounds().Dx(), img.Bounds().Dy())
	r.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, p := range pts[1:] {
		r.LineTo(float32(p.X), float32(p.Y))
	}
	r.ClosePath()
	r.Draw(img, img.Bounds(), image.NewUniform(col), image.Point{})
}

// strokeSegment draws the segment a-b as a thin filled quad.
func strokeSegment(img *image.RGBA, a, b geometry.Point2D, col color.Color) {
	dir := b.Sub(a)
	length := dir.Length()
	if length < geometry.Epsilon {
		return
	}
	n := dir.Perp().Scale(strokeWidth / 2 / length)
	fillPolygon(img, []geometry.Point2D{a.Add(n), b.Add(n), b.Sub(n), a.Sub(n)}, col)
}

func strokeCircle(img *image.RGBA, center geometry.Point2D, radius float64, col color.Color) {
	if radius <= 0 {
		return
	}
	prev := geometry.NewPoint2D(center.X+radius, center.Y)
	for i := 1; i <= circleSegments; i++ {
		angle := 2 * math.Pi * float64(i) / circleSegments
		next := geometry.NewPoint2D(center.X+radius*math.Cos(angle), center.Y+radius*math.Sin(angle))
		strokeSegment(img, prev, next, col)
		prev = next
	}
}
