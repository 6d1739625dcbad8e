// Package tangram defines the classic seven-piece puzzle set and its initial
// placement on the playing field.
package tangram

import (
	"fmt"

	"gotang/internal/shape"
	"gotang/pkg/geometry"
)

// Default playing field size in pixels.
const (
	FieldWidth  = 640
	FieldHeight = 420
)

// The seven pieces dissect a 120x120 square: five triangles, the small
// square (as a degenerate-free parallelogram) and the slanted parallelogram.
var pieceData = []struct {
	kind    shape.Kind
	a, b, c geometry.Point2D
}{
	{shape.KindTriangle, pt(0, 0), pt(60, 60), pt(0, 120)},
	{shape.KindTriangle, pt(0, 0), pt(60, 0), pt(30, 30)},
	{shape.KindTriangle, pt(60, 0), pt(120, 0), pt(120, 60)},
	{shape.KindTriangle, pt(0, 120), pt(60, 60), pt(120, 120)},
	{shape.KindTriangle, pt(60, 60), pt(90, 30), pt(90, 90)},
	{shape.KindParallelogram, pt(60, 0), pt(90, 30), pt(60, 60)},
	{shape.KindParallelogram, pt(90, 30), pt(120, 60), pt(120, 120)},
}

// Initial piece locations as (column, row) cells of a 3x3 grid.
var pieceCells = []geometry.Point2D{
	{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 1},
	{X: 2, Y: 2}, {X: 0, Y: 1}, {X: 0, Y: 2},
	{X: 2, Y: 0},
}

func pt(x, y float64) geometry.Point2D {
	return geometry.NewPoint2D(x, y)
}

// Pieces constructs the seven-piece set in its dissection position.
func Pieces() ([]*shape.Shape, error) {
	pieces := make([]*shape.Shape, 0, len(pieceData))
	for i, d := range pieceData {
		var (
			s   *shape.Shape
			err error
		)
		switch d.kind {
		case shape.KindParallelogram:
			s, err = shape.NewParallelogram(d.a, d.b, d.c)
		default:
			s, err = shape.NewTriangle(d.a, d.b, d.c)
		}
		if err != nil {
			return nil, fmt.Errorf("piece %d: %w", i, err)
		}
		pieces = append(pieces, s)
	}
	return pieces, nil
}

// Layout spreads the pieces over a 3x3 grid of the field, moving each
// piece's reference point to the center of its cell.
func Layout(pieces []*shape.Shape, width, height float64) {
	cellW := width / 3
	cellH := height / 3
	for i, s := range pieces {
		cell := pieceCells[i%len(pieceCells)]
		s.MoveTo(pt((cell.X+0.5)*cellW, (cell.Y+0.5)*cellH))
	}
}
