// Package shape models the rigid convex pieces of the puzzle: triangles and
// parallelograms. Every piece carries a reference point (the rotation pivot)
// and the radius of the inner circle centered there; the host uses the circle
// to decide whether a touch starts a move or a rotate gesture.
package shape

import (
	"fmt"
	"math"

	"gotang/pkg/geometry"
)

// Kind discriminates the shape variants.
type Kind int

const (
	KindTriangle Kind = iota
	KindParallelogram
)

func (k Kind) String() string {
	switch k {
	case KindTriangle:
		return "triangle"
	case KindParallelogram:
		return "parallelogram"
	default:
		return "unknown"
	}
}

// Edge is an ordered pair of adjacent vertices, oriented by the shape's
// winding order.
type Edge struct {
	Tail geometry.Point2D
	Head geometry.Point2D
}

// Vector returns the displacement from tail to head.
func (e Edge) Vector() geometry.Point2D {
	return e.Head.Sub(e.Tail)
}

// Shape is a convex polygon with 3 or 4 vertices in a fixed winding order.
// The reference point and inner radius are derived at construction time;
// rigid transforms carry the reference point along instead of recomputing it,
// and the inner radius never changes.
type Shape struct {
	kind        Kind
	vertices    []geometry.Point2D
	refPoint    geometry.Point2D
	innerRadius float64
}

// NewTriangle builds a triangle from its three vertices. The reference point
// is the incenter, found as the intersection of the internal angle bisectors
// at A and C; the inner radius is the incenter's distance to the line A-C.
// Returns ErrDegenerateGeometry when the vertices are collinear.
func NewTriangle(a, b, c geometry.Point2D) (*Shape, error) {
	if math.Abs(b.Sub(a).Cross(c.Sub(a))) < geometry.Epsilon {
		return nil, fmt.Errorf("triangle %v %v %v: %w", a, b, c, geometry.ErrDegenerateGeometry)
	}

	abx := geometry.Inclination(a, b)
	acx := geometry.Inclination(a, c)
	cbx := geometry.Inclination(c, b)

	// The internal bisector at a vertex halves the angle between its two
	// incident edge rays. At C the ray towards A is the opposite of A->C.
	bisectorA := (abx + acx) / 2
	bisectorC := (cbx + (acx + math.Pi)) / 2

	incenter, err := geometry.LineIntersection(
		a, geometry.UnitVector(bisectorA),
		c, geometry.UnitVector(bisectorC),
	)
	if err != nil {
		return nil, fmt.Errorf("triangle %v %v %v bisectors: %w", a, b, c, err)
	}

	radius, err := geometry.PointToLineDistance(incenter, a, geometry.UnitVector(acx))
	if err != nil {
		return nil, fmt.Errorf("triangle %v %v %v inner radius: %w", a, b, c, err)
	}

	return &Shape{
		kind:        KindTriangle,
		vertices:    []geometry.Point2D{a, b, c},
		refPoint:    incenter,
		innerRadius: radius,
	}, nil
}

// NewParallelogram builds a parallelogram from three consecutive vertices;
// the fourth is derived as D = A + C - B. The reference point is the
// intersection of the diagonals, the inner radius the smaller distance from
// it to the two edge lines through A. Returns ErrDegenerateGeometry when the
// input collapses onto a line.
func NewParallelogram(a, b, c geometry.Point2D) (*Shape, error) {
	d := a.Add(c).Sub(b)

	ref, err := geometry.LineIntersection(a, c.Sub(a), b, b.Sub(d))
	if err != nil {
		return nil, fmt.Errorf("parallelogram %v %v %v diagonals: %w", a, b, c, err)
	}

	distAB, err := geometry.PointToLineDistance(ref, a, b.Sub(a))
	if err != nil {
		return nil, fmt.Errorf("parallelogram %v %v %v edge A-B: %w", a, b, c, err)
	}
	distAD, err := geometry.PointToLineDistance(ref, a, d.Sub(a))
	if err != nil {
		return nil, fmt.Errorf("parallelogram %v %v %v edge A-D: %w", a, b, c, err)
	}

	return &Shape{
		kind:        KindParallelogram,
		vertices:    []geometry.Point2D{a, b, c, d},
		refPoint:    ref,
		innerRadius: math.Min(distAB, distAD),
	}, nil
}

// Kind returns the shape variant.
func (s *Shape) Kind() Kind {
	return s.kind
}

// Vertices returns a copy of the vertex sequence in winding order.
func (s *Shape) Vertices() []geometry.Point2D {
	out := make([]geometry.Point2D, len(s.vertices))
	copy(out, s.vertices)
	return out
}

// RefPoint returns the shape's reference point.
func (s *Shape) RefPoint() geometry.Point2D {
	return s.refPoint
}

// InnerRadius returns the radius of the inner circle around the reference
// point.
func (s *Shape) InnerRadius() float64 {
	return s.innerRadius
}

// Edges returns the boundary as N edges of adjacent vertices, starting with
// (last vertex, first vertex).
func (s *Shape) Edges() []Edge {
	edges := make([]Edge, len(s.vertices))
	tail := s.vertices[len(s.vertices)-1]
	for i, head := range s.vertices {
		edges[i] = Edge{Tail: tail, Head: head}
		tail = head
	}
	return edges
}

// Rotate rotates the shape about its reference point by the given angle in
// radians, counter-clockwise positive.
func (s *Shape) Rotate(angle float64) {
	rot := geometry.RotationAbout(s.refPoint, angle)
	for i, v := range s.vertices {
		s.vertices[i] = rot.Apply(v)
	}
}

// MoveTo translates the shape so its reference point lands on p.
func (s *Shape) MoveTo(p geometry.Point2D) {
	s.MoveBy(p.Sub(s.refPoint))
}

// MoveBy translates every vertex and the reference point by the offset.
func (s *Shape) MoveBy(offset geometry.Point2D) {
	for i, v := range s.vertices {
		s.vertices[i] = v.Add(offset)
	}
	s.refPoint = s.refPoint.Add(offset)
}

// Contains reports whether p lies inside the shape; the boundary counts as
// inside.
func (s *Shape) Contains(p geometry.Point2D) bool {
	if s.kind == KindTriangle {
		return inTriangle(p, s.vertices[0], s.vertices[1], s.vertices[2])
	}
	a, b, c, d := s.vertices[0], s.vertices[1], s.vertices[2], s.vertices[3]
	return inTriangle(p, a, b, c) || inTriangle(p, c, d, a)
}

// inTriangle checks p against each edge: inside means p is on the same side
// of the edge line as the opposite vertex, for all three edges. A side value
// of exactly zero (p on the edge line) never rejects.
func inTriangle(p, a, b, c geometry.Point2D) bool {
	vertices := [3]geometry.Point2D{a, b, c}
	for n := 0; n < 3; n++ {
		opposite := vertices[n]
		v1 := vertices[(n+1)%3]
		v2 := vertices[(n+2)%3]

		edge := v2.Sub(v1)
		sideP := edge.Cross(p.Sub(v1))
		sideOpposite := edge.Cross(opposite.Sub(v1))
		if sideP*sideOpposite < 0 {
			return false
		}
	}
	return true
}
