package geometry

import (
	"errors"
	"math"
)

// ErrDegenerateGeometry is returned when a line computation has no
// well-defined answer: parallel or coincident direction vectors, or a
// zero-length direction vector.
var ErrDegenerateGeometry = errors.New("degenerate geometry")

// Inclination returns the angle of the vector a->b against the X axis,
// in (-pi, pi]. Coincident points yield 0.
func Inclination(a, b Point2D) float64 {
	ab := b.Sub(a)
	return math.Atan2(ab.Y, ab.X)
}

// UnitVector returns the unit vector at the given angle.
func UnitVector(radians float64) Point2D {
	return Point2D{X: math.Cos(radians), Y: math.Sin(radians)}
}

// LineIntersection finds the intersection point of two lines, each given by a
// base point and a direction vector. Returns ErrDegenerateGeometry when the
// directions are parallel or either has zero length.
func LineIntersection(baseA, dirA, baseB, dirB Point2D) (Point2D, error) {
	denom := dirB.Perp().Dot(dirA)
	if math.Abs(denom) < Epsilon {
		return Point2D{}, ErrDegenerateGeometry
	}
	p := dirB.Perp().Dot(baseB.Sub(baseA)) / denom
	return baseA.Add(dirA.Scale(p)), nil
}

// PointToLineDistance returns the distance from point p to the line through
// base with the given direction. Returns ErrDegenerateGeometry when the
// direction has zero length.
func PointToLineDistance(p, base, dir Point2D) (float64, error) {
	length := dir.Length()
	if length < Epsilon {
		return 0, ErrDegenerateGeometry
	}
	return math.Abs(base.Sub(p).Cross(dir)) / length, nil
}
