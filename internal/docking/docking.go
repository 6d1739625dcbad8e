// Package docking implements the gravity matching algorithm: given a floating
// shape, the stationary shapes, and the user's motion intent, it selects the
// best edge-to-edge alignment candidate for the host to snap or highlight.
package docking

import (
	"math"

	"gotang/internal/shape"
	"gotang/pkg/geometry"
)

// Thresholds tunes how sticky docking feels. Both values are pass-through
// host configuration, never engine constants.
type Thresholds struct {
	// AngularCos is the minimum cosine of the angle between a floating
	// edge and the reversed static edge for the pair to qualify.
	AngularCos float64
	// Distance is the maximum distance of the floating edge's endpoints
	// from the static edge's line.
	Distance float64
}

// Pair is a matched static/floating edge combination.
type Pair struct {
	Static   shape.Edge
	Floating shape.Edge
}

// candidate carries the ranking key of a surviving pair. Candidates compare
// lexicographically: nearest first, then best angular alignment, then
// largest overlap.
type candidate struct {
	negDistance float64
	cosTheta    float64
	overlap     float64
	pair        Pair
}

// betterThan is strict, so the earliest-enumerated candidate wins ties.
func (c candidate) betterThan(o candidate) bool {
	if c.negDistance != o.negDistance {
		return c.negDistance > o.negDistance
	}
	if c.cosTheta != o.cosTheta {
		return c.cosTheta > o.cosTheta
	}
	return c.overlap > o.overlap
}

// Dock returns the best docking pair between the floating shape and the
// static shapes, or false when no pair qualifies. A no-match is a normal
// outcome, never an error. rotateSign (+1, -1 or 0) and move describe the
// user's current motion intent and act as filters; a zero rotateSign
// disables the rotation-direction filter, which is what translation
// gestures pass.
//
// The inputs are never mutated.
func Dock(static []*shape.Shape, floating *shape.Shape, th Thresholds, rotateSign float64, move geometry.Point2D) (Pair, bool) {
	var best candidate
	found := false

	for _, floatingEdge := range floating.Edges() {
		f := floatingEdge.Vector()

		// A drag pointing to the outside of this edge cannot be aiming
		// it at anything; consistent winding makes "outside" the
		// positive cross side.
		if f.Cross(move) > geometry.Epsilon {
			continue
		}

		floatingLength := f.Length()

		for _, sh := range static {
			for _, staticEdge := range sh.Edges() {
				s := staticEdge.Vector()

				// Requested rotation must move the floating edge
				// towards antiparallel alignment, not away.
				if s.Cross(f)*rotateSign < -geometry.Epsilon {
					continue
				}

				distTail, err := geometry.PointToLineDistance(floatingEdge.Tail, staticEdge.Tail, s)
				if err != nil {
					continue
				}
				distHead, err := geometry.PointToLineDistance(floatingEdge.Head, staticEdge.Tail, s)
				if err != nil {
					continue
				}
				dist := math.Max(distTail, distHead)
				if dist > th.Distance {
					continue
				}

				// Consistent winding means correctly docked edges
				// point opposite ways.
				staticLength := s.Length()
				cosTheta := -f.Dot(s) / (floatingLength * staticLength)
				if cosTheta < th.AngularCos {
					continue
				}

				overlap := projectedOverlap(staticEdge, floatingEdge)
				if overlap <= geometry.Epsilon {
					continue
				}

				c := candidate{
					negDistance: -dist,
					cosTheta:    cosTheta,
					overlap:     overlap,
					pair:        Pair{Static: staticEdge, Floating: floatingEdge},
				}
				if !found || c.betterThan(best) {
					best = c
					found = true
				}
			}
		}
	}

	return best.pair, found
}

// projectedOverlap projects the floating edge's endpoints onto the static
// edge's line as fractions of its length and returns the length of the
// intersection of the two projected intervals.
func projectedOverlap(staticEdge, floatingEdge shape.Edge) float64 {
	s := staticEdge.Vector()
	lengthSq := s.Dot(s)

	tTail := s.Dot(floatingEdge.Tail.Sub(staticEdge.Tail)) / lengthSq
	tHead := s.Dot(floatingEdge.Head.Sub(staticEdge.Tail)) / lengthSq

	lo := math.Min(tTail, tHead)
	hi := math.Max(tTail, tHead)
	return s.Length() * (math.Min(hi, 1) - math.Max(lo, 0))
}
