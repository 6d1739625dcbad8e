package docking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gotang/internal/shape"
	"gotang/pkg/geometry"
)

// Threshold sentinels: below any reachable cosine / above any reachable one.
const (
	anyAngle = -2.0
	noAngle  = 2.0
)

func pt(x, y float64) geometry.Point2D {
	return geometry.NewPoint2D(x, y)
}

func triangle(t *testing.T, a, b, c geometry.Point2D) *shape.Shape {
	t.Helper()
	s, err := shape.NewTriangle(a, b, c)
	require.NoError(t, err)
	return s
}

// The fixed scene of most tests: one static triangle whose edge
// (5,2)-(3,4) is the docking target.
func staticScene(t *testing.T) []*shape.Shape {
	t.Helper()
	return []*shape.Shape{triangle(t, pt(2, 1), pt(5, 2), pt(3, 4))}
}

func TestDockAlreadyCoincidentEdges(t *testing.T) {
	floating := triangle(t, pt(3, 4), pt(5, 2), pt(4, 6))

	pair, ok := Dock(staticScene(t), floating, Thresholds{AngularCos: anyAngle, Distance: 0}, 0, pt(0, 0))
	require.True(t, ok)
	assert.Equal(t, shape.Edge{Tail: pt(5, 2), Head: pt(3, 4)}, pair.Static)
	assert.Equal(t, shape.Edge{Tail: pt(3, 4), Head: pt(5, 2)}, pair.Floating)
}

func TestDockNearbyEdges(t *testing.T) {
	floating := triangle(t, pt(3.1, 4), pt(5, 2.4), pt(4, 6))

	pair, ok := Dock(staticScene(t), floating, Thresholds{AngularCos: anyAngle, Distance: 1}, 0, pt(0, 0))
	require.True(t, ok)
	assert.Equal(t, shape.Edge{Tail: pt(5, 2), Head: pt(3, 4)}, pair.Static)
	assert.Equal(t, shape.Edge{Tail: pt(3.1, 4), Head: pt(5, 2.4)}, pair.Floating)
}

func TestDockDistanceThresholdBelowGap(t *testing.T) {
	floating := triangle(t, pt(3, 4), pt(5, 2), pt(4, 6))

	_, ok := Dock(staticScene(t), floating, Thresholds{AngularCos: anyAngle, Distance: -1}, 0, pt(0, 0))
	assert.False(t, ok)
}

func TestDockAngularThresholdUnreachable(t *testing.T) {
	floating := triangle(t, pt(3, 4), pt(5, 2), pt(4, 6))

	_, ok := Dock(staticScene(t), floating, Thresholds{AngularCos: noAngle, Distance: 0}, 0, pt(0, 0))
	assert.False(t, ok)
}

func TestDockNoProjectionOverlap(t *testing.T) {
	floating := triangle(t, pt(1, 6), pt(3, 4), pt(2, 8))

	_, ok := Dock(staticScene(t), floating, Thresholds{AngularCos: anyAngle, Distance: 1}, 0, pt(0, 0))
	assert.False(t, ok)
}

func TestDockMotionDirectionFilter(t *testing.T) {
	th := Thresholds{AngularCos: 0.9, Distance: 0}
	floating := triangle(t, pt(3, 4), pt(5, 2), pt(4, 6))

	// Dragging away from the static edge: the candidate's floating edge
	// is rejected by the motion filter.
	_, ok := Dock(staticScene(t), floating, th, 0, pt(2, 1))
	assert.False(t, ok)

	// Dragging towards it: the pair qualifies.
	pair, ok := Dock(staticScene(t), floating, th, 0, pt(-2, -1))
	require.True(t, ok)
	assert.Equal(t, shape.Edge{Tail: pt(3, 4), Head: pt(5, 2)}, pair.Floating)
}

func TestDockRotationDirectionFilter(t *testing.T) {
	th := Thresholds{AngularCos: 0.9, Distance: 1}
	want := Pair{
		Static:   shape.Edge{Tail: pt(5, 2), Head: pt(3, 4)},
		Floating: shape.Edge{Tail: pt(3, 4), Head: pt(5, 3)},
	}

	// The floating edge is slightly rotated off the static edge; only a
	// negative rotation brings it into alignment.
	makeFloating := func() *shape.Shape {
		return triangle(t, pt(3, 4), pt(5, 3), pt(4, 6))
	}

	_, ok := Dock(staticScene(t), makeFloating(), th, +1, pt(0, 0))
	assert.False(t, ok, "opposing rotation sign must reject the candidate")

	pair, ok := Dock(staticScene(t), makeFloating(), th, -1, pt(0, 0))
	require.True(t, ok)
	assert.Equal(t, want, pair)

	// Zero sign disables the rotation filter entirely.
	pair, ok = Dock(staticScene(t), makeFloating(), th, 0, pt(0, 0))
	require.True(t, ok)
	assert.Equal(t, want, pair)
}

func TestDockEmptyStaticSet(t *testing.T) {
	floating := triangle(t, pt(3, 4), pt(5, 2), pt(4, 6))

	_, ok := Dock(nil, floating, Thresholds{AngularCos: anyAngle, Distance: 10}, 0, pt(0, 0))
	assert.False(t, ok)
}

func TestDockDoesNotMutateShapes(t *testing.T) {
	static := staticScene(t)
	floating := triangle(t, pt(3, 4), pt(5, 2), pt(4, 6))
	staticBefore := static[0].Vertices()
	floatingBefore := floating.Vertices()

	Dock(static, floating, Thresholds{AngularCos: anyAngle, Distance: 10}, 0, pt(1, 1))

	assert.Equal(t, staticBefore, static[0].Vertices())
	assert.Equal(t, floatingBefore, floating.Vertices())
}
