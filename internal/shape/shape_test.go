package shape

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gotang/pkg/geometry"
)

func pt(x, y float64) geometry.Point2D {
	return geometry.NewPoint2D(x, y)
}

func assertVertices(t *testing.T, want []geometry.Point2D, s *Shape) {
	t.Helper()
	got := s.Vertices()
	require.Len(t, got, len(want))
	for i := range want {
		assert.InDelta(t, 0, got[i].Distance(want[i]), 1e-6, "vertex %d", i)
	}
}

func TestNewTriangleEquilateral(t *testing.T) {
	tri, err := NewTriangle(pt(0, 4), pt(2*math.Sqrt(3), -2), pt(-2*math.Sqrt(3), -2))
	require.NoError(t, err)

	assert.Equal(t, KindTriangle, tri.Kind())
	assert.InDelta(t, 0, tri.RefPoint().Distance(pt(0, 0)), 1e-6)
	assert.InDelta(t, 2, tri.InnerRadius(), 1e-6)
}

func TestNewTriangleArbitrary(t *testing.T) {
	tri, err := NewTriangle(pt(-22, -7), pt(11, 23), pt(12, -12))
	require.NoError(t, err)

	assert.InDelta(t, 0, tri.RefPoint().Distance(pt(1.2, 0.1)), 0.1)
	assert.InDelta(t, 10.4, tri.InnerRadius(), 0.01)
}

func TestNewTriangleTranslatedInvariants(t *testing.T) {
	for _, offset := range []geometry.Point2D{pt(3, 0), pt(0, 5), pt(-10, 7)} {
		tri, err := NewTriangle(
			pt(-22, -7).Add(offset),
			pt(11, 23).Add(offset),
			pt(12, -12).Add(offset),
		)
		require.NoError(t, err)

		assert.InDelta(t, 0, tri.RefPoint().Distance(pt(1.2, 0.1).Add(offset)), 0.1)
		assert.InDelta(t, 10.4, tri.InnerRadius(), 0.01)
	}
}

func TestNewTriangleCollinear(t *testing.T) {
	_, err := NewTriangle(pt(0, 0), pt(1, 1), pt(3, 3))
	assert.ErrorIs(t, err, geometry.ErrDegenerateGeometry)
}

func TestNewParallelogram(t *testing.T) {
	para, err := NewParallelogram(pt(2, 1), pt(7, 1), pt(8, 4))
	require.NoError(t, err)

	assert.Equal(t, KindParallelogram, para.Kind())
	assertVertices(t, []geometry.Point2D{pt(2, 1), pt(7, 1), pt(8, 4), pt(3, 4)}, para)
	assert.InDelta(t, 0, para.RefPoint().Distance(pt(5, 2.5)), 1e-6)
	assert.Equal(t, 1.5, para.InnerRadius())
}

func TestNewParallelogramDegenerate(t *testing.T) {
	_, err := NewParallelogram(pt(0, 0), pt(2, 2), pt(5, 5))
	assert.ErrorIs(t, err, geometry.ErrDegenerateGeometry)
}

func TestRotateFullTurnIsIdentity(t *testing.T) {
	tri, err := NewTriangle(pt(0, 0), pt(0, 3), pt(1, 0))
	require.NoError(t, err)
	original := tri.Vertices()

	tri.Rotate(2 * math.Pi)
	assertVertices(t, original, tri)
}

func TestRotateRoundTrip(t *testing.T) {
	para, err := NewParallelogram(pt(2, 1), pt(7, 1), pt(8, 4))
	require.NoError(t, err)
	original := para.Vertices()

	para.Rotate(math.Pi / 3)
	para.Rotate(-math.Pi / 3)
	assertVertices(t, original, para)
}

// Rotation must not disturb the construction-time inner-circle geometry:
// rebuilding a rotated triangle from its vertices yields the same reference
// point and radius.
func TestRotatePreservesInnerCircle(t *testing.T) {
	for _, angle := range []float64{math.Pi / 3, math.Pi / 2, math.Pi} {
		tri, err := NewTriangle(pt(-22, -7), pt(11, 23), pt(12, -12))
		require.NoError(t, err)

		tri.Rotate(angle)
		rebuilt, err := NewTriangle(tri.Vertices()[0], tri.Vertices()[1], tri.Vertices()[2])
		require.NoError(t, err)

		assert.InDelta(t, 0, rebuilt.RefPoint().Distance(tri.RefPoint()), 1e-6)
		assert.InDelta(t, rebuilt.InnerRadius(), tri.InnerRadius(), 1e-6)
	}
}

func TestRotateAboutOffOriginPivot(t *testing.T) {
	tri, err := NewTriangle(pt(1, -2), pt(4, 5), pt(6, -2))
	require.NoError(t, err)
	pivot := tri.RefPoint()

	tri.Rotate(math.Pi / 2)
	assert.InDelta(t, 0, tri.RefPoint().Distance(pivot), 1e-12)
}

func TestMoveTo(t *testing.T) {
	tri, err := NewTriangle(pt(0, 0), pt(0, 3), pt(2, 0))
	require.NoError(t, err)
	offset := pt(1, 2).Sub(tri.RefPoint())
	want := []geometry.Point2D{
		pt(0, 0).Add(offset), pt(0, 3).Add(offset), pt(2, 0).Add(offset),
	}

	tri.MoveTo(pt(1, 2))
	assert.InDelta(t, 0, tri.RefPoint().Distance(pt(1, 2)), 1e-12)
	assertVertices(t, want, tri)
}

func TestMoveByRoundTrip(t *testing.T) {
	tri, err := NewTriangle(pt(0, 0), pt(0, 3), pt(2, 0))
	require.NoError(t, err)
	original := tri.Vertices()
	ref := tri.RefPoint()

	tri.MoveBy(pt(17, -4))
	tri.MoveBy(pt(-17, 4))
	assertVertices(t, original, tri)
	assert.InDelta(t, 0, tri.RefPoint().Distance(ref), 1e-12)
}

func TestEdgesStartAtLastVertex(t *testing.T) {
	para, err := NewParallelogram(pt(2, 1), pt(7, 1), pt(8, 4))
	require.NoError(t, err)

	edges := para.Edges()
	require.Len(t, edges, 4)
	assert.Equal(t, Edge{Tail: pt(3, 4), Head: pt(2, 1)}, edges[0])
	assert.Equal(t, Edge{Tail: pt(2, 1), Head: pt(7, 1)}, edges[1])
	assert.Equal(t, Edge{Tail: pt(7, 1), Head: pt(8, 4)}, edges[2])
	assert.Equal(t, Edge{Tail: pt(8, 4), Head: pt(3, 4)}, edges[3])
}

func TestTriangleContains(t *testing.T) {
	tri, err := NewTriangle(pt(-1, 0), pt(0, 1), pt(1, 0))
	require.NoError(t, err)

	assert.True(t, tri.Contains(pt(0, 0.25)))
	assert.True(t, tri.Contains(tri.RefPoint()))
	assert.True(t, tri.Contains(pt(0, 1)), "vertex is inside")
	assert.True(t, tri.Contains(pt(0.5, 0.5)), "edge point is inside")
	assert.False(t, tri.Contains(pt(10, 10)))
}

func TestParallelogramContains(t *testing.T) {
	para, err := NewParallelogram(pt(2, 1), pt(7, 1), pt(8, 4))
	require.NoError(t, err)

	assert.True(t, para.Contains(pt(4, 3)))
	assert.True(t, para.Contains(pt(6, 2)))
	assert.True(t, para.Contains(para.RefPoint()))
	assert.False(t, para.Contains(pt(2, 4)))
}

func TestVerticesReturnsCopy(t *testing.T) {
	tri, err := NewTriangle(pt(0, 0), pt(0, 3), pt(2, 0))
	require.NoError(t, err)

	got := tri.Vertices()
	got[0] = pt(99, 99)
	assert.Equal(t, pt(0, 0), tri.Vertices()[0])
}
