// Command docksim exercises the docking engine over randomized scenes and
// prints hit-rate, distance and latency statistics.
package main

import (
	"flag"
	"fmt"
	"math"
	"math/rand"
	"os"
	"time"

	"gonum.org/v1/gonum/stat"

	"gotang/internal/docking"
	"gotang/internal/shape"
	"gotang/internal/tangram"
	"gotang/pkg/geometry"
)

func main() {
	scenes := flag.Int("n", 1000, "Number of random scenes to run")
	seed := flag.Int64("seed", 1, "Random seed")
	angularDeg := flag.Float64("angular", 20, "Angular threshold in degrees")
	distance := flag.Float64("dist", 10, "Distance threshold in pixels")
	flag.Parse()

	if *scenes <= 0 {
		fmt.Println("Usage: docksim [-n <scenes>] [-seed <seed>] [-angular <deg>] [-dist <px>]")
		os.Exit(1)
	}

	th := docking.Thresholds{
		AngularCos: math.Cos(*angularDeg * math.Pi / 180),
		Distance:   *distance,
	}
	rng := rand.New(rand.NewSource(*seed))

	fmt.Printf("=== docksim: %d scenes, angular %.1f°, distance %.1f px ===\n",
		*scenes, *angularDeg, *distance)

	var (
		hits      int
		hitDists  []float64
		latencies []float64
	)

	for i := 0; i < *scenes; i++ {
		pieces, err := tangram.Pieces()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Building tangram set: %v\n", err)
			os.Exit(1)
		}
		scatter(rng, pieces)

		idx := rng.Intn(len(pieces))
		floating := pieces[idx]
		static := append(pieces[:idx:idx], pieces[idx+1:]...)
		move := geometry.NewPoint2D(rng.Float64()*10-5, rng.Float64()*10-5)

		start := time.Now()
		pair, ok := docking.Dock(static, floating, th, 0, move)
		latencies = append(latencies, float64(time.Since(start).Microseconds()))

		if ok {
			hits++
			hitDists = append(hitDists, pairDistance(pair))
		}
	}

	fmt.Printf("\n=== Results ===\n")
	fmt.Printf("Hits: %d / %d (%.1f%%)\n", hits, *scenes, 100*float64(hits)/float64(*scenes))
	if len(hitDists) > 0 {
		fmt.Printf("Hit distance: mean %.3f px, stddev %.3f px\n",
			stat.Mean(hitDists, nil), stat.StdDev(hitDists, nil))
	}
	fmt.Printf("Query latency: mean %.1f µs, stddev %.1f µs\n",
		stat.Mean(latencies, nil), stat.StdDev(latencies, nil))
}

// scatter rotates and places each piece randomly, keeping it on the field.
func scatter(rng *rand.Rand, pieces []*shape.Shape) {
	for _, s := range pieces {
		s.Rotate(rng.Float64() * 2 * math.Pi)
		s.MoveTo(geometry.NewPoint2D(
			rng.Float64()*tangram.FieldWidth,
			rng.Float64()*tangram.FieldHeight,
		))
		clampToField(s, tangram.FieldWidth, tangram.FieldHeight)
	}
}

// clampToField shifts a piece back inside the field when its bounding box
// sticks out.
func clampToField(s *shape.Shape, width, height float64) {
	box := geometry.BoundingBox(s.Vertices())
	var offset geometry.Point2D
	if box.X < 0 {
		offset.X = -box.X
	} else if over := box.X + box.Width - width; over > 0 {
		offset.X = -over
	}
	if box.Y < 0 {
		offset.Y = -box.Y
	} else if over := box.Y + box.Height - height; over > 0 {
		offset.Y = -over
	}
	if offset != (geometry.Point2D{}) {
		s.MoveBy(offset)
	}
}

// pairDistance recomputes the proximity value of a matched pair: the larger
// distance of the floating edge's endpoints from the static edge's line.
func pairDistance(p docking.Pair) float64 {
	s := p.Static.Vector()
	dTail, err := geometry.PointToLineDistance(p.Floating.Tail, p.Static.Tail, s)
	if err != nil {
		return 0
	}
	dHead, err := geometry.PointToLineDistance(p.Floating.Head, p.Static.Tail, s)
	if err != nil {
		return 0
	}
	return math.Max(dTail, dHead)
}
