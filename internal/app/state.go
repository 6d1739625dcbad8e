// Package app owns the host side of the puzzle: the scene of pieces and the
// drag state machine that turns pointer gestures into shape transforms and
// docking queries. The geometric core never sees any of this state.
package app

import (
	"fmt"
	"image"
	"io"
	"math"
	"sync"

	"gotang/internal/docking"
	"gotang/internal/render"
	"gotang/internal/shape"
	"gotang/pkg/geometry"
)

// Mode is the drag state machine state.
type Mode int

const (
	ModeIdle Mode = iota
	ModeMoving
	ModeRotating
)

func (m Mode) String() string {
	switch m {
	case ModeMoving:
		return "moving"
	case ModeRotating:
		return "rotating"
	default:
		return "idle"
	}
}

// Config carries the host-tunable settings. The docking thresholds are
// passed through to the engine on every query.
type Config struct {
	Docking docking.Thresholds
	Draft   bool
}

// DefaultConfig returns the stickiness the original game shipped with:
// 20 degrees of angular slack and a 10 pixel distance threshold.
func DefaultConfig() Config {
	return Config{
		Docking: docking.Thresholds{
			AngularCos: math.Cos(20 * math.Pi / 180),
			Distance:   10,
		},
	}
}

// State holds the scene and the active drag. Fyne delivers pointer events
// and paints from different goroutines, so all access goes through the lock.
type State struct {
	mu sync.RWMutex

	cfg Config

	pieces    []*shape.Shape // stationary pieces, in scene order
	active    *shape.Shape
	mode      Mode
	prev      geometry.Point2D
	highlight *docking.Pair
}

// NewState creates a State over the given pieces.
func NewState(cfg Config, pieces []*shape.Shape) *State {
	return &State{cfg: cfg, pieces: pieces}
}

// Mode returns the current drag state.
func (st *State) Mode() Mode {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.mode
}

// Highlight returns the current docking candidate, if any.
func (st *State) Highlight() (docking.Pair, bool) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	if st.highlight == nil {
		return docking.Pair{}, false
	}
	return *st.highlight, true
}

// Press starts a drag at p. The first piece in scene order containing p
// becomes active; a touch inside its inner circle starts a move, anywhere
// else in the piece a rotation. Reports whether a piece was hit.
func (st *State) Press(p geometry.Point2D) bool {
	st.mu.Lock()
	defer st.mu.Unlock()

	if st.mode != ModeIdle {
		return false
	}
	for i, s := range st.pieces {
		if !s.Contains(p) {
			continue
		}
		st.active = s
		st.pieces = append(st.pieces[:i], st.pieces[i+1:]...)
		st.prev = p
		if p.Distance(s.RefPoint()) <= s.InnerRadius() {
			st.mode = ModeMoving
		} else {
			st.mode = ModeRotating
		}
		return true
	}
	return false
}

// Drag continues the active gesture to pointer position p, querying the
// docking engine with the motion intent before applying the transform.
func (st *State) Drag(p geometry.Point2D) {
	st.mu.Lock()
	defer st.mu.Unlock()

	switch st.mode {
	case ModeMoving:
		move := p.Sub(st.prev)
		st.updateHighlight(0, move)
		st.active.MoveBy(move)
	case ModeRotating:
		ref := st.active.RefPoint()
		delta := geometry.Inclination(ref, p) - geometry.Inclination(ref, st.prev)
		st.updateHighlight(rotateSign(delta), geometry.Point2D{})
		st.active.Rotate(delta)
	default:
		return
	}
	st.prev = p
}

// Release ends the active gesture and returns the piece to the scene.
func (st *State) Release() {
	st.mu.Lock()
	defer st.mu.Unlock()

	if st.mode == ModeIdle {
		return
	}
	st.pieces = append(st.pieces, st.active)
	st.active = nil
	st.highlight = nil
	st.mode = ModeIdle
}

func (st *State) updateHighlight(sign float64, move geometry.Point2D) {
	pair, ok := docking.Dock(st.pieces, st.active, st.cfg.Docking, sign, move)
	if !ok {
		st.highlight = nil
		return
	}
	st.highlight = &pair
}

func rotateSign(delta float64) float64 {
	switch {
	case delta > 0:
		return 1
	case delta < 0:
		return -1
	default:
		return 0
	}
}

// Frame renders the current scene into a w x h image. The read lock keeps a
// concurrent drag from mutating piece vertices mid-paint.
func (st *State) Frame(w, h int) *image.RGBA {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return render.Scene(st.pieces, st.active, st.highlight, st.cfg.Draft, w, h)
}

// DumpLayout writes the vertex coordinates of every piece, in scene order.
func (st *State) DumpLayout(w io.Writer) {
	st.mu.RLock()
	defer st.mu.RUnlock()

	pieces := st.pieces
	if st.active != nil {
		pieces = append(append([]*shape.Shape{}, pieces...), st.active)
	}
	for i, s := range pieces {
		fmt.Fprintf(w, "shape %d (%s) vertices:\n", i, s.Kind())
		for _, v := range s.Vertices() {
			fmt.Fprintf(w, "\t(%.2f, %.2f)\n", v.X, v.Y)
		}
	}
}
