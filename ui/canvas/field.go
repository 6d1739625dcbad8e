// Package canvas provides the playing-field widget: it paints the rendered
// scene and feeds pointer gestures into the drag state machine.
package canvas

import (
	"image"

	"fyne.io/fyne/v2"
	fynecanvas "fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"gotang/internal/app"
	"gotang/pkg/geometry"
)

// Field is the interactive playing field.
type Field struct {
	widget.BaseWidget

	state  *app.State
	raster *fynecanvas.Raster
}

var _ desktop.Mouseable = (*Field)(nil)
var _ fyne.Draggable = (*Field)(nil)

// NewField creates the field widget over the given state.
func NewField(state *app.State, minSize fyne.Size) *Field {
	f := &Field{state: state}
	f.raster = fynecanvas.NewRaster(f.frame)
	f.raster.SetMinSize(minSize)
	f.ExtendBaseWidget(f)
	return f
}

func (f *Field) frame(w, h int) image.Image {
	return f.state.Frame(w, h)
}

// CreateRenderer implements fyne.Widget.
func (f *Field) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(f.raster)
}

// MouseDown starts a move or rotate gesture on the touched piece.
func (f *Field) MouseDown(ev *desktop.MouseEvent) {
	if f.state.Press(eventPoint(ev.PointEvent)) {
		f.Refresh()
	}
}

// MouseUp ends the active gesture. It fires for plain clicks and at the end
// of drags alike, so DragEnd has nothing left to do.
func (f *Field) MouseUp(_ *desktop.MouseEvent) {
	f.state.Release()
	f.Refresh()
}

// Dragged forwards pointer motion to the active gesture.
func (f *Field) Dragged(ev *fyne.DragEvent) {
	f.state.Drag(eventPoint(ev.PointEvent))
	f.Refresh()
}

// DragEnd implements fyne.Draggable; the release is handled in MouseUp.
func (f *Field) DragEnd() {}

func eventPoint(ev fyne.PointEvent) geometry.Point2D {
	return geometry.NewPoint2D(float64(ev.Position.X), float64(ev.Position.Y))
}
