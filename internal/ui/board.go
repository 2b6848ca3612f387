package ui

import (
	"image"

	"Sketcher/internal/state"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

// BoardWidget shows the sketch raster and feeds pointer events to the Sketcher.
type BoardWidget struct {
	widget.BaseWidget
	sketcher *state.Sketcher
	display  *canvas.Raster
}

var _ fyne.Widget = (*BoardWidget)(nil)
var _ fyne.Draggable = (*BoardWidget)(nil)
var _ desktop.Mouseable = (*BoardWidget)(nil)

// NewBoardWidget displays img, which must be the image sk draws into.
func NewBoardWidget(sk *state.Sketcher, img image.Image) *BoardWidget {
	b := &BoardWidget{sketcher: sk}
	b.display = canvas.NewRasterFromImage(img)
	size := img.Bounds().Size()
	b.display.SetMinSize(fyne.NewSize(float32(size.X), float32(size.Y)))
	b.ExtendBaseWidget(b)
	return b
}

func (b *BoardWidget) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(b.display)
}

// Redraw pushes the current raster contents to the screen.
func (b *BoardWidget) Redraw() {
	b.display.Refresh()
}

func toPoint(p fyne.Position) state.Point {
	return state.Point{X: p.X, Y: p.Y}
}

func (b *BoardWidget) MouseDown(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	b.sketcher.PointerDown(toPoint(e.Position))
	b.Redraw()
}

func (b *BoardWidget) MouseUp(e *desktop.MouseEvent) {
	if e.Button == desktop.MouseButtonPrimary {
		b.sketcher.PointerUp()
	}
}

func (b *BoardWidget) Dragged(e *fyne.DragEvent) {
	b.sketcher.PointerDrag(toPoint(e.Position))
	b.Redraw()
}

func (b *BoardWidget) DragEnd() {
	b.sketcher.PointerUp()
}
