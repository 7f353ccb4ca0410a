package ui

import (
	"image"
	"image/color"

	"PaintBoard/internal/logging"
	"PaintBoard/internal/render"
	"PaintBoard/internal/state"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

// BoardWidget is the drawing surface. It turns pointer events into Drawing
// operations and repaints the whole drawing on every change.
type BoardWidget struct {
	widget.BaseWidget
	model      *state.Drawing
	surface    *render.RasterSurface
	background color.Color
	minSize    fyne.Size
	statusBar  *widget.Label

	// OnStatus is called with every status message, for tests and logging.
	OnStatus func(string)
}

var _ fyne.Widget = (*BoardWidget)(nil)
var _ fyne.Draggable = (*BoardWidget)(nil)
var _ desktop.Mouseable = (*BoardWidget)(nil)

func NewBoardWidget(model *state.Drawing, background color.Color, size fyne.Size) *BoardWidget {
	b := &BoardWidget{
		model:      model,
		background: background,
		minSize:    size,
		surface:    render.NewRasterSurface(int(size.Width), int(size.Height), background),
		statusBar:  widget.NewLabel("Ready"),
	}
	model.OnChange = b.Refresh
	b.ExtendBaseWidget(b)
	return b
}

func (b *BoardWidget) Model() *state.Drawing { return b.model }

func (b *BoardWidget) StatusBar() *widget.Label { return b.statusBar }

func (b *BoardWidget) SetStatus(text string) {
	logging.Debugf("[UI] Status: %s", text)
	b.statusBar.SetText(text)
	if b.OnStatus != nil {
		b.OnStatus(text)
	}
}

// ExportSize is the logical size of the board, falling back to the configured
// canvas size before the first layout.
func (b *BoardWidget) ExportSize() (int, int) {
	size := b.Size()
	if size.Width < 1 || size.Height < 1 {
		size = b.minSize
	}
	return int(size.Width), int(size.Height)
}

func toPoint(p fyne.Position) state.Point {
	return state.Point{X: p.X, Y: p.Y}
}

func (b *BoardWidget) MouseDown(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	if b.model.IsDrawing() {
		// The previous gesture lost its pointer-up.
		logging.Warnf("[UI] Pointer down while drawing, closing stroke %d", b.model.Active().Seq)
		b.model.EndStroke()
	}
	if _, err := b.model.BeginStroke(b.model.Color(), b.model.Width()); err != nil {
		logging.Warnf("[UI] Could not begin stroke: %v", err)
		b.SetStatus("Could not start stroke")
		return
	}
	b.model.AppendPoint(toPoint(e.Position))
}

func (b *BoardWidget) Dragged(e *fyne.DragEvent) {
	if !b.model.IsDrawing() {
		return
	}
	b.model.AppendPoint(toPoint(e.Position))
}

func (b *BoardWidget) MouseUp(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	b.model.EndStroke()
}

func (b *BoardWidget) DragEnd() {
	b.model.EndStroke()
}

func (b *BoardWidget) MouseIn(*desktop.MouseEvent)    {}
func (b *BoardWidget) MouseOut()                      {}
func (b *BoardWidget) MouseMoved(*desktop.MouseEvent) {}

func (b *BoardWidget) Undo() {
	if !b.model.Undo() {
		b.SetStatus("Nothing to undo")
	}
}

func (b *BoardWidget) Redo() {
	if !b.model.Redo() {
		b.SetStatus("Nothing to redo")
	}
}

func (b *BoardWidget) Clear() {
	b.model.Clear()
	b.SetStatus("Cleared")
}

func (b *BoardWidget) SetColor(c string) {
	if err := b.model.SetColor(c); err != nil {
		logging.Warnf("[UI] %v", err)
		b.SetStatus("Invalid color " + c)
	}
}

func (b *BoardWidget) SetStroke(w float32) {
	if err := b.model.SetWidth(w); err != nil {
		logging.Warnf("[UI] %v", err)
		b.SetStatus("Invalid stroke width")
	}
}

// paint renders the model at the raster's pixel size.
func (b *BoardWidget) paint(w, h int) image.Image {
	b.surface.Resize(w, h)
	if size := b.Size(); size.Width > 0 {
		b.surface.SetScale(float32(w) / size.Width)
	}
	render.Render(b.surface, b.model.Strokes())
	return b.surface.Image()
}

func (b *BoardWidget) CreateRenderer() fyne.WidgetRenderer {
	r := &boardWidgetRenderer{board: b}
	r.background = canvas.NewRectangle(b.background)
	r.raster = canvas.NewRaster(b.paint)
	return r
}

type boardWidgetRenderer struct {
	board      *BoardWidget
	background *canvas.Rectangle
	raster     *canvas.Raster
}

func (r *boardWidgetRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.background, r.raster}
}

func (r *boardWidgetRenderer) Refresh() {
	r.raster.Refresh()
}

func (r *boardWidgetRenderer) Layout(size fyne.Size) {
	r.background.Resize(size)
	r.raster.Resize(size)
}

func (r *boardWidgetRenderer) MinSize() fyne.Size {
	return r.board.minSize
}

func (r *boardWidgetRenderer) Destroy() {}
