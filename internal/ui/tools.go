package ui

import (
	"fmt"
	"image/color"

	"PaintBoard/internal/state"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// --- Custom Widget for Color Swatches ---
type colorSwatch struct {
	widget.BaseWidget
	Name     string
	Color    color.Color
	Selected bool
	OnTapped func(string)
}

func newColorSwatch(name string, tapped func(string)) *colorSwatch {
	c, err := state.ParseColor(name)
	if err != nil {
		c = color.RGBA{A: 0xff}
	}
	s := &colorSwatch{Name: name, Color: c, OnTapped: tapped}
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) SetSelected(selected bool) {
	if s.Selected == selected {
		return
	}
	s.Selected = selected
	s.Refresh()
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	r := &swatchRenderer{
		swatch: s,
		fill:   canvas.NewRectangle(s.Color),
		frame:  canvas.NewRectangle(color.Transparent),
	}
	r.applyFrame()
	return r
}

func (s *colorSwatch) Tapped(_ *fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped(s.Name)
	}
}

// swatchRenderer draws the colour with a thin grey frame, or a thick
// primary-colour frame while the swatch is the active colour.
type swatchRenderer struct {
	swatch *colorSwatch
	fill   *canvas.Rectangle
	frame  *canvas.Rectangle
}

func (r *swatchRenderer) applyFrame() {
	if r.swatch.Selected {
		r.frame.StrokeColor = theme.Color(theme.ColorNamePrimary)
		r.frame.StrokeWidth = 3
		return
	}
	r.frame.StrokeColor = color.Gray{Y: 150}
	r.frame.StrokeWidth = 1
}

func (r *swatchRenderer) Layout(size fyne.Size) {
	r.fill.Resize(size)
	r.frame.Resize(size)
}

func (r *swatchRenderer) MinSize() fyne.Size {
	return fyne.NewSize(32, 32)
}

func (r *swatchRenderer) Refresh() {
	r.fill.FillColor = r.swatch.Color
	r.applyFrame()
	r.fill.Refresh()
	r.frame.Refresh()
}

func (r *swatchRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.fill, r.frame}
}

func (r *swatchRenderer) Destroy() {}

func sameColor(a, b string) bool {
	ca, errA := state.ParseColor(a)
	cb, errB := state.ParseColor(b)
	return errA == nil && errB == nil && ca == cb
}

// selectSwatch marks the swatches matching active and clears the rest.
func selectSwatch(swatches []*colorSwatch, active string) {
	for _, sw := range swatches {
		sw.SetSelected(sameColor(sw.Name, active))
	}
}

// newPalette returns one swatch per palette entry. Tapping a swatch sets the
// board colour and moves the highlight to it.
func newPalette(board *BoardWidget, names []string) (*fyne.Container, []*colorSwatch) {
	box := container.NewHBox()
	swatches := make([]*colorSwatch, 0, len(names))
	pick := func(name string) {
		board.SetColor(name)
		selectSwatch(swatches, board.Model().Color())
	}
	for _, name := range names {
		sw := newColorSwatch(name, pick)
		swatches = append(swatches, sw)
		box.Add(sw)
	}
	selectSwatch(swatches, board.Model().Color())
	return box, swatches
}

// ToolbarOptions carries the configured palette and slider range.
type ToolbarOptions struct {
	Palette  []string
	MinWidth float32
	MaxWidth float32
	OnSave   func()
}

// NewToolbar builds the tool controls. Each control calls one board operation.
func NewToolbar(board *BoardWidget, opts ToolbarOptions) fyne.CanvasObject {
	history := widget.NewToolbar(
		widget.NewToolbarAction(theme.ContentUndoIcon(), board.Undo),
		widget.NewToolbarAction(theme.ContentRedoIcon(), board.Redo),
		widget.NewToolbarAction(theme.DeleteIcon(), board.Clear),
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.DocumentSaveIcon(), func() {
			if opts.OnSave != nil {
				opts.OnSave()
			}
		}),
	)

	// --- Color Palette ---
	colorBox, _ := newPalette(board, opts.Palette)

	// --- Stroke Width Slider ---
	widthText := widget.NewLabel(formatWidth(board.Model().Width()))
	strokeSlider := widget.NewSlider(float64(opts.MinWidth), float64(opts.MaxWidth))
	strokeSlider.Step = 1
	strokeSlider.SetValue(float64(board.Model().Width()))
	strokeSlider.OnChanged = func(val float64) {
		board.SetStroke(float32(val))
		widthText.SetText(formatWidth(board.Model().Width()))
	}
	sliderContainer := container.New(layout.NewGridWrapLayout(fyne.NewSize(150, 35)), strokeSlider)

	// --- Assemble everything ---
	return container.NewHBox(
		history,
		widget.NewSeparator(),
		widget.NewLabel("Color:"),
		colorBox,
		widget.NewSeparator(),
		widget.NewLabel("Size:"),
		sliderContainer,
		widthText,
		layout.NewSpacer(),
	)
}

func formatWidth(w float32) string {
	return fmt.Sprintf("%g", w)
}
