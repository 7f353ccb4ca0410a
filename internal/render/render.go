// Package render repaints a drawing onto a surface. Every call is a full
// clear-then-redraw of the committed strokes.
package render

import (
	"image/color"

	"PaintBoard/internal/state"
)

// Surface is a persistent 2D raster the render loop paints onto.
type Surface interface {
	Clear()
	// StrokePath draws a polyline through points with round joins.
	StrokePath(points []state.Point, c color.Color, width float32)
}

// Render clears s and paints strokes bottom to top. Strokes with fewer than
// two points paint nothing.
func Render(s Surface, strokes []*state.Stroke) {
	s.Clear()
	for _, st := range strokes {
		if st == nil || st.Degenerate() {
			continue
		}
		s.StrokePath(st.Points, st.RGBA(), st.Width)
	}
}
