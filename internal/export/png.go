package export

import (
	"fmt"
	"image/color"

	"PaintBoard/internal/render"
	"PaintBoard/internal/state"
)

// PNG renders strokes onto a fresh width x height surface and returns the
// encoded image.
func PNG(strokes []*state.Stroke, width, height int, background color.Color) ([]byte, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("export png: surface %dx%d: %w", width, height, state.ErrInvalidArgument)
	}
	surface := render.NewRasterSurface(width, height, background)
	render.Render(surface, strokes)
	return surface.ToImageData()
}
