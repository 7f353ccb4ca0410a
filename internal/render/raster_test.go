package render

import (
	"bytes"
	"image/color"
	"image/png"
	"testing"

	"PaintBoard/internal/state"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var white = color.RGBA{255, 255, 255, 255}

func sampleDrawing(t *testing.T) *state.Drawing {
	t.Helper()
	d, err := state.NewDrawing("black", 1)
	require.NoError(t, err)

	draw := func(c string, w float32, pts ...state.Point) {
		_, err := d.BeginStroke(c, w)
		require.NoError(t, err)
		for _, p := range pts {
			d.AppendPoint(p)
		}
		d.EndStroke()
	}
	draw("red", 6, state.Point{X: 10, Y: 20}, state.Point{X: 90, Y: 20})
	draw("blue", 6, state.Point{X: 10, Y: 60}, state.Point{X: 50, Y: 60}, state.Point{X: 90, Y: 80})
	draw("green", 6, state.Point{X: 40, Y: 40}) // single dot, paints nothing
	return d
}

// recorder is a Surface that remembers the calls it receives.
type recorder struct {
	clears  int
	strokes []string
}

func (r *recorder) Clear() { r.clears++ }

func (r *recorder) StrokePath(points []state.Point, c color.Color, width float32) {
	rr, g, b, _ := c.RGBA()
	r.strokes = append(r.strokes, colorKey(rr>>8, g>>8, b>>8))
}

func colorKey(r, g, b uint32) string {
	switch {
	case r == 255 && g == 0 && b == 0:
		return "red"
	case r == 0 && g == 0 && b == 255:
		return "blue"
	}
	return "other"
}

func TestRenderClearsThenPaintsInOrder(t *testing.T) {
	d := sampleDrawing(t)
	r := &recorder{}

	Render(r, d.Strokes())
	assert.Equal(t, 1, r.clears)
	assert.Equal(t, []string{"red", "blue"}, r.strokes)
}

func TestRenderSkipsUndoneStrokes(t *testing.T) {
	d := sampleDrawing(t)
	d.Undo() // the dot
	d.Undo() // the blue stroke
	r := &recorder{}

	Render(r, d.Strokes())
	assert.Equal(t, []string{"red"}, r.strokes)
}

func TestRasterSurfacePaintsStrokeColor(t *testing.T) {
	d := sampleDrawing(t)
	s := NewRasterSurface(100, 100, white)
	Render(s, d.Strokes())

	img := s.Image()
	red := img.RGBAAt(50, 20)
	assert.Greater(t, red.R, uint8(200))
	assert.Less(t, red.G, uint8(50))
	assert.Less(t, red.B, uint8(50))

	blue := img.RGBAAt(30, 60)
	assert.Less(t, blue.R, uint8(50))
	assert.Greater(t, blue.B, uint8(200))

	assert.Equal(t, white, img.RGBAAt(50, 95))
	assert.Equal(t, white, img.RGBAAt(40, 40), "single point stroke must not paint")
}

func TestRasterSurfaceRenderIsIdempotent(t *testing.T) {
	d := sampleDrawing(t)
	s := NewRasterSurface(100, 100, white)

	Render(s, d.Strokes())
	first := append([]uint8(nil), s.Image().Pix...)
	Render(s, d.Strokes())

	assert.True(t, bytes.Equal(first, s.Image().Pix))
}

func TestUndoneStrokeIsNotVisible(t *testing.T) {
	d := sampleDrawing(t)
	s := NewRasterSurface(100, 100, white)
	Render(s, d.Strokes())
	require.NotEqual(t, white, s.Image().RGBAAt(30, 60))

	d.Undo()
	d.Undo()
	Render(s, d.Strokes())
	assert.Equal(t, white, s.Image().RGBAAt(30, 60))

	d.Redo()
	Render(s, d.Strokes())
	assert.NotEqual(t, white, s.Image().RGBAAt(30, 60))
}

func TestClearedDrawingRendersBackground(t *testing.T) {
	d := sampleDrawing(t)
	s := NewRasterSurface(40, 30, white)
	Render(s, d.Strokes())

	d.Clear()
	Render(s, d.Strokes())
	img := s.Image()
	for y := 0; y < 30; y++ {
		for x := 0; x < 40; x++ {
			require.Equal(t, white, img.RGBAAt(x, y), "pixel %d,%d", x, y)
		}
	}
}

func TestRasterSurfaceScale(t *testing.T) {
	d := sampleDrawing(t)
	s := NewRasterSurface(200, 200, white)
	s.SetScale(2)
	Render(s, d.Strokes())

	assert.Greater(t, s.Image().RGBAAt(100, 40).R, uint8(200))
	assert.Equal(t, white, s.Image().RGBAAt(100, 20))
}

func TestResizeKeepsImageWhenUnchanged(t *testing.T) {
	s := NewRasterSurface(10, 10, white)
	img := s.Image()
	s.Resize(10, 10)
	assert.Same(t, img, s.Image())

	s.Resize(20, 5)
	assert.Equal(t, 20, s.Image().Bounds().Dx())
	assert.Equal(t, 5, s.Image().Bounds().Dy())
}

func TestToImageData(t *testing.T) {
	d := sampleDrawing(t)
	s := NewRasterSurface(100, 100, white)
	Render(s, d.Strokes())

	data, err := s.ToImageData()
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 100, img.Bounds().Dx())
	assert.Equal(t, 100, img.Bounds().Dy())

	again, err := s.ToImageData()
	require.NoError(t, err)
	assert.Equal(t, data, again)
}
