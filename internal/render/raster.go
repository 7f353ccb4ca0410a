package render

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"

	"PaintBoard/internal/state"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"
)

var _ Surface = (*RasterSurface)(nil)

// RasterSurface paints strokes into an in-memory RGBA image with rasterx.
type RasterSurface struct {
	img        *image.RGBA
	stroker    *rasterx.Stroker
	background color.Color
	scale      float32
}

// NewRasterSurface returns a width x height surface filled with background.
func NewRasterSurface(width, height int, background color.Color) *RasterSurface {
	s := &RasterSurface{background: background, scale: 1}
	s.Resize(width, height)
	return s
}

// Resize reallocates the backing image when the size changes. The new image is
// cleared.
func (s *RasterSurface) Resize(width, height int) {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	if s.img != nil && s.img.Bounds().Dx() == width && s.img.Bounds().Dy() == height {
		return
	}
	s.img = image.NewRGBA(image.Rect(0, 0, width, height))
	scanner := rasterx.NewScannerGV(width, height, s.img, s.img.Bounds())
	s.stroker = rasterx.NewStroker(width, height, scanner)
	s.Clear()
}

// SetScale sets the factor between drawing coordinates and pixels.
func (s *RasterSurface) SetScale(scale float32) {
	if scale <= 0 {
		scale = 1
	}
	s.scale = scale
}

func (s *RasterSurface) Clear() {
	draw.Draw(s.img, s.img.Bounds(), image.NewUniform(s.background), image.Point{}, draw.Src)
}

func (s *RasterSurface) StrokePath(points []state.Point, c color.Color, width float32) {
	if len(points) == 0 {
		return
	}
	st := s.stroker
	st.Clear()
	st.SetStroke(
		fixed.Int26_6(width*s.scale*64), 4*64,
		rasterx.RoundCap, rasterx.RoundCap, rasterx.RoundGap, rasterx.Round,
	)
	st.SetColor(c)
	st.Start(s.fixed(points[0]))
	for _, p := range points[1:] {
		st.Line(s.fixed(p))
	}
	st.Stop(false)
	st.Draw()
}

func (s *RasterSurface) fixed(p state.Point) fixed.Point26_6 {
	return rasterx.ToFixedP(float64(p.X*s.scale), float64(p.Y*s.scale))
}

// Image returns the backing image. It is reused across renders.
func (s *RasterSurface) Image() *image.RGBA {
	return s.img
}

// ToImageData encodes the current pixels as PNG.
func (s *RasterSurface) ToImageData() ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, s.img); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}
