package export

import (
	"fmt"
	"image/color"
	"io"

	"PaintBoard/internal/state"

	"github.com/jung-kurt/gofpdf"
)

// PDF writes a single-page document with every stroke as a vector polyline.
// The page covers the width x height canvas and grows to include strokes that
// were drawn past its edges. Units are points, one per surface pixel.
func PDF(w io.Writer, strokes []*state.Stroke, width, height int, background color.Color) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("export pdf: page %dx%d: %w", width, height, state.ErrInvalidArgument)
	}

	page := state.Rect{Width: float32(width), Height: float32(height)}
	if content, ok := state.BoundsOf(strokes); ok {
		page = page.Union(content)
	}

	p := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "pt",
		Size:    gofpdf.SizeType{Wd: float64(page.Width), Ht: float64(page.Height)},
	})
	p.SetMargins(0, 0, 0)
	p.SetAutoPageBreak(false, 0)
	p.AddPage()

	offX, offY := -float64(page.X), -float64(page.Y)

	if bg := color.RGBAModel.Convert(background).(color.RGBA); bg.A > 0 {
		p.SetFillColor(int(bg.R), int(bg.G), int(bg.B))
		p.Rect(0, 0, float64(page.Width), float64(page.Height), "F")
	}

	p.SetLineCapStyle("round")
	p.SetLineJoinStyle("round")
	for _, st := range strokes {
		if st.Degenerate() {
			continue
		}
		c := st.RGBA()
		if c.A == 0 {
			continue
		}
		p.SetAlpha(float64(c.A)/255, "Normal")
		p.SetDrawColor(int(c.R), int(c.G), int(c.B))
		p.SetLineWidth(float64(st.Width))

		p.MoveTo(float64(st.Points[0].X)+offX, float64(st.Points[0].Y)+offY)
		for _, pt := range st.Points[1:] {
			p.LineTo(float64(pt.X)+offX, float64(pt.Y)+offY)
		}
		p.DrawPath("D")
	}
	p.SetAlpha(1, "Normal")

	if err := p.Output(w); err != nil {
		return fmt.Errorf("export pdf: %w", err)
	}
	return nil
}
