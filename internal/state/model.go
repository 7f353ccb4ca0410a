package state

import (
	"image/color"
	"time"
)

type Point struct{ X, Y float32 }

// Stroke is one freehand line. Points are in drawing order.
type Stroke struct {
	ID      string
	Seq     uint64 // position in the drawing's logical clock
	Color   string // CSS colour as chosen by the user
	Width   float32
	Points  []Point
	Created time.Time

	rgba color.RGBA
}

// RGBA returns the parsed stroke colour.
func (s *Stroke) RGBA() color.RGBA {
	return s.rgba
}

// Degenerate reports whether the stroke has too few points to paint a line.
func (s *Stroke) Degenerate() bool {
	return len(s.Points) < 2
}
