package state

// Rect is an axis-aligned area on the drawing surface.
type Rect struct {
	X      float32
	Y      float32
	Width  float32
	Height float32
}

func (r Rect) MaxX() float32 { return r.X + r.Width }
func (r Rect) MaxY() float32 { return r.Y + r.Height }

// Union returns the smallest Rect covering both r and o.
func (r Rect) Union(o Rect) Rect {
	minX := r.X
	if o.X < minX {
		minX = o.X
	}

	minY := r.Y
	if o.Y < minY {
		minY = o.Y
	}

	maxX := r.MaxX()
	if o.MaxX() > maxX {
		maxX = o.MaxX()
	}

	maxY := r.MaxY()
	if o.MaxY() > maxY {
		maxY = o.MaxY()
	}

	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// Bounds returns the area painted by the stroke: the bounding box of its
// points grown by half the line width. ok is false for a stroke with no points.
func (s *Stroke) Bounds() (r Rect, ok bool) {
	if len(s.Points) == 0 {
		return Rect{}, false
	}

	minX, minY := s.Points[0].X, s.Points[0].Y
	maxX, maxY := s.Points[0].X, s.Points[0].Y

	for _, point := range s.Points {
		if point.X < minX {
			minX = point.X
		}
		if point.X > maxX {
			maxX = point.X
		}
		if point.Y < minY {
			minY = point.Y
		}
		if point.Y > maxY {
			maxY = point.Y
		}
	}

	padding := s.Width / 2
	return Rect{
		X:      minX - padding,
		Y:      minY - padding,
		Width:  maxX - minX + 2*padding,
		Height: maxY - minY + 2*padding,
	}, true
}

// BoundsOf merges the bounds of every stroke that has points.
func BoundsOf(strokes []*Stroke) (Rect, bool) {
	var (
		out   Rect
		found bool
	)
	for _, s := range strokes {
		r, ok := s.Bounds()
		if !ok {
			continue
		}
		if !found {
			out, found = r, true
			continue
		}
		out = out.Union(r)
	}
	return out, found
}
