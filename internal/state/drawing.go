package state

import (
	"fmt"
	"math"
	"time"

	"PaintBoard/internal/logging"
)

// Drawing is the in-memory model behind the board: the committed strokes in
// paint order, the undo buffer, and the current tool settings.
//
// A Drawing is owned by the UI goroutine and is not safe for concurrent use.
type Drawing struct {
	strokes []*Stroke // bottom-to-top paint order
	undone  []*Stroke // most recently undone last
	active  *Stroke   // set only between BeginStroke and EndStroke

	color string
	width float32

	clock Clock

	// OnChange is called after every mutation that changes what is visible.
	OnChange func()
}

// NewDrawing returns an idle drawing with empty history and the given tool defaults.
func NewDrawing(color string, width float32) (*Drawing, error) {
	d := &Drawing{}
	if err := d.SetColor(color); err != nil {
		return nil, err
	}
	if err := d.SetWidth(width); err != nil {
		return nil, err
	}
	return d, nil
}

func validWidth(w float32) error {
	f := float64(w)
	if math.IsNaN(f) || math.IsInf(f, 0) || w <= 0 {
		return fmt.Errorf("width %v must be a positive finite number: %w", w, ErrInvalidArgument)
	}
	return nil
}

func (d *Drawing) changed() {
	if d.OnChange != nil {
		d.OnChange()
	}
}

// BeginStroke starts a new active stroke. It fails with ErrInvalidState if a
// stroke is already active; the caller has to EndStroke first. Starting a
// stroke drops the redo history.
func (d *Drawing) BeginStroke(color string, width float32) (*Stroke, error) {
	if d.active != nil {
		return nil, fmt.Errorf("begin stroke while %s is active: %w", d.active.ID, ErrInvalidState)
	}
	rgba, err := ParseColor(color)
	if err != nil {
		return nil, err
	}
	if err := validWidth(width); err != nil {
		return nil, err
	}

	s := &Stroke{
		ID:      newStrokeID(),
		Seq:     d.clock.Tick(),
		Color:   color,
		Width:   width,
		Created: time.Now(),
		rgba:    rgba,
	}
	d.strokes = append(d.strokes, s)
	d.active = s
	if len(d.undone) > 0 {
		logging.Debugf("[MODEL] Dropping %d undone strokes", len(d.undone))
		d.undone = nil
	}
	logging.Debugf("[MODEL] Begin stroke %d (%s, %s, %.1f)", s.Seq, s.ID, color, width)
	d.changed()
	return s, nil
}

// AppendPoint extends the active stroke. It does nothing while idle.
func (d *Drawing) AppendPoint(p Point) {
	if d.active == nil {
		logging.Debugf("[MODEL] Ignoring point (%.1f, %.1f) while idle", p.X, p.Y)
		return
	}
	x, y := float64(p.X), float64(p.Y)
	if math.IsNaN(x) || math.IsNaN(y) || math.IsInf(x, 0) || math.IsInf(y, 0) {
		logging.Warnf("[MODEL] Dropping non-finite point (%v, %v)", p.X, p.Y)
		return
	}
	d.active.Points = append(d.active.Points, p)
	d.changed()
}

// EndStroke freezes the active stroke. Degenerate strokes stay in history.
func (d *Drawing) EndStroke() {
	if d.active == nil {
		return
	}
	logging.Debugf("[MODEL] End stroke %d with %d points after %s",
		d.active.Seq, len(d.active.Points), time.Since(d.active.Created).Round(time.Millisecond))
	d.active = nil
}

// Undo moves the last committed stroke to the undo buffer. It reports whether
// anything was undone.
func (d *Drawing) Undo() bool {
	if len(d.strokes) == 0 {
		return false
	}
	last := d.strokes[len(d.strokes)-1]
	if last == d.active {
		d.active = nil
	}
	d.strokes = d.strokes[:len(d.strokes)-1]
	d.undone = append(d.undone, last)
	logging.Infof("[MODEL] Undo stroke %d", last.Seq)
	d.changed()
	return true
}

// Redo moves the most recently undone stroke back on top of the drawing.
func (d *Drawing) Redo() bool {
	if len(d.undone) == 0 {
		return false
	}
	last := d.undone[len(d.undone)-1]
	d.undone = d.undone[:len(d.undone)-1]
	d.strokes = append(d.strokes, last)
	logging.Infof("[MODEL] Redo stroke %d", last.Seq)
	d.changed()
	return true
}

// Clear removes every committed stroke. The undo buffer is kept, so a Redo
// after Clear brings back the most recently undone stroke.
func (d *Drawing) Clear() {
	d.active = nil
	d.strokes = nil
	logging.Infof("[MODEL] Cleared drawing (%d strokes still undoable)", len(d.undone))
	d.changed()
}

func (d *Drawing) SetColor(color string) error {
	if _, err := ParseColor(color); err != nil {
		return err
	}
	d.color = color
	logging.Infof("[MODEL] Setting current color to %s", color)
	return nil
}

func (d *Drawing) SetWidth(width float32) error {
	if err := validWidth(width); err != nil {
		return err
	}
	d.width = width
	logging.Infof("[MODEL] Setting line width to %.1f", width)
	return nil
}

func (d *Drawing) Color() string  { return d.color }
func (d *Drawing) Width() float32 { return d.width }

// IsDrawing reports whether a stroke is active.
func (d *Drawing) IsDrawing() bool { return d.active != nil }

// Active returns the stroke being drawn, or nil while idle.
func (d *Drawing) Active() *Stroke { return d.active }

// Strokes returns the committed strokes in paint order. The slice is a copy;
// the strokes are shared.
func (d *Drawing) Strokes() []*Stroke {
	out := make([]*Stroke, len(d.strokes))
	copy(out, d.strokes)
	return out
}

// Undone returns the undo buffer, most recently undone last.
func (d *Drawing) Undone() []*Stroke {
	out := make([]*Stroke, len(d.undone))
	copy(out, d.undone)
	return out
}

func (d *Drawing) CanUndo() bool { return len(d.strokes) > 0 }
func (d *Drawing) CanRedo() bool { return len(d.undone) > 0 }
