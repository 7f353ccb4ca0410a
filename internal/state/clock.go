package state

import (
	"github.com/google/uuid"
)

// Clock numbers the strokes of one drawing in creation order.
type Clock struct {
	counter uint64
}

// Tick increments the clock and returns the new value
func (c *Clock) Tick() uint64 {
	c.counter++
	return c.counter
}

func newStrokeID() string {
	return uuid.NewString()
}
