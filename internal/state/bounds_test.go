package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStrokeBounds(t *testing.T) {
	s := &Stroke{Width: 4, Points: []Point{{10, 20}, {30, 5}, {15, 40}}}
	r, ok := s.Bounds()
	assert.True(t, ok)
	assert.Equal(t, Rect{X: 8, Y: 3, Width: 24, Height: 39}, r)

	_, ok = (&Stroke{Width: 4}).Bounds()
	assert.False(t, ok)
}

func TestBoundsOfSkipsEmptyStrokes(t *testing.T) {
	strokes := []*Stroke{
		{Width: 2},
		{Width: 2, Points: []Point{{0, 0}, {10, 10}}},
		{Width: 2, Points: []Point{{50, 5}}},
	}
	r, ok := BoundsOf(strokes)
	assert.True(t, ok)
	assert.Equal(t, Rect{X: -1, Y: -1, Width: 52, Height: 12}, r)

	_, ok = BoundsOf([]*Stroke{{Width: 1}})
	assert.False(t, ok)
}
