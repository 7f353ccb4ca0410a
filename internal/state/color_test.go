package state

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.RGBA
	}{
		{"black", color.RGBA{0, 0, 0, 255}},
		{"red", color.RGBA{255, 0, 0, 255}},
		{"  Blue ", color.RGBA{0, 0, 255, 255}},
		{"#00ff00", color.RGBA{0, 255, 0, 255}},
		{"#fff", color.RGBA{255, 255, 255, 255}},
		{"transparent", color.RGBA{}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseColorRejectsMalformed(t *testing.T) {
	for _, in := range []string{
		"", "   ", "nocolour", "#12", "#gggggg", "rgb", "#",
		"#12345", "#1234567", "#abcd", "#ff0000zz", "#ff0000ff00", "#ff 000",
	} {
		_, err := ParseColor(in)
		assert.ErrorIs(t, err, ErrInvalidArgument, "input %q", in)
	}
}

func TestParseColorHexIsCaseInsensitive(t *testing.T) {
	got, err := ParseColor("#FFa500")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{255, 165, 0, 255}, got)
}
