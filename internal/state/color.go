package state

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// ParseColor turns a CSS colour string into RGBA. Accepted forms are the
// SVG/CSS colour keywords, "transparent", and #rgb / #rrggbb hex.
func ParseColor(s string) (color.RGBA, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "" {
		return color.RGBA{}, fmt.Errorf("empty colour: %w", ErrInvalidArgument)
	}
	if name == "transparent" {
		return color.RGBA{}, nil
	}
	if c, ok := colornames.Map[name]; ok {
		return c, nil
	}
	if strings.HasPrefix(name, "#") {
		if !isHexColor(name) {
			return color.RGBA{}, fmt.Errorf("colour %q is not #rgb or #rrggbb: %w", s, ErrInvalidArgument)
		}
		c, err := colorful.Hex(name)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("colour %q: %v: %w", s, err, ErrInvalidArgument)
		}
		r, g, b := c.RGB255()
		return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
	}
	return color.RGBA{}, fmt.Errorf("unknown colour %q: %w", s, ErrInvalidArgument)
}

// isHexColor reports whether s is "#" followed by exactly 3 or 6 hex digits.
// colorful.Hex alone tolerates trailing junk and short input.
func isHexColor(s string) bool {
	if len(s) != 4 && len(s) != 7 {
		return false
	}
	for _, r := range s[1:] {
		switch {
		case r >= '0' && r <= '9', r >= 'a' && r <= 'f':
		default:
			return false
		}
	}
	return true
}
