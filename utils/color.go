package utils

import (
	"image/color"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ParseHexColor parses "#rgb" or "#rrggbb" into an opaque color
func ParseHexColor(s string) (color.RGBA, error) {
	hex, ok := strings.CutPrefix(strings.TrimSpace(s), "#")
	if !ok {
		return color.RGBA{}, errors.Errorf("[ParseHexColor] missing '#' prefix: %q", s)
	}
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return color.RGBA{}, errors.Errorf("[ParseHexColor] want 3 or 6 hex digits: %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, errors.Wrapf(err, "[ParseHexColor] bad hex digits: %q", s)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}
