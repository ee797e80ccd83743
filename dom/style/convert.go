package style

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/npillmayer/tyse/core/dimen"
	"github.com/npillmayer/tyse/core/percent"
)

// ErrNotADimension is returned if a property value cannot be read as a
// dimension.
var ErrNotADimension = errors.New("style property is not a dimension")

// ErrNotAPercentage is returned if a property value cannot be read as a
// percentage.
var ErrNotAPercentage = errors.New("style property is not a percentage")

// Color returns the color denoted by a property value. It understands a
// handful of color names and hex notation "#rrggbb" / "#rgb".
// "default" yields nil; unknown values yield black.
func (p Property) Color() color.Color {
	if p == "default" {
		return nil
	}
	switch v := strings.TrimSpace(string(p)); v {
	case "red":
		return color.RGBA{0xff, 0, 0, 0xff}
	case "green":
		return color.RGBA{0, 0xff, 0, 0xff}
	case "blue":
		return color.RGBA{0, 0, 0xff, 0xff}
	case "gray", "grey":
		return color.RGBA{0x80, 0x80, 0x80, 0xff}
	case "white":
		return color.White
	case "transparent":
		return color.Transparent
	default:
		if c, ok := hexColor(v); ok {
			return c
		}
	}
	return color.Black
}

func hexColor(s string) (color.Color, bool) {
	if !strings.HasPrefix(s, "#") {
		return nil, false
	}
	s = s[1:]
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	if len(s) != 6 {
		return nil, false
	}
	rgb, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return nil, false
	}
	return color.RGBA{uint8(rgb >> 16), uint8(rgb >> 8), uint8(rgb), 0xff}, true
}

// ColorString returns a coarse color name for c, for debugging output.
func ColorString(c color.Color) string {
	if c == nil {
		return "powderblue" // X11 color and CSS color
	}
	r, g, b, a := c.RGBA()
	if r == a && g == a && b == a {
		return "white"
	}
	if r == 0 && g == 0 && b == 0 {
		return "black"
	}
	if r >= 0x90 {
		return "red"
	} else if g >= 0x90 {
		return "green"
	} else if b >= 0x90 {
		return "blue"
	}
	return "gray"
}

// Dimen reads a property value as a dimension. Values are given in
// printer's points, e.g. "12pt"; a bare "0" is accepted as well.
func (p Property) Dimen() (dimen.DU, error) {
	v := strings.TrimSpace(string(p))
	if v == "0" {
		return 0, nil
	}
	if !strings.HasSuffix(v, "pt") {
		return 0, fmt.Errorf("%w: %q", ErrNotADimension, p)
	}
	f, err := strconv.ParseFloat(strings.TrimSuffix(v, "pt"), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrNotADimension, p)
	}
	return dimen.DU(f * float64(dimen.PT)), nil
}

// Percent reads a property value as a percentage, e.g. "80%".
func (p Property) Percent() (percent.Percent, error) {
	var none percent.Percent
	v := strings.TrimSpace(string(p))
	if !strings.HasSuffix(v, "%") {
		return none, fmt.Errorf("%w: %q", ErrNotAPercentage, p)
	}
	n, err := strconv.Atoi(strings.TrimSuffix(v, "%"))
	if err != nil {
		return none, fmt.Errorf("%w: %q", ErrNotAPercentage, p)
	}
	return percent.FromInt(n), nil
}
