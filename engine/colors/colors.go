package colors

import (
	"fmt"
	"math"

	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Color is an RGBA value with float channels in [0,1].
type Color [4]float32

// Key identifies a color by the raw bits of its channels.
// Colors that differ only by float rounding map to different keys.
type Key [4]uint32

var ErrInvalidColor = zerr.New("color needs 3 or 4 channels")

var (
	White    = Color{1, 1, 1, 1}
	Red      = Color{1, 0, 0, 1}
	Green    = Color{0, 1, 0, 1}
	Blue     = Color{0, 0, 1, 1}
	Black    = Color{0, 0, 0, 1}
	Magenta  = Color{1, 0, 1, 1}
	Cyan     = Color{0, 1, 1, 1}
	Yellow   = Color{1, 1, 0, 1}
	Gray     = Color{0.5, 0.5, 0.5, 1}
	DarkGray = Color{0.08, 0.10, 0.12, 1}
)

// RGB returns an opaque color.
func RGB(r, g, b float32) Color { return Color{r, g, b, 1} }

func RGBA(r, g, b, a float32) Color { return Color{r, g, b, a} }

func (c Color) WithAlpha(a float32) Color {
	c[3] = a
	return c
}

func (c Color) Key() Key {
	return Key{
		math.Float32bits(c[0]),
		math.Float32bits(c[1]),
		math.Float32bits(c[2]),
		math.Float32bits(c[3]),
	}
}

func (c Color) String() string {
	return fmt.Sprintf("rgba(%g, %g, %g, %g)", c[0], c[1], c[2], c[3])
}

// UnmarshalYAML accepts [r, g, b] or [r, g, b, a].
func (c *Color) UnmarshalYAML(node *yaml.Node) error {
	var ch []float32
	if err := node.Decode(&ch); err != nil {
		return zerr.Wrap(err, "decode color")
	}
	switch len(ch) {
	case 3:
		*c = RGB(ch[0], ch[1], ch[2])
	case 4:
		*c = RGBA(ch[0], ch[1], ch[2], ch[3])
	default:
		err := zerr.Wrap(ErrInvalidColor, "decode color")
		return zerr.With(zerr.With(err, "line", node.Line), "channels", len(ch))
	}
	return nil
}
