// Package color implements the color model for theme resolution: hex literal
// parsing, RGB/HSL conversion, and the transformation functions used by the
// theme expression language.
package color

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is a fully-resolved RGBA color. Channels are 8-bit, alpha included,
// so equality is plain struct comparison and hex round trips are exact.
type Color struct {
	R uint8
	G uint8
	B uint8
	A uint8
}

// Common literals accepted by Parse alongside hex notation.
var (
	Black       = Color{0x00, 0x00, 0x00, 0xFF}
	White       = Color{0xFF, 0xFF, 0xFF, 0xFF}
	Transparent = Color{0x00, 0x00, 0x00, 0x00}
)

// Parse reads a color literal. Accepted forms: #RGB, #RRGGBB, #RRGGBBAA, and
// the named colors "black", "white", "transparent" (case-insensitive).
func Parse(s string) (Color, error) {
	switch strings.ToLower(s) {
	case "black":
		return Black, nil
	case "white":
		return White, nil
	case "transparent":
		return Transparent, nil
	}

	hex, ok := strings.CutPrefix(s, "#")
	if !ok {
		return Color{}, fmt.Errorf("expected '#' prefix or a named color, got %q", s)
	}

	switch len(hex) {
	case 3:
		r, err := nibble(hex, 0)
		if err != nil {
			return Color{}, err
		}
		g, err := nibble(hex, 1)
		if err != nil {
			return Color{}, err
		}
		b, err := nibble(hex, 2)
		if err != nil {
			return Color{}, err
		}
		return Color{r<<4 | r, g<<4 | g, b<<4 | b, 0xFF}, nil
	case 6, 8:
		var ch [4]uint8
		ch[3] = 0xFF
		for i := 0; i*2 < len(hex); i++ {
			b, err := octet(hex, i*2)
			if err != nil {
				return Color{}, err
			}
			ch[i] = b
		}
		return Color{ch[0], ch[1], ch[2], ch[3]}, nil
	default:
		return Color{}, fmt.Errorf("expected 3, 6, or 8 hex digits after '#', got %d", len(hex))
	}
}

func nibble(hex string, pos int) (uint8, error) {
	v, err := strconv.ParseUint(hex[pos:pos+1], 16, 8)
	if err != nil {
		return 0, fmt.Errorf("invalid hex digit at position %d in %q", pos, hex)
	}
	return uint8(v), nil
}

func octet(hex string, pos int) (uint8, error) {
	v, err := strconv.ParseUint(hex[pos:pos+2], 16, 8)
	if err != nil {
		return 0, fmt.Errorf("invalid hex byte at position %d in %q", pos, hex)
	}
	return uint8(v), nil
}

// Hex formats the color as #RRGGBB, or #RRGGBBAA when alpha is not opaque.
func (c Color) Hex() string {
	if c.A != 0xFF {
		return fmt.Sprintf("#%02X%02X%02X%02X", c.R, c.G, c.B, c.A)
	}
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

func (c Color) String() string {
	return c.Hex()
}

// HSL returns hue in degrees [0,360) and saturation/lightness in [0,1].
// Alpha is not part of the HSL computation space.
func (c Color) HSL() (h, s, l float64) {
	return c.colorful().Hsl()
}

// FromHSL builds a color from HSL components. Saturation and lightness are
// clamped to [0,1]; alpha passes through untouched.
func FromHSL(h, s, l float64, alpha uint8) Color {
	return fromColorful(colorful.Hsl(h, clamp01(s), clamp01(l)), alpha)
}

func (c Color) colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
}

func fromColorful(cc colorful.Color, alpha uint8) Color {
	cc = cc.Clamped()
	return Color{
		R: channel(cc.R),
		G: channel(cc.G),
		B: channel(cc.B),
		A: alpha,
	}
}

func channel(v float64) uint8 {
	scaled := v*255.0 + 0.5
	if scaled <= 0 {
		return 0
	}
	if scaled >= 255 {
		return 255
	}
	return uint8(scaled)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
