package color

import "math"

// The transformation functions below are the engine's expression-language
// primitives. Percentage arguments are expected in [0,100]; range and arity
// checks happen at the expression boundary, where a bad argument can be
// reported with its function name and source context.

// Darken lowers HSL lightness by p percentage points, clamped at 0.
func Darken(c Color, p float64) Color {
	h, s, l := c.HSL()
	return FromHSL(h, s, l-p/100.0, c.A)
}

// Lighten raises HSL lightness by p percentage points, clamped at 100.
func Lighten(c Color, p float64) Color {
	h, s, l := c.HSL()
	return FromHSL(h, s, l+p/100.0, c.A)
}

// Saturate raises HSL saturation by p percentage points.
func Saturate(c Color, p float64) Color {
	h, s, l := c.HSL()
	return FromHSL(h, s+p/100.0, l, c.A)
}

// Desaturate lowers HSL saturation by p percentage points.
func Desaturate(c Color, p float64) Color {
	h, s, l := c.HSL()
	return FromHSL(h, s-p/100.0, l, c.A)
}

// Greyscale drops saturation to zero. Hue and lightness are preserved.
func Greyscale(c Color) Color {
	h, _, l := c.HSL()
	return FromHSL(h, 0, l, c.A)
}

// Spin rotates the hue by deg degrees, wrapping modulo 360. Negative angles
// rotate the other way; there is no clamping.
func Spin(c Color, deg float64) Color {
	h, s, l := c.HSL()
	h = math.Mod(h+deg, 360)
	if h < 0 {
		h += 360
	}
	return FromHSL(h, s, l, c.A)
}

// Mix interpolates linearly between c1 and c2 in RGB component space.
// p is the share of c2 in percent: Mix(a, b, 0) is a, Mix(a, b, 100) is b.
// Channels round half away from zero, so Mix(White, Black, 50) is #808080.
func Mix(c1, c2 Color, p float64) Color {
	f := p / 100.0
	return Color{
		R: lerp(c1.R, c2.R, f),
		G: lerp(c1.G, c2.G, f),
		B: lerp(c1.B, c2.B, f),
		A: lerp(c1.A, c2.A, f),
	}
}

// Tint mixes the color toward white by p percent.
func Tint(c Color, p float64) Color {
	white := White
	white.A = c.A
	return Mix(c, white, p)
}

// Shade mixes the color toward black by p percent.
func Shade(c Color, p float64) Color {
	black := Black
	black.A = c.A
	return Mix(c, black, p)
}

func lerp(a, b uint8, f float64) uint8 {
	v := math.Round(float64(a)*(1-f) + float64(b)*f)
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}
