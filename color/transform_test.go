package color

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, s string) Color {
	t.Helper()
	c, err := Parse(s)
	require.NoError(t, err)
	return c
}

func TestDarkenLightenStayInRange(t *testing.T) {
	c := mustParse(t, "#66C0F4")
	_, _, orig := c.HSL()

	for _, p := range []float64{0, 10, 50, 100} {
		_, _, darker := Darken(c, p).HSL()
		_, _, lighter := Lighten(c, p).HSL()

		require.LessOrEqual(t, darker, orig+1e-9, "darken by %v", p)
		require.GreaterOrEqual(t, lighter, orig-1e-9, "lighten by %v", p)
		require.GreaterOrEqual(t, darker, 0.0)
		require.LessOrEqual(t, lighter, 1.0)
	}

	// Round-tripping through lighten and darken never overshoots the original.
	_, _, roundTrip := Darken(Lighten(c, 20), 20).HSL()
	require.InDelta(t, orig, roundTrip, 0.01)
}

func TestDarkenClampsAtBlack(t *testing.T) {
	c := mustParse(t, "#202020")
	require.Equal(t, Color{0, 0, 0, 0xFF}, Darken(c, 100))
}

func TestSaturateDesaturate(t *testing.T) {
	c := mustParse(t, "#8090A0")
	_, orig, _ := c.HSL()

	_, more, _ := Saturate(c, 30).HSL()
	_, less, _ := Desaturate(c, 30).HSL()

	require.Greater(t, more, orig)
	require.Less(t, less, orig)
}

func TestGreyscaleZeroesSaturation(t *testing.T) {
	g := Greyscale(mustParse(t, "#66C0F4"))
	require.Equal(t, g.R, g.G)
	require.Equal(t, g.G, g.B)
}

func TestSpinFullTurnIsIdentity(t *testing.T) {
	for _, s := range []string{"#66C0F4", "#F44336", "#4CAF50"} {
		c := mustParse(t, s)
		require.Equal(t, c, Spin(c, 360), "spin(%s, 360)", s)
		require.Equal(t, c, Spin(c, -360), "spin(%s, -360)", s)
	}
}

func TestSpinHalfTurnMovesHue(t *testing.T) {
	c := mustParse(t, "#FF0000")
	h, _, _ := Spin(c, 180).HSL()
	require.InDelta(t, 180.0, h, 0.5)
}

func TestMixGolden(t *testing.T) {
	// Pinned: RGB-space blend with round-half-away channels.
	require.Equal(t, Color{0x80, 0x80, 0x80, 0xFF}, Mix(White, Black, 50))
	require.Equal(t, White, Mix(White, Black, 0))
	require.Equal(t, Black, Mix(White, Black, 100))
}

func TestTintShadeGolden(t *testing.T) {
	c := mustParse(t, "#408000")
	require.Equal(t, Color{0xA0, 0xC0, 0x80, 0xFF}, Tint(c, 50))
	require.Equal(t, Color{0x20, 0x40, 0x00, 0xFF}, Shade(c, 50))
}

func TestTransformsPreserveAlpha(t *testing.T) {
	c := mustParse(t, "#66C0F480")
	require.Equal(t, uint8(0x80), Darken(c, 10).A)
	require.Equal(t, uint8(0x80), Spin(c, 90).A)
	require.Equal(t, uint8(0x80), Tint(c, 25).A)
	require.Equal(t, uint8(0x80), Greyscale(c).A)
}
