package color

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseHexForms(t *testing.T) {
	tests := []struct {
		in   string
		want Color
	}{
		{"#FF8000", Color{0xFF, 0x80, 0x00, 0xFF}},
		{"#ff8000", Color{0xFF, 0x80, 0x00, 0xFF}},
		{"#F80", Color{0xFF, 0x88, 0x00, 0xFF}},
		{"#FF800080", Color{0xFF, 0x80, 0x00, 0x80}},
		{"black", Black},
		{"White", White},
		{"TRANSPARENT", Transparent},
	}

	for _, tt := range tests {
		got, err := Parse(tt.in)
		require.NoError(t, err, "Parse(%q)", tt.in)
		require.Equal(t, tt.want, got, "Parse(%q)", tt.in)
	}
}

func TestParseRejectsMalformedLiterals(t *testing.T) {
	for _, in := range []string{"", "FF8000", "#FFFF", "#ZZZZZZ", "#12345", "blue"} {
		_, err := Parse(in)
		require.Error(t, err, "Parse(%q)", in)
	}
}

func TestHexRoundTrip(t *testing.T) {
	colors := []Color{
		{0x00, 0x00, 0x00, 0xFF},
		{0xFF, 0xFF, 0xFF, 0xFF},
		{0x66, 0xC0, 0xF4, 0xFF},
		{0x12, 0x34, 0x56, 0x78},
	}

	for _, c := range colors {
		back, err := Parse(c.Hex())
		require.NoError(t, err)
		require.Equal(t, c, back, "round trip through %s", c.Hex())
	}
}

func TestHexOmitsOpaqueAlpha(t *testing.T) {
	require.Equal(t, "#66C0F4", Color{0x66, 0xC0, 0xF4, 0xFF}.Hex())
	require.Equal(t, "#66C0F480", Color{0x66, 0xC0, 0xF4, 0x80}.Hex())
}

func TestHSLRoundTrip(t *testing.T) {
	for _, c := range []Color{
		{0x66, 0xC0, 0xF4, 0xFF},
		{0xF4, 0x43, 0x36, 0xFF},
		{0x10, 0xA0, 0x20, 0xFF},
	} {
		h, s, l := c.HSL()
		require.Equal(t, c, FromHSL(h, s, l, c.A), "HSL round trip for %s", c.Hex())
	}
}
