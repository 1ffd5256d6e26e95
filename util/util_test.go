package util

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseColor(t *testing.T) {
	cases := map[string]color.RGBA{
		"#ff0000":   {255, 0, 0, 255},
		"#00ff00":   {0, 255, 0, 255},
		"#000080":   {0, 0, 128, 255},
		"#ffc800":   {255, 200, 0, 255},
		" #0a0b0c ": {10, 11, 12, 255},
		"#0a0b0c80": {10, 11, 12, 128},
		"#fff":      {255, 255, 255, 255},
	}
	for in, want := range cases {
		got, err := ParseColor(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}

func TestParseColorErrors(t *testing.T) {
	for _, in := range []string{"", "red", "#12", "#gg0000", "#ff0000zz"} {
		_, err := ParseColor(in)
		assert.Error(t, err, in)
	}
}

func TestParsePalette(t *testing.T) {
	p, err := ParsePalette([]string{"#ff0000", "#0000ff"})
	require.NoError(t, err)
	assert.Equal(t, []color.RGBA{{255, 0, 0, 255}, {0, 0, 255, 255}}, p)

	_, err = ParsePalette([]string{"#ff0000", "nope"})
	assert.Error(t, err)
}

func TestFormatColor(t *testing.T) {
	assert.Equal(t, "#ff0000ff", FormatColor(color.RGBA{255, 0, 0, 255}))
	assert.Equal(t, "#0a0b0c80", FormatColor(color.RGBA{10, 11, 12, 128}))

	c, err := ParseColor(FormatColor(color.RGBA{1, 2, 3, 4}))
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{1, 2, 3, 4}, c)
}

func TestEaseFunc(t *testing.T) {
	f, err := EaseFunc("inQuad")
	require.NoError(t, err)
	assert.Equal(t, 0.25, f(0.5))

	_, err = EaseFunc("wobble")
	assert.Error(t, err)

	assert.Contains(t, EaseNames(), "inOutQuad")
	assert.Len(t, EaseNames(), 10)
}

func TestGenerateLut(t *testing.T) {
	linear, err := EaseFunc("linear")
	require.NoError(t, err)

	assert.Equal(t, []float64{0, 0.25, 0.5, 0.75, 1}, GenerateLut(5, linear))
	assert.Equal(t, []float64{1}, GenerateLut(1, linear))
	assert.Nil(t, GenerateLut(0, linear))

	smooth, _ := EaseFunc("inOutQuad")
	lut := GenerateLut(30, smooth)
	require.Len(t, lut, 30)
	assert.Equal(t, 0.0, lut[0])
	assert.Equal(t, 1.0, lut[29])
	for i := 1; i < len(lut); i++ {
		assert.GreaterOrEqual(t, lut[i], lut[i-1])
	}
}
