package stream

import (
	"image/color"
	"testing"

	"github.com/matt-g-everett/ledcolormap/colormap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ramp = colormap.Func(func(value float64) color.RGBA {
	return color.RGBA{R: uint8(value * 100), A: 255}
})

func reds(f *Frame) []uint8 {
	out := make([]uint8, f.Len())
	for i := range out {
		out[i] = f.Pixel(i).R
	}
	return out
}

func fill(n int, c color.RGBA) *Frame {
	f := NewFrame(n)
	for i := range f.pixels {
		f.pixels[i] = c
	}
	return f
}

func TestFrameSample(t *testing.T) {
	f := NewFrame(4)
	f.Sample(ramp, 0)
	assert.Equal(t, []uint8{0, 25, 50, 75}, reds(f))

	f.Sample(ramp, 0.5)
	assert.Equal(t, []uint8{50, 75, 0, 25}, reds(f))

	f.Sample(ramp, -0.25)
	assert.Equal(t, []uint8{75, 0, 25, 50}, reds(f))
}

func TestFrameInterpolate(t *testing.T) {
	a := fill(3, color.RGBA{0, 0, 0, 255})
	b := fill(3, color.RGBA{200, 100, 50, 255})

	assert.Equal(t, a.pixels, a.InterpolateFrame(b, 0).pixels)
	assert.Equal(t, b.pixels, a.InterpolateFrame(b, 1).pixels)

	mid := a.InterpolateFrame(b, 0.5)
	require.Equal(t, 3, mid.Len())
	assert.Equal(t, color.RGBA{100, 50, 25, 255}, mid.Pixel(1))
}

func TestFrameMarshalBinary(t *testing.T) {
	f := NewFrame(2)
	f.pixels[0] = color.RGBA{1, 2, 3, 255}
	f.pixels[1] = color.RGBA{4, 5, 6, 0}

	data, err := f.MarshalBinary()
	require.NoError(t, err)
	assert.Equal(t, []byte{2, 0, 1, 2, 3, 4, 5, 6}, data)

	data, err = NewFrame(300).MarshalBinary()
	require.NoError(t, err)
	assert.Len(t, data, 2+900)
	assert.Equal(t, []byte{0x2c, 0x01}, data[:2])
}

func TestFrameMarshalBinaryTooLong(t *testing.T) {
	_, err := NewFrame(maxPixels + 1).MarshalBinary()
	assert.Error(t, err)
}

func TestTrailScrolls(t *testing.T) {
	trail := NewTrail(ramp, 4, 0.25, 1000)

	assert.Equal(t, []uint8{0, 25, 50, 75}, reds(trail.CalculateFrame(1000)))
	// One second later the map has moved a quarter of the strip forward.
	assert.Equal(t, []uint8{75, 0, 25, 50}, reds(trail.CalculateFrame(2000)))
}
