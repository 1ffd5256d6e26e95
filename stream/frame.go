package stream

import (
	"encoding/binary"
	"fmt"
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/matt-g-everett/ledcolormap/colormap"
)

// maxPixels is the largest strip the uint16 length header can describe.
const maxPixels = math.MaxUint16

// Frame represents a frame of pixels to display on an LED strip.
type Frame struct {
	pixels []color.RGBA
}

// NewFrame creates a black Frame of numPixels pixels.
func NewFrame(numPixels int) *Frame {
	f := new(Frame)
	f.pixels = make([]color.RGBA, numPixels)
	return f
}

// Len returns the number of pixels.
func (f *Frame) Len() int {
	return len(f.pixels)
}

// Pixel returns pixel i.
func (f *Frame) Pixel(i int) color.RGBA {
	return f.pixels[i]
}

// Sample fills the frame from a colour map laid once around the strip,
// shifted by offset. Pixel i reads the map at frac(i/n + offset).
func (f *Frame) Sample(cm colormap.ColorMap, offset float64) {
	n := float64(len(f.pixels))
	for i := range f.pixels {
		t := float64(i)/n + offset
		t -= math.Floor(t)
		f.pixels[i] = cm.GetColor(t)
	}
}

// InterpolateFrame blends two frames of the same length in RGB.
func (f *Frame) InterpolateFrame(f2 *Frame, transitionPoint float64) *Frame {
	out := NewFrame(len(f.pixels))
	for i := range f.pixels {
		out.pixels[i] = blendRgb(f.pixels[i], f2.pixels[i], transitionPoint)
	}

	return out
}

func toColorful(c color.RGBA) colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

func blendRgb(c1, c2 color.RGBA, t float64) color.RGBA {
	r, g, b := toColorful(c1).BlendRgb(toColorful(c2), t).Clamped().RGB255()
	a := float64(c1.A) + t*(float64(c2.A)-float64(c1.A))
	return color.RGBA{R: r, G: g, B: b, A: uint8(math.Round(a))}
}

// MarshalBinary converts a Frame into a little-endian uint16 pixel count
// followed by one R, G, B triple per pixel.
func (f *Frame) MarshalBinary() (data []byte, err error) {
	if len(f.pixels) > maxPixels {
		return nil, fmt.Errorf("frame of %d pixels exceeds %d", len(f.pixels), maxPixels)
	}

	data = make([]byte, 2, (len(f.pixels)*3)+2)
	binary.LittleEndian.PutUint16(data, uint16(len(f.pixels)))
	for _, p := range f.pixels {
		data = append(data, p.R, p.G, p.B)
	}

	return data, nil
}
