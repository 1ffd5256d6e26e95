// Package colormap maps a scalar in [0,1] to an RGBA colour.
//
// The default implementation is a Table, a look-up table precomputed once by
// linearly interpolating between evenly spaced anchor colours. Colour maps
// compose with input transforms (WithTransform, Sine, Eased) so that one ramp
// can be walked in different ways without building another table.
package colormap

import (
	"image/color"
	"math"

	"github.com/fogleman/ease"
)

// A ColorMap maps a value in [0,1] to a colour. Values outside the range are
// clamped, never rejected.
type ColorMap interface {
	GetColor(value float64) color.RGBA
}

// Func adapts an ordinary function to a ColorMap. The value is clamped
// before the function sees it.
type Func func(value float64) color.RGBA

// GetColor calls f with the clamped value.
func (f Func) GetColor(value float64) color.RGBA {
	return f(Clamp(value))
}

// Clamp limits value to [0,1]. NaN maps to 0.
func Clamp(value float64) float64 {
	if !(value > 0) {
		return 0
	}
	if value > 1 {
		return 1
	}
	return value
}

type transformed struct {
	delegate ColorMap
	f        func(float64) float64
}

func (t transformed) GetColor(value float64) color.RGBA {
	return t.delegate.GetColor(Clamp(t.f(value)))
}

// WithTransform returns a ColorMap that passes each value through f before
// looking it up in delegate. f sees the raw value, so periodic transforms
// keep oscillating outside [0,1]; its result is clamped.
func WithTransform(delegate ColorMap, f func(float64) float64) ColorMap {
	return transformed{delegate: delegate, f: f}
}

// Sine walks delegate back and forth with 0.5 + 0.5*sin(value*frequency).
func Sine(delegate ColorMap, frequency float64) ColorMap {
	return WithTransform(delegate, func(value float64) float64 {
		return 0.5 + 0.5*math.Sin(value*frequency)
	})
}

// Eased remaps the input with an easing curve such as ease.InOutCubic.
func Eased(delegate ColorMap, curve func(float64) float64) ColorMap {
	return WithTransform(delegate, curve)
}

// Smooth is Eased with ease.InOutQuad: slow at both ends of the ramp.
func Smooth(delegate ColorMap) ColorMap {
	return Eased(delegate, ease.InOutQuad)
}

// Reverse runs delegate from 1 down to 0.
func Reverse(delegate ColorMap) ColorMap {
	return WithTransform(delegate, func(value float64) float64 {
		return 1 - value
	})
}
