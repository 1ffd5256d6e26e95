package stream

import (
	"github.com/matt-g-everett/ledcolormap/colormap"
)

// An Animation renders the frame to show runtimeMs after start-up.
type Animation interface {
	CalculateFrame(runtimeMs int64) *Frame
}

// A Trail is an Animation that scrolls a colour map along an LED strip.
type Trail struct {
	colorMap  colormap.ColorMap
	numPixels int
	speed     float64
	startMs   int64
}

// NewTrail creates a Trail moving speed strip lengths per second, starting
// at startMs.
func NewTrail(colorMap colormap.ColorMap, numPixels int, speed float64, startMs int64) *Trail {
	t := new(Trail)
	t.colorMap = colorMap
	t.numPixels = numPixels
	t.speed = speed
	t.startMs = startMs

	return t
}

// CalculateFrame creates a new Frame instance.
func (t *Trail) CalculateFrame(runtimeMs int64) *Frame {
	f := NewFrame(t.numPixels)
	current := t.speed * float64(runtimeMs-t.startMs) / 1000
	f.Sample(t.colorMap, -current)

	return f
}
