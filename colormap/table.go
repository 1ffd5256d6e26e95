package colormap

import (
	"errors"
	"fmt"
	"image/color"
)

// ErrInvalidArgument is returned when a table cannot be built from the
// given parameters.
var ErrInvalidArgument = errors.New("invalid argument")

// Table is a ColorMap backed by a precomputed slice of colours. It is never
// modified after Build returns, so concurrent readers need no locking.
type Table struct {
	entries []color.RGBA
}

// Build creates a table of steps colours interpolated through the anchors.
// The anchors are spaced evenly over [0,1]; each channel is interpolated
// linearly and truncated toward zero.
func Build(steps int, colors ...color.RGBA) (*Table, error) {
	if steps < 1 {
		return nil, fmt.Errorf("colormap: steps must be at least 1, got %d: %w", steps, ErrInvalidArgument)
	}
	if len(colors) == 0 {
		return nil, fmt.Errorf("colormap: at least one anchor colour is required: %w", ErrInvalidArgument)
	}

	entries := make([]color.RGBA, steps)
	if len(colors) == 1 {
		for i := range entries {
			entries[i] = colors[0]
		}
		return &Table{entries: entries}, nil
	}

	segments := len(colors) - 1
	for i := range entries {
		pos := 0.0
		if steps > 1 {
			pos = float64(i) / float64(steps-1)
		}

		// pos*segments is pos/segmentWidth without the rounding error of
		// dividing by 1/segments, which would cost the last anchor a unit.
		scaled := pos * float64(segments)
		index0 := int(scaled)
		if index0 > segments-1 {
			index0 = segments - 1
		}
		index1 := index0 + 1
		local := scaled - float64(index0)

		entries[i] = lerp(colors[index0], colors[index1], local)
	}

	return &Table{entries: entries}, nil
}

// MustBuild is like Build but panics on error.
func MustBuild(steps int, colors ...color.RGBA) *Table {
	t, err := Build(steps, colors...)
	if err != nil {
		panic(err)
	}
	return t
}

func lerp(c0, c1 color.RGBA, t float64) color.RGBA {
	return color.RGBA{
		R: lerpChannel(c0.R, c1.R, t),
		G: lerpChannel(c0.G, c1.G, t),
		B: lerpChannel(c0.B, c1.B, t),
		A: lerpChannel(c0.A, c1.A, t),
	}
}

func lerpChannel(a, b uint8, t float64) uint8 {
	return uint8(int(float64(a) + t*float64(int(b)-int(a))))
}

// GetColor returns the entry at floor(clamp(value) * (Len()-1)).
func (t *Table) GetColor(value float64) color.RGBA {
	i := int(Clamp(value) * float64(len(t.entries)-1))
	return t.entries[i]
}

// Len returns the number of entries in the table.
func (t *Table) Len() int {
	return len(t.entries)
}

// At returns entry i.
func (t *Table) At(i int) color.RGBA {
	return t.entries[i]
}
