package util

import (
	"fmt"
	"image/color"
	"sort"
	"strconv"
	"strings"

	"github.com/fogleman/ease"
	"github.com/lucasb-eyer/go-colorful"
)

var easings = map[string]func(float64) float64{
	"linear":     ease.Linear,
	"inQuad":     ease.InQuad,
	"outQuad":    ease.OutQuad,
	"inOutQuad":  ease.InOutQuad,
	"inCubic":    ease.InCubic,
	"outCubic":   ease.OutCubic,
	"inOutCubic": ease.InOutCubic,
	"inSine":     ease.InSine,
	"outSine":    ease.OutSine,
	"inOutSine":  ease.InOutSine,
}

// EaseFunc looks up an easing curve by name, e.g. "inOutQuad".
func EaseFunc(name string) (func(float64) float64, error) {
	f, ok := easings[name]
	if !ok {
		return nil, fmt.Errorf("unknown easing %q (known: %s)", name, strings.Join(EaseNames(), ", "))
	}
	return f, nil
}

// EaseNames lists the easing curves EaseFunc knows, sorted.
func EaseNames() []string {
	names := make([]string, 0, len(easings))
	for name := range easings {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GenerateLut samples curve at length evenly spaced points from 0 to 1
// inclusive. A single point samples 1.
func GenerateLut(length int, curve func(float64) float64) []float64 {
	if length < 1 {
		return nil
	}
	lut := make([]float64, length)
	if length == 1 {
		lut[0] = curve(1)
		return lut
	}
	increment := 1.0 / float64(length-1)
	for i := range lut {
		lut[i] = curve(float64(i) * increment)
	}
	return lut
}

// ParseColor parses "#rgb", "#rrggbb" or "#rrggbbaa". Alpha defaults to 255.
func ParseColor(s string) (color.RGBA, error) {
	s = strings.TrimSpace(s)
	alpha := uint8(255)
	if len(s) == 9 {
		a, err := strconv.ParseUint(s[7:], 16, 8)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("parse alpha of %q: %w", s, err)
		}
		alpha = uint8(a)
		s = s[:7]
	}

	c, err := colorful.Hex(s)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("parse colour %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: alpha}, nil
}

// ParsePalette parses every colour in hex.
func ParsePalette(hex []string) ([]color.RGBA, error) {
	palette := make([]color.RGBA, 0, len(hex))
	for _, h := range hex {
		c, err := ParseColor(h)
		if err != nil {
			return nil, err
		}
		palette = append(palette, c)
	}
	return palette, nil
}

// FormatColor renders c as "#rrggbbaa".
func FormatColor(c color.RGBA) string {
	rgb := colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
	return fmt.Sprintf("%s%02x", rgb.Hex(), c.A)
}
