package stream

import (
	"fmt"
	"image/color"
	"math"

	"github.com/matt-g-everett/ledcolormap/colormap"
	"github.com/matt-g-everett/ledcolormap/util"
)

// DefaultSteps is the table size used when a strip does not set one.
const DefaultSteps = 1024

// A Strip is a named colour map with a human readable caption.
type Strip struct {
	Name     string
	Caption  string
	ColorMap colormap.ColorMap
}

// StripConfig describes a Strip in the YAML config.
type StripConfig struct {
	Name    string   `yaml:"name"`
	Steps   int      `yaml:"steps"`
	Colors  []string `yaml:"colors"`
	Sine    float64  `yaml:"sine"`
	Ease    string   `yaml:"ease"`
	Reverse bool     `yaml:"reverse"`
}

// NewStrip builds the colour map a StripConfig describes. Transforms apply
// in the order ease, sine, reverse, innermost first.
func NewStrip(sc StripConfig) (Strip, error) {
	steps := sc.Steps
	if steps == 0 {
		steps = DefaultSteps
	}
	colors, err := util.ParsePalette(sc.Colors)
	if err != nil {
		return Strip{}, fmt.Errorf("strip %q: %w", sc.Name, err)
	}
	table, err := colormap.Build(steps, colors...)
	if err != nil {
		return Strip{}, fmt.Errorf("strip %q: %w", sc.Name, err)
	}

	var cm colormap.ColorMap = table
	if sc.Ease != "" {
		curve, err := util.EaseFunc(sc.Ease)
		if err != nil {
			return Strip{}, fmt.Errorf("strip %q: %w", sc.Name, err)
		}
		cm = colormap.Eased(cm, curve)
	}
	if sc.Sine != 0 {
		cm = colormap.Sine(cm, sc.Sine)
	}
	if sc.Reverse {
		cm = colormap.Reverse(cm)
	}

	s := Strip{Name: sc.Name, ColorMap: cm}
	if sc.Sine != 0 {
		s.Caption = sineCaption(colors)
	} else {
		s.Caption = stepsCaption(steps, colors)
	}
	if s.Name == "" {
		s.Name = s.Caption
	}
	return s, nil
}

// NewStrips builds every configured strip.
func NewStrips(configs []StripConfig) ([]Strip, error) {
	strips := make([]Strip, 0, len(configs))
	for _, sc := range configs {
		s, err := NewStrip(sc)
		if err != nil {
			return nil, err
		}
		strips = append(strips, s)
	}
	return strips, nil
}

// DefaultStrips returns the six demo strips: five ramps of increasing
// complexity and a sine walk over red, green and blue.
func DefaultStrips(steps int) ([]Strip, error) {
	ramps := []struct {
		name   string
		colors []color.RGBA
	}{
		{"red", []color.RGBA{colormap.Red}},
		{"red-green", []color.RGBA{colormap.Red, colormap.Green}},
		{"rgb", []color.RGBA{colormap.Red, colormap.Green, colormap.Blue}},
		{"rainbow", []color.RGBA{
			colormap.Red, colormap.Yellow,
			colormap.Green, colormap.Cyan,
			colormap.Blue, colormap.Magenta}},
		{"heat", []color.RGBA{
			colormap.Black, colormap.Orange, colormap.White,
			colormap.Blue, colormap.Navy}},
	}

	strips := make([]Strip, 0, len(ramps)+1)
	for _, r := range ramps {
		table, err := colormap.Build(steps, r.colors...)
		if err != nil {
			return nil, err
		}
		strips = append(strips, Strip{Name: r.name, Caption: stepsCaption(steps, r.colors), ColorMap: table})
	}

	sineColors := []color.RGBA{colormap.Red, colormap.Green, colormap.Blue}
	table, err := colormap.Build(steps, sineColors...)
	if err != nil {
		return nil, err
	}
	strips = append(strips, Strip{
		Name:     "rgb-sine",
		Caption:  sineCaption(sineColors),
		ColorMap: colormap.Sine(table, math.Pi*4),
	})

	return strips, nil
}

func stepsCaption(steps int, colors []color.RGBA) string {
	return fmt.Sprintf("In %d steps over %s", steps, colormap.Describe(colors...))
}

func sineCaption(colors []color.RGBA) string {
	return "With sine over " + colormap.Describe(colors...)
}
