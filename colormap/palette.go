package colormap

import (
	"fmt"
	"image/color"
	"strings"
)

// Anchor colours used by the demo strips.
var (
	Red     = color.RGBA{R: 255, A: 255}
	Green   = color.RGBA{G: 255, A: 255}
	Blue    = color.RGBA{B: 255, A: 255}
	Yellow  = color.RGBA{R: 255, G: 255, A: 255}
	Cyan    = color.RGBA{G: 255, B: 255, A: 255}
	Magenta = color.RGBA{R: 255, B: 255, A: 255}
	Orange  = color.RGBA{R: 255, G: 200, A: 255}
	Black   = color.RGBA{A: 255}
	White   = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Navy    = color.RGBA{B: 128, A: 255}
)

// Describe formats colours as "(r,g,b), (r,g,b)".
func Describe(colors ...color.RGBA) string {
	var sb strings.Builder
	for i, c := range colors {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "(%d,%d,%d)", c.R, c.G, c.B)
	}
	return sb.String()
}
