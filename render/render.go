// Package render draws colour map strips to images.
package render

import (
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/fogleman/gg"
	"github.com/matt-g-everett/ledcolormap/stream"
)

// CaptionHeight is the height in pixels of the caption band above each strip.
const CaptionHeight = 16

func draw(strips []stream.Strip, width, stripHeight int) (*gg.Context, error) {
	if width < 1 {
		return nil, fmt.Errorf("width must be positive, got %d", width)
	}
	if stripHeight <= CaptionHeight {
		return nil, fmt.Errorf("strip height must exceed %d, got %d", CaptionHeight, stripHeight)
	}
	if len(strips) == 0 {
		return nil, fmt.Errorf("no strips to draw")
	}

	dc := gg.NewContext(width, stripHeight*len(strips))
	dc.SetColor(color.White)
	dc.Clear()

	for j, s := range strips {
		y0 := float64(j * stripHeight)

		dc.SetColor(color.Black)
		dc.DrawString(s.Caption, 4, y0+CaptionHeight-4)

		h := float64(stripHeight - CaptionHeight)
		for x := 0; x < width; x++ {
			d := 0.0
			if width > 1 {
				d = float64(x) / float64(width-1)
			}
			dc.SetColor(s.ColorMap.GetColor(d))
			dc.DrawRectangle(float64(x), y0+CaptionHeight, 1, h)
			dc.Fill()
		}
	}

	return dc, nil
}

// DrawStrips draws one panel per strip: a caption line, then one column per
// pixel coloured by the strip's colour map at x/(width-1).
func DrawStrips(strips []stream.Strip, width, stripHeight int) (image.Image, error) {
	dc, err := draw(strips, width, stripHeight)
	if err != nil {
		return nil, err
	}
	return dc.Image(), nil
}

// WritePNG draws the strips and encodes them as PNG to w.
func WritePNG(w io.Writer, strips []stream.Strip, width, stripHeight int) error {
	dc, err := draw(strips, width, stripHeight)
	if err != nil {
		return err
	}
	return dc.EncodePNG(w)
}
