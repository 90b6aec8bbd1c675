package raster

import (
	"fmt"
	"image/png"
	"io"
)

// EncodePNG writes the canvas image to w.
func (c *Canvas) EncodePNG(w io.Writer) error {
	if err := png.Encode(w, c.img); err != nil {
		return fmt.Errorf("raster: encode png: %w", err)
	}
	return nil
}
