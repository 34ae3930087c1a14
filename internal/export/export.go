// Package export writes rendered frames to disk.
package export

import (
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/Carbonfreezer/Mandelbrot-Explorer/internal/mandel"
	"github.com/Carbonfreezer/Mandelbrot-Explorer/internal/palette"
)

// ToImage colors a field and packs it into an RGBA image of the grid size.
func ToImage(field mandel.Field, mapper palette.Mapper) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, mandel.Width, mandel.Height))
	for i, iter := range field {
		c := mapper(iter)
		offset := i * 4
		img.Pix[offset] = c.R
		img.Pix[offset+1] = c.G
		img.Pix[offset+2] = c.B
		img.Pix[offset+3] = c.A
	}
	return img
}

// WritePNG renders a field with the given scheme and writes it as PNG.
func WritePNG(path string, field mandel.Field, mapper palette.Mapper) error {
	if len(field) != mandel.Width*mandel.Height {
		return fmt.Errorf("field has %d entries, want %d", len(field), mandel.Width*mandel.Height)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if err := png.Encode(f, ToImage(field, mapper)); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return nil
}
