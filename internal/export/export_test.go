package export

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/Carbonfreezer/Mandelbrot-Explorer/internal/mandel"
	"github.com/Carbonfreezer/Mandelbrot-Explorer/internal/palette"
)

func testField() mandel.Field {
	field := make(mandel.Field, mandel.Width*mandel.Height)
	for i := range field {
		field[i] = uint16(i % int(mandel.MaxIter+1))
	}
	return field
}

func TestToImage(t *testing.T) {
	img := ToImage(testField(), palette.Viridis)

	bounds := img.Bounds()
	if bounds.Dx() != mandel.Width || bounds.Dy() != mandel.Height {
		t.Fatalf("image size %dx%d", bounds.Dx(), bounds.Dy())
	}

	want := palette.Viridis(0)
	if got := img.RGBAAt(0, 0); got != want {
		t.Errorf("pixel (0,0): got %+v, want %+v", got, want)
	}
}

func TestWritePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frame.png")

	if err := WritePNG(path, testField(), palette.Viridis); err != nil {
		t.Fatalf("write: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if img.Bounds().Dx() != mandel.Width {
		t.Errorf("decoded width %d", img.Bounds().Dx())
	}
}

func TestWritePNGRejectsBadField(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.png")
	if err := WritePNG(path, make(mandel.Field, 10), palette.Viridis); err == nil {
		t.Error("expected error for truncated field")
	}
}
