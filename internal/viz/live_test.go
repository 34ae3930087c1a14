package viz

import (
	"strings"
	"testing"

	"github.com/Carbonfreezer/Mandelbrot-Explorer/internal/mandel"
)

func TestRenderFieldInsideSetIsBlank(t *testing.T) {
	field := make(mandel.Field, mandel.Width*mandel.Height)
	for i := range field {
		field[i] = mandel.MaxIter
	}

	frame := renderField(field)
	if strings.Trim(frame, " \n") != "" {
		t.Error("fully inside-set field should render blank")
	}

	lines := strings.Split(frame, "\n")
	if len(lines) != canvasRows {
		t.Errorf("row count: got %d, want %d", len(lines), canvasRows)
	}
	for i, line := range lines {
		if len(line) != canvasCols {
			t.Errorf("row %d width: got %d, want %d", i, len(line), canvasCols)
		}
	}
}

func TestRenderFieldUsesDenserGlyphsForHigherCounts(t *testing.T) {
	low := make(mandel.Field, mandel.Width*mandel.Height)
	high := make(mandel.Field, mandel.Width*mandel.Height)
	for i := range low {
		low[i] = 1
		high[i] = mandel.MaxIter - 1
	}

	lowFrame := renderField(low)
	highFrame := renderField(high)

	if strings.IndexByte(ramp, lowFrame[0]) >= strings.IndexByte(ramp, highFrame[0]) {
		t.Errorf("glyph density not monotone: %q vs %q", lowFrame[0], highFrame[0])
	}
}
