package mandel

import (
	"math"
	"testing"
)

func TestGenerateDimensions(t *testing.T) {
	v := Viewport{Center: Point{Re: -0.5, Im: 0.0}, Radius: 1.2}
	field := Generate(v)

	if len(field) != Width*Height {
		t.Fatalf("field length: got %d, want %d", len(field), Width*Height)
	}
	for i, val := range field {
		if val > MaxIter {
			t.Fatalf("field[%d] = %d exceeds MaxIter", i, val)
		}
	}
}

// The classic full view: the pixel mapping to the complex origin lies inside
// the main cardioid and must report MaxIter.
func TestGenerateClassicView(t *testing.T) {
	v := Viewport{Center: Point{Re: -1.0, Im: 0.0}, Radius: 2.0}
	field := Generate(v)

	// Origin is one radius-step stretch to the right of the center.
	xOffset := int(math.Round(-v.Center.Re / v.Step()))
	idx := (Height/2)*Width + Width/2 + xOffset

	if field[idx] != MaxIter {
		t.Errorf("pixel at complex origin: got %d, want %d", field[idx], MaxIter)
	}
}

func TestGenerateMatchesEscapeTime(t *testing.T) {
	v := Viewport{Center: Point{Re: -0.75, Im: 0.1}, Radius: 0.5}
	field := Generate(v)
	step := v.Step()

	// Spot-check a scattering of pixels against the scalar kernel.
	for _, idx := range []int{0, 9973, Width*Height/2 + 31, Width*Height - 1} {
		xPos := idx%Width - Width/2
		yPos := idx/Width - Height/2
		c := Point{
			Re: v.Center.Re + float64(xPos)*step,
			Im: v.Center.Im + float64(yPos)*step,
		}
		if field[idx] != EscapeTime(c) {
			t.Errorf("field[%d] = %d, scalar kernel gives %d", idx, field[idx], EscapeTime(c))
		}
	}
}

func BenchmarkGenerate(b *testing.B) {
	v := Viewport{Center: Point{Re: -0.75, Im: 0.1}, Radius: 0.01}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Generate(v)
	}
}
