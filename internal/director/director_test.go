package director

import (
	"math"
	"math/rand"
	"testing"

	"github.com/Carbonfreezer/Mandelbrot-Explorer/internal/mandel"
)

// flatProvider returns featureless fields, so any focus score is zero.
func flatProvider(calls *int) FieldProvider {
	return func(mandel.Viewport) mandel.Field {
		*calls++
		field := make(mandel.Field, mandel.Width*mandel.Height)
		for i := range field {
			field[i] = 50
		}
		return field
	}
}

// richProvider returns fields with a strong variance patch just off center,
// so focus scoring always finds something worth following.
func richProvider(calls *int) FieldProvider {
	return func(mandel.Viewport) mandel.Field {
		*calls++
		field := make(mandel.Field, mandel.Width*mandel.Height)
		for i := range field {
			field[i] = 50
		}
		cx, cy := mandel.Width/2+30, mandel.Height/2-20
		for dy := -20; dy <= 20; dy++ {
			for dx := -20; dx <= 20; dx++ {
				if (dx+dy)%2 == 0 {
					field[(cy+dy)*mandel.Width+cx+dx] = mandel.MaxIter
				} else {
					field[(cy+dy)*mandel.Width+cx+dx] = 0
				}
			}
		}
		return field
	}
}

func testParams() Params {
	params := DefaultParams()
	params.Search.Budget = 2
	return params
}

func TestNewStartsAtFallback(t *testing.T) {
	var calls int
	params := testParams()
	d := New(params, flatProvider(&calls), rand.New(rand.NewSource(1)))

	if _, ok := d.State().(StartZooming); !ok {
		t.Fatalf("fresh director should start zooming, got %s", d.State().Tag())
	}
	v := d.Viewport()
	if v.Radius != params.BaseRadius {
		t.Errorf("initial radius: got %g, want %g", v.Radius, params.BaseRadius)
	}
	if !params.Search.FallbackRect.Contains(v.Center) {
		t.Errorf("initial center (%f, %f) outside fallback rectangle", v.Center.Re, v.Center.Im)
	}
}

func TestStartZoomingRadiusDecay(t *testing.T) {
	var calls int
	params := testParams()
	params.BaseRadius = 1.5
	params.RadiusScaling = 0.5
	params.FollowRadius = 0.1
	d := New(params, richProvider(&calls), rand.New(rand.NewSource(2)))

	dt := float32(0.1)
	elapsed := 0.0
	for i := 0; i < 20; i++ {
		d.Advance(dt)
		elapsed += float64(dt)

		want := 1.5 * math.Pow(0.5, elapsed)
		if want <= params.FollowRadius {
			break
		}
		if _, ok := d.State().(StartZooming); !ok {
			t.Fatalf("left StartZooming at radius %g, above follow threshold", d.Viewport().Radius)
		}
		got := d.Viewport().Radius
		if math.Abs(got-want)/want > 1e-9 {
			t.Fatalf("after %gs: radius %g, want %g", elapsed, got, want)
		}
	}
}

func TestStartZoomingHandsOverToFollowing(t *testing.T) {
	var calls int
	params := testParams()
	params.BaseRadius = 1.5
	params.RadiusScaling = 0.5
	params.FollowRadius = 0.1
	d := New(params, richProvider(&calls), rand.New(rand.NewSource(3)))

	for i := 0; i < 100; i++ {
		d.Advance(0.1)
		if _, ok := d.State().(ZoomingIn); ok {
			if d.Viewport().Radius > params.FollowRadius {
				t.Errorf("followed too early, radius %g", d.Viewport().Radius)
			}
			return
		}
	}
	t.Fatal("never reached ZoomingIn")
}

func TestZoomingInFollowsFocus(t *testing.T) {
	var calls int
	params := testParams()
	params.FollowRadius = params.BaseRadius // follow immediately
	d := New(params, richProvider(&calls), rand.New(rand.NewSource(4)))

	before := d.Viewport().Center
	d.Advance(0.05) // leaves StartZooming
	for i := 0; i < 5; i++ {
		d.Advance(0.05)
	}

	moved := d.Viewport().Center.Sub(before).SqMag()
	if moved == 0 {
		t.Error("center never moved toward the focus target")
	}
	// The patch sits right of center, so the camera must drift right.
	if d.Viewport().Center.Re <= before.Re {
		t.Errorf("camera drifted the wrong way: %f -> %f", before.Re, d.Viewport().Center.Re)
	}
}

func TestZoomingInAbandonsBarrenRegion(t *testing.T) {
	var calls int
	params := testParams()
	params.FollowRadius = params.BaseRadius
	d := New(params, flatProvider(&calls), rand.New(rand.NewSource(5)))

	d.Advance(0.05) // StartZooming -> ZoomingIn
	d.Advance(0.05) // flat field scores 0, below AbandonScore
	if _, ok := d.State().(ZoomingOut); !ok {
		t.Fatalf("flat field should trigger zoom out, state is %s", d.State().Tag())
	}
}

func TestZoomingInStopsAtPrecisionLimit(t *testing.T) {
	var calls int
	params := testParams()
	params.FollowRadius = params.BaseRadius
	params.MinRadius = 0.4 // artificially shallow limit
	d := New(params, richProvider(&calls), rand.New(rand.NewSource(6)))

	for i := 0; i < 100; i++ {
		d.Advance(0.1)
		if _, ok := d.State().(ZoomingOut); ok {
			if d.Viewport().Radius >= params.MinRadius {
				t.Errorf("zoomed out before the radius limit: %g", d.Viewport().Radius)
			}
			return
		}
	}
	t.Fatal("never hit the precision limit")
}

func TestZoomOutReachesBaseAndPans(t *testing.T) {
	var calls int
	params := testParams()
	params.FollowRadius = params.BaseRadius
	params.MinRadius = 0.4
	d := New(params, flatProvider(&calls), rand.New(rand.NewSource(7)))

	d.Advance(0.05)
	d.Advance(0.05) // abandoned, now ZoomingOut

	for i := 0; i < 200; i++ {
		d.Advance(0.05)
		if pan, ok := d.State().(Panning); ok {
			if d.Viewport().Radius != params.BaseRadius {
				t.Errorf("pan radius: got %g, want base %g", d.Viewport().Radius, params.BaseRadius)
			}
			// Barren search: destination must be the reset fallback.
			if !params.Search.FallbackRect.Contains(pan.NextCenter) {
				t.Errorf("destination (%f, %f) outside fallback rectangle",
					pan.NextCenter.Re, pan.NextCenter.Im)
			}
			return
		}
	}
	t.Fatal("never reached Panning")
}

func TestPanningSnapsAndRestarts(t *testing.T) {
	var calls int
	params := testParams()
	params.FollowRadius = params.BaseRadius
	d := New(params, flatProvider(&calls), rand.New(rand.NewSource(8)))

	d.Advance(0.05)
	d.Advance(0.05) // ZoomingOut
	var target mandel.Point
	for i := 0; i < 400; i++ {
		d.Advance(0.05)
		if pan, ok := d.State().(Panning); ok {
			target = pan.NextCenter
			break
		}
	}
	if _, ok := d.State().(Panning); !ok {
		t.Fatal("never reached Panning")
	}

	for i := 0; i < 2000; i++ {
		d.Advance(0.05)
		if _, ok := d.State().(StartZooming); ok {
			if d.Viewport().Center != target {
				t.Errorf("pan did not snap exactly: center (%g, %g), target (%g, %g)",
					d.Viewport().Center.Re, d.Viewport().Center.Im, target.Re, target.Im)
			}
			return
		}
	}
	t.Fatal("pan never completed")
}

func TestAdvanceReturnsFieldEveryFrame(t *testing.T) {
	var calls int
	d := New(testParams(), richProvider(&calls), rand.New(rand.NewSource(9)))

	for i := 0; i < 5; i++ {
		field := d.Advance(0.02)
		if len(field) != mandel.Width*mandel.Height {
			t.Fatalf("frame %d: field length %d", i, len(field))
		}
	}
}

func TestRadiusScalingFrameRateIndependent(t *testing.T) {
	var callsA, callsB int
	params := testParams()
	params.BaseRadius = 1.5
	params.FollowRadius = 0.01

	a := New(params, richProvider(&callsA), rand.New(rand.NewSource(10)))
	b := New(params, richProvider(&callsB), rand.New(rand.NewSource(10)))

	a.Advance(0.2)
	b.Advance(0.1)
	b.Advance(0.1)

	ra, rb := a.Viewport().Radius, b.Viewport().Radius
	if math.Abs(ra-rb)/ra > 1e-9 {
		t.Errorf("same elapsed time, different radii: %g vs %g", ra, rb)
	}
}
