package director

import (
	"math"
	"math/rand"

	"github.com/Carbonfreezer/Mandelbrot-Explorer/internal/focus"
	"github.com/Carbonfreezer/Mandelbrot-Explorer/internal/mandel"
)

// FieldProvider supplies the iteration field for a viewport. Injected so the
// director owns no rendering concern and tests can stub the expensive part.
type FieldProvider func(mandel.Viewport) mandel.Field

// Params are the tunables of the zoom cycle. Zero values are not usable; take
// DefaultParams as the base.
type Params struct {
	// BaseRadius is the wide view: the starting radius, the zoom-out target
	// and the radius held while panning.
	BaseRadius float64
	// FollowRadius is where StartZooming hands over to focus following.
	FollowRadius float64
	// MinRadius is the deepest zoom before double precision pixelates; the
	// trigger for moving on.
	MinRadius float64
	// RadiusScaling is the per-second radius factor while zooming in.
	RadiusScaling float64
	// ZoomOutSpeed multiplies the zoom rate on the way back out.
	ZoomOutSpeed float64
	// FocusSmoothTime and PanSmoothTime are the spring smooth times for
	// following a focus target and for panning between destinations.
	FocusSmoothTime float64
	PanSmoothTime   float64
	// PanCompleteThreshold is the plane distance under which a pan snaps to
	// its destination.
	PanCompleteThreshold float64
	// AbandonScore ends a dive early when the focus score falls below it, so
	// the camera does not push into a featureless region.
	AbandonScore float32
	// WindowStep is the variance window half-width used for focus scoring.
	WindowStep int
	// Search bounds the hunt for the next destination.
	Search focus.SearchParams
}

func DefaultParams() Params {
	return Params{
		BaseRadius:           0.5,
		FollowRadius:         0.1,
		MinRadius:            1e-13,
		RadiusScaling:        0.5,
		ZoomOutSpeed:         8.0,
		FocusSmoothTime:      0.3,
		PanSmoothTime:        0.5,
		PanCompleteThreshold: 0.001,
		AbandonScore:         150.0,
		WindowStep:           focus.DefaultWindowStep,
		Search:               focus.DefaultSearchParams(),
	}
}

// Director owns the zoom cycle: the current viewport, the spring state of the
// camera center, the destination search and the phase machine. All mutation
// happens inside Advance, once per frame, on the caller's goroutine.
type Director struct {
	params Params
	fields FieldProvider

	viewport mandel.Viewport
	velocity mandel.Velocity
	search   *focus.Search
	state    State

	lastFocus focus.Result
}

// New builds a director at the base radius. The destination search starts
// reset, so the initial center is its fallback point; call WarmStart to spend
// the search budget up front for a stronger opening location.
func New(params Params, fields FieldProvider, rng *rand.Rand) *Director {
	if fields == nil {
		fields = mandel.Generate
	}
	if params.Search.Fields == nil {
		params.Search.Fields = fields
	}

	search := focus.NewSearch(params.Search, rng)
	return &Director{
		params:   params,
		fields:   fields,
		search:   search,
		state:    StartZooming{},
		viewport: mandel.Viewport{Center: search.Best(), Radius: params.BaseRadius},
	}
}

// WarmStart runs the destination search synchronously and jumps straight to
// the winner. Only meant before the frame loop starts.
func (d *Director) WarmStart() {
	d.search.WarmStart()
	d.viewport.Center = d.search.Best()
	d.velocity.Zero()
	d.state = StartZooming{}
	d.viewport.Radius = d.params.BaseRadius
}

func (d *Director) State() State { return d.state }

func (d *Director) Viewport() mandel.Viewport { return d.viewport }

func (d *Director) LastFocus() focus.Result { return d.lastFocus }

// Advance runs one frame of the zoom cycle and returns the iteration field
// for the frame's viewport. deltaTime is wall-clock seconds since the last
// frame; radius scaling uses base^(rate*dt) so the motion is frame-rate
// independent.
func (d *Director) Advance(deltaTime float32) mandel.Field {
	dt := float64(deltaTime)

	switch state := d.state.(type) {
	case StartZooming:
		d.viewport.Radius *= math.Pow(d.params.RadiusScaling, dt)
		if d.viewport.Radius <= d.params.FollowRadius {
			d.state = ZoomingIn{}
		}
		return d.fields(d.viewport)

	case ZoomingIn:
		d.viewport.Radius *= math.Pow(d.params.RadiusScaling, dt)

		field := d.fields(d.viewport)
		result := focus.Score(field, d.params.WindowStep)
		d.lastFocus = result

		target := result.AbsoluteIn(d.viewport)
		d.viewport.Center = d.viewport.Center.SmoothDampTo(
			target, &d.velocity, d.params.FocusSmoothTime, dt)

		if d.viewport.Radius < d.params.MinRadius || result.Score < d.params.AbandonScore {
			d.velocity.Zero()
			d.search.Reset()
			d.state = ZoomingOut{}
		}
		return field

	case ZoomingOut:
		d.search.TryImprove()

		d.viewport.Radius *= math.Pow(d.params.RadiusScaling, -dt*d.params.ZoomOutSpeed)
		if d.viewport.Radius >= d.params.BaseRadius {
			d.viewport.Radius = d.params.BaseRadius
			d.state = Panning{NextCenter: d.search.Best()}
		}
		return d.fields(d.viewport)

	case Panning:
		d.viewport.Center = d.viewport.Center.SmoothDampTo(
			state.NextCenter, &d.velocity, d.params.PanSmoothTime, dt)

		distSq := d.viewport.Center.Sub(state.NextCenter).SqMag()
		threshold := d.params.PanCompleteThreshold
		if distSq < threshold*threshold {
			d.viewport.Center = state.NextCenter
			d.velocity.Zero()
			d.state = StartZooming{}
		}
		return d.fields(d.viewport)
	}

	return d.fields(d.viewport)
}
