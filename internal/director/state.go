package director

import "github.com/Carbonfreezer/Mandelbrot-Explorer/internal/mandel"

// State is the active phase of the zoom cycle. Exactly one variant is live at
// a time; transitions build a fresh variant so payloads cannot leak between
// phases.
type State interface {
	// Tag returns a short label for overlays.
	Tag() string

	zoomState()
}

// StartZooming shrinks the radius from the base view with no focus following,
// giving the spring a clean handoff before detail chasing begins.
type StartZooming struct{}

// ZoomingIn is the steady state: shrink, score, follow the focus.
type ZoomingIn struct{}

// ZoomingOut grows the radius back to the base view after precision ran out,
// spending the otherwise idle frames on the next-destination search.
type ZoomingOut struct{}

// Panning glides the center to the chosen destination at fixed radius.
type Panning struct {
	NextCenter mandel.Point
}

func (StartZooming) zoomState() {}
func (ZoomingIn) zoomState()    {}
func (ZoomingOut) zoomState()   {}
func (Panning) zoomState()      {}

func (StartZooming) Tag() string { return "START" }
func (ZoomingIn) Tag() string    { return "IN" }
func (ZoomingOut) Tag() string   { return "OUT" }
func (Panning) Tag() string      { return "PAN" }
