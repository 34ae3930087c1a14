// Package director sequences the autonomous zoom: dive toward the most
// interesting structure until double precision runs out, zoom back to the
// wide view while the next destination is searched in the background, pan
// over, repeat.
//
// The cycle is a four-phase machine (StartZooming, ZoomingIn, ZoomingOut,
// Panning) advanced once per rendered frame. Radius changes are geometric in
// elapsed time, so the apparent zoom speed does not depend on the frame rate.
package director
