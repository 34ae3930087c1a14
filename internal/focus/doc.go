// Package focus scores the visual interest of iteration fields and hunts for
// the next zoom destination.
//
// Interest is windowed variance: a pixel whose neighborhood mixes long and
// short escape times sits on a structural boundary of the set, which is where
// the detail lives. The raw variance is weighted toward the frame center so
// the zoom does not chase detail into a corner.
//
// Search spreads the hunt for a fresh destination over many frames, two
// phases per candidate (compute a small field, then score it), so a frame
// never pays for more than one bulk computation.
package focus
