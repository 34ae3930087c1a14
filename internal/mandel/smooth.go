package mandel

import "github.com/Carbonfreezer/Mandelbrot-Explorer/internal/spring"

// Velocity carries the per-axis spring velocities for a smoothed Point. Reset
// it to zero whenever a new target is adopted.
type Velocity struct {
	Re float64
	Im float64
}

func (v *Velocity) Zero() {
	v.Re = 0
	v.Im = 0
}

// SmoothDampTo moves p toward target on a critically damped spring, one axis
// at a time, and returns the new position.
func (p Point) SmoothDampTo(target Point, vel *Velocity, smoothTime, deltaTime float64) Point {
	return Point{
		Re: spring.SmoothDamp(p.Re, target.Re, &vel.Re, smoothTime, deltaTime),
		Im: spring.SmoothDamp(p.Im, target.Im, &vel.Im, smoothTime, deltaTime),
	}
}
