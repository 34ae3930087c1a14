// Package spring implements critically damped smoothing toward a target
// value, the motion model behind both the focus following and the panning
// between zoom destinations.
package spring

import (
	"math"

	"golang.org/x/exp/constraints"
)

// minSmoothTime is the floor applied to smoothTime so the angular frequency
// 2/smoothTime stays finite.
const minSmoothTime = 1e-4

// SmoothDamp advances current toward target on a critically damped spring and
// updates velocity in place. smoothTime is roughly the time to cover 90% of
// the remaining distance; deltaTime is the elapsed frame time. The analytic
// update cannot oscillate, but floating-point residue could still carry the
// value past the target, so any crossing snaps exactly onto the target and
// zeroes the velocity.
func SmoothDamp[T constraints.Float](current, target T, velocity *T, smoothTime, deltaTime T) T {
	if smoothTime < minSmoothTime {
		smoothTime = minSmoothTime
	}

	omega := 2 / smoothTime
	exp := T(math.Exp(float64(-omega * deltaTime)))
	change := current - target

	temp := (*velocity + omega*change) * deltaTime
	*velocity = (*velocity - omega*temp) * exp

	output := target + (change+temp)*exp

	if (target-current > 0) == (output > target) {
		output = target
		*velocity = 0
	}

	return output
}
