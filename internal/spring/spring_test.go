package spring

import (
	"math"
	"testing"
)

func TestSmoothDampConverges(t *testing.T) {
	current := 0.0
	target := 10.0
	velocity := 0.0

	for i := 0; i < 1000; i++ {
		current = SmoothDamp(current, target, &velocity, 0.5, 0.016)
	}

	if math.Abs(current-target) > 1e-6 {
		t.Errorf("did not converge: got %f, want %f", current, target)
	}
}

func TestSmoothDampNeverOvershoots(t *testing.T) {
	current := 0.0
	target := 1.0
	velocity := 0.0

	for i := 0; i < 500; i++ {
		current = SmoothDamp(current, target, &velocity, 0.1, 0.016)
		if current > target {
			t.Fatalf("overshoot at step %d: %g > %g", i, current, target)
		}
	}
}

func TestSmoothDampNeverOvershootsDownward(t *testing.T) {
	current := 5.0
	target := -3.0
	velocity := 0.0

	for i := 0; i < 500; i++ {
		current = SmoothDamp(current, target, &velocity, 0.2, 0.02)
		if current < target {
			t.Fatalf("overshoot at step %d: %g < %g", i, current, target)
		}
	}
}

func TestSmoothDampIdempotentAtTarget(t *testing.T) {
	current := 3.5
	velocity := 0.0

	for i := 0; i < 10; i++ {
		current = SmoothDamp(current, 3.5, &velocity, 0.5, 0.016)
		if current != 3.5 {
			t.Fatalf("moved away from target: %g", current)
		}
		if velocity != 0 {
			t.Fatalf("velocity left zero: %g", velocity)
		}
	}
}

func TestSmoothDampZeroSmoothTime(t *testing.T) {
	current := 0.0
	velocity := 0.0

	// A zero smooth time must clamp to the floor instead of dividing by zero.
	got := SmoothDamp(current, 1.0, &velocity, 0.0, 0.016)
	if math.IsNaN(got) || math.IsInf(got, 0) {
		t.Fatalf("degenerate smooth time produced %f", got)
	}
	if got > 1.0 || got < 0.0 {
		t.Errorf("value left [current, target]: %f", got)
	}
}

func TestSmoothDampZeroDeltaTime(t *testing.T) {
	current := 2.0
	velocity := 1.0

	got := SmoothDamp(current, 5.0, &velocity, 0.5, 0.0)
	if math.Abs(got-current) > 1e-12 {
		t.Errorf("zero delta time moved the value: %f", got)
	}
}

func TestSmoothDampFloat32(t *testing.T) {
	var current, velocity float32
	target := float32(4.0)

	for i := 0; i < 1000; i++ {
		current = SmoothDamp(current, target, &velocity, 0.3, 0.016)
	}
	if math.Abs(float64(current-target)) > 1e-3 {
		t.Errorf("float32 variant did not converge: got %f", current)
	}
}

func TestSmoothDampFasterWithShorterSmoothTime(t *testing.T) {
	slowCur, fastCur := 0.0, 0.0
	slowVel, fastVel := 0.0, 0.0
	target := 1.0

	for i := 0; i < 20; i++ {
		slowCur = SmoothDamp(slowCur, target, &slowVel, 1.0, 0.016)
		fastCur = SmoothDamp(fastCur, target, &fastVel, 0.1, 0.016)
	}

	if fastCur <= slowCur {
		t.Errorf("shorter smooth time should converge faster: fast %f, slow %f", fastCur, slowCur)
	}
}
