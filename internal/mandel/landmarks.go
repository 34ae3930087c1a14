package mandel

// Landmark is a named point of the set that is known to stay visually rich
// under deep zoom. Used as deterministic fallbacks when the random search
// comes up empty.
type Landmark struct {
	Name  string
	Point Point
}

var Landmarks = []Landmark{
	// Feigenbaum point, the accumulation point of the period-doubling cascade
	{Name: "feigenbaum", Point: Point{Re: -1.4, Im: 0.0}},

	// Seahorse valley, dense filaments between the cardioid and the main bulb
	{Name: "seahorse_valley", Point: Point{Re: -0.75, Im: 0.1}},

	// Elephant valley, trunk-like tendrils on the cardioid's east side
	{Name: "elephant_valley", Point: Point{Re: -1.8, Im: -0.06}},

	// Small Mandelbrot copy with tight spiral arms
	{Name: "spiral_minibrot", Point: Point{Re: -0.74275, Im: 0.13175}},

	// Threefold symmetric spiral structure
	{Name: "triple_spiral", Point: Point{Re: -0.7465, Im: 0.0965}},
}

// FallbackPoint is the landmark used when the starting-point search exhausts
// its budget without an acceptable candidate.
func FallbackPoint() Point {
	return Landmarks[0].Point
}
