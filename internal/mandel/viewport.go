package mandel

// Fixed pixel grid the complex plane is mapped onto.
const (
	Width  = 1280
	Height = 720
)

// Viewport is the region of the complex plane currently mapped onto the pixel
// grid. Radius is the vertical half-extent; the horizontal extent follows
// from the aspect ratio. Radius must be positive.
type Viewport struct {
	Center Point
	Radius float64
}

// Step returns the plane distance covered by one pixel.
func (v Viewport) Step() float64 {
	return v.Radius / (float64(Height) * 0.5)
}

// At returns the plane coordinate of the pixel at the given offsets from the
// image center.
func (v Viewport) At(xOffset, yOffset float64) Point {
	step := v.Step()
	return Point{
		Re: v.Center.Re + xOffset*step,
		Im: v.Center.Im + yOffset*step,
	}
}
