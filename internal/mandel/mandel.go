package mandel

// MaxIter is the iteration cap for the escape-time computation. A pixel that
// reaches it is treated as inside the set.
const MaxIter uint16 = 100

// Point is a coordinate in the complex plane, kept as explicit real and
// imaginary parts in double precision.
type Point struct {
	Re float64
	Im float64
}

func NewPoint(re, im float64) Point {
	return Point{Re: re, Im: im}
}

func (p Point) Add(other Point) Point {
	return Point{Re: p.Re + other.Re, Im: p.Im + other.Im}
}

func (p Point) Sub(other Point) Point {
	return Point{Re: p.Re - other.Re, Im: p.Im - other.Im}
}

// SqMag returns the squared magnitude, avoiding the square root.
func (p Point) SqMag() float64 {
	return p.Re*p.Re + p.Im*p.Im
}

// EscapeTime returns the number of iterations z←z²+c (z₀=0) survives before
// the squared magnitude exceeds the bailout value 4, capped at MaxIter.
func EscapeTime(c Point) uint16 {
	var zr, zi float64
	var iter uint16
	for iter < MaxIter {
		sqr := zr * zr
		sqi := zi * zi
		if sqr+sqi >= 4.0 {
			break
		}
		zr, zi = sqr-sqi+c.Re, 2.0*zr*zi+c.Im
		iter++
	}
	return iter
}
