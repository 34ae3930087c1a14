// Package mandel holds the escape-time core: the per-coordinate Mandelbrot
// iteration, the viewport mapping between the pixel grid and the complex
// plane, and the parallel generation of full iteration fields.
//
// A Field is the raw product every other package consumes:
//
//	field := mandel.Generate(mandel.Viewport{Center: mandel.NewPoint(-1, 0), Radius: 2})
//
// All arithmetic is fixed double precision; below a radius of roughly 1e-13
// the pixel step falls under the representable resolution, which is the
// signal the zoom director uses to move on to a new location.
package mandel
