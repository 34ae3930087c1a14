// Package palette maps iteration fields to pixel colors. Pixels that never
// escaped are always black; everything else is looked up in a precomputed
// table over the iteration range.
package palette

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/Carbonfreezer/Mandelbrot-Explorer/internal/mandel"
)

// Mapper turns one iteration count into a color.
type Mapper func(iter uint16) color.RGBA

// Reference control points from matplotlib's viridis colormap, every 16th
// entry plus the endpoint.
var viridisPoints = [17][3]float64{
	{0.267004, 0.004874, 0.329415},
	{0.282327, 0.140926, 0.457517},
	{0.253935, 0.265254, 0.529983},
	{0.206756, 0.371758, 0.553117},
	{0.163625, 0.471133, 0.558148},
	{0.127568, 0.566949, 0.550556},
	{0.134692, 0.658636, 0.517649},
	{0.220057, 0.743517, 0.456192},
	{0.364929, 0.815712, 0.367757},
	{0.525776, 0.870588, 0.271225},
	{0.692840, 0.907950, 0.168856},
	{0.845561, 0.926419, 0.094695},
	{0.964394, 0.927318, 0.104071},
	{0.993248, 0.906157, 0.143936},
	{0.987053, 0.862323, 0.196354},
	{0.974417, 0.813768, 0.247040},
	{0.993248, 0.906157, 0.143936},
}

const (
	// Full hue cycles across the iteration range for the cyclic scheme.
	hueCycles = 10.0
	// Saturation and value used for the cyclic scheme.
	hsvSaturation = 0.8
	hsvValue      = 0.8
)

var (
	viridisTable = buildViridisTable()
	hsvTable     = buildHSVTable()
)

func buildViridisTable() [mandel.MaxIter + 1]color.RGBA {
	var table [mandel.MaxIter + 1]color.RGBA
	scaling := float64(len(viridisPoints)-1) / float64(mandel.MaxIter)

	for iter := uint16(0); iter < mandel.MaxIter; iter++ {
		base := float64(iter) * scaling
		idx := int(base)
		alpha := base - float64(idx)

		lo := viridisPoints[idx]
		hi := viridisPoints[idx+1]
		table[iter] = color.RGBA{
			R: uint8((lo[0]*(1-alpha) + hi[0]*alpha) * 255),
			G: uint8((lo[1]*(1-alpha) + hi[1]*alpha) * 255),
			B: uint8((lo[2]*(1-alpha) + hi[2]*alpha) * 255),
			A: 255,
		}
	}
	table[mandel.MaxIter] = color.RGBA{A: 255}
	return table
}

func buildHSVTable() [mandel.MaxIter + 1]color.RGBA {
	var table [mandel.MaxIter + 1]color.RGBA

	for iter := uint16(0); iter < mandel.MaxIter; iter++ {
		hue := float64(iter) * hueCycles / float64(mandel.MaxIter)
		hue -= float64(int(hue)) // keep the fractional cycle
		r, g, b := colorful.Hsv(hue*360, hsvSaturation, hsvValue).RGB255()
		table[iter] = color.RGBA{R: r, G: g, B: b, A: 255}
	}
	table[mandel.MaxIter] = color.RGBA{A: 255}
	return table
}

// Viridis is the perceptually uniform default scheme.
func Viridis(iter uint16) color.RGBA {
	if iter > mandel.MaxIter {
		iter = mandel.MaxIter
	}
	return viridisTable[iter]
}

// CyclicHSV cycles the hue several times over the iteration range, giving the
// classic psychedelic banding.
func CyclicHSV(iter uint16) color.RGBA {
	if iter > mandel.MaxIter {
		iter = mandel.MaxIter
	}
	return hsvTable[iter]
}

// ByName resolves a scheme name from configuration; unknown names fall back
// to viridis.
func ByName(name string) Mapper {
	switch name {
	case "hsv", "rainbow":
		return CyclicHSV
	default:
		return Viridis
	}
}

// Map colors a whole field.
func Map(field mandel.Field, mapper Mapper) []color.RGBA {
	colors := make([]color.RGBA, len(field))
	for i, iter := range field {
		colors[i] = mapper(iter)
	}
	return colors
}
