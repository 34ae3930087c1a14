package focus

import (
	"runtime"
	"sync"

	"github.com/Carbonfreezer/Mandelbrot-Explorer/internal/mandel"
)

// DefaultWindowStep is the half-width of the variance window; the window side
// is 2*DefaultWindowStep+1 pixels.
const DefaultWindowStep = 5

// maxDistSq is the squared pixel distance from the frame center to a corner,
// the normalizer for the center bias.
const maxDistSq = float32((mandel.Width/2)*(mandel.Width/2) + (mandel.Height/2)*(mandel.Height/2))

// Result locates the most interesting window of a field: pixel offsets from
// the frame center plus the bias-adjusted variance score. Recomputed from
// scratch every frame.
type Result struct {
	XOffset float32
	YOffset float32
	Score   float32
}

// AbsoluteIn converts the pixel offsets into a plane coordinate under the
// viewport that produced the scored field.
func (r Result) AbsoluteIn(v mandel.Viewport) mandel.Point {
	return v.At(float64(r.XOffset), float64(r.YOffset))
}

// Score scans the field for the pixel whose neighborhood variance, scaled by
// a center bias in [0.5, 1], is the highest. Pixels within windowStep of any
// border are excluded. Ties go to the lowest linear index; the scan is
// chunked across cores with one local winner per worker, merged in index
// order so the result is deterministic.
func Score(field mandel.Field, windowStep int) Result {
	workers := runtime.NumCPU()
	chunkSize := (len(field) + workers - 1) / workers

	bestIdx := make([]int, workers)
	bestScore := make([]float32, workers)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()

			start := worker * chunkSize
			end := start + chunkSize
			if end > len(field) {
				end = len(field)
			}

			localIdx := -1
			var localScore float32

			for i := start; i < end; i++ {
				x := i % mandel.Width
				y := i / mandel.Width
				if x < windowStep || y < windowStep ||
					x >= mandel.Width-windowStep || y >= mandel.Height-windowStep {
					continue
				}

				score := scoreAt(field, x, y, windowStep)
				if localIdx < 0 || score > localScore {
					localScore = score
					localIdx = i
				}
			}

			bestIdx[worker] = localIdx
			bestScore[worker] = localScore
		}(w)
	}
	wg.Wait()

	winIdx := -1
	var winScore float32
	for w := 0; w < workers; w++ {
		if bestIdx[w] < 0 {
			continue
		}
		if winIdx < 0 || bestScore[w] > winScore {
			winScore = bestScore[w]
			winIdx = bestIdx[w]
		}
	}
	if winIdx < 0 {
		// Degenerate window step, wider than the grid itself. Report the
		// frame center with a zero score.
		winIdx = (mandel.Height/2)*mandel.Width + mandel.Width/2
		winScore = 0
	}

	return Result{
		XOffset: float32(winIdx%mandel.Width - mandel.Width/2),
		YOffset: float32(winIdx/mandel.Width - mandel.Height/2),
		Score:   winScore,
	}
}

// scoreAt computes the windowed variance times the center bias for one
// interior pixel.
func scoreAt(field mandel.Field, x, y, windowStep int) float32 {
	var sum, sqSum float32
	for dy := -windowStep; dy <= windowStep; dy++ {
		row := (y + dy) * mandel.Width
		for dx := -windowStep; dx <= windowStep; dx++ {
			v := float32(field[row+x+dx])
			sum += v
			sqSum += v * v
		}
	}

	side := 2*windowStep + 1
	samples := float32(side * side)
	mean := sum / samples
	variance := sqSum/samples - mean*mean

	fx := float32(x - mandel.Width/2)
	fy := float32(y - mandel.Height/2)
	centerBias := 1 - 0.5*(fx*fx+fy*fy)/maxDistSq

	return variance * centerBias
}
