package mandel

import (
	"runtime"
	"sync"
)

// Field holds one iteration count per pixel, row-major, length Width*Height.
type Field []uint16

// Generate computes the iteration field for a viewport. The per-pixel work is
// independent, so it is chunked across the available cores; every worker
// writes a disjoint slice of the output and the call returns only once all
// chunks are done.
func Generate(v Viewport) Field {
	field := make(Field, Width*Height)
	step := v.Step()

	workers := runtime.NumCPU()
	chunkSize := (len(field) + workers - 1) / workers

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

			for i := start; i < end; i++ {
				xPos := i%Width - Width/2
				yPos := i/Width - Height/2
				c := Point{
					Re: v.Center.Re + float64(xPos)*step,
					Im: v.Center.Im + float64(yPos)*step,
				}
				field[i] = EscapeTime(c)
			}
		}(w)
	}
	wg.Wait()

	return field
}
