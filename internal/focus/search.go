package focus

import (
	"math/rand"

	"github.com/Carbonfreezer/Mandelbrot-Explorer/internal/mandel"
)

// Rect is an axis-aligned rectangle in the complex plane used for uniform
// sampling.
type Rect struct {
	MinRe, MaxRe float64
	MinIm, MaxIm float64
}

// Contains reports whether p lies inside the rectangle.
func (r Rect) Contains(p mandel.Point) bool {
	return p.Re >= r.MinRe && p.Re <= r.MaxRe && p.Im >= r.MinIm && p.Im <= r.MaxIm
}

func (r Rect) sample(rng *rand.Rand) mandel.Point {
	return mandel.Point{
		Re: r.MinRe + rng.Float64()*(r.MaxRe-r.MinRe),
		Im: r.MinIm + rng.Float64()*(r.MaxIm-r.MinIm),
	}
}

// SearchParams bound the hunt for the next zoom destination.
type SearchParams struct {
	// Rectangle random candidates are drawn from.
	SearchRect Rect
	// Rectangle the immediate fallback start is drawn from on reset.
	FallbackRect Rect
	// Radius of the field computed to evaluate a candidate.
	EvalRadius float64
	// Minimum score a candidate must beat to be adopted.
	MinScore float32
	// Number of candidates evaluated before the search goes idle.
	Budget uint8
	// Half-width of the variance window used for scoring.
	WindowStep int

	// Field generation, injectable for tests. Nil means mandel.Generate.
	Fields func(mandel.Viewport) mandel.Field
}

// DefaultSearchParams mirror the sampling ranges of the classic view: the
// search covers the whole set, the fallback hugs the real-axis spur where
// deep structure is guaranteed.
func DefaultSearchParams() SearchParams {
	return SearchParams{
		SearchRect:   Rect{MinRe: -2.0, MaxRe: 1.0, MinIm: -1.0, MaxIm: 1.0},
		FallbackRect: Rect{MinRe: -2.0, MaxRe: -1.0, MinIm: -0.1, MaxIm: 0.1},
		EvalRadius:   0.1,
		MinScore:     50.0,
		Budget:       10,
		WindowStep:   DefaultWindowStep,
	}
}

// pendingSample is a computed-but-unscored field, carried across frames so
// one improve step never does both halves of the work.
type pendingSample struct {
	field  mandel.Field
	center mandel.Point
}

// Search hunts for a viewport location whose focus score clears a threshold.
// The work is split into single-frame increments; the best candidate so far
// is always a valid destination, even right after a reset.
type Search struct {
	params SearchParams
	rng    *rand.Rand

	best      mandel.Point
	score     float32
	remaining uint8
	pending   *pendingSample
	improved  bool
}

// NewSearch creates a search seeded from rng. The search starts already
// reset, so Best is immediately usable.
func NewSearch(params SearchParams, rng *rand.Rand) *Search {
	if params.Fields == nil {
		params.Fields = mandel.Generate
	}
	s := &Search{params: params, rng: rng}
	s.Reset()
	return s
}

// Best returns the current destination candidate.
func (s *Search) Best() mandel.Point { return s.best }

// BestScore returns the score of the current candidate; right after a reset
// this is the minimum acceptance threshold.
func (s *Search) BestScore() float32 { return s.score }

// Exhausted reports whether the attempt budget has run out.
func (s *Search) Exhausted() bool { return s.remaining == 0 }

// Reset restarts the search: the attempt budget and acceptance threshold are
// reinitialized and a fresh fallback point is drawn from the fallback
// rectangle, so a caller holds a valid destination before any improve step.
func (s *Search) Reset() {
	s.remaining = s.params.Budget
	s.score = s.params.MinScore
	s.best = s.params.FallbackRect.sample(s.rng)
	s.pending = nil
	s.improved = false
}

// TryImprove performs one bounded increment of search work. The two phases
// alternate: first a call samples a random point and computes its field, then
// the next call scores that field and adopts the candidate if it beats the
// best so far. Once the budget is exhausted calls are no-ops.
func (s *Search) TryImprove() {
	if s.remaining == 0 {
		return
	}

	if s.pending != nil {
		s.remaining--
		result := Score(s.pending.field, s.params.WindowStep)
		if result.Score > s.score {
			s.score = result.Score
			s.best = result.AbsoluteIn(mandel.Viewport{
				Center: s.pending.center,
				Radius: s.params.EvalRadius,
			})
			s.improved = true
		}
		s.pending = nil
		return
	}

	candidate := s.params.SearchRect.sample(s.rng)
	field := s.params.Fields(mandel.Viewport{Center: candidate, Radius: s.params.EvalRadius})
	s.pending = &pendingSample{field: field, center: candidate}
}

// WarmStart runs the whole search synchronously. Meant for startup only,
// where stalling is acceptable; afterwards the budget is spent. If no sample
// cleared the threshold the destination falls back to a known-good landmark.
func (s *Search) WarmStart() {
	s.Reset()
	for i := 0; i < 2*int(s.params.Budget); i++ {
		s.TryImprove()
	}
	if !s.improved {
		s.best = mandel.FallbackPoint()
	}
}
