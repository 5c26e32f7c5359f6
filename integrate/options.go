package integrate

import "github.com/YuminosukeSato/scinum/pkg/log"

// Option configures an AdaptiveSimpson.
type Option func(*AdaptiveSimpson)

// WithMaxDepth sets the deepest recursion level a subinterval may reach.
// Values below 1 are ignored.
func WithMaxDepth(depth int) Option {
	return func(s *AdaptiveSimpson) {
		if depth >= 1 {
			s.maxDepth = depth
		}
	}
}

// WithMaxEvaluations bounds the number of integrand calls spent on one
// integral. Subintervals that would exceed it are accepted as they are and
// counted in Result.Bounded. Values below 5 are ignored. IntegrateIntervals
// applies the bound to each interval separately.
func WithMaxEvaluations(n int) Option {
	return func(s *AdaptiveSimpson) {
		if n >= minEvaluations {
			s.maxEvals = n
		}
	}
}

// WithMinWidth stops refinement of subintervals whose width is at or below
// width. Zero disables the check.
func WithMinWidth(width float64) Option {
	return func(s *AdaptiveSimpson) {
		if width >= 0 {
			s.minWidth = width
		}
	}
}

// WithParallelDepth forks the left and right halves of the first depth
// recursion levels onto separate goroutines. Zero keeps evaluation sequential.
func WithParallelDepth(depth int) Option {
	return func(s *AdaptiveSimpson) {
		if depth >= 0 {
			s.parallelDepth = depth
		}
	}
}

// WithLogger sets the logger that receives per-call diagnostics.
func WithLogger(logger log.Logger) Option {
	return func(s *AdaptiveSimpson) {
		if logger != nil {
			s.logger = logger
		}
	}
}
