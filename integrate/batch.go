package integrate

import (
	"fmt"
	"time"

	"github.com/YuminosukeSato/scinum/core/parallel"
	"github.com/YuminosukeSato/scinum/pkg/errors"
	"github.com/YuminosukeSato/scinum/pkg/log"
)

// batchInlineThreshold is the interval count at or below which
// IntegrateIntervals stays on the calling goroutine.
const batchInlineThreshold = 4

// Interval is a pair of integration bounds. A may exceed B.
type Interval struct {
	A, B float64
}

// IntegrateIntervals integrates f over each interval with tolerance tol and
// returns the values in input order. Intervals are spread across CPUs, so f
// must be safe for concurrent use when more than a handful are given.
func (s *AdaptiveSimpson) IntegrateIntervals(f Func, tol float64, intervals []Interval) (values []float64, err error) {
	defer errors.Recover(&err, "AdaptiveSimpson.IntegrateIntervals")

	if err := validate("AdaptiveSimpson.IntegrateIntervals", f, tol); err != nil {
		return nil, err
	}
	for i, iv := range intervals {
		if err := validateBounds(iv.A, iv.B); err != nil {
			return nil, errors.Wrapf(err, "interval %d", i)
		}
	}

	start := time.Now()
	results := make([]Result, len(intervals))
	parallel.ParallelizeWithThreshold(len(intervals), batchInlineThreshold, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			results[i] = s.quad(f, tol, intervals[i].A, intervals[i].B)
		}
	})

	values = make([]float64, len(results))
	var total Result
	for i, r := range results {
		values[i] = r.Value
		total.ErrorEstimate += r.ErrorEstimate
		total.Evaluations += r.Evaluations
		total.Intervals += r.Intervals
		total.Bounded += r.Bounded
		if r.Depth > total.Depth {
			total.Depth = r.Depth
		}
	}

	s.logger.Debug("batch quadrature finished",
		log.OperationKey, log.OperationIntegrateIntervals,
		log.AlgorithmKey, log.AlgorithmAdaptiveSimpson,
		log.IntervalCountKey, len(intervals),
		log.ToleranceKey, tol,
		log.EvaluationsKey, total.Evaluations,
		log.BoundedKey, total.Bounded,
		log.DurationMsKey, time.Since(start).Milliseconds(),
	)
	if total.Bounded > 0 {
		s.warnBounded(total, fmt.Sprintf("across %d intervals", len(intervals)))
	}
	return values, nil
}
