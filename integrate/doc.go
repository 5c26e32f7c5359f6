// Package integrate approximates definite integrals of real functions with
// composite adaptive Simpson quadrature.
//
// Each subinterval [a, b] is estimated twice: once with Simpson's rule on the
// whole interval and once as the sum of Simpson's rule on its two halves. When
// the two estimates differ by at most 15·ε the refined estimate, corrected by
// one Richardson extrapolation step, is accepted. Otherwise both halves are
// refined independently with tolerance ε/2. Sample values computed by a parent
// are handed to its children, so every refinement costs two new evaluations.
//
// # Bounds
//
// Bounds may be given in either order: integrating from b to a returns exactly
// the negation of integrating from a to b. An empty interval (a == b) yields 0
// without evaluating f.
//
// # Recursion guard
//
// The error test alone does not terminate for integrands that are singular or
// discontinuous inside the interval, nor for tolerances below the float64
// rounding error of the integral. A subinterval therefore stops refining when
// any of the following holds, and its local extrapolated estimate is used as
// is:
//
//   - its depth reached the configured maximum (WithMaxDepth, default 50);
//   - its width is at or below the configured minimum (WithMinWidth, default
//     disabled);
//   - its quarter points can no longer be separated in float64;
//   - the difference between its two estimates is within 64 ulps of its width
//     times the mean magnitude of f (over the subinterval or over [a, b],
//     whichever is larger), so halving the tolerance cannot make it pass;
//   - splitting it would exceed the evaluation budget (WithMaxEvaluations,
//     default 10,000,000 calls per integral).
//
// The depth limit bounds the stack. The budget bounds total work: in the
// sequential mode the left half may spend whatever the right half will not
// need, and forked halves each receive half of what remains.
//
// Subintervals stopped this way are counted in Result.Bounded and a single
// ConvergenceWarning per call is raised through errors.Warn.
//
// # Non-finite values
//
// f is assumed to be finite on [a, b]. If it is not, the non-finite value
// propagates into the result. A NaN error estimate is accepted immediately so
// such calls return quickly instead of exhausting the recursion guard.
//
// # Concurrency
//
// Left and right halves are independent. WithParallelDepth(d) forks the two
// halves onto separate goroutines for the first d levels. The splitting and
// summation order are unchanged, so parallel and sequential runs return
// bit-identical results as long as the evaluation budget is not reached. f
// must be safe for concurrent use in that mode.
package integrate
