package integrate

import (
	"fmt"
	"math"
	"time"

	"github.com/YuminosukeSato/scinum/core/parallel"
	"github.com/YuminosukeSato/scinum/pkg/errors"
	"github.com/YuminosukeSato/scinum/pkg/log"
)

const (
	// DefaultMaxDepth is the recursion limit used unless WithMaxDepth is given.
	DefaultMaxDepth = 50

	// DefaultMaxEvaluations bounds the integrand calls of a single integral
	// unless WithMaxEvaluations is given.
	DefaultMaxEvaluations = 10_000_000

	// minEvaluations covers the three root samples and one refinement.
	minEvaluations = 5

	// roundoffUlps scales the float64 noise floor of a refinement: a
	// correction no larger than roundoffUlps·ε·∫|f| over the subinterval is
	// indistinguishable from rounding error.
	roundoffUlps = 64
)

// Func is a real function of one real variable. It must be deterministic and
// free of side effects; it may be called any number of times.
type Func func(x float64) float64

// Result is an integral estimate together with diagnostics about how it was
// obtained.
type Result struct {
	// Value is the estimate of the integral.
	Value float64

	// ErrorEstimate is the sum over accepted subintervals of the magnitude of
	// the Richardson correction. It approximates the absolute error of Value.
	ErrorEstimate float64

	// Evaluations is the number of calls made to the integrand.
	Evaluations int

	// Intervals is the number of accepted leaf subintervals.
	Intervals int

	// Bounded is the number of leaf subintervals accepted by the recursion
	// guard rather than by the error test.
	Bounded int

	// Depth is the deepest recursion level reached; the whole interval is
	// level 0.
	Depth int
}

// AdaptiveSimpson is a configured adaptive Simpson integrator. The zero value
// is not usable; build one with NewAdaptiveSimpson. An AdaptiveSimpson holds no
// per-call state and is safe for concurrent use.
type AdaptiveSimpson struct {
	maxDepth      int
	maxEvals      int
	minWidth      float64
	parallelDepth int
	logger        log.Logger
}

// NewAdaptiveSimpson returns an integrator with the given options applied.
func NewAdaptiveSimpson(opts ...Option) *AdaptiveSimpson {
	s := &AdaptiveSimpson{
		maxDepth: DefaultMaxDepth,
		maxEvals: DefaultMaxEvaluations,
		logger:   log.GetLoggerWithName("integrate"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Simpson integrates f from a to b to within an absolute tolerance tol using
// the default settings.
//
//	v, err := integrate.Simpson(math.Sin, 1e-10, -1, math.Pi)
//	// v ≈ 1.5403023058681398
func Simpson(f Func, tol, a, b float64) (float64, error) {
	return NewAdaptiveSimpson().Integrate(f, tol, a, b)
}

// Integrate returns the estimate of the integral of f from a to b.
func (s *AdaptiveSimpson) Integrate(f Func, tol, a, b float64) (float64, error) {
	res, err := s.Quad(f, tol, a, b)
	if err != nil {
		return 0, err
	}
	return res.Value, nil
}

// Quad integrates f from a to b and reports diagnostics. It fails when f is
// nil, tol is not a positive finite number or a bound is not finite. A panic in
// f is returned as an *errors.PanicError.
func (s *AdaptiveSimpson) Quad(f Func, tol, a, b float64) (res Result, err error) {
	defer errors.Recover(&err, "AdaptiveSimpson.Quad")

	if err := validate("AdaptiveSimpson.Quad", f, tol); err != nil {
		return Result{}, err
	}
	if err := validateBounds(a, b); err != nil {
		return Result{}, err
	}

	start := time.Now()
	res = s.quad(f, tol, a, b)

	s.logger.Debug("quadrature finished",
		log.OperationKey, log.OperationQuad,
		log.AlgorithmKey, log.AlgorithmAdaptiveSimpson,
		log.LowerBoundKey, a,
		log.UpperBoundKey, b,
		log.ToleranceKey, tol,
		log.ResultKey, res.Value,
		log.EvaluationsKey, res.Evaluations,
		log.SubintervalsKey, res.Intervals,
		log.BoundedKey, res.Bounded,
		log.DepthKey, res.Depth,
		log.DurationMsKey, time.Since(start).Milliseconds(),
	)
	if res.Bounded > 0 {
		s.warnBounded(res, fmt.Sprintf("on [%g, %g]", a, b))
	}
	return res, nil
}

func (s *AdaptiveSimpson) warnBounded(res Result, where string) {
	errors.Warn(errors.NewConvergenceWarning("AdaptiveSimpson", res.Depth,
		fmt.Sprintf("%d of %d subintervals %s stopped by the recursion guard (max depth %d, %d evaluations allowed); estimated error %g",
			res.Bounded, res.Intervals, where, s.maxDepth, s.maxEvals, res.ErrorEstimate)))
}

// quad runs the algorithm on validated input.
func (s *AdaptiveSimpson) quad(f Func, tol, a, b float64) Result {
	if a == b {
		return Result{}
	}
	negate := false
	if a > b {
		a, b = b, a
		negate = true
	}

	m := midpoint(a, b)
	root := segment{a: a, m: m, b: b, fa: f(a), fm: f(m), fb: f(b)}
	root.whole = simpsonRule(a, b, root.fa, root.fm, root.fb)

	j := job{f: f, scale: (math.Abs(root.fa) + 4*math.Abs(root.fm) + math.Abs(root.fb)) / 6}
	v, st := s.refine(j, root, tol, 0, s.maxEvals-3)
	st.evals += 3
	if negate {
		v = -v
	}
	return Result{
		Value:         v,
		ErrorEstimate: st.errEst,
		Evaluations:   st.evals,
		Intervals:     st.leaves,
		Bounded:       st.bounded,
		Depth:         st.depth,
	}
}

// segment is a subinterval with its three samples and its whole-interval
// Simpson estimate.
type segment struct {
	a, m, b    float64
	fa, fm, fb float64
	whole      float64
}

// tally accumulates diagnostics up the recursion. Each call returns its own
// tally so no state is shared between forked halves.
type tally struct {
	errEst  float64
	evals   int
	leaves  int
	bounded int
	depth   int
}

func (t *tally) merge(o tally) {
	t.errEst += o.errEst
	t.evals += o.evals
	t.leaves += o.leaves
	t.bounded += o.bounded
	if o.depth > t.depth {
		t.depth = o.depth
	}
}

// job holds what every refinement of one integral shares.
type job struct {
	f Func

	// scale is the mean magnitude of f estimated from the root samples.
	scale float64
}

// refine integrates seg to within eps. budget is the number of evaluations
// this subtree may spend, its own two included; callers pass at least 2.
func (s *AdaptiveSimpson) refine(j job, seg segment, eps float64, depth, budget int) (float64, tally) {
	lm := midpoint(seg.a, seg.m)
	rm := midpoint(seg.m, seg.b)
	flm, frm := j.f(lm), j.f(rm)

	left := simpsonRule(seg.a, seg.m, seg.fa, flm, seg.fm)
	right := simpsonRule(seg.m, seg.b, seg.fm, frm, seg.fb)
	delta := left + right - seg.whole

	st := tally{evals: 2, depth: depth}
	remaining := budget - 2

	// NaN compares false and is accepted here.
	if !(math.Abs(delta) > 15*eps) {
		st.leaves = 1
		st.errEst = math.Abs(delta) / 15
		return left + right + delta/15, st
	}
	if remaining < 4 || s.exhausted(seg, lm, rm, depth) || atRoundoff(seg, flm, frm, delta, j.scale) {
		st.leaves, st.bounded = 1, 1
		st.errEst = math.Abs(delta) / 15
		return left + right + delta/15, st
	}

	lseg := segment{a: seg.a, m: lm, b: seg.m, fa: seg.fa, fm: flm, fb: seg.fm, whole: left}
	rseg := segment{a: seg.m, m: rm, b: seg.b, fa: seg.fm, fm: frm, fb: seg.fb, whole: right}

	var (
		lv, rv float64
		lt, rt tally
	)
	if depth < s.parallelDepth {
		// forked halves split the budget evenly
		lb := remaining / 2
		parallel.Do(
			func() { lv, lt = s.refine(j, lseg, eps/2, depth+1, lb) },
			func() { rv, rt = s.refine(j, rseg, eps/2, depth+1, remaining-lb) },
		)
	} else {
		lv, lt = s.refine(j, lseg, eps/2, depth+1, remaining-2)
		rv, rt = s.refine(j, rseg, eps/2, depth+1, remaining-lt.evals)
	}
	st.merge(lt)
	st.merge(rt)
	return lv + rv, st
}

// exhausted reports whether seg must not be split further.
func (s *AdaptiveSimpson) exhausted(seg segment, lm, rm float64, depth int) bool {
	if depth >= s.maxDepth {
		return true
	}
	if s.minWidth > 0 && seg.b-seg.a <= s.minWidth {
		return true
	}
	return !(seg.a < lm && lm < seg.m && seg.m < rm && rm < seg.b)
}

// atRoundoff reports whether delta is within the float64 noise of seg: a few
// ulps of its width times the larger of the local mean of |f| and scale.
// Halving eps further cannot make such a subinterval pass the error test.
func atRoundoff(seg segment, flm, frm, delta, scale float64) bool {
	local := (math.Abs(seg.fa) + 4*math.Abs(flm) + 2*math.Abs(seg.fm) + 4*math.Abs(frm) + math.Abs(seg.fb)) / 12
	return !(math.Abs(delta) > roundoffUlps*epsilon*(seg.b-seg.a)*math.Max(local, scale))
}

// simpsonRule is Simpson's rule on [a, b] with midpoint sample fm.
func simpsonRule(a, b, fa, fm, fb float64) float64 {
	return (b - a) / 6 * (fa + 4*fm + fb)
}

// epsilon is the float64 machine epsilon, 2^-52.
const epsilon = 0x1p-52

// midpoint avoids the overflow of (a+b)/2 for bounds near ±MaxFloat64.
func midpoint(a, b float64) float64 {
	return 0.5*a + 0.5*b
}

func validate(op string, f Func, tol float64) error {
	if f == nil {
		return errors.NewValueError(op, "integrand must not be nil")
	}
	return errors.RequirePositive("tolerance", tol)
}

func validateBounds(a, b float64) error {
	if err := errors.RequireFinite("a", a); err != nil {
		return err
	}
	return errors.RequireFinite("b", b)
}
