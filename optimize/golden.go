// Package optimize provides derivative-free minimization of one-dimensional
// functions.
package optimize

import (
	"fmt"
	"math"

	"github.com/YuminosukeSato/scinum/pkg/errors"
	"github.com/YuminosukeSato/scinum/pkg/log"
)

// DefaultMaxIter bounds GoldenSection unless WithMaxIter is given.
const DefaultMaxIter = 500

// invPhi is 1/φ, the fraction of the bracket kept each iteration.
var invPhi = (math.Sqrt(5) - 1) / 2

// Func is a real function of one real variable.
type Func func(x float64) float64

// Result is the outcome of a minimization.
type Result struct {
	// X is the best point found and F its function value.
	X, F float64

	// Iterations is the number of bracket reductions performed.
	Iterations int

	// Evaluations is the number of calls made to f.
	Evaluations int

	// Converged reports whether the bracket shrank to the requested width.
	Converged bool
}

type settings struct {
	maxIter int
	logger  log.Logger
}

// Option configures GoldenSection.
type Option func(*settings)

// WithMaxIter bounds the number of bracket reductions. Values below 1 are
// ignored.
func WithMaxIter(n int) Option {
	return func(s *settings) {
		if n >= 1 {
			s.maxIter = n
		}
	}
}

// WithLogger sets the logger that receives the per-call summary.
func WithLogger(logger log.Logger) Option {
	return func(s *settings) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// GoldenSection minimizes a unimodal f on the bracket [a, b] (bounds may be
// given in either order) until the bracket is no wider than tol. Each
// iteration keeps one interior point and evaluates f once.
//
// When the iteration limit is reached first, the best point so far is returned
// with Converged set to false and a ConvergenceWarning is raised.
func GoldenSection(f Func, a, b, tol float64, opts ...Option) (res Result, err error) {
	defer errors.Recover(&err, "GoldenSection")

	cfg := settings{maxIter: DefaultMaxIter}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.logger == nil {
		cfg.logger = log.GetLoggerWithName("optimize")
	}

	if f == nil {
		return Result{}, errors.NewValueError("GoldenSection", "objective must not be nil")
	}
	if err := errors.RequirePositive("tolerance", tol); err != nil {
		return Result{}, err
	}
	if err := errors.RequireFinite("a", a); err != nil {
		return Result{}, err
	}
	if err := errors.RequireFinite("b", b); err != nil {
		return Result{}, err
	}

	if a > b {
		a, b = b, a
	}
	if a == b {
		return Result{X: a, F: f(a), Evaluations: 1, Converged: true}, nil
	}

	c := b - invPhi*(b-a)
	d := a + invPhi*(b-a)
	fc, fd := f(c), f(d)
	evals := 2

	iter := 0
	for ; iter < cfg.maxIter && b-a > tol; iter++ {
		if fc < fd {
			b, d, fd = d, c, fc
			c = b - invPhi*(b-a)
			fc = f(c)
		} else {
			a, c, fc = c, d, fd
			d = a + invPhi*(b-a)
			fd = f(d)
		}
		evals++
	}

	res = Result{X: d, F: fd, Iterations: iter, Evaluations: evals, Converged: b-a <= tol}
	if fc < fd {
		res.X, res.F = c, fc
	}

	cfg.logger.Debug("minimization finished",
		log.OperationKey, log.OperationMinimize,
		log.AlgorithmKey, log.AlgorithmGoldenSection,
		log.ToleranceKey, tol,
		log.IterationKey, res.Iterations,
		log.EvaluationsKey, res.Evaluations,
		log.ConvergedKey, res.Converged,
		log.ResultKey, res.X,
	)
	if !res.Converged {
		errors.Warn(errors.NewConvergenceWarning("GoldenSection", iter,
			fmt.Sprintf("bracket [%g, %g] still wider than %g", a, b, tol)))
	}
	return res, nil
}
