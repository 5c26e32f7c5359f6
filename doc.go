// Package scinum provides numerical routines for Go: adaptive quadrature of
// one-dimensional integrals and derivative-free minimization, with the
// structured errors and logging conventions shared across its packages.
//
// # Installation
//
//	go get github.com/YuminosukeSato/scinum
//
// # Quick Start
//
//	package main
//
//	import (
//	    "fmt"
//	    "log"
//	    "math"
//
//	    "github.com/YuminosukeSato/scinum/integrate"
//	)
//
//	func main() {
//	    v, err := integrate.Simpson(math.Sin, 1e-10, 0, math.Pi)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Printf("%.6f\n", v) // 2.000000
//	}
//
// Use integrate.NewAdaptiveSimpson for a configured integrator and Quad for
// the accounting (evaluations, accepted subintervals, error estimate):
//
//	s := integrate.NewAdaptiveSimpson(
//	    integrate.WithMaxDepth(30),
//	    integrate.WithParallelDepth(4), // fork the first four levels
//	)
//	res, err := s.Quad(f, 1e-9, a, b)
//
// # Packages
//
//   - integrate: adaptive Simpson quadrature (Simpson, Quad, IntegrateIntervals)
//   - optimize: golden-section minimization on a bracket
//   - core/parallel: fork/join helpers used by the batch and parallel paths
//   - pkg/errors: structured errors, warnings and panic recovery
//   - pkg/log: logger interface with zerolog and slog backends
//
// # Errors and Warnings
//
// Invalid arguments are reported as *errors.ValidationError or
// *errors.ValueError. A panic raised by a user function is returned as
// *errors.PanicError. When a recursion guard stops refinement before the
// tolerance is met, the result is still returned and an
// *errors.ConvergenceWarning is delivered through errors.Warn, which the
// pkg/log package routes to the active logger.
//
// # License
//
// scinum is released under the MIT License.
package scinum
