// Standard attribute keys for numerical operations. Keys are dotted so log
// pipelines can group them ("numeric.*", "quad.*", "perf.*").

package log

// Operation context.
const (
	// ComponentKey names the package emitting the record.
	// Examples: "integrate", "optimize"
	ComponentKey = "numeric.component"

	// OperationKey names the public operation.
	// Standard values: OperationIntegrate, OperationQuad, OperationMinimize
	OperationKey = "numeric.operation"

	// AlgorithmKey names the numerical method.
	// Examples: "adaptive_simpson", "golden_section"
	AlgorithmKey = "numeric.algorithm"
)

// Problem description.
const (
	// LowerBoundKey and UpperBoundKey describe the interval as given by the
	// caller, before any reordering.
	LowerBoundKey = "interval.lower"
	UpperBoundKey = "interval.upper"

	// ToleranceKey is the absolute error tolerance requested.
	ToleranceKey = "numeric.tolerance"

	// IntervalCountKey is the number of intervals in a batch call.
	IntervalCountKey = "interval.count"
)

// Quadrature diagnostics.
const (
	// EvaluationsKey is the number of integrand or objective evaluations.
	EvaluationsKey = "quad.evaluations"

	// SubintervalsKey is the number of accepted leaf subintervals.
	SubintervalsKey = "quad.subintervals"

	// BoundedKey counts subintervals accepted by the recursion guard instead
	// of the error test.
	BoundedKey = "quad.bounded"

	// DepthKey is the deepest recursion level reached.
	DepthKey = "quad.depth"

	// MaxDepthKey is the configured recursion limit.
	MaxDepthKey = "quad.max_depth"

	// ResultKey is the computed value.
	ResultKey = "numeric.result"
)

// Iterative methods.
const (
	IterationKey = "numeric.iteration"
	ConvergedKey = "numeric.converged"
)

// Performance.
const (
	DurationMsKey = "perf.duration_ms"
	WorkersKey    = "perf.workers"
)

// Errors.
const (
	ErrorTypeKey = "error.type"
)

// Standard values.
const (
	OperationIntegrate          = "integrate"
	OperationQuad               = "quad"
	OperationIntegrateIntervals = "integrate_intervals"
	OperationMinimize           = "minimize"

	AlgorithmAdaptiveSimpson = "adaptive_simpson"
	AlgorithmGoldenSection   = "golden_section"
)
