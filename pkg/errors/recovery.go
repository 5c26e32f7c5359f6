// Panic recovery for user-supplied callbacks. Integrands and objective
// functions are caller code; a panic inside one is reported as a PanicError
// instead of tearing down the process.

package errors

import (
	"fmt"
	"runtime/debug"
)

// PanicError is an error built from a recovered panic.
type PanicError struct {
	// PanicValue is the value passed to panic().
	PanicValue interface{}

	// StackTrace is the stack of the goroutine that panicked.
	StackTrace string

	// Operation names the call that recovered the panic.
	Operation string
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic in %s: %v", e.Operation, e.PanicValue)
}

// Unwrap exposes the panic value when it was itself an error.
func (e *PanicError) Unwrap() error {
	if err, ok := e.PanicValue.(error); ok {
		return err
	}
	return nil
}

// String includes the stack trace.
func (e *PanicError) String() string {
	return fmt.Sprintf("panic in %s: %v\nStack trace:\n%s",
		e.Operation, e.PanicValue, e.StackTrace)
}

// NewPanicError captures the current stack alongside panicValue.
func NewPanicError(operation string, panicValue interface{}) *PanicError {
	return &PanicError{
		PanicValue: panicValue,
		StackTrace: string(debug.Stack()),
		Operation:  operation,
	}
}

// Recover converts a panic into an error assigned to *err. Use it with defer:
//
//	func (s *AdaptiveSimpson) Quad(...) (res Result, err error) {
//	    defer errors.Recover(&err, "AdaptiveSimpson.Quad")
//	    ...
//	}
//
// A *PanicError re-raised from another goroutine (see core/parallel.Do) is kept
// as is so its original stack survives. An error already held in *err is
// wrapped rather than overwritten.
func Recover(err *error, operation string) {
	r := recover()
	if r == nil {
		return
	}

	panicErr, ok := r.(*PanicError)
	if !ok {
		panicErr = NewPanicError(operation, r)
	}

	if *err != nil {
		*err = Wrapf(*err, "panic in %s: %v; original error", operation, panicErr.PanicValue)
		return
	}
	*err = panicErr
}

// SafeExecute runs fn and turns a panic into a PanicError.
//
//	err := errors.SafeExecute("integrand probe", func() error {
//	    _ = f(0)
//	    return nil
//	})
func SafeExecute(operation string, fn func() error) (err error) {
	defer Recover(&err, operation)
	return fn()
}
