// Package parallel provides the fork-join helpers used by the numerical
// routines: chunked loops over independent items and binary forks of
// independent subproblems.
//
// A panic in any worker is captured and re-raised in the calling goroutine
// after all workers have finished, so callers can recover it with
// errors.Recover as if the work had run inline.
package parallel

import (
	"runtime"
	"sync"

	"github.com/YuminosukeSato/scinum/pkg/errors"
)

// Parallelize splits [0, items) into one contiguous chunk per CPU and runs fn
// on each chunk concurrently.
func Parallelize(items int, fn func(start, end int)) {
	ParallelizeWorkers(items, runtime.NumCPU(), fn)
}

// ParallelizeWorkers is Parallelize with an explicit worker count.
// workers <= 0 means runtime.NumCPU().
func ParallelizeWorkers(items, workers int, fn func(start, end int)) {
	if items <= 0 {
		return
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > items {
		workers = items
	}

	// ceiling division
	chunkSize := (items + workers - 1) / workers

	var g group
	for i := 0; i < workers; i++ {
		start := i * chunkSize
		end := start + chunkSize
		if end > items {
			end = items
		}
		if start >= end {
			continue
		}
		s, e := start, end
		g.spawn(func() { fn(s, e) })
	}
	g.wait()
}

// ParallelizeWithThreshold runs fn(0, items) inline when items <= threshold
// and falls back to Parallelize otherwise.
func ParallelizeWithThreshold(items int, threshold int, fn func(start, end int)) {
	if items <= threshold {
		if items > 0 {
			fn(0, items)
		}
		return
	}
	Parallelize(items, fn)
}

// Do runs every fn concurrently and waits for all of them. The last fn runs
// on the calling goroutine.
func Do(fns ...func()) {
	switch len(fns) {
	case 0:
		return
	case 1:
		fns[0]()
		return
	}

	var g group
	for _, fn := range fns[:len(fns)-1] {
		g.spawn(fn)
	}
	g.run(fns[len(fns)-1])
	g.wait()
}

// group is a WaitGroup that remembers the first panic of its members.
type group struct {
	wg       sync.WaitGroup
	once     sync.Once
	panicked *errors.PanicError
}

func (g *group) spawn(fn func()) {
	g.wg.Add(1)
	go func() {
		defer g.wg.Done()
		g.run(fn)
	}()
}

func (g *group) run(fn func()) {
	defer func() {
		if r := recover(); r != nil {
			pe, ok := r.(*errors.PanicError)
			if !ok {
				pe = errors.NewPanicError("parallel worker", r)
			}
			g.once.Do(func() { g.panicked = pe })
		}
	}()
	fn()
}

func (g *group) wait() {
	g.wg.Wait()
	if g.panicked != nil {
		panic(g.panicked)
	}
}
