package parallel

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/YuminosukeSato/scinum/pkg/errors"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestParallelizeCoversEveryItemOnce(t *testing.T) {
	for _, items := range []int{0, 1, 7, 100, 1001} {
		hits := make([]int32, items)
		Parallelize(items, func(start, end int) {
			for i := start; i < end; i++ {
				atomic.AddInt32(&hits[i], 1)
			}
		})
		for i, h := range hits {
			require.Equalf(t, int32(1), h, "items=%d index=%d", items, i)
		}
	}
}

func TestParallelizeWorkers(t *testing.T) {
	var chunks int32
	ParallelizeWorkers(10, 3, func(start, end int) {
		atomic.AddInt32(&chunks, 1)
		assert.LessOrEqual(t, end-start, 4)
	})
	assert.Equal(t, int32(3), chunks)
}

func TestParallelizeWithThresholdRunsInline(t *testing.T) {
	var calls int
	ParallelizeWithThreshold(5, 10, func(start, end int) {
		calls++
		assert.Equal(t, 0, start)
		assert.Equal(t, 5, end)
	})
	assert.Equal(t, 1, calls)

	ParallelizeWithThreshold(0, 10, func(start, end int) {
		t.Error("fn should not run for zero items")
	})
}

func TestDo(t *testing.T) {
	var a, b, c int
	Do(func() { a = 1 }, func() { b = 2 }, func() { c = 3 })
	assert.Equal(t, []int{1, 2, 3}, []int{a, b, c})

	Do()
	var single bool
	Do(func() { single = true })
	assert.True(t, single)
}

func TestDoPropagatesPanic(t *testing.T) {
	run := func() (err error) {
		defer errors.Recover(&err, "TestDo")
		Do(
			func() { panic("left half failed") },
			func() {},
		)
		return nil
	}

	err := run()
	require.Error(t, err)

	var pe *errors.PanicError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, "left half failed", pe.PanicValue)
	assert.Equal(t, "parallel worker", pe.Operation)
}

func TestParallelizePropagatesPanic(t *testing.T) {
	err := errors.SafeExecute("chunks", func() error {
		Parallelize(8, func(start, end int) {
			if start == 0 {
				panic("first chunk")
			}
		})
		return nil
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "first chunk")
}
