package parallel_test

import (
	"errors"
	"fmt"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/havrylenko/parasort/parallel"
)

func ExampleDo() {
	var fib func(int) (int, error)

	fib = func(n int) (result int, err error) {
		if n < 0 {
			err = errors.New("invalid argument")
		} else if n < 2 {
			result = n
		} else {
			var n1, n2 int
			n1, err = fib(n - 1)
			if err != nil {
				return
			}
			n2, err = fib(n - 2)
			result = n1 + n2
		}
		return
	}

	var n1, n2 int
	var err error
	parallel.Do(
		func() error { n1, err = fib(8); return err },
		func() error { n2, err = fib(9); return err },
	)
	fmt.Println(n1 + n2)

	// Output:
	// 55
}

func TestDoJoinsAllThunks(t *testing.T) {
	const n = 37
	results := make([]int, n)
	thunks := make([]func() error, n)
	for i := range thunks {
		i := i
		thunks[i] = func() error {
			results[i] = i * i
			return nil
		}
	}
	require.NoError(t, parallel.Do(thunks...))
	for i, v := range results {
		require.Equal(t, i*i, v)
	}
}

func TestDoPropagatesLeftmostError(t *testing.T) {
	errLeft := errors.New("left")
	errRight := errors.New("right")
	err := parallel.Do(
		func() error { return errLeft },
		func() error { return errRight },
	)
	require.Equal(t, errLeft, err)
}

func TestDoEmptyAndSingle(t *testing.T) {
	require.NoError(t, parallel.Do())
	called := false
	require.NoError(t, parallel.Do(func() error { called = true; return nil }))
	require.True(t, called)
}

func TestDoPropagatesPanic(t *testing.T) {
	defer func() {
		r := recover()
		require.NotNil(t, r)
	}()
	_ = parallel.Do(
		func() error { panic("boom") },
		func() error { return nil },
	)
}

func TestRangeCoversEveryIndexExactlyOnce(t *testing.T) {
	const n = 10_000
	hits := make([]int32, n)
	err := parallel.Range(0, n, runtime.GOMAXPROCS(0), func(low, high int) error {
		for i := low; i < high; i++ {
			hits[i]++
		}
		return nil
	})
	require.NoError(t, err)
	for i, h := range hits {
		require.Equalf(t, int32(1), h, "index %d visited %d times", i, h)
	}
}

func TestRangeEmpty(t *testing.T) {
	called := false
	err := parallel.Range(5, 5, 4, func(low, high int) error {
		called = true
		return nil
	})
	require.NoError(t, err)
	require.True(t, called)
}

func TestRangePropagatesError(t *testing.T) {
	sentinel := errors.New("batch failed")
	err := parallel.Range(0, 100, 8, func(low, high int) error {
		if low == 0 {
			return sentinel
		}
		return nil
	})
	require.Equal(t, sentinel, err)
}
