// Package radix implements a parallel most-significant-digit radix sort
// over signed 32-bit integers.
//
// Sort and SortRange are reentrant: each call validates its range,
// allocates its own scratch buffer, and reads the process-wide tunables
// exactly once per decision point. Concurrent calls do not interfere with
// each other's sorting, only with each other's view of the tunables (see
// SetInsertionThreshold, SetMergeThreshold, SetThreadWorkload).
package radix

import (
	"runtime"
	"sync/atomic"

	"github.com/havrylenko/parasort/parallel"
)

// Sort sorts a into non-decreasing order.
func Sort(a []int32) {
	_ = SortRange(a, 0, len(a))
}

// SortRange sorts a[from:to] into non-decreasing order in place, leaving
// a[:from] and a[to:] untouched. It returns *InvalidRangeError if
// from > to, or *OutOfBoundsError if from < 0 or to > len(a).
func SortRange(a []int32, from, to int) error {
	n := len(a)
	if from > to {
		return &InvalidRangeError{From: from, To: to}
	}
	if from < 0 {
		return &OutOfBoundsError{Index: from, Len: n}
	}
	if to > n {
		return &OutOfBoundsError{Index: to, Len: n}
	}

	length := to - from
	if length < 2 {
		return nil
	}
	if length <= getInsertionThreshold() {
		insertionSort(a, from, length)
		return nil
	}

	b := make([]int32, length)
	if length <= getMergeThreshold() {
		mergePass(a, b, from, 0, length, 0)
		return nil
	}

	cpuCount := runtime.GOMAXPROCS(0)
	threads := length / getThreadWorkload()
	if threads > cpuCount {
		threads = cpuCount
	}
	if threads < 1 {
		threads = 1
	}

	if threads == 1 {
		radixSerial(a, b, from, 0, length, 0)
		return nil
	}
	radixParallel(a, b, from, 0, length, 0, threads)
	return nil
}

// IsSorted reports whether a[from:to] is in non-decreasing order. The check
// is parallelized across runtime.GOMAXPROCS(0) batches via parallel.Range.
// A batch stops at its first violation, but there is no early exit across
// batches: every other batch still scans its whole sub-range (see
// DESIGN.md).
func IsSorted(a []int32, from, to int) bool {
	if to-from < 2 {
		return true
	}
	var violated atomic.Bool
	_ = parallel.Range(from, to-1, runtime.GOMAXPROCS(0), func(lo, hi int) error {
		for i := lo; i < hi; i++ {
			if a[i] > a[i+1] {
				violated.Store(true)
				return nil
			}
		}
		return nil
	})
	return !violated.Load()
}
