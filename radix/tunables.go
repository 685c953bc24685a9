package radix

import "sync/atomic"

// Default tunable values, taken from ParallelRadixSort's original
// constants.
const (
	defaultInsertionThreshold = 13
	defaultMergeThreshold     = 4001
	defaultThreadWorkload     = 65536

	minInsertionThreshold = 1
	minMergeThreshold     = 1
	minThreadWorkload     = 1
)

var (
	insertionThreshold atomic.Int64
	mergeThreshold     atomic.Int64
	threadWorkload     atomic.Int64
)

func init() {
	insertionThreshold.Store(defaultInsertionThreshold)
	mergeThreshold.Store(defaultMergeThreshold)
	threadWorkload.Store(defaultThreadWorkload)
}

// SetInsertionThreshold sets the maximum range length sorted by straight
// insertion sort. n is clamped to a positive minimum; the clamp is silent.
func SetInsertionThreshold(n int) {
	insertionThreshold.Store(int64(clampMin(n, minInsertionThreshold)))
}

// SetMergeThreshold sets the maximum range length sorted by the merge-pass
// driver instead of a radix pass. n is clamped to a positive minimum; the
// clamp is silent.
func SetMergeThreshold(n int) {
	mergeThreshold.Store(int64(clampMin(n, minMergeThreshold)))
}

// SetThreadWorkload sets the minimum number of elements a single worker
// must be responsible for before another worker is spawned. n is clamped to
// a positive minimum; the clamp is silent.
func SetThreadWorkload(n int) {
	threadWorkload.Store(int64(clampMin(n, minThreadWorkload)))
}

func clampMin(n, min int) int {
	if n < min {
		return min
	}
	return n
}

func getInsertionThreshold() int { return int(insertionThreshold.Load()) }
func getMergeThreshold() int     { return int(mergeThreshold.Load()) }
func getThreadWorkload() int     { return int(threadWorkload.Load()) }
