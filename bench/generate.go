package bench

import "math/rand/v2"

// GenerateUniform returns size random int32 values drawn uniformly from
// [0, maxValue). A port of Utils.java's createRandomIntArray(size,
// maxValue, random).
func GenerateUniform(size, maxValue int) []int32 {
	a := make([]int32, size)
	for i := range a {
		a[i] = int32(rand.IntN(maxValue))
	}
	return a
}

// GenerateTopByteSkewed returns size int32 values each equal to a random
// byte shifted into the top byte position, leaving the lower 24 bits zero.
// A port of Utils.java's createDebugIntArray, useful for exercising the
// depth-0 radix pass with a small, skewed bucket distribution.
func GenerateTopByteSkewed(size int) []int32 {
	a := make([]int32, size)
	for i := range a {
		a[i] = int32(rand.IntN(256)) << 24
	}
	return a
}

// GenerateLinearShuffled returns the size values i<<24 for i in [0, size),
// randomly permuted by a fixed number of index-pair swaps. A port of
// Utils.java's createLinearDebugIntArray; with size == 256 this is exactly
// scenario E6 of the testable properties: one element per top-byte bucket.
func GenerateLinearShuffled(size int) []int32 {
	a := make([]int32, size)
	for i := range a {
		a[i] = int32(i) << 24
	}
	swaps := 2 * size
	for i := 0; i < swaps; i++ {
		x, y := rand.IntN(size), rand.IntN(size)
		a[x], a[y] = a[y], a[x]
	}
	return a
}
