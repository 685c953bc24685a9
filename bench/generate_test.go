package bench_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/havrylenko/parasort/bench"
)

func TestGenerateUniformBounds(t *testing.T) {
	a := bench.GenerateUniform(10_000, 100)
	require.Len(t, a, 10_000)
	for _, v := range a {
		require.GreaterOrEqual(t, v, int32(0))
		require.Less(t, v, int32(100))
	}
}

func TestGenerateTopByteSkewedOnlyUsesTopByte(t *testing.T) {
	a := bench.GenerateTopByteSkewed(5_000)
	for _, v := range a {
		require.Zero(t, v&0x00ffffff)
	}
}

func TestGenerateLinearShuffledIsAPermutation(t *testing.T) {
	const size = 256
	a := bench.GenerateLinearShuffled(size)
	seen := make(map[int32]bool, size)
	for _, v := range a {
		seen[v] = true
	}
	require.Len(t, seen, size)
	for i := 0; i < size; i++ {
		require.Containsf(t, seen, int32(i)<<24, "missing bucket %d", i)
	}
}
