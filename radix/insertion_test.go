package radix

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInsertionSortSortsInPlaceWithinOffset(t *testing.T) {
	a := []int32{99, 99, 5, 2, 9, 1, 7, -3, 0, 77, 77}
	before := append([]int32(nil), a[:2]...)
	after := append([]int32(nil), a[9:]...)

	insertionSort(a, 2, 6)

	require.Equal(t, before, a[:2])
	require.Equal(t, after, a[9:])
	require.Equal(t, []int32{-3, 1, 2, 5, 7, 9}, a[2:8])
}

func TestInsertionSortStableOnEqualKeys(t *testing.T) {
	// With bare int32 keys equal elements are indistinguishable, so
	// stability is only observable via ordering of equal values, which
	// must simply remain contiguous and correctly placed.
	a := make([]int32, 200)
	for i := range a {
		a[i] = int32(rand.IntN(5))
	}
	insertionSort(a, 0, len(a))
	for i := 1; i < len(a); i++ {
		require.LessOrEqual(t, a[i-1], a[i])
	}
}
