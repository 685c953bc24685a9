package radix

import (
	"math/rand/v2"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

func referenceSortedCopy(a []int32) []int32 {
	out := make([]int32, len(a))
	copy(out, a)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func TestMergePassEvenDepthLandsInSource(t *testing.T) {
	src := []int32{9, 2, 7, 1, 8, 3, 5, 4, 6, 0}
	tgt := make([]int32, len(src))
	want := referenceSortedCopy(src)

	mergePass(src, tgt, 0, 0, len(src), 0)
	require.Equal(t, want, src)
}

func TestMergePassOddDepthLandsInTarget(t *testing.T) {
	src := []int32{9, 2, 7, 1, 8, 3, 5, 4, 6, 0}
	tgt := make([]int32, len(src))
	want := referenceSortedCopy(src)

	mergePass(src, tgt, 0, 0, len(src), 1)
	require.Equal(t, want, tgt)
}

func TestMergePassVariousLengthsAndDepths(t *testing.T) {
	for _, length := range []int{0, 1, 2, 3, 13, 14, 25, 50, 127, 1000} {
		for depth := 0; depth <= 3; depth++ {
			src := make([]int32, length)
			for i := range src {
				src[i] = int32(rand.IntN(1000) - 500)
			}
			tgt := make([]int32, length)
			want := referenceSortedCopy(src)

			mergePass(src, tgt, 0, 0, length, depth)

			var got []int32
			if depth%2 == 1 {
				got = tgt
			} else {
				got = src
			}
			require.Equalf(t, want, got, "length=%d depth=%d", length, depth)
		}
	}
}

func TestMergePassOffsetsAreRespected(t *testing.T) {
	// source/target windows live at nonzero, distinct offsets within larger
	// backing arrays, as they do inside the radix recursion.
	const sFrom, tFrom, length = 7, 3, 40
	src := make([]int32, sFrom+length+5)
	tgt := make([]int32, tFrom+length+5)
	for i := range src {
		src[i] = int32(rand.IntN(10000))
	}
	tgtBefore := append([]int32(nil), tgt[:tFrom]...)
	tgtAfter := append([]int32(nil), tgt[tFrom+length:]...)

	want := referenceSortedCopy(src[sFrom : sFrom+length])

	mergePass(src, tgt, sFrom, tFrom, length, 0)

	require.Equal(t, want, src[sFrom:sFrom+length])
	require.Equal(t, tgtBefore, tgt[:tFrom])
	require.Equal(t, tgtAfter, tgt[tFrom+length:])
}
