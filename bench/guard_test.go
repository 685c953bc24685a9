package bench_test

import (
	"sort"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/havrylenko/parasort/bench"
)

func TestGuardSortMatchesReference(t *testing.T) {
	g := &bench.Guard{}
	a := bench.GenerateUniform(10_000, 1_000_000)
	want := append([]int32(nil), a...)
	sort.Slice(want, func(i, j int) bool { return want[i] < want[j] })

	require.NoError(t, g.Sort(a))
	require.Equal(t, want, a)
}

func TestGuardSortRangeValidation(t *testing.T) {
	g := &bench.Guard{}
	a := make([]int32, 5)
	require.Error(t, g.SortRange(a, 3, 1))
	require.Error(t, g.SortRange(a, 0, 6))
}

func TestGuardSerializesConcurrentTuningAndSorts(t *testing.T) {
	g := &bench.Guard{}
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			g.SetInsertionThreshold(13 + i)
			a := bench.GenerateUniform(2000, 5000)
			_ = g.Sort(a)
		}(i)
	}
	wg.Wait()
}
