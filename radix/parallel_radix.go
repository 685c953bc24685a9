package radix

import (
	"fmt"
	"math/rand/v2"

	"github.com/havrylenko/parasort/internal"
	"github.com/havrylenko/parasort/parallel"
)

// radixParallel has the same postcondition as radixSerial: on return the
// sorted data is in source[sFrom:sFrom+length] at even depths and in
// target[tFrom:tFrom+length] at odd depths. Counting,
// scattering, and per-bucket recursion are parallelized across threads
// workers instead of run on a single goroutine.
func radixParallel(source, target []int32, sFrom, tFrom, length, depth, threads int) {
	bounds := partitionBounds(length, threads)

	// Phase 1: parallel counting.
	localHists := make([][256]int, threads)
	countThunks := make([]func() error, threads)
	for w := 0; w < threads; w++ {
		w, lo, hi := w, bounds[w], bounds[w+1]
		countThunks[w] = func() error {
			h := &localHists[w]
			for i := lo; i < hi; i++ {
				h[bucket(source[sFrom+i], depth)]++
			}
			return nil
		}
	}
	runWorkers(countThunks)

	// Phase 2: reduction and layout.
	var global [256]int
	for w := 0; w < threads; w++ {
		for i := 0; i < 256; i++ {
			global[i] += localHists[w][i]
		}
	}
	nb := 0
	for i := 0; i < 256; i++ {
		if global[i] > 0 {
			nb++
		}
	}
	var start [256]int
	for i := 1; i < 256; i++ {
		start[i] = start[i-1] + global[i-1]
	}
	spawn := threads
	if nb < spawn {
		spawn = nb
	}
	if spawn < 1 {
		spawn = 1
	}

	// Phase 3: parallel scatter. Each counting worker's sub-range is reused
	// unchanged for scattering, so its processed-index map telescopes
	// cleanly from the predecessor's local histogram.
	processed := make([][256]int, threads)
	for w := 1; w < threads; w++ {
		for i := 0; i < 256; i++ {
			processed[w][i] = processed[w-1][i] + localHists[w-1][i]
		}
	}
	scatterThunks := make([]func() error, threads)
	for w := 0; w < threads; w++ {
		w, lo, hi := w, bounds[w], bounds[w+1]
		scatterThunks[w] = func() error {
			proc := &processed[w]
			for i := lo; i < hi; i++ {
				k := source[sFrom+i]
				b := bucket(k, depth)
				target[tFrom+start[b]+proc[b]] = k
				proc[b]++
			}
			return nil
		}
	}
	runWorkers(scatterThunks)

	// Phase 4: leaf termination.
	if depth == deepestRecursionDepth {
		copy(source[sFrom:sFrom+length], target[tFrom:tFrom+length])
		return
	}

	// Phase 5: balanced bucket partitioning for recursion.
	nonEmpty := make([]int, 0, nb)
	for b := 0; b < 256; b++ {
		if global[b] > 0 {
			nonEmpty = append(nonEmpty, b)
		}
	}
	rand.Shuffle(len(nonEmpty), func(i, j int) {
		nonEmpty[i], nonEmpty[j] = nonEmpty[j], nonEmpty[i]
	})

	groupTarget := length / spawn
	groups := make([][]int, 0, spawn)
	var cur []int
	curSum := 0
	for _, b := range nonEmpty {
		cur = append(cur, b)
		curSum += global[b]
		if curSum >= groupTarget && len(groups) < spawn-1 {
			groups = append(groups, cur)
			cur = nil
			curSum = 0
		}
	}
	if len(cur) > 0 {
		groups = append(groups, cur)
	}
	spawnActual := len(groups)

	perGroup := threads / spawnActual
	extra := threads % spawnActual
	budget := make([]int, spawnActual)
	for g := range budget {
		budget[g] = perGroup
		if g < extra {
			budget[g]++
		}
	}

	// Phase 6: recursive execution.
	groupThunks := make([]func() error, spawnActual)
	for g := 0; g < spawnActual; g++ {
		g := g
		groupThunks[g] = func() error {
			for _, b := range groups[g] {
				childLen := global[b]
				csFrom := tFrom + start[b]
				ctFrom := sFrom + start[b]
				if budget[g] > 1 {
					radixParallel(target, source, csFrom, ctFrom, childLen, depth+1, budget[g])
				} else {
					radixSerial(target, source, csFrom, ctFrom, childLen, depth+1)
				}
			}
			return nil
		}
	}
	runWorkers(groupThunks)
}

// partitionBounds returns parts+1 boundaries over [0, length), splitting it
// into parts contiguous sub-ranges of length ≈ length/parts with the last
// absorbing the remainder.
func partitionBounds(length, parts int) []int {
	bounds := make([]int, parts+1)
	base := length / parts
	for i := 0; i < parts; i++ {
		bounds[i] = i * base
	}
	bounds[parts] = length
	return bounds
}

// runWorkers joins a set of worker thunks via parallel.Do, turning any
// worker error or recovered panic into a RuntimeFaultError and re-panicking
// with it: a worker failing to join is a non-recoverable programmer error.
func runWorkers(thunks []func() error) {
	defer func() {
		if p := recover(); p != nil {
			panic(&RuntimeFaultError{Cause: asError(internal.WrapPanic(p))})
		}
	}()
	if err := parallel.Do(thunks...); err != nil {
		panic(&RuntimeFaultError{Cause: err})
	}
}

func asError(v interface{}) error {
	if v == nil {
		return nil
	}
	if err, ok := v.(error); ok {
		return err
	}
	return fmt.Errorf("%v", v)
}
