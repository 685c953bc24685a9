package radix

// radixSerial sorts source[sFrom:sFrom+length], using
// target[tFrom:tFrom+length] as the other ping-pong buffer, by one
// byte-level MSD pass (count, prefix-sum, scatter) followed by per-bucket
// recursion with the buffers swapped. On entry the data is in source. On
// return the sorted data is in source at even depths and in target at odd
// depths, the same rule mergePass follows, so at every depth it ends in the
// buffer that was source at depth 0. At depth 3 the scattered result is also
// copied back into source, so there both buffers hold it.
func radixSerial(source, target []int32, sFrom, tFrom, length, depth int) {
	if length <= getMergeThreshold() {
		mergePass(source, target, sFrom, tFrom, length, depth)
		return
	}

	var hist [256]int
	for i := 0; i < length; i++ {
		hist[bucket(source[sFrom+i], depth)]++
	}

	var start [256]int
	for i := 1; i < 256; i++ {
		start[i] = start[i-1] + hist[i-1]
	}

	var processed [256]int
	for i := 0; i < length; i++ {
		k := source[sFrom+i]
		b := bucket(k, depth)
		target[tFrom+start[b]+processed[b]] = k
		processed[b]++
	}

	if depth == deepestRecursionDepth {
		copy(source[sFrom:sFrom+length], target[tFrom:tFrom+length])
		return
	}

	for b := 0; b < 256; b++ {
		if hist[b] == 0 {
			continue
		}
		radixSerial(target, source, tFrom+start[b], sFrom+start[b], hist[b], depth+1)
	}
}
