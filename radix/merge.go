package radix

// mergePass sorts source[sFrom:sFrom+length] by building insertion-sorted
// base runs and ping-ponging doubling-width merges between source and
// target, then leaves the result in whichever buffer recursion depth
// parity requires: source at even depths, target at odd depths. If the
// ping-pong's own parity disagrees, a final bulk copy corrects it.
func mergePass(source, target []int32, sFrom, tFrom, length, depth int) {
	insThr := getInsertionThreshold()
	for off := 0; off < length; off += insThr {
		runLen := insThr
		if off+runLen > length {
			runLen = length - off
		}
		insertionSort(source, sFrom+off, runLen)
	}

	srcBuf, tgtBuf := source, target
	srcFrom, tgtFrom := sFrom, tFrom
	width := insThr
	passes := 0
	for width < length {
		for off := 0; off < length; {
			if off+width >= length {
				leftLen := length - off
				copy(tgtBuf[tgtFrom+off:tgtFrom+off+leftLen], srcBuf[srcFrom+off:srcFrom+off+leftLen])
				off += leftLen
				continue
			}
			rightLen := width
			if off+2*width > length {
				rightLen = length - off - width
			}
			mergeRuns(srcBuf, tgtBuf, srcFrom+off, srcFrom+off+width, width, rightLen, tgtFrom+off)
			off += width + rightLen
		}
		srcBuf, tgtBuf = tgtBuf, srcBuf
		srcFrom, tgtFrom = tgtFrom, srcFrom
		width *= 2
		passes++
	}

	currentlyInTarget := passes%2 == 1
	wantInTarget := depth%2 == 1
	if currentlyInTarget != wantInTarget {
		if currentlyInTarget {
			copy(source[sFrom:sFrom+length], target[tFrom:tFrom+length])
		} else {
			copy(target[tFrom:tFrom+length], source[sFrom:sFrom+length])
		}
	}
}

// mergeRuns merges the sorted run src[leftOff:leftOff+leftLen) with the
// sorted run src[rightOff:rightOff+rightLen) into tgt starting at tgtOff.
// Ties prefer the left run, giving a stable merge.
func mergeRuns(src, tgt []int32, leftOff, rightOff, leftLen, rightLen, tgtOff int) {
	i, j, k := leftOff, rightOff, tgtOff
	leftEnd, rightEnd := leftOff+leftLen, rightOff+rightLen
	for i < leftEnd && j < rightEnd {
		if src[i] <= src[j] {
			tgt[k] = src[i]
			i++
		} else {
			tgt[k] = src[j]
			j++
		}
		k++
	}
	if i < leftEnd {
		copy(tgt[k:k+(leftEnd-i)], src[i:leftEnd])
	} else if j < rightEnd {
		copy(tgt[k:k+(rightEnd-j)], src[j:rightEnd])
	}
}
