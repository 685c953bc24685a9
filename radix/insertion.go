package radix

// insertionSort sorts a[off:off+length] in place, stably, by classic
// shift-right insertion. The inner loop never shifts past off. Used both as
// the merge-pass driver's base case and as the top-level tiny-range path.
func insertionSort(a []int32, off, length int) {
	end := off + length
	for i := off + 1; i < end; i++ {
		key := a[i]
		j := i - 1
		for j >= off && a[j] > key {
			a[j+1] = a[j]
			j--
		}
		a[j+1] = key
	}
}
