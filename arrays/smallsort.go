package arrays

import "math/bits"

// ordered is the element-type constraint for the selection engine: the
// double and int32 variants described by the spec share one generic
// implementation instead of being duplicated per type.
type ordered interface {
	~int32 | ~float64
}

// swap exchanges a[i], a[j] and, when idx tracks the original positions of
// a sort performed on a derived buffer (e.g. a feature column copied out of
// a row-major matrix), idx[i], idx[j] along with it. idx may be nil.
func swap[T ordered](a []T, idx []int32, i, j int) {
	a[i], a[j] = a[j], a[i]
	if idx != nil {
		idx[i], idx[j] = idx[j], idx[i]
	}
}

// sort2 orders a[i] <= a[j].
func sort2[T ordered](a []T, idx []int32, i, j int) {
	if a[j] < a[i] {
		swap(a, idx, i, j)
	}
}

// sort3 orders a[i] <= a[j] <= a[k].
func sort3[T ordered](a []T, idx []int32, i, j, k int) {
	sort2(a, idx, i, j)
	sort2(a, idx, j, k)
	sort2(a, idx, i, j)
}

// sortPositions insertion-sorts the values held at an arbitrary, possibly
// non-contiguous, list of positions, swapping elements of a (and idx) so
// that a[positions[0]] <= a[positions[1]] <= ...; the positions slice itself
// is left unchanged, so positions[r] holds the r-th smallest of the values.
func sortPositions[T ordered](a []T, idx []int32, positions []int) {
	for i := 1; i < len(positions); i++ {
		for j := i; j > 0 && a[positions[j]] < a[positions[j-1]]; j-- {
			swap(a, idx, positions[j], positions[j-1])
		}
	}
}

// lowerMedian4 returns the index, among i, j, k, l, holding the 2nd order
// statistic of the four values.
func lowerMedian4[T ordered](a []T, idx []int32, i, j, k, l int) int {
	p := []int{i, j, k, l}
	sortPositions(a, idx, p)
	return p[1]
}

// upperMedian4 returns the index, among i, j, k, l, holding the 3rd order
// statistic of the four values.
func upperMedian4[T ordered](a []T, idx []int32, i, j, k, l int) int {
	p := []int{i, j, k, l}
	sortPositions(a, idx, p)
	return p[2]
}

// median3 returns the index, among i, j, k, holding the median value.
func median3[T ordered](a []T, idx []int32, i, j, k int) int {
	p := []int{i, j, k}
	sortPositions(a, idx, p)
	return p[1]
}

// median5 returns the index, among the five given positions, holding the
// median value.
func median5[T ordered](a []T, idx []int32, i, j, k, l, m int) int {
	p := []int{i, j, k, l, m}
	sortPositions(a, idx, p)
	return p[2]
}

// insertionSort sorts a[lo:hi] ascending. Used for tiny ranges and as the
// finisher for sortAscending / sortSelectWindow.
func insertionSort[T ordered](a []T, idx []int32, lo, hi int) {
	for i := lo + 1; i < hi; i++ {
		for j := i; j > lo && a[j] < a[j-1]; j-- {
			swap(a, idx, j, j-1)
		}
	}
}

// maxHeapSiftDown restores the max-heap property on the heap a[first :
// first+end), sifting down from a[first+root], assuming both children
// subtrees already satisfy it.
func maxHeapSiftDown[T ordered](a []T, idx []int32, root, end, first int) {
	for {
		child := 2*root + 1
		if child >= end {
			return
		}
		if child+1 < end && a[first+child] < a[first+child+1] {
			child++
		}
		if !(a[first+root] < a[first+child]) {
			return
		}
		swap(a, idx, first+root, first+child)
		root = child
	}
}

// heapSortWindow fully sorts a[left:right+1] ascending via a max-heap. It is
// the guaranteed O(n log n) fallback used when recursion budgets are
// exhausted; unlike the adaptive engines it never degrades.
func heapSortWindow[T ordered](a []T, idx []int32, left, right int) {
	n := right - left + 1
	if n < 2 {
		return
	}
	for i := n/2 - 1; i >= 0; i-- {
		maxHeapSiftDown(a, idx, i, n, left)
	}
	for i := n - 1; i > 0; i-- {
		swap(a, idx, left, left+i)
		maxHeapSiftDown(a, idx, 0, i, left)
	}
}

// partitionAroundValue performs a 3-way (Dutch national flag) partition of
// a[left:right+1] against v, returning the inclusive bounds of the
// equal-to-v band.
func partitionAroundValue[T ordered](a []T, idx []int32, left, right int, v T) (int, int) {
	lo, mid, hi := left, left, right
	for mid <= hi {
		switch {
		case a[mid] < v:
			swap(a, idx, lo, mid)
			lo++
			mid++
		case v < a[mid]:
			swap(a, idx, mid, hi)
			hi--
		default:
			mid++
		}
	}
	return lo, mid - 1
}

// sortSelectWindow finishes a small range by sorting it outright, then
// returns the bounds of the equal-value plateau straddling [ka, kb]. When
// ka == kb (the single-target engine's invariant) this is exactly the
// p0', p1' pair the spec describes; for a multi-target window it is a
// best-effort bookkeeping value that callers in this package never rely on.
func sortSelectWindow[T ordered](a []T, idx []int32, left, right, ka, kb int) (int, int) {
	insertionSort(a, idx, left, right+1)
	v := a[ka]
	lo, hi := ka, kb
	for lo > left && a[lo-1] == v {
		lo--
	}
	for hi < right && a[hi+1] == v {
		hi++
	}
	return lo, hi
}

// sortAscending fully sorts a, following the teacher's own bSort: insertion
// sort below a small threshold, otherwise a depth-limited quicksort (Tukey's
// ninther pivot, Bentley-McIlroy 3-way partition) falling back to heapsort
// if the recursion budget is exhausted. Used by the index deduplicator to
// sort distinct keys pulled out of the hash-index set.
func sortAscending[T ordered](a []T, idx []int32) {
	n := len(a)
	maxDepth := 0
	for i := n; i > 0; i >>= 1 {
		maxDepth++
	}
	maxDepth *= 2
	quickSortRange(a, idx, 0, n, maxDepth)
}

func quickSortRange[T ordered](a []T, idx []int32, lo, hi, maxDepth int) {
	for hi-lo > 7 {
		if maxDepth == 0 {
			heapSortWindow(a, idx, lo, hi-1)
			return
		}
		maxDepth--
		mid := lo + (hi-lo)/2
		if hi-lo > 40 {
			s := (hi - lo) / 8
			sort3(a, idx, lo+s, lo, lo+2*s)
			sort3(a, idx, mid-s, mid, mid+s)
			sort3(a, idx, hi-1-2*s, hi-1, hi-1-s)
		}
		sort3(a, idx, lo, mid, hi-1)
		p0, p1 := partitionAroundValue(a, idx, lo, hi-1, a[mid])
		if p0-lo < hi-p1-1 {
			quickSortRange(a, idx, lo, p0, maxDepth)
			lo = p1 + 1
		} else {
			quickSortRange(a, idx, p1+1, hi, maxDepth)
			hi = p0
		}
	}
	if hi-lo > 1 {
		insertionSort(a, idx, lo, hi)
	}
}

func log2Ceil(n int32) int {
	return bits.Len32(uint32(n))
}
