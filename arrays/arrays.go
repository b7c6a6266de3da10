// Package arrays provides in-place order-statistic selection over float64
// and int32 slices: an adaptive single-target quickselect (SelectF64,
// SelectInt32) and a dual-pivot multi-target introselect for selecting
// several indices from one array in a single pass (SelectF64Multi,
// SelectInt32Multi).
//
// Selection rearranges a[left:right+1] in place so that, for a requested
// index k, a[left:k] <= a[k] <= a[k+1:right+1]; it makes no promise about
// the relative order of elements on either side of k and is not stable.
// NaN handling and signed-zero normalization for float64 inputs are left to
// the caller via Preprocess/Postprocess — the selection engine itself
// assumes a total order over its element type.
//
// Every call operates on a single array from a single goroutine; running
// independent calls on disjoint arrays concurrently is safe, but no call is
// safe to invoke concurrently with another touching the same array.
package arrays

// RangeError reports a precondition violation: an out-of-range index, an
// invalid [left, right] bound, or an internal capacity limit (the
// hash-index set used by multi-target deduplication) being exceeded. These
// are programmer errors, not data errors, so the package panics with a
// *RangeError rather than threading an error return through the hot path.
type RangeError struct {
	Msg string
}

func (e *RangeError) Error() string { return "arrays: " + e.Msg }

func validateBounds(left, right, n int) {
	if left < 0 || right >= n || left > right {
		panic(&RangeError{Msg: "left/right out of bounds"})
	}
}

func validateTarget(left, right, k int) {
	if k < left || k > right {
		panic(&RangeError{Msg: "target index out of [left, right]"})
	}
}

func validateTargets(left, right int, ks []int32) {
	for _, k := range ks {
		if int(k) < left || int(k) > right {
			panic(&RangeError{Msg: "target index out of [left, right]"})
		}
	}
}

// SelectF64 rearranges a[left:right+1] so a[k] holds its sorted-order
// value, returning the bounds of the run of equal values containing it.
func SelectF64(a []float64, left, right, k int) (lo, hi int) {
	validateBounds(left, right, len(a))
	validateTarget(left, right, k)
	return quickSelectAdaptive(a, nil, left, right, k, k)
}

// SelectInt32 rearranges a[left:right+1] so a[k] holds its sorted-order
// value, returning the bounds of the run of equal values containing it.
func SelectInt32(a []int32, left, right, k int) (lo, hi int) {
	validateBounds(left, right, len(a))
	validateTarget(left, right, k)
	return quickSelectAdaptive(a, nil, left, right, k, k)
}

// SelectF64Multi rearranges a[left:right+1] so every index in ks holds its
// sorted-order value. It returns the number of distinct indices actually
// selected (duplicates in ks are collapsed) and whether ks was sorted (and
// compacted) in place as a side effect of deduplicating it — true whenever
// the sorted-key back-end was used, false for the bitset back-end.
func SelectF64Multi(a []float64, left, right int, ks []int32) (used int, sortedKs bool) {
	return selectMulti(a, left, right, ks)
}

// SelectInt32Multi rearranges a[left:right+1] so every index in ks holds
// its sorted-order value. See SelectF64Multi for the return values.
func SelectInt32Multi(a []int32, left, right int, ks []int32) (used int, sortedKs bool) {
	return selectMulti(a, left, right, ks)
}

func selectMulti[T ordered](a []T, left, right int, ks []int32) (int, bool) {
	validateBounds(left, right, len(a))
	if len(ks) == 0 {
		return 0, false
	}
	validateTargets(left, right, ks)

	k, used, sorted := createUpdatingInterval(ks)
	ka, kb := int(k.Left()), int(k.Right())

	if kb-left < dpSortSelectSize && right-ka < dpSortSelectSize {
		sortSelectWindow(a, nil, left, right, ka, kb)
	} else {
		dualPivotQuickSelect(a, nil, left, right, k)
	}
	return used, sorted
}
