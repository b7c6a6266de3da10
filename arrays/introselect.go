package arrays

// Component E: the dual-pivot multi-target introselect. A single packed
// int32 carries both the recursion budget and the sort-select threshold
// for the whole call tree, following the spec's packed control-flag model:
// the low 20 bits hold the threshold (fixed at entry), the high bits hold a
// counter that is *added to* (never subtracted from) at each recursion
// level; once enough levels have passed the counter's increments carry into
// the sign bit and the packed value goes negative. That sign flip is the
// exhaustion signal — no separate decrement-and-compare is needed.

const (
	dpSortSelectSize = 20
	dpBudgetStep     = 1 << 20
	dpThresholdMask  = dpBudgetStep - 1
	dpCounterBase    = 1 << 11
)

func newDPFlags(n, ka, kb int) int32 {
	maxDepth := (log2Ceil(int32(n)) * 323) >> 8
	if maxDepth > dpCounterBase-1 {
		maxDepth = dpCounterBase - 1
	}
	counterUnits := dpCounterBase - maxDepth

	threshold := 0
	if kb-ka >= 3*dpSortSelectSize {
		threshold = 2 * dpSortSelectSize
	}
	return int32(counterUnits<<20) | int32(threshold)
}

func dpExhausted(flags int32) bool { return flags < 0 }
func dpThreshold(flags int32) int  { return int(flags & dpThresholdMask) }
func dpNextLevel(flags int32) int32 {
	return flags + dpBudgetStep
}

// dualPivotQuickSelect partitions a[left:right+1] so every outstanding
// index in k holds its final sorted value.
func dualPivotQuickSelect[T ordered](a []T, idx []int32, left, right int, k UpdatingInterval) {
	flags := newDPFlags(right-left+1, int(k.Left()), int(k.Right()))
	dualPivotSelect(a, idx, left, right, k, flags)
}

// dualPivotSelect is the body of dualPivotQuickSelect; recursive calls pass
// on the caller's flags so the budget is shared by the whole call tree.
func dualPivotSelect[T ordered](a []T, idx []int32, left, right int, k UpdatingInterval, flags int32) {
	for {
		ka, kb := int(k.Left()), int(k.Right())

		if min(kb-left, right-ka) < dpSortSelectSize || right-left < dpThreshold(flags) {
			sortSelectWindow(a, idx, left, right, ka, kb)
			return
		}
		if kb-ka < dpSortSelectSize {
			quickSelectAdaptive(a, idx, left, right, ka, kb)
			return
		}
		if dpExhausted(flags) {
			heapSortWindow(a, idx, left, right)
			return
		}
		flags = dpNextLevel(flags)

		p0, p1, _, _ := dualPivotPartition(a, idx, left, right)

		switch {
		case ka >= p0 && kb <= p1:
			return

		case kb < p0:
			right = p0 - 1

		case ka >= p0:
			if ka <= p1 {
				k.UpdateLeft(int32(p1 + 1))
			}
			left = p1 + 1

		case kb <= p1:
			if kb >= p0 {
				k.UpdateRight(int32(p0 - 1))
			}
			right = p0 - 1

		default:
			sub := k.SplitLeft(int32(p0), int32(p1))
			dualPivotSelect(a, idx, left, p0-1, sub, flags)
			left = p1 + 1
		}
	}
}

// dualPivotPartition partitions a[left:right+1] around two pivots chosen by
// sampling five tiles and sorting them (a simplified Tukey's-ninther-style
// pick), using Yaroslavskiy's three-way scan. It returns the pivot-region
// quadruple (p0, p1) = positions equal to the smaller pivot, (p1, p2) =
// strictly between, (p2, p3) = positions equal to the larger pivot. When
// the two sampled pivots turn out equal, the partition collapses to a
// single 3-way pass and p1 == p3, p2 == p0 as the spec requires.
func dualPivotPartition[T ordered](a []T, idx []int32, left, right int) (p0, p1, p2, p3 int) {
	n := right - left + 1
	step := 1 + n/8 + n/64
	mid := left + n/2

	i1, i2, i3, i4, i5 := mid-2*step, mid-step, mid, mid+step, mid+2*step
	if i1 < left {
		i1 = left
	}
	if i5 > right {
		i5 = right
	}
	positions := []int{i1, i2, i3, i4, i5}
	sortPositions(a, idx, positions)

	swap(a, idx, left, positions[1])
	swap(a, idx, right, positions[3])
	v1, v2 := a[left], a[right]

	if v1 == v2 {
		lo, hi := partitionAroundValue(a, idx, left, right, v1)
		return lo, hi, lo, hi
	}

	less, great := left+1, right-1
	i := less
	for i <= great {
		switch {
		case a[i] < v1:
			swap(a, idx, i, less)
			less++
			i++
		case v2 < a[i]:
			for i < great && v2 < a[great] {
				great--
			}
			swap(a, idx, i, great)
			great--
			if a[i] < v1 {
				swap(a, idx, i, less)
				less++
			}
			i++
		default:
			i++
		}
	}
	less--
	great++
	swap(a, idx, left, less)
	swap(a, idx, right, great)

	// Second pass: move values equal to either pivot out of the middle
	// region into the plateaus next to the pivots.
	p1, p2 = less, great
	for i := less + 1; i < p2; {
		switch {
		case a[i] == v1:
			p1++
			swap(a, idx, i, p1)
			i++
		case a[i] == v2:
			p2--
			swap(a, idx, i, p2)
		default:
			i++
		}
	}
	return less, p1, p2, great
}
