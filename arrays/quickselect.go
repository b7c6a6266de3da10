package arrays

import "math"

// Component D: the adaptive single-target quickselect. SelectF64 and
// SelectInt32 call it with ka == kb. The dual-pivot engine (Component E)
// also delegates a window ka < kb once it has shrunk under
// dpSortSelectSize, and quickSelectAdaptive recurses with sub-windows when
// a pivot band splits the window; for such windows the array is still
// fully selected over [ka, kb], but the returned bounds are only
// bookkeeping, not a true equal-value plateau (see sortSelectWindow).

const (
	linearSortSelectSize = 24
	frSamplingSize       = 1200
)

type adaptionMode int

const (
	modeFRSampling adaptionMode = iota
	modeSampling
	modeAdaption
	modeStrict
)

// quickSelectAdaptive partitions a[left:right+1] so that a[ka:kb+1] holds
// its final sorted values, returning the bounds of the equal-value plateau
// containing them. It escalates through four adaption modes as partitions
// fail to shrink the range by a healthy margin, trading pivot-selection cost
// for a stronger worst-case guarantee.
func quickSelectAdaptive[T ordered](a []T, idx []int32, left, right, ka, kb int) (int, int) {
	mode := modeFRSampling
	for {
		if min(kb-left, right-ka) < linearSortSelectSize {
			return sortSelectWindow(a, idx, left, right, ka, kb)
		}

		n := right - left + 1
		margin := n / 4
		before := n

		p0, p1 := adaptiveStep(a, idx, left, right, ka, kb, mode)

		switch {
		case kb < p0:
			right = p0 - 1
		case ka > p1:
			left = p1 + 1
		case ka >= p0 && kb <= p1:
			return p0, p1
		default:
			lo, hi := p0, p1
			if ka < p0 {
				lo, _ = quickSelectAdaptive(a, idx, left, p0-1, ka, min(kb, p0-1))
			}
			if kb > p1 {
				_, hi = quickSelectAdaptive(a, idx, p1+1, right, max(ka, p1+1), kb)
			}
			return lo, hi
		}

		if shrunk := before - (right - left + 1); shrunk < margin && mode < modeStrict {
			mode++
		}
	}
}

// adaptiveStep picks a pivot according to the current adaption mode and
// target position, then partitions the full range around it.
func adaptiveStep[T ordered](a []T, idx []int32, left, right, ka, kb int, mode adaptionMode) (int, int) {
	n := right - left + 1

	var pivotPos int
	switch {
	case mode == modeFRSampling && n > frSamplingSize:
		return floydRivestStep(a, idx, left, right, ka, kb)
	case mode == modeAdaption:
		pivotPos = medianOfMediansPivotBiased(a, idx, left, right, ka)
	case mode == modeStrict:
		pivotPos = medianOfMediansPivot(a, idx, left, right)
	default:
		f := float64(ka-left) / float64(right-left)
		switch {
		case f <= 1.0/12:
			pivotPos = farStep(a, idx, left, left+n/12)
		case f <= 7.0/16:
			pivotPos = nearStep(a, idx, left, left+5*n/12, false)
		case f < 9.0/16:
			pivotPos = midStep(a, idx, left, left+5*n/9)
		case f < 11.0/12:
			pivotPos = nearStep(a, idx, right-5*n/12, right, true)
		default:
			pivotPos = farStep(a, idx, right-n/12, right)
		}
	}

	v := a[pivotPos]
	return partitionAroundValue(a, idx, left, right, v)
}

func farStep[T ordered](a []T, idx []int32, lo, hi int) int {
	mid := lo + (hi-lo)/2
	q1 := lo + (hi-lo)/4
	q3 := lo + 3*(hi-lo)/4
	p := []int{lo, q1, mid, q3}
	sortPositions(a, idx, p)
	return p[0]
}

func nearStep[T ordered](a []T, idx []int32, lo, hi int, upper bool) int {
	mid := lo + (hi-lo)/2
	q1 := lo + (hi-lo)/4
	q3 := lo + 3*(hi-lo)/4
	if upper {
		return upperMedian4(a, idx, lo, q1, mid, q3)
	}
	return lowerMedian4(a, idx, lo, q1, mid, q3)
}

func midStep[T ordered](a []T, idx []int32, lo, hi int) int {
	mid := lo + (hi-lo)/2
	return median3(a, idx, lo, mid, hi)
}

// medianOfMediansGroups samples bounded groups of five across [left, right]
// and returns the indices holding each group's median, sorted by value — a
// capped approximation of the classical linear-time median-of-medians
// selector's grouping pass, shared by the centered (modeStrict) and
// target-biased (modeAdaption) pivot picks.
func medianOfMediansGroups[T ordered](a []T, idx []int32, left, right int) []int {
	n := right - left + 1
	const sampleCap = 64
	groups := n / 5
	if groups > sampleCap {
		groups = sampleCap
	}
	spacing := (n / 5) / groups
	if spacing < 1 {
		spacing = 1
	}

	meds := make([]int, 0, groups)
	for g := 0; g < groups; g++ {
		base := left + g*5*spacing
		if base+4 > right {
			break
		}
		meds = append(meds, median5(a, idx, base, base+1, base+2, base+3, base+4))
	}
	sortPositions(a, idx, meds)
	return meds
}

// medianOfMediansPivot returns the index holding the median of the sampled
// group medians — the pivot sits at the sample centre regardless of where
// the target falls, matching modeStrict's unbiased guarantee.
func medianOfMediansPivot[T ordered](a []T, idx []int32, left, right int) int {
	n := right - left + 1
	if n <= 5 {
		return medianOfRange(a, idx, left, right)
	}

	meds := medianOfMediansGroups(a, idx, left, right)
	if len(meds) == 0 {
		return left + n/2
	}
	return meds[len(meds)/2]
}

// medianOfMediansPivotBiased returns a sampled group median whose rank
// among the sorted group medians is chosen by where ka falls in [left,
// right] — modeAdaption's "pivot adapted to target" guarantee, distinct
// from modeStrict's sample-centre pick. Biasing the rank shifts the
// expected partition split toward ka, shrinking the side containing it
// more aggressively than an unbiased median would.
func medianOfMediansPivotBiased[T ordered](a []T, idx []int32, left, right, ka int) int {
	n := right - left + 1
	if n <= 5 {
		return medianOfRange(a, idx, left, right)
	}

	meds := medianOfMediansGroups(a, idx, left, right)
	if len(meds) == 0 {
		return left + n/2
	}

	f := float64(ka-left) / float64(right-left)
	rank := int(f * float64(len(meds)-1))
	if rank < 0 {
		rank = 0
	}
	if rank > len(meds)-1 {
		rank = len(meds) - 1
	}
	return meds[rank]
}

func medianOfRange[T ordered](a []T, idx []int32, left, right int) int {
	positions := make([]int, 0, right-left+1)
	for i := left; i <= right; i++ {
		positions = append(positions, i)
	}
	sortPositions(a, idx, positions)
	return positions[len(positions)/2]
}

// floydRivestStep narrows the pivot search to a biased sample window before
// falling back to a median-of-medians pick within it, following the sample
// sizing and bias formula of the Floyd-Rivest algorithm.
func floydRivestStep[T ordered](a []T, idx []int32, left, right, ka, kb int) (int, int) {
	n := float64(right - left + 1)
	z := math.Log(n)
	s := 0.5 * math.Exp(2*z/3)
	i := float64(ka - left + 1)
	sd := 0.5 * math.Sqrt(z*s*(n-s)/n)
	if i < n/2 {
		sd = -sd
	}

	sampleLeft := left + int(i-i*s/n+sd)
	sampleRight := left + int(i+(n-i)*s/n+sd)
	if sampleLeft < left {
		sampleLeft = left
	}
	if sampleRight > right {
		sampleRight = right
	}
	if sampleRight <= sampleLeft {
		sampleLeft, sampleRight = left, right
	}

	pivotPos := medianOfMediansPivot(a, idx, sampleLeft, sampleRight)
	v := a[pivotPos]
	return partitionAroundValue(a, idx, left, right, v)
}
