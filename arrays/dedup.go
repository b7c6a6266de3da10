package arrays

// createUpdatingInterval builds the UpdatingInterval back-end for a
// multi-target selection, deduplicating ks along the way. It returns the
// interval, the number of distinct indices it covers, and whether ks was
// sorted (and compacted) in place as a side effect of building it.
func createUpdatingInterval(ks []int32) (UpdatingInterval, int, bool) {
	switch len(ks) {
	case 0:
		return nil, 0, false
	case 1:
		return &pointInterval{idx: ks[0]}, 1, true
	}

	if isAscending(ks) {
		m := compactAscending(ks)
		return newSortedKeyInterval(ks[:m]), m, true
	}

	if len(ks) <= 20 {
		m := insertionDedup(ks)
		return newSortedKeyInterval(ks[:m]), m, true
	}

	lo, hi := ks[0], ks[0]
	for _, k := range ks[1:] {
		if k < lo {
			lo = k
		}
		if k > hi {
			hi = k
		}
	}
	size := int64(hi-lo) + 1
	threshold := size >> uint(densityShift(size))

	if int64(len(ks))*int64(len(ks)) > threshold {
		iv, count := newBitsetInterval(ks, lo, hi)
		return iv, count, false
	}

	set := newHashIndexSet(len(ks))
	for _, k := range ks {
		set.Add(k)
	}
	keys := set.Keys()
	sortAscending(keys, nil)
	m := copy(ks, keys)
	return newSortedKeyInterval(ks[:m]), m, true
}

// densityShift implements the back-end density heuristic: the shift is 5
// for index ranges up to 2^20 wide and falls towards 0 as the range grows
// to 2^31, so a wider range gets a smaller shift (i.e. a higher
// bitset-adoption threshold) to keep the bitset's memory use proportionate.
func densityShift(size int64) int {
	lg := log2Ceil64(size)
	x := (lg - 20) >> 1
	if x < 0 {
		x = 0
	}
	shift := 5 - x
	if shift < 0 {
		shift = 0
	}
	return shift
}

func log2Ceil64(n int64) int {
	lg := 0
	for s := n - 1; s > 0; s >>= 1 {
		lg++
	}
	return lg
}

func isAscending(ks []int32) bool {
	for i := 1; i < len(ks); i++ {
		if ks[i] < ks[i-1] {
			return false
		}
	}
	return true
}

// compactAscending removes adjacent duplicates from an already-ascending
// slice in place, returning the new length.
func compactAscending(ks []int32) int {
	m := 1
	for i := 1; i < len(ks); i++ {
		if ks[i] != ks[m-1] {
			ks[m] = ks[i]
			m++
		}
	}
	return m
}

// insertionDedup sorts and deduplicates a small (n <= 20) slice in place via
// a modified insertion sort that drops duplicates as they're found, and
// returns the new length.
func insertionDedup(ks []int32) int {
	m := 1
	for i := 1; i < len(ks); i++ {
		v := ks[i]
		j := m - 1
		for j >= 0 && ks[j] > v {
			j--
		}
		if j >= 0 && ks[j] == v {
			continue
		}
		copy(ks[j+2:m+1], ks[j+1:m])
		ks[j+1] = v
		m++
	}
	return m
}

// newBitsetInterval builds a bitset interval covering [lo, hi] and returns
// the count of distinct members of ks.
func newBitsetInterval(ks []int32, lo, hi int32) (*bitsetInterval, int) {
	words := (int(hi-lo) + 1 + 63) / 64
	data := make([]uint64, words)
	count := 0
	for _, k := range ks {
		rel := int(k - lo)
		mask := uint64(1) << uint(rel%64)
		w := rel / 64
		if data[w]&mask == 0 {
			count++
		}
		data[w] |= mask
	}
	return &bitsetInterval{data: data, offset: lo, left: lo, right: hi}, count
}
