package arrays

import "math"

// Preprocess relocates every NaN in a to the tail of the slice (order among
// them unspecified) and returns the length of the remaining, partitionable
// prefix. Callers should restrict SelectF64/SelectF64Multi to a[:prefix]
// and treat any target index beyond it as "not a number" rather than
// passing it through selection, which has no defined order for NaN.
func Preprocess(a []float64) (prefix int) {
	i, j := 0, len(a)-1
	for i <= j {
		if math.IsNaN(a[i]) {
			a[i], a[j] = a[j], a[i]
			j--
			continue
		}
		i++
	}
	return i
}

// Postprocess restores negative zero at each given index whose value
// compares equal to zero, undoing the sign-blind comparisons selection
// performs (0 == -0 under IEEE 754 ordering, so selection is free to swap
// their signs around).
func Postprocess(a []float64, idx []int32) {
	for _, i := range idx {
		if a[i] == 0 {
			a[i] = math.Copysign(0, -1)
		}
	}
}
