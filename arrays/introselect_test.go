package arrays

import (
	"math/rand"
	"sort"
	"testing"
)

// medianOf3Killer builds the classic adversarial sequence that forces a
// plain median-of-three quicksort/quickselect into its O(n^2) worst case:
// the pivot candidates at the low, middle, and high tile keep landing on
// the same value, repeatedly producing maximally unbalanced partitions.
// The recursion-budget fallback to heap-select (Component E's packed
// control flags) must keep this bounded and still correct.
func medianOf3Killer(n int) []float64 {
	a := make([]float64, n)
	mid := n / 2
	if n%2 == 0 {
		mid--
	}
	for i, v := 0, 0; i < n; i++ {
		switch {
		case i == mid:
			a[i] = float64(n)
		case i%2 == 0:
			v++
			a[i] = float64(v)
		default:
			a[i] = float64(n - i/2)
		}
	}
	return a
}

func TestIntroselectKillerSequence(t *testing.T) {
	n := 20000
	orig := medianOf3Killer(n)
	sorted := append([]float64{}, orig...)
	sort.Float64s(sorted)

	ks := make([]int32, 0, 200)
	for i := 0; i < 200; i++ {
		ks = append(ks, int32(i*97%n))
	}

	a := append([]float64{}, orig...)
	used, _ := SelectF64Multi(a, 0, n-1, ks)
	if used == 0 {
		t.Fatalf("expected a nonzero number of distinct targets")
	}
	sameMultiset(t, a, orig)
	for _, k := range ks {
		if a[k] != sorted[k] {
			t.Errorf("target %d: a[k]=%v, want %v", k, a[k], sorted[k])
		}
	}
}

func TestIntroselectManyDuplicatePivots(t *testing.T) {
	rng := rand.New(rand.NewSource(20))
	n := 10000
	orig := make([]int32, n)
	for i := range orig {
		orig[i] = int32(rng.Intn(3)) // only three distinct values
	}
	sorted := append([]int32{}, orig...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	ks := make([]int32, 0, 100)
	for i := 0; i < 100; i++ {
		ks = append(ks, int32(i*89%n))
	}

	a := append([]int32{}, orig...)
	SelectInt32Multi(a, 0, n-1, ks)
	for _, k := range ks {
		if a[k] != sorted[k] {
			t.Errorf("target %d: a[k]=%v, want %v", k, a[k], sorted[k])
		}
	}
}

func TestDualPivotPartitionInvariant(t *testing.T) {
	rng := rand.New(rand.NewSource(21))
	for trial := 0; trial < 200; trial++ {
		n := 5 + rng.Intn(300)
		a := make([]float64, n)
		for i := range a {
			a[i] = float64(rng.Intn(50))
		}
		p0, p1, p2, p3 := dualPivotPartition(a, nil, 0, n-1)
		if p2 < p1 {
			// Equal pivots collapse the quadruple to (p0, p1, p0, p1).
			if p2 != p0 || p3 != p1 {
				t.Fatalf("collapsed quadruple malformed: %d %d %d %d", p0, p1, p2, p3)
			}
		} else if !(p0 <= p1 && p1 <= p2 && p2 <= p3) {
			t.Fatalf("quadruple out of order: %d %d %d %d", p0, p1, p2, p3)
		}
		v1, v2 := a[p0], a[p2]
		for i := 0; i < p0; i++ {
			if a[i] >= v1 {
				t.Fatalf("trial %d: a[%d]=%v not < smaller pivot %v", trial, i, a[i], v1)
			}
		}
		for i := p0; i <= p1; i++ {
			if a[i] != v1 {
				t.Fatalf("trial %d: a[%d]=%v != smaller pivot %v", trial, i, a[i], v1)
			}
		}
		for i := p1 + 1; i < p2; i++ {
			if a[i] <= v1 || a[i] >= v2 {
				t.Fatalf("trial %d: a[%d]=%v not strictly between pivots", trial, i, a[i])
			}
		}
		for i := p2; i <= p3; i++ {
			if a[i] != v2 {
				t.Fatalf("trial %d: a[%d]=%v != larger pivot %v", trial, i, a[i], v2)
			}
		}
		for i := p3 + 1; i < n; i++ {
			if a[i] <= v2 {
				t.Fatalf("trial %d: a[%d]=%v not > larger pivot %v", trial, i, a[i], v2)
			}
		}
	}
}
