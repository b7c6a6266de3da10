package arrays

import (
	"math"
	"math/rand"
	"sort"
	"testing"
)

func sameMultiset(t *testing.T, got, orig []float64) {
	t.Helper()
	a := append([]float64{}, got...)
	b := append([]float64{}, orig...)
	sort.Float64s(a)
	sort.Float64s(b)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("multiset changed: got %v, want %v", got, orig)
		}
	}
}

func checkSelected(t *testing.T, a []float64, k int, want float64) {
	t.Helper()
	for i := 0; i < k; i++ {
		if a[i] > a[k] {
			t.Errorf("a[%d]=%v > a[k]=%v", i, a[i], a[k])
		}
	}
	for i := k + 1; i < len(a); i++ {
		if a[i] < a[k] {
			t.Errorf("a[%d]=%v < a[k]=%v", i, a[i], a[k])
		}
	}
	if a[k] != want {
		t.Errorf("a[%d]=%v, want %v", k, a[k], want)
	}
}

func TestSelectF64SingleTarget(t *testing.T) {
	rng := rand.New(rand.NewSource(10))
	for _, n := range []int{1, 2, 5, 50, 500, 5000} {
		orig := make([]float64, n)
		for i := range orig {
			orig[i] = rng.Float64() * 1000
		}
		sorted := append([]float64{}, orig...)
		sort.Float64s(sorted)

		for _, k := range []int{0, n / 4, n / 2, n - 1} {
			a := append([]float64{}, orig...)
			SelectF64(a, 0, n-1, k)
			sameMultiset(t, a, orig)
			checkSelected(t, a, k, sorted[k])
		}
	}
}

func TestSelectInt32SingleTarget(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	n := 2000
	orig := make([]int32, n)
	for i := range orig {
		orig[i] = int32(rng.Intn(100)) // heavy duplicates
	}
	sorted := append([]int32{}, orig...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	for _, k := range []int{0, n / 3, n - 1} {
		a := append([]int32{}, orig...)
		lo, hi := SelectInt32(a, 0, n-1, k)
		if a[k] != sorted[k] {
			t.Errorf("k=%d: a[k]=%v, want %v", k, a[k], sorted[k])
		}
		if lo > k || hi < k {
			t.Errorf("k=%d: plateau [%d,%d] doesn't contain k", k, lo, hi)
		}
	}
}

func TestSelectF64MultiTarget(t *testing.T) {
	rng := rand.New(rand.NewSource(12))
	n := 3000
	orig := make([]float64, n)
	for i := range orig {
		orig[i] = rng.Float64() * 1e6
	}
	sorted := append([]float64{}, orig...)
	sort.Float64s(sorted)

	ks := []int32{0, 10, 100, int32(n / 2), int32(n - 1), int32(n / 2)} // includes a duplicate
	a := append([]float64{}, orig...)
	used, _ := SelectF64Multi(a, 0, n-1, ks)
	if used != 5 {
		t.Errorf("used=%d, want 5 distinct targets", used)
	}
	sameMultiset(t, a, orig)
	for _, k := range []int32{0, 10, 100, int32(n / 2), int32(n - 1)} {
		if a[k] != sorted[k] {
			t.Errorf("target %d: a[k]=%v, want %v", k, a[k], sorted[k])
		}
	}
}

func TestSelectF64MultiTargetDense(t *testing.T) {
	rng := rand.New(rand.NewSource(13))
	n := 1000
	orig := make([]float64, n)
	for i := range orig {
		orig[i] = rng.Float64()
	}
	sorted := append([]float64{}, orig...)
	sort.Float64s(sorted)

	ks := make([]int32, 50)
	for i := range ks {
		ks[i] = int32(i * 17 % n)
	}
	a := append([]float64{}, orig...)
	SelectF64Multi(a, 0, n-1, ks)
	sameMultiset(t, a, orig)
	for _, k := range ks {
		if a[k] != sorted[k] {
			t.Errorf("target %d: a[k]=%v, want %v", k, a[k], sorted[k])
		}
	}
}

func TestSelectAllDuplicates(t *testing.T) {
	n := 500
	orig := make([]float64, n)
	for i := range orig {
		orig[i] = 7
	}
	a := append([]float64{}, orig...)
	SelectF64(a, 0, n-1, n/2)
	sameMultiset(t, a, orig)
	for _, v := range a {
		if v != 7 {
			t.Fatalf("expected all 7s, got %v", a)
		}
	}
}

func TestSelectSingleElementRange(t *testing.T) {
	a := []float64{42}
	lo, hi := SelectF64(a, 0, 0, 0)
	if lo != 0 || hi != 0 || a[0] != 42 {
		t.Errorf("single-element selection: lo=%d hi=%d a=%v", lo, hi, a)
	}
}

func TestSelectAlreadySortedAndReversed(t *testing.T) {
	n := 4000
	asc := make([]float64, n)
	desc := make([]float64, n)
	for i := range asc {
		asc[i] = float64(i)
		desc[i] = float64(n - i)
	}
	for _, orig := range [][]float64{asc, desc} {
		sorted := append([]float64{}, orig...)
		sort.Float64s(sorted)
		for _, k := range []int{0, n / 2, n - 1} {
			a := append([]float64{}, orig...)
			SelectF64(a, 0, n-1, k)
			if a[k] != sorted[k] {
				t.Errorf("k=%d: a[k]=%v, want %v", k, a[k], sorted[k])
			}
		}
	}
}

func TestPreprocessPostprocess(t *testing.T) {
	a := []float64{3, math.NaN(), 1, math.NaN(), 2, 0}
	prefix := Preprocess(a)
	if prefix != 4 {
		t.Fatalf("prefix=%d, want 4", prefix)
	}
	for _, v := range a[:prefix] {
		if math.IsNaN(v) {
			t.Fatalf("NaN found in partitionable prefix: %v", a)
		}
	}
	SelectF64(a, 0, prefix-1, prefix/2)

	zeroAt := -1
	for i, v := range a[:prefix] {
		if v == 0 {
			zeroAt = i
		}
	}
	if zeroAt < 0 {
		t.Fatalf("expected a zero value in the partitionable prefix: %v", a)
	}
	Postprocess(a, []int32{int32(zeroAt)})
	if !math.Signbit(a[zeroAt]) {
		t.Errorf("Postprocess did not set the sign bit on a zero at %d: %v", zeroAt, a[zeroAt])
	}
}
