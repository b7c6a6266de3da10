package main

import (
	"encoding/gob"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/wlattner/arrays/arrays"
)

// Stat is a single order statistic reported for a column: either a named
// quantile or an explicit index into the sorted column.
type Stat struct {
	Label string
	Index int
	Value float64
}

// ColumnSummary holds the requested order statistics for one column.
type ColumnSummary struct {
	Name  string
	N     int
	Stats []Stat
}

// Summary is the gob-encodable result of running a Request over a dataset.
type Summary struct {
	Columns  []ColumnSummary
	runTime  time.Duration
	nSamples int
}

// Compute runs req against d, selecting the requested order statistics in
// each column via arrays.SelectF64. Columns are processed in place; each
// column's backing slice ends up partitioned around its selected indices,
// which is fine since the dataset isn't reused afterward.
func Compute(d *dataset, req Request) (*Summary, error) {
	if len(d.Columns) == 0 {
		return nil, errNoColumns
	}

	start := time.Now()

	cols := req.Columns
	if cols == nil {
		cols = make([]int, len(d.Columns))
		for i := range cols {
			cols[i] = i
		}
	}

	s := &Summary{}
	for _, c := range cols {
		if c < 0 || c >= len(d.Columns) {
			return nil, fmt.Errorf("arrselect: column %d out of range [0,%d)", c, len(d.Columns))
		}
		cs, err := summarizeColumn(d.ColNames[c], d.Columns[c], req)
		if err != nil {
			return nil, err
		}
		s.Columns = append(s.Columns, cs)
	}

	s.runTime = time.Since(start)
	s.nSamples = len(d.Columns[cols[0]])
	return s, nil
}

func summarizeColumn(name string, a []float64, req Request) (ColumnSummary, error) {
	cs := ColumnSummary{Name: name, N: len(a)}
	if len(a) == 0 {
		return cs, nil
	}

	prefix := arrays.Preprocess(a)
	if prefix == 0 {
		return cs, fmt.Errorf("arrselect: column %s is entirely NaN", name)
	}

	var ks []int32
	var labels []string
	for _, q := range req.Quantiles {
		k := quantileIndex(prefix, q)
		ks = append(ks, int32(k))
		labels = append(labels, fmt.Sprintf("q%.2f", q))
	}
	for _, idx := range req.Indices {
		if idx < 0 || idx >= prefix {
			return cs, fmt.Errorf("arrselect: column %s index %d out of range [0,%d)", name, idx, prefix)
		}
		ks = append(ks, int32(idx))
		labels = append(labels, fmt.Sprintf("idx%d", idx))
	}
	if len(ks) == 0 {
		return cs, nil
	}

	sub := a[:prefix]
	arrays.SelectF64Multi(sub, 0, prefix-1, append([]int32{}, ks...))
	arrays.Postprocess(sub, ks)

	for i, k := range ks {
		cs.Stats = append(cs.Stats, Stat{Label: labels[i], Index: int(k), Value: sub[k]})
	}
	sort.SliceStable(cs.Stats, func(i, j int) bool { return cs.Stats[i].Index < cs.Stats[j].Index })

	return cs, nil
}

// quantileIndex maps a quantile in [0,1] to a 0-based index in a slice of
// length n, clamping to the valid range.
func quantileIndex(n int, q float64) int {
	k := int(q * float64(n-1))
	if k < 0 {
		k = 0
	}
	if k > n-1 {
		k = n - 1
	}
	return k
}

// Report writes a plain-text table of the computed statistics.
func (s *Summary) Report(w io.Writer) {
	fmt.Fprintf(w, "Selected order statistics from %d samples in %.4f seconds\n",
		s.nSamples, s.runTime.Seconds())
	fmt.Fprintf(w, "\n")

	for _, cs := range s.Columns {
		fmt.Fprintf(w, "%s (n=%d)\n", cs.Name, cs.N)
		fmt.Fprintf(w, "----------------\n")
		for _, st := range cs.Stats {
			fmt.Fprintf(w, "%-10s [%6d]: %v\n", st.Label, st.Index, st.Value)
		}
		fmt.Fprintf(w, "\n")
	}
}

// Save gob-encodes the summary to w.
func (s *Summary) Save(w io.Writer) error {
	e := gob.NewEncoder(w)
	return e.Encode(s)
}

// Load decodes a previously-saved summary from r.
func (s *Summary) Load(r io.Reader) error {
	d := gob.NewDecoder(r)
	return d.Decode(s)
}
