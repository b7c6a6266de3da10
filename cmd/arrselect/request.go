package main

// Request describes the order statistics to compute across a dataset's
// columns, configured via the functional-options idiom.
type Request struct {
	Columns   []int     // column indices to process; nil means all
	Quantiles []float64 // e.g. 0.5 for the median
	Indices   []int     // explicit order-statistic indices, per column length
	NWorkers  int
}

type requestConfiger func(*Request)

func NewRequest(opts ...requestConfiger) Request {
	r := Request{
		Quantiles: []float64{0.5},
		NWorkers:  1,
	}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// Columns restricts processing to the given zero-based column indices.
func Columns(cols []int) requestConfiger {
	return func(r *Request) { r.Columns = cols }
}

// Quantiles sets the quantiles (in [0,1]) to report per column.
func Quantiles(qs []float64) requestConfiger {
	return func(r *Request) { r.Quantiles = qs }
}

// Indices sets explicit order-statistic indices (0-based) to report per
// column, in addition to any quantiles.
func Indices(idx []int) requestConfiger {
	return func(r *Request) { r.Indices = idx }
}

// NumWorkers records a worker count in the request. Compute does not read
// it and processes columns one after another; GOMAXPROCS is raised by main
// from its -workers flag, not by this option.
func NumWorkers(n int) requestConfiger {
	return func(r *Request) { r.NWorkers = n }
}
