package main

import (
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/davecheney/profile"

	flag "github.com/docker/docker/pkg/mflag"
)

var (
	dataFile    = flag.String([]string{"d", "-data"}, "", "csv file of numeric columns")
	summaryFile = flag.String([]string{"o", "-out"}, "", "file to gob-encode the computed summary to")
	loadFile    = flag.String([]string{"l", "-load"}, "", "gob-encoded summary to report instead of recomputing")
	columnsArg  = flag.String([]string{"-columns"}, "", "comma-separated zero-based column indices (default: all)")
	quantileArg = flag.String([]string{"q", "-quantiles"}, "0.5", "comma-separated quantiles in [0,1]")
	indexArg    = flag.String([]string{"-indices"}, "", "comma-separated explicit order-statistic indices")
	nWorkers    = flag.Int([]string{"-workers"}, 1, "number of workers for profiling/GOMAXPROCS only")
	runProfile  = flag.Bool([]string{"-profile"}, false, "cpu profile")
)

func main() {
	flag.Parse()

	if *nWorkers > 1 {
		runtime.GOMAXPROCS(runtime.NumCPU())
	}

	if *runProfile {
		defer profile.Start(profile.CPUProfile).Stop()
	}

	if *loadFile != "" {
		f, err := os.Open(*loadFile)
		if err != nil {
			fatal("error opening summary file", err.Error())
		}
		defer f.Close()

		s := new(Summary)
		if err := s.Load(f); err != nil {
			fatal("error loading summary", err.Error())
		}
		s.Report(os.Stdout)
		return
	}

	if *dataFile == "" {
		fmt.Fprintf(os.Stderr, "Usage of arrselect:\n\n")
		flag.PrintDefaults()
		os.Exit(1)
	}

	f, err := os.Open(*dataFile)
	if err != nil {
		fatal("error opening data file", err.Error())
	}
	defer f.Close()

	d, err := parseCSV(f)
	if err != nil {
		fatal("error parsing input data", err.Error())
	}

	cols, err := parseIntList(*columnsArg)
	if err != nil {
		fatal("invalid -columns", err.Error())
	}
	quantiles, err := parseFloatList(*quantileArg)
	if err != nil {
		fatal("invalid -quantiles", err.Error())
	}
	indices, err := parseIntList(*indexArg)
	if err != nil {
		fatal("invalid -indices", err.Error())
	}

	req := NewRequest(Columns(cols), Quantiles(quantiles), Indices(indices), NumWorkers(*nWorkers))

	s, err := Compute(d, req)
	if err != nil {
		fatal("error computing order statistics", err.Error())
	}

	if *summaryFile != "" {
		o, err := os.Create(*summaryFile)
		if err != nil {
			fatal("error creating", *summaryFile, err.Error())
		}
		defer o.Close()

		if err := s.Save(o); err != nil {
			fatal("error saving summary", err.Error())
		}
	}

	s.Report(os.Stdout)
}

func fatal(a ...interface{}) {
	fmt.Fprintln(os.Stderr, a...)
	os.Exit(1)
}

func parseIntList(s string) ([]int, error) {
	if s == "" {
		return nil, nil
	}
	var out []int
	for _, part := range strings.Split(s, ",") {
		v, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func parseFloatList(s string) ([]float64, error) {
	if s == "" {
		return nil, nil
	}
	var out []float64
	for _, part := range strings.Split(s, ",") {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
