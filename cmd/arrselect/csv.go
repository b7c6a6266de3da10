package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// dataset holds one or more numeric columns read from a CSV file, column
// major so each column can be handed to arrays.SelectF64 independently.
type dataset struct {
	ColNames []string
	Columns  [][]float64
}

// parseCSV reads a CSV of numeric columns, detecting whether the first row
// is a header (every cell non-numeric) or data.
func parseCSV(r io.Reader) (*dataset, error) {
	reader := csv.NewReader(r)

	row, err := reader.Read()
	if err != nil {
		return nil, err
	}

	d := &dataset{}

	if names, ok := parseHeader(row); ok {
		d.ColNames = names
		d.Columns = make([][]float64, len(names))
	} else {
		d.ColNames = make([]string, len(row))
		for i := range row {
			d.ColNames[i] = fmt.Sprintf("X%d", i+1)
		}
		d.Columns = make([][]float64, len(row))
		if err := d.appendRow(row); err != nil {
			return d, err
		}
	}

	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return d, err
		}
		if err := d.appendRow(row); err != nil {
			return d, err
		}
	}

	return d, nil
}

func (d *dataset) appendRow(row []string) error {
	if len(row) != len(d.Columns) {
		return fmt.Errorf("row has %d columns, want %d", len(row), len(d.Columns))
	}
	for i, val := range row {
		v, err := strconv.ParseFloat(val, 64)
		if err != nil {
			return fmt.Errorf("column %s: %v", d.ColNames[i], err)
		}
		d.Columns[i] = append(d.Columns[i], v)
	}
	return nil
}

// parseHeader reports whether row looks like a header (every cell fails to
// parse as a float) along with the column names if so.
func parseHeader(row []string) ([]string, bool) {
	if len(row) == 0 {
		return nil, false
	}
	for _, val := range row {
		if _, err := strconv.ParseFloat(val, 64); err == nil {
			return nil, false
		}
	}
	return append([]string{}, row...), true
}

var errNoColumns = errors.New("arrselect: data file has no columns")
