package export

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
)

// ErrShapeMismatch indicates the matrix dimensions do not match the
// coordinate axes.
var ErrShapeMismatch = errors.New("export: matrix shape does not match axes")

// WriteTable writes the matrix as CSV rows (x, tau, value) under a
// header naming the value column, e.g. "H(x, tau)". Rows are emitted
// tau-major: all spatial points of tau[0], then tau[1], and so on.
func WriteTable(w io.Writer, x, tau []float64, values [][]float64, valueHeader string) error {
	if len(values) != len(x) {
		return ErrShapeMismatch
	}
	for _, row := range values {
		if len(row) != len(tau) {
			return ErrShapeMismatch
		}
	}

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"x", "tau", valueHeader}); err != nil {
		return fmt.Errorf("export: header: %w", err)
	}

	rec := make([]string, 3)
	for j, t := range tau {
		for i, xi := range x {
			rec[0] = strconv.FormatFloat(xi, 'g', -1, 64)
			rec[1] = strconv.FormatFloat(t, 'g', -1, 64)
			rec[2] = strconv.FormatFloat(values[i][j], 'g', -1, 64)
			if err := cw.Write(rec); err != nil {
				return fmt.Errorf("export: row (%d,%d): %w", i, j, err)
			}
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteFile writes the table to path, creating or truncating it.
func WriteFile(path string, x, tau []float64, values [][]float64, valueHeader string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: create %s: %w", path, err)
	}
	if err := WriteTable(f, x, tau, values, valueHeader); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
