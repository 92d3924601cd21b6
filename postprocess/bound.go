package postprocess

import (
	"errors"
	"sort"
)

// ErrLengthMismatch indicates the solution matrix has a different
// number of rows than the coordinate axis.
var ErrLengthMismatch = errors.New("postprocess: coordinate and matrix lengths differ")

// BoundInterval returns the sub-axis and sub-matrix whose coordinate
// lies in [minVal, maxVal]. coord must be sorted ascending; the window
// spans from the first index with coord ≥ minVal up to (excluding) the
// first index with coord > maxVal. The returned slices alias the
// inputs; no copy is made.
func BoundInterval(coord []float64, values [][]float64, minVal, maxVal float64) ([]float64, [][]float64, error) {
	if len(coord) != len(values) {
		return nil, nil, ErrLengthMismatch
	}

	lo := sort.SearchFloat64s(coord, minVal)
	hi := sort.Search(len(coord), func(i int) bool { return coord[i] > maxVal })

	return coord[lo:hi], values[lo:hi], nil
}
