package export_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/1570590/mn-valoracio-d-opcions-financeres/export"
)

// TestWriteTable emits a header plus one row per (x, tau) pair in
// tau-major order.
func TestWriteTable(t *testing.T) {
	x := []float64{-1, 0}
	tau := []float64{0, 0.5, 1}
	values := [][]float64{
		{1, 2, 3},
		{4, 5, 6},
	}

	var buf bytes.Buffer
	require.NoError(t, export.WriteTable(&buf, x, tau, values, "H(x, tau)"))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 1+len(x)*len(tau))

	assert.Equal(t, `x,tau,"H(x, tau)"`, lines[0])
	assert.Equal(t, "-1,0,1", lines[1])
	assert.Equal(t, "0,0,4", lines[2])
	assert.Equal(t, "-1,0.5,2", lines[3])
	assert.Equal(t, "0,1,6", lines[6])
}

// TestWriteTable_ShapeMismatch rejects inconsistent dimensions.
func TestWriteTable_ShapeMismatch(t *testing.T) {
	var buf bytes.Buffer

	err := export.WriteTable(&buf, []float64{1, 2}, []float64{0}, [][]float64{{1}}, "v")
	assert.ErrorIs(t, err, export.ErrShapeMismatch)

	err = export.WriteTable(&buf, []float64{1}, []float64{0, 1}, [][]float64{{1}}, "v")
	assert.ErrorIs(t, err, export.ErrShapeMismatch)
}
