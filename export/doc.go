// Package export writes finished solutions as long-format CSV tables:
// one row per (x, tau) pair with the matrix value in the third column,
// rows ordered tau-major.
package export
