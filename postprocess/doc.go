// Package postprocess maps finished solution matrices back to the
// windows and coordinates of practical interest.
//
// What:
//
//   - BoundInterval — restricts a solution to the rows whose coordinate
//     lies inside [min, max] (binary search on the ordered axis; rows
//     equal to max are kept, matching searchsorted right-side semantics).
//   - UndoTimeChange — inverts the time transform, t = T − 2τ/σ².
//   - RH / RW — invert the spatial transform back to the asset-ratio
//     coordinate: R_H(x) = eˣ·T and R_W(x) = eˣ/T.
//
// The coordinate axis is assumed strictly increasing (a solver
// invariant) and is not re-validated here. BoundInterval is idempotent:
// bounding a bounded result with the same window is a no-op.
//
// Errors: ErrLengthMismatch when the matrix row count does not match
// the coordinate axis.
package postprocess
