// Package pipeline sequences the eight (equation × scheme × option)
// solver combinations and applies the configured post-processing to
// each finished solution.
//
// What:
//
//   - Combo — one (equation, scheme, option) triple; AllCombos lists
//     the eight the engine supports.
//   - Run — executes every combination as an independent concurrent
//     task. Each Result carries its own error: one failing combination
//     never prevents the other seven from completing. The context
//     cancels combinations that have not started yet.
//   - Per combination: solve, bound the solution to the configured x
//     window, invert the time change, bound again for the
//     variable-changed view and map x to the ratio coordinate R.
//
// The combinations share no mutable state; each owns its grid and
// solution matrix exclusively, so no locking is involved.
package pipeline
