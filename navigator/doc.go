// Package navigator runs the whole routing pipeline and tracks a shopper's
// progress through the resulting instructions.
//
// Planner.Plan goes grid → visiting order → route → instructions in one call
// and is recomputed from scratch whenever the item set changes:
//
//   - An empty list yields the single finish instruction
//     "Add items to your list to begin." and no error.
//   - Items that cannot be reached are left out of the tour and reported in
//     Result.Unreachable.
//   - If the route cannot be assembled the result carries the terminal
//     "Cannot calculate path" instruction together with the error.
//
// A Session holds the cursor the UI advances with next, skip and scan, and
// can jump ahead to the instruction nearest a sampled position. Sessions are
// safe for concurrent use; everything else in this package is immutable
// after construction.
package navigator
