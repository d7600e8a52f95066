// Package narrate turns a route into turn-by-turn instructions.
//
// Synthesize walks the route's path once, tracking the shopper's facing
// (N, S, E or W, derived from the delta between consecutive cells):
//
//   - The first instruction is start at the first cell. The first step fixes
//     the initial facing without a turn.
//   - A step in the current facing extends the straight run.
//   - A change of facing flushes the run (only if non-zero) and emits left or
//     right from the 90° table. A reversal is two right turns at the same
//     cell. The run restarts at 1.
//   - Reaching an item's navigation point flushes the run and emits
//     turn-left or turn-right (the side of the item's shelf) followed by scan
//     for that item. The run restarts at 0.
//   - After the last cell the run is flushed and finish is emitted at the
//     checkout.
//
// Straight distances are cell counts; WithDistanceScale only changes the
// display text.
//
// Instruction slices returned by this package are freshly allocated and not
// retained.
package narrate
