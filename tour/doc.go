// Package tour decides the order in which shopping-list items are visited.
//
// Order runs a greedy nearest-neighbour heuristic: starting at a point
// (normally the store entrance) it repeatedly walks to the remaining item whose
// shortest A* path from the current position is shortest, measured in cells
// of the returned path, not in straight-line distance. Shelves therefore
// count: an item two columns away behind a shelf run can be farther than one
// six columns away in open floor.
//
// This is an approximation of an open travelling-salesman path, not an
// optimum. WithLocalSearch adds a first-improvement 2-opt pass over the
// pairwise path-length matrix, which can only shorten the greedy order.
//
// Items whose navigation point cannot be reached are not visited; they are
// returned in Plan.Unreachable so the caller can tell the shopper.
//
// Ties between equally near items go to the one listed first.
//
// Complexity:
//
//   - Greedy: O(n²) path searches, n = number of items.
//   - Local search: O(n²) path searches for the matrix, then O(iter·n²).
package tour
