// Package astar finds shortest paths between two cells of a floorplan.Grid.
//
// Overview:
//
//   - A* over 4-connected neighbours (up, down, left, right), unit edge cost.
//   - Heuristic h = Manhattan distance to the goal, which is admissible and
//     consistent for unit-cost 4-connected movement, so returned paths are
//     shortest.
//   - Shelf cells and cells outside the grid are rejected as neighbours;
//     Open, Entrance and Checkout cells are traversable.
//
// Frontier policy:
//
//   - Nodes are kept in a binary heap ordered by f = g + h. Among equal f the
//     node inserted first wins, so identical inputs always return the same path
//     among several of equal length.
//   - A generated neighbour already closed is dropped. A neighbour already in
//     the frontier with an equal or better g is dropped. A strictly better one
//     is pushed again and the older entry is skipped when popped (lazy
//     decrease-key); with unit costs and a consistent heuristic this never
//     changes the returned length.
//
// Complexity:
//
//   - Time:  O(V log V), V = W×H.
//   - Space: O(V) for the closed set, best-g table and heap.
//
// Errors (sentinel):
//
//   - ErrNilGrid:         nil grid.
//   - ErrOutOfBounds:     start or goal outside the grid (wraps floorplan.ErrOutOfBounds).
//   - ErrNoPath:          the frontier was exhausted; a recoverable, common outcome.
//   - ErrOptionViolation: an invalid Option value.
//
// Thread safety: FindPath keeps all state in a per-call runner; concurrent calls
// over the same Grid are safe because a Grid is immutable.
package astar
