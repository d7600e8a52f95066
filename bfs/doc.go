// Package bfs runs breadth-first search over the walkable cells of a
// floorplan.Grid, producing an unweighted distance field and the visit order.
//
// Uses in storenav:
//
//   - Layout checks: which aisle sections can be reached from the entrance.
//   - Reference oracle: BFS distances are exact shortest 4-connected path
//     lengths, so they cross-check A* results in tests.
//
// A visit hook (OnVisit) and context cancellation are configured through
// functional Options.
//
// Complexity: O(W×H) time and memory.
package bfs
