// Package route stitches per-leg shortest paths into one continuous walk.
//
// What:
//
//	Waypoints are the entrance, the navigation point of every ordered item and
//	the checkout. Build runs astar.FindPath for each consecutive pair and
//	concatenates the legs. Every leg after the first drops its first cell,
//	which is the previous leg's last cell, so the walk never repeats a
//	coordinate at a leg boundary.
//
// Errors:
//
//   - ErrUnreachable (as a *LegError) if any leg has no path. The route is
//     not truncated.
//   - ErrDegenerateRoute if the result has fewer than two cells.
//   - astar errors such as astar.ErrOutOfBounds pass through, wrapped with
//     the leg index.
//
// Complexity: one A* search per leg, O(L·V log V) for L legs on V cells.
package route
