// Package storenav turns a shopping list into a walk through a store: from the
// entrance, past the shelf section of every item, to the checkout, narrated
// as turn-by-turn instructions a shopper can follow one step at a time.
//
// 🚀 What is storenav?
//
//	A small, layered routing stack over a grid floor plan:
//		• Layout: walkable cells, shelves, entrance and checkout (floorplan)
//		• Shortest paths: A* between two cells, BFS distance fields (astar, bfs)
//		• Ordering: nearest-neighbour tour with optional 2-opt refinement (tour)
//		• Assembly: one concatenated cell path with per-item arrival marks (route)
//		• Narration: start, straight runs, turns, face-the-shelf, scan, finish (narrate)
//		• Guidance: planning, position snapping and scan confirmation (navigator, confirm)
//
// ✨ Guarantees
//
//   - Deterministic: same layout and list, same instructions
//   - No zero-length straights, one scan per item, right after its shelf turn
//   - Unreachable items are reported, never silently dropped
//
// Under the hood:
//
//	floorplan/  grid, cell kinds, aisle geometry, YAML layouts
//	astar/      4-connected A* with Manhattan heuristic
//	bfs/        breadth-first distance fields and layout audits
//	shoplist/   items and list validation
//	tour/       visiting order by walking distance
//	route/      waypoints, leg stitching, arrival indices
//	narrate/    instruction synthesis
//	navigator/  Planner, Session and the position index
//	confirm/    shelf-photo confirmation (vision model over HTTP)
//	internal/   config, logging, SQLite list store, WebSocket server, CLI
//
// Quick example (reference layout, Milk in aisle 1 section 2):
//
//	Start at the entrance
//	Go straight for 1 step
//	Turn right
//	Go straight for 2 steps
//	Turn left
//	Go straight for 7 steps
//	Turn left to face Milk
//	Scan Milk
//	Turn right
//	Turn right
//	Go straight for 8 steps
//	Turn left
//	Go straight for 11 steps
//	Proceed to checkout
//
//	go install github.com/katalvlaran/storenav/cmd/storenav@latest
package storenav
