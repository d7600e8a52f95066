package floorplan

// ReferenceRows is the 14×12 demo store: six aisles with shelves on odd
// columns 1..11 (sections 1..8), the entrance at (0,10) and the checkout at (13,10).
var ReferenceRows = []string{
	"..............",
	".#.#.#.#.#.#..",
	".#.#.#.#.#.#..",
	".#.#.#.#.#.#..",
	".#.#.#.#.#.#..",
	".#.#.#.#.#.#..",
	".#.#.#.#.#.#..",
	".#.#.#.#.#.#..",
	".#.#.#.#.#.#..",
	"..............",
	"E............C",
	"..............",
}

// Reference returns a freshly parsed copy of the demo store layout.
func Reference() *Grid {
	g, err := Parse(ReferenceRows)
	if err != nil {
		panic(err)
	}
	return g
}
