package floorplan

// labelComponents assigns a component label to every walkable cell using a
// BFS per unlabelled cell under 4-connectivity. Shelves keep label -1.
//
// Time:   O(W·H·4).
// Memory: O(W·H) for labels and the queue.
func (g *Grid) labelComponents() {
	g.comp = make([]int, len(g.cells))
	for i := range g.comp {
		g.comp[i] = -1
	}
	g.ncomp = 0
	queue := make([]int, 0, len(g.cells))
	for i0, k := range g.cells {
		if !k.Walkable() || g.comp[i0] >= 0 {
			continue
		}
		label := g.ncomp
		g.ncomp++
		g.comp[i0] = label
		queue = append(queue[:0], i0)
		for qi := 0; qi < len(queue); qi++ {
			u := g.Coordinate(queue[qi])
			for _, d := range Conn4 {
				v := u.Add(d)
				if !g.Walkable(v) {
					continue
				}
				vi := g.Index(v)
				if g.comp[vi] < 0 {
					g.comp[vi] = label
					queue = append(queue, vi)
				}
			}
		}
	}
}

// Components returns the number of walkable connected regions.
func (g *Grid) Components() int { return g.ncomp }

// ComponentOf returns the component label of p, or -1 if p is a shelf or out
// of bounds.
func (g *Grid) ComponentOf(p Point) int {
	if !g.InBounds(p) {
		return -1
	}
	return g.comp[g.Index(p)]
}

// Connected reports whether a walkable path exists between a and b.
func (g *Grid) Connected(a, b Point) bool {
	ca := g.ComponentOf(a)
	return ca >= 0 && ca == g.ComponentOf(b)
}
