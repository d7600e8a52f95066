// Open-path 2-opt for the greedy order.
//
// The sequence is seq = [start, item₁ … itemₙ] plus the fixed end when one is
// configured. Reversing the item segment [i..k] replaces the arcs (a,b) and
// (c,d) with (a,c) and (b,d), where a=seq[i−1], b=seq[i], c=seq[k] and
// d=seq[k+1]. When k is the last position and there is no end, d does not
// exist and only the arc into the segment changes.
//
// Path lengths on a grid are symmetric, so a reversed segment costs the same
// internally. Scanning is deterministic and restarts after every accepted move.
package tour

import (
	"github.com/katalvlaran/storenav/floorplan"
	"github.com/katalvlaran/storenav/shoplist"
)

// improve applies 2-opt to plan.Ordered and recomputes plan.Steps.
func improve(g *floorplan.Grid, start floorplan.Point, plan Plan, cfg Options) (Plan, error) {
	pts := make([]floorplan.Point, 0, len(plan.Ordered)+2)
	pts = append(pts, start)
	for _, it := range plan.Ordered {
		pts = append(pts, it.NavPoint(g))
	}
	hasEnd := cfg.End != nil
	if hasEnd {
		pts = append(pts, *cfg.End)
	}

	w, err := stepMatrix(g, pts)
	if err != nil {
		return Plan{}, err
	}

	seq := make([]int, len(pts))
	for i := range seq {
		seq[i] = i
	}
	last := len(plan.Ordered) // last movable position in seq

	moves := 0
	for improved := true; improved; {
		improved = false
	scan:
		for i := 1; i < last; i++ {
			for k := i + 1; k <= last; k++ {
				a, b, c := seq[i-1], seq[i], seq[k]
				before, after := w[a][b], w[a][c]
				if k+1 < len(seq) {
					d := seq[k+1]
					before += w[c][d]
					after += w[b][d]
				}
				if after < before {
					reverse(seq, i, k)
					moves++
					improved = true
					break scan
				}
			}
		}
		if cfg.MaxIters > 0 && moves >= cfg.MaxIters {
			break
		}
	}

	out := make(shoplist.List, 0, len(plan.Ordered))
	for _, idx := range seq[1 : last+1] {
		out = append(out, plan.Ordered[idx-1])
	}
	steps := 0
	for i := 1; i < len(seq); i++ {
		steps += w[seq[i-1]][seq[i]]
	}

	return Plan{Ordered: out, Unreachable: plan.Unreachable, Steps: steps}, nil
}

// stepMatrix computes pairwise walking steps between pts.
func stepMatrix(g *floorplan.Grid, pts []floorplan.Point) ([][]int, error) {
	n := len(pts)
	w := make([][]int, n)
	for i := range w {
		w[i] = make([]int, n)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			cells, err := legCells(g, pts[i], pts[j])
			if err != nil {
				return nil, err
			}
			w[i][j] = cells - 1
			w[j][i] = cells - 1
		}
	}
	return w, nil
}

// reverse flips seq[i..k] in place.
func reverse(seq []int, i, k int) {
	for i < k {
		seq[i], seq[k] = seq[k], seq[i]
		i++
		k--
	}
}
