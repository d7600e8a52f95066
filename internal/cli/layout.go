package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/storenav/bfs"
	"github.com/katalvlaran/storenav/floorplan"
)

func layoutCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "layout",
		Short: "Inspect the store layout",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the layout grid",
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := a.grid()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, g)
			fmt.Fprintf(out, "%dx%d, %d aisle(s), entrance %v, checkout %v\n",
				g.Width(), g.Height(), g.Aisles(), g.Entrance(), g.Checkout())
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "check",
		Short: "List shelf sections that cannot be reached from the entrance",
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := a.grid()
			if err != nil {
				return err
			}
			res, err := AuditLayout(cmd.Context(), g)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, s := range res.Unreachable {
				fmt.Fprintf(out, "%s aisle %d section %d at %v\n",
					warnColor.Sprint("unreachable:"), s.Aisle, s.Section, s.At)
			}
			if res.Stranded > 0 {
				fmt.Fprintf(out, "%s %d of %d floor cell(s) cut off from the entrance\n",
					warnColor.Sprint("warning:"), res.Stranded, res.Floor)
			}
			fmt.Fprintf(out, "%d of %d section(s) reachable, farthest %d steps from the entrance\n",
				res.Sections-len(res.Unreachable), res.Sections, res.Farthest)
			if len(res.Unreachable) > 0 {
				return fmt.Errorf("layout has %d unreachable section(s)", len(res.Unreachable))
			}
			return nil
		},
	})
	return cmd
}

// Section is one shelf section's navigation point.
type Section struct {
	Aisle, Section int
	At             floorplan.Point
}

// Audit summarises which sections a shopper can reach.
type Audit struct {
	Sections    int
	Unreachable []Section
	Farthest    int

	// Floor counts walkable cells; Stranded those the entrance cannot reach.
	Floor, Stranded int
}

// AuditLayout runs one breadth-first search from the entrance and checks the
// navigation point of every shelf cell of every aisle.
func AuditLayout(ctx context.Context, g *floorplan.Grid) (Audit, error) {
	reached := 0
	field, err := bfs.BFS(g, g.Entrance(),
		bfs.WithContext(ctx),
		bfs.WithOnVisit(func(floorplan.Point, int) error {
			reached++
			return nil
		}),
	)
	if err != nil {
		return Audit{}, fmt.Errorf("layout audit: %w", err)
	}

	var audit Audit
	for i := 0; i < g.Len(); i++ {
		if g.Walkable(g.Coordinate(i)) {
			audit.Floor++
		}
	}
	audit.Stranded = audit.Floor - reached
	for aisle := 1; aisle <= g.Aisles(); aisle++ {
		x := g.ShelfX(aisle)
		for y := 0; y < g.Height(); y++ {
			if g.MustAt(floorplan.Pt(x, y)) != floorplan.Shelf {
				continue
			}
			audit.Sections++
			at := g.NavPoint(aisle, y)
			d, ok := field.DistanceTo(at)
			if !ok {
				audit.Unreachable = append(audit.Unreachable, Section{Aisle: aisle, Section: y, At: at})
				continue
			}
			if d > audit.Farthest {
				audit.Farthest = d
			}
		}
	}
	return audit, nil
}
