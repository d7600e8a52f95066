package route_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/storenav/astar"
	"github.com/katalvlaran/storenav/floorplan"
	"github.com/katalvlaran/storenav/route"
	"github.com/katalvlaran/storenav/shoplist"
)

func requireContinuous(t *testing.T, g *floorplan.Grid, path []floorplan.Point) {
	t.Helper()
	for i, p := range path {
		require.True(t, g.Walkable(p), "cell %d %v not walkable", i, p)
		if i == 0 {
			continue
		}
		require.NotEqual(t, path[i-1], p, "duplicate adjacent point at %d", i)
		require.Equal(t, 1, path[i-1].Manhattan(p), "jump at %d", i)
	}
}

func TestBuild_SingleItem(t *testing.T) {
	g := floorplan.Reference()
	list := shoplist.List{{ID: "tea", Name: "Tea", Aisle: 1, Section: 2}}

	r, err := route.Build(g, list)
	require.NoError(t, err)

	require.Equal(t, []floorplan.Point{g.Entrance(), floorplan.Pt(2, 2), g.Checkout()}, r.Waypoints)
	require.Len(t, r.Path, 30)
	require.Equal(t, 29, r.Steps())
	require.Equal(t, []int{10, 29}, r.LegEnds)
	require.Equal(t, g.Entrance(), r.Path[0])
	require.Equal(t, floorplan.Pt(2, 2), r.Path[r.ArrivalIndex(0)])
	require.Equal(t, g.Checkout(), r.Path[len(r.Path)-1])
	requireContinuous(t, g, r.Path)
}

func TestBuild_NoItems(t *testing.T) {
	g := floorplan.Reference()

	r, err := route.Build(g, nil)
	require.NoError(t, err)
	require.Empty(t, r.Items)
	require.Len(t, r.Path, 14)
	require.Equal(t, []int{13}, r.LegEnds)
	requireContinuous(t, g, r.Path)
}

func TestBuild_SharedNavigationPoint(t *testing.T) {
	g := floorplan.Reference()
	list := shoplist.List{
		{ID: "a", Aisle: 1, Section: 2},
		{ID: "b", Aisle: 1, Section: 2},
	}

	r, err := route.Build(g, list)
	require.NoError(t, err)
	require.Len(t, r.Path, 30)
	require.Equal(t, []int{10, 10, 29}, r.LegEnds)
	requireContinuous(t, g, r.Path)
}

func TestBuild_LegBoundaries(t *testing.T) {
	g := floorplan.Reference()
	list := shoplist.List{
		{ID: "a", Aisle: 6, Section: 8},
		{ID: "b", Aisle: 2, Section: 1},
		{ID: "c", Aisle: 4, Section: 5},
		{ID: "d", Aisle: 1, Section: 1},
	}

	r, err := route.Build(g, list)
	require.NoError(t, err)
	requireContinuous(t, g, r.Path)
	for i, end := range r.LegEnds {
		require.Equal(t, r.Waypoints[i+1], r.Path[end])
	}
}

func TestBuild_DoesNotRetainInput(t *testing.T) {
	g := floorplan.Reference()
	list := shoplist.List{{ID: "a", Aisle: 3, Section: 3}}

	r, err := route.Build(g, list)
	require.NoError(t, err)
	list[0].Name = "changed"
	require.Empty(t, r.Items[0].Name)
}

func TestBuild_Unreachable(t *testing.T) {
	g, err := floorplan.Parse([]string{
		"E..###.",
		".#.#.#.",
		".#.#.#.",
		"...###.",
		"......C",
	})
	require.NoError(t, err)

	_, err = route.Build(g, shoplist.List{{ID: "walled", Aisle: 2, Section: 1}})
	require.ErrorIs(t, err, route.ErrUnreachable)
	require.ErrorIs(t, err, astar.ErrNoPath)

	var legErr *route.LegError
	require.True(t, errors.As(err, &legErr))
	require.Equal(t, 0, legErr.Index)
	require.Equal(t, g.Entrance(), legErr.From)
	require.Equal(t, floorplan.Pt(4, 1), legErr.To)
}

func TestBuild_Errors(t *testing.T) {
	_, err := route.Build(nil, nil)
	require.ErrorIs(t, err, route.ErrNilGrid)

	g := floorplan.Reference()
	_, err = route.Build(g, shoplist.List{{ID: "x", Aisle: 9, Section: 1}})
	require.ErrorIs(t, err, astar.ErrOutOfBounds)
	require.NotErrorIs(t, err, route.ErrUnreachable)
}

func TestConnect_Degenerate(t *testing.T) {
	g := floorplan.Reference()
	p := floorplan.Pt(0, 0)

	_, _, err := route.Connect(g, []floorplan.Point{p})
	require.ErrorIs(t, err, route.ErrDegenerateRoute)

	_, _, err = route.Connect(g, []floorplan.Point{p, p})
	require.ErrorIs(t, err, route.ErrDegenerateRoute)

	path, ends, err := route.Connect(g, []floorplan.Point{p, floorplan.Pt(1, 0), floorplan.Pt(2, 0)})
	require.NoError(t, err)
	require.Equal(t, []floorplan.Point{p, floorplan.Pt(1, 0), floorplan.Pt(2, 0)}, path)
	require.Equal(t, []int{1, 2}, ends)
}
