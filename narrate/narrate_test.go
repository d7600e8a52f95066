package narrate_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/storenav/floorplan"
	"github.com/katalvlaran/storenav/narrate"
	"github.com/katalvlaran/storenav/route"
	"github.com/katalvlaran/storenav/shoplist"
	"github.com/katalvlaran/storenav/tour"
)

func build(t *testing.T, g *floorplan.Grid, list shoplist.List) *route.Route {
	t.Helper()
	r, err := route.Build(g, list)
	require.NoError(t, err)
	return r
}

func kinds(ins []narrate.Instruction) []narrate.Kind {
	out := make([]narrate.Kind, len(ins))
	for i, in := range ins {
		out[i] = in.Kind
	}
	return out
}

func TestSynthesize_ReferenceScenario(t *testing.T) {
	g := floorplan.Reference()
	r := build(t, g, shoplist.List{{ID: "tea", Name: "Tea", Aisle: 1, Section: 2}})

	ins, err := narrate.Synthesize(g, r)
	require.NoError(t, err)

	require.Equal(t, []narrate.Kind{
		narrate.KindStart,
		narrate.KindStraight, // 1 north
		narrate.KindRight,
		narrate.KindStraight, // 2 east along row 9
		narrate.KindLeft,
		narrate.KindStraight, // 7 up the first lane
		narrate.KindTurnLeft,
		narrate.KindScan,
		narrate.KindRight, // reversal: two quarter turns
		narrate.KindRight,
		narrate.KindStraight, // 8 back down
		narrate.KindLeft,
		narrate.KindStraight, // 11 along row 10
		narrate.KindFinish,
	}, kinds(ins))

	require.Equal(t, g.Entrance(), ins[0].At)
	require.Equal(t, narrate.TextStart, ins[0].Text)

	require.Equal(t, 1, ins[1].Distance)
	require.Equal(t, "Go straight for 1 step", ins[1].Text)
	require.Equal(t, floorplan.Pt(0, 9), ins[2].At)
	require.Equal(t, 7, ins[5].Distance)
	require.Equal(t, "Go straight for 7 steps", ins[5].Text)

	require.Equal(t, "tea", ins[6].ItemID)
	require.Equal(t, "Turn left to face Tea", ins[6].Text)
	require.Equal(t, floorplan.Pt(2, 2), ins[6].At)
	require.Equal(t, "tea", ins[7].ItemID)
	require.Equal(t, "Scan Tea", ins[7].Text)
	require.Equal(t, floorplan.Pt(2, 2), ins[8].At)
	require.Equal(t, floorplan.Pt(2, 2), ins[9].At)
	require.Equal(t, narrate.TextRight, ins[9].Text)
	require.Equal(t, 8, ins[10].Distance)

	last := ins[len(ins)-1]
	require.Equal(t, narrate.KindFinish, last.Kind)
	require.Equal(t, floorplan.Pt(13, 10), last.At)
	require.Equal(t, narrate.TextFinish, last.Text)
}

func TestSynthesize_DistanceScale(t *testing.T) {
	g := floorplan.Reference()
	r := build(t, g, shoplist.List{{ID: "tea", Name: "Tea", Aisle: 1, Section: 2}})

	ins, err := narrate.Synthesize(g, r, narrate.WithDistanceScale(0.5, "m"))
	require.NoError(t, err)
	require.Equal(t, "Go straight for 0.5 m", ins[1].Text)
	require.Equal(t, 1, ins[1].Distance)
	require.Equal(t, "Go straight for 3.5 m", ins[5].Text)
	require.Equal(t, 7, ins[5].Distance)

	_, err = narrate.Synthesize(g, r, narrate.WithDistanceScale(0, "m"))
	require.ErrorIs(t, err, narrate.ErrOptionViolation)
	_, err = narrate.Synthesize(g, r, narrate.WithDistanceScale(2, ""))
	require.ErrorIs(t, err, narrate.ErrOptionViolation)
}

func TestSynthesize_Errors(t *testing.T) {
	g := floorplan.Reference()

	_, err := narrate.Synthesize(nil, &route.Route{})
	require.ErrorIs(t, err, narrate.ErrNilGrid)

	_, err = narrate.Synthesize(g, nil)
	require.ErrorIs(t, err, narrate.ErrNilRoute)

	_, err = narrate.Synthesize(g, &route.Route{})
	require.ErrorIs(t, err, route.ErrDegenerateRoute)

	broken := &route.Route{
		Path:    []floorplan.Point{{X: 0, Y: 0}, {X: 2, Y: 0}},
		LegEnds: []int{1},
	}
	_, err = narrate.Synthesize(g, broken)
	require.ErrorIs(t, err, narrate.ErrBrokenPath)

	short := &route.Route{
		Items:   shoplist.List{{ID: "a", Aisle: 1, Section: 1}, {ID: "b", Aisle: 2, Section: 1}},
		Path:    []floorplan.Point{{X: 0, Y: 10}, {X: 1, Y: 10}},
		LegEnds: []int{1},
	}
	_, err = narrate.Synthesize(g, short)
	require.ErrorIs(t, err, narrate.ErrLegEnds)

	outside := &route.Route{
		Items:   shoplist.List{{ID: "a", Aisle: 1, Section: 1}},
		Path:    []floorplan.Point{{X: 0, Y: 10}, {X: 1, Y: 10}},
		LegEnds: []int{5, 1},
	}
	_, err = narrate.Synthesize(g, outside)
	require.ErrorIs(t, err, narrate.ErrLegEnds)
}

func TestSynthesize_ShelfOnTheRight(t *testing.T) {
	g := floorplan.Reference()
	// aisle 2 has its shelf at x=3, east of the arrival cell
	r := &route.Route{
		Items:   shoplist.List{{ID: "jam", Name: "Jam", Aisle: 2, Section: 0}},
		Path:    []floorplan.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}},
		LegEnds: []int{1, 2},
	}

	ins, err := narrate.Synthesize(g, r)
	require.NoError(t, err)
	require.Equal(t, []narrate.Kind{
		narrate.KindStart,
		narrate.KindStraight,
		narrate.KindTurnRight,
		narrate.KindScan,
		narrate.KindStraight,
		narrate.KindFinish,
	}, kinds(ins))
	require.Equal(t, "Turn right to face Jam", ins[2].Text)
	require.Equal(t, 1, ins[4].Distance)
}

func TestSynthesize_ItemAtFirstCell(t *testing.T) {
	g := floorplan.Reference()
	r := &route.Route{
		Items:   shoplist.List{{ID: "gum", Aisle: 1, Section: 9}},
		Path:    []floorplan.Point{{X: 2, Y: 9}, {X: 2, Y: 10}, {X: 3, Y: 10}},
		LegEnds: []int{0, 2},
	}

	ins, err := narrate.Synthesize(g, r)
	require.NoError(t, err)
	require.Equal(t, []narrate.Kind{
		narrate.KindStart,
		narrate.KindTurnLeft,
		narrate.KindScan,
		narrate.KindStraight,
		narrate.KindLeft,
		narrate.KindStraight,
		narrate.KindFinish,
	}, kinds(ins))
	// unnamed items are narrated by id
	require.Equal(t, "Scan gum", ins[2].Text)
}

func TestSynthesize_SharedNavigationPoint(t *testing.T) {
	g := floorplan.Reference()
	r := build(t, g, shoplist.List{
		{ID: "a", Name: "Apples", Aisle: 3, Section: 4},
		{ID: "b", Name: "Bananas", Aisle: 3, Section: 4},
	})

	ins, err := narrate.Synthesize(g, r)
	require.NoError(t, err)

	var seq []string
	for _, in := range ins {
		if in.ItemID != "" {
			seq = append(seq, in.Kind.String()+":"+in.ItemID)
		}
	}
	require.Equal(t, []string{"turn-left:a", "scan:a", "turn-left:b", "scan:b"}, seq)
}

func TestSynthesize_Properties(t *testing.T) {
	g := floorplan.Reference()
	rng := rand.New(rand.NewSource(11))

	for trial := 0; trial < 100; trial++ {
		n := rng.Intn(8)
		list := make(shoplist.List, n)
		for i := range list {
			list[i] = shoplist.Item{
				ID:      fmt.Sprintf("item-%d", i),
				Aisle:   1 + rng.Intn(6),
				Section: 1 + rng.Intn(8),
			}
		}
		plan, err := tour.Order(g, g.Entrance(), list)
		require.NoError(t, err)
		r := build(t, g, plan.Ordered)

		ins, err := narrate.Synthesize(g, r)
		require.NoError(t, err)

		require.Equal(t, narrate.KindStart, ins[0].Kind)
		require.Equal(t, narrate.KindFinish, ins[len(ins)-1].Kind)
		for i, in := range ins {
			_, err := in.Kind.MarshalText()
			require.NoError(t, err, "trial %d instruction %d", trial, i)
		}
		require.Equal(t, g.Checkout(), ins[len(ins)-1].At)

		walked := 0
		scans := map[string]int{}
		for i, in := range ins {
			switch in.Kind {
			case narrate.KindStraight:
				require.Positive(t, in.Distance, "trial %d instruction %d", trial, i)
				walked += in.Distance
			case narrate.KindScan:
				scans[in.ItemID]++
				require.True(t, ins[i-1].Kind.IsItemTurn())
				require.Equal(t, in.ItemID, ins[i-1].ItemID)
			}
		}
		require.Equal(t, r.Steps(), walked, "trial %d", trial)
		require.Len(t, scans, n)
		for _, id := range list.IDs() {
			require.Equal(t, 1, scans[id], "trial %d item %s", trial, id)
		}

		again, err := narrate.Synthesize(g, build(t, g, plan.Ordered))
		require.NoError(t, err)
		require.Equal(t, ins, again)
	}
}

func TestTurnTable(t *testing.T) {
	cases := []struct {
		from, to narrate.Facing
		want     narrate.Kind
	}{
		{narrate.North, narrate.West, narrate.KindLeft},
		{narrate.North, narrate.East, narrate.KindRight},
		{narrate.South, narrate.West, narrate.KindRight},
		{narrate.South, narrate.East, narrate.KindLeft},
		{narrate.West, narrate.South, narrate.KindLeft},
		{narrate.West, narrate.North, narrate.KindRight},
		{narrate.East, narrate.South, narrate.KindRight},
		{narrate.East, narrate.North, narrate.KindLeft},
		{narrate.North, narrate.South, narrate.KindRight},
		{narrate.East, narrate.West, narrate.KindRight},
		{narrate.West, narrate.West, narrate.KindStraight},
	}
	for _, tc := range cases {
		t.Run(tc.from.String()+"→"+tc.to.String(), func(t *testing.T) {
			require.Equal(t, tc.want, narrate.Turn(tc.from, tc.to))
		})
	}
}

func TestFacingRotate(t *testing.T) {
	require.Equal(t, narrate.East, narrate.North.Rotate(narrate.KindRight))
	require.Equal(t, narrate.West, narrate.North.Rotate(narrate.KindLeft))
	require.Equal(t, narrate.North, narrate.West.Rotate(narrate.KindRight))
	require.Equal(t, narrate.South, narrate.West.Rotate(narrate.KindLeft))
	require.Equal(t, narrate.South, narrate.South.Rotate(narrate.KindStraight))

	// a reversal resolves in two right turns from every facing
	for _, f := range []narrate.Facing{narrate.North, narrate.South, narrate.East, narrate.West} {
		back := f.Rotate(narrate.KindRight).Rotate(narrate.KindRight)
		require.Equal(t, narrate.KindRight, narrate.Turn(f, back), f.String())
		require.Equal(t, narrate.KindRight, narrate.Turn(f.Rotate(narrate.KindRight), back), f.String())
	}
}

func TestSynthesize_Reversal(t *testing.T) {
	g := floorplan.Reference()
	r := &route.Route{
		Path:    []floorplan.Point{{X: 0, Y: 10}, {X: 1, Y: 10}, {X: 0, Y: 10}},
		LegEnds: []int{2},
	}

	ins, err := narrate.Synthesize(g, r)
	require.NoError(t, err)
	require.Equal(t, []narrate.Kind{
		narrate.KindStart,
		narrate.KindStraight,
		narrate.KindRight,
		narrate.KindRight,
		narrate.KindStraight,
		narrate.KindFinish,
	}, kinds(ins))
	require.Equal(t, floorplan.Pt(1, 10), ins[2].At)
	require.Equal(t, floorplan.Pt(1, 10), ins[3].At)
	require.Equal(t, 1, ins[4].Distance)
}

func TestHeading(t *testing.T) {
	o := floorplan.Pt(5, 5)
	for _, tc := range []struct {
		to   floorplan.Point
		want narrate.Facing
	}{
		{floorplan.Pt(5, 4), narrate.North},
		{floorplan.Pt(5, 6), narrate.South},
		{floorplan.Pt(6, 5), narrate.East},
		{floorplan.Pt(4, 5), narrate.West},
	} {
		f, err := narrate.Heading(o, tc.to)
		require.NoError(t, err)
		require.Equal(t, tc.want, f)
	}

	_, err := narrate.Heading(o, floorplan.Pt(6, 6))
	require.ErrorIs(t, err, narrate.ErrBrokenPath)
	_, err = narrate.Heading(o, o)
	require.ErrorIs(t, err, narrate.ErrBrokenPath)
}

func TestKindText(t *testing.T) {
	for k := narrate.KindStart; k <= narrate.KindFinish; k++ {
		b, err := k.MarshalText()
		require.NoError(t, err)
		var back narrate.Kind
		require.NoError(t, back.UnmarshalText(b))
		require.Equal(t, k, back)
	}
	var k narrate.Kind
	require.ErrorIs(t, k.UnmarshalText([]byte("jump")), narrate.ErrUnknownKind)
	require.ErrorIs(t, k.UnmarshalText([]byte("turn-around")), narrate.ErrUnknownKind)
	_, err := (narrate.KindFinish + 1).MarshalText()
	require.ErrorIs(t, err, narrate.ErrUnknownKind)
	_, err = narrate.Kind(42).MarshalText()
	require.ErrorIs(t, err, narrate.ErrUnknownKind)
	require.Equal(t, "Kind(42)", narrate.Kind(42).String())
}

func TestTerminalSequences(t *testing.T) {
	g := floorplan.Reference()

	ins := narrate.EmptyList(g.Checkout())
	require.Len(t, ins, 1)
	require.Equal(t, narrate.KindFinish, ins[0].Kind)
	require.Equal(t, "Add items to your list to begin.", ins[0].Text)

	ins = narrate.NoRoute(g.Entrance())
	require.Len(t, ins, 1)
	require.Equal(t, narrate.KindFinish, ins[0].Kind)
	require.Equal(t, narrate.TextNoRoute, ins[0].Text)
}
