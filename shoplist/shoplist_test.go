package shoplist_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/storenav/floorplan"
	"github.com/katalvlaran/storenav/shoplist"
)

func TestValidate(t *testing.T) {
	g := floorplan.Reference()
	cases := []struct {
		name string
		list shoplist.List
		err  error
	}{
		{"Empty", nil, nil},
		{"Valid", shoplist.List{{ID: "a", Aisle: 1, Section: 2}, {ID: "b", Aisle: 6, Section: 8}}, nil},
		{"NoID", shoplist.List{{Aisle: 1, Section: 2}}, shoplist.ErrEmptyID},
		{"Duplicate", shoplist.List{{ID: "a", Aisle: 1, Section: 2}, {ID: "a", Aisle: 2, Section: 2}}, shoplist.ErrDuplicateID},
		{"AisleZero", shoplist.List{{ID: "a", Aisle: 0, Section: 2}}, shoplist.ErrLocation},
		{"AisleBeyondGrid", shoplist.List{{ID: "a", Aisle: 9, Section: 2}}, shoplist.ErrLocation},
		{"SectionBeyondGrid", shoplist.List{{ID: "a", Aisle: 2, Section: 12}}, shoplist.ErrLocation},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.list.Validate(g)
			if tc.err == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.err)
		})
	}
}

func TestItem_Geometry(t *testing.T) {
	g := floorplan.Reference()
	it := shoplist.Item{ID: "milk", Name: "Milk", Aisle: 3, Section: 5}

	require.Equal(t, floorplan.Pt(6, 5), it.NavPoint(g))
	require.Equal(t, 5, it.ShelfX(g))
	require.Equal(t, "Milk (aisle 3, section 5)", it.String())
	require.Equal(t, "milk", shoplist.Item{ID: "milk"}.Label())
}

func TestList_FindCloneIDs(t *testing.T) {
	l := shoplist.List{{ID: "a", Name: "Apples"}, {ID: "b", Name: "Bread"}}

	it, ok := l.Find("b")
	require.True(t, ok)
	require.Equal(t, "Bread", it.Name)
	_, ok = l.Find("zzz")
	require.False(t, ok)

	c := l.Clone()
	c[0].Name = "Changed"
	require.Equal(t, "Apples", l[0].Name)
	require.Equal(t, []string{"a", "b"}, l.IDs())
	require.Nil(t, shoplist.List(nil).Clone())
}
