package server

import (
	"net/http"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/katalvlaran/storenav/floorplan"
	"github.com/katalvlaran/storenav/internal/store"
	"github.com/katalvlaran/storenav/navigator"
)

// RouteFeatures renders res as a feature collection in grid coordinates:
// one LineString for the walked path and one Point per instruction.
func RouteFeatures(res *navigator.Result) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()

	if res.Route != nil {
		line := make(orb.LineString, len(res.Route.Path))
		for i, p := range res.Route.Path {
			line[i] = toOrb(p)
		}
		f := geojson.NewFeature(line)
		f.Properties["kind"] = "route"
		f.Properties["steps"] = res.Steps()
		fc.Append(f)
	}

	for i, in := range res.Instructions {
		f := geojson.NewFeature(toOrb(in.At))
		f.Properties["index"] = i
		f.Properties["kind"] = in.Kind.String()
		f.Properties["text"] = in.Text
		if in.ItemID != "" {
			f.Properties["item_id"] = in.ItemID
		}
		if in.Distance > 0 {
			f.Properties["distance"] = in.Distance
		}
		fc.Append(f)
	}
	return fc
}

func toOrb(p floorplan.Point) orb.Point { return orb.Point{float64(p.X), float64(p.Y)} }

// handleGeoJSON serves the route of ?id=<session> or, failing that, a fresh
// plan of ?list=<name>.
func (s *Server) handleGeoJSON(w http.ResponseWriter, r *http.Request) {
	var res *navigator.Result
	if sess := s.session(r.URL.Query().Get("id")); sess != nil {
		res = sess.Result()
	} else {
		list := r.URL.Query().Get("list")
		if list == "" {
			list = store.DefaultList
		}
		var err error
		res, err = s.plan(r.Context(), list)
		if res == nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
	}

	body, err := RouteFeatures(res).MarshalJSON()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/geo+json")
	_, _ = w.Write(body)
}
