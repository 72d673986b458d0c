// Package orbpath exports flattened squircles as github.com/paulmach/orb polygons, to be encoded as WKT or GeoJSON.
package orbpath

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/wkt"
	"github.com/paulmach/orb/geojson"
	"github.com/tdewolff/squircle"
)

// Polygon flattens the path with the given tolerance and returns one closed ring per subpath. Subpaths with fewer than three points are skipped.
func Polygon(p *squircle.Path, tolerance float64) orb.Polygon {
	polygon := orb.Polygon{}
	var ring orb.Ring
	flush := func() {
		if 3 <= len(ring) {
			if ring[0] != ring[len(ring)-1] {
				ring = append(ring, ring[0])
			}
			polygon = append(polygon, ring)
		}
		ring = nil
	}
	for _, seg := range p.Flatten(tolerance).Segments() {
		if seg.Cmd == squircle.MoveToCmd {
			flush()
		}
		pt := orb.Point{seg.End.X, seg.End.Y}
		if len(ring) == 0 || ring[len(ring)-1] != pt {
			ring = append(ring, pt)
		}
	}
	flush()
	return polygon
}

// WKT returns the polygon of the path in the well-known text format.
func WKT(p *squircle.Path, tolerance float64) string {
	return wkt.MarshalString(Polygon(p, tolerance))
}

// Feature returns the polygon of the path as a GeoJSON feature with the given properties.
func Feature(p *squircle.Path, tolerance float64, properties map[string]any) *geojson.Feature {
	f := geojson.NewFeature(Polygon(p, tolerance))
	for key, val := range properties {
		f.Properties[key] = val
	}
	return f
}

// GeoJSON returns the polygon of the path as an encoded GeoJSON feature.
func GeoJSON(p *squircle.Path, tolerance float64, properties map[string]any) ([]byte, error) {
	return Feature(p, tolerance, properties).MarshalJSON()
}
