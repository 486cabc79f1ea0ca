// Package render converts composed primitives into GeoJSON for map clients.
// Coordinates follow GeoJSON order: [lon, lat].
package render

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/smartcity/erbil-dashboard/internal/domain"
)

// FeatureCollection renders prims onto the base map in sequence order.
// Each feature carries its position as z_index.
func FeatureCollection(mc domain.MapContext, prims []domain.Primitive) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()

	var bound orb.Bound
	for i, p := range prims {
		f := feature(p)
		if f == nil {
			continue
		}
		f.Properties["kind"] = string(p.Kind())
		f.Properties["z_index"] = i

		if len(fc.Features) == 0 {
			bound = f.Geometry.Bound()
		} else {
			bound = bound.Union(f.Geometry.Bound())
		}
		fc.Append(f)
	}

	if len(fc.Features) > 0 {
		fc.BBox = geojson.NewBBox(bound)
	}
	fc.ExtraMembers = geojson.Properties{
		"center": point(mc.Center),
		"zoom":   mc.Zoom,
	}
	return fc
}

func feature(p domain.Primitive) *geojson.Feature {
	switch v := p.(type) {
	case domain.Marker:
		f := geojson.NewFeature(point(v.At))
		f.Properties["label"] = v.Label
		f.Properties["icon"] = v.IconTag
		return f
	case domain.Circle:
		f := geojson.NewFeature(point(v.Center))
		f.Properties["label"] = v.Label
		f.Properties["color"] = v.ColorTag
		f.Properties["radius_m"] = v.RadiusMeters
		f.Properties["fill_opacity"] = v.FillOpacity
		return f
	case domain.Polyline:
		ls := make(orb.LineString, 0, len(v.Path))
		for _, c := range v.Path {
			ls = append(ls, point(c))
		}
		f := geojson.NewFeature(ls)
		f.Properties["label"] = v.Label
		f.Properties["color"] = v.ColorTag
		f.Properties["weight"] = v.Weight
		return f
	case domain.HeatCloud:
		if len(v.Samples) == 0 {
			return nil
		}
		mp := make(orb.MultiPoint, 0, len(v.Samples))
		intensities := make([]float64, 0, len(v.Samples))
		for _, s := range v.Samples {
			mp = append(mp, point(s.Center))
			intensities = append(intensities, s.Intensity)
		}
		f := geojson.NewFeature(mp)
		f.Properties["intensities"] = intensities
		if len(v.Gradient) > 0 {
			f.Properties["gradient"] = v.Gradient
		}
		if v.MinOpacity != nil {
			f.Properties["min_opacity"] = *v.MinOpacity
		}
		return f
	}
	return nil
}

func point(c domain.Coordinate) orb.Point {
	return orb.Point{c.Lon, c.Lat}
}
