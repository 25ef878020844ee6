package roistore

import (
	"fmt"

	"github.com/mmadfox/minigeo"
	"github.com/rs/xid"
	"github.com/tidwall/geojson"
	"github.com/tidwall/gjson"
)

// ReadGeoJSON reads a FeatureCollection, a single Feature or a bare
// Polygon or MultiPolygon. A feature ID is taken from "id", then from
// "properties.name", and generated when neither is set.
func ReadGeoJSON(data []byte) ([]minigeo.ROI, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: malformed json", ErrInvalidFeature)
	}
	doc := gjson.ParseBytes(data)
	switch doc.Get("type").String() {
	case "FeatureCollection":
		var (
			rois []minigeo.ROI
			err  error
			n    int
		)
		doc.Get("features").ForEach(func(_, feature gjson.Result) bool {
			var roi minigeo.ROI
			if roi, err = readFeature(feature); err != nil {
				err = fmt.Errorf("feature %d: %w", n, err)
				return false
			}
			rois = append(rois, roi)
			n++
			return true
		})
		if err != nil {
			return nil, err
		}
		return rois, nil
	case "Feature":
		roi, err := readFeature(doc)
		if err != nil {
			return nil, err
		}
		return []minigeo.ROI{roi}, nil
	default:
		geom, err := parseGeometry(doc.Raw)
		if err != nil {
			return nil, err
		}
		return []minigeo.ROI{{ID: xid.New().String(), Geometry: geom}}, nil
	}
}

func readFeature(feature gjson.Result) (minigeo.ROI, error) {
	geometry := feature.Get("geometry")
	if !geometry.IsObject() {
		return minigeo.ROI{}, fmt.Errorf("%w: geometry not defined", ErrInvalidFeature)
	}
	geom, err := parseGeometry(geometry.Raw)
	if err != nil {
		return minigeo.ROI{}, err
	}
	return minigeo.ROI{ID: featureID(feature), Geometry: geom}, nil
}

func featureID(feature gjson.Result) string {
	if id := feature.Get("id"); id.Exists() && len(id.String()) > 0 {
		return id.String()
	}
	if name := feature.Get("properties.name"); name.Exists() && len(name.String()) > 0 {
		return name.String()
	}
	return xid.New().String()
}

func parseGeometry(raw string) (minigeo.Geometry, error) {
	obj, err := geojson.Parse(raw, geojson.DefaultParseOptions)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFeature, err)
	}
	return minigeo.FromGeoJSON(obj)
}
