package minigeo

import (
	"errors"
	"fmt"

	"github.com/tidwall/geojson"
	"github.com/tidwall/geojson/geometry"
)

var ErrUnsupportedGeometry = errors.New("minigeo/adapter: unsupported geometry")

// GeoJSON returns the polygon as a tidwall/geojson object, X as longitude.
func (p *Polygon) GeoJSON() *geojson.Polygon {
	return geojson.NewPolygon(p.poly())
}

func (mp *MultiPolygon) GeoJSON() *geojson.MultiPolygon {
	polys := make([]*geometry.Poly, len(mp.polygons))
	for i, polygon := range mp.polygons {
		polys[i] = polygon.poly()
	}
	return geojson.NewMultiPolygon(polys)
}

func (p *Polygon) poly() *geometry.Poly {
	var holes [][]geometry.Point
	if len(p.interiors) > 0 {
		holes = make([][]geometry.Point, len(p.interiors))
		for i, hole := range p.interiors {
			holes[i] = hole.points()
		}
	}
	return geometry.NewPoly(p.exterior.points(), holes, nil)
}

func (r *LinearRing) points() []geometry.Point {
	points := make([]geometry.Point, len(r.coords))
	for i, c := range r.coords {
		points[i] = geometry.Point{X: c.X, Y: c.Y}
	}
	return points
}

// FromGeoJSON converts a Polygon, a MultiPolygon or a Feature wrapping one
// of them. Other objects fail with ErrUnsupportedGeometry.
func FromGeoJSON(obj geojson.Object) (Geometry, error) {
	switch g := obj.(type) {
	case *geojson.Feature:
		return FromGeoJSON(g.Base())
	case *geojson.Polygon:
		polygon, err := polygonFromPoly(g.Base())
		if err != nil {
			return nil, err
		}
		return polygon, nil
	case *geojson.MultiPolygon:
		var (
			polygons []*Polygon
			err      error
		)
		g.ForEach(func(child geojson.Object) bool {
			poly, ok := child.(*geojson.Polygon)
			if !ok {
				err = fmt.Errorf("%w: multipolygon member %T", ErrUnsupportedGeometry, child)
				return false
			}
			var polygon *Polygon
			if polygon, err = polygonFromPoly(poly.Base()); err != nil {
				return false
			}
			polygons = append(polygons, polygon)
			return true
		})
		if err != nil {
			return nil, err
		}
		return NewMultiPolygon(polygons...), nil
	case nil:
		return nil, fmt.Errorf("%w: nil object", ErrUnsupportedGeometry)
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedGeometry, obj)
	}
}

func polygonFromPoly(poly *geometry.Poly) (*Polygon, error) {
	if poly == nil || poly.Exterior == nil {
		return nil, fmt.Errorf("%w: polygon without exterior ring", ErrUnsupportedGeometry)
	}
	exterior, err := ringFromSeries(poly.Exterior)
	if err != nil {
		return nil, err
	}
	var holes []*LinearRing
	for _, h := range poly.Holes {
		hole, err := ringFromSeries(h)
		if err != nil {
			return nil, err
		}
		holes = append(holes, hole)
	}
	return NewPolygon(exterior, holes...), nil
}

func ringFromSeries(ring geometry.Ring) (*LinearRing, error) {
	n := ring.NumPoints()
	if n < 3 {
		return nil, fmt.Errorf("%w: ring with %d points", ErrUnsupportedGeometry, n)
	}
	coords := make([]Coordinate, n)
	for i := 0; i < n; i++ {
		pt := ring.PointAt(i)
		coords[i] = Coordinate{X: pt.X, Y: pt.Y}
	}
	return NewLinearRing(coords), nil
}
