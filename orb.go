package minigeo

import (
	"fmt"

	"github.com/paulmach/orb"
)

func (r *LinearRing) Orb() orb.Ring {
	ring := make(orb.Ring, len(r.coords))
	for i, c := range r.coords {
		ring[i] = orb.Point{c.X, c.Y}
	}
	return ring
}

func (p *Polygon) Orb() orb.Polygon {
	polygon := make(orb.Polygon, 0, 1+len(p.interiors))
	polygon = append(polygon, p.exterior.Orb())
	for _, hole := range p.interiors {
		polygon = append(polygon, hole.Orb())
	}
	return polygon
}

func (mp *MultiPolygon) Orb() orb.MultiPolygon {
	multi := make(orb.MultiPolygon, len(mp.polygons))
	for i, polygon := range mp.polygons {
		multi[i] = polygon.Orb()
	}
	return multi
}

// FromOrb converts rings, polygons, multipolygons, bounds and collections of
// those. Other geometries fail with ErrUnsupportedGeometry.
func FromOrb(g orb.Geometry) (Geometry, error) {
	switch g := g.(type) {
	case orb.Ring:
		ring, err := ringFromOrb(g)
		if err != nil {
			return nil, err
		}
		return ring, nil
	case orb.Polygon:
		polygon, err := polygonFromOrb(g)
		if err != nil {
			return nil, err
		}
		return polygon, nil
	case orb.MultiPolygon:
		polygons := make([]*Polygon, len(g))
		for i, p := range g {
			polygon, err := polygonFromOrb(p)
			if err != nil {
				return nil, err
			}
			polygons[i] = polygon
		}
		return NewMultiPolygon(polygons...), nil
	case orb.Bound:
		return FromOrb(g.ToPolygon())
	case orb.Collection:
		members := make([]Geometry, len(g))
		for i, child := range g {
			member, err := FromOrb(child)
			if err != nil {
				return nil, err
			}
			members[i] = member
		}
		return NewGeometryCollection(members...), nil
	case nil:
		return nil, fmt.Errorf("%w: nil geometry", ErrUnsupportedGeometry)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedGeometry, g.GeoJSONType())
	}
}

func ringFromOrb(r orb.Ring) (*LinearRing, error) {
	if len(r) < 3 {
		return nil, fmt.Errorf("%w: ring with %d points", ErrUnsupportedGeometry, len(r))
	}
	coords := make([]Coordinate, len(r))
	for i, pt := range r {
		coords[i] = Coordinate{X: pt.X(), Y: pt.Y()}
	}
	return NewLinearRing(coords), nil
}

func polygonFromOrb(p orb.Polygon) (*Polygon, error) {
	if len(p) == 0 {
		return nil, fmt.Errorf("%w: polygon without exterior ring", ErrUnsupportedGeometry)
	}
	exterior, err := ringFromOrb(p[0])
	if err != nil {
		return nil, err
	}
	holes := make([]*LinearRing, 0, len(p)-1)
	for _, r := range p[1:] {
		hole, err := ringFromOrb(r)
		if err != nil {
			return nil, err
		}
		holes = append(holes, hole)
	}
	return NewPolygon(exterior, holes...), nil
}
