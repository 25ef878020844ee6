package minigeo

import "fmt"

// Polygon is an exterior ring with optional holes. Holes are expected to lie
// inside the exterior ring; this is not validated.
type Polygon struct {
	exterior  *LinearRing
	interiors []*LinearRing
	area      float64
}

func NewPolygon(exterior *LinearRing, interiors ...*LinearRing) *Polygon {
	if exterior == nil {
		panic("minigeo/polygon: exterior ring not defined")
	}
	p := &Polygon{
		exterior: exterior,
		area:     exterior.Area(),
	}
	if len(interiors) > 0 {
		p.interiors = make([]*LinearRing, 0, len(interiors))
		for _, ring := range interiors {
			if ring == nil {
				panic("minigeo/polygon: nil interior ring")
			}
			p.interiors = append(p.interiors, ring)
			p.area -= ring.Area()
		}
	}
	return p
}

func (p *Polygon) sealed() {}

func (p *Polygon) Kind() Kind {
	return PolygonKind
}

func (p *Polygon) ExteriorRing() *LinearRing {
	return p.exterior
}

// InteriorRings returns the holes of the polygon, nil when there are none.
func (p *Polygon) InteriorRings() []*LinearRing {
	if len(p.interiors) == 0 {
		return nil
	}
	rings := make([]*LinearRing, len(p.interiors))
	copy(rings, p.interiors)
	return rings
}

func (p *Polygon) NumInteriorRings() int {
	return len(p.interiors)
}

// Area is the exterior area minus the area of every hole.
func (p *Polygon) Area() float64 {
	return p.area
}

// Centroid is the centroid of the exterior ring. Holes are not taken into
// account, so this is not the area-weighted centroid of the polygon.
func (p *Polygon) Centroid() Coordinate {
	return p.exterior.Centroid()
}

func (p *Polygon) Envelope() Envelope {
	return p.exterior.Envelope()
}

// Contains reports whether c is inside the exterior ring and outside of
// every hole.
func (p *Polygon) Contains(c Coordinate) bool {
	if !p.exterior.Contains(c) {
		return false
	}
	for _, hole := range p.interiors {
		if hole.Contains(c) {
			return false
		}
	}
	return true
}

// ContainsExterior tests the exterior ring only, ignoring holes.
func (p *Polygon) ContainsExterior(c Coordinate) bool {
	return p.exterior.Contains(c)
}

func (p *Polygon) String() string {
	return fmt.Sprintf("Polygon{Exterior:%d, Holes:%d, Area:%v}",
		p.exterior.NumCoordinates(), len(p.interiors), p.area)
}
