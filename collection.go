package minigeo

import "fmt"

// summary caches the aggregates of a collection. The centroid is the
// unweighted mean of the member centroids, not an area-weighted centroid.
type summary struct {
	size       int
	area       float64
	centroid   Coordinate
	envelope   Envelope
	degenerate bool
}

func summarize(size int, member func(i int) Geometry) summary {
	s := summary{size: size, envelope: emptyEnvelope()}
	if size == 0 {
		return s
	}
	var sumX, sumY float64
	for i := 0; i < size; i++ {
		g := member(i)
		if isEmptyCollection(g) {
			s.degenerate = true
			continue
		}
		s.area += g.Area()
		s.envelope = s.envelope.Union(g.Envelope())
		if !hasCentroid(g) {
			s.degenerate = true
			continue
		}
		c := g.Centroid()
		sumX += c.X
		sumY += c.Y
	}
	if s.degenerate {
		return s
	}
	s.centroid = Coordinate{X: sumX / float64(size), Y: sumY / float64(size)}
	return s
}

func (s summary) mustNotBeEmpty(kind Kind, op string) {
	if s.size == 0 {
		panic(fmt.Sprintf("minigeo/collection: %s of empty %s", op, kind))
	}
}

func (s summary) mustHaveCentroid(kind Kind) {
	s.mustNotBeEmpty(kind, "centroid")
	if s.degenerate {
		panic(fmt.Sprintf("minigeo/collection: centroid of %s with degenerate members", kind))
	}
}

func isEmptyCollection(g Geometry) bool {
	switch typ := g.(type) {
	case *GeometryCollection:
		return typ.size == 0
	case *MultiPolygon:
		return typ.size == 0
	default:
		return false
	}
}

// hasCentroid reports whether g.Centroid can be called without panicking.
func hasCentroid(g Geometry) bool {
	switch typ := g.(type) {
	case *LinearRing:
		return typ.NumCoordinates() >= 4
	case *Polygon:
		return typ.exterior.NumCoordinates() >= 4
	case *GeometryCollection:
		return typ.size > 0 && !typ.degenerate
	case *MultiPolygon:
		return typ.size > 0 && !typ.degenerate
	default:
		return false
	}
}

// GeometryCollection is an ordered list of geometries.
type GeometryCollection struct {
	geometries []Geometry
	summary
}

func NewGeometryCollection(geometries ...Geometry) *GeometryCollection {
	gc := &GeometryCollection{
		geometries: make([]Geometry, 0, len(geometries)),
	}
	for _, g := range geometries {
		if g == nil {
			panic("minigeo/collection: nil geometry")
		}
		gc.geometries = append(gc.geometries, g)
	}
	gc.summary = summarize(len(gc.geometries), func(i int) Geometry {
		return gc.geometries[i]
	})
	return gc
}

func (gc *GeometryCollection) sealed() {}

func (gc *GeometryCollection) Kind() Kind {
	return GeometryCollectionKind
}

func (gc *GeometryCollection) Geometries() []Geometry {
	geometries := make([]Geometry, len(gc.geometries))
	copy(geometries, gc.geometries)
	return geometries
}

func (gc *GeometryCollection) Len() int {
	return len(gc.geometries)
}

func (gc *GeometryCollection) IsEmpty() bool {
	return len(gc.geometries) == 0
}

// Area is the sum of the member areas.
func (gc *GeometryCollection) Area() float64 {
	return gc.area
}

// Centroid is the mean of the member centroids. Panics on an empty collection.
func (gc *GeometryCollection) Centroid() Coordinate {
	gc.mustHaveCentroid(GeometryCollectionKind)
	return gc.centroid
}

// Envelope is the union of the member envelopes. Panics on an empty collection.
func (gc *GeometryCollection) Envelope() Envelope {
	gc.mustNotBeEmpty(GeometryCollectionKind, "envelope")
	return gc.envelope
}

// Contains reports whether any member implementing Container contains c.
func (gc *GeometryCollection) Contains(c Coordinate) bool {
	if gc.size == 0 || !gc.envelope.Contains(c) {
		return false
	}
	for _, g := range gc.geometries {
		if container, ok := g.(Container); ok && container.Contains(c) {
			return true
		}
	}
	return false
}

func (gc *GeometryCollection) String() string {
	return fmt.Sprintf("GeometryCollection{Geometries:%d, Area:%v}", len(gc.geometries), gc.area)
}

// MultiPolygon is a collection of polygons.
type MultiPolygon struct {
	polygons []*Polygon
	summary
}

func NewMultiPolygon(polygons ...*Polygon) *MultiPolygon {
	mp := &MultiPolygon{
		polygons: make([]*Polygon, 0, len(polygons)),
	}
	for _, p := range polygons {
		if p == nil {
			panic("minigeo/multipolygon: nil polygon")
		}
		mp.polygons = append(mp.polygons, p)
	}
	mp.summary = summarize(len(mp.polygons), func(i int) Geometry {
		return mp.polygons[i]
	})
	return mp
}

func (mp *MultiPolygon) sealed() {}

func (mp *MultiPolygon) Kind() Kind {
	return MultiPolygonKind
}

func (mp *MultiPolygon) Polygons() []*Polygon {
	polygons := make([]*Polygon, len(mp.polygons))
	copy(polygons, mp.polygons)
	return polygons
}

func (mp *MultiPolygon) Geometries() []Geometry {
	geometries := make([]Geometry, len(mp.polygons))
	for i, p := range mp.polygons {
		geometries[i] = p
	}
	return geometries
}

func (mp *MultiPolygon) Len() int {
	return len(mp.polygons)
}

func (mp *MultiPolygon) IsEmpty() bool {
	return len(mp.polygons) == 0
}

func (mp *MultiPolygon) Area() float64 {
	return mp.area
}

// Centroid is the mean of the polygon centroids. Panics on an empty
// multipolygon.
func (mp *MultiPolygon) Centroid() Coordinate {
	mp.mustHaveCentroid(MultiPolygonKind)
	return mp.centroid
}

func (mp *MultiPolygon) Envelope() Envelope {
	mp.mustNotBeEmpty(MultiPolygonKind, "envelope")
	return mp.envelope
}

// Contains reports whether any polygon contains c.
func (mp *MultiPolygon) Contains(c Coordinate) bool {
	if mp.size == 0 || !mp.envelope.Contains(c) {
		return false
	}
	for _, p := range mp.polygons {
		if p.Contains(c) {
			return true
		}
	}
	return false
}

func (mp *MultiPolygon) String() string {
	return fmt.Sprintf("MultiPolygon{Polygons:%d, Area:%v}", len(mp.polygons), mp.area)
}
