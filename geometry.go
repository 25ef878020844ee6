package minigeo

// Geometry is implemented by *LinearRing, *Polygon, *GeometryCollection and
// *MultiPolygon only. Every value is immutable once constructed, so a
// geometry can be shared between goroutines without locking.
//
// Geometries have identity semantics: two structurally equal polygons are
// still two regions. Indexes refer to geometries by their position in the
// slice they were built from.
type Geometry interface {
	Kind() Kind
	Area() float64
	Centroid() Coordinate
	Envelope() Envelope

	sealed()
}

// Container is implemented by geometries that enclose an area.
type Container interface {
	Contains(c Coordinate) bool
}

type Kind int

const (
	UnknownKind Kind = iota
	LinearRingKind
	PolygonKind
	GeometryCollectionKind
	MultiPolygonKind
)

var kinds = [...]string{
	UnknownKind:            "Unknown",
	LinearRingKind:         "LinearRing",
	PolygonKind:            "Polygon",
	GeometryCollectionKind: "GeometryCollection",
	MultiPolygonKind:       "MultiPolygon",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kinds) {
		return kinds[UnknownKind]
	}
	return kinds[k]
}

var (
	_ Container = (*LinearRing)(nil)
	_ Container = (*Polygon)(nil)
	_ Container = (*GeometryCollection)(nil)
	_ Container = (*MultiPolygon)(nil)
)
