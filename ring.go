package minigeo

import (
	"fmt"
	"math"
)

// LinearRing is a closed sequence of coordinates. Area, centroid and
// envelope are computed once in NewLinearRing.
type LinearRing struct {
	coords     []Coordinate
	signedArea float64
	centroid   Coordinate
	envelope   Envelope
}

// NewLinearRing closes coords if the first and the last coordinate differ
// and panics if fewer than three coordinates are given.
func NewLinearRing(coords []Coordinate) *LinearRing {
	if len(coords) < 3 {
		panic(fmt.Sprintf("minigeo/ring: linear ring requires at least 3 coordinates, got %d", len(coords)))
	}
	closed := make([]Coordinate, len(coords), len(coords)+1)
	copy(closed, coords)
	if !closed[0].Equals(closed[len(closed)-1]) {
		closed = append(closed, closed[0])
	}
	ring := &LinearRing{
		coords:   closed,
		envelope: envelopeOf(closed),
	}
	ring.signedArea = shoelace(closed)
	if len(closed) >= 4 {
		ring.centroid = centroidOf(closed, ring.signedArea)
	}
	return ring
}

func (r *LinearRing) sealed() {}

func (r *LinearRing) Kind() Kind {
	return LinearRingKind
}

// Coordinates returns a copy of the closed coordinate sequence.
func (r *LinearRing) Coordinates() []Coordinate {
	coords := make([]Coordinate, len(r.coords))
	copy(coords, r.coords)
	return coords
}

func (r *LinearRing) NumCoordinates() int {
	return len(r.coords)
}

func (r *LinearRing) CoordinateAt(i int) Coordinate {
	return r.coords[i]
}

// SignedArea is positive for counter-clockwise rings.
func (r *LinearRing) SignedArea() float64 {
	return r.signedArea
}

func (r *LinearRing) Area() float64 {
	return math.Abs(r.signedArea)
}

// Centroid panics for rings with fewer than four closed coordinates.
func (r *LinearRing) Centroid() Coordinate {
	if len(r.coords) < 4 {
		panic(fmt.Sprintf("minigeo/ring: centroid requires at least 4 coordinates, got %d", len(r.coords)))
	}
	return r.centroid
}

func (r *LinearRing) Envelope() Envelope {
	return r.envelope
}

// Contains reports whether c lies inside the ring using the even-odd rule.
// Points on an edge may be reported either way.
func (r *LinearRing) Contains(c Coordinate) bool {
	if !r.envelope.Contains(c) {
		return false
	}
	return pnpoly(r.coords, c)
}

func (r *LinearRing) String() string {
	return fmt.Sprintf("LinearRing{Coordinates:%d, Area:%v}", len(r.coords), r.Area())
}

func shoelace(coords []Coordinate) float64 {
	if len(coords) < 4 {
		return 0
	}
	var sum float64
	for i := 0; i < len(coords)-1; i++ {
		sum += coords[i].X*coords[i+1].Y - coords[i+1].X*coords[i].Y
	}
	return 0.5 * sum
}

func centroidOf(coords []Coordinate, signedArea float64) Coordinate {
	var sumX, sumY float64
	for i := 0; i < len(coords)-1; i++ {
		factor := coords[i].X*coords[i+1].Y - coords[i+1].X*coords[i].Y
		sumX += (coords[i].X + coords[i+1].X) * factor
		sumY += (coords[i].Y + coords[i+1].Y) * factor
	}
	return Coordinate{
		X: sumX / (6 * signedArea),
		Y: sumY / (6 * signedArea),
	}
}

// pnpoly walks the n-1 edges of a closed ring.
func pnpoly(coords []Coordinate, c Coordinate) bool {
	inside := false
	n := len(coords) - 1
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		vi, vj := coords[i], coords[j]
		if (vi.Y > c.Y) != (vj.Y > c.Y) &&
			c.X < (vj.X-vi.X)*(c.Y-vi.Y)/(vj.Y-vi.Y)+vi.X {
			inside = !inside
		}
	}
	return inside
}
