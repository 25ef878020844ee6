package minigeo

import (
	"fmt"
	"math"
)

// Epsilon is the tolerance used when comparing coordinates.
const Epsilon = 1e-6

// Coordinate is a planar point. X is longitude-like, Y is latitude-like.
type Coordinate struct {
	X float64
	Y float64
}

// FromLonLat makes a coordinate from a (longitude, latitude) pair.
func FromLonLat(lon, lat float64) Coordinate {
	return Coordinate{X: lon, Y: lat}
}

// LonLat returns the coordinate as a (longitude, latitude) pair.
func (c Coordinate) LonLat() (lon, lat float64) {
	return c.X, c.Y
}

// Equals reports whether both axes differ by less than Epsilon.
func (c Coordinate) Equals(o Coordinate) bool {
	return math.Abs(c.X-o.X) < Epsilon && math.Abs(c.Y-o.Y) < Epsilon
}

func (c Coordinate) String() string {
	return fmt.Sprintf("Coordinate{X:%v, Y:%v}", c.X, c.Y)
}
