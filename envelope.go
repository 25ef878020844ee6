package minigeo

import (
	"fmt"
	"math"
)

// Envelope is an axis-aligned bounding box. TopLeft holds (minX, maxY),
// BottomRight holds (maxX, minY).
type Envelope struct {
	TopLeft     Coordinate
	BottomRight Coordinate
}

func emptyEnvelope() Envelope {
	return Envelope{
		TopLeft:     Coordinate{X: math.Inf(1), Y: math.Inf(-1)},
		BottomRight: Coordinate{X: math.Inf(-1), Y: math.Inf(1)},
	}
}

func envelopeOf(coords []Coordinate) Envelope {
	env := emptyEnvelope()
	for _, c := range coords {
		env = env.extend(c)
	}
	return env
}

func (e Envelope) extend(c Coordinate) Envelope {
	if c.X < e.TopLeft.X {
		e.TopLeft.X = c.X
	}
	if c.X > e.BottomRight.X {
		e.BottomRight.X = c.X
	}
	if c.Y > e.TopLeft.Y {
		e.TopLeft.Y = c.Y
	}
	if c.Y < e.BottomRight.Y {
		e.BottomRight.Y = c.Y
	}
	return e
}

func (e Envelope) MinX() float64 { return e.TopLeft.X }
func (e Envelope) MaxX() float64 { return e.BottomRight.X }
func (e Envelope) MinY() float64 { return e.BottomRight.Y }
func (e Envelope) MaxY() float64 { return e.TopLeft.Y }

func (e Envelope) Width() float64 {
	return e.MaxX() - e.MinX()
}

func (e Envelope) Height() float64 {
	return e.MaxY() - e.MinY()
}

// Union returns the smallest envelope covering both e and o.
func (e Envelope) Union(o Envelope) Envelope {
	if o.IsEmpty() {
		return e
	}
	return e.extend(o.TopLeft).extend(o.BottomRight)
}

// IsEmpty reports whether the envelope covers no point at all.
func (e Envelope) IsEmpty() bool {
	return !(e.MinX() <= e.MaxX() && e.MinY() <= e.MaxY())
}

// Overlaps reports whether the closed x-ranges and the closed y-ranges of
// both envelopes intersect.
func (e Envelope) Overlaps(o Envelope) bool {
	xOverlap := inRange(e.MinX(), o.MinX(), o.MaxX()) || inRange(o.MinX(), e.MinX(), e.MaxX())
	yOverlap := inRange(e.MaxY(), o.MinY(), o.MaxY()) || inRange(o.MaxY(), e.MinY(), e.MaxY())
	return xOverlap && yOverlap
}

// Contains reports whether c lies inside the closed box.
func (e Envelope) Contains(c Coordinate) bool {
	return inRange(c.X, e.MinX(), e.MaxX()) && inRange(c.Y, e.MinY(), e.MaxY())
}

func (e Envelope) String() string {
	return fmt.Sprintf("Envelope{MinX:%v, MinY:%v, MaxX:%v, MaxY:%v}",
		e.MinX(), e.MinY(), e.MaxX(), e.MaxY())
}

func inRange(value, min, max float64) bool {
	return value >= min && value <= max
}
