package minigeo

import (
	"strconv"
	"strings"
)

// WKT returns the POLYGON tagged text of the polygon. The output is accepted
// by ParseWKT and reproduces the same coordinates.
func (p *Polygon) WKT() string {
	var b strings.Builder
	b.WriteString(POLYGON.String())
	b.WriteByte(' ')
	writePolygonText(&b, p)
	return b.String()
}

// WKT returns the MULTIPOLYGON tagged text. An empty multipolygon is written
// as "MULTIPOLYGON EMPTY", which ParseWKT rejects.
func (mp *MultiPolygon) WKT() string {
	var b strings.Builder
	b.WriteString(MULTIPOLYGON.String())
	if len(mp.polygons) == 0 {
		b.WriteString(" EMPTY")
		return b.String()
	}
	b.WriteString(" (")
	for i, polygon := range mp.polygons {
		if i > 0 {
			b.WriteString(", ")
		}
		writePolygonText(&b, polygon)
	}
	b.WriteByte(')')
	return b.String()
}

func writePolygonText(b *strings.Builder, p *Polygon) {
	b.WriteByte('(')
	writeRingText(b, p.exterior)
	for _, hole := range p.interiors {
		b.WriteString(", ")
		writeRingText(b, hole)
	}
	b.WriteByte(')')
}

func writeRingText(b *strings.Builder, r *LinearRing) {
	buf := make([]byte, 0, 24)
	b.WriteByte('(')
	for i, c := range r.coords {
		if i > 0 {
			b.WriteString(", ")
		}
		buf = strconv.AppendFloat(buf[:0], c.X, 'f', -1, 64)
		b.Write(buf)
		b.WriteByte(' ')
		buf = strconv.AppendFloat(buf[:0], c.Y, 'f', -1, 64)
		b.Write(buf)
	}
	b.WriteByte(')')
}
