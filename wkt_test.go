package minigeo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPolygon_WKT(t *testing.T) {
	polygon := NewPolygon(rect(0, 0, 10, 10), rect(2.5, 2.5, 4, 4))
	want := "POLYGON ((0 0, 10 0, 10 10, 0 10, 0 0), (2.5 2.5, 4 2.5, 4 4, 2.5 4, 2.5 2.5))"
	assert.Equal(t, want, polygon.WKT())
}

func TestMultiPolygon_WKT(t *testing.T) {
	mp := NewMultiPolygon(NewPolygon(triangle()), NewPolygon(rect(-1, -1, 0, 0)))
	want := "MULTIPOLYGON (((0 0, 20 0, 10 20, 0 0)), ((-1 -1, 0 -1, 0 0, -1 0, -1 -1)))"
	assert.Equal(t, want, mp.WKT())
	assert.Equal(t, "MULTIPOLYGON EMPTY", NewMultiPolygon().WKT())
}

func TestWKT_RoundTrip(t *testing.T) {
	testCases := []string{
		"POLYGON ((30 10, 40 40, 20 40, 10 20, 30 10))",
		"POLYGON ((35 10, 45 45, 15 40, 10 20, 35 10), (20 30, 35 35, 30 20, 20 30))",
		"MULTIPOLYGON (((40 40, 20 45, 45 30, 40 40)), ((20 35, 10 30, 10 10, 30 5, 45 20, 20 35), (30 20, 20 15, 20 25, 30 20)))",
		"POLYGON ((-72.2783142 42.9285754, -72.2781265 42.9280922, -72.2771344 42.9281904, -72.2783142 42.9285754))",
	}
	for _, text := range testCases {
		geom, err := ParseWKT(text)
		require.NoError(t, err)
		var have string
		switch g := geom.(type) {
		case *Polygon:
			have = g.WKT()
		case *MultiPolygon:
			have = g.WKT()
		}
		if have != text {
			t.Fatalf("have %s, want %s", have, text)
		}
	}
}
