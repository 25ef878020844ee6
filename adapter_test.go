package minigeo

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/mmcloughlin/spherand"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/geojson"
	"github.com/tidwall/geojson/geometry"
)

func TestPolygon_GeoJSON(t *testing.T) {
	polygon := NewPolygon(rect(0, 0, 10, 10), rect(2, 2, 4, 4))
	obj := polygon.GeoJSON()
	assert.True(t, obj.IntersectsPoint(geometry.Point{X: 1, Y: 1}))
	assert.False(t, obj.IntersectsPoint(geometry.Point{X: 3, Y: 3}))
	assert.False(t, obj.IntersectsPoint(geometry.Point{X: 11, Y: 1}))

	back, err := FromGeoJSON(obj)
	require.NoError(t, err)
	assert.Equal(t, polygon.WKT(), back.(*Polygon).WKT())
}

func TestMultiPolygon_GeoJSON(t *testing.T) {
	mp := NewMultiPolygon(NewPolygon(rect(-30, -5, -10, 5)), NewPolygon(rect(10, -5, 30, 5)))
	obj := mp.GeoJSON()
	assert.True(t, obj.IntersectsPoint(geometry.Point{X: -20, Y: 0}))
	assert.False(t, obj.IntersectsPoint(geometry.Point{X: 0, Y: 0}))

	back, err := FromGeoJSON(obj)
	require.NoError(t, err)
	assert.Equal(t, mp.WKT(), back.(*MultiPolygon).WKT())
}

func TestFromGeoJSON(t *testing.T) {
	testCases := []struct {
		name    string
		data    string
		kind    Kind
		area    float64
		wantErr bool
	}{
		{
			name: "polygon",
			data: `{"type":"Polygon","coordinates":[[[0,0],[10,0],[10,10],[0,10],[0,0]]]}`,
			kind: PolygonKind,
			area: 100,
		},
		{
			name: "feature",
			data: `{"type":"Feature","geometry":{"type":"Polygon","coordinates":[[[0,0],[20,0],[10,20],[0,0]]]},"properties":{}}`,
			kind: PolygonKind,
			area: 200,
		},
		{
			name: "multipolygon",
			data: `{"type":"MultiPolygon","coordinates":[[[[0,0],[10,0],[10,10],[0,10],[0,0]]],[[[20,0],[30,0],[30,10],[20,10],[20,0]]]]}`,
			kind: MultiPolygonKind,
			area: 200,
		},
		{
			name:    "point",
			data:    `{"type":"Point","coordinates":[1,2]}`,
			wantErr: true,
		},
		{
			name:    "linestring feature",
			data:    `{"type":"Feature","geometry":{"type":"LineString","coordinates":[[1,2],[3,4]]},"properties":{}}`,
			wantErr: true,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			obj, err := geojson.Parse(tc.data, geojson.DefaultParseOptions)
			require.NoError(t, err)
			geom, err := FromGeoJSON(obj)
			if tc.wantErr {
				if !errors.Is(err, ErrUnsupportedGeometry) {
					t.Fatalf("have %v, want %v", err, ErrUnsupportedGeometry)
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.kind, geom.Kind())
			assert.InDelta(t, tc.area, geom.Area(), 1e-9)
		})
	}

	_, err := FromGeoJSON(nil)
	assert.True(t, errors.Is(err, ErrUnsupportedGeometry))
}

func TestOrb(t *testing.T) {
	polygon := NewPolygon(rect(0, 0, 10, 10), rect(2, 2, 4, 4))
	op := polygon.Orb()
	require.Len(t, op, 2)
	assert.Equal(t, orb.Point{0, 0}, op[0][0])
	assert.Equal(t, op[0][0], op[0][len(op[0])-1])
	assert.InDelta(t, polygon.Area(), planar.Area(op), 1e-9)

	ring := triangle().Orb()
	assert.InDelta(t, 200.0, planar.Area(ring), 1e-9)

	mp := NewMultiPolygon(NewPolygon(rect(-30, -5, -10, 5)), NewPolygon(rect(10, -5, 30, 5)))
	assert.InDelta(t, mp.Area(), planar.Area(mp.Orb()), 1e-9)
}

func TestFromOrb(t *testing.T) {
	testCases := []struct {
		name    string
		geom    orb.Geometry
		kind    Kind
		area    float64
		wantErr bool
	}{
		{name: "ring", geom: orb.Ring{{0, 0}, {20, 0}, {10, 20}, {0, 0}}, kind: LinearRingKind, area: 200},
		{name: "polygon", geom: orb.Polygon{{{0, 0}, {10, 0}, {10, 10}, {0, 10}, {0, 0}}}, kind: PolygonKind, area: 100},
		{name: "bound", geom: orb.Bound{Min: orb.Point{0, 0}, Max: orb.Point{4, 5}}, kind: PolygonKind, area: 20},
		{
			name: "multipolygon",
			geom: orb.MultiPolygon{
				{{{0, 0}, {10, 0}, {10, 10}, {0, 10}, {0, 0}}},
				{{{20, 0}, {30, 0}, {30, 10}, {20, 0}}},
			},
			kind: MultiPolygonKind,
			area: 150,
		},
		{
			name: "collection",
			geom: orb.Collection{
				orb.Ring{{0, 0}, {20, 0}, {10, 20}},
				orb.Bound{Min: orb.Point{0, 0}, Max: orb.Point{1, 1}},
			},
			kind: GeometryCollectionKind,
			area: 201,
		},
		{name: "point", geom: orb.Point{1, 2}, wantErr: true},
		{name: "short ring", geom: orb.Ring{{0, 0}, {1, 1}}, wantErr: true},
		{name: "empty polygon", geom: orb.Polygon{}, wantErr: true},
		{name: "collection with point", geom: orb.Collection{orb.Point{1, 2}}, wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			geom, err := FromOrb(tc.geom)
			if tc.wantErr {
				if !errors.Is(err, ErrUnsupportedGeometry) {
					t.Fatalf("have %v, want %v", err, ErrUnsupportedGeometry)
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.kind, geom.Kind())
			assert.InDelta(t, tc.area, geom.Area(), 1e-9)
		})
	}
}

// Exact containment agrees with orb/planar and tidwall/geojson away from
// ring edges.
func TestContains_CrossCheck(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	for i := 0; i < 200; i++ {
		lat, lon := spherand.Geographical()
		center := FromLonLat(lon, lat)
		coords := make([]Coordinate, 0, 8)
		for j := 0; j < 8; j++ {
			r := 1 + 4*rnd.Float64()
			coords = append(coords, Coordinate{
				X: center.X + r*cosTable[j],
				Y: center.Y + r*sinTable[j],
			})
		}
		polygon := NewPolygon(NewLinearRing(coords))
		op := polygon.Orb()
		gp := polygon.GeoJSON()
		for k := 0; k < 50; k++ {
			c := Coordinate{
				X: center.X + (rnd.Float64()*12 - 6),
				Y: center.Y + (rnd.Float64()*12 - 6),
			}
			have := polygon.Contains(c)
			if want := planar.PolygonContains(op, orb.Point{c.X, c.Y}); have != want {
				t.Fatalf("%v in %s: have %v, orb %v", c, polygon.WKT(), have, want)
			}
			if want := gp.IntersectsPoint(geometry.Point{X: c.X, Y: c.Y}); have != want {
				t.Fatalf("%v in %s: have %v, geojson %v", c, polygon.WKT(), have, want)
			}
		}
	}
}

// unit circle at 45 degree steps
var (
	cosTable = [8]float64{1, 0.7071067811865476, 0, -0.7071067811865476, -1, -0.7071067811865476, 0, 0.7071067811865476}
	sinTable = [8]float64{0, 0.7071067811865476, 1, 0.7071067811865476, 0, -0.7071067811865476, -1, -0.7071067811865476}
)
