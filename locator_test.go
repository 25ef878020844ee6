package minigeo

import (
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"testing"

	"github.com/rs/xid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func randomROIs(seed int64) []ROI {
	geoms, _ := randomTriangles(rand.New(rand.NewSource(seed)))
	rois := make([]ROI, len(geoms))
	for i, g := range geoms {
		rois[i] = ROI{ID: xid.New().String(), Geometry: g}
	}
	return rois
}

func TestLocator_Locate(t *testing.T) {
	factories := map[string]func() Index{
		"quadtree": func() Index { return NewQuadTree(WithMinCellSize(0.5)) },
		"rtree":    func() Index { return NewBoxIndex() },
	}
	for name, factory := range factories {
		t.Run(name, func(t *testing.T) {
			locator := NewLocator(WithIndex(factory), WithLogger(zaptest.NewLogger(t)))
			square := NewPolygon(rect(0, 0, 10, 10), rect(2, 2, 4, 4))
			rois := []ROI{
				{ID: "square", Geometry: square},
				{ID: "triangle", Geometry: triangle()},
				{ID: "far", Geometry: NewMultiPolygon(NewPolygon(rect(100, 100, 110, 110)))},
			}
			require.NoError(t, locator.Load(rois))
			assert.Equal(t, 3, locator.Len())

			located := locator.Locate(Coordinate{X: 5, Y: 5})
			require.Len(t, located, 2)
			assert.Equal(t, "square", located[0].ID)
			assert.Equal(t, "triangle", located[1].ID)

			located = locator.Locate(Coordinate{X: 3, Y: 3})
			require.Len(t, located, 1)
			assert.Equal(t, "triangle", located[0].ID)

			located = locator.Locate(Coordinate{X: 105, Y: 105})
			require.Len(t, located, 1)
			assert.Equal(t, "far", located[0].ID)

			assert.Empty(t, locator.Locate(Coordinate{X: 50, Y: 50}))

			candidates := locator.Candidates(Coordinate{X: 1, Y: 19})
			assert.NotEmpty(t, candidates)
			assert.Empty(t, locator.Locate(Coordinate{X: 1, Y: 19}))

			roi, err := locator.Lookup("far")
			require.NoError(t, err)
			assert.Equal(t, rois[2], roi)
			_, err = locator.Lookup("missing")
			assert.True(t, errors.Is(err, ErrROINotFound))

			assert.Equal(t, rois, locator.ROIs())
		})
	}
}

func TestLocator_Stats(t *testing.T) {
	locator := NewLocator()
	require.NoError(t, locator.Load([]ROI{{ID: "a", Geometry: rect(0, 0, 10, 10)}}))
	locator.Locate(Coordinate{X: 5, Y: 5})
	locator.Locate(Coordinate{X: 50, Y: 50})
	locator.Candidates(Coordinate{X: 5, Y: 5})
	locator.Candidates(Coordinate{X: 50, Y: 50})

	stats := locator.Stats()
	assert.Equal(t, Stats{ROIs: 1, Builds: 1, Lookups: 2, CandidateQueries: 2, Candidates: 2, Hits: 1}, stats)
}

func TestLocator_LoadInvalid(t *testing.T) {
	testCases := []struct {
		name string
		rois []ROI
	}{
		{name: "empty id", rois: []ROI{{ID: "", Geometry: triangle()}}},
		{name: "nil geometry", rois: []ROI{{ID: "a"}}},
		{name: "duplicate id", rois: []ROI{{ID: "a", Geometry: triangle()}, {ID: "a", Geometry: triangle()}}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			locator := NewLocator()
			require.NoError(t, locator.Load([]ROI{{ID: "kept", Geometry: triangle()}}))
			err := locator.Load(tc.rois)
			if !errors.Is(err, ErrInvalidROI) {
				t.Fatalf("have %v, want %v", err, ErrInvalidROI)
			}
			assert.Equal(t, 1, locator.Len())
			_, err = locator.Lookup("kept")
			assert.NoError(t, err)
		})
	}
}

func TestLocator_Empty(t *testing.T) {
	locator := NewLocator()
	assert.Equal(t, 0, locator.Len())
	assert.Nil(t, locator.Locate(Coordinate{}))
	assert.Nil(t, locator.Candidates(Coordinate{}))
	_, err := locator.Lookup("a")
	assert.True(t, errors.Is(err, ErrROINotFound))

	require.NoError(t, locator.Load(nil))
	assert.Equal(t, 0, locator.Len())
}

func TestLocator_RandomROIs(t *testing.T) {
	rois := randomROIs(4)
	locator := NewLocator()
	require.NoError(t, locator.Load(rois))
	for _, roi := range rois {
		located := locator.Locate(roi.Geometry.Centroid())
		require.Len(t, located, 1)
		assert.Equal(t, roi.ID, located[0].ID)
	}
	assert.Equal(t, uint64(len(rois)), locator.Stats().Hits)
}

func TestLocator_ConcurrentLoad(t *testing.T) {
	first := randomROIs(5)
	second := make([]ROI, len(first))
	for i, roi := range first {
		second[i] = ROI{ID: xid.New().String(), Geometry: roi.Geometry}
	}
	locator := NewLocator()
	require.NoError(t, locator.Load(first))

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 10; i++ {
			next := first
			if i%2 == 0 {
				next = second
			}
			if err := locator.Load(next); err != nil {
				panic(fmt.Sprintf("load: %v", err))
			}
		}
	}()
	for g := 0; g < 4; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := g; i < len(first); i += 4 {
				located := locator.Locate(first[i].Geometry.Centroid())
				if len(located) != 1 {
					panic(fmt.Sprintf("have %d rois, want 1", len(located)))
				}
			}
		}(g)
	}
	wg.Wait()
	assert.Equal(t, uint64(11), locator.Stats().Builds)
}
