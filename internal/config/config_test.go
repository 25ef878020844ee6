package config

import (
	"testing"

	"github.com/mmadfox/minigeo"
	"github.com/mmadfox/minigeo/internal/roistore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestConfig_FromFile(t *testing.T) {
	conf, err := FromFile("./testdata/minigeo.yml")
	assert.Nil(t, err)
	assert.NotNil(t, conf)

	// logger
	assert.Equal(t, "production", conf.Logger.Env)
	assert.Equal(t, "minigeo", conf.Logger.Name)
	assert.Equal(t, "json", conf.Logger.Encoding)

	// index
	assert.Equal(t, IndexRTree, conf.Index.Kind)
	assert.Equal(t, 0.01, conf.Index.MinCellSize)

	// sources
	require.Len(t, conf.Sources, 2)
	assert.Equal(t, roistore.Source{Path: "./regions.wkt", Format: roistore.FormatWKT}, conf.Sources[0])
	assert.Equal(t, roistore.Source{Path: "./regions.geojson"}, conf.Sources[1])

	// snapshot
	assert.Equal(t, "./rois.snapshot", conf.Snapshot.Path)
	assert.True(t, conf.Snapshot.Write)
}

func TestConfig_FromFileDefaults(t *testing.T) {
	conf, err := FromFile("./testdata/defaults.yml")
	require.NoError(t, err)
	assert.Empty(t, conf.Index.Kind)
	assert.Empty(t, conf.Sources)
	assert.False(t, conf.Snapshot.Write)

	_, ok := conf.IndexFactory(zap.NewNop())().(*minigeo.QuadTree)
	assert.True(t, ok)
}

func TestConfig_FromBytesInvalid(t *testing.T) {
	testCases := []struct {
		name string
		data string
	}{
		{name: "unknown index kind", data: "index:\n  kind: btree\nsources:\n  - path: a.wkt\n"},
		{name: "negative cell size", data: "index:\n  min_cell_size: -1\nsources:\n  - path: a.wkt\n"},
		{name: "nothing to load", data: "index:\n  kind: rtree\n"},
		{name: "malformed yaml", data: "index: [\n"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			conf, err := FromBytes([]byte(tc.data))
			if err == nil {
				t.Fatalf("have nil error, want error for %q", tc.data)
			}
			assert.Nil(t, conf)
		})
	}

	_, err := FromFile("./testdata/invalid_index.yml")
	assert.Error(t, err)
	_, err = FromFile("./testdata/missing.yml")
	assert.Error(t, err)
}

func TestConfig_IndexFactory(t *testing.T) {
	conf, err := FromFile("./testdata/minigeo.yml")
	require.NoError(t, err)
	factory := conf.IndexFactory(zap.NewNop())
	first, second := factory(), factory()
	_, ok := first.(*minigeo.BoxIndex)
	assert.True(t, ok)
	assert.NotSame(t, first, second)

	conf.Index.Kind = IndexQuadTree
	tree, ok := conf.IndexFactory(zap.NewNop())().(*minigeo.QuadTree)
	require.True(t, ok)
	tree.Build(nil)
	assert.Equal(t, 1, tree.Depth())
}
