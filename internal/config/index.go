package config

import (
	"fmt"

	"github.com/mmadfox/minigeo"
	"go.uber.org/zap"
)

const (
	IndexQuadTree = "quadtree"
	IndexRTree    = "rtree"
)

type index struct {
	Kind string `yaml:"kind"`
	// MinCellSize bounds quadtree refinement. Areas where ROI envelopes
	// overlap are split down to this size; zero keeps the 0.001 default.
	MinCellSize float64 `yaml:"min_cell_size"`
}

func (i index) validate() error {
	switch i.Kind {
	case "", IndexQuadTree, IndexRTree:
	default:
		return fmt.Errorf("minigeo/config: unknown index kind %q", i.Kind)
	}
	if i.MinCellSize < 0 {
		return fmt.Errorf("minigeo/config: negative min_cell_size %v", i.MinCellSize)
	}
	return nil
}

// IndexFactory returns the index constructor for the configured kind. An
// empty kind selects the quadtree.
func (c *Config) IndexFactory(logger *zap.Logger) func() minigeo.Index {
	if c.Index.Kind == IndexRTree {
		return func() minigeo.Index { return minigeo.NewBoxIndex() }
	}
	opts := []minigeo.QuadTreeOption{minigeo.WithQuadTreeLogger(logger)}
	if c.Index.MinCellSize > 0 {
		opts = append(opts, minigeo.WithMinCellSize(c.Index.MinCellSize))
	}
	return func() minigeo.Index { return minigeo.NewQuadTree(opts...) }
}
