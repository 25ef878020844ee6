package minigeo

import (
	"sort"
	"sync"

	"github.com/tidwall/rtree"
)

// Index narrows a point query to candidate ROIs. Handles are positions in
// the slice given to Build. Implementations never drop a ROI whose envelope
// contains the point.
type Index interface {
	Build(rois []Geometry)
	Fetch(c Coordinate) []int
}

var (
	_ Index = (*QuadTree)(nil)
	_ Index = (*BoxIndex)(nil)
)

// BoxIndex keeps ROI envelopes in an R-tree. Unlike QuadTree it may be
// rebuilt while queries are running.
type BoxIndex struct {
	sync.RWMutex
	index *rtree.RTree
}

func NewBoxIndex() *BoxIndex {
	return &BoxIndex{}
}

func (bi *BoxIndex) Build(rois []Geometry) {
	index := &rtree.RTree{}
	for i, roi := range rois {
		if roi == nil || isEmptyCollection(roi) {
			continue
		}
		env := roi.Envelope()
		index.Insert(
			[2]float64{env.MinX(), env.MinY()},
			[2]float64{env.MaxX(), env.MaxY()},
			i,
		)
	}
	bi.Lock()
	bi.index = index
	bi.Unlock()
}

// Fetch returns, in ascending order, the handles of every ROI whose closed
// envelope contains c.
func (bi *BoxIndex) Fetch(c Coordinate) []int {
	bi.RLock()
	defer bi.RUnlock()
	if bi.index == nil {
		return nil
	}
	var handles []int
	bi.index.Search(
		[2]float64{c.X, c.Y},
		[2]float64{c.X, c.Y},
		func(_, _ [2]float64, value interface{}) bool {
			if h, ok := value.(int); ok {
				handles = append(handles, h)
			}
			return true
		},
	)
	sort.Ints(handles)
	return handles
}

func (bi *BoxIndex) Len() int {
	bi.RLock()
	defer bi.RUnlock()
	if bi.index == nil {
		return 0
	}
	return bi.index.Len()
}
