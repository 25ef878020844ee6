package minigeo

import (
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"
)

// DefaultMinCellSize stops the subdivision of cells narrower or lower than
// 0.001 degrees, roughly 100 meters on the ground. Cells where ROI envelopes
// overlap are refined down to this size, so build cost grows with
// (overlap extent / min cell size)^2. Planar data in other units, or sets with
// wide overlaps, need a larger value via WithMinCellSize.
const DefaultMinCellSize = 0.001

// QuadBounds is the rectangle owned by a quadtree node.
type QuadBounds struct {
	TopLeft     Coordinate
	TopRight    Coordinate
	BottomRight Coordinate
	BottomLeft  Coordinate
}

func quadBoundsOf(env Envelope) QuadBounds {
	return QuadBounds{
		TopLeft:     Coordinate{X: env.MinX(), Y: env.MaxY()},
		TopRight:    Coordinate{X: env.MaxX(), Y: env.MaxY()},
		BottomRight: Coordinate{X: env.MaxX(), Y: env.MinY()},
		BottomLeft:  Coordinate{X: env.MinX(), Y: env.MinY()},
	}
}

func (b QuadBounds) Width() float64 {
	return b.BottomRight.X - b.TopLeft.X
}

func (b QuadBounds) Height() float64 {
	return b.TopLeft.Y - b.BottomRight.Y
}

func (b QuadBounds) Envelope() Envelope {
	return Envelope{TopLeft: b.TopLeft, BottomRight: b.BottomRight}
}

// Contains is half-open: the top and left edges belong to the cell, the
// bottom and right edges do not. Every point has at most one owning leaf.
func (b QuadBounds) Contains(c Coordinate) bool {
	return c.Y <= b.TopLeft.Y &&
		c.Y > b.BottomRight.Y &&
		c.X < b.BottomRight.X &&
		c.X >= b.TopLeft.X
}

// split returns the NW, NE, SE and SW quadrants.
func (b QuadBounds) split() [4]QuadBounds {
	center := Coordinate{
		X: b.TopLeft.X + b.Width()/2,
		Y: b.TopLeft.Y - b.Height()/2,
	}
	top := Coordinate{X: center.X, Y: b.TopLeft.Y}
	bottom := Coordinate{X: center.X, Y: b.BottomRight.Y}
	left := Coordinate{X: b.TopLeft.X, Y: center.Y}
	right := Coordinate{X: b.BottomRight.X, Y: center.Y}
	return [4]QuadBounds{
		{TopLeft: b.TopLeft, TopRight: top, BottomRight: center, BottomLeft: left},
		{TopLeft: top, TopRight: b.TopRight, BottomRight: right, BottomLeft: center},
		{TopLeft: center, TopRight: right, BottomRight: b.BottomRight, BottomLeft: bottom},
		{TopLeft: left, TopRight: center, BottomRight: bottom, BottomLeft: b.BottomLeft},
	}
}

func (b QuadBounds) String() string {
	return fmt.Sprintf("QuadBounds{Left:%v, Top:%v, Right:%v, Bottom:%v}",
		b.TopLeft.X, b.TopLeft.Y, b.BottomRight.X, b.BottomRight.Y)
}

type quadNode struct {
	bounds QuadBounds
	// index of the first of four consecutive children, -1 for leaves
	firstChild int
	// arena handles, set on leaves only
	rois []int
}

func (n *quadNode) isLeaf() bool {
	return n.firstChild < 0
}

type QuadTreeOption func(*QuadTree)

// QuadTree is a point-region quadtree over ROI envelopes. Fetch narrows a
// point query to the ROIs whose envelopes overlap the leaf cell holding the
// point: there are no false negatives, false positives are possible.
//
// A cell holding two or more ROI envelopes keeps splitting until it is
// smaller than the minimum cell size. Overlapping envelopes therefore cost
// about (overlap extent / min cell size)^2 leaves.
//
// Build replaces the whole node arena and must not run concurrently with
// Fetch on the same tree. Concurrent Fetch calls are safe. To rebuild while
// serving queries, build a new tree and swap the reference, as Locator does.
type QuadTree struct {
	nodes       []quadNode
	rois        []Geometry
	envs        []Envelope
	depth       int
	nodeCount   int
	built       bool
	minCellSize float64
	logger      *zap.Logger
}

func NewQuadTree(opts ...QuadTreeOption) *QuadTree {
	t := &QuadTree{
		minCellSize: DefaultMinCellSize,
		logger:      zap.NewNop(),
	}
	for _, f := range opts {
		f(t)
	}
	return t
}

// WithMinCellSize sets the minimum cell width and height. Values
// that are not positive are ignored.
func WithMinCellSize(size float64) QuadTreeOption {
	return func(t *QuadTree) {
		if size > 0 {
			t.minCellSize = size
		}
	}
}

func WithQuadTreeLogger(logger *zap.Logger) QuadTreeOption {
	return func(t *QuadTree) {
		if logger != nil {
			t.logger = logger
		}
	}
}

// Build indexes rois by their envelopes, discarding any previous tree. The
// tree keeps a reference to rois; handles returned by Fetch are indexes into
// it. Nil geometries and empty collections are never returned.
func (t *QuadTree) Build(rois []Geometry) {
	start := time.Now()

	t.rois = rois
	t.envs = make([]Envelope, len(rois))
	t.nodes = make([]quadNode, 0, 1+4*len(rois))
	t.depth = 0
	t.nodeCount = 1

	candidates := make([]int, 0, len(rois))
	bbox := emptyEnvelope()
	for i, roi := range rois {
		if roi == nil || isEmptyCollection(roi) {
			continue
		}
		t.envs[i] = roi.Envelope()
		bbox = bbox.Union(t.envs[i])
		candidates = append(candidates, i)
	}

	t.nodes = append(t.nodes, quadNode{bounds: quadBoundsOf(bbox), firstChild: -1})
	t.quadStep(0, candidates, 1)
	t.envs = nil
	t.built = true

	t.logger.Debug("quadtree built",
		zap.Int("rois", len(candidates)),
		zap.Int("nodes", t.nodeCount),
		zap.Int("depth", t.depth),
		zap.Stringer("bounds", t.nodes[0].bounds),
		zap.Duration("took", time.Since(start)),
	)
}

func (t *QuadTree) quadStep(idx int, candidates []int, depth int) {
	if depth > t.depth {
		t.depth = depth
	}

	bounds := t.nodes[idx].bounds
	cell := bounds.Envelope()
	contained := make([]int, 0, len(candidates))
	for _, h := range candidates {
		if cell.Overlaps(t.envs[h]) {
			contained = append(contained, h)
		}
	}

	// NaN bounds fail both comparisons and terminate as well.
	if len(contained) <= 1 ||
		!(math.Abs(bounds.Height()) >= t.minCellSize) ||
		!(math.Abs(bounds.Width()) >= t.minCellSize) {
		if len(contained) > 0 {
			t.nodes[idx].rois = contained
		}
		return
	}

	first := len(t.nodes)
	for _, quad := range bounds.split() {
		t.nodes = append(t.nodes, quadNode{bounds: quad, firstChild: -1})
	}
	t.nodes[idx].firstChild = first
	for i := 0; i < 4; i++ {
		t.quadStep(first+i, contained, depth+1)
	}
	t.nodeCount += 4
}

// Fetch returns the handles of the candidate ROIs for c in ascending order,
// or nil when the tree is not built or c is outside of the root cell.
func (t *QuadTree) Fetch(c Coordinate) []int {
	if !t.built {
		return nil
	}
	idx := t.search(c)
	if idx < 0 || len(t.nodes[idx].rois) == 0 {
		return nil
	}
	handles := make([]int, len(t.nodes[idx].rois))
	copy(handles, t.nodes[idx].rois)
	return handles
}

// FetchGeometries is Fetch with the handles resolved.
func (t *QuadTree) FetchGeometries(c Coordinate) []Geometry {
	handles := t.Fetch(c)
	if len(handles) == 0 {
		return nil
	}
	geometries := make([]Geometry, len(handles))
	for i, h := range handles {
		geometries[i] = t.rois[h]
	}
	return geometries
}

func (t *QuadTree) search(c Coordinate) int {
	if !t.nodes[0].bounds.Contains(c) {
		return -1
	}
	idx := 0
	for {
		node := &t.nodes[idx]
		if node.isLeaf() {
			return idx
		}
		next := -1
		for i := node.firstChild; i < node.firstChild+4; i++ {
			if t.nodes[i].bounds.Contains(c) {
				next = i
				break
			}
		}
		if next < 0 {
			return -1
		}
		idx = next
	}
}

// ForEachLeaf calls fn for every leaf in depth-first NW, NE, SE, SW order
// until fn returns false.
func (t *QuadTree) ForEachLeaf(fn func(bounds QuadBounds, handles []int) bool) {
	if !t.built {
		return
	}
	t.walk(0, fn)
}

func (t *QuadTree) walk(idx int, fn func(bounds QuadBounds, handles []int) bool) bool {
	node := &t.nodes[idx]
	if node.isLeaf() {
		return fn(node.bounds, node.rois)
	}
	for i := node.firstChild; i < node.firstChild+4; i++ {
		if !t.walk(i, fn) {
			return false
		}
	}
	return true
}

func (t *QuadTree) Built() bool {
	return t.built
}

// Depth is the number of levels, 1 for a tree made of the root only.
func (t *QuadTree) Depth() int {
	return t.depth
}

func (t *QuadTree) NodeCount() int {
	return t.nodeCount
}

func (t *QuadTree) Bounds() QuadBounds {
	if !t.built {
		return QuadBounds{}
	}
	return t.nodes[0].bounds
}
