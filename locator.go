package minigeo

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
)

var (
	ErrInvalidROI  = errors.New("minigeo/locator: invalid roi")
	ErrROINotFound = errors.New("minigeo/locator: roi not found")
)

// ROI is a named region of interest.
type ROI struct {
	ID       string
	Geometry Geometry
}

type LocatorOption func(*Locator)

// WithIndex sets the factory called on every Load. The index returned must
// be new: a Locator never rebuilds an index that may be serving queries.
func WithIndex(fn func() Index) LocatorOption {
	return func(l *Locator) {
		if fn != nil {
			l.newIndex = fn
		}
	}
}

func WithLogger(logger *zap.Logger) LocatorOption {
	return func(l *Locator) {
		if logger != nil {
			l.logger = logger
		}
	}
}

type snapshot struct {
	rois  []ROI
	geoms []Geometry
	ids   map[string]int
	index Index
}

// Locator resolves coordinates to the ROIs containing them. Load replaces
// the whole ROI set; lookups running during a Load see either the previous
// set or the new one.
type Locator struct {
	mu       sync.Mutex
	current  atomic.Value
	newIndex func() Index
	logger   *zap.Logger
	stats    *StatsCollector
}

func NewLocator(opts ...LocatorOption) *Locator {
	l := &Locator{
		newIndex: func() Index { return NewQuadTree() },
		logger:   zap.NewNop(),
		stats:    NewStatsCollector(),
	}
	for _, f := range opts {
		f(l)
	}
	l.current.Store(&snapshot{ids: map[string]int{}, index: l.newIndex()})
	return l
}

func (l *Locator) Load(rois []ROI) error {
	start := time.Now()

	snap := &snapshot{
		rois:  make([]ROI, len(rois)),
		geoms: make([]Geometry, len(rois)),
		ids:   make(map[string]int, len(rois)),
	}
	for i, roi := range rois {
		if len(roi.ID) == 0 {
			return fmt.Errorf("%w: empty id at position %d", ErrInvalidROI, i)
		}
		if roi.Geometry == nil {
			return fmt.Errorf("%w: %s has no geometry", ErrInvalidROI, roi.ID)
		}
		if _, found := snap.ids[roi.ID]; found {
			return fmt.Errorf("%w: duplicate id %s", ErrInvalidROI, roi.ID)
		}
		snap.ids[roi.ID] = i
		snap.rois[i] = roi
		snap.geoms[i] = roi.Geometry
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	snap.index = l.newIndex()
	snap.index.Build(snap.geoms)
	l.current.Store(snap)

	l.stats.SetROIs(len(rois))
	l.stats.IncrBuilds()
	l.logger.Info("rois loaded",
		zap.Int("rois", len(rois)),
		zap.Duration("took", time.Since(start)),
	)
	return nil
}

func (l *Locator) snapshot() *snapshot {
	return l.current.Load().(*snapshot)
}

// Candidates returns the ROIs the index reports for c. The list may hold
// ROIs that do not contain c. Calls count as candidate queries, not lookups.
func (l *Locator) Candidates(c Coordinate) []ROI {
	snap := l.snapshot()
	handles := snap.index.Fetch(c)
	l.stats.IncrCandidateQueries()
	l.stats.AddCandidates(len(handles))
	if len(handles) == 0 {
		return nil
	}
	rois := make([]ROI, len(handles))
	for i, h := range handles {
		rois[i] = snap.rois[h]
	}
	return rois
}

// Locate returns the ROIs containing c in load order. Geometries that do
// not enclose an area are never located.
func (l *Locator) Locate(c Coordinate) []ROI {
	snap := l.snapshot()
	handles := snap.index.Fetch(c)
	l.stats.IncrLookups()
	l.stats.AddCandidates(len(handles))
	var rois []ROI
	for _, h := range handles {
		container, ok := snap.geoms[h].(Container)
		if !ok || !container.Contains(c) {
			continue
		}
		rois = append(rois, snap.rois[h])
	}
	l.stats.AddHits(len(rois))
	return rois
}

func (l *Locator) Lookup(id string) (ROI, error) {
	snap := l.snapshot()
	h, found := snap.ids[id]
	if !found {
		return ROI{}, fmt.Errorf("%w: %s", ErrROINotFound, id)
	}
	return snap.rois[h], nil
}

// ROIs returns the loaded set in load order.
func (l *Locator) ROIs() []ROI {
	snap := l.snapshot()
	rois := make([]ROI, len(snap.rois))
	copy(rois, snap.rois)
	return rois
}

func (l *Locator) Len() int {
	return len(l.snapshot().rois)
}

func (l *Locator) Stats() Stats {
	return l.stats.Stats()
}
