package minigeo

import (
	"sync/atomic"
)

type StatsCollector struct {
	totalROIs       uint64
	totalBuilds     uint64
	totalLookups    uint64
	totalQueries    uint64
	totalCandidates uint64
	totalHits       uint64
}

// Stats is a point-in-time copy of the counters. Lookups counts exact
// Locate calls and CandidateQueries counts index-only Candidates calls;
// Candidates sums the index results of both.
type Stats struct {
	ROIs             uint64
	Builds           uint64
	Lookups          uint64
	CandidateQueries uint64
	Candidates       uint64
	Hits             uint64
}

func NewStatsCollector() *StatsCollector {
	return &StatsCollector{}
}

func (sc *StatsCollector) Stats() Stats {
	return Stats{
		ROIs:             atomic.LoadUint64(&sc.totalROIs),
		Builds:           atomic.LoadUint64(&sc.totalBuilds),
		Lookups:          atomic.LoadUint64(&sc.totalLookups),
		CandidateQueries: atomic.LoadUint64(&sc.totalQueries),
		Candidates:       atomic.LoadUint64(&sc.totalCandidates),
		Hits:             atomic.LoadUint64(&sc.totalHits),
	}
}

// Reset clears the counters. The ROI gauge is kept.
func (sc *StatsCollector) Reset() {
	atomic.StoreUint64(&sc.totalBuilds, 0)
	atomic.StoreUint64(&sc.totalLookups, 0)
	atomic.StoreUint64(&sc.totalQueries, 0)
	atomic.StoreUint64(&sc.totalCandidates, 0)
	atomic.StoreUint64(&sc.totalHits, 0)
}

func (sc *StatsCollector) SetROIs(n int) {
	atomic.StoreUint64(&sc.totalROIs, uint64(n))
}

func (sc *StatsCollector) IncrBuilds() {
	atomic.AddUint64(&sc.totalBuilds, 1)
}

func (sc *StatsCollector) IncrLookups() {
	atomic.AddUint64(&sc.totalLookups, 1)
}

func (sc *StatsCollector) IncrCandidateQueries() {
	atomic.AddUint64(&sc.totalQueries, 1)
}

func (sc *StatsCollector) AddCandidates(n int) {
	atomic.AddUint64(&sc.totalCandidates, uint64(n))
}

func (sc *StatsCollector) AddHits(n int) {
	atomic.AddUint64(&sc.totalHits, uint64(n))
}
