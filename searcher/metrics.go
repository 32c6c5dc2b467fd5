package searcher

import (
	"sync/atomic"
	"time"
)

// SearchMetric summarizes one FindMove call.
type SearchMetric struct {
	Duration     time.Duration
	Depth        int     // deepest fully completed depth (minimax)
	Episodes     int     // simulations run (MCTS)
	FullPlayouts int     // rollouts that reached a terminal state (MCTS)
	TableHitRate float64 // transposition hit rate (minimax)
	Critical     bool    // move came from the tactical pre-check
}

// Collector gathers per-search statistics. Engines get a dummy collector by
// default so the hot path pays nothing unless metrics are requested.
type Collector interface {
	Start()
	AddEpisode()
	AddFullPlayout()
	SetDepth(depth int)
	SetTableHitRate(rate float64)
	SetCritical(value bool)
	Complete() SearchMetric
}

type collector struct {
	startTime    time.Time
	depth        atomic.Int32
	episodes     atomic.Int32
	fullPlayouts atomic.Int32
	hitRate      float64
	critical     atomic.Bool
}

func NewCollector() Collector {
	return &collector{}
}

func (c *collector) Start() {
	c.startTime = time.Now()
	c.depth.Store(0)
	c.episodes.Store(0)
	c.fullPlayouts.Store(0)
	c.hitRate = 0
	c.critical.Store(false)
}

func (c *collector) AddEpisode() {
	c.episodes.Add(1)
}

func (c *collector) AddFullPlayout() {
	c.fullPlayouts.Add(1)
}

func (c *collector) SetDepth(depth int) {
	c.depth.Store(int32(depth))
}

func (c *collector) SetTableHitRate(rate float64) {
	c.hitRate = rate
}

func (c *collector) SetCritical(value bool) {
	c.critical.Store(value)
}

func (c *collector) Complete() SearchMetric {
	return SearchMetric{
		Duration:     time.Since(c.startTime),
		Depth:        int(c.depth.Load()),
		Episodes:     int(c.episodes.Load()),
		FullPlayouts: int(c.fullPlayouts.Load()),
		TableHitRate: c.hitRate,
		Critical:     c.critical.Load(),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return dummyCollector{}
}

func (dummyCollector) Start()                  {}
func (dummyCollector) AddEpisode()             {}
func (dummyCollector) AddFullPlayout()         {}
func (dummyCollector) SetDepth(int)            {}
func (dummyCollector) SetTableHitRate(float64) {}
func (dummyCollector) SetCritical(bool)        {}
func (dummyCollector) Complete() SearchMetric  { return SearchMetric{} }
