package metrics

import "time"

// SearchMetric describes one completed decision.
type SearchMetric struct {
	Simulations  int
	RolloutMoves int
	Duration     time.Duration
}

// MoveRecord ties a decision's metrics to its place in a game.
type MoveRecord struct {
	Game string // GameRecord.ID
	Step int
	Side string
	Move string
	SearchMetric
}

type GameRecord struct {
	ID        string
	Black     string // agent option string
	White     string
	Winner    string
	Moves     int
	StartTime time.Time
	Duration  time.Duration
}

// Collector accumulates search statistics over one decision. The search
// loop is single-threaded, so plain counters suffice.
type Collector interface {
	Start()
	AddSimulation()
	AddRolloutMove()
	Complete() SearchMetric
}

type collector struct {
	simulations  int
	rolloutMoves int
	startTime    time.Time
}

func NewCollector() Collector {
	return &collector{}
}

func (c *collector) Start() {
	c.startTime = time.Now()
	c.simulations = 0
	c.rolloutMoves = 0
}

func (c *collector) AddSimulation() {
	c.simulations++
}

func (c *collector) AddRolloutMove() {
	c.rolloutMoves++
}

func (c *collector) Complete() SearchMetric {
	return SearchMetric{
		Simulations:  c.simulations,
		RolloutMoves: c.rolloutMoves,
		Duration:     time.Since(c.startTime),
	}
}

type dummyCollector struct{}

// NewDummyCollector returns a collector that records nothing, for
// callers that do not care about search metrics.
func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (dummyCollector) Start() {}

func (dummyCollector) AddSimulation() {}

func (dummyCollector) AddRolloutMove() {}

func (dummyCollector) Complete() SearchMetric { return SearchMetric{} }
