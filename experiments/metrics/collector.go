package metrics

import (
	"time"
)

type SearchMetric struct {
	Depth    int
	Duration time.Duration
	Nodes    int // Positions visited, root included
	Clones   int // Boards copied to explore a child
	Cutoffs  int // Alpha-beta prunes
	Value    int // Root value, positive favouring red
	Fallback bool
}

type MoveMetric struct {
	Step   int
	Player string // Side name
	Square int
	SearchMetric
}

type GameMetric struct {
	ID             string
	StartingPlayer string
	Winner         string // Side name, "neutral" if the turn cap was hit
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

type Collector interface {
	Start(depth int)
	AddNode()
	AddClone()
	AddCutoff()
	Complete(value int) SearchMetric
}

// collector counts search events. A search runs on one goroutine, so the
// counters are plain ints.
type collector struct {
	depth     int
	startTime time.Time
	nodes     int
	clones    int
	cutoffs   int
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(depth int) {
	m.depth = depth
	m.startTime = time.Now()
	m.nodes = 0
	m.clones = 0
	m.cutoffs = 0
}

func (m *collector) AddNode() {
	m.nodes++
}

func (m *collector) AddClone() {
	m.clones++
}

func (m *collector) AddCutoff() {
	m.cutoffs++
}

func (m *collector) Complete(value int) SearchMetric {
	return SearchMetric{
		Depth:    m.depth,
		Duration: time.Since(m.startTime),
		Nodes:    m.nodes,
		Clones:   m.clones,
		Cutoffs:  m.cutoffs,
		Value:    value,
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(depth int)                 {}
func (m *dummyCollector) AddNode()                        {}
func (m *dummyCollector) AddClone()                       {}
func (m *dummyCollector) AddCutoff()                      {}
func (m *dummyCollector) Complete(value int) SearchMetric { return SearchMetric{Value: value} }
