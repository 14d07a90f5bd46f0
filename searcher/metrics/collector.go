package metrics

import (
	"sync/atomic"
	"time"
)

// SearchMetric summarizes one full search: its configuration plus
// counters describing how the budget was spent.
type SearchMetric struct {
	Budget       int
	MaxDepth     int
	Duration     time.Duration
	Passes       int
	Expansions   int
	NodesCreated int
	Terminals    int
}

type Collector interface {
	Start(budget, maxDepth int)
	AddPass()
	AddExpansion(children int)
	AddTerminal()
	Complete() SearchMetric
}

type collector struct {
	budget       int
	maxDepth     int
	startTime    time.Time
	passes       atomic.Int32
	expansions   atomic.Int32
	nodesCreated atomic.Int32
	terminals    atomic.Int32
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(budget, maxDepth int) {
	m.startTime = time.Now()
	m.budget = budget
	m.maxDepth = maxDepth
	m.passes.Store(0)
	m.expansions.Store(0)
	m.nodesCreated.Store(0)
	m.terminals.Store(0)
}

func (m *collector) AddPass() {
	m.passes.Add(1)
}

func (m *collector) AddExpansion(children int) {
	m.expansions.Add(1)
	m.nodesCreated.Add(int32(children))
}

func (m *collector) AddTerminal() {
	m.terminals.Add(1)
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Budget:       m.budget,
		MaxDepth:     m.maxDepth,
		Duration:     time.Since(m.startTime),
		Passes:       int(m.passes.Load()),
		Expansions:   int(m.expansions.Load()),
		NodesCreated: int(m.nodesCreated.Load()),
		Terminals:    int(m.terminals.Load()),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(budget, maxDepth int) {}
func (m *dummyCollector) AddPass()                   {}
func (m *dummyCollector) AddExpansion(children int)  {}
func (m *dummyCollector) AddTerminal()               {}
func (m *dummyCollector) Complete() SearchMetric     { return SearchMetric{} }
