package searcher

import (
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	StartTime  time.Time
	Duration   time.Duration
	Searches   int64
	Candidates int64
	Sampled    bool // some pool was too large to enumerate
	Truncated  bool // some search hit its deadline
}

type MetricsCollector interface {
	Start()
	AddSearch()
	AddCandidate()
	Sampled()
	Truncated()
	Complete() SearchMetric
}

type metricsCollector struct {
	startTime  time.Time
	searches   atomic.Int64
	candidates atomic.Int64
	sampled    atomic.Bool
	truncated  atomic.Bool
}

func NewMetricsCollector() MetricsCollector {
	return &metricsCollector{}
}

func (m *metricsCollector) Start() {
	m.startTime = time.Now()
	m.searches.Store(0)
	m.candidates.Store(0)
	m.sampled.Store(false)
	m.truncated.Store(false)
}

func (m *metricsCollector) AddSearch() {
	m.searches.Add(1)
}

func (m *metricsCollector) AddCandidate() {
	m.candidates.Add(1)
}

func (m *metricsCollector) Sampled() {
	m.sampled.Store(true)
}

func (m *metricsCollector) Truncated() {
	m.truncated.Store(true)
}

func (m *metricsCollector) Complete() SearchMetric {
	return SearchMetric{
		StartTime:  m.startTime,
		Duration:   time.Since(m.startTime),
		Searches:   m.searches.Load(),
		Candidates: m.candidates.Load(),
		Sampled:    m.sampled.Load(),
		Truncated:  m.truncated.Load(),
	}
}

type noMetricsCollector struct{}

func NewNoMetricsCollector() MetricsCollector {
	return &noMetricsCollector{}
}

func (m *noMetricsCollector) Start()                 {}
func (m *noMetricsCollector) AddSearch()             {}
func (m *noMetricsCollector) AddCandidate()          {}
func (m *noMetricsCollector) Sampled()               {}
func (m *noMetricsCollector) Truncated()             {}
func (m *noMetricsCollector) Complete() SearchMetric { return SearchMetric{} }
