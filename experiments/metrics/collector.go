package metrics

import (
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// SearchMetric summarizes a single search call.
type SearchMetric struct {
	Algorithm string
	Cutoff    int // Cutoff ply, 0 for unbounded searches
	StartTime time.Time
	Duration  time.Duration
	Visits    int // States whose value was computed
	Prunes    int // Early returns from alpha-beta windows
	Cutoffs   int // States scored by the heuristic instead of expanded
}

type MoveMetric struct {
	Step   int
	Player int
	SearchMetric
}

type GameMetric struct {
	StartingPlayer int
	Evaluation     []float64
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

type Collector interface {
	Start(algorithm string, cutoff int)
	AddVisit()
	AddPrune()
	AddCutoff()
	Complete() SearchMetric
}

type collector struct {
	algorithm string
	cutoff    int
	startTime time.Time
	visits    atomic.Int64
	prunes    atomic.Int64
	cutoffs   atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(algorithm string, cutoff int) {
	m.algorithm = algorithm
	m.cutoff = cutoff
	m.startTime = time.Now()
	m.visits.Store(0)
	m.prunes.Store(0)
	m.cutoffs.Store(0)
}

func (m *collector) AddVisit() {
	m.visits.Add(1)
}

func (m *collector) AddPrune() {
	m.prunes.Add(1)
}

func (m *collector) AddCutoff() {
	m.cutoffs.Add(1)
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Algorithm: m.algorithm,
		Cutoff:    m.cutoff,
		StartTime: m.startTime,
		Duration:  time.Since(m.startTime),
		Visits:    int(m.visits.Load()),
		Prunes:    int(m.prunes.Load()),
		Cutoffs:   int(m.cutoffs.Load()),
	}
}

// dummyCollector only remembers what was searched, not what the search did.
type dummyCollector struct {
	algorithm string
	cutoff    int
}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(algorithm string, cutoff int) {
	m.algorithm = algorithm
	m.cutoff = cutoff
}

func (m *dummyCollector) AddVisit()  {}
func (m *dummyCollector) AddPrune()  {}
func (m *dummyCollector) AddCutoff() {}

func (m *dummyCollector) Complete() SearchMetric {
	return SearchMetric{Algorithm: m.algorithm, Cutoff: m.cutoff}
}

// prometheusCollector counts like collector and mirrors every count into
// Prometheus metrics labelled by algorithm.
type prometheusCollector struct {
	collector
	searches *prometheus.CounterVec
	visits   *prometheus.CounterVec
	prunes   *prometheus.CounterVec
	cutoffs  *prometheus.CounterVec
	duration *prometheus.HistogramVec

	visit, prune, cut prometheus.Counter
}

// NewPrometheusCollector registers the search metrics with reg. Registering
// two collectors with the same registry panics.
func NewPrometheusCollector(reg prometheus.Registerer) Collector {
	labels := []string{"algorithm"}
	m := &prometheusCollector{
		searches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "adsearch",
			Name:      "searches_total",
			Help:      "Number of completed searches.",
		}, labels),
		visits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "adsearch",
			Name:      "visited_states_total",
			Help:      "Number of states whose value was computed.",
		}, labels),
		prunes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "adsearch",
			Name:      "prunes_total",
			Help:      "Number of alpha-beta cut-offs.",
		}, labels),
		cutoffs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "adsearch",
			Name:      "heuristic_evaluations_total",
			Help:      "Number of states scored by the heuristic at the cutoff ply.",
		}, labels),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "adsearch",
			Name:      "search_duration_seconds",
			Help:      "Wall time of a search.",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 10, 8),
		}, labels),
	}
	reg.MustRegister(m.searches, m.visits, m.prunes, m.cutoffs, m.duration)
	return m
}

func (m *prometheusCollector) Start(algorithm string, cutoff int) {
	m.collector.Start(algorithm, cutoff)
	m.visit = m.visits.WithLabelValues(algorithm)
	m.prune = m.prunes.WithLabelValues(algorithm)
	m.cut = m.cutoffs.WithLabelValues(algorithm)
}

func (m *prometheusCollector) AddVisit() {
	m.collector.AddVisit()
	m.visit.Inc()
}

func (m *prometheusCollector) AddPrune() {
	m.collector.AddPrune()
	m.prune.Inc()
}

func (m *prometheusCollector) AddCutoff() {
	m.collector.AddCutoff()
	m.cut.Inc()
}

func (m *prometheusCollector) Complete() SearchMetric {
	metric := m.collector.Complete()
	m.searches.WithLabelValues(metric.Algorithm).Inc()
	m.duration.WithLabelValues(metric.Algorithm).Observe(metric.Duration.Seconds())
	return metric
}
