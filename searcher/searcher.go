package searcher

import (
	"fmt"

	"adsearch/experiments/metrics"
	"adsearch/game"
	"adsearch/meta"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/constraints"
)

type Algorithm string

const (
	MinimaxAlgorithm         Algorithm = "minimax"
	AlphaBetaAlgorithm       Algorithm = "alphabeta"
	AlphaBetaCutoffAlgorithm Algorithm = "alphabeta-cutoff"
	GeneralMinimaxAlgorithm  Algorithm = "general-minimax"
)

// Algorithms lists every supported algorithm.
func Algorithms() []Algorithm {
	return []Algorithm{MinimaxAlgorithm, AlphaBetaAlgorithm, AlphaBetaCutoffAlgorithm, GeneralMinimaxAlgorithm}
}

func ParseAlgorithm(name string) (Algorithm, error) {
	for _, algorithm := range Algorithms() {
		if string(algorithm) == name {
			return algorithm, nil
		}
	}
	return "", fmt.Errorf("unknown search algorithm %q", name)
}

type Option func(s *Searcher)

// Searcher runs one algorithm with a fixed configuration, reporting metrics
// and logging each search.
type Searcher struct {
	algorithm Algorithm
	cutoff    int
	metrics   metrics.Collector
	logger    zerolog.Logger
}

// WithCutoff sets the cutoff ply of the alphabeta-cutoff algorithm.
// Non-positive values are ignored.
func WithCutoff(ply int) Option {
	return func(s *Searcher) {
		if ply > 0 {
			s.cutoff = ply
		}
	}
}

func WithMetrics(collector metrics.Collector) Option {
	return func(s *Searcher) {
		if collector != nil {
			s.metrics = collector
		}
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(s *Searcher) {
		s.logger = logger
	}
}

func NewSearcher(algorithm Algorithm, options ...Option) *Searcher {
	if _, err := ParseAlgorithm(string(algorithm)); err != nil {
		panic(err)
	}
	s := &Searcher{ // Default values
		algorithm: algorithm,
		cutoff:    meta.DefaultCutoff,
		metrics:   metrics.NewCollector(),
		logger:    log.Logger,
	}
	for _, option := range options {
		option(s)
	}
	return s
}

func (s *Searcher) Algorithm() Algorithm {
	return s.algorithm
}

// Cutoff returns the cutoff ply, or 0 if the algorithm is unbounded.
func (s *Searcher) Cutoff() int {
	if s.algorithm != AlphaBetaCutoffAlgorithm {
		return 0
	}
	return s.cutoff
}

// FindNextMove searches problem from its start state with the searcher's
// algorithm. evaluate is only used by alphabeta-cutoff, which panics without it.
// Precondition violations raised by problem propagate unchanged.
func FindNextMove[S game.State, A constraints.Ordered](s *Searcher, problem game.Problem[S, A], evaluate game.Heuristic[S]) (Result[A], metrics.SearchMetric) {
	s.metrics.Start(string(s.algorithm), s.Cutoff())

	var result Result[A]
	switch s.algorithm {
	case MinimaxAlgorithm:
		result = minimax(problem, s.metrics)
	case AlphaBetaAlgorithm:
		result = alphaBeta(problem, s.metrics)
	case AlphaBetaCutoffAlgorithm:
		if evaluate == nil {
			panic("alphabeta-cutoff search needs a heuristic")
		}
		result = alphaBetaCutoff(problem, s.cutoff, evaluate, s.metrics)
	case GeneralMinimaxAlgorithm:
		result = generalMinimax(problem, s.metrics)
	default:
		panic(fmt.Sprintf("unexpected search algorithm %q", s.algorithm))
	}

	metric := s.metrics.Complete()
	s.logger.Debug().
		Str("algorithm", string(s.algorithm)).
		Stringer("result", result).
		Int("visits", metric.Visits).
		Int("prunes", metric.Prunes).
		Int("cutoffs", metric.Cutoffs).
		Dur("duration", metric.Duration).
		Msg("search complete")

	return result, metric
}
