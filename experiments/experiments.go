package experiments

import (
	"fmt"

	"adsearch/experiments/metrics"
	"adsearch/game"
	"adsearch/meta"
	"adsearch/searcher"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

var validate = validator.New()

// Config describes a batch of generated two-player constant-sum problems.
type Config struct {
	Name          string  `validate:"required"`
	OutDir        string  `validate:"required"`
	Problems      int     `validate:"gte=1"`
	Seed          uint64  // Same seed, same problems
	Depth         int     `validate:"gte=1,lte=12"`
	Branching     int     `validate:"gte=1,lte=8"`
	Sharing       float64 `validate:"gte=0,lte=1"`
	EarlyTerminal float64 `validate:"gte=0,lt=1"`
	// Registerer receives Prometheus search metrics when set
	Registerer prometheus.Registerer `validate:"-"`
}

func DefaultConfig() Config {
	return Config{
		Name:          "comparison",
		OutDir:        "experiments",
		Problems:      meta.NumProblems,
		Seed:          1,
		Depth:         meta.DefaultDepth,
		Branching:     meta.DefaultBranching,
		Sharing:       0.2,
		EarlyTerminal: 0.1,
	}
}

type Summary struct {
	Run             string
	Dir             string
	Problems        int
	Disagreements   int // Problems on which the algorithms chose different actions
	PruneViolations int // Problems on which alpha-beta visited more states than minimax
}

// RunComparison runs every algorithm on each generated problem, checks that
// they agree and that alpha-beta never visits more states than minimax, and
// writes the records to a new directory under cfg.OutDir.
func RunComparison(cfg Config) (Summary, error) {
	if err := validate.Struct(cfg); err != nil {
		return Summary{}, fmt.Errorf("invalid experiment config: %w", err)
	}

	run := uuid.NewString()
	rng := rand.New(rand.NewSource(cfg.Seed))
	collector := newCollector(cfg)
	summary := Summary{Run: run, Problems: cfg.Problems}

	var searchRecords []metrics.SearchRecord
	var problemRecords []metrics.ProblemRecord

	log.Info().Msgf("starting %s experiment %s with %d problems...", cfg.Name, run, cfg.Problems)

	for i := 1; i <= cfg.Problems; i++ {
		dag := generate(rng, cfg)
		searchers := []*searcher.Searcher{
			searcher.NewSearcher(searcher.MinimaxAlgorithm, searcher.WithMetrics(collector)),
			searcher.NewSearcher(searcher.AlphaBetaAlgorithm, searcher.WithMetrics(collector)),
			searcher.NewSearcher(searcher.AlphaBetaCutoffAlgorithm, searcher.WithMetrics(collector), searcher.WithCutoff(dag.Depth())),
			searcher.NewSearcher(searcher.GeneralMinimaxAlgorithm, searcher.WithMetrics(collector)),
		}

		var results []searcher.Result[int]
		var searchMetrics []metrics.SearchMetric
		for _, s := range searchers {
			result, metric := searcher.FindNextMove(s, dag, zeroHeuristic)
			results = append(results, result)
			searchMetrics = append(searchMetrics, metric)
			searchRecords = append(searchRecords, metrics.SearchRecord{
				Run:          run,
				Problem:      i,
				Result:       result.String(),
				SearchMetric: metric,
			})
		}

		agree := sameAction(results)
		if !agree {
			summary.Disagreements++
			log.Warn().Msgf("problem %d: algorithms disagree: %v", i, results)
		}
		if searchMetrics[1].Visits > searchMetrics[0].Visits {
			summary.PruneViolations++
			log.Warn().Msgf("problem %d: alpha-beta visited %d states, minimax %d", i, searchMetrics[1].Visits, searchMetrics[0].Visits)
		}

		problemRecords = append(problemRecords, metrics.ProblemRecord{
			Run:      run,
			Problem:  i,
			Vertices: dag.Vertices(),
			Depth:    dag.Depth(),
			Agree:    agree,
		})
		log.Debug().Msgf("completed problem %d of %d", i, cfg.Problems)
	}

	log.Info().Msgf("completed %s experiment with %d disagreements", cfg.Name, summary.Disagreements)

	writer, err := metrics.NewWriter(cfg.OutDir, cfg.Name)
	if err != nil {
		return summary, fmt.Errorf("failed to create experiment writer: %w", err)
	}
	summary.Dir = writer.Dir()

	if err := writer.WriteSearchRecords(searchRecords); err != nil {
		return summary, err
	}
	log.Info().Msg("stored search records")

	if err := writer.WriteProblemRecords(problemRecords); err != nil {
		return summary, err
	}
	log.Info().Msg("stored problem records")

	return summary, nil
}

func generate(rng *rand.Rand, cfg Config) *game.GameDAG {
	return game.RandomDAG(rng, game.RandomDAGConfig{
		Depth:         cfg.Depth,
		Branching:     cfg.Branching,
		Players:       2,
		Sharing:       cfg.Sharing,
		EarlyTerminal: cfg.EarlyTerminal,
	})
}

func newCollector(cfg Config) metrics.Collector {
	if cfg.Registerer != nil {
		return metrics.NewPrometheusCollector(cfg.Registerer)
	}
	return metrics.NewCollector()
}

func sameAction(results []searcher.Result[int]) bool {
	first, ok := results[0].Action()
	if !ok {
		return false
	}
	for _, result := range results[1:] {
		if action, ok := result.Action(); !ok || action != first {
			return false
		}
	}
	return true
}

func zeroHeuristic(game.DAGState) float64 { return 0 }
