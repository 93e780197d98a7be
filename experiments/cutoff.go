package experiments

import (
	"fmt"

	"adsearch/experiments/metrics"
	"adsearch/game"
	"adsearch/searcher"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// CutoffAgreement tallies how often alphabeta-cutoff at one cutoff ply chose
// the same action as an unbounded alpha-beta search.
type CutoffAgreement struct {
	Cutoff     int
	Problems   int
	Agreements int
	Visits     int // Total over all problems
}

func (c CutoffAgreement) Rate() float64 {
	if c.Problems == 0 {
		return 0
	}
	return float64(c.Agreements) / float64(c.Problems)
}

// RunCutoffExperiment sweeps the cutoff ply from 1 to cfg.Depth on every
// generated problem, scoring cut-off states with evaluate (0 everywhere if
// nil). At cutoff cfg.Depth no state is cut off, so any disagreement there is
// counted in the summary.
func RunCutoffExperiment(cfg Config, evaluate game.Heuristic[game.DAGState]) ([]CutoffAgreement, Summary, error) {
	if err := validate.Struct(cfg); err != nil {
		return nil, Summary{}, fmt.Errorf("invalid experiment config: %w", err)
	}
	if evaluate == nil {
		evaluate = zeroHeuristic
	}

	run := uuid.NewString()
	rng := rand.New(rand.NewSource(cfg.Seed))
	collector := newCollector(cfg)
	summary := Summary{Run: run, Problems: cfg.Problems}

	agreements := make([]CutoffAgreement, cfg.Depth)
	for i := range agreements {
		agreements[i].Cutoff = i + 1
	}
	var searchRecords []metrics.SearchRecord
	var problemRecords []metrics.ProblemRecord

	log.Info().Msgf("starting %s cutoff sweep %s with %d problems...", cfg.Name, run, cfg.Problems)

	for i := 1; i <= cfg.Problems; i++ {
		dag := generate(rng, cfg)
		baseline, metric := searcher.FindNextMove(searcher.NewSearcher(searcher.AlphaBetaAlgorithm, searcher.WithMetrics(collector)), dag, evaluate)
		searchRecords = append(searchRecords, metrics.SearchRecord{Run: run, Problem: i, Result: baseline.String(), SearchMetric: metric})
		want, _ := baseline.Action()

		agree := true
		for c := 1; c <= cfg.Depth; c++ {
			s := searcher.NewSearcher(searcher.AlphaBetaCutoffAlgorithm, searcher.WithMetrics(collector), searcher.WithCutoff(c))
			result, metric := searcher.FindNextMove(s, dag, evaluate)
			searchRecords = append(searchRecords, metrics.SearchRecord{Run: run, Problem: i, Result: result.String(), SearchMetric: metric})

			got, _ := result.Action()
			tally := &agreements[c-1]
			tally.Problems++
			tally.Visits += metric.Visits
			if got == want {
				tally.Agreements++
			} else if c == cfg.Depth {
				agree = false
			}
		}
		if !agree {
			summary.Disagreements++
			log.Warn().Msgf("problem %d: full-depth cutoff search disagrees with alpha-beta", i)
		}

		problemRecords = append(problemRecords, metrics.ProblemRecord{
			Run:      run,
			Problem:  i,
			Vertices: dag.Vertices(),
			Depth:    dag.Depth(),
			Agree:    agree,
		})
	}

	for _, tally := range agreements {
		log.Info().Msgf("cutoff %d agreed with alpha-beta on %.0f%% of problems", tally.Cutoff, 100*tally.Rate())
	}

	writer, err := metrics.NewWriter(cfg.OutDir, cfg.Name)
	if err != nil {
		return agreements, summary, fmt.Errorf("failed to create experiment writer: %w", err)
	}
	summary.Dir = writer.Dir()
	if err := writer.WriteSearchRecords(searchRecords); err != nil {
		return agreements, summary, err
	}
	if err := writer.WriteProblemRecords(problemRecords); err != nil {
		return agreements, summary, err
	}
	log.Info().Msg("stored cutoff records")

	return agreements, summary, nil
}
