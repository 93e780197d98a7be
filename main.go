package main

import (
	"fmt"
	"os"

	"adsearch/engine"
	"adsearch/experiments"
	"adsearch/game"
	"adsearch/searcher"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	logLevel string
	jsonLogs bool

	dagPath   string
	algorithm string
	cutoff    int

	experimentCfg = experiments.DefaultConfig()
	sweep         bool
	promTextfile  string
)

var (
	rootCmd = &cobra.Command{
		Use:               "adsearch",
		Short:             "Adversarial search over game DAGs",
		SilenceUsage:      true,
		PersistentPreRunE: setupLogging,
	}
	solveCmd = &cobra.Command{
		Use:   "solve",
		Short: "Choose an action at the start state of a game DAG",
		Args:  cobra.NoArgs,
		RunE:  runSolve,
	}
	playCmd = &cobra.Command{
		Use:   "play",
		Short: "Play a game DAG to the end with one searcher per player",
		Args:  cobra.NoArgs,
		RunE:  runPlay,
	}
	experimentCmd = &cobra.Command{
		Use:   "experiment",
		Short: "Compare the search algorithms on generated game DAGs",
		Args:  cobra.NoArgs,
		RunE:  runExperiment,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&jsonLogs, "json-logs", false, "log JSON instead of console output")

	for _, cmd := range []*cobra.Command{solveCmd, playCmd} {
		cmd.Flags().StringVar(&dagPath, "dag", "", "YAML game DAG (default: built-in example)")
		cmd.Flags().StringVar(&algorithm, "algorithm", string(searcher.AlphaBetaAlgorithm), "minimax, alphabeta, alphabeta-cutoff or general-minimax")
		cmd.Flags().IntVar(&cutoff, "cutoff", 0, "cutoff ply for alphabeta-cutoff")
	}

	flags := experimentCmd.Flags()
	flags.StringVar(&experimentCfg.Name, "name", experimentCfg.Name, "experiment name")
	flags.StringVar(&experimentCfg.OutDir, "out", experimentCfg.OutDir, "directory for experiment records")
	flags.IntVar(&experimentCfg.Problems, "problems", experimentCfg.Problems, "number of generated problems")
	flags.Uint64Var(&experimentCfg.Seed, "seed", experimentCfg.Seed, "random seed")
	flags.IntVar(&experimentCfg.Depth, "depth", experimentCfg.Depth, "plies per generated problem")
	flags.IntVar(&experimentCfg.Branching, "branching", experimentCfg.Branching, "maximum children per vertex")
	flags.Float64Var(&experimentCfg.Sharing, "sharing", experimentCfg.Sharing, "probability of reusing a vertex")
	flags.Float64Var(&experimentCfg.EarlyTerminal, "early-terminal", experimentCfg.EarlyTerminal, "probability of an early terminal vertex")
	flags.BoolVar(&sweep, "sweep", false, "sweep alphabeta-cutoff over every cutoff ply instead of comparing algorithms")
	flags.StringVar(&promTextfile, "prom-textfile", "", "write Prometheus search metrics to this file")

	rootCmd.AddCommand(solveCmd, playCmd, experimentCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func setupLogging(cmd *cobra.Command, args []string) error {
	level, err := zerolog.ParseLevel(logLevel)
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	zerolog.SetGlobalLevel(level)
	if !jsonLogs {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
	return nil
}

// loadProblem reads the --dag file, or returns the built-in example.
func loadProblem() (*game.GameDAG, game.Heuristic[game.DAGState], error) {
	if dagPath == "" {
		return game.ExampleDAG(), game.ExampleHeuristic(), nil
	}
	cfg, err := game.LoadDAGConfig(dagPath)
	if err != nil {
		return nil, nil, err
	}
	dag, err := cfg.Build()
	if err != nil {
		return nil, nil, err
	}
	return dag, cfg.Heuristic(), nil
}

func newSearcher() (*searcher.Searcher, error) {
	a, err := searcher.ParseAlgorithm(algorithm)
	if err != nil {
		return nil, err
	}
	return searcher.NewSearcher(a, searcher.WithCutoff(cutoff)), nil
}

func runSolve(cmd *cobra.Command, args []string) error {
	dag, heuristic, err := loadProblem()
	if err != nil {
		return err
	}
	s, err := newSearcher()
	if err != nil {
		return err
	}

	result, metric := searcher.FindNextMove(s, dag, heuristic)
	fmt.Fprintf(cmd.OutOrStdout(), "%s (visits=%d prunes=%d cutoffs=%d)\n", result, metric.Visits, metric.Prunes, metric.Cutoffs)
	return nil
}

func runPlay(cmd *cobra.Command, args []string) error {
	dag, heuristic, err := loadProblem()
	if err != nil {
		return err
	}
	s, err := newSearcher()
	if err != nil {
		return err
	}

	agents := make([]engine.Agent[game.DAGState, int], dag.Players())
	for i := range agents {
		agents[i] = engine.SearchAgent[game.DAGState, int]{Searcher: s, Evaluate: heuristic}
	}
	evaluation, gameMetric, _ := engine.NewLocalEngine(dag, agents).Run()
	if evaluation == nil {
		return fmt.Errorf("game did not finish after %d moves", gameMetric.TotalMoves)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "final evaluation %v after %d moves\n", evaluation, gameMetric.TotalMoves)
	return nil
}

func runExperiment(cmd *cobra.Command, args []string) error {
	var reg *prometheus.Registry
	if promTextfile != "" {
		reg = prometheus.NewRegistry()
		experimentCfg.Registerer = reg
	}

	var summary experiments.Summary
	var err error
	if sweep {
		var agreements []experiments.CutoffAgreement
		agreements, summary, err = experiments.RunCutoffExperiment(experimentCfg, nil)
		for _, tally := range agreements {
			fmt.Fprintf(cmd.OutOrStdout(), "cutoff %d: %d/%d agree, %d visits\n", tally.Cutoff, tally.Agreements, tally.Problems, tally.Visits)
		}
	} else {
		summary, err = experiments.RunComparison(experimentCfg)
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "run %s: %d problems, %d disagreements, %d prune violations, records in %s\n",
		summary.Run, summary.Problems, summary.Disagreements, summary.PruneViolations, summary.Dir)

	if reg != nil {
		if err := prometheus.WriteToTextfile(promTextfile, reg); err != nil {
			return fmt.Errorf("failed to write prometheus metrics: %w", err)
		}
	}
	return nil
}
