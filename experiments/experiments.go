package experiments

import (
	"errors"
	"fmt"
	"jump61/engine"
	"jump61/experiments/metrics"
	"jump61/game"
	"jump61/meta"
	"jump61/searcher"
	"jump61/searcher/agent"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
)

var (
	ErrUnknownKind       = errors.New("unknown agent kind")
	ErrUnknownEvaluation = errors.New("unknown evaluation")
	ErrUnknownExperiment = errors.New("unknown experiment")
)

var evaluations = map[string]game.Evaluate{
	"":       game.EvaluateCells,
	"cells":  game.EvaluateCells,
	"charge": game.EvaluateCharge,
}

var depthConfigs = []metrics.AgentConfig{
	{ID: 1, Kind: "search", Depth: 1, Eval: "cells"},
	{ID: 2, Kind: "search", Depth: 2, Eval: "cells"},
	{ID: 3, Kind: "search", Depth: 3, Eval: "cells"},
	{ID: 4, Kind: "search", Depth: 4, Eval: "cells"},
}

// Experiment plays match-ups on size x size boards, games per match-up, and
// stores the records under outDir. Search agents play at most depth plies;
// a non-positive depth leaves the experiment's own depths. It returns the
// directory written to.
type Experiment func(outDir string, size, games, depth int) (string, error)

var registry = map[string]Experiment{
	"depth":      RunDepthExperiment,
	"evaluation": RunEvaluationExperiment,
	"random":     RunRandomBaselineExperiment,
}

// Lookup returns the experiment registered under name.
func Lookup(name string) (Experiment, error) {
	if experiment, ok := registry[name]; ok {
		return experiment, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownExperiment, name)
}

// depthsUpTo returns the depth configs searching at most depth plies.
func depthsUpTo(depth int) []metrics.AgentConfig {
	if depth < 1 {
		return depthConfigs
	}
	return lo.Filter(depthConfigs, func(config metrics.AgentConfig, _ int) bool {
		return config.Depth <= depth
	})
}

// RunDepthExperiment pairs a depth 1 baseline against every search depth.
func RunDepthExperiment(outDir string, size, games, depth int) (string, error) {
	configs := depthsUpTo(depth)
	baseline := configs[0]
	matchUps := [][2]metrics.AgentConfig{}
	for _, config := range configs {
		matchUps = append(matchUps, [2]metrics.AgentConfig{baseline, config}, [2]metrics.AgentConfig{config, baseline})
	}
	return Run("depth", size, games, configs, matchUps, outDir)
}

// RunEvaluationExperiment pairs the cell count evaluation against the
// charge count evaluation at the same depth.
func RunEvaluationExperiment(outDir string, size, games, depth int) (string, error) {
	if depth < 1 {
		depth = meta.SEARCH_DEPTH - 2
	}
	cells := metrics.AgentConfig{ID: 1, Kind: "search", Depth: depth, Eval: "cells"}
	charge := metrics.AgentConfig{ID: 2, Kind: "search", Depth: depth, Eval: "charge"}
	matchUps := [][2]metrics.AgentConfig{{cells, charge}, {charge, cells}}
	return Run("evaluation", size, games, []metrics.AgentConfig{cells, charge}, matchUps, outDir)
}

// RunRandomBaselineExperiment pairs every search depth against a random agent.
func RunRandomBaselineExperiment(outDir string, size, games, depth int) (string, error) {
	configs := depthsUpTo(depth)
	random := metrics.AgentConfig{ID: 0, Kind: "random", Seed: 1}
	matchUps := [][2]metrics.AgentConfig{}
	for _, config := range configs {
		matchUps = append(matchUps, [2]metrics.AgentConfig{config, random}, [2]metrics.AgentConfig{random, config})
	}
	return Run("random", size, games, append([]metrics.AgentConfig{random}, configs...), matchUps, outDir)
}

// Run plays every match-up games times. The first agent of a match-up
// plays red. Agent configs, game records and move records are written as
// CSV under outDir/name/<timestamp>.
func Run(name string, size, games int, configs []metrics.AgentConfig, matchUps [][2]metrics.AgentConfig, outDir string) (string, error) {
	// Run a number of games for each matchup
	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s experiment...", name)

	for mi, matchup := range matchUps {
		config1 := matchup[0]
		config2 := matchup[1]

		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(matchUps), config1, config2)

		for i := 0; i < games; i++ {
			winner, gameMetric, moveMetrics, err := runGame(size, config1, config2, uint64(i))
			if err != nil {
				return "", err
			}
			count++
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				Agent1:     config1.ID,
				Agent2:     config2.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}

			log.Debug().Msgf("completed matchup %d of %d game %d with winner: %s", mi+1, len(matchUps), i+1, winner)
		}
		log.Info().Msgf("completed matchup %d of %d", mi+1, len(matchUps))
	}

	log.Info().Msgf("completed %s experiment", name)

	writer, err := metrics.NewWriter(outDir, name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WriteAgentConfigs(configs); err != nil {
		return "", fmt.Errorf("failed to store agent configs: %w", err)
	}
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return "", fmt.Errorf("failed to write game records: %w", err)
	}
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return "", fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Str("dir", writer.Dir()).Msg("stored experiment records")

	return writer.Dir(), nil
}

// runGame executes a single game between two agents and returns the winner.
// Random agents are reseeded per game so repeated games differ.
func runGame(size int, config1, config2 metrics.AgentConfig, round uint64) (string, metrics.GameMetric, []metrics.MoveMetric, error) {
	agent1, err := NewAgent(config1, round)
	if err != nil {
		return "", metrics.GameMetric{}, nil, err
	}
	agent2, err := NewAgent(config2, round)
	if err != nil {
		return "", metrics.GameMetric{}, nil, err
	}
	var e engine.Engine = engine.LocalEngine(size, [2]agent.Agent{agent1, agent2})

	winner, gameMetric, moveMetrics := e.Run()
	return winner, gameMetric, moveMetrics, nil
}

// NewAgent builds the agent described by config. offset is added to the
// seed of random agents.
func NewAgent(config metrics.AgentConfig, offset uint64) (agent.Agent, error) {
	switch config.Kind {
	case "search":
		evaluate, ok := evaluations[config.Eval]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownEvaluation, config.Eval)
		}
		return agent.NewSearchAgent(searcher.NewMinimax(
			searcher.WithDepth(config.Depth),
			searcher.WithEvaluationFn(evaluate),
			searcher.WithMetrics(),
		)), nil
	case "random":
		return agent.NewRandomAgent(config.Seed + offset), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownKind, config.Kind)
}
