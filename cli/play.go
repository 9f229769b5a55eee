package cli

import (
	"fmt"

	"jump61/engine"
	"jump61/experiments"
	"jump61/experiments/metrics"
	"jump61/searcher/agent"

	"github.com/spf13/cobra"
)

func newPlayCmd() *cobra.Command {
	var (
		red, blue string
		seed      uint64
		maxTurns  int
		eval      string
	)

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play one game between two automated players",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			redAgent, err := experiments.NewAgent(metrics.AgentConfig{Kind: red, Depth: cfg.Depth, Eval: eval, Seed: seed}, 0)
			if err != nil {
				return err
			}
			blueAgent, err := experiments.NewAgent(metrics.AgentConfig{Kind: blue, Depth: cfg.Depth, Eval: eval, Seed: seed}, 1)
			if err != nil {
				return err
			}

			e := engine.LocalEngine(cfg.Size, [2]agent.Agent{redAgent, blueAgent}, engine.WithMaxTurns(maxTurns))
			winner, gameMetric, _ := e.Run()

			out := cmd.OutOrStdout()
			for _, u := range e.Updates() {
				fmt.Fprintf(out, "%d. %s %d %d\n", u.Step, u.Side, u.Row, u.Col)
			}
			fmt.Fprintln(out, e.Board().DisplayString())
			fmt.Fprintf(out, "winner: %s after %d moves (%s)\n", winner, gameMetric.TotalMoves, gameMetric.Duration)
			return nil
		},
	}

	cmd.Flags().StringVar(&red, "red", "search", "Red player: search, random")
	cmd.Flags().StringVar(&blue, "blue", "search", "Blue player: search, random")
	cmd.Flags().Uint64Var(&seed, "seed", 1, "Seed for random players")
	cmd.Flags().IntVar(&maxTurns, "max-turns", 0, "Stop after this many moves (0: default cap)")
	cmd.Flags().StringVar(&eval, "eval", "cells", "Search evaluation: cells, charge")

	return cmd
}
