package cli

import (
	"fmt"

	"jump61/experiments"
	"jump61/meta"

	"github.com/spf13/cobra"
)

func newExperimentCmd() *cobra.Command {
	var (
		games  int
		outDir string
	)

	cmd := &cobra.Command{
		Use:   "experiment <depth|evaluation|random>",
		Short: "Run a batch of games between agent configurations",
		Long: `experiment plays every match-up of the named experiment and writes
the records as CSV. --depth caps the search depth of the experiment's
search agents; the evaluation experiment plays both agents at that depth.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			experiment, err := experiments.Lookup(args[0])
			if err != nil {
				return err
			}
			dir, err := experiment(outDir, cfg.Size, games, cfg.Depth)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "records written to %s\n", dir)
			return nil
		},
	}

	cmd.Flags().IntVar(&games, "games", meta.NUM_GAMES, "Games per match-up")
	cmd.Flags().StringVarP(&outDir, "out", "o", "experiments", "Output directory")

	return cmd
}
