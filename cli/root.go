package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var cfg *Config

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg = DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "jump61",
		Short: "Jump61 board engine and minimax search",
		Long: `jump61 plays the territory capture game Jump61 on an N x N board.

Players add spots to squares they own or to neutral squares. An overfull
square jumps one spot to each neighbour and captures it, which may cascade.
The game is won by owning every square.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := zerolog.ParseLevel(cfg.LogLevel)
			if err != nil {
				return fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
			}
			zerolog.SetGlobalLevel(level)
			log.Logger = log.Output(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr()})

			if cfg.Size < 1 {
				return fmt.Errorf("board size must be positive, got %d", cfg.Size)
			}
			return nil
		},
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().IntVarP(&cfg.Size, "size", "n", cfg.Size, "Board size (env: JUMP61_SIZE)")
	rootCmd.PersistentFlags().IntVarP(&cfg.Depth, "depth", "d", cfg.Depth, "Search depth in plies (env: JUMP61_DEPTH)")
	rootCmd.PersistentFlags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: trace, debug, info, warn, error (env: JUMP61_LOG_LEVEL)")

	// Add subcommands
	rootCmd.AddCommand(newPlayCmd())
	rootCmd.AddCommand(newDumpCmd())
	rootCmd.AddCommand(newExperimentCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
