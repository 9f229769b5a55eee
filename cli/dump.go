package cli

import (
	"fmt"
	"strconv"

	"jump61/game"

	"github.com/spf13/cobra"
)

func newDumpCmd() *cobra.Command {
	var display bool

	cmd := &cobra.Command{
		Use:   "dump [<row> <col>]...",
		Short: "Play moves for the side to move and print the board",
		Long: `dump starts from an empty board and plays each <row> <col> pair for the
side to move, then prints the board in dump format.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args)%2 != 0 {
				return fmt.Errorf("moves need a row and a column, got %d arguments", len(args))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			b := game.NewBoard(cfg.Size)
			for i := 0; i < len(args); i += 2 {
				r, err := strconv.Atoi(args[i])
				if err != nil {
					return fmt.Errorf("invalid row %q: %w", args[i], err)
				}
				c, err := strconv.Atoi(args[i+1])
				if err != nil {
					return fmt.Errorf("invalid column %q: %w", args[i+1], err)
				}
				if b.Winner() != game.Neutral {
					return fmt.Errorf("game over: %s wins", b.Winner())
				}
				side := b.WhoseMove()
				if !b.IsLegalAt(side, r, c) {
					return fmt.Errorf("illegal move for %s: %d %d", side, r, c)
				}
				if err := b.AddMoveAt(side, r, c); err != nil {
					return err
				}
			}

			out := cmd.OutOrStdout()
			if display {
				fmt.Fprintln(out, b.DisplayString())
			} else {
				fmt.Fprintln(out, b.String())
			}
			if winner := b.Winner(); winner != game.Neutral {
				fmt.Fprintf(out, "%s wins.\n", winner)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&display, "display", false, "Print with row and column numbers")

	return cmd
}
