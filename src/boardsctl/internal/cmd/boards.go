package cmd

import (
	"context"

	"github.com/bitswalk/boardlist/src/boardsctl/internal/output"
	"github.com/spf13/cobra"
)

var boardsInput inputFlags

var boardsCmd = &cobra.Command{
	Use:   "boards",
	Short: "Show the board+port pairs of a snapshot",
	Long: `Flattens the boards list into board+port pairs. Ambiguous ports yield
one pair per candidate board.`,
	Args: cobra.NoArgs,
	RunE: runBoards,
}

func init() {
	boardsInput.register(boardsCmd)
}

func runBoards(cmd *cobra.Command, args []string) error {
	in, err := boardsInput.load()
	if err != nil {
		return err
	}

	view, err := fetchView(context.Background(), in)
	if err != nil {
		return err
	}

	return output.PrintFormatted(getOutputFormat(), view.Boards, func() error {
		rows := make([][]string, 0, len(view.Boards))
		for _, pair := range view.Boards {
			rows = append(rows, []string{
				pair.Port.Address,
				pair.Port.Protocol,
				pair.Board.Name,
				pair.Board.FQBN,
			})
		}
		output.PrintTable([]string{"PORT", "PROTOCOL", "BOARD", "FQBN"}, rows)
		return nil
	})
}
