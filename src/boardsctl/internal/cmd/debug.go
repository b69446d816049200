package cmd

import (
	"github.com/bitswalk/boardlist/src/boardsctl/internal/output"
	"github.com/spf13/cobra"
)

var debugInput inputFlags

var debugCmd = &cobra.Command{
	Use:   "debug",
	Short: "Dump the boards list and its inputs",
	Long: `Prints the debug dump of the boards list: labels, detected ports,
selection, items, selected index and history. Always computed locally.`,
	Args: cobra.NoArgs,
	RunE: runDebug,
}

func init() {
	debugInput.register(debugCmd)
}

func runDebug(cmd *cobra.Command, args []string) error {
	in, err := debugInput.load()
	if err != nil {
		return err
	}

	list, err := buildList(in)
	if err != nil {
		return err
	}

	output.PrintMessage(list.String())
	return nil
}
