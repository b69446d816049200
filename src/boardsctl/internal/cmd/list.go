package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/bitswalk/boardlist/src/boards"
	"github.com/bitswalk/boardlist/src/boardsctl/internal/output"
	"github.com/spf13/cobra"
)

var listInput inputFlags

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "Show the boards list of a snapshot",
	Long: `Builds the boards list of a discovery snapshot: one item per detected
port, sorted for display, with the item matching the current selection
marked and the action selecting each item would trigger.`,
	Example: `  boardsctl list --snapshot snapshot.yaml
  boardsctl list --snapshot snapshot.yaml --history history.json --board-fqbn arduino:avr:uno --port port+serial://COM1
  boardsctl list --snapshot snapshot.yaml -o json`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	listInput.register(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	in, err := listInput.load()
	if err != nil {
		return err
	}

	view, err := fetchView(context.Background(), in)
	if err != nil {
		return err
	}

	return output.PrintFormatted(getOutputFormat(), view, func() error {
		printListTable(view)
		return nil
	})
}

func printListTable(view *boards.ListView) {
	rows := make([][]string, 0, len(view.Items))
	for i, item := range view.Items {
		selected := ""
		if i == view.SelectedIndex {
			selected = "*"
		}
		rows = append(rows, []string{
			strconv.Itoa(i),
			selected,
			item.Labels.PortLabel,
			item.Labels.PortProtocol,
			item.Labels.BoardLabelWithFQBN,
			item.Kind,
			string(item.DefaultAction.Type),
		})
	}
	output.PrintTable([]string{"#", "SELECTED", "PORT", "PROTOCOL", "BOARD", "KIND", "ACTION"}, rows)

	fmt.Println()
	selection := view.Labels.BoardLabel
	if view.Labels.PortProtocol != "" {
		selection += " [" + view.Labels.PortProtocol + "]"
	}
	if !view.Labels.Selected {
		selection += " (no matching item)"
	}
	fmt.Printf("Selection: %s\n", selection)
}
