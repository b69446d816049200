package cmd

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/bitswalk/boardlist/src/boards"
	"github.com/bitswalk/boardlist/src/boardsctl/internal/output"
	"github.com/spf13/cobra"
)

var (
	portsInput inputFlags
	portsOnly  string
	grouped    bool
)

var portsCmd = &cobra.Command{
	Use:   "ports",
	Short: "Show the detected ports of a snapshot",
	Long: `Lists the detected ports in boards list order. The port matching the
selected port is marked. --only keeps a single protocol, --grouped
partitions the ports by protocol, each group with its own match.`,
	Args: cobra.NoArgs,
	RunE: runPorts,
}

func init() {
	portsInput.register(portsCmd)
	portsCmd.Flags().StringVar(&portsOnly, "only", "", "Only show ports of this protocol")
	portsCmd.Flags().BoolVar(&grouped, "grouped", false, "Group the ports by protocol")
	portsCmd.MarkFlagsMutuallyExclusive("only", "grouped")
	_ = portsCmd.RegisterFlagCompletionFunc("only", completionProtocols)
}

func runPorts(cmd *cobra.Command, args []string) error {
	in, err := portsInput.load()
	if err != nil {
		return err
	}
	ctx := context.Background()

	if grouped {
		var groups map[string]boards.PortList
		if isRemote() {
			if groups, err = getClient().PortsGrouped(ctx, in); err != nil {
				return err
			}
		} else {
			list, err := buildList(in)
			if err != nil {
				return err
			}
			groups = list.PortsGroupedByProtocol()
		}
		return output.PrintFormatted(getOutputFormat(), groups, func() error {
			for i, protocol := range slices.Sorted(maps.Keys(groups)) {
				if i > 0 {
					fmt.Println()
				}
				fmt.Printf("%s:\n", protocol)
				printPortsTable(groups[protocol])
			}
			return nil
		})
	}

	var ports *boards.PortList
	if isRemote() {
		if ports, err = getClient().Ports(ctx, in, portsOnly); err != nil {
			return err
		}
	} else {
		list, err := buildList(in)
		if err != nil {
			return err
		}
		var predicate func(boards.DetectedPort) bool
		if portsOnly != "" {
			predicate = boards.ProtocolPredicate(portsOnly)
		}
		projected := list.Ports(predicate)
		ports = &projected
	}
	return output.PrintFormatted(getOutputFormat(), ports, func() error {
		printPortsTable(*ports)
		return nil
	})
}

func printPortsTable(ports boards.PortList) {
	rows := make([][]string, 0, len(ports.Ports))
	for i, port := range ports.Ports {
		match := ""
		if i == ports.MatchingIndex {
			match = "*"
		}
		names := make([]string, 0, len(port.Boards))
		for _, board := range port.Boards {
			names = append(names, board.Name)
		}
		rows = append(rows, []string{
			match,
			port.Port.Address,
			port.Port.Protocol,
			port.Port.ProtocolLabel,
			strings.Join(names, ", "),
		})
	}
	output.PrintTable([]string{"MATCH", "PORT", "PROTOCOL", "LABEL", "BOARDS"}, rows)
}
