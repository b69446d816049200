package cmd

import (
	"slices"

	"github.com/bitswalk/boardlist/src/boards"
	"github.com/bitswalk/boardlist/src/boards/snapshot"
	"github.com/bitswalk/boardlist/src/boardsctl/internal/output"
	"github.com/spf13/cobra"
)

// completionOutputFormat provides completion for --output flag
func completionOutputFormat(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return output.Formats, cobra.ShellCompDirectiveNoFileComp
}

// snapshotPorts loads the ports of the --snapshot file given so far on the
// command line
func snapshotPorts(cmd *cobra.Command) []boards.DetectedPort {
	path, _ := cmd.Flags().GetString("snapshot")
	if path == "" {
		return nil
	}
	detected, err := snapshot.LoadSnapshot(path)
	if err != nil {
		return nil
	}
	return detected.Values()
}

// completionPortKeys completes --port with the port keys of the snapshot
func completionPortKeys(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	ports := snapshotPorts(cmd)
	suggestions := make([]string, 0, len(ports))
	for _, port := range ports {
		suggestions = append(suggestions, boards.CreatePortKey(port)+"\t"+port.Port.ProtocolLabel)
	}
	return suggestions, cobra.ShellCompDirectiveNoFileComp
}

// completionProtocols completes protocol flags with the configured protocols
// and those of the snapshot
func completionProtocols(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	var protocols []string
	for protocol := range boards.DefaultOptions().ProtocolPriorities {
		protocols = append(protocols, protocol)
	}
	for _, port := range snapshotPorts(cmd) {
		protocols = append(protocols, port.Port.Protocol)
	}
	slices.Sort(protocols)
	return slices.Compact(protocols), cobra.ShellCompDirectiveNoFileComp
}
