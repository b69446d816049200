package cmd

import (
	"context"
	"fmt"

	"github.com/bitswalk/boardlist/src/boardsctl/internal/client"
	"github.com/bitswalk/boardlist/src/boardsctl/internal/output"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Long:  `Shows the boardsctl version and optionally the boardsd version.`,
	Args:  cobra.NoArgs,
	RunE:  runVersion,
}

func init() {
	versionCmd.Flags().Bool("server", false, "Also show server version")
}

func runVersion(cmd *cobra.Command, args []string) error {
	showServer, _ := cmd.Flags().GetBool("server")

	format, err := output.ResolveFormat(getOutputFormat())
	if err != nil {
		return err
	}

	var serverInfo *client.VersionResponse
	var serverErr error
	if showServer {
		serverInfo, serverErr = getClient().Version(context.Background())
	}

	if format == output.FormatJSON || format == output.FormatYAML {
		result := map[string]interface{}{
			"client": VersionInfo.Map(),
		}
		if showServer {
			if serverErr != nil {
				result["server_error"] = serverErr.Error()
			} else {
				result["server"] = serverInfo
			}
		}
		if format == output.FormatJSON {
			return output.PrintJSON(result)
		}
		return output.PrintYAML(result)
	}

	fmt.Printf("Client: %s\n", VersionInfo.Full())

	if showServer {
		if serverErr != nil {
			fmt.Printf("\nServer: error: %v\n", serverErr)
		} else {
			fmt.Printf("\nServer: %s\n", serverInfo.Version)
			fmt.Printf("  Release:    %s\n", serverInfo.ReleaseName)
			fmt.Printf("  Version:    %s\n", serverInfo.ReleaseVersion)
			fmt.Printf("  Build Date: %s\n", serverInfo.BuildDate)
			fmt.Printf("  Git Commit: %s\n", serverInfo.GitCommit)
			fmt.Printf("  Go Version: %s\n", serverInfo.GoVersion)
		}
	}

	return nil
}
