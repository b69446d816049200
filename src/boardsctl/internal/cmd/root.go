package cmd

import (
	"os"

	"github.com/bitswalk/boardlist/src/boards/snapshot"
	"github.com/bitswalk/boardlist/src/boardsctl/internal/client"
	"github.com/bitswalk/boardlist/src/boardsctl/internal/output"
	"github.com/bitswalk/boardlist/src/common/cli"
	"github.com/bitswalk/boardlist/src/common/logs"
	"github.com/bitswalk/boardlist/src/common/version"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	keyServerURL     = "server.url"
	defaultServerURL = "http://localhost:8484"
)

var (
	// VersionInfo holds version information - set at build time via ldflags
	VersionInfo = version.New()

	// Configuration file path
	cfgFile string

	// Output format (auto, table, json or yaml)
	outputFormat string

	// API client instance, nil until a command talks to boardsd
	apiClient *client.Client

	log = logs.Discard()
)

// Linker variables - set via ldflags at build time
var (
	Version        = "dev"
	ReleaseName    = "Uno"
	ReleaseVersion = "0.0.0"
	BuildDate      = "unknown"
	GitCommit      = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "boardsctl",
	Short: "Boards list CLI",
	Long: `boardsctl derives the boards list of a discovery snapshot: which board
sits on which port, what the current selection matches, and what selecting
an item would do.

Lists are computed locally unless --server points at a boardsd instance.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip config init for version command without --server flag
		if cmd.Name() == "version" && !cmd.Flags().Changed("server") {
			return nil
		}
		return initConfig()
	},
}

// Execute runs the root command
func Execute() {
	VersionInfo = version.FromLinker(Version, ReleaseName, ReleaseVersion, BuildDate, GitCommit)

	if err := rootCmd.Execute(); err != nil {
		output.PrintError(err)
		os.Exit(1)
	}
}

func init() {
	cli.RegisterConfigFlag(rootCmd, &cfgFile, "~/.config/boardlist/boardsctl.yaml")

	rootCmd.PersistentFlags().StringP("server", "s", "", "boardsd URL; lists are computed locally when empty")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", output.FormatAuto, "Output format: auto, table, json, yaml")

	cli.RegisterPersistentLogFlags(rootCmd)

	_ = viper.BindPFlag(keyServerURL, rootCmd.PersistentFlags().Lookup("server"))

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(boardsCmd)
	rootCmd.AddCommand(portsCmd)
	rootCmd.AddCommand(debugCmd)

	registerCompletions()
}

func registerCompletions() {
	_ = rootCmd.RegisterFlagCompletionFunc("output", completionOutputFormat)

	for _, c := range []*cobra.Command{listCmd, boardsCmd, portsCmd, debugCmd} {
		_ = c.RegisterFlagCompletionFunc("port", completionPortKeys)
		_ = c.RegisterFlagCompletionFunc("protocol", completionProtocols)
	}
}

func initConfig() error {
	opts := cli.DefaultConfigOptions("boardsctl", "BOARDSCTL")
	opts.ConfigFile = cfgFile

	if err := cli.InitConfig(opts); err != nil {
		return err
	}

	// stdout carries the command output
	log = cli.InitLogger("boardsctl", logs.OutputStderr)
	snapshot.SetLogger(log)

	return nil
}

// getClient returns the API client, creating it if needed.
func getClient() *client.Client {
	if apiClient == nil {
		serverURL := viper.GetString(keyServerURL)
		if serverURL == "" {
			serverURL = defaultServerURL
		}
		apiClient = client.New(serverURL)
		log.Debug("Using boardsd", "url", serverURL)
	}
	return apiClient
}

// isRemote reports whether list commands are delegated to boardsd
func isRemote() bool {
	return apiClient != nil || viper.GetString(keyServerURL) != ""
}

// getOutputFormat returns the current output format
func getOutputFormat() string {
	return outputFormat
}
