// Package core provides the root command and the HTTP server of boardsd.
package core

import (
	"fmt"
	"os"

	"github.com/bitswalk/boardlist/src/boardsd/api"
	"github.com/bitswalk/boardlist/src/common/cli"
	"github.com/bitswalk/boardlist/src/common/logs"
	"github.com/bitswalk/boardlist/src/common/version"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Viper keys of the server
const (
	keyServerPort      = "server.port"
	keyServerBind      = "server.bind"
	keyTLSEnabled      = "server.tls.enabled"
	keyTLSCertPath     = "server.tls.cert_path"
	keyTLSKeyPath      = "server.tls.key_path"
	keyCORSOrigins     = "server.cors.allowed_origins"
	keyRateLimitOn     = "security.rate_limit.enabled"
	keyRateLimitPerMin = "security.rate_limit.requests_per_min"
	keyTrustProxy      = "security.rate_limit.trust_proxy"

	defaultPort = 8484
)

var (
	// VersionInfo holds version information - set at build time via ldflags
	VersionInfo = version.New()

	// Global logger instance
	log = logs.Discard()

	// Configuration file path
	cfgFile string
)

// Linker variables - set via ldflags at build time
var (
	Version        = "dev"
	ReleaseName    = "Uno"
	ReleaseVersion = "0.0.0"
	BuildDate      = "unknown"
	GitCommit      = "unknown"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "boardsd",
	Short: "Boards list server",
	Long: `boardsd computes boards lists for posted discovery snapshots.

It listens on port 8484 by default. The API is versioned and discoverable
through the root endpoint.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initConfig()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServer()
	},
}

// Execute runs the root command
func Execute() {
	VersionInfo = version.FromLinker(Version, ReleaseName, ReleaseVersion, BuildDate, GitCommit)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cli.RegisterConfigFlag(rootCmd, &cfgFile, "/etc/boardlist/boardsd.yaml")

	// Server flags
	rootCmd.Flags().IntP("port", "p", defaultPort, "Port to listen on")
	rootCmd.Flags().StringP("bind", "b", "0.0.0.0", "Address to bind to")

	// TLS flags
	rootCmd.Flags().Bool("tls-enabled", false, "Enable native HTTPS/TLS support")
	rootCmd.Flags().String("tls-cert", "", "Path to TLS certificate file (PEM)")
	rootCmd.Flags().String("tls-key", "", "Path to TLS private key file (PEM)")

	cli.RegisterLogFlags(rootCmd)

	_ = cli.BindFlag(rootCmd, "port", keyServerPort)
	_ = cli.BindFlag(rootCmd, "bind", keyServerBind)
	_ = cli.BindFlag(rootCmd, "tls-enabled", keyTLSEnabled)
	_ = cli.BindFlag(rootCmd, "tls-cert", keyTLSCertPath)
	_ = cli.BindFlag(rootCmd, "tls-key", keyTLSKeyPath)

	setServerDefaults()
}

// setServerDefaults registers the defaults of the server keys
func setServerDefaults() {
	viper.SetDefault(keyServerPort, defaultPort)
	viper.SetDefault(keyServerBind, "0.0.0.0")
	viper.SetDefault(keyTLSEnabled, false)
	viper.SetDefault(keyTLSCertPath, "")
	viper.SetDefault(keyTLSKeyPath, "")
	viper.SetDefault(keyCORSOrigins, []string{})

	rateLimit := api.DefaultRateLimitConfig()
	viper.SetDefault(keyRateLimitOn, rateLimit.Enabled)
	viper.SetDefault(keyRateLimitPerMin, rateLimit.RequestsPerMin)
	viper.SetDefault(keyTrustProxy, rateLimit.TrustProxy)
}

// initConfig reads in config file and ENV variables if set
func initConfig() error {
	opts := cli.DefaultConfigOptions("boardsd", "BOARDSD")
	opts.ConfigFile = cfgFile

	if err := cli.InitConfig(opts); err != nil {
		return err
	}

	log = cli.InitLogger("boardsd", logs.OutputStdout)
	return nil
}
