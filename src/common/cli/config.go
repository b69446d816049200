// Package cli provides the Cobra and Viper plumbing shared by boardsctl and boardsd.
package cli

import (
	"fmt"
	"strings"

	"github.com/bitswalk/boardlist/src/boards"
	"github.com/bitswalk/boardlist/src/common/logs"
	"github.com/bitswalk/boardlist/src/common/paths"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Viper keys of the boards list options
const (
	KeyVendor             = "boards.vendor"
	KeyProtocols          = "boards.protocols"
	KeyLabelUnconfirmed   = "boards.labels.unconfirmed"
	KeyLabelSelectBoard   = "boards.labels.select_board"
	KeyLabelNotConnected  = "boards.labels.not_connected"
	KeyLabelUnknown       = "boards.labels.unknown"
	KeyLogOutput          = "log.output"
	KeyLogLevel           = "log.level"
	defaultConfigFileType = "yaml"
)

// ConfigOptions holds options for configuration initialization
type ConfigOptions struct {
	// ConfigFile is the path to the config file (if specified via flag)
	ConfigFile string

	// ConfigName is the name of the config file (without extension)
	ConfigName string

	// ConfigType is the type of config file (yaml, json, toml)
	ConfigType string

	// EnvPrefix is the prefix for environment variables (e.g., "BOARDSD" -> BOARDSD_SERVER_PORT)
	EnvPrefix string

	// SearchPaths are additional paths to search for the config file
	SearchPaths []string
}

// DefaultConfigOptions returns default configuration options
func DefaultConfigOptions(configName, envPrefix string) ConfigOptions {
	return ConfigOptions{
		ConfigName: configName,
		ConfigType: defaultConfigFileType,
		EnvPrefix:  envPrefix,
		SearchPaths: []string{
			"/etc/boardlist",
			"$HOME/.config/boardlist",
			".",
		},
	}
}

// InitConfig initializes Viper: config file lookup, environment variables
// and the defaults of the boards list options.
func InitConfig(opts ConfigOptions) error {
	if opts.ConfigFile != "" {
		viper.SetConfigFile(paths.Expand(opts.ConfigFile))
	} else {
		viper.SetConfigName(opts.ConfigName)
		viper.SetConfigType(opts.ConfigType)

		for _, searchPath := range opts.SearchPaths {
			viper.AddConfigPath(paths.Expand(searchPath))
		}
	}

	if opts.EnvPrefix != "" {
		viper.SetEnvPrefix(opts.EnvPrefix)
		viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		viper.AutomaticEnv()
	}

	SetBoardsDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("error reading config file: %w", err)
		}
		// No config file, defaults and environment apply
	}

	return nil
}

// SetBoardsDefaults registers the default boards list options in Viper.
func SetBoardsDefaults() {
	defaults := boards.DefaultOptions()
	viper.SetDefault(KeyVendor, defaults.FirstPartyVendor)
	protocols := make(map[string]interface{}, len(defaults.ProtocolPriorities))
	for protocol, priority := range defaults.ProtocolPriorities {
		protocols[protocol] = priority
	}
	viper.SetDefault(KeyProtocols, protocols)
	viper.SetDefault(KeyLabelUnconfirmed, defaults.Labels.UnconfirmedBoard)
	viper.SetDefault(KeyLabelSelectBoard, defaults.Labels.SelectBoard)
	viper.SetDefault(KeyLabelNotConnected, defaults.Labels.NotConnected)
	viper.SetDefault(KeyLabelUnknown, defaults.Labels.Unknown)
}

// BoardsOptions reads the boards list options from Viper. Keys that are not
// set fall back to boards.DefaultOptions.
func BoardsOptions() boards.Options {
	opts := boards.DefaultOptions()

	if viper.IsSet(KeyVendor) {
		opts.FirstPartyVendor = viper.GetString(KeyVendor)
	}
	if protocols := viper.GetStringMap(KeyProtocols); len(protocols) > 0 {
		opts.ProtocolPriorities = make(map[string]int, len(protocols))
		for protocol := range protocols {
			opts.ProtocolPriorities[protocol] = viper.GetInt(KeyProtocols + "." + protocol)
		}
	}

	labels := []struct {
		key string
		dst *string
	}{
		{KeyLabelUnconfirmed, &opts.Labels.UnconfirmedBoard},
		{KeyLabelSelectBoard, &opts.Labels.SelectBoard},
		{KeyLabelNotConnected, &opts.Labels.NotConnected},
		{KeyLabelUnknown, &opts.Labels.Unknown},
	}
	for _, label := range labels {
		if value := viper.GetString(label.key); value != "" {
			*label.dst = value
		}
	}
	return opts
}

// RegisterLogFlags registers common logging flags on a Cobra command
func RegisterLogFlags(cmd *cobra.Command) {
	registerLogFlags(cmd.Flags())
}

// RegisterPersistentLogFlags registers the logging flags for a command and all its subcommands
func RegisterPersistentLogFlags(cmd *cobra.Command) {
	registerLogFlags(cmd.PersistentFlags())
}

func registerLogFlags(flags *pflag.FlagSet) {
	flags.String("log-output", "auto", "Log output destination (auto, stdout, stderr, journald)")
	flags.String("log-level", "info", "Log level (debug, info, warn, error)")

	_ = viper.BindPFlag(KeyLogOutput, flags.Lookup("log-output"))
	_ = viper.BindPFlag(KeyLogLevel, flags.Lookup("log-level"))

	viper.SetDefault(KeyLogOutput, "auto")
	viper.SetDefault(KeyLogLevel, "info")
}

// RegisterConfigFlag registers the --config flag on a Cobra command
func RegisterConfigFlag(cmd *cobra.Command, cfgFile *string, defaultPath string) {
	cmd.PersistentFlags().StringVar(cfgFile, "config", "", fmt.Sprintf("config file (default: %s)", defaultPath))
}

// InitLogger creates a logger from the Viper configuration. When journald is
// not available logs go to fallback. Should be called after InitConfig.
func InitLogger(prefix string, fallback logs.LogOutput) *logs.Logger {
	return logs.New(logs.Config{
		Output:   logs.LogOutput(viper.GetString(KeyLogOutput)),
		Fallback: fallback,
		Level:    viper.GetString(KeyLogLevel),
		Prefix:   prefix,
	})
}

// BindFlag binds a Cobra flag to a Viper config key
func BindFlag(cmd *cobra.Command, flagName, viperKey string) error {
	return viper.BindPFlag(viperKey, cmd.Flags().Lookup(flagName))
}

// BindPersistentFlag binds a Cobra persistent flag to a Viper config key
func BindPersistentFlag(cmd *cobra.Command, flagName, viperKey string) error {
	return viper.BindPFlag(viperKey, cmd.PersistentFlags().Lookup(flagName))
}

// GetExpandedString gets a string from Viper and expands path prefixes
func GetExpandedString(key string) string {
	return paths.Expand(viper.GetString(key))
}
