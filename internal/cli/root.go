package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/spf13/cobra"

	"order-desk/internal/common/logger"
	"order-desk/internal/config"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	ConfigPath string
	LogLevel   string // overrides log.level from the config when set
}

var validLogLevels = []string{"debug", "info", "error"}

// NewRootCommand creates the root command for the order-desk CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "order-desk",
		Short: "Restaurant order taking and kitchen display",
		Long: `order-desk serves the order form, the kitchen display and the JSON API
the kitchen polls for pending orders.`,
		SilenceUsage:  true,
		SilenceErrors: true, // main prints the error
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.LogLevel != "" && !isValidLogLevel(opts.LogLevel) {
				return fmt.Errorf("invalid log level %q: must be one of %v", opts.LogLevel, validLogLevels)
			}
			return nil
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.ConfigPath, "config", "c", "", "path to config.yaml (default: ./config.yaml if present)")
	cmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", "", "log level (debug|info|error)")

	cmd.AddCommand(NewServeCommand(opts))
	cmd.AddCommand(NewMigrateCommand(opts))
	cmd.AddCommand(NewMenuCommand())
	cmd.AddCommand(NewNotifyCommand(opts))

	return cmd
}

func isValidLogLevel(level string) bool {
	for _, l := range validLogLevels {
		if strings.EqualFold(l, level) {
			return true
		}
	}
	return false
}

// loadConfig reads the configured file (or the first one FindConfig finds)
// and builds the process logger.
func loadConfig(opts *RootOptions, cmd *cobra.Command, service string) (*config.Config, *logger.Logger, error) {
	path := opts.ConfigPath
	if path == "" {
		found, err := config.FindConfig()
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, nil, err
		}
		path = found
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, nil, err
	}
	if opts.LogLevel != "" {
		cfg.Log.Level = opts.LogLevel
	}

	lg := logger.NewWithWriter(service, cmd.OutOrStdout(), logger.ParseLevel(cfg.Log.Level))
	if path != "" {
		lg.Debug("config_loaded", map[string]any{"path": path})
	}
	return cfg, lg, nil
}
