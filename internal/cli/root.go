// Package cli defines the nonoconv command tree.
package cli

import (
	"log/slog"
	"os"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/ironsheep/nonoconv/internal/config"
)

// Signals stop a running batch between two files.
var Signals = []os.Signal{os.Interrupt, syscall.SIGTERM}

// NewRootCmd builds the nonoconv command with all converters attached.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "nonoconv",
		Short: "Convert puzzle images and translations for FreeNono",
		Long: `nonoconv turns external data into FreeNono files.

  recognono   detect the grid of scanned or rendered puzzle sheets
  picross     decode handheld Picross screenshots
  po2props    convert gettext catalogs into Java properties

Settings are read from nonoconv.yaml (or $NONOCONV_CONFIG) and can be
overridden by flags. Set NONOCONV_LOG_LEVEL=debug for detector diagnostics.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load .env file if present (ignore errors)
			_ = godotenv.Load()
			setupLogging(os.Getenv(config.EnvLogLevel))
		},
	}

	cmd.PersistentFlags().String("config", "", "configuration file (default $NONOCONV_CONFIG or nonoconv.yaml)")

	cmd.AddCommand(newRecognonoCmd())
	cmd.AddCommand(newPicrossCmd())
	cmd.AddCommand(newPO2PropsCmd())

	return cmd
}

// setupLogging sends structured logs to stderr; stdout carries progress.
func setupLogging(level string) {
	var l slog.Level
	switch strings.ToLower(level) {
	case "debug":
		l = slog.LevelDebug
	case "warn", "warning":
		l = slog.LevelWarn
	case "error":
		l = slog.LevelError
	default:
		l = slog.LevelInfo
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: l})))
}

// loadConfig reads the file named by --config, $NONOCONV_CONFIG or the
// default file name.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		path = config.File()
	}
	return config.Load(path)
}
