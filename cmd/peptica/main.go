package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/terraincognita07/peptica/internal/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var version = "dev"

var (
	// Global flags
	verbose    bool
	configPath string

	cfg    *config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "peptica",
	Short: "Peptica - peptide interaction and evidence reference",
	Long: `Peptica serves a searchable reference of peptide interactions,
evidence, mechanisms and safety notes.

Run without arguments to start the web server.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "version" {
			return nil
		}

		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		if err := loaded.Validate(); err != nil {
			return fmt.Errorf("invalid configuration: %w", err)
		}
		cfg = loaded

		logger, err = newLogger(cfg.LogLevel, verbose)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runServe,
}

func newLogger(level string, verbose bool) (*zap.Logger, error) {
	zapConfig := zap.NewProductionConfig()
	parsed, err := zapcore.ParseLevel(strings.ToLower(level))
	if err != nil {
		return nil, err
	}
	zapConfig.Level = zap.NewAtomicLevelAt(parsed)
	if verbose {
		zapConfig.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return zapConfig.Build()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "peptica.yaml", "Path to the YAML config file (optional)")

	validateCmd.Flags().StringVar(&contentDir, "content", "", "Validate substance files in this directory instead of the embedded set")
	tokenCmd.Flags().StringVar(&tokenSubject, "subject", "admin", "Subject recorded in the admin token")

	rootCmd.AddCommand(serveCmd, validateCmd, tokenCmd, versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
