// Package cli implements the readlens command-line interface.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/sanonone/readlens/internal/config"
	"github.com/sanonone/readlens/internal/logging"
	"github.com/sanonone/readlens/internal/server"
	"github.com/spf13/cobra"
)

var (
	errorIcon = color.New(color.FgRed).Sprint("✗")

	success = color.New(color.FgGreen).SprintFunc()
	warning = color.New(color.FgYellow).SprintFunc()
	failure = color.New(color.FgRed).SprintFunc()
	info    = color.New(color.FgCyan).SprintFunc()
	dim     = color.New(color.Faint).SprintFunc()
)

// app carries state shared by the subcommands once the root has loaded
// the configuration.
type app struct {
	cfgFile  string
	logLevel string

	cfg    config.Config
	logger *slog.Logger
}

// NewRootCmd creates the root command.
func NewRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "readlens",
		Short: "Readability and keyword analysis for English text",
		Long: `readlens scores the readability of English text (Flesch Reading Ease,
Flesch-Kincaid grade, difficulty label, 0-10 score) and ranks its keywords.

Example usage:
  readlens serve --addr :5000          # Run the HTTP service
  readlens analyze post.md -k growth   # Analyze one document
  readlens batch ./docs -i "**/*.md"   # Analyze a directory as JSON lines`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.cfgFile)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			if a.logLevel != "" {
				cfg.LogLevel = a.logLevel
			}
			a.cfg = cfg
			a.logger = logging.Setup(cfg.LogLevel, cmd.ErrOrStderr())
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "YAML config file (default: built-in defaults)")
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")

	rootCmd.AddCommand(newServeCmd(a))
	rootCmd.AddCommand(newMCPCmd(a))
	rootCmd.AddCommand(newAnalyzeCmd(a))
	rootCmd.AddCommand(newBatchCmd(a))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "readlens %s\n", server.Version)
		},
	}
}

// Execute runs the CLI.
func Execute() error {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s %s\n", errorIcon, err.Error())
		return err
	}
	return nil
}
