// Btautolaunch previews the BtAutoLaunch Android automation app in the
// terminal.
//
// It draws the app in two phone frames side by side, one per color theme,
// and drives both from a single automation state: pick a performance tier
// on the dashboard, edit the launch rule on the setup screen and read the
// lifecycle audit trail. The same state can be served over HTTP and
// websocket, advertised over mDNS, and found again from another machine.
//
// Usage:
//
//	btautolaunch [command] [flags]
//
// Running without arguments launches the interactive preview.
// See 'btautolaunch --help' for available commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/muurk/btautolaunch/internal/config"
	"github.com/muurk/btautolaunch/internal/logging"
	"github.com/muurk/btautolaunch/internal/version"
)

func main() {
	err := rootCmd.Execute()
	logging.Sync()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// Global flags
var (
	logLevel string
	logFile  string
)

// registry is loaded once before any command runs
var registry *config.Registry

var rootCmd = &cobra.Command{
	Use:   "btautolaunch",
	Short: "BtAutoLaunch Preview",
	Long: `A terminal preview of the BtAutoLaunch automation app.

Both color themes are drawn side by side and share one state: the
reliability tier, the automation rule and the visible screen.

If no command is specified, the interactive preview will launch automatically.`,
	Version:       version.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		registry, err = config.LoadRegistry()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default behavior: run the preview when no subcommand provided
		return runPreview(cmd, args)
	},
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error); defaults to the config file or $"+logging.LogLevelEnvVar)
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Write logs to this file instead of stdout")

	addFrameFlags(rootCmd)

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("btautolaunch %s (commit: %s)\n", version.Version, version.Commit)
	},
}
