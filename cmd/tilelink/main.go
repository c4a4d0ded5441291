// tilelink is a terminal tile-linking puzzle: drag through adjacent tiles
// of one color and release to clear chains of three or more.
//
// Usage:
//
//	tilelink modes             - List available board modes
//	tilelink play [mode]       - Play a mode (default: classic)
//	tilelink menu              - Pick modes interactively
//	tilelink serve             - Start SSH server for remote play
//	tilelink show [mode]       - Print a seeded board, optionally after a scripted drag
//	tilelink config            - Print the default configuration
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible boards
//	--config <path>      - Use a custom tilelink.yaml
//	--log-file <path>    - Write debug logs to a file
//	--log-level <level>  - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tilelink/internal/config"
	"github.com/vovakirdan/tui-tilelink/internal/games/tilelink"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagLogFile  string
	flagLogLevel string
)

// Set up by the root command before any subcommand runs.
var (
	appConfig config.Config
	appLogger = log.New(io.Discard)
	logFile   *os.File
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tilelink",
	Short: "Tilelink - link matching tiles in your terminal",
	Long: `Tilelink is a terminal puzzle. Press on a tile, drag through adjacent
tiles of the same color (diagonals count) and release. Chains of three or
more tiles clear, and the tiles above fall down to fill the gaps.

Available commands:
  modes    - Show all board modes
  play     - Play a specific mode directly
  menu     - Interactive mode picker
  serve    - Start SSH server for remote play
  show     - Print a seeded board without a terminal UI
  config   - Print the default configuration

Examples:
  tilelink modes
  tilelink play spectrum
  tilelink play --seed 42 --log-file tilelink.log --log-level debug
  tilelink show classic --seed 7 --drag "4,0 4,1 3,2"
  tilelink serve --ssh :2222`,
	SilenceUsage:       true,
	SilenceErrors:      true,
	PersistentPreRunE:  setup,
	PersistentPostRunE: teardown,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom tilelink.yaml")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (discarded when empty)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(modesCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(configCmd)
}

// setup builds the logger, loads the configuration and registers its modes.
func setup(_ *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	if flagFPS <= 0 {
		return fmt.Errorf("invalid --fps %d: must be positive", flagFPS)
	}

	var out io.Writer = io.Discard
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return fmt.Errorf("cannot open log file: %w", err)
		}
		logFile = f
		out = f
	}
	appLogger = log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "tilelink",
		Level:           level,
	})

	appConfig, err = config.Load(flagConfig)
	if err != nil {
		return err
	}

	tilelink.SetConfigPath(flagConfig)
	tilelink.SetLogger(appLogger)
	tilelink.RegisterModes(appConfig)
	return nil
}

func teardown(_ *cobra.Command, _ []string) error {
	if logFile == nil {
		return nil
	}
	err := logFile.Close()
	logFile = nil
	return err
}
