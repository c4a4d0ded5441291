package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tilelink/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Prints the built-in tilelink.yaml. Save it as
~/.tilelink/configs/tilelink.yaml or ./configs/tilelink.yaml (or pass
--config) to change the palette or add modes.

Example:
  tilelink config > ~/.tilelink/configs/tilelink.yaml`,
	Args: cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		_, err := os.Stdout.Write(config.DefaultYAML())
		return err
	},
}
