package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dino-runner/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Prints the built-in configuration as YAML. Save it to
~/.dino-runner/runner.yaml or ./configs/runner.yaml and edit the values
you want to change; missing keys keep their defaults.`,
	Args: cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		//nolint:errcheck // Writing to stdout
		os.Stdout.Write(config.DefaultYAML())
	},
}
