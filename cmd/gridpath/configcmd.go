package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/gridpath/internal/config"
)

var flagDefaultConfig bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the configuration",
	Long: `Print the configuration in effect after applying the config file and
global flags, or the built-in defaults with --default.

Examples:
  gridpath config
  gridpath config --default > ~/.gridpath/config.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaultConfig, "default", false, "Print the built-in default config file")
}

func runConfig(cmd *cobra.Command, args []string) {
	if flagDefaultConfig {
		os.Stdout.Write(config.DefaultYAML())
		return
	}

	a := mustApp()
	if err := a.showConfig(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func (a *app) showConfig() error {
	data, err := yaml.Marshal(a.cfg)
	if err != nil {
		return fmt.Errorf("config: encode: %w", err)
	}
	_, err = a.out.Write(data)
	return err
}
