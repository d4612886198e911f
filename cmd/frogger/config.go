package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-frogger/internal/config"
)

var flagConfigDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the active configuration",
	Long: `Prints where the configuration was loaded from and the resolved settings,
including --dir and --db overrides.

With --defaults the built-in config file is printed instead, ready to be
saved as ~/.frogger/config.yaml.

Examples:
  frogger config
  frogger config --defaults > ~/.frogger/config.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigDefaults, "defaults", false, "Print the built-in config file")
}

func runConfig(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	if flagConfigDefaults {
		_, err := out.Write(config.DefaultYAML())
		return err
	}

	a, err := newApp()
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(a.cfg)
	if err != nil {
		return fmt.Errorf("cannot encode config: %w", err)
	}
	fmt.Fprintf(out, "# source: %s\n", a.source)
	_, err = out.Write(data)
	return err
}
