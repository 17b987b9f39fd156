package main

import (
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/ecoris/internal/config"
)

var flagEffective bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the game configuration",
	Long: `Print the embedded default configuration, ready to be saved to
~/.ecoris/configs/ecoris.yaml and edited.

With --effective, print the configuration after the search order and the
difficulty preset have been applied.`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagEffective, "effective", false, "Print the resolved configuration")
}

func runConfig(_ *cobra.Command, _ []string) {
	if !flagEffective {
		os.Stdout.Write(config.DefaultYAML())
		return
	}

	cfg, _, err := loadGameConfig()
	if err != nil {
		fail("%v", err)
	}
	enc := yaml.NewEncoder(os.Stdout)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		fail("%v", err)
	}
	enc.Close()
}
