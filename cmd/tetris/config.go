package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-tetris/internal/config"
)

var flagEffective bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Print the embedded default tetris.yaml. Copy it to
~/.tetris/configs/tetris.yaml or pass --config to customise the game.

With --effective, print the configuration after the search order
and the difficulty preset have been applied.`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagEffective, "effective", false, "Print the resolved configuration")
}

func runConfig(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	if !flagEffective {
		_, err := out.Write(config.DefaultYAML())
		return err
	}

	cfg, err := config.LoadTetris(flagConfig)
	if err != nil {
		return err
	}
	preset, _ := config.ParseDifficulty(flagDifficulty)
	config.ApplyTetrisPreset(&cfg, preset)

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("cannot encode config: %w", err)
	}
	_, err = out.Write(data)
	return err
}
