package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration the game would run with, after applying
--config, ~/.flappy/flappy.yaml or ./configs/flappy.yaml over the defaults.
The output is valid input for --config.`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(cmd.OutOrStdout(), string(data))
	return err
}

// loadConfig reads the config and applies command line overrides.
func loadConfig() (config.FlappyConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.FlappyConfig{}, err
	}
	if flagFPS > 0 {
		cfg.Loop.FPS = flagFPS
	}
	return cfg, nil
}
