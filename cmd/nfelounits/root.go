package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/greerreNFL/nfelounits/internal/config"
	"github.com/greerreNFL/nfelounits/pkg/logger"
)

var (
	settings *config.Settings

	dataPath  string
	paramPath string
	logLevel  string
)

var rootCmd = &cobra.Command{
	Use:   "nfelounits",
	Short: "NFL team unit rating engine",
	Long:  "Rate NFL pass, rush and special teams units from play-by-play EPA, translate them to Elo, and fit model parameters.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		settings, err = config.LoadSettings()
		if err != nil {
			return fmt.Errorf("load settings: %w", err)
		}
		if dataPath != "" {
			settings.DataPath = dataPath
		}
		if paramPath != "" {
			settings.ParamPath = paramPath
		}
		if logLevel != "" {
			settings.LogLevel = logLevel
		}
		logger.InitLogger(settings.LogLevel, settings.IsDevelopment())
		return nil
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadModelConfig returns the saved parameter set when configured, defaults
// otherwise.
func loadModelConfig() (*config.ModelConfig, error) {
	if settings.ParamPath == "" {
		return config.DefaultModelConfig(), nil
	}
	cfg, err := config.LoadModelConfig(settings.ParamPath)
	if err != nil {
		return nil, fmt.Errorf("load model params: %w", err)
	}
	return cfg, nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dataPath, "data", "", "path to game data CSV (overrides DATA_PATH)")
	rootCmd.PersistentFlags().StringVar(&paramPath, "params", "", "path to model parameter JSON (overrides PARAM_PATH)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (overrides LOG_LEVEL)")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(optimizeCmd)
	rootCmd.AddCommand(serveCmd)
}

func main() {
	Execute()
}
