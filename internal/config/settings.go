package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Settings holds runtime configuration for the CLI and server, separate from
// the tunable model parameters in ModelConfig.
type Settings struct {
	Port      string `mapstructure:"PORT"`
	Env       string `mapstructure:"ENV"`
	LogLevel  string `mapstructure:"LOG_LEVEL"`
	DataPath  string `mapstructure:"DATA_PATH"`
	DBPath    string `mapstructure:"DB_PATH"`
	ParamPath string `mapstructure:"PARAM_PATH"`

	// Optimization defaults
	OptimizerRestarts int `mapstructure:"OPTIMIZER_RESTARTS"`
	OptimizerWorkers  int `mapstructure:"OPTIMIZER_WORKERS"`
	TestSeasons       int `mapstructure:"TEST_SEASONS"`
}

// LoadSettings reads runtime settings from an optional .env file and the
// environment.
func LoadSettings() (*Settings, error) {
	v := viper.New()
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	v.AddConfigPath("..")

	v.SetDefault("PORT", "8080")
	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("DATA_PATH", "data/unit_games.csv")
	v.SetDefault("DB_PATH", "data/nfelounits.db")
	v.SetDefault("PARAM_PATH", "")
	v.SetDefault("OPTIMIZER_RESTARTS", 10)
	v.SetDefault("OPTIMIZER_WORKERS", 4)
	v.SetDefault("TEST_SEASONS", 5)

	v.AutomaticEnv()

	// Missing .env is fine; env vars and defaults still apply.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, err
	}
	return &s, nil
}

// IsDevelopment reports whether the environment is a development one.
func (s *Settings) IsDevelopment() bool {
	return strings.ToLower(s.Env) != "production"
}
