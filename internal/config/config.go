package config

import "github.com/spf13/viper"

type Config struct {
	OutputDir       string  `mapstructure:"OUTPUT_DIR"`
	Seed            uint64  `mapstructure:"SEED"`
	DurationMinutes int     `mapstructure:"DURATION_MINUTES"`
	MinHR           float64 `mapstructure:"MIN_HR"`
	MaxHR           float64 `mapstructure:"MAX_HR"`
	ChartPath       string  `mapstructure:"CHART_PATH"`
	LogLevel        string  `mapstructure:"LOG_LEVEL"`
}

func Load() Config {
	viper.AutomaticEnv()
	viper.SetDefault("OUTPUT_DIR", ".")
	viper.SetDefault("SEED", 0)
	viper.SetDefault("DURATION_MINUTES", 30)
	viper.SetDefault("MIN_HR", 60.0)
	viper.SetDefault("MAX_HR", 180.0)
	viper.SetDefault("CHART_PATH", "")
	viper.SetDefault("LOG_LEVEL", "info")

	var cfg Config
	_ = viper.Unmarshal(&cfg)
	return cfg
}
