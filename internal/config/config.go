// Package config loads application configuration from file and environment
// and initializes the global logger.
package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/sells-group/abm-planner/internal/engine"
)

// Config holds the full application configuration.
type Config struct {
	Calibration engine.Calibration `yaml:"calibration" mapstructure:"calibration"`
	Log         LogConfig          `yaml:"log" mapstructure:"log"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from file and environment. Calibration constants
// default to the engine's built-in table; any of them can be overridden in
// config.yaml or via ABM_* environment variables.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("ABM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")

	cal := engine.DefaultCalibration()
	v.SetDefault("calibration.marketing_hours_per_fte", cal.MarketingHoursPerFTE)
	v.SetDefault("calibration.sales_hours_per_fte", cal.SalesHoursPerFTE)
	v.SetDefault("calibration.intensity_gamma", cal.IntensityGamma)
	v.SetDefault("calibration.hazard_cap", cal.HazardCap)
	v.SetDefault("calibration.in_market_ceiling", cal.InMarketCeiling)
	for tier, bench := range cal.Tiers {
		v.SetDefault("calibration.tiers."+string(tier)+".cost_per_account", bench.CostPerAccount)
	}
	for level, mult := range cal.Alignment {
		prefix := "calibration.alignment." + string(level)
		v.SetDefault(prefix+".opportunity", mult.Opportunity)
		v.SetDefault(prefix+".win", mult.Win)
		v.SetDefault(prefix+".velocity", mult.Velocity)
	}

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
