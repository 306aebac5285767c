package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Store  StoreConfig  `yaml:"store" mapstructure:"store"`
	Engine EngineConfig `yaml:"engine" mapstructure:"engine"`
	Batch  BatchConfig  `yaml:"batch" mapstructure:"batch"`
	Server ServerConfig `yaml:"server" mapstructure:"server"`
	Log    LogConfig    `yaml:"log" mapstructure:"log"`
}

// StoreConfig configures the database backend.
type StoreConfig struct {
	Driver      string `yaml:"driver" mapstructure:"driver"`
	DatabaseURL string `yaml:"database_url" mapstructure:"database_url"`
	SQLitePath  string `yaml:"sqlite_path" mapstructure:"sqlite_path"`
}

// EngineConfig tunes the scoring and validation engine. The zero
// values of individual fields fall back to the engine defaults.
type EngineConfig struct {
	ScoreBandMin       float64 `yaml:"score_band_min" mapstructure:"score_band_min"`
	ScoreBandMax       float64 `yaml:"score_band_max" mapstructure:"score_band_max"`
	AgeAdjustmentMax   float64 `yaml:"age_adjustment_max" mapstructure:"age_adjustment_max"`
	PartialScopeFactor float64 `yaml:"partial_scope_factor" mapstructure:"partial_scope_factor"`
	DefaultRegion      string  `yaml:"default_region" mapstructure:"default_region"`
	TablesPath         string  `yaml:"tables_path" mapstructure:"tables_path"`
}

// BatchConfig configures batch processing.
type BatchConfig struct {
	MaxConcurrentAudits int `yaml:"max_concurrent_audits" mapstructure:"max_concurrent_audits"`
}

// ServerConfig configures the HTTP server.
type ServerConfig struct {
	Port          int     `yaml:"port" mapstructure:"port"`
	RatePerSecond float64 `yaml:"rate_per_second" mapstructure:"rate_per_second"`
	RateBurst     int     `yaml:"rate_burst" mapstructure:"rate_burst"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("AUDIT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("store.driver", "sqlite")
	v.SetDefault("store.sqlite_path", "audit.db")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.rate_per_second", 10)
	v.SetDefault("server.rate_burst", 20)
	v.SetDefault("batch.max_concurrent_audits", 5)
	v.SetDefault("engine.score_band_min", 60)
	v.SetDefault("engine.score_band_max", 95)
	v.SetDefault("engine.age_adjustment_max", 3)
	v.SetDefault("engine.partial_scope_factor", 0.4)
	v.SetDefault("engine.default_region", "north")

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

// Validate checks that the configuration is usable for the given
// mode ("report", "batch", or "serve").
func (c *Config) Validate(mode string) error {
	var problems []string

	switch c.Store.Driver {
	case "sqlite":
		if c.Store.SQLitePath == "" {
			problems = append(problems, "store.sqlite_path is required for the sqlite driver")
		}
	case "postgres":
		if c.Store.DatabaseURL == "" {
			problems = append(problems, "store.database_url is required for the postgres driver")
		}
	default:
		problems = append(problems, "store.driver must be sqlite or postgres")
	}

	if c.Engine.ScoreBandMin >= c.Engine.ScoreBandMax {
		problems = append(problems, "engine.score_band_min must be < engine.score_band_max")
	}
	if c.Engine.PartialScopeFactor <= 0 || c.Engine.PartialScopeFactor > 1 {
		problems = append(problems, "engine.partial_scope_factor must be in (0, 1]")
	}
	if c.Engine.AgeAdjustmentMax < 0 {
		problems = append(problems, "engine.age_adjustment_max must be >= 0")
	}

	switch mode {
	case "report":
	case "batch":
		if c.Batch.MaxConcurrentAudits < 1 || c.Batch.MaxConcurrentAudits > 50 {
			problems = append(problems, "batch.max_concurrent_audits must be between 1 and 50")
		}
	case "serve":
		if c.Server.Port <= 0 {
			problems = append(problems, "server.port must be > 0")
		}
		if c.Server.RatePerSecond <= 0 {
			problems = append(problems, "server.rate_per_second must be > 0")
		}
	default:
		return eris.Errorf("config: unknown mode %q", mode)
	}

	if len(problems) > 0 {
		return eris.New("config: " + strings.Join(problems, "; "))
	}
	return nil
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
