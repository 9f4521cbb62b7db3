package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	Environment EnvironmentConfig
	Logger      LoggerConfig
	Parser      ParserConfig
	Catalog     CatalogConfig
}

type EnvironmentConfig struct {
	Name string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// ParserConfig carries the per-deployment defaults for natural language
// parsing. DateFormat is MDY, DMY or YMD; StartOfWeek is 0 (Sunday) to 6.
type ParserConfig struct {
	Timezone       string
	DateFormat     string
	StartOfWeek    int
	MaxInputLength int
}

// CatalogConfig points at the YAML project/tag catalog used by the CLI and
// sizes the lookup cache. CacheTTL is a Go duration string.
type CatalogConfig struct {
	Path      string
	CacheSize int
	CacheTTL  string
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	cfg.Parser.Timezone = viper.GetString("parser.timezone")
	cfg.Parser.DateFormat = viper.GetString("parser.date_format")
	cfg.Parser.StartOfWeek = viper.GetInt("parser.start_of_week")
	cfg.Parser.MaxInputLength = viper.GetInt("parser.max_input_length")
	if tz := viper.GetString("parser_timezone"); tz != "" {
		cfg.Parser.Timezone = tz
	}

	if cfg.Parser.StartOfWeek < 0 || cfg.Parser.StartOfWeek > 6 {
		return nil, fmt.Errorf("parser.start_of_week must be 0-6, got %d", cfg.Parser.StartOfWeek)
	}

	cfg.Catalog.Path = viper.GetString("catalog.path")
	cfg.Catalog.CacheSize = viper.GetInt("catalog.cache_size")
	cfg.Catalog.CacheTTL = viper.GetString("catalog.cache_ttl")
	if path := viper.GetString("catalog_path"); path != "" {
		cfg.Catalog.Path = path
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("parser.timezone", "UTC")
	viper.SetDefault("parser.date_format", "MDY")
	viper.SetDefault("parser.start_of_week", 1)
	viper.SetDefault("parser.max_input_length", 1000)

	viper.SetDefault("catalog.cache_size", 1000)
	viper.SetDefault("catalog.cache_ttl", "5m")
}
