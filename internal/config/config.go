// Package config loads service settings from an optional YAML file and
// FOLIO_-prefixed environment variables, with sane defaults for local runs.
package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server ServerConfig `mapstructure:"server"`
	Redis  RedisConfig  `mapstructure:"redis"`
	Badger BadgerConfig `mapstructure:"badger"`
	Enrich EnrichConfig `mapstructure:"enrich"`
}

type ServerConfig struct {
	Addr string `mapstructure:"addr"`
}

type RedisConfig struct {
	Addr string `mapstructure:"addr"`
}

type BadgerConfig struct {
	Path string `mapstructure:"path"`
}

type EnrichConfig struct {
	Timeout time.Duration `mapstructure:"timeout"`
}

// Load reads the config file at path (optional, "" skips it), then applies
// FOLIO_* environment overrides on top of the defaults.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("server.addr", ":8080")
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("badger.path", "./folio-data")
	v.SetDefault("enrich.timeout", 30*time.Second)

	v.SetEnvPrefix("FOLIO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
