// Package config loads the client configuration from file and environment.
package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is the client configuration
type Config struct {
	Server ServerConfig `mapstructure:"server"`
	Client ClientConfig `mapstructure:"client"`
	Cache  CacheConfig  `mapstructure:"cache"`
}

// ServerConfig points the client at the LCchat server
type ServerConfig struct {
	BaseURL string `mapstructure:"base_url"`
	Timeout int    `mapstructure:"timeout"` // seconds
}

// ClientConfig holds local client state settings
type ClientConfig struct {
	DBPath string `mapstructure:"db_path"`
}

// CacheConfig holds cache freshness settings
type CacheConfig struct {
	ProfileTTL int `mapstructure:"profile_ttl"` // seconds
}

// RequestTimeout returns the configured request timeout as a duration
func (c *Config) RequestTimeout() time.Duration {
	return time.Duration(c.Server.Timeout) * time.Second
}

// ProfileTTL returns the configured profile freshness window as a duration
func (c *Config) ProfileTTL() time.Duration {
	return time.Duration(c.Cache.ProfileTTL) * time.Second
}

// Load reads the configuration from $HOME/.lcchat/config.yaml, the working
// directory and LCCHAT_* environment variables. A missing config file is
// fine; defaults apply.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".lcchat"))
	}

	v.SetDefault("server.base_url", "http://localhost:8888")
	v.SetDefault("server.timeout", 10)
	v.SetDefault("client.db_path", defaultDBPath())
	v.SetDefault("cache.profile_ttl", 60)

	v.SetEnvPrefix("LCCHAT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "lcchat.db"
	}
	return filepath.Join(home, ".lcchat", "lcchat.db")
}
