// Package koanf loads the API server configuration from a YAML file and
// CAUSELIST_* environment variables.
package koanf

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/fwojciec/causelist"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "CAUSELIST_"

const maxConfigFileSize = 1024 * 1024

// Config holds the causelistd configuration.
type Config struct {
	Server  ServerConfig  `koanf:"server"`
	Fetch   FetchConfig   `koanf:"fetch"`
	History HistoryConfig `koanf:"history"`
	Log     LogConfig     `koanf:"log"`
}

// ServerConfig holds HTTP listener settings.
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// Addr returns the listen address.
func (c ServerConfig) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// FetchConfig holds cause list fetch settings.
type FetchConfig struct {
	Timeout   time.Duration `koanf:"timeout"`
	UserAgent string        `koanf:"user_agent"`
}

// HistoryConfig enables the search history when Path is set.
type HistoryConfig struct {
	Path string `koanf:"path"`
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// Load reads configuration from path, if given, then applies environment
// overrides, then defaults for anything still unset.
//
// Environment variables drop the prefix and split on the first underscore:
//
//	CAUSELIST_SERVER_PORT            -> server.port
//	CAUSELIST_SERVER_SHUTDOWN_TIMEOUT -> server.shutdown_timeout
//	CAUSELIST_FETCH_USER_AGENT       -> fetch.user_agent
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if path != "" {
		content, err := readConfigFile(path)
		if err != nil {
			return nil, err
		}
		if err := k.Load(rawbytes.Provider(content), yaml.Parser()); err != nil {
			return nil, causelist.Errorf(causelist.EINVALID, "failed to parse config file %s: %v", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, causelist.Errorf(causelist.EINVALID, "invalid configuration: %v", err)
	}

	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	section, field, ok := strings.Cut(key, "_")
	if !ok {
		return key
	}
	return section + "." + field
}

func readConfigFile(path string) ([]byte, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, causelist.Errorf(causelist.EINVALID, "config file %s: %v", path, err)
	}
	if info.IsDir() {
		return nil, causelist.Errorf(causelist.EINVALID, "config file %s is a directory", path)
	}
	if info.Size() > maxConfigFileSize {
		return nil, causelist.Errorf(causelist.EINVALID, "config file %s exceeds %d bytes", path, maxConfigFileSize)
	}
	return os.ReadFile(path)
}

// Defaults.
const (
	DefaultHost            = "0.0.0.0"
	DefaultPort            = 5000
	DefaultShutdownTimeout = 10 * time.Second
	DefaultFetchTimeout    = 15 * time.Second
	DefaultUserAgent       = "ecourts-checker/1.0 (+https://example.com)"
	DefaultLogLevel        = "info"
	DefaultLogFormat       = "text"
)

func applyDefaults(cfg *Config) {
	if cfg.Server.Host == "" {
		cfg.Server.Host = DefaultHost
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = DefaultPort
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = DefaultShutdownTimeout
	}
	if cfg.Fetch.Timeout == 0 {
		cfg.Fetch.Timeout = DefaultFetchTimeout
	}
	if cfg.Fetch.UserAgent == "" {
		cfg.Fetch.UserAgent = DefaultUserAgent
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = DefaultLogFormat
	}
}

// Validate returns an error if the configuration cannot be served.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return causelist.Errorf(causelist.EINVALID, "server.port must be between 1 and 65535, got %d", c.Server.Port)
	}
	if c.Server.ShutdownTimeout < 0 {
		return causelist.Errorf(causelist.EINVALID, "server.shutdown_timeout must not be negative")
	}
	if c.Fetch.Timeout < 0 {
		return causelist.Errorf(causelist.EINVALID, "fetch.timeout must not be negative")
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return causelist.Errorf(causelist.EINVALID, "log.level must be debug, info, warn or error, got %q", c.Log.Level)
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return causelist.Errorf(causelist.EINVALID, "log.format must be text or json, got %q", c.Log.Format)
	}
	return nil
}
