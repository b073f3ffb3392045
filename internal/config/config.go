// Package config loads DistroFinder settings from defaults, an optional YAML
// file and DISTROFINDER_* environment variables, in increasing precedence.
package config

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override: server.port is read from
// DISTROFINDER_SERVER_PORT.
const EnvPrefix = "DISTROFINDER"

// Log levels accepted by log.level.
var logLevels = []string{"debug", "info", "warn", "error"}

// Config is a nil-safe wrapper around a viper instance.
type Config struct {
	v *viper.Viper
}

// New wraps v. A nil v yields an empty configuration.
func New(v *viper.Viper) *Config {
	if v == nil {
		v = viper.New()
	}
	return &Config{v: v}
}

// SetDefaults installs the default value of every known key.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.rate_limit", 20.0)
	v.SetDefault("server.rate_burst", 40)
	v.SetDefault("catalog.path", "")
	v.SetDefault("locale.path", "")
	v.SetDefault("log.level", "info")
}

// Load builds a Config from defaults, the YAML file at path (skipped when
// path is empty) and environment overrides.
func Load(path string) (*Config, error) {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %q: %w", path, err)
		}
	}
	return New(v), nil
}

// GetString returns the value of key as a string.
func (c *Config) GetString(key string) string { return c.v.GetString(key) }

// GetInt returns the value of key as an int.
func (c *Config) GetInt(key string) int { return c.v.GetInt(key) }

// GetFloat64 returns the value of key as a float64.
func (c *Config) GetFloat64(key string) float64 { return c.v.GetFloat64(key) }

// GetBool returns the value of key as a bool.
func (c *Config) GetBool(key string) bool { return c.v.GetBool(key) }

// GetDuration returns the value of key as a time.Duration.
func (c *Config) GetDuration(key string) time.Duration { return c.v.GetDuration(key) }

// IsSet reports whether key has a value from any source.
func (c *Config) IsSet(key string) bool { return c.v.IsSet(key) }

// Sub returns the subtree under key. Missing subtrees yield an empty Config,
// never nil.
func (c *Config) Sub(key string) *Config {
	return New(c.v.Sub(key))
}

// Unmarshal decodes the whole configuration into target using mapstructure
// tags.
func (c *Config) Unmarshal(target any) error { return c.v.Unmarshal(target) }

// Settings is the typed view of the configuration.
type Settings struct {
	Server  ServerSettings  `mapstructure:"server"`
	Catalog CatalogSettings `mapstructure:"catalog"`
	Locale  LocaleSettings  `mapstructure:"locale"`
	Log     LogSettings     `mapstructure:"log"`
}

// ServerSettings configures the HTTP server.
type ServerSettings struct {
	Host         string        `mapstructure:"host"`
	Port         int           `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	// RateLimit is requests per second per client; 0 disables limiting.
	RateLimit float64 `mapstructure:"rate_limit"`
	RateBurst int     `mapstructure:"rate_burst"`
}

// Addr returns host:port.
func (s ServerSettings) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// CatalogSettings points at an external catalog document. Empty uses the
// catalog compiled into the binary.
type CatalogSettings struct {
	Path string `mapstructure:"path"`
}

// LocaleSettings points at an external message table. Empty uses the
// embedded one.
type LocaleSettings struct {
	Path string `mapstructure:"path"`
}

// LogSettings configures logging.
type LogSettings struct {
	Level string `mapstructure:"level"`
}

// Settings decodes and checks the typed settings.
func (c *Config) Settings() (Settings, error) {
	var s Settings
	if err := c.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("decode settings: %w", err)
	}

	var errs []error
	if s.Server.Port < 0 || s.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port %d out of range", s.Server.Port))
	}
	if s.Server.RateLimit < 0 {
		errs = append(errs, fmt.Errorf("server.rate_limit must not be negative, got %v", s.Server.RateLimit))
	}
	s.Log.Level = strings.ToLower(s.Log.Level)
	if !validLevel(s.Log.Level) {
		errs = append(errs, fmt.Errorf("log.level %q must be one of %s", s.Log.Level, strings.Join(logLevels, ", ")))
	}
	if err := errors.Join(errs...); err != nil {
		return Settings{}, err
	}
	return s, nil
}

func validLevel(level string) bool {
	for _, l := range logLevels {
		if l == level {
			return true
		}
	}
	return false
}
