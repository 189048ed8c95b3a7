// Package config resolves runtime settings from defaults, an optional TOML
// file and PHYSIO_* environment variables, in increasing precedence.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/alexanderramin/physio/internal/analytics"
)

// Environment variables read by Load.
const (
	EnvConfig      = "PHYSIO_CONFIG"
	EnvDB          = "PHYSIO_DB"
	EnvLogLevel    = "PHYSIO_LOG_LEVEL"
	EnvLogFile     = "PHYSIO_LOG_FILE"
	EnvLogJSON     = "PHYSIO_LOG_JSON"
	EnvHTTPAddr    = "PHYSIO_HTTP_ADDR"
	EnvMetricsAddr = "PHYSIO_METRICS_ADDR"
	EnvHistoryDays = "PHYSIO_HISTORY_DAYS"
)

type Config struct {
	DBPath string

	LogLevel    string
	LogFile     string
	LogJSON     bool
	LogToStderr bool // with LogFile set, also tee to stderr

	HTTPAddr    string
	MetricsAddr string

	HistoryDays int
}

func Defaults() Config {
	return Config{
		DBPath:      DefaultDBPath(),
		LogLevel:    "warn",
		HTTPAddr:    "127.0.0.1:8080",
		MetricsAddr: "127.0.0.1:9090",
		HistoryDays: analytics.DefaultSeriesWindow,
	}
}

// Path returns the config file location: $PHYSIO_CONFIG or the XDG default.
func Path() string {
	if p := os.Getenv(EnvConfig); p != "" {
		return p
	}
	return DefaultConfigPath()
}

// Load builds the effective configuration.
func Load() (Config, error) {
	cfg := Defaults()

	path := Path()
	file, err := LoadFile(path)
	if err != nil {
		return Config{}, err
	}
	cfg.applyFile(file)

	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) applyFile(f FileConfig) {
	setString(&c.DBPath, f.Storage.DB)
	setString(&c.LogLevel, f.Log.Level)
	setString(&c.LogFile, f.Log.File)
	if f.Log.JSON != nil {
		c.LogJSON = *f.Log.JSON
	}
	if f.Log.Stderr != nil {
		c.LogToStderr = *f.Log.Stderr
	}
	setString(&c.HTTPAddr, f.Server.Addr)
	setString(&c.MetricsAddr, f.Server.MetricsAddr)
	if f.History.Days != nil {
		c.HistoryDays = *f.History.Days
	}
}

func setString(dst *string, v *string) {
	if v != nil && *v != "" {
		*dst = *v
	}
}

func (c *Config) applyEnv() error {
	envString(&c.DBPath, EnvDB)
	envString(&c.LogLevel, EnvLogLevel)
	envString(&c.LogFile, EnvLogFile)
	envString(&c.HTTPAddr, EnvHTTPAddr)
	envString(&c.MetricsAddr, EnvMetricsAddr)

	if v := os.Getenv(EnvLogJSON); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvLogJSON, err)
		}
		c.LogJSON = b
	}
	if v := os.Getenv(EnvHistoryDays); v != "" {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%s: %w", EnvHistoryDays, err)
		}
		c.HistoryDays = n
	}
	return nil
}

func envString(dst *string, key string) {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		*dst = v
	}
}

func (c Config) Validate() error {
	if c.DBPath == "" {
		return fmt.Errorf("database path is empty")
	}
	if c.HistoryDays < 1 {
		return fmt.Errorf("history days must be at least 1, got %d", c.HistoryDays)
	}
	return nil
}
