// Package config loads the character sheet configuration from a YAML file and
// environment overrides.
package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/rpg-charsheet/internal/errors"
)

const (
	// DefaultConfigDir is the directory under the user config dir
	DefaultConfigDir = "charsheet"
	// DefaultConfigFile is the default config file name
	DefaultConfigFile = "config.yaml"
	// DefaultDatabaseFile is the default durable store file name
	DefaultDatabaseFile = "charsheet.db"

	// BackendMemory keeps the primary tier in process memory
	BackendMemory = "memory"
	// BackendRedis keeps the primary tier in Redis
	BackendRedis = "redis"

	defaultQuotaBytes = 5 << 20
)

// Config holds the configuration of the character sheet tool
type Config struct {
	Primary PrimaryConfig `yaml:"primary,omitempty"`
	Durable DurableConfig `yaml:"durable,omitempty"`
	Export  ExportConfig  `yaml:"export,omitempty"`
	Log     LogConfig     `yaml:"log,omitempty"`

	// SeedFile replaces the bundled first-run roster with a YAML roster file
	SeedFile string `yaml:"seed_file,omitempty" env:"CHARSHEET_SEED_FILE"`
}

// PrimaryConfig configures the fast, capacity-limited tier
type PrimaryConfig struct {
	Backend       string `yaml:"backend,omitempty" env:"CHARSHEET_PRIMARY"`
	RedisAddr     string `yaml:"redis_addr,omitempty" env:"CHARSHEET_REDIS_ADDR"`
	RedisPassword string `yaml:"redis_password,omitempty" env:"CHARSHEET_REDIS_PASSWORD"`
	RedisDB       int    `yaml:"redis_db,omitempty" env:"CHARSHEET_REDIS_DB"`
	Namespace     string `yaml:"namespace,omitempty" env:"CHARSHEET_REDIS_NAMESPACE"`
	// QuotaBytes caps a single stored value; 0 disables the cap
	QuotaBytes int `yaml:"quota_bytes,omitempty" env:"CHARSHEET_PRIMARY_QUOTA"`
}

// DurableConfig configures the durable tier
type DurableConfig struct {
	SQLitePath string `yaml:"sqlite_path,omitempty" env:"CHARSHEET_SQLITE_PATH"`
}

// ExportConfig configures image inlining during export
type ExportConfig struct {
	// AssetDir resolves relative image references
	AssetDir     string        `yaml:"asset_dir,omitempty" env:"CHARSHEET_ASSET_DIR"`
	FetchTimeout time.Duration `yaml:"fetch_timeout,omitempty" env:"CHARSHEET_FETCH_TIMEOUT"`
}

// LogConfig configures the slog handler
type LogConfig struct {
	Level  string `yaml:"level,omitempty" env:"CHARSHEET_LOG_LEVEL"`
	Format string `yaml:"format,omitempty" env:"CHARSHEET_LOG_FORMAT"`
}

// Default returns a Config with default values
func Default() *Config {
	return &Config{
		Primary: PrimaryConfig{
			Backend:    BackendMemory,
			Namespace:  "charsheet:",
			QuotaBytes: defaultQuotaBytes,
		},
		Durable: DurableConfig{
			SQLitePath: filepath.Join(Dir(), DefaultDatabaseFile),
		},
		Export: ExportConfig{
			AssetDir:     ".",
			FetchTimeout: 15 * time.Second,
		},
		Log: LogConfig{
			Level:  "warn",
			Format: "text",
		},
	}
}

// Dir returns the per-user configuration directory
func Dir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return "."
	}
	return filepath.Join(base, DefaultConfigDir)
}

// FilePath returns the default config file path
func FilePath() string {
	return filepath.Join(Dir(), DefaultConfigFile)
}

// Load reads configuration. An empty path reads the default config file when
// it exists; an explicit path must exist. Environment variables override the file.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = FilePath()
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "parsing config file").
				WithMeta("path", path)
		}
	case os.IsNotExist(err) && !explicit:
	case os.IsNotExist(err):
		return nil, errors.NotFoundf("config file not found: %s", path)
	default:
		return nil, errors.Wrapf(err, "reading config file %s", path)
	}

	if err := ParseEnv(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ParseEnv applies environment variable overrides to target
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, "parse env")
	}
	return nil
}

// Validate checks the configuration for consistency
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateEnum("primary.backend", c.Primary.Backend, []string{BackendMemory, BackendRedis}, vb)
	if c.Primary.Backend == BackendRedis {
		errors.ValidateRequired("primary.redis_addr", c.Primary.RedisAddr, vb)
	}
	errors.ValidateNonNegative("primary.quota_bytes", c.Primary.QuotaBytes, vb)
	errors.ValidateRequired("durable.sqlite_path", c.Durable.SQLitePath, vb)
	if c.Export.FetchTimeout < 0 {
		vb.Field("export.fetch_timeout", "must not be negative")
	}
	if _, err := c.Log.SlogLevel(); err != nil {
		vb.Fieldf("log.level", "unknown level %q", c.Log.Level)
	}
	errors.ValidateEnum("log.format", c.Log.Format, []string{"text", "json"}, vb)

	return vb.Build()
}

// SlogLevel parses the configured level
func (l LogConfig) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if strings.TrimSpace(l.Level) == "" {
		return slog.LevelWarn, nil
	}
	if err := level.UnmarshalText([]byte(l.Level)); err != nil {
		return slog.LevelWarn, err
	}
	return level, nil
}
