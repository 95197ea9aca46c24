// Package config loads process configuration from an optional YAML file,
// a .env file and SIM_CATALOG_* environment variables, in that order.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/sim-catalog/internal/errors"
)

// Config holds the application configuration
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Snapshot SnapshotConfig `yaml:"snapshot"`
	Redis    RedisConfig    `yaml:"redis"`
	Log      LogConfig      `yaml:"log"`
}

// ServerConfig holds listener settings
type ServerConfig struct {
	GRPCPort        int           `yaml:"grpc_port" validate:"min=1,max=65535"`
	HTTPPort        int           `yaml:"http_port" validate:"min=1,max=65535,nefield=GRPCPort"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" validate:"gt=0"`
}

// SnapshotConfig says where the catalog snapshot comes from and how to load it
type SnapshotConfig struct {
	// Source is an http(s) URL or a local path
	Source   string `yaml:"source" validate:"required"`
	Encoding string `yaml:"encoding" validate:"oneof=json binary"`
	// MaxBytes caps HTTP downloads; 0 uses the repository default
	MaxBytes    int64         `yaml:"max_bytes" validate:"gte=0"`
	LoadTimeout time.Duration `yaml:"load_timeout" validate:"gt=0"`
	StrictIDs   bool          `yaml:"strict_ids"`
	// Preload loads the catalog at startup instead of on the first request
	Preload bool `yaml:"preload"`
}

// RedisConfig enables the snapshot cache when Endpoints is not empty
type RedisConfig struct {
	Endpoints []string      `yaml:"endpoints" validate:"dive,hostname_port"`
	Password  string        `yaml:"password"`
	DB        int           `yaml:"db" validate:"gte=0"`
	UseTLS    bool          `yaml:"use_tls"`
	KeyPrefix string        `yaml:"key_prefix"`
	TTL       time.Duration `yaml:"ttl" validate:"gte=0"`
}

// Enabled reports whether a redis cache should be used
func (r RedisConfig) Enabled() bool {
	return len(r.Endpoints) > 0
}

// LogConfig holds logger settings
type LogConfig struct {
	Level     string `yaml:"level" validate:"oneof=debug info warn warning error"`
	Format    string `yaml:"format" validate:"oneof=json text"`
	AddSource bool   `yaml:"add_source"`
}

// Default returns the configuration used when nothing overrides it
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			GRPCPort:        DefaultGRPCPort,
			HTTPPort:        DefaultHTTPPort,
			ShutdownTimeout: 30 * time.Second,
		},
		Snapshot: SnapshotConfig{
			Source:      "assets/db.json",
			Encoding:    "json",
			LoadTimeout: time.Minute,
			Preload:     true,
		},
		Redis: RedisConfig{
			TTL: time.Hour,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads configuration. An empty path skips the YAML file; a missing .env
// file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				return nil, errors.NotFoundf("config file %s not found", path)
			}
			return nil, errors.Wrapf(err, "failed to read config %s", path)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, errors.InvalidArgumentf("failed to parse config %s: %v", path, err)
		}
	}

	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	vb := errors.NewValidationBuilder()

	setString := func(key string, dst *string) {
		if v, ok := os.LookupEnv(key); ok {
			*dst = v
		}
	}
	setInt := func(key string, dst *int) {
		if v, ok := os.LookupEnv(key); ok {
			n, err := strconv.Atoi(v)
			if err != nil {
				vb.InvalidField(key, "must be an integer")
				return
			}
			*dst = n
		}
	}
	setBool := func(key string, dst *bool) {
		if v, ok := os.LookupEnv(key); ok {
			b, err := strconv.ParseBool(v)
			if err != nil {
				vb.InvalidField(key, "must be a boolean")
				return
			}
			*dst = b
		}
	}
	setDuration := func(key string, dst *time.Duration) {
		if v, ok := os.LookupEnv(key); ok {
			d, err := time.ParseDuration(v)
			if err != nil {
				vb.InvalidField(key, "must be a duration")
				return
			}
			*dst = d
		}
	}

	setInt(EnvGRPCPort, &c.Server.GRPCPort)
	setInt(EnvHTTPPort, &c.Server.HTTPPort)
	setDuration(EnvShutdownTimeout, &c.Server.ShutdownTimeout)

	setString(EnvSnapshotSource, &c.Snapshot.Source)
	setString(EnvSnapshotEncoding, &c.Snapshot.Encoding)
	setDuration(EnvSnapshotLoadTimeout, &c.Snapshot.LoadTimeout)
	setBool(EnvSnapshotStrictIDs, &c.Snapshot.StrictIDs)
	setBool(EnvSnapshotPreload, &c.Snapshot.Preload)

	if v, ok := os.LookupEnv(EnvRedisEndpoints); ok {
		c.Redis.Endpoints = splitList(v)
	}
	setString(EnvRedisPassword, &c.Redis.Password)
	setInt(EnvRedisDB, &c.Redis.DB)
	setBool(EnvRedisTLS, &c.Redis.UseTLS)
	setDuration(EnvRedisTTL, &c.Redis.TTL)

	setString(EnvLogLevel, &c.Log.Level)
	setString(EnvLogFormat, &c.Log.Format)

	return vb.Build()
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
