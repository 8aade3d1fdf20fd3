// Package config defines the application configuration model and the viper
// based loading machinery.  Configuration is read from a YAML file and can be
// overridden by environment variables with the DFI_ prefix, e.g.
// DFI_SERVER_PORT=9090 overrides server.port.
package config

import (
	"fmt"
	"time"
)

// Config is the root configuration for the interaction service.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Log      LogConfig      `mapstructure:"log"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Sources  SourcesConfig  `mapstructure:"sources"`
	Model    ModelConfig    `mapstructure:"model"`
	Fallback FallbackConfig `mapstructure:"fallback"`
}

// ServerConfig holds HTTP server parameters.
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// Addr returns the host:port listen address.
func (c ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// LogConfig holds logging parameters; mirrored into logging.Config at startup.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// RedisConfig holds cache connection parameters.  Enabled=false runs the
// service without a cache; lookups then always hit the upstream sources.
type RedisConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	Addr     string        `mapstructure:"addr"`
	Password string        `mapstructure:"password"`
	DB       int           `mapstructure:"db"`
	Prefix   string        `mapstructure:"prefix"`
	TTL      time.Duration `mapstructure:"ttl"`
}

// SourcesConfig groups the upstream data source clients.
type SourcesConfig struct {
	Cactus CactusConfig `mapstructure:"cactus"`
	USDA   USDAConfig   `mapstructure:"usda"`
}

// CactusConfig configures the NCI CACTUS chemical identifier resolver.
type CactusConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// USDAConfig configures the USDA FoodData Central client.
type USDAConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	APIKey  string        `mapstructure:"api_key"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// ModelConfig locates the classifier artifact bundle.  Source selects the
// backing store: "local" reads the three JSON artifacts from Dir, "minio"
// fetches them from the configured bucket.
type ModelConfig struct {
	Source string      `mapstructure:"source"`
	Dir    string      `mapstructure:"dir"`
	MinIO  MinIOConfig `mapstructure:"minio"`
}

// MinIOConfig holds object storage connection parameters for artifact
// retrieval.
type MinIOConfig struct {
	Endpoint  string `mapstructure:"endpoint"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
	Bucket    string `mapstructure:"bucket"`
	UseSSL    bool   `mapstructure:"use_ssl"`
}

// FallbackConfig tunes the rule-based fallback scorer used when the model is
// unavailable.  OverrideProbability is the chance that the deterministic rule
// outcome is replaced by a random label; set it to 0 for fully deterministic
// fallback behaviour.
type FallbackConfig struct {
	OverrideProbability float64 `mapstructure:"override_probability"`
}

// Validate checks the configuration for values that would prevent the
// service from operating.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("config: server.port must be in (0, 65535], got %d", c.Server.Port)
	}
	switch c.Model.Source {
	case "local", "minio":
	default:
		return fmt.Errorf("config: model.source must be \"local\" or \"minio\", got %q", c.Model.Source)
	}
	if c.Model.Source == "local" && c.Model.Dir == "" {
		return fmt.Errorf("config: model.dir is required when model.source is \"local\"")
	}
	if c.Model.Source == "minio" && c.Model.MinIO.Bucket == "" {
		return fmt.Errorf("config: model.minio.bucket is required when model.source is \"minio\"")
	}
	if p := c.Fallback.OverrideProbability; p < 0 || p > 1 {
		return fmt.Errorf("config: fallback.override_probability must be in [0, 1], got %v", p)
	}
	if c.Sources.Cactus.BaseURL == "" {
		return fmt.Errorf("config: sources.cactus.base_url is required")
	}
	if c.Sources.USDA.BaseURL == "" {
		return fmt.Errorf("config: sources.usda.base_url is required")
	}
	if c.Redis.Enabled && c.Redis.Addr == "" {
		return fmt.Errorf("config: redis.addr is required when redis.enabled is true")
	}
	return nil
}
