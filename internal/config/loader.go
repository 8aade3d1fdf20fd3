package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

const envPrefix = "DFI"

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 15*time.Second)
	v.SetDefault("server.write_timeout", 30*time.Second)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.prefix", "dfi")
	v.SetDefault("redis.ttl", 24*time.Hour)

	v.SetDefault("sources.cactus.base_url", "https://cactus.nci.nih.gov/chemical/structure")
	v.SetDefault("sources.cactus.timeout", 5*time.Second)
	v.SetDefault("sources.usda.base_url", "https://api.nal.usda.gov/fdc/v1")
	v.SetDefault("sources.usda.api_key", "DEMO_KEY")
	v.SetDefault("sources.usda.timeout", 8*time.Second)

	v.SetDefault("model.source", "local")
	v.SetDefault("model.dir", "./artifacts")
	v.SetDefault("model.minio.use_ssl", false)

	v.SetDefault("fallback.override_probability", 0.30)
}

func newViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

func unmarshal(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal failed: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Load reads configuration from the given YAML file, applies environment
// overrides and validates the result.  An empty path loads defaults plus
// environment only.
func Load(path string) (*Config, error) {
	v := newViper()
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	}
	return unmarshal(v)
}

// LoadFromEnv builds a configuration from defaults and environment variables
// alone, without a config file.
func LoadFromEnv() (*Config, error) {
	return Load("")
}

// Watch loads the configuration from path and invokes onChange with the
// re-parsed configuration whenever the file changes on disk.  Changes that
// fail to parse or validate are ignored and the previous configuration stays
// in effect.
func Watch(path string, onChange func(*Config)) (*Config, error) {
	v := newViper()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg, err := unmarshal(v)
	if err != nil {
		return nil, err
	}
	v.OnConfigChange(func(_ fsnotify.Event) {
		next, err := unmarshal(v)
		if err != nil {
			return
		}
		onChange(next)
	})
	v.WatchConfig()
	return cfg, nil
}
