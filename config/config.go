package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Outline tracker specifics
	Upload UploadConfig
	Cache  CacheConfig
	CORS   CORSConfig

	RateLimitPerMin int
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type UploadConfig struct {
	MaxSizeBytes      int64
	AllowedExtensions []string
}

type CacheConfig struct {
	ParseEntries int
}

type CORSConfig struct {
	AllowedOrigins []string
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

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Upload policy
	cfg.Upload.MaxSizeBytes = viper.GetInt64("upload.max_size_bytes")
	cfg.Upload.AllowedExtensions = stringList("upload.allowed_extensions")

	// Parse cache
	cfg.Cache.ParseEntries = viper.GetInt("cache.parse_entries")

	// CORS
	cfg.CORS.AllowedOrigins = stringList("cors.allowed_origins")

	// Rate limiting
	cfg.RateLimitPerMin = viper.GetInt("rate_limit_per_min")

	if cfg.Upload.MaxSizeBytes <= 0 {
		return nil, fmt.Errorf("upload.max_size_bytes must be positive, got %d", cfg.Upload.MaxSizeBytes)
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("upload.max_size_bytes", 1<<20) // 1 MiB
	viper.SetDefault("upload.allowed_extensions", []string{".txt", ".md", ".markdown"})
	viper.SetDefault("cache.parse_entries", 128)
	viper.SetDefault("cors.allowed_origins", []string{"*"})
	viper.SetDefault("rate_limit_per_min", 60)
}

// stringList reads a key as a slice, splitting comma-separated values
// since viper might not parse an array seamlessly from env.
func stringList(key string) []string {
	if raw := viper.GetString(key); raw != "" && strings.Contains(raw, ",") {
		var items []string
		for _, item := range strings.Split(raw, ",") {
			item = strings.TrimSpace(item)
			if item != "" {
				items = append(items, item)
			}
		}
		return items
	}
	return viper.GetStringSlice(key)
}
