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

	// Voice Inbox specifics
	Extraction ExtractionConfig
	Review     ReviewConfig
	Defaults   DefaultsConfig
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

// ExtractionConfig tunes the transcript extraction engine.
type ExtractionConfig struct {
	Aggressive bool
	Timezone   string
}

// ReviewConfig controls the ephemeral review session store and the
// rate limit applied to extraction requests.
type ReviewConfig struct {
	SessionTTLMinutes int
	SessionCapacity   int
	RateLimitPerMin   int
}

// DefaultsConfig names the fallback containers confirmed drafts land in.
type DefaultsConfig struct {
	TaskListName   string
	NoteFolderName string
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

	// Voice Inbox specifics
	cfg.Extraction.Aggressive = viper.GetBool("extraction.aggressive")
	cfg.Extraction.Timezone = viper.GetString("extraction.timezone")
	if tz := viper.GetString("extraction_timezone"); tz != "" {
		cfg.Extraction.Timezone = tz
	}

	cfg.Review.SessionTTLMinutes = viper.GetInt("review.session_ttl_minutes")
	cfg.Review.SessionCapacity = viper.GetInt("review.session_capacity")
	cfg.Review.RateLimitPerMin = viper.GetInt("review.rate_limit_per_min")

	cfg.Defaults.TaskListName = viper.GetString("defaults.task_list_name")
	cfg.Defaults.NoteFolderName = viper.GetString("defaults.note_folder_name")

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

	viper.SetDefault("extraction.aggressive", true)
	viper.SetDefault("extraction.timezone", "UTC")
	viper.SetDefault("review.session_ttl_minutes", 30)
	viper.SetDefault("review.session_capacity", 1000)
	viper.SetDefault("review.rate_limit_per_min", 60)
	viper.SetDefault("defaults.task_list_name", "Inbox")
	viper.SetDefault("defaults.note_folder_name", "Inbox")
}
