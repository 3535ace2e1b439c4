package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Pantry assistant specifics
	PantryStore PantryStoreConfig
	Skill       SkillConfig
	Webhook     WebhookConfig
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

// PantryStoreConfig points at the external pantry CRUD API.
type PantryStoreConfig struct {
	URL         string
	AccessToken string
	Timeout     time.Duration
}

// SkillConfig holds voice-skill behavior knobs.
type SkillConfig struct {
	PageSize int    // items spoken per list page
	AppID    string // expected application id on inbound envelopes (empty disables the check)
}

type WebhookConfig struct {
	Enabled            bool
	TimestampTolerance time.Duration // max inbound request age
	RateLimitPerMin    int
	DedupSize          int // replay-cache capacity
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

	// Pantry store
	cfg.PantryStore.URL = viper.GetString("pantry_store.url")
	cfg.PantryStore.AccessToken = viper.GetString("pantry_store.access_token")
	cfg.PantryStore.Timeout = viper.GetDuration("pantry_store.timeout")
	if storeURL := viper.GetString("pantry_store_url"); storeURL != "" {
		cfg.PantryStore.URL = storeURL
	}
	if storeToken := viper.GetString("pantry_store_access_token"); storeToken != "" {
		cfg.PantryStore.AccessToken = storeToken
	}
	if cfg.PantryStore.URL == "" {
		return nil, fmt.Errorf("pantry_store.url is required")
	}

	// Skill
	cfg.Skill.PageSize = viper.GetInt("skill.page_size")
	cfg.Skill.AppID = viper.GetString("skill.app_id")
	if cfg.Skill.PageSize <= 0 {
		return nil, fmt.Errorf("skill.page_size must be positive, got %d", cfg.Skill.PageSize)
	}

	// Webhook verification
	cfg.Webhook.Enabled = viper.GetBool("webhook.enabled")
	cfg.Webhook.TimestampTolerance = viper.GetDuration("webhook.timestamp_tolerance")
	cfg.Webhook.RateLimitPerMin = viper.GetInt("webhook.rate_limit_per_min")
	cfg.Webhook.DedupSize = viper.GetInt("webhook.dedup_size")

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
	viper.SetDefault("pantry_store.timeout", "10s")
	viper.SetDefault("skill.page_size", 5)
	viper.SetDefault("webhook.enabled", true)
	viper.SetDefault("webhook.timestamp_tolerance", "150s")
	viper.SetDefault("webhook.rate_limit_per_min", 60)
	viper.SetDefault("webhook.dedup_size", 1000)
}
