package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	MongoURI string `yaml:"mongo_uri"`
	Port     string `yaml:"port"`
	DBName   string `yaml:"db_name"`

	Collections CollectionsConfig `yaml:"collections"`

	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`

	LogLevel       string `yaml:"log_level"`
	MetricsEnabled bool   `yaml:"metrics_enabled"`
}

type CollectionsConfig struct {
	Systems         string `yaml:"systems"`
	Vendors         string `yaml:"vendors"`
	AssetCategories string `yaml:"asset_categories"`
}

// LoadConfig builds the configuration from defaults, an optional YAML file
// pointed at by CONFIG_PATH, and environment variables. Environment
// variables win over the file.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		MongoURI: "mongodb://localhost:27017",
		Port:     "8080",
		DBName:   "asset_registry",
		Collections: CollectionsConfig{
			Systems:         "systems",
			Vendors:         "vendors",
			AssetCategories: "asset_categories",
		},
		ReadTimeout:     10 * time.Second,
		WriteTimeout:    10 * time.Second,
		ShutdownTimeout: 10 * time.Second,
		LogLevel:        "info",
		MetricsEnabled:  true,
	}

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	cfg.MongoURI = getEnv("MONGO_URI", cfg.MongoURI)
	cfg.Port = getEnv("PORT", cfg.Port)
	cfg.DBName = getEnv("DB_NAME", cfg.DBName)
	cfg.Collections.Systems = getEnv("COLLECTION_SYSTEMS", cfg.Collections.Systems)
	cfg.Collections.Vendors = getEnv("COLLECTION_VENDORS", cfg.Collections.Vendors)
	cfg.Collections.AssetCategories = getEnv("COLLECTION_ASSET_CATEGORIES", cfg.Collections.AssetCategories)
	cfg.ReadTimeout = getEnvDuration("SERVER_READ_TIMEOUT", cfg.ReadTimeout)
	cfg.WriteTimeout = getEnvDuration("SERVER_WRITE_TIMEOUT", cfg.WriteTimeout)
	cfg.ShutdownTimeout = getEnvDuration("SERVER_SHUTDOWN_TIMEOUT", cfg.ShutdownTimeout)
	cfg.LogLevel = getEnv("LOG_LEVEL", cfg.LogLevel)
	cfg.MetricsEnabled = getEnvBool("METRICS_ENABLED", cfg.MetricsEnabled)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.MongoURI == "" {
		return fmt.Errorf("MONGO_URI is required")
	}
	if c.DBName == "" {
		return fmt.Errorf("DB_NAME is required")
	}
	if c.Collections.Systems == "" || c.Collections.Vendors == "" || c.Collections.AssetCategories == "" {
		return fmt.Errorf("all collection names are required")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	valStr := os.Getenv(key)
	if valStr == "" {
		return fallback
	}
	val, err := strconv.ParseBool(valStr)
	if err != nil {
		return fallback
	}
	return val
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	valStr := os.Getenv(key)
	if valStr == "" {
		return fallback
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		d, err := time.ParseDuration(valStr)
		if err == nil {
			return d
		}
		return fallback
	}
	return time.Duration(val) * time.Second
}
