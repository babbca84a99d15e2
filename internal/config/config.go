package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all runtime configuration, loaded from YAML with
// environment variable overrides on top.
type Config struct {
	Env    string       `yaml:"env"`
	Server ServerConfig `yaml:"server"`
	DB     DBConfig     `yaml:"database"`
	Redis  RedisConfig  `yaml:"redis"`
	Auth   AuthConfig   `yaml:"auth"`
	IGDB   IGDBConfig   `yaml:"igdb"`
	Cron    CronConfig    `yaml:"cron"`
	Site    SiteConfig    `yaml:"site"`
	Storage StorageConfig `yaml:"storage"`
}

// ServerConfig HTTP server settings
type ServerConfig struct {
	Port         int      `yaml:"port"`
	AllowOrigins []string `yaml:"allow_origins"`
}

// DBConfig MySQL connection settings
type DBConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
}

// DSN builds the MySQL DSN string
func (d DBConfig) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
		d.User, d.Password, d.Host, d.Port, d.Name)
}

// RedisConfig cache settings
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// AuthConfig identity token verification settings
type AuthConfig struct {
	// JWTSecret verifies the identity provider's session tokens.
	JWTSecret string `yaml:"jwt_secret"`
	// CronSecret guards the cron-style maintenance endpoints.
	CronSecret string `yaml:"cron_secret"`
}

// IGDBConfig external game metadata API settings
type IGDBConfig struct {
	ClientID     string `yaml:"client_id"`
	ClientSecret string `yaml:"client_secret"`
}

// CronConfig scheduled maintenance settings
type CronConfig struct {
	// NotificationSweepHourUTC is the fixed UTC hour for the daily
	// notification expiry sweep.
	NotificationSweepHourUTC int `yaml:"notification_sweep_hour_utc"`
}

// SiteConfig public site settings used by the sitemap endpoint
type SiteConfig struct {
	BaseURL string `yaml:"base_url"`
}

// StorageConfig file storage provider settings
type StorageConfig struct {
	// APIKey authenticates against the provider's management API,
	// used by the orphaned-upload sweep.
	APIKey string `yaml:"api_key"`
}

// Load reads the YAML config file and applies env var overrides.
func Load(path string) (*Config, error) {
	cfg := &Config{
		Env: "local",
		Server: ServerConfig{
			Port:         8080,
			AllowOrigins: []string{"http://localhost:3000"},
		},
		DB:    DBConfig{Host: "localhost", Port: 3306, User: "root", Name: "thinkribbon"},
		Redis: RedisConfig{Addr: "localhost:6379"},
		Cron:  CronConfig{NotificationSweepHourUTC: 4},
		Site:  SiteConfig{BaseURL: "https://thinkribbon.com"},
	}

	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config: failed to parse %s: %w", path, err)
		}
	}

	applyEnvOverrides(cfg)
	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("APP_ENV"); v != "" {
		cfg.Env = v
	}
	if v := os.Getenv("PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = p
		}
	}
	if v := os.Getenv("DB_HOST"); v != "" {
		cfg.DB.Host = v
	}
	if v := os.Getenv("DB_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			cfg.DB.Port = p
		}
	}
	if v := os.Getenv("DB_USER"); v != "" {
		cfg.DB.User = v
	}
	if v := os.Getenv("DB_PASSWORD"); v != "" {
		cfg.DB.Password = v
	}
	if v := os.Getenv("DB_NAME"); v != "" {
		cfg.DB.Name = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		cfg.Redis.Addr = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		cfg.Redis.Password = v
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		cfg.Auth.JWTSecret = v
	}
	if v := os.Getenv("CRON_SECRET"); v != "" {
		cfg.Auth.CronSecret = v
	}
	if v := os.Getenv("IGDB_CLIENT_ID"); v != "" {
		cfg.IGDB.ClientID = v
	}
	if v := os.Getenv("IGDB_CLIENT_SECRET"); v != "" {
		cfg.IGDB.ClientSecret = v
	}
	if v := os.Getenv("SITE_BASE_URL"); v != "" {
		cfg.Site.BaseURL = v
	}
	if v := os.Getenv("STORAGE_API_KEY"); v != "" {
		cfg.Storage.APIKey = v
	}
}

// IsDev reports whether the app runs in a development environment
func (c *Config) IsDev() bool {
	return c.Env == "local" || c.Env == "development" || c.Env == "dev"
}

// ShutdownTimeout how long to wait for in-flight requests on shutdown
const ShutdownTimeout = 10 * time.Second
