package config

import (
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Server struct {
		Port int `yaml:"port"`
	} `yaml:"server"`
	DataSource struct {
		Provider string `yaml:"provider"` // "yahoo" or "rest"
		BaseURL  string `yaml:"base_url"`
		APIKey   string `yaml:"api_key"`
	} `yaml:"data_source"`
	Cache struct {
		RedisAddr     string `yaml:"redis_addr"`
		RedisPassword string `yaml:"redis_password"`
		RedisDB       int    `yaml:"redis_db"`
		TTLMinutes    int    `yaml:"ttl_minutes"`
	} `yaml:"cache"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Telegram struct {
		BotToken string `yaml:"bot_token"`
		ChatID   string `yaml:"chat_id"`
	} `yaml:"telegram"`
	Watchlist []string `yaml:"watchlist"`
	Schedule  struct {
		ScanCron     string `yaml:"scan_cron"`
		ScreenerCron string `yaml:"screener_cron"`
	} `yaml:"schedule"`
	Screener struct {
		Universe        []string `yaml:"universe"`
		MinVolumeFactor float64  `yaml:"min_volume_factor"`
	} `yaml:"screener"`
	HistoryDays int    `yaml:"history_days"`
	Proxy       string `yaml:"proxy"`
}

// envOverrides are applied on top of the YAML file when set.
type envOverrides struct {
	Port          int    `envconfig:"PORT"`
	Provider      string `envconfig:"DATA_PROVIDER"`
	BaseURL       string `envconfig:"DATA_BASE_URL"`
	APIKey        string `envconfig:"DATA_API_KEY"`
	RedisAddr     string `envconfig:"REDIS_ADDR"`
	RedisPassword string `envconfig:"REDIS_PASSWORD"`
	SQLitePath    string `envconfig:"SQLITE_PATH"`
	TelegramToken string `envconfig:"TELEGRAM_BOT_TOKEN"`
	TelegramChat  string `envconfig:"TELEGRAM_CHAT_ID"`
	ScanCron      string `envconfig:"SCAN_CRON"`
	Proxy         string `envconfig:"HTTPS_PROXY"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides and defaults.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	var env envOverrides
	if err := envconfig.Process("", &env); err != nil {
		return nil, fmt.Errorf("process env overrides: %w", err)
	}
	if env.Port != 0 {
		cfg.Server.Port = env.Port
	}
	if env.Provider != "" {
		cfg.DataSource.Provider = env.Provider
	}
	if env.BaseURL != "" {
		cfg.DataSource.BaseURL = env.BaseURL
	}
	if env.APIKey != "" {
		cfg.DataSource.APIKey = env.APIKey
	}
	if env.RedisAddr != "" {
		cfg.Cache.RedisAddr = env.RedisAddr
	}
	if env.RedisPassword != "" {
		cfg.Cache.RedisPassword = env.RedisPassword
	}
	if env.SQLitePath != "" {
		cfg.Database.SQLitePath = env.SQLitePath
	}
	if env.TelegramToken != "" {
		cfg.Telegram.BotToken = env.TelegramToken
	}
	if env.TelegramChat != "" {
		cfg.Telegram.ChatID = env.TelegramChat
	}
	if env.ScanCron != "" {
		cfg.Schedule.ScanCron = env.ScanCron
	}
	if env.Proxy != "" {
		cfg.Proxy = env.Proxy
	}

	// Defaults
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.DataSource.Provider == "" {
		cfg.DataSource.Provider = "yahoo"
	}
	if cfg.Cache.TTLMinutes == 0 {
		cfg.Cache.TTLMinutes = 15
	}
	if cfg.Schedule.ScanCron == "" {
		cfg.Schedule.ScanCron = "0 30 17 * * 1-5"
	}
	if cfg.Screener.MinVolumeFactor == 0 {
		cfg.Screener.MinVolumeFactor = 1.5
	}
	if cfg.HistoryDays == 0 {
		cfg.HistoryDays = 500
	}

	return cfg, nil
}

// Validate checks that all required fields are set and consistent.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port %d out of range", c.Server.Port)
	}
	switch c.DataSource.Provider {
	case "yahoo":
	case "rest":
		if c.DataSource.BaseURL == "" {
			return fmt.Errorf("data_source.base_url is required for the rest provider")
		}
	default:
		return fmt.Errorf("data_source.provider %q not supported", c.DataSource.Provider)
	}
	if c.Telegram.BotToken != "" && c.Telegram.ChatID == "" {
		return fmt.Errorf("telegram.chat_id is required when a bot token is set")
	}
	if c.Screener.MinVolumeFactor <= 0 {
		return fmt.Errorf("screener.min_volume_factor must be positive")
	}
	if c.HistoryDays < 250 {
		return fmt.Errorf("history_days must cover at least 250 trading days")
	}
	return nil
}
