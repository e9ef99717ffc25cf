package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the configuration for the application.
type Config struct {
	DatabasePath string `yaml:"database_path"`
	Port         string `yaml:"port"`

	JWTSecret     string        `yaml:"jwt_secret"`
	JWTExpiration time.Duration `yaml:"jwt_expiration"`

	LogLevel       string `yaml:"log_level"`
	LogDevelopment bool   `yaml:"log_development"`

	// Recipe import (optional)
	GeminiAPIKey string `yaml:"gemini_api_key"`
	GeminiModel  string `yaml:"gemini_model"`

	// Telegram Config (optional, used for messages to the admin)
	TelegramBotToken string `yaml:"telegram_bot_token"`
	AdminTelegramID  int64  `yaml:"admin_telegram_id"`
}

const (
	defaultDatabasePath  = "data/weeks-worth.db"
	defaultPort          = "8080"
	defaultJWTExpiration = 2 * time.Hour
	defaultLogLevel      = "info"
	defaultGeminiModel   = "gemini-1.5-flash"
)

// NewFromEnv creates a new Config object from environment variables.
// When WEEKS_WORTH_CONFIG points to a YAML file, its values are loaded
// first and environment variables take precedence over them.
func NewFromEnv() (*Config, error) {
	cfg := &Config{}

	if path := os.Getenv("WEEKS_WORTH_CONFIG"); path != "" {
		fileCfg, err := LoadFile(path)
		if err != nil {
			return nil, err
		}
		cfg = fileCfg
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	cfg.applyDefaults()

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable not set")
	}

	return cfg, nil
}

// LoadFile reads a YAML configuration file.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return &cfg, nil
}

func (c *Config) applyEnvOverrides() error {
	if v := os.Getenv("DATABASE_PATH"); v != "" {
		c.DatabasePath = v
	}
	if v := os.Getenv("PORT"); v != "" {
		c.Port = v
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		c.JWTSecret = v
	}
	if v := os.Getenv("JWT_EXPIRATION"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid JWT_EXPIRATION %q: %w", v, err)
		}
		c.JWTExpiration = d
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv("LOG_DEVELOPMENT"); v != "" {
		dev, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid LOG_DEVELOPMENT %q: %w", v, err)
		}
		c.LogDevelopment = dev
	}
	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		c.GeminiAPIKey = v
	}
	if v := os.Getenv("GEMINI_MODEL"); v != "" {
		c.GeminiModel = v
	}
	if v := os.Getenv("TELEGRAM_BOT_TOKEN"); v != "" {
		c.TelegramBotToken = v
	}
	if v := os.Getenv("ADMIN_TELEGRAM_ID"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid ADMIN_TELEGRAM_ID %q: %w", v, err)
		}
		c.AdminTelegramID = id
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.DatabasePath == "" {
		c.DatabasePath = defaultDatabasePath
	}
	if c.Port == "" {
		c.Port = defaultPort
	}
	if c.JWTExpiration <= 0 {
		c.JWTExpiration = defaultJWTExpiration
	}
	if c.LogLevel == "" {
		c.LogLevel = defaultLogLevel
	}
	if c.GeminiModel == "" {
		c.GeminiModel = defaultGeminiModel
	}
}

// ImportEnabled reports whether recipe import from URLs can run.
func (c *Config) ImportEnabled() bool {
	return c.GeminiAPIKey != ""
}

// MessagesEnabled reports whether messages to the admin can be delivered.
func (c *Config) MessagesEnabled() bool {
	return c.TelegramBotToken != "" && c.AdminTelegramID != 0
}
