package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	// Server
	Port            int    `yaml:"port"`
	CORSAllowOrigin string `yaml:"cors_allow_origin"`

	// Upstream
	AlphaVantageAPIKey     string `yaml:"alphavantage_api_key"`
	AlphaVantageBaseURL    string `yaml:"alphavantage_base_url"`
	UpstreamTimeoutSeconds int    `yaml:"upstream_timeout_seconds"`

	// Logging
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`

	// Archive
	ArchiveEnabled bool   `yaml:"archive_enabled"`
	DBHost         string `yaml:"db_host"`
	DBPort         int    `yaml:"db_port"`
	DBName         string `yaml:"db_name"`
	DBUser         string `yaml:"db_user"`
	DBPassword     string `yaml:"db_password"`
}

func Default() *Config {
	return &Config{
		Port:                   3000,
		CORSAllowOrigin:        "*",
		AlphaVantageBaseURL:    "https://www.alphavantage.co",
		UpstreamTimeoutSeconds: 10,
		LogLevel:               "info",
		LogFormat:              "console",
		DBHost:                 "localhost",
		DBPort:                 5432,
		DBName:                 "bellcurve",
	}
}

// Load reads .env (if present), then the YAML file named by CONFIG_FILE (if
// set), then the process environment. Later sources win.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := Default()
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}
	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(b, c); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() {
	c.Port = envInt("PORT", c.Port)
	c.CORSAllowOrigin = envStr("CORS_ALLOW_ORIGIN", c.CORSAllowOrigin)

	c.AlphaVantageAPIKey = envStr("ALPHAVANTAGE_API_KEY", c.AlphaVantageAPIKey)
	c.AlphaVantageBaseURL = envStr("ALPHAVANTAGE_BASE_URL", c.AlphaVantageBaseURL)
	c.UpstreamTimeoutSeconds = envInt("UPSTREAM_TIMEOUT_SECONDS", c.UpstreamTimeoutSeconds)

	c.LogLevel = envStr("LOG_LEVEL", c.LogLevel)
	c.LogFormat = envStr("LOG_FORMAT", c.LogFormat)

	c.ArchiveEnabled = envBool("ARCHIVE_ENABLED", c.ArchiveEnabled)
	c.DBHost = envStr("DB_HOST", c.DBHost)
	c.DBPort = envInt("DB_PORT", c.DBPort)
	c.DBName = envStr("DB_NAME", c.DBName)
	c.DBUser = envStr("DB_USER", c.DBUser)
	c.DBPassword = envStr("DB_PASSWORD", c.DBPassword)
}

func (c *Config) Validate() error {
	var errs []string

	if c.Port <= 0 || c.Port > 65535 {
		errs = append(errs, fmt.Sprintf("PORT %d is out of range", c.Port))
	}
	if c.UpstreamTimeoutSeconds <= 0 {
		errs = append(errs, "UPSTREAM_TIMEOUT_SECONDS must be positive")
	}
	if !strings.HasPrefix(c.AlphaVantageBaseURL, "http://") && !strings.HasPrefix(c.AlphaVantageBaseURL, "https://") {
		errs = append(errs, "ALPHAVANTAGE_BASE_URL must be an http(s) URL")
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Sprintf("LOG_LEVEL %q, expected debug|info|warn|error", c.LogLevel))
	}
	switch c.LogFormat {
	case "console", "json":
	default:
		errs = append(errs, fmt.Sprintf("LOG_FORMAT %q, expected console|json", c.LogFormat))
	}
	if c.ArchiveEnabled && c.DBUser == "" {
		errs = append(errs, "DB_USER is required when ARCHIVE_ENABLED=true")
	}

	if len(errs) > 0 {
		return errors.New("config validation failed:\n  " + strings.Join(errs, "\n  "))
	}
	return nil
}

// Warnings lists settings that are legal but probably unintended.
func (c *Config) Warnings() []string {
	var w []string
	if c.AlphaVantageAPIKey == "" {
		w = append(w, "ALPHAVANTAGE_API_KEY not set; upstream calls will be rejected")
	}
	if c.CORSAllowOrigin == "*" {
		w = append(w, "CORS_ALLOW_ORIGIN is *; any origin may call the API")
	}
	return w
}

func (c *Config) Print() {
	fmt.Println("=== Bell Curve API Configuration ===")
	fmt.Printf("Port: %d\n", c.Port)
	fmt.Printf("CORS Origin: %s\n", c.CORSAllowOrigin)
	fmt.Println("--------------------------------------")
	fmt.Printf("Upstream: %s\n", c.AlphaVantageBaseURL)
	fmt.Printf("  API Key: %s\n", boolLabel(c.AlphaVantageAPIKey != "", "configured", "not set"))
	fmt.Printf("  Timeout: %s\n", c.UpstreamTimeout())
	fmt.Println("--------------------------------------")
	fmt.Printf("Logging: level=%s format=%s\n", c.LogLevel, c.LogFormat)
	if c.ArchiveEnabled {
		fmt.Printf("Archive: enabled (%s:%d/%s)\n", c.DBHost, c.DBPort, c.DBName)
	} else {
		fmt.Println("Archive: disabled")
	}
	fmt.Println("======================================")
}

func (c *Config) UpstreamTimeout() time.Duration {
	return time.Duration(c.UpstreamTimeoutSeconds) * time.Second
}

func (c *Config) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName)
}

// --- helpers ---

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		v = strings.ToLower(v)
		return v == "true" || v == "1" || v == "yes"
	}
	return fallback
}

func boolLabel(cond bool, ifTrue, ifFalse string) string {
	if cond {
		return ifTrue
	}
	return ifFalse
}
