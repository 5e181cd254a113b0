package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const configFileEnv = "PAYCHECK_CONFIG_FILE"

type TaxEngineConfig struct {
	URL     string        `yaml:"url"`
	APIKey  string        `yaml:"api_key"`
	Timeout time.Duration `yaml:"timeout"`
}

type RateLimitConfig struct {
	Requests  int           `yaml:"requests"`
	Window    time.Duration `yaml:"window"`
	RedisAddr string        `yaml:"redis_addr"` // empty means in-process limiting
}

// Config holds the application configuration.
type Config struct {
	Port           string          `yaml:"port"`
	Stage          string          `yaml:"stage"`
	LogLevel       string          `yaml:"log_level"`
	DefaultTaxYear int             `yaml:"default_tax_year"`
	TaxEngine      TaxEngineConfig `yaml:"tax_engine"`
	RateLimit      RateLimitConfig `yaml:"rate_limit"`
}

func Default() Config {
	return Config{
		Port:           "8080",
		Stage:          "dev",
		LogLevel:       "info",
		DefaultTaxYear: time.Now().Year(),
		TaxEngine: TaxEngineConfig{
			Timeout: 15 * time.Second,
		},
		RateLimit: RateLimitConfig{
			Requests: 5,
			Window:   time.Minute,
		},
	}
}

// Load builds the configuration from defaults, an optional YAML file named by
// PAYCHECK_CONFIG_FILE, a .env file and finally the process environment.
func Load() (Config, error) {
	cfg := Default()

	// A missing .env file is fine.
	_ = godotenv.Load()

	if path := os.Getenv(configFileEnv); path != "" {
		if err := cfg.loadFile(path); err != nil {
			return Config{}, err
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() error {
	setString(&c.Port, "PORT")
	setString(&c.Stage, "STAGE")
	setString(&c.LogLevel, "LOG_LEVEL")
	setString(&c.TaxEngine.URL, "TAX_ENGINE_URL")
	setString(&c.TaxEngine.APIKey, "TAX_ENGINE_API_KEY")
	setString(&c.RateLimit.RedisAddr, "REDIS_ADDR")

	if err := setInt(&c.DefaultTaxYear, "DEFAULT_TAX_YEAR"); err != nil {
		return err
	}
	if err := setInt(&c.RateLimit.Requests, "RATE_LIMIT_REQUESTS"); err != nil {
		return err
	}
	if err := setDuration(&c.TaxEngine.Timeout, "TAX_ENGINE_TIMEOUT"); err != nil {
		return err
	}
	return setDuration(&c.RateLimit.Window, "RATE_LIMIT_WINDOW")
}

// Validate reports configuration that would prevent the service from working.
func (c Config) Validate() error {
	var errs []error
	if c.TaxEngine.URL == "" {
		errs = append(errs, errors.New("TAX_ENGINE_URL is not set"))
	}
	if c.RateLimit.Requests <= 0 {
		errs = append(errs, errors.New("rate limit requests must be positive"))
	}
	if c.RateLimit.Window <= 0 {
		errs = append(errs, errors.New("rate limit window must be positive"))
	}
	return errors.Join(errs...)
}

func setString(dst *string, key string) {
	if value := os.Getenv(key); value != "" {
		*dst = value
	}
}

func setInt(dst *int, key string) error {
	value := os.Getenv(key)
	if value == "" {
		return nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("invalid %s: %w", key, err)
	}
	*dst = n
	return nil
}

func setDuration(dst *time.Duration, key string) error {
	value := os.Getenv(key)
	if value == "" {
		return nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("invalid %s: %w", key, err)
	}
	*dst = d
	return nil
}
