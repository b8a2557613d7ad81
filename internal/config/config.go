package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// DefaultOutDir is the output directory used when none is configured.
const DefaultOutDir = "results"

// Config represents the application configuration structure.
// It contains settings for the environment, the reverse-WHOIS provider, the
// outbound HTTP client, WHOIS lookups and the output directory.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`

	// Whoxy contains the reverse-WHOIS provider settings
	Whoxy struct {
		// APIKey authenticates against the Whoxy API; empty means WHOIS-only mode
		APIKey string `env:"API_KEY_WHOXY" yaml:"apiKey"`
		// BaseURL is the Whoxy API endpoint
		BaseURL string `env:"WHOXY_BASE_URL" env-default:"https://api.whoxy.com/" yaml:"baseUrl"`
	} `yaml:"whoxy"`

	// HTTP contains the outbound HTTP client settings
	HTTP struct {
		// Timeout bounds a single request attempt
		Timeout time.Duration `env:"HTTP_TIMEOUT" env-default:"15s" yaml:"timeout"`
		// MaxRetries is the number of retries after the first attempt
		MaxRetries int `env:"HTTP_MAX_RETRIES" env-default:"3" yaml:"maxRetries"`
		// BackoffBase is the delay before the first retry; it doubles on each retry
		BackoffBase time.Duration `env:"HTTP_BACKOFF_BASE" env-default:"500ms" yaml:"backoffBase"`
	} `yaml:"http"`

	// WhoisTimeout bounds a single WHOIS lookup
	WhoisTimeout time.Duration `env:"WHOIS_TIMEOUT" env-default:"30s" yaml:"whoisTimeout"`

	// OutDir is the directory holding result files and the domain lists
	OutDir string `env:"OUT_DIR" env-default:"results" yaml:"outDir"`
}

// HasAPIKey reports whether reverse-WHOIS queries can be issued.
func (c *Config) HasAPIKey() bool { return c.Whoxy.APIKey != "" }

// Validate rejects values no run can work with.
func (c *Config) Validate() error {
	switch {
	case c.HTTP.Timeout <= 0:
		return fmt.Errorf("http timeout must be positive, got %s", c.HTTP.Timeout)
	case c.HTTP.MaxRetries < 0:
		return fmt.Errorf("http max retries must not be negative, got %d", c.HTTP.MaxRetries)
	case c.HTTP.BackoffBase <= 0:
		return fmt.Errorf("http backoff base must be positive, got %s", c.HTTP.BackoffBase)
	case c.WhoisTimeout <= 0:
		return fmt.Errorf("whois timeout must be positive, got %s", c.WhoisTimeout)
	case c.OutDir == "":
		return errors.New("output directory must not be empty")
	}

	return nil
}

// Load reads the configuration file at configPath and then the environment,
// which takes precedence. YAML, JSON, TOML and EDN files are decoded into the
// struct; any other file is read as a dotenv file whose variables never
// override ones already set. A missing file is not an error: the environment
// and the defaults are used alone.
func Load(configPath string) (*Config, error) {
	var cfg Config

	exists := false
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			exists = true
		} else if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("could not stat config: %w", err)
		}
	}

	var err error
	switch {
	case !exists:
		err = cleanenv.ReadEnv(&cfg)
	case isStructured(configPath):
		err = cleanenv.ReadConfig(configPath, &cfg)
	default:
		if err = godotenv.Load(configPath); err != nil {
			return nil, fmt.Errorf("could not read env file: %w", err)
		}
		err = cleanenv.ReadEnv(&cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	return &cfg, nil
}

func isStructured(path string) bool {
	switch filepath.Ext(path) {
	case ".yaml", ".yml", ".json", ".toml", ".edn":
		return true
	}

	return false
}
