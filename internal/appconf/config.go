package appconf

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig wraps every validation failure returned by Load.
var ErrInvalidConfig = errors.New("invalid configuration")

const (
	SourceAPI  = "api"
	SourceGTFS = "gtfs"
)

// Config holds all the configuration settings for the application.
type Config struct {
	Port      int         `yaml:"port" validate:"gt=0,lte=65535"`
	Env       Environment `yaml:"env" validate:"oneof=development test production"`
	ApiKeys   []string    `yaml:"apiKeys" validate:"min=1,dive,required"`
	RateLimit int         `yaml:"rateLimit" validate:"gte=0"`
	LogLevel  string      `yaml:"logLevel" validate:"omitempty,oneof=debug info warn warning error"`
	Creator   string      `yaml:"creator" validate:"required"`
	Catalog   Catalog     `yaml:"catalog"`
}

// Catalog selects and configures the upstream source of lines, patterns and shapes.
type Catalog struct {
	Source     string `yaml:"source" validate:"oneof=api gtfs"`
	BaseURL    string `yaml:"baseURL" validate:"omitempty,url"`
	GtfsURL    string `yaml:"gtfsURL"`
	TimeoutMS  int    `yaml:"timeoutMS" validate:"gte=0"`
	MaxRetries int    `yaml:"maxRetries" validate:"gte=0,lte=10"`
}

// Timeout returns the per-request upstream timeout.
func (c Catalog) Timeout() time.Duration {
	return time.Duration(c.TimeoutMS) * time.Millisecond
}

// Default returns the configuration used when no file or override is present.
func Default() Config {
	return Config{
		Port:      4000,
		Env:       Development,
		ApiKeys:   []string{"test"},
		RateLimit: 100,
		LogLevel:  "info",
		Creator:   "linetrack",
		Catalog: Catalog{
			Source:     SourceAPI,
			BaseURL:    "https://api.carrismetropolitana.pt",
			TimeoutMS:  10000,
			MaxRetries: 3,
		},
	}
}

// LoadDotEnv loads .env files into the process environment. Missing files are ignored
// and variables already set are not overridden.
func LoadDotEnv(paths ...string) {
	for _, p := range paths {
		_ = godotenv.Load(p)
	}
}

// Load builds the configuration from defaults, an optional YAML file and
// LINETRACK_* environment variables, in that order, then validates it.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("error reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("error parsing config file: %w", err)
		}
	}

	applyEnv(&cfg, os.LookupEnv)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks struct constraints and the source-specific requirements.
func (c Config) Validate() error {
	v := validator.New()
	if err := v.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	switch c.Catalog.Source {
	case SourceAPI:
		if c.Catalog.BaseURL == "" {
			return fmt.Errorf("%w: catalog.baseURL is required for the api source", ErrInvalidConfig)
		}
	case SourceGTFS:
		if c.Catalog.GtfsURL == "" {
			return fmt.Errorf("%w: catalog.gtfsURL is required for the gtfs source", ErrInvalidConfig)
		}
	}
	return nil
}

type lookupFunc func(key string) (string, bool)

func applyEnv(cfg *Config, lookup lookupFunc) {
	if v, ok := lookup("LINETRACK_PORT"); ok {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Port = port
		}
	}
	if v, ok := lookup("LINETRACK_ENV"); ok {
		cfg.Env = EnvFlagToEnvironment(v)
	}
	if v, ok := lookup("LINETRACK_API_KEYS"); ok {
		cfg.ApiKeys = SplitList(v)
	}
	if v, ok := lookup("LINETRACK_RATE_LIMIT"); ok {
		if limit, err := strconv.Atoi(v); err == nil {
			cfg.RateLimit = limit
		}
	}
	if v, ok := lookup("LINETRACK_LOG_LEVEL"); ok {
		cfg.LogLevel = v
	}
	if v, ok := lookup("LINETRACK_CATALOG_SOURCE"); ok {
		cfg.Catalog.Source = v
	}
	if v, ok := lookup("LINETRACK_CATALOG_BASE_URL"); ok {
		cfg.Catalog.BaseURL = v
	}
	if v, ok := lookup("LINETRACK_GTFS_URL"); ok {
		cfg.Catalog.GtfsURL = v
	}
}

// SplitList splits a comma separated list, trimming blanks.
func SplitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
