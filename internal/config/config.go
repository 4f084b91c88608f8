// Package config provides application configuration management.
// The search plan comes from a JSON settings file; ambient settings
// (logging, output, browser) come from environment variables with
// support for .env files.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/memoryleak07/GFScraper/internal/domain"
	"github.com/memoryleak07/GFScraper/internal/infrastructure/logger"
)

// DefaultSettingsPath is where the settings file is looked up when no
// path is given on the command line.
const DefaultSettingsPath = "settings.json"

// Config holds all application configuration.
type Config struct {
	Logging logger.Config
	Output  OutputConfig
	Browser BrowserConfig

	// Search is the validated combination space for this run,
	// loaded from the settings file.
	Search domain.SearchPlan
}

// OutputConfig holds result artifact settings.
type OutputConfig struct {
	// Dir is the directory results files are written to
	Dir string `env:"RESULTS_DIR" envDefault:"results"`
}

// BrowserConfig holds browser session settings.
type BrowserConfig struct {
	// Headless runs the browser without a visible window
	Headless bool `env:"BROWSER_HEADLESS" envDefault:"true"`

	// UserAgent overrides the browser user agent when non-empty
	UserAgent string `env:"BROWSER_USER_AGENT"`
}

// Load reads ambient configuration from environment variables and the
// search plan from the JSON settings file at settingsPath. A missing
// settings file is bootstrapped with a default template. The returned
// plan is validated; a malformed plan fails here, before any scraping
// starts.
func Load(settingsPath string) (*Config, error) {
	// Load .env file if it exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, using environment variables")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	plan, err := loadSettings(settingsPath)
	if err != nil {
		return nil, err
	}
	plan.SetDefaults()
	if err := plan.Validate(); err != nil {
		return nil, err
	}
	cfg.Search = *plan

	return cfg, nil
}

// MustLoad loads configuration or panics on error.
// Use this in main() where configuration is required to start.
func MustLoad(settingsPath string) *Config {
	cfg, err := Load(settingsPath)
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return cfg
}

// ResultsFilePath builds the timestamped CSV path for this run, named
// after the airport lists, e.g. results/FCO-NAPtoMDE_20231001120000.csv.
func (c *Config) ResultsFilePath(now time.Time) string {
	prefix := strings.Join(c.Search.FromAirports, "-") + "to" + strings.Join(c.Search.ToAirports, "-")
	filename := fmt.Sprintf("%s_%s.csv", prefix, now.Format("20060102150405"))
	return filepath.Join(c.Output.Dir, filename)
}

// loadSettings reads and decodes the settings file. When the file does
// not exist, a default template is written in its place and used, so a
// first run always leaves an editable settings file behind.
func loadSettings(path string) (*domain.SearchPlan, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Warn().Str("path", path).Msg("Settings file not found, writing default template")
		if err := WriteDefaultSettings(path); err != nil {
			return nil, err
		}
		plan := DefaultSearchPlan()
		return &plan, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read settings file %s: %w", path, err)
	}

	plan := &domain.SearchPlan{}
	if err := json.Unmarshal(data, plan); err != nil {
		return nil, fmt.Errorf("%w: settings file %s is not valid JSON: %v", domain.ErrInvalidConfig, path, err)
	}
	return plan, nil
}

// DefaultSearchPlan returns the settings template written on first run.
// The values are a sample the operator is expected to edit.
func DefaultSearchPlan() domain.SearchPlan {
	return domain.SearchPlan{
		FromAirports:   []string{"FCO", "NAP"},
		ToAirports:     []string{"MDE", "BOG", "CTG"},
		OutboundStart:  domain.NewDate(2023, time.October, 1),
		DeltaDays:      20,
		FlexDays:       4,
		LastDate:       domain.NewDate(2024, time.February, 15),
		FastMode:       false,
		TimeoutSeconds: 10,
	}
}

// WriteDefaultSettings writes the default settings template to path.
func WriteDefaultSettings(path string) error {
	plan := DefaultSearchPlan()
	data, err := json.MarshalIndent(plan, "", "    ")
	if err != nil {
		return fmt.Errorf("encode default settings: %w", err)
	}
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create settings directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write default settings %s: %w", path, err)
	}
	return nil
}
