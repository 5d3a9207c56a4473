package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the application configuration
type Config struct {
	Strava   StravaConfig   `json:"strava"`
	Display  DisplayConfig  `json:"display"`
	Training TrainingConfig `json:"training"`
	Logging  LoggingConfig  `json:"logging"`
}

// StravaConfig holds Strava API credentials.
// Both fields empty means race import is disabled.
type StravaConfig struct {
	ClientID     string `json:"client_id"`
	ClientSecret string `json:"client_secret"`
}

// DisplayConfig holds display preferences
type DisplayConfig struct {
	DistanceUnit string `json:"distance_unit"`
	PaceUnit     string `json:"pace_unit"`
}

// TrainingConfig holds settings for pace and prediction calculations
type TrainingConfig struct {
	VDOT       float64 `json:"vdot"`        // manual override; 0 means derive from races
	RecentDays int     `json:"recent_days"` // races older than this are ignored
}

// LoggingConfig holds log settings
type LoggingConfig struct {
	Level string `json:"level"`
	File  string `json:"file"`
}

// ErrNoConfig is returned when the config file doesn't exist
var ErrNoConfig = errors.New("config file not found")

const (
	exampleClientID     = "YOUR_CLIENT_ID"
	exampleClientSecret = "YOUR_CLIENT_SECRET"
)

// DefaultConfig returns the default configuration
func DefaultConfig() Config {
	return Config{
		Display: DisplayConfig{
			DistanceUnit: "km",
			PaceUnit:     "min/km",
		},
		Training: TrainingConfig{
			RecentDays: 365,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads the configuration from ~/.runpace/config.json
func Load() (*Config, error) {
	path, err := getConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFile(path)
}

// LoadFile reads the configuration from path and fills in defaults
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, ErrNoConfig
	}
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.Display.DistanceUnit == "" {
		c.Display.DistanceUnit = defaults.Display.DistanceUnit
	}
	if c.Display.PaceUnit == "" {
		c.Display.PaceUnit = defaults.Display.PaceUnit
	}
	if c.Training.RecentDays == 0 {
		c.Training.RecentDays = defaults.Training.RecentDays
	}
	if c.Logging.Level == "" {
		c.Logging.Level = defaults.Logging.Level
	}
}

// Save writes the configuration to ~/.runpace/config.json
func Save(cfg *Config) error {
	path, err := getConfigPath()
	if err != nil {
		return err
	}
	return SaveFile(path, cfg)
}

// SaveFile writes the configuration to path, creating its directory
func SaveFile(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// CreateExample creates an example config file if none exists
func CreateExample() error {
	path, err := getConfigPath()
	if err != nil {
		return err
	}

	if _, err := os.Stat(path); err == nil {
		return nil // Config exists, don't overwrite
	}

	example := DefaultConfig()
	example.Strava = StravaConfig{
		ClientID:     exampleClientID,
		ClientSecret: exampleClientSecret,
	}

	return SaveFile(path, &example)
}

// StravaEnabled reports whether real Strava credentials are configured
func (c *Config) StravaEnabled() bool {
	id, secret := c.Strava.ClientID, c.Strava.ClientSecret
	return id != "" && id != exampleClientID && secret != "" && secret != exampleClientSecret
}

// Validate checks the config for values the app cannot work with
func (c *Config) Validate() error {
	// Credentials are optional, but half a pair is a mistake
	hasID := c.Strava.ClientID != "" && c.Strava.ClientID != exampleClientID
	hasSecret := c.Strava.ClientSecret != "" && c.Strava.ClientSecret != exampleClientSecret
	if hasID != hasSecret {
		return errors.New("strava.client_id and strava.client_secret must be set together - get them from https://www.strava.com/settings/api")
	}

	if c.Display.DistanceUnit != "" && c.Display.DistanceUnit != "km" && c.Display.DistanceUnit != "mi" {
		return fmt.Errorf("display.distance_unit must be \"km\" or \"mi\", got %q", c.Display.DistanceUnit)
	}
	if c.Display.PaceUnit != "" && c.Display.PaceUnit != "min/km" && c.Display.PaceUnit != "min/mi" {
		return fmt.Errorf("display.pace_unit must be \"min/km\" or \"min/mi\", got %q", c.Display.PaceUnit)
	}

	if c.Training.VDOT < 0 {
		return fmt.Errorf("training.vdot must not be negative, got %v", c.Training.VDOT)
	}
	if c.Training.RecentDays < 0 {
		return fmt.Errorf("training.recent_days must not be negative, got %d", c.Training.RecentDays)
	}

	return nil
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// GetConfigDir returns the path to the config directory
func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".runpace"), nil
}
