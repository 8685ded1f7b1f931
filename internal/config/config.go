package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config holds the application configuration
type Config struct {
	Detector DetectorConfig `json:"detector"`
	Catalog  CatalogConfig  `json:"catalog"`
	Output   OutputConfig   `json:"output"`
}

// DetectorConfig holds configuration for viewport detection
type DetectorConfig struct {
	TransparentMax uint8 `json:"transparent_max"`
	SolidMin       uint8 `json:"solid_min"`
	MaxMaskDim     int   `json:"max_mask_dim"`
}

// CatalogConfig holds configuration for catalog building
type CatalogConfig struct {
	ShadowDirNames []string `json:"shadow_dir_names"`
	Extensions     []string `json:"extensions"`
	Workers        int      `json:"workers"`
}

// OutputConfig holds configuration for catalog output
type OutputConfig struct {
	Path   string `json:"path"`
	Format string `json:"format"`
	Pretty bool   `json:"pretty"`
}

// Default returns a configuration with default values
func Default() *Config {
	return &Config{
		Detector: DetectorConfig{
			TransparentMax: 10,
			SolidMin:       200,
			MaxMaskDim:     2000,
		},
		Catalog: CatalogConfig{
			ShadowDirNames: []string{"device with shadow", "device with shadows"},
			Extensions:     []string{".png"},
			Workers:        0, // 0 means one worker per CPU
		},
		Output: OutputConfig{
			Path:   "bezels/catalog.json",
			Format: "json",
			Pretty: false,
		},
	}
}

// LoadFromFile loads configuration from a JSON file
func LoadFromFile(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := Default()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveToFile saves configuration to a JSON file
func (c *Config) SaveToFile(filename string) error {
	dir := filepath.Dir(filename)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Detector.TransparentMax >= c.Detector.SolidMin {
		return fmt.Errorf("detector.transparent_max must be below detector.solid_min")
	}

	if c.Detector.MaxMaskDim < 1 {
		return fmt.Errorf("detector.max_mask_dim must be positive")
	}

	if c.Catalog.Workers < 0 {
		return fmt.Errorf("catalog.workers cannot be negative")
	}

	if len(c.Catalog.Extensions) == 0 {
		return fmt.Errorf("catalog.extensions cannot be empty")
	}

	if c.Output.Format != "json" && c.Output.Format != "yaml" {
		return fmt.Errorf("output.format must be json or yaml")
	}

	return nil
}

// GetConfigPath returns the default configuration file path
func GetConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "./config.json"
	}
	return filepath.Join(home, ".config", "bezel-catalog", "config.json")
}
