package internal

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// OutputConfig controls how commands render status text.
type OutputConfig struct {
	Color    bool `json:"color"`
	Progress bool `json:"progress"`
}

// Config is cmd/famtree's own CLI configuration, distinct from
// layout.Config (which tunes the Layout Engine itself). Grounded on
// the same search-path/JSON-with-defaults shape as layout.LoadConfig.
type Config struct {
	Output     OutputConfig `json:"output"`
	ConfigPath string       `json:"-"` // the layout.Config file to pass through, if any
	LayoutPath string       `json:"layout_config_path"`
}

// DefaultConfig returns a Config with color and progress bars enabled.
func DefaultConfig() *Config {
	return &Config{
		Output: OutputConfig{Color: true, Progress: true},
	}
}

// LoadConfig loads a Config from a JSON file, searching the given path,
// then ./famtree-cli.json, then ~/.famtree/cli.json, falling back to
// DefaultConfig.
func LoadConfig(configPath string) (*Config, error) {
	if configPath != "" {
		return loadConfigFromFile(configPath)
	}
	if cfg, err := loadConfigFromFile("./famtree-cli.json"); err == nil {
		return cfg, nil
	}
	if home, err := os.UserHomeDir(); err == nil {
		if cfg, err := loadConfigFromFile(filepath.Join(home, ".famtree", "cli.json")); err == nil {
			return cfg, nil
		}
	}
	return DefaultConfig(), nil
}

func loadConfigFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("config file not found: %s", path)
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg := DefaultConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return cfg, nil
}
