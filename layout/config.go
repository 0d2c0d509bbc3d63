package layout

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/lesfleursdelanuitdev/famtree/types"
	"gopkg.in/yaml.v3"
)

// SortChildrenFunc orders a person's resolved children before hierarchy
// construction (spec §4.2 `sortChildrenFunction`).
type SortChildrenFunc func(a, b *types.Person) bool

// SortSpousesFunc orders a person's resolved spouses (`sortSpousesFunction`).
type SortSpousesFunc func(a, b *types.Person) bool

// ModifyTreeHierarchyFunc is invoked once per built hierarchy (ancestor,
// then descendant) before trimming, letting a caller prune or annotate
// nodes (spec §4.2 `modifyTreeHierarchy`).
type ModifyTreeHierarchyFunc func(root *hNode)

// PrivateCardsConfig controls §4.4 privacy marking.
type PrivateCardsConfig struct {
	// Condition returns true for privacy-sensitive persons.
	Condition func(p *types.Person) bool
}

// Config recognizes the keys of spec §4.2's configuration table.
type Config struct {
	NodeSeparation  float64 `json:"node_separation" yaml:"node_separation"`
	LevelSeparation float64 `json:"level_separation" yaml:"level_separation"`

	SingleParentEmptyCard bool `json:"single_parent_empty_card" yaml:"single_parent_empty_card"`
	IsHorizontal          bool `json:"is_horizontal" yaml:"is_horizontal"`
	OneLevelRels          bool `json:"one_level_rels" yaml:"one_level_rels"`

	AncestryDepth int `json:"ancestry_depth" yaml:"ancestry_depth"` // 0 = unlimited
	ProgenyDepth  int `json:"progeny_depth" yaml:"progeny_depth"`   // 0 = unlimited

	ShowSiblingsOfMain bool `json:"show_siblings_of_main" yaml:"show_siblings_of_main"`

	DuplicateBranchToggle  bool `json:"duplicate_branch_toggle" yaml:"duplicate_branch_toggle"`
	OnToggleOneCloseOthers bool `json:"on_toggle_one_close_others" yaml:"on_toggle_one_close_others"`

	SortChildrenFunction SortChildrenFunc        `json:"-" yaml:"-"`
	SortSpousesFunction  SortSpousesFunc         `json:"-" yaml:"-"`
	ModifyTreeHierarchy  ModifyTreeHierarchyFunc `json:"-" yaml:"-"`
	PrivateCardsConfig   *PrivateCardsConfig     `json:"-" yaml:"-"`

	// ToggleClock supplies the "timestamp" used by the duplicate-branch
	// toggle's sign+magnitude encoding (spec §4.3, §9). DefaultConfig
	// sets it to a counter that starts at 1 and increases by one per
	// call; the Store uses whatever clock its Config carries.
	ToggleClock func() int64 `json:"-" yaml:"-"`
}

// DefaultConfig returns a Config with the source's default geometry.
func DefaultConfig() *Config {
	return &Config{
		NodeSeparation:  250,
		LevelSeparation: 150,
		ToggleClock:     defaultToggleClock(),
	}
}

func defaultToggleClock() func() int64 {
	var n int64
	return func() int64 {
		n++
		return n
	}
}

// LoadConfig loads a Config from a JSON or YAML file (by extension),
// searching the given path, then ./famtree-config.json,
// ./famtree-config.yaml, ~/.famtree/config.{json,yaml}, then
// ~/.config/famtree/config.{json,yaml}, falling back to DefaultConfig.
func LoadConfig(configPath string) (*Config, error) {
	if configPath != "" {
		return loadConfigFromFile(configPath)
	}
	candidates := []string{"./famtree-config.json", "./famtree-config.yaml"}
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates,
			filepath.Join(home, ".famtree", "config.json"),
			filepath.Join(home, ".famtree", "config.yaml"),
			filepath.Join(home, ".config", "famtree", "config.json"),
			filepath.Join(home, ".config", "famtree", "config.yaml"),
		)
	}
	for _, c := range candidates {
		if cfg, err := loadConfigFromFile(c); err == nil {
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
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	default:
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}
	cfg.validateAndSetDefaults()
	return cfg, nil
}

func (c *Config) validateAndSetDefaults() {
	defaults := DefaultConfig()
	if c.NodeSeparation <= 0 {
		c.NodeSeparation = defaults.NodeSeparation
	}
	if c.LevelSeparation <= 0 {
		c.LevelSeparation = defaults.LevelSeparation
	}
	if c.ToggleClock == nil {
		c.ToggleClock = defaults.ToggleClock
	}
}
