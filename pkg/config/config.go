/*
Package config manages TOML configuration for spellkit: suggestion
pipeline weights and defaults, dictionary defaults, and the prefix
accelerator threshold.

InitConfig handles automatic config file creation and loading with
fallback to defaults. LoadConfig and SaveConfig provide direct file
access for runtime changes.
*/
package config

import (
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"github.com/lexigraph/spellkit/internal/utils"
)

// Config holds the entire configuration structure.
type Config struct {
	Pipeline PipelineConfig `toml:"pipeline"`
	Dict     DictConfig     `toml:"dict"`
}

// PipelineConfig controls the suggestion pipeline's ranking weights and
// per-strategy defaults.
type PipelineConfig struct {
	DistanceWeight    float64 `toml:"distance_weight"`
	ConfidenceWeight  float64 `toml:"confidence_weight"`
	EditMaxDistance   int     `toml:"edit_max_distance"`
	PhoneticAlgorithm string  `toml:"phonetic_algorithm"` // "soundex" or "metaphone"
	KeyboardMaxDistance int   `toml:"keyboard_max_distance"`
	NgramSize         int     `toml:"ngram_size"`
	NgramMinSimilarity float64 `toml:"ngram_min_similarity"`
}

// DictConfig holds dictionary and suggestion-result defaults.
type DictConfig struct {
	MaxSuggestions int  `toml:"max_suggestions"`
	CaseSensitive  bool `toml:"case_sensitive"`
	// AccelThreshold is the dictionary word count above which the
	// go-patricia-backed accelerator narrows candidate scans for the
	// edit-distance and n-gram strategies (phonetic always scans the full
	// vocabulary). 0 applies it to every non-empty dictionary.
	AccelThreshold int `toml:"accel_threshold"`
}

// DefaultConfig returns a Config with the spec-mandated defaults:
// distance_weight=0.3, confidence_weight=0.7, edit max distance 2,
// soundex phonetics, keyboard max distance 2, n-gram size 3 with the
// pipeline's 0.2 minimum similarity.
func DefaultConfig() *Config {
	return &Config{
		Pipeline: PipelineConfig{
			DistanceWeight:      0.3,
			ConfidenceWeight:    0.7,
			EditMaxDistance:     2,
			PhoneticAlgorithm:   "soundex",
			KeyboardMaxDistance: 2,
			NgramSize:           3,
			NgramMinSimilarity:  0.2,
		},
		Dict: DictConfig{
			MaxSuggestions: 10,
			CaseSensitive:  false,
			AccelThreshold: 2000,
		},
	}
}

// InitConfig loads config from file, or creates a default one if
// missing.
func InitConfig(configPath string) (*Config, error) {
	configDir := filepath.Dir(configPath)
	if err := utils.EnsureDir(configDir); err != nil {
		return nil, err
	}
	if !utils.FileExists(configPath) {
		cfg := DefaultConfig()
		if err := SaveConfig(cfg, configPath); err != nil {
			return nil, err
		}
		log.Debugf("Created default config file at: ( %s )", configPath)
		return cfg, nil
	}
	cfg, err := LoadConfig(configPath)
	if err != nil {
		log.Warnf("Failed to load config, using defaults: %v", err)
		return DefaultConfig(), nil
	}
	return cfg, nil
}

// LoadConfig loads from a TOML file.
func LoadConfig(configPath string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(configPath, &cfg); err != nil {
		log.Errorf("Failed to decode config file: %v", err)
		return nil, err
	}
	return &cfg, nil
}

// SaveConfig saves cfg into a TOML file.
func SaveConfig(cfg *Config, configPath string) error {
	return utils.SaveTOMLFile(cfg, configPath)
}
