package treefold

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// Config is the engine's static configuration, loaded once at startup.
type Config struct {
	// ArrayCountThreshold is the minimum item count for an unfolded array
	// to receive a count annotation (virtual text in the host).
	ArrayCountThreshold int `yaml:"array_count_threshold"`

	// ArrayCountThresholdFolded is the minimum item count for a folded
	// array summary to include its " [N]" count annotation.
	ArrayCountThresholdFolded int `yaml:"array_count_threshold_folded"`

	// LineCountEnabled appends a " lines: N" annotation to fold summaries.
	LineCountEnabled bool `yaml:"line_count_enabled"`

	// UnfoldSingleItemArrays chains expansion through nested single-item
	// arrays in one action.
	UnfoldSingleItemArrays bool `yaml:"unfold_single_item_arrays"`

	// PinMaxStringLength truncates string pin values longer than this many
	// characters, appending an ellipsis.
	PinMaxStringLength int `yaml:"pin_max_string_length"`

	// PinPathAbbreviateThreshold abbreviates multi-segment pin paths whose
	// joined form is strictly longer than this many characters.
	PinPathAbbreviateThreshold int `yaml:"pin_path_abbreviate_threshold"`
}

// DefaultConfig returns the stock configuration.
func DefaultConfig() Config {
	return Config{
		ArrayCountThreshold:        10,
		ArrayCountThresholdFolded:  2,
		LineCountEnabled:           false,
		UnfoldSingleItemArrays:     true,
		PinMaxStringLength:         30,
		PinPathAbbreviateThreshold: 20,
	}
}

// LoadConfig reads a YAML config file over the defaults. Keys absent from
// the file keep their default values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("load config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}
