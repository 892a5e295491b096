package config

import (
	"encoding/json"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/mitchellh/mapstructure"
)

const (
	ModeFlat  = "flat"
	ModeBoard = "board"

	FormatJSON   = "json"
	FormatDIMACS = "dimacs"
)

var (
	ValidModes   = []string{ModeFlat, ModeBoard}
	ValidFormats = []string{FormatJSON, FormatDIMACS}
)

type Config struct {
	// "flat" encodes a single group of points 0..count-1, "board" a count×count board
	Mode string `mapstructure:"mode"`
	// "json" writes the clause list as nested arrays, "dimacs" writes DIMACS-CNF
	Format string `mapstructure:"format"`
	// Indent JSON output
	Indent bool `mapstructure:"indent"`
}

func Default() Config {
	return Config{
		Mode:   ModeFlat,
		Format: FormatJSON,
	}
}

// Load reads a JSON configuration file on top of the defaults
func Load(path string) (Config, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("cannot read config file: %w", err)
	}

	var inputJson map[string]any
	if err := json.Unmarshal(bytes, &inputJson); err != nil {
		return Config{}, fmt.Errorf("cannot parse config file: %w", err)
	}

	config := Default()
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      &config,
		ErrorUnused: true,
	})
	if err != nil {
		return Config{}, err
	}
	if err := decoder.Decode(inputJson); err != nil {
		return Config{}, fmt.Errorf("invalid config file %v: %w", path, err)
	}

	config = config.Normalize()
	return config, config.Validate()
}

// Normalize lowercases the enumerated settings
func (config Config) Normalize() Config {
	config.Mode = strings.ToLower(strings.TrimSpace(config.Mode))
	config.Format = strings.ToLower(strings.TrimSpace(config.Format))
	return config
}

func (config Config) Validate() error {
	if !slices.Contains(ValidModes, config.Mode) {
		return fmt.Errorf("%v is not a valid mode", config.Mode)
	} else if !slices.Contains(ValidFormats, config.Format) {
		return fmt.Errorf("%v is not a valid format", config.Format)
	}
	return nil
}
