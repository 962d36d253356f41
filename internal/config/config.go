// Package config loads the optional gridkit.yaml or gridkit.toml file.
package config

import (
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/freshcart/gridkit/pkg/errors"
	"github.com/freshcart/gridkit/pkg/fluidgrid"
)

// CurrentVersion is the configuration schema version written by gridkit.
const CurrentVersion = "v1"

// Preview defaults.
const (
	DefaultPreviewWidth  = 800
	DefaultPreviewHeight = 600
	DefaultPreviewItems  = 12
	DefaultCellWidth     = 8
)

// FileNames lists the configuration files looked up by LoadOptional, in order.
var FileNames = []string{"gridkit.yaml", "gridkit.yml", "gridkit.toml"}

// Config represents the gridkit configuration file.
type Config struct {
	Version string           `yaml:"version" toml:"version" validate:"omitempty,semver"`
	Grid    fluidgrid.Config `yaml:"grid" toml:"grid"`
	Preview Preview          `yaml:"preview" toml:"preview"`
}

// Preview configures the preview, watch and serve commands.
type Preview struct {
	// Width and Height are the preview surface size in logical pixels.
	Width  float64 `yaml:"width" toml:"width" validate:"gt=0"`
	Height float64 `yaml:"height" toml:"height" validate:"gt=0"`
	// Items is the number of sample tiles placed in the grid.
	Items int    `yaml:"items" toml:"items" validate:"gte=0,lte=10000"`
	Title string `yaml:"title" toml:"title"`
	// CellWidth is the number of logical pixels per terminal column.
	CellWidth float64 `yaml:"cellWidth" toml:"cellWidth" validate:"gt=0"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Version: CurrentVersion,
		Grid:    fluidgrid.DefaultConfig(),
		Preview: Preview{
			Width:     DefaultPreviewWidth,
			Height:    DefaultPreviewHeight,
			Items:     DefaultPreviewItems,
			CellWidth: DefaultCellWidth,
		},
	}
}

// Load reads and validates the configuration file at path. The format is
// chosen by extension. Keys missing from the file keep their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	cfg := Default()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	case ".toml":
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	default:
		return nil, &errors.GridError{
			Op:   "config.Load",
			Kind: errors.KindConfig,
			Err:  fmt.Errorf("unsupported config format %q", filepath.Ext(path)),
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadOptional reads the first gridkit config file found in dir. It returns
// the defaults and an empty path when there is none.
func LoadOptional(dir string) (*Config, string, error) {
	for _, name := range FileNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err != nil {
			if stderrors.Is(err, os.ErrNotExist) {
				continue
			}
			return nil, "", fmt.Errorf("failed to stat %s: %w", path, err)
		}
		cfg, err := Load(path)
		if err != nil {
			return nil, "", err
		}
		return cfg, path, nil
	}
	return Default(), "", nil
}
