// Package config carries the figure and grid parameters shared by the CLIs.
// Defaults live in config/orbital.defaults.json rather than as magic numbers
// at call sites; a partial JSON file overrides only the fields it names.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// DefaultConfigPath is the path to the canonical defaults file.
const DefaultConfigPath = "config/orbital.defaults.json"

// OrbitalConfig is the root configuration. All fields are pointers so a
// partial config file only overrides what it names; the Get* methods supply
// fallbacks for everything else.
type OrbitalConfig struct {
	// Grid params
	GridPoints  *int     `json:"grid_points,omitempty"`
	RMaxFactor  *float64 `json:"rmax_factor,omitempty"` // r_max = factor * n^2 / Z
	DefaultZ    *float64 `json:"default_z,omitempty"`
	SlicePoints *int     `json:"slice_points,omitempty"`

	// Figure params
	PlotWidthInches  *float64 `json:"plot_width_inches,omitempty"`
	PlotHeightInches *float64 `json:"plot_height_inches,omitempty"`
	SliceSizeInches  *float64 `json:"slice_size_inches,omitempty"`
}

// EmptyConfig returns an OrbitalConfig with all fields nil.
func EmptyConfig() *OrbitalConfig {
	return &OrbitalConfig{}
}

// LoadConfig loads an OrbitalConfig from a JSON file. Fields omitted from
// the file keep their defaults, so partial configs are safe.
func LoadConfig(path string) (*OrbitalConfig, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("config file must have .json extension, got %q", ext)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := EmptyConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// MustLoadDefaultConfig loads the canonical defaults from DefaultConfigPath,
// searching upward from the current directory. Panics on failure; intended
// for test setup.
func MustLoadDefaultConfig() *OrbitalConfig {
	candidates := []string{
		DefaultConfigPath,
		filepath.Join("..", "..", DefaultConfigPath),
		filepath.Join("..", "..", "..", DefaultConfigPath),
	}
	for _, path := range candidates {
		if cfg, err := LoadConfig(path); err == nil {
			return cfg
		}
	}
	panic("cannot find " + DefaultConfigPath + " - run tests from repository root")
}

// Validate rejects values no figure or grid could use.
func (c *OrbitalConfig) Validate() error {
	if c.GridPoints != nil && *c.GridPoints < 2 {
		return fmt.Errorf("grid_points must be >= 2, got %d", *c.GridPoints)
	}
	if c.RMaxFactor != nil && *c.RMaxFactor <= 0 {
		return fmt.Errorf("rmax_factor must be positive, got %g", *c.RMaxFactor)
	}
	if c.DefaultZ != nil && *c.DefaultZ <= 0 {
		return fmt.Errorf("default_z must be positive, got %g", *c.DefaultZ)
	}
	if c.SlicePoints != nil && *c.SlicePoints < 2 {
		return fmt.Errorf("slice_points must be >= 2, got %d", *c.SlicePoints)
	}
	if c.PlotWidthInches != nil && *c.PlotWidthInches <= 0 {
		return fmt.Errorf("plot_width_inches must be positive, got %g", *c.PlotWidthInches)
	}
	if c.PlotHeightInches != nil && *c.PlotHeightInches <= 0 {
		return fmt.Errorf("plot_height_inches must be positive, got %g", *c.PlotHeightInches)
	}
	if c.SliceSizeInches != nil && *c.SliceSizeInches <= 0 {
		return fmt.Errorf("slice_size_inches must be positive, got %g", *c.SliceSizeInches)
	}
	return nil
}

func (c *OrbitalConfig) GetGridPoints() int {
	if c != nil && c.GridPoints != nil {
		return *c.GridPoints
	}
	return 2000
}

func (c *OrbitalConfig) GetRMaxFactor() float64 {
	if c != nil && c.RMaxFactor != nil {
		return *c.RMaxFactor
	}
	return 4.0
}

func (c *OrbitalConfig) GetDefaultZ() float64 {
	if c != nil && c.DefaultZ != nil {
		return *c.DefaultZ
	}
	return 1.0
}

func (c *OrbitalConfig) GetSlicePoints() int {
	if c != nil && c.SlicePoints != nil {
		return *c.SlicePoints
	}
	return 300
}

func (c *OrbitalConfig) GetPlotWidthInches() float64 {
	if c != nil && c.PlotWidthInches != nil {
		return *c.PlotWidthInches
	}
	return 10.0
}

func (c *OrbitalConfig) GetPlotHeightInches() float64 {
	if c != nil && c.PlotHeightInches != nil {
		return *c.PlotHeightInches
	}
	return 6.0
}

func (c *OrbitalConfig) GetSliceSizeInches() float64 {
	if c != nil && c.SliceSizeInches != nil {
		return *c.SliceSizeInches
	}
	return 7.0
}
