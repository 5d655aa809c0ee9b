// seehuhn.de/go/tessellate - planar path tessellation
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"seehuhn.de/go/tessellate"
)

// Config holds all settings of the command.
type Config struct {
	Tessellation TessellationConfig `yaml:"tessellation"`
	Output       OutputConfig       `yaml:"output"`
	Logging      LoggingConfig      `yaml:"logging"`
}

// TessellationConfig holds the tessellator parameters.
type TessellationConfig struct {
	Resolution             float64 `yaml:"resolution"`
	Flatness               float64 `yaml:"flatness"`
	FillRule               string  `yaml:"fill_rule"`
	RemoveInternalSegments bool    `yaml:"remove_internal_segments"`
}

// OutputConfig controls the generated files.
type OutputConfig struct {
	Width  int `yaml:"width"`  // image width in pixels
	Height int `yaml:"height"` // image height in pixels

	// Scale is the number of pixels per input unit. Zero fits the
	// drawing into the image.
	Scale float64 `yaml:"scale"`

	Wireframe bool `yaml:"wireframe"` // draw triangle edges

	Loops bool `yaml:"loops"` // include loop outlines in GeoJSON output

	// OutlineReduce is the Visvalingam area threshold for loop outlines
	// in GeoJSON output.
	OutlineReduce float64 `yaml:"outline_reduce"`
}

// LoggingConfig holds the logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Tessellation: TessellationConfig{
			Resolution: 1,
			Flatness:   0.25,
			FillRule:   "nonzero",
		},
		Output: OutputConfig{
			Width:     512,
			Height:    512,
			Wireframe: true,
			Loops:     true,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load returns the default configuration, overridden by the values in the
// given YAML file. An empty file name gives the defaults.
func Load(fname string) (*Config, error) {
	cfg := Default()
	if fname == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(fname)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("loading config from %s: %w", fname, err)
	}
	return cfg, nil
}

// Validate checks the configuration for invalid values.
func (cfg *Config) Validate() error {
	var errs []error
	if !(cfg.Tessellation.Resolution > 0) {
		errs = append(errs, errors.New("tessellation.resolution must be positive"))
	}
	if !(cfg.Tessellation.Flatness > 0) {
		errs = append(errs, errors.New("tessellation.flatness must be positive"))
	}
	if _, err := tessellate.ParseFillRule(cfg.Tessellation.FillRule); err != nil {
		errs = append(errs, fmt.Errorf("tessellation.fill_rule: %w", err))
	}
	if cfg.Output.Width <= 0 || cfg.Output.Height <= 0 {
		errs = append(errs, errors.New("output.width and output.height must be positive"))
	}
	if cfg.Output.Scale < 0 {
		errs = append(errs, errors.New("output.scale must not be negative"))
	}
	return errors.Join(errs...)
}

// Tessellator returns a tessellator with the configured parameters.
func (cfg *Config) Tessellator(log *zap.Logger) *tessellate.Tessellator {
	t := tessellate.NewTessellator()
	t.Resolution = cfg.Tessellation.Resolution
	t.Flatness = cfg.Tessellation.Flatness
	t.RemoveInternalSegments = cfg.Tessellation.RemoveInternalSegments
	t.Log = log
	return t
}
