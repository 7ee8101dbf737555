// Package config loads and saves humanizer settings as YAML.
//
// Every field is optional. Missing fields keep the value of the selected
// preset, which defaults to "default":
//
//	preset: snappy
//	gap_threshold_ms: 750
//	deceleration_curve: easeOutCubic
package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	humanizer "github.com/tphakala/go-cursor-humanizer"
	"gopkg.in/yaml.v3"
)

// Preset names
const (
	PresetDefault = "default"
	PresetSubtle  = "subtle"
	PresetSnappy  = "snappy"
)

const configFileMode = 0o644

// ErrUnknownPreset indicates a preset name that is not defined.
var ErrUnknownPreset = errors.New("unknown preset")

// File is the on-disk representation of a humanizer configuration.
type File struct {
	Preset               string   `yaml:"preset,omitempty"`
	GapThresholdMs       *float64 `yaml:"gap_threshold_ms,omitempty"`
	AccelerationFraction *float64 `yaml:"acceleration_fraction,omitempty"`
	DecelerationFraction *float64 `yaml:"deceleration_fraction,omitempty"`
	AccelerationCurve    *string  `yaml:"acceleration_curve,omitempty"`
	DecelerationCurve    *string  `yaml:"deceleration_curve,omitempty"`
	EnableSIMD           *bool    `yaml:"enable_simd,omitempty"`
}

// Presets returns the available preset names.
func Presets() []string {
	return []string{PresetDefault, PresetSubtle, PresetSnappy}
}

// PresetConfig returns the configuration for a preset name. An empty name
// selects the default preset.
func PresetConfig(name string) (humanizer.Config, error) {
	switch name {
	case "", PresetDefault:
		return humanizer.DefaultConfig(), nil
	case PresetSubtle:
		return humanizer.ConfigSubtle(), nil
	case PresetSnappy:
		return humanizer.ConfigSnappy(), nil
	default:
		return humanizer.Config{}, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
}

// Decode reads a File from r. Unknown keys are rejected. Empty input
// decodes to an empty File.
func Decode(r io.Reader) (File, error) {
	var f File
	d := yaml.NewDecoder(r)
	d.KnownFields(true)
	if err := d.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return File{}, nil
		}
		return File{}, fmt.Errorf("error reading config: %w", err)
	}
	return f, nil
}

// Config resolves f into a validated configuration: the preset first, then
// every field that is set.
func (f File) Config() (humanizer.Config, error) {
	cfg, err := PresetConfig(f.Preset)
	if err != nil {
		return humanizer.Config{}, err
	}

	if f.GapThresholdMs != nil {
		cfg.GapThresholdMs = *f.GapThresholdMs
	}
	if f.AccelerationFraction != nil {
		cfg.AccelerationFraction = *f.AccelerationFraction
	}
	if f.DecelerationFraction != nil {
		cfg.DecelerationFraction = *f.DecelerationFraction
	}
	if f.AccelerationCurve != nil {
		if cfg.AccelerationCurve, err = humanizer.ParseCurve(*f.AccelerationCurve); err != nil {
			return humanizer.Config{}, fmt.Errorf("acceleration_curve: %w", err)
		}
	}
	if f.DecelerationCurve != nil {
		if cfg.DecelerationCurve, err = humanizer.ParseCurve(*f.DecelerationCurve); err != nil {
			return humanizer.Config{}, fmt.Errorf("deceleration_curve: %w", err)
		}
	}
	if f.EnableSIMD != nil {
		cfg.EnableSIMD = *f.EnableSIMD
	}

	if err := cfg.Validate(); err != nil {
		return humanizer.Config{}, err
	}
	return cfg, nil
}

// FromConfig returns a File with every field of cfg set explicitly.
func FromConfig(cfg humanizer.Config) File {
	accel := cfg.AccelerationCurve.String()
	decel := cfg.DecelerationCurve.String()
	return File{
		GapThresholdMs:       &cfg.GapThresholdMs,
		AccelerationFraction: &cfg.AccelerationFraction,
		DecelerationFraction: &cfg.DecelerationFraction,
		AccelerationCurve:    &accel,
		DecelerationCurve:    &decel,
		EnableSIMD:           &cfg.EnableSIMD,
	}
}

// Load reads and resolves the configuration file at path.
func Load(path string) (humanizer.Config, error) {
	r, err := os.Open(path)
	if err != nil {
		return humanizer.Config{}, fmt.Errorf("error loading config: %w", err)
	}
	defer func() { _ = r.Close() }()

	f, err := Decode(r)
	if err != nil {
		return humanizer.Config{}, fmt.Errorf("%s: %w", path, err)
	}

	cfg, err := f.Config()
	if err != nil {
		return humanizer.Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Encode writes cfg as YAML. The configuration is validated first.
func Encode(w io.Writer, cfg humanizer.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	text, err := yaml.Marshal(FromConfig(cfg))
	if err != nil {
		return fmt.Errorf("error encoding config: %w", err)
	}
	_, err = w.Write(text)
	return err
}

// Save writes cfg to path as YAML.
func Save(path string, cfg humanizer.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	text, err := yaml.Marshal(FromConfig(cfg))
	if err != nil {
		return fmt.Errorf("error encoding config: %w", err)
	}
	if err := os.WriteFile(path, text, configFileMode); err != nil {
		return fmt.Errorf("error writing config: %w", err)
	}
	return nil
}
