package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	humanizer "github.com/tphakala/go-cursor-humanizer"
)

func TestDecode_Overlay(t *testing.T) {
	input := `
preset: snappy
gap_threshold_ms: 750
deceleration_curve: easeOutCubic
enable_simd: false
`
	f, err := Decode(strings.NewReader(input))
	require.NoError(t, err)

	cfg, err := f.Config()
	require.NoError(t, err)

	want := humanizer.ConfigSnappy()
	want.GapThresholdMs = 750
	want.DecelerationCurve = humanizer.EaseOutCubic
	want.EnableSIMD = false
	assert.Equal(t, want, cfg)
}

func TestDecode_Empty(t *testing.T) {
	f, err := Decode(strings.NewReader(""))
	require.NoError(t, err)

	cfg, err := f.Config()
	require.NoError(t, err)
	assert.Equal(t, humanizer.DefaultConfig(), cfg)
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"unknown_key", "gap: 500\n", nil},
		{"bad_type", "gap_threshold_ms: fast\n", nil},
		{"unknown_curve", "acceleration_curve: bounce\n", humanizer.ErrUnknownCurve},
		{"unknown_preset", "preset: wild\n", ErrUnknownPreset},
		{"sum_above_one", "acceleration_fraction: 0.7\ndeceleration_fraction: 0.5\n", humanizer.ErrInvalidConfig},
		{"zero_gap", "gap_threshold_ms: 0\n", humanizer.ErrInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Decode(strings.NewReader(tt.input))
			if err == nil {
				_, err = f.Config()
			}
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestPresetConfig(t *testing.T) {
	for _, name := range Presets() {
		cfg, err := PresetConfig(name)
		require.NoError(t, err, name)
		assert.NoError(t, cfg.Validate(), name)
	}

	cfg, err := PresetConfig("")
	require.NoError(t, err)
	assert.Equal(t, humanizer.DefaultConfig(), cfg)
}

func TestEncodeDecode(t *testing.T) {
	cfg := humanizer.ConfigSubtle()
	cfg.AccelerationCurve = humanizer.EaseInQuint
	cfg.GapThresholdMs = 321.5

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, cfg))
	assert.Contains(t, buf.String(), "acceleration_curve: easeInQuint")

	f, err := Decode(&buf)
	require.NoError(t, err)
	got, err := f.Config()
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestEncode_Invalid(t *testing.T) {
	cfg := humanizer.DefaultConfig()
	cfg.GapThresholdMs = -1

	var buf bytes.Buffer
	assert.ErrorIs(t, Encode(&buf, cfg), humanizer.ErrInvalidConfig)
	assert.Zero(t, buf.Len())
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "humanizer.yaml")
	cfg := humanizer.ConfigSnappy()

	require.NoError(t, Save(path, cfg))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error loading config")

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("deceleration_fraction: 2\n"), 0o600))
	_, err = Load(bad)
	assert.ErrorIs(t, err, humanizer.ErrInvalidConfig)
	assert.Contains(t, err.Error(), bad)
}
