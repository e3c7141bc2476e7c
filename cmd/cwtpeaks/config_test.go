package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-cwtpeaks/measure/peak"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	opts, err := cfg.DetectorOptions()
	require.NoError(t, err)

	d, err := peak.NewDetector(opts...)
	require.NoError(t, err)
	require.Equal(t, 5, d.MinScale())
	require.Equal(t, 20, d.MaxScale())
}

func TestParseConfig(t *testing.T) {
	cfg, err := ParseConfig([]byte(`
min_scale: 2
max_scale: 12
percentile: 10
method: fft
channel: 73.05
scorers: [response, directionPenalty]
ranking:
  - response:desc
workers: 3
`))
	require.NoError(t, err)

	want := DefaultConfig()
	want.MinScale = 2
	want.MaxScale = 12
	want.Percentile = 10
	want.Method = "fft"
	want.Channel = 73.05
	want.Scorers = []string{"response", "directionPenalty"}
	want.Ranking = []string{"response:desc"}
	want.Workers = 3
	require.Equal(t, want, cfg)

	_, err = cfg.DetectorOptions()
	require.NoError(t, err)
}

func TestParseConfigEmptyKeepsDefaults(t *testing.T) {
	cfg, err := ParseConfig(nil)
	require.NoError(t, err)
	require.Equal(t, DefaultConfig(), cfg)
}

func TestParseConfigRejectsUnknownKeys(t *testing.T) {
	_, err := ParseConfig([]byte("min_scales: 3\n"))
	require.Error(t, err)
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "peaks.yaml")
	require.NoError(t, os.WriteFile(path, []byte("max_scale: 8\n"), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, 8, cfg.MaxScale)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestConfigValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{name: "min above max", mutate: func(c *Config) { c.MinScale = 30 }},
		{name: "zero max", mutate: func(c *Config) { c.MinScale, c.MaxScale = 0, 0 }},
		{name: "percentile", mutate: func(c *Config) { c.Percentile = 101 }},
		{name: "scale diff", mutate: func(c *Config) { c.ScaleDiff = 0 }},
		{name: "empty kernel", mutate: func(c *Config) { c.Kernel = "" }},
		{name: "sigma", mutate: func(c *Config) { c.Sigma = 0 }},
		{name: "method", mutate: func(c *Config) { c.Method = "wavelet" }},
		{name: "empty scorer", mutate: func(c *Config) { c.Scorers = []string{""} }},
		{name: "workers", mutate: func(c *Config) { c.Workers = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			require.Error(t, cfg.Validate())

			_, err := cfg.DetectorOptions()
			require.Error(t, err)
		})
	}
}

func TestDetectorOptionsResolveErrors(t *testing.T) {
	for _, mutate := range []func(*Config){
		func(c *Config) { c.Kernel = "haar" },
		func(c *Config) { c.Scorers = []string{"area"} },
		func(c *Config) { c.Ranking = []string{"response:sideways"} },
	} {
		cfg := DefaultConfig()
		mutate(&cfg)

		_, err := cfg.DetectorOptions()
		require.Error(t, err)
	}

	// Ranking by a scorer that is not evaluated is caught by the detector.
	cfg := DefaultConfig()
	cfg.Ranking = []string{"response"}
	opts, err := cfg.DetectorOptions()
	require.NoError(t, err)

	_, err = peak.NewDetector(opts...)
	require.ErrorIs(t, err, peak.ErrUnknownCriterion)
}
