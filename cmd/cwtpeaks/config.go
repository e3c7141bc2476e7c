package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-cwtpeaks/dsp/cwt"
	"github.com/cwbudde/algo-cwtpeaks/dsp/wavelet"
	"github.com/cwbudde/algo-cwtpeaks/measure/peak"
	"github.com/cwbudde/algo-cwtpeaks/measure/peak/score"
)

// Config is the detection configuration read from a YAML file and
// overridden by flags.
type Config struct {
	MinScale   int      `yaml:"min_scale" validate:"gte=1,ltefield=MaxScale"`
	MaxScale   int      `yaml:"max_scale" validate:"gte=1"`
	Percentile float64  `yaml:"percentile" validate:"gte=0,lte=100"`
	ScaleDiff  int      `yaml:"scale_diff" validate:"gte=1"`
	Kernel     string   `yaml:"kernel" validate:"required"`
	Sigma      float64  `yaml:"sigma" validate:"gt=0"`
	Method     string   `yaml:"method" validate:"oneof=direct fft"`
	Channel    float64  `yaml:"channel"`
	Scorers    []string `yaml:"scorers" validate:"dive,required"`
	Ranking    []string `yaml:"ranking" validate:"dive,required"`
	Workers    int      `yaml:"workers" validate:"gte=0"`
}

// DefaultConfig returns the detector defaults.
func DefaultConfig() Config {
	return Config{
		MinScale:   5,
		MaxScale:   20,
		Percentile: 5,
		ScaleDiff:  1,
		Kernel:     wavelet.MexicanHat{}.Name(),
		Sigma:      1,
		Method:     cwt.MethodDirect.String(),
	}
}

// LoadConfig reads a YAML file on top of DefaultConfig.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	return ParseConfig(data)
}

// ParseConfig decodes YAML on top of DefaultConfig. Unknown keys are
// rejected.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	return cfg, nil
}

var validate = validator.New()

// Validate checks field ranges.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	return nil
}

// DetectorOptions resolves names in c into detector options.
func (c Config) DetectorOptions() ([]peak.Option, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	kernel, err := wavelet.Lookup(c.Kernel)
	if err != nil {
		return nil, err
	}
	method, err := cwt.ParseMethod(c.Method)
	if err != nil {
		return nil, err
	}

	scorers := make([]score.Scorer, 0, len(c.Scorers))
	for _, name := range c.Scorers {
		s, err := score.Lookup(name)
		if err != nil {
			return nil, err
		}
		scorers = append(scorers, s)
	}

	criteria := make([]score.Criterion, 0, len(c.Ranking))
	for _, raw := range c.Ranking {
		crit, err := score.ParseCriterion(raw)
		if err != nil {
			return nil, err
		}
		criteria = append(criteria, crit)
	}

	return []peak.Option{
		peak.WithScales(c.MinScale, c.MaxScale),
		peak.WithPercentile(c.Percentile),
		peak.WithScaleDiff(c.ScaleDiff),
		peak.WithKernel(kernel, c.Sigma),
		peak.WithMethod(method),
		peak.WithScorers(scorers...),
		peak.WithRanking(criteria...),
	}, nil
}
