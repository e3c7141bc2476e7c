package peak

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"

	"github.com/cwbudde/algo-cwtpeaks/dsp/cwt"
	"github.com/cwbudde/algo-cwtpeaks/dsp/wavelet"
	"github.com/cwbudde/algo-cwtpeaks/measure/peak/ridge"
	"github.com/cwbudde/algo-cwtpeaks/measure/peak/score"
)

const (
	defaultMinScale   = 5
	defaultMaxScale   = 20
	defaultPercentile = 5.0
	defaultSigma      = 1.0
)

type config struct {
	minScale   int
	maxScale   int
	percentile float64
	scaleDiff  int
	kernel     wavelet.Kernel
	params     []float64
	method     cwt.Method
	scorers    []score.Scorer
	criteria   []score.Criterion
	log        logrus.FieldLogger
}

func defaultConfig() config {
	return config{
		minScale:   defaultMinScale,
		maxScale:   defaultMaxScale,
		percentile: defaultPercentile,
		scaleDiff:  ridge.DefaultScaleDiff,
		kernel:     wavelet.MexicanHat{},
		params:     []float64{defaultSigma},
		method:     cwt.MethodDirect,
		log:        logrus.StandardLogger(),
	}
}

// Option configures a [Detector].
type Option func(*config) error

// WithScales sets the minimum ridge length and the number of scales
// (defaults 5 and 20). Both must be >= 1 and min must not exceed max.
func WithScales(minScale, maxScale int) Option {
	return func(cfg *config) error {
		if minScale < 1 || maxScale < 1 || minScale > maxScale {
			return fmt.Errorf("%w: min %d, max %d", ErrInvalidScaleRange, minScale, maxScale)
		}

		cfg.minScale = minScale
		cfg.maxScale = maxScale

		return nil
	}
}

// WithPercentile sets the seed threshold percentile in [0, 100] (default 5).
func WithPercentile(p float64) Option {
	return func(cfg *config) error {
		if math.IsNaN(p) || p < 0 || p > 100 {
			return fmt.Errorf("%w: %v", ErrInvalidPercentile, p)
		}

		cfg.percentile = p

		return nil
	}
}

// WithScaleDiff sets the ridge search radius in samples (default 1).
func WithScaleDiff(d int) Option {
	return func(cfg *config) error {
		if d < 1 {
			return fmt.Errorf("%w: %d", ErrInvalidScaleDiff, d)
		}

		cfg.scaleDiff = d

		return nil
	}
}

// WithKernel sets the mother wavelet and its shape parameters
// (default [wavelet.MexicanHat] with sigma 1).
func WithKernel(k wavelet.Kernel, params ...float64) Option {
	return func(cfg *config) error {
		if k == nil {
			return ErrNilKernel
		}

		cfg.kernel = k
		cfg.params = append([]float64(nil), params...)

		return nil
	}
}

// WithMethod selects the transform evaluation method (default direct).
func WithMethod(m cwt.Method) Option {
	return func(cfg *config) error {
		if m != cwt.MethodDirect && m != cwt.MethodFFT {
			return fmt.Errorf("%w: %v", cwt.ErrUnknownMethod, m)
		}

		cfg.method = m

		return nil
	}
}

// WithScorers sets the scorers applied to surviving ridges, in order.
func WithScorers(scorers ...score.Scorer) Option {
	return func(cfg *config) error {
		for _, s := range scorers {
			if s == nil {
				return ErrNilScorer
			}
		}

		cfg.scorers = append([]score.Scorer(nil), scorers...)

		return nil
	}
}

// WithRanking sets the ranking criteria. Every criterion must name a
// configured scorer.
func WithRanking(criteria ...score.Criterion) Option {
	return func(cfg *config) error {
		cfg.criteria = append([]score.Criterion(nil), criteria...)
		return nil
	}
}

// WithLogger sets the logger for diagnostics (default logrus standard logger).
func WithLogger(l logrus.FieldLogger) Option {
	return func(cfg *config) error {
		if l != nil {
			cfg.log = l
		}

		return nil
	}
}

func (cfg *config) validate() error {
	names := make(map[string]struct{}, len(cfg.scorers))
	for _, s := range cfg.scorers {
		names[s.Name()] = struct{}{}
	}

	for _, c := range cfg.criteria {
		if _, ok := names[c.Name]; !ok {
			return fmt.Errorf("%w: %q", ErrUnknownCriterion, c.Name)
		}
	}

	return nil
}
