// Package peak detects chromatographic peaks by tracking ridges through the
// continuous wavelet transform of an intensity trace.
package peak

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/cwbudde/algo-cwtpeaks/dsp/cwt"
	"github.com/cwbudde/algo-cwtpeaks/measure/peak/ridge"
	"github.com/cwbudde/algo-cwtpeaks/measure/peak/score"
	"github.com/cwbudde/algo-cwtpeaks/stats/intensity"
)

// Errors returned by the detector.
var (
	ErrLengthMismatch    = errors.New("peak: signal and time axis lengths differ")
	ErrEmptySignal       = errors.New("peak: empty signal")
	ErrInvalidScaleRange = errors.New("peak: invalid scale range")
	ErrInvalidPercentile = errors.New("peak: percentile must be in [0, 100]")
	ErrInvalidScaleDiff  = errors.New("peak: scale diff must be >= 1")
	ErrNilKernel         = errors.New("peak: nil kernel")
	ErrNilScorer         = errors.New("peak: nil scorer")
	ErrUnknownCriterion  = errors.New("peak: ranking criterion has no scorer")
	ErrRidgeOutOfRange   = errors.New("peak: ridge seed outside signal")
)

// Result is the outcome of one detection run. Peaks, Ridges and Scores are
// index-aligned and in output order.
type Result struct {
	Peaks     []Peak
	Ridges    []*ridge.Ridge
	Scores    []score.Scored
	Threshold float64 // percentile of the normalized signal
	Filtered  int     // seeds rejected by the threshold
	Stats     ridge.Stats
}

// Detector runs the detection pipeline. It is immutable and safe for
// concurrent use.
type Detector struct {
	cfg       config
	transform *cwt.Transform
	tracker   *ridge.Tracker
}

// NewDetector creates a detector. Invalid options are reported before any
// signal is processed.
func NewDetector(opts ...Option) (*Detector, error) {
	cfg := defaultConfig()

	for _, opt := range opts {
		if opt == nil {
			continue
		}

		err := opt(&cfg)
		if err != nil {
			return nil, err
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	tf, err := cwt.New(cfg.kernel, cwt.WithParams(cfg.params...), cwt.WithMethod(cfg.method))
	if err != nil {
		return nil, fmt.Errorf("peak: %w", err)
	}

	return &Detector{
		cfg:       cfg,
		transform: tf,
		tracker:   ridge.NewTracker(ridge.WithScaleDiff(cfg.scaleDiff), ridge.WithLogger(cfg.log)),
	}, nil
}

// MinScale returns the minimum ridge length.
func (d *Detector) MinScale() int { return d.cfg.minScale }

// MaxScale returns the number of scales.
func (d *Detector) MaxScale() int { return d.cfg.maxScale }

// Percentile returns the seed threshold percentile.
func (d *Detector) Percentile() float64 { return d.cfg.percentile }

// ScaleDiff returns the ridge search radius.
func (d *Detector) ScaleDiff() int { return d.cfg.scaleDiff }

// Transform returns the underlying wavelet transform.
func (d *Detector) Transform() *cwt.Transform { return d.transform }

// Detect locates peaks in signal. timeAxis must have the same length;
// channel is copied into every peak. A signal without dynamic range yields
// an empty result.
func (d *Detector) Detect(signal, timeAxis []float64, channel float64) (Result, error) {
	if len(signal) != len(timeAxis) {
		return Result{}, fmt.Errorf("%w: %d samples, %d times", ErrLengthMismatch, len(signal), len(timeAxis))
	}
	if len(signal) == 0 {
		return Result{}, ErrEmptySignal
	}

	log := d.cfg.log.WithFields(logrus.Fields{"channel": channel, "samples": len(signal)})

	if intensity.Calculate(signal).Flat() {
		log.Debug("peak: flat signal, skipping")
		return Result{}, nil
	}

	norm, err := intensity.Normalize(signal)
	if err != nil {
		return Result{}, fmt.Errorf("peak: normalize: %w", err)
	}
	threshold, err := intensity.Percentile(norm, d.cfg.percentile)
	if err != nil {
		return Result{}, fmt.Errorf("peak: threshold: %w", err)
	}

	sg, err := d.transform.Scaleogram(signal, d.cfg.maxScale)
	if err != nil {
		return Result{}, fmt.Errorf("peak: scaleogram: %w", err)
	}

	seeds := d.tracker.Seed(sg)
	kept := make([]*ridge.Ridge, 0, len(seeds))
	for _, r := range seeds {
		// Seeds on a zero-response plateau carry no signal.
		if r.Seed().Response <= 0 {
			continue
		}
		v := norm[r.SeedPosition()]
		if v >= threshold && v > 0 {
			kept = append(kept, r)
		}
	}

	st := d.tracker.Sweep(sg, kept)
	st.Seeds = len(seeds)

	ridges, dropped := ridge.FilterLength(kept, d.cfg.minScale)
	st.Discarded = dropped

	ranked, unranked := score.Rank(score.Evaluate(ridges, d.cfg.scorers...), d.cfg.criteria...)
	scored := append(ranked, unranked...)

	res := Result{
		Ridges:    make([]*ridge.Ridge, len(scored)),
		Scores:    scored,
		Threshold: threshold,
		Filtered:  len(seeds) - len(kept),
		Stats:     st,
	}
	for i, s := range scored {
		res.Ridges[i] = s.Ridge
	}

	res.Peaks, err = Extract(signal, timeAxis, channel, res.Ridges)
	if err != nil {
		return Result{}, err
	}

	log.WithFields(logrus.Fields{
		"seeds":     st.Seeds,
		"filtered":  res.Filtered,
		"discarded": st.Discarded,
		"ties":      st.Ties,
		"peaks":     len(res.Peaks),
		"threshold": threshold,
	}).Debug("peak: detection finished")

	return res, nil
}
