package ridge

import (
	"github.com/sirupsen/logrus"

	"github.com/cwbudde/algo-cwtpeaks/dsp/cwt"
	"github.com/cwbudde/algo-cwtpeaks/dsp/extrema"
)

// DefaultScaleDiff is the default search radius between adjacent scales.
const DefaultScaleDiff = 1

// Stats counts sweep outcomes.
type Stats struct {
	Seeds       int
	Extensions  int
	NoCandidate int
	Ties        int
	ScaleLimit  int
	Discarded   int
}

// Outcome is the result of one extension step.
type Outcome int

const (
	// Extended means a point was appended.
	Extended Outcome = iota
	// Stopped means no candidate qualified.
	Stopped
	// Tied means the candidates could not be ordered.
	Tied
	// Skipped means the ridge was already terminated.
	Skipped
)

// Option configures a Tracker.
type Option func(*Tracker)

// WithScaleDiff sets the search radius. Values below 1 are ignored.
func WithScaleDiff(d int) Option {
	return func(t *Tracker) {
		if d >= 1 {
			t.scaleDiff = d
		}
	}
}

// WithLogger sets the logger used for sweep diagnostics.
func WithLogger(l logrus.FieldLogger) Option {
	return func(t *Tracker) {
		if l != nil {
			t.log = l
		}
	}
}

// Tracker extends ridges across the scales of a scaleogram. It holds no
// per-run state and is safe for concurrent use.
type Tracker struct {
	scaleDiff int
	log       logrus.FieldLogger
}

// NewTracker creates a tracker.
func NewTracker(opts ...Option) *Tracker {
	t := &Tracker{
		scaleDiff: DefaultScaleDiff,
		log:       logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(t)
	}

	return t
}

// ScaleDiff returns the search radius.
func (t *Tracker) ScaleDiff() int { return t.scaleDiff }

// Seed creates one ridge per local maximum of the finest scale, in
// ascending position order.
func (t *Tracker) Seed(sg *cwt.Scaleogram) []*Ridge {
	if sg == nil || sg.NumScales() == 0 {
		return nil
	}

	column := sg.ColumnView(0)
	maxima := extrema.LocalMaxima(column)
	ridges := make([]*Ridge, 0, len(maxima))
	for _, pos := range maxima {
		ridges = append(ridges, New(Point{Position: pos, ScaleIndex: 0, Response: column[pos]}))
	}

	return ridges
}

// Sweep extends every open ridge through scale indices 1..NumScales-1.
// Ridges still open after the coarsest scale are closed with ScaleLimit.
func (t *Tracker) Sweep(sg *cwt.Scaleogram, ridges []*Ridge) Stats {
	var st Stats
	if sg == nil {
		return st
	}

	for s := 1; s < sg.NumScales(); s++ {
		column := sg.ColumnView(s)
		for _, r := range ridges {
			if r.Terminated() || r.Last().ScaleIndex != s-1 {
				continue
			}

			switch t.Extend(r, column) {
			case Extended:
				st.Extensions++
			case Stopped:
				st.NoCandidate++
			case Tied:
				st.Ties++
			}
		}
	}

	for _, r := range ridges {
		if !r.Terminated() {
			r.Terminate(ScaleLimit)
			st.ScaleLimit++
		}
	}

	return st
}

// Track seeds, sweeps and discards ridges shorter than minScale.
func (t *Tracker) Track(sg *cwt.Scaleogram, minScale int) ([]*Ridge, Stats) {
	ridges := t.Seed(sg)
	st := t.Sweep(sg, ridges)
	st.Seeds = len(ridges)

	kept, dropped := FilterLength(ridges, minScale)
	st.Discarded = dropped

	return kept, st
}

// FilterLength keeps ridges with at least minLen points, preserving order.
// It returns the kept ridges and the number dropped.
func FilterLength(ridges []*Ridge, minLen int) ([]*Ridge, int) {
	kept := make([]*Ridge, 0, len(ridges))
	for _, r := range ridges {
		if r.Len() >= minLen {
			kept = append(kept, r)
		}
	}

	return kept, len(ridges) - len(kept)
}

// Extend performs one step for r against the next scale's column.
//
// Candidates are positions within scaleDiff of the last point whose response
// is at least the last response. The rightmost candidate at or right of x
// and the leftmost candidate at or left of x are compared: the closer one
// wins, then the larger response. An exact tie closes the ridge.
func (t *Tracker) Extend(r *Ridge, column []float64) Outcome {
	if r.Terminated() {
		return Skipped
	}

	last := r.Last()
	x, xval := last.Position, last.Response
	n := len(column)
	if x < 0 || x >= n {
		r.Terminate(NoCandidate)
		return Stopped
	}

	right := -1
	for pos := x; pos <= min(n-1, x+t.scaleDiff); pos++ {
		if column[pos] >= xval {
			right = pos
		}
	}

	left := -1
	for pos := x; pos >= max(0, x-t.scaleDiff); pos-- {
		if column[pos] >= xval {
			left = pos
		}
	}

	var next int
	switch {
	case left < 0 && right < 0:
		r.Terminate(NoCandidate)
		return Stopped
	case left < 0:
		next = right
	case right < 0, left == right:
		next = left
	case x-left < right-x:
		next = left
	case right-x < x-left:
		next = right
	case column[left] > column[right]:
		next = left
	case column[right] > column[left]:
		next = right
	default:
		t.log.WithFields(logrus.Fields{
			"seed":     r.SeedPosition(),
			"scale":    last.ScaleIndex + 1,
			"position": x,
			"left":     left,
			"right":    right,
			"response": column[left],
		}).Debug("ridge: unresolved tie, terminating")
		r.Terminate(Tie)

		return Tied
	}

	// The scale index always follows Last, so Append cannot fail here.
	_ = r.Append(Point{Position: next, ScaleIndex: last.ScaleIndex + 1, Response: column[next]})

	return Extended
}
