// Package ridge links per-scale local maxima of a scaleogram into ridges.
//
// A Ridge is a plain append-only aggregate of points. The extension policy
// lives in Tracker.
package ridge

import (
	"errors"
	"fmt"
)

// Errors returned when appending to a ridge.
var (
	ErrScaleGap   = errors.New("ridge: scale index must advance by exactly one")
	ErrTerminated = errors.New("ridge: ridge is terminated")
)

// Point is one sample of a ridge.
type Point struct {
	Position   int
	ScaleIndex int
	Response   float64
}

// End describes why a ridge stopped extending.
type End int

const (
	// Open ridges may still be extended.
	Open End = iota
	// NoCandidate means no position in the search window reached the
	// ridge's last response.
	NoCandidate
	// Tie means both sides offered a candidate at equal distance with
	// equal response.
	Tie
	// ScaleLimit means the ridge reached the coarsest scale.
	ScaleLimit
)

// String returns the end reason name.
func (e End) String() string {
	switch e {
	case Open:
		return "open"
	case NoCandidate:
		return "no-candidate"
	case Tie:
		return "tie"
	case ScaleLimit:
		return "scale-limit"
	default:
		return fmt.Sprintf("End(%d)", int(e))
	}
}

// Ridge is an ordered sequence of points, one per consecutive scale.
type Ridge struct {
	points []Point
	maxIdx int
	end    End
}

// New starts a ridge at seed.
func New(seed Point) *Ridge {
	return &Ridge{points: []Point{seed}}
}

// Append adds p to the ridge. p.ScaleIndex must be one above the last point.
func (r *Ridge) Append(p Point) error {
	if r.end != Open {
		return ErrTerminated
	}

	last := r.Last()
	if p.ScaleIndex != last.ScaleIndex+1 {
		return fmt.Errorf("%w: got %d after %d", ErrScaleGap, p.ScaleIndex, last.ScaleIndex)
	}

	r.points = append(r.points, p)
	if p.Response > r.points[r.maxIdx].Response {
		r.maxIdx = len(r.points) - 1
	}

	return nil
}

// Terminate closes the ridge. Terminating an already closed ridge keeps the
// first reason.
func (r *Ridge) Terminate(reason End) {
	if r.end == Open && reason != Open {
		r.end = reason
	}
}

// Terminated reports whether the ridge rejects further points.
func (r *Ridge) Terminated() bool { return r.end != Open }

// End returns why the ridge stopped, or Open.
func (r *Ridge) End() End { return r.end }

// Len returns the number of points.
func (r *Ridge) Len() int { return len(r.points) }

// At returns the i-th point.
func (r *Ridge) At(i int) Point { return r.points[i] }

// Seed returns the first point.
func (r *Ridge) Seed() Point { return r.points[0] }

// Last returns the most recently appended point.
func (r *Ridge) Last() Point { return r.points[len(r.points)-1] }

// Maximum returns the point with the highest response. The earliest point
// wins among equal responses.
func (r *Ridge) Maximum() Point { return r.points[r.maxIdx] }

// IndexOfMaximum returns the index of Maximum within Points.
func (r *Ridge) IndexOfMaximum() int { return r.maxIdx }

// SeedPosition returns the position of the first point.
func (r *Ridge) SeedPosition() int { return r.points[0].Position }

// Points returns a copy of the ridge points.
func (r *Ridge) Points() []Point {
	out := make([]Point, len(r.points))
	copy(out, r.points)

	return out
}
