// Package score evaluates and ranks ridges with caller-supplied cost
// functions.
package score

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/cwbudde/algo-cwtpeaks/measure/peak/ridge"
)

// Errors returned by the package.
var (
	ErrUnknownScorer    = errors.New("score: unknown scorer")
	ErrInvalidCriterion = errors.New("score: invalid criterion")
)

// Scorer maps a finished ridge to a named scalar.
type Scorer interface {
	Name() string
	Score(r *ridge.Ridge) float64
}

type funcScorer struct {
	name string
	fn   func(*ridge.Ridge) float64
}

func (s funcScorer) Name() string                 { return s.name }
func (s funcScorer) Score(r *ridge.Ridge) float64 { return s.fn(r) }

// Func adapts a plain function to Scorer.
func Func(name string, fn func(*ridge.Ridge) float64) Scorer {
	return funcScorer{name: name, fn: fn}
}

// DirectionChangePenalty measures how often a ridge changes direction.
// Lower is straighter.
type DirectionChangePenalty struct{}

// Name implements Scorer.
func (DirectionChangePenalty) Name() string { return "directionPenalty" }

// Score implements Scorer.
func (DirectionChangePenalty) Score(r *ridge.Ridge) float64 {
	n := r.Len()
	if n == 0 {
		return math.NaN()
	}

	var penalty, dir int
	for i := 1; i < n; i++ {
		next := sign(r.At(i).Position - r.At(i-1).Position)
		penalty += next - dir
		dir = next
	}

	return math.Abs(2 * float64(penalty) / float64(n))
}

// DampedPathIntegral sums squared responses damped by the distance from the
// seed position. Higher favours strong ridges that stay near their seed.
type DampedPathIntegral struct{}

// Name implements Scorer.
func (DampedPathIntegral) Name() string { return "dampedPathIntegral" }

// Score implements Scorer.
func (DampedPathIntegral) Score(r *ridge.Ridge) float64 {
	x0 := r.SeedPosition()

	var sum float64
	for i := range r.Len() {
		p := r.At(i)
		d := float64(p.Position - x0)
		sum += p.Response * p.Response / (1 + d*d)
	}

	return sum
}

// MaxResponse is the highest response along the ridge.
type MaxResponse struct{}

// Name implements Scorer.
func (MaxResponse) Name() string { return "response" }

// Score implements Scorer.
func (MaxResponse) Score(r *ridge.Ridge) float64 { return r.Maximum().Response }

var builtin = map[string]Scorer{
	DirectionChangePenalty{}.Name(): DirectionChangePenalty{},
	DampedPathIntegral{}.Name():     DampedPathIntegral{},
	MaxResponse{}.Name():            MaxResponse{},
}

// Lookup returns the built-in scorer with the given name.
func Lookup(name string) (Scorer, error) {
	s, ok := builtin[strings.TrimSpace(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScorer, name)
	}

	return s, nil
}

// Names returns the built-in scorer names in sorted order.
func Names() []string {
	names := make([]string, 0, len(builtin))
	for name := range builtin {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
