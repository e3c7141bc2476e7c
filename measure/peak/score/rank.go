package score

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/cwbudde/algo-cwtpeaks/measure/peak/ridge"
)

// Result is one named score.
type Result struct {
	Name  string
	Value float64
}

// Scored is a ridge together with the scores it received.
type Scored struct {
	Ridge   *ridge.Ridge
	Results []Result
}

// Value returns the score called name.
func (s Scored) Value(name string) (float64, bool) {
	for _, r := range s.Results {
		if r.Name == name {
			return r.Value, true
		}
	}

	return 0, false
}

// Evaluate applies scorers to every ridge in order. Non-finite scores are
// left out, so a ridge may lack a result for some scorers.
func Evaluate(ridges []*ridge.Ridge, scorers ...Scorer) []Scored {
	out := make([]Scored, len(ridges))
	for i, r := range ridges {
		out[i].Ridge = r
		for _, s := range scorers {
			v := s.Score(r)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				continue
			}
			out[i].Results = append(out[i].Results, Result{Name: s.Name(), Value: v})
		}
	}

	return out
}

// Order is a sort direction.
type Order int

// Sort directions.
const (
	Ascending Order = iota
	Descending
)

// String returns "asc" or "desc".
func (o Order) String() string {
	if o == Descending {
		return "desc"
	}

	return "asc"
}

// Criterion sorts by one named score.
type Criterion struct {
	Name  string
	Order Order
}

// String returns the criterion in name:order form.
func (c Criterion) String() string { return c.Name + ":" + c.Order.String() }

// ParseCriterion parses "name", "name:asc" or "name:desc".
func ParseCriterion(s string) (Criterion, error) {
	name, order, found := strings.Cut(strings.TrimSpace(s), ":")
	name = strings.TrimSpace(name)
	if name == "" {
		return Criterion{}, fmt.Errorf("%w: %q", ErrInvalidCriterion, s)
	}

	c := Criterion{Name: name}
	if !found {
		return c, nil
	}

	switch strings.ToLower(strings.TrimSpace(order)) {
	case "asc", "ascending":
		c.Order = Ascending
	case "desc", "descending":
		c.Order = Descending
	default:
		return Criterion{}, fmt.Errorf("%w: %q", ErrInvalidCriterion, s)
	}

	return c, nil
}

// Rank stable-sorts entries by criteria, earlier criteria taking precedence.
// Entries lacking a score for any criterion are returned separately in their
// input order. The input slice is not modified.
func Rank(entries []Scored, criteria ...Criterion) (ranked, unranked []Scored) {
	ranked = make([]Scored, 0, len(entries))
	for _, e := range entries {
		if hasAll(e, criteria) {
			ranked = append(ranked, e)
		} else {
			unranked = append(unranked, e)
		}
	}

	if len(criteria) == 0 {
		return ranked, unranked
	}

	slices.SortStableFunc(ranked, func(a, b Scored) int {
		for _, c := range criteria {
			va, _ := a.Value(c.Name)
			vb, _ := b.Value(c.Name)

			cmp := 0
			switch {
			case va < vb:
				cmp = -1
			case va > vb:
				cmp = 1
			}
			if c.Order == Descending {
				cmp = -cmp
			}
			if cmp != 0 {
				return cmp
			}
		}

		return 0
	})

	return ranked, unranked
}

func hasAll(e Scored, criteria []Criterion) bool {
	for _, c := range criteria {
		if _, ok := e.Value(c.Name); !ok {
			return false
		}
	}

	return true
}
