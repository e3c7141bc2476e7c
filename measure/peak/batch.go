package peak

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Channel is one intensity trace, such as an extracted-ion chromatogram.
type Channel struct {
	Identity float64 // e.g. m/z
	Signal   []float64
	Time     []float64
}

// DetectChannels runs Detect for every channel on up to workers goroutines
// (unlimited when workers <= 0). Results are index-aligned with channels.
// Cancellation is observed between channels; a running detection is never
// interrupted. The first error aborts the remaining submissions.
func (d *Detector) DetectChannels(ctx context.Context, channels []Channel, workers int) ([]Result, error) {
	g, gctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}

	results := make([]Result, len(channels))
	for i, ch := range channels {
		if gctx.Err() != nil {
			break
		}

		g.Go(func() error {
			res, err := d.Detect(ch.Signal, ch.Time, ch.Identity)
			if err != nil {
				return fmt.Errorf("peak: channel %d (%g): %w", i, ch.Identity, err)
			}
			results[i] = res

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return results, nil
}
