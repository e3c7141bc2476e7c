package peak

import (
	"fmt"

	"github.com/cwbudde/algo-cwtpeaks/measure/peak/ridge"
)

// Peak describes one detected peak. The apex is the ridge's seed position;
// ApexIntensity is taken from the raw signal.
type Peak struct {
	ApexIndex     int
	ApexTime      float64
	ApexIntensity float64
	Channel       float64
}

// Extract converts ridges into peaks, keeping their order.
func Extract(signal, timeAxis []float64, channel float64, ridges []*ridge.Ridge) ([]Peak, error) {
	if len(signal) != len(timeAxis) {
		return nil, fmt.Errorf("%w: %d samples, %d times", ErrLengthMismatch, len(signal), len(timeAxis))
	}

	peaks := make([]Peak, 0, len(ridges))
	for _, r := range ridges {
		idx := r.SeedPosition()
		if idx < 0 || idx >= len(signal) {
			return nil, fmt.Errorf("%w: index %d, %d samples", ErrRidgeOutOfRange, idx, len(signal))
		}

		peaks = append(peaks, Peak{
			ApexIndex:     idx,
			ApexTime:      timeAxis[idx],
			ApexIntensity: signal[idx],
			Channel:       channel,
		})
	}

	return peaks, nil
}
