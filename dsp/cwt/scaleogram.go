package cwt

import "fmt"

// Scaleogram is an immutable position-by-scale matrix of CWT responses.
// Column i holds the response at scale i+1.
type Scaleogram struct {
	n      int
	scales []float64
	data   []float64 // column-major, data[col*n+pos]
}

// Scaleogram evaluates the transform of signal at integer scales 1..maxScale.
func (t *Transform) Scaleogram(signal []float64, maxScale int) (*Scaleogram, error) {
	if len(signal) == 0 {
		return nil, ErrEmptyInput
	}
	if maxScale < 1 {
		return nil, fmt.Errorf("%w: max scale %d (must be >= 1)", ErrInvalidScale, maxScale)
	}

	n := len(signal)
	sg := &Scaleogram{
		n:      n,
		scales: make([]float64, maxScale),
		data:   make([]float64, n*maxScale),
	}

	var fc *fftCorrelator
	if t.method == MethodFFT {
		var err error
		fc, err = newFFTCorrelator(signal, reach(float64(maxScale)))
		if err != nil {
			return nil, err
		}
	}

	scratch := make([]float64, 2*maxScale+1)
	for col := 0; col < maxScale; col++ {
		scale := float64(col + 1)
		sg.scales[col] = scale

		dst := sg.data[col*n : (col+1)*n]
		lut := t.lut(scale)
		h, r := halfWidth(scale), reach(scale)

		if fc != nil {
			if err := fc.correlate(dst, lut, h, r, sqrtScale(scale)); err != nil {
				return nil, err
			}
			continue
		}
		correlateTruncated(dst, signal, lut, h, r, sqrtScale(scale), scratch)
	}

	return sg, nil
}

// FromColumns builds a scaleogram from precomputed responses. Column i is
// taken as scale i+1; all columns must share one non-zero length.
func FromColumns(columns [][]float64) (*Scaleogram, error) {
	if len(columns) == 0 || len(columns[0]) == 0 {
		return nil, ErrEmptyInput
	}

	n := len(columns[0])
	sg := &Scaleogram{
		n:      n,
		scales: make([]float64, len(columns)),
		data:   make([]float64, 0, n*len(columns)),
	}
	for i, col := range columns {
		if len(col) != n {
			return nil, fmt.Errorf("%w: column %d has %d samples, want %d", ErrLengthMismatch, i, len(col), n)
		}
		sg.scales[i] = float64(i + 1)
		sg.data = append(sg.data, col...)
	}

	return sg, nil
}

// InverseScaleogram reconstructs a signal from all columns of sg.
func (t *Transform) InverseScaleogram(sg *Scaleogram) ([]float64, error) {
	if sg == nil || sg.n == 0 {
		return nil, ErrEmptyInput
	}

	responses := make([][]float64, len(sg.scales))
	for i := range responses {
		responses[i] = sg.column(i)
	}
	return t.Inverse(responses, sg.Scales())
}

// Len returns the number of positions (signal samples).
func (s *Scaleogram) Len() int { return s.n }

// NumScales returns the number of scale columns.
func (s *Scaleogram) NumScales() int { return len(s.scales) }

// Scale returns the scale of column i.
func (s *Scaleogram) Scale(i int) float64 { return s.scales[i] }

// Scales returns a copy of the scale of every column.
func (s *Scaleogram) Scales() []float64 { return append([]float64(nil), s.scales...) }

// At returns the response at position pos in column scaleIndex.
func (s *Scaleogram) At(pos, scaleIndex int) float64 {
	return s.data[scaleIndex*s.n+pos]
}

// Column returns a copy of column i.
func (s *Scaleogram) Column(i int) []float64 {
	return append([]float64(nil), s.column(i)...)
}

// ColumnView returns column i without copying. The slice aliases the
// scaleogram's storage and must not be modified.
func (s *Scaleogram) ColumnView(i int) []float64 {
	return s.column(i)
}

func (s *Scaleogram) column(i int) []float64 {
	return s.data[i*s.n : (i+1)*s.n : (i+1)*s.n]
}
