// Package extrema locates local maxima in sampled responses.
//
// A sample is a local maximum when the finite difference entering it is
// non-negative and the difference leaving it is non-positive. The comparison
// is inclusive at zero, so every interior sample of a plateau counts as a
// maximum. The first and last samples are never reported.
package extrema

// Derivative returns the first discrete derivative of x: forward differences
// x[k+1]-x[k] for k < len(x)-1 and the backward difference at the last index.
// Inputs shorter than two samples yield an all-zero result.
func Derivative(x []float64) []float64 {
	out := make([]float64, len(x))
	DerivativeTo(out, x)
	return out
}

// DerivativeTo writes the derivative of x into dst, which must have len(x).
func DerivativeTo(dst, x []float64) {
	n := len(x)
	if n < 2 {
		for i := range dst {
			dst[i] = 0
		}
		return
	}

	for k := 0; k < n-1; k++ {
		dst[k] = x[k+1] - x[k]
	}
	dst[n-1] = x[n-1] - x[n-2]
}

// LocalMaxima returns the ascending indices of local maxima in column.
func LocalMaxima(column []float64) []int {
	return AppendLocalMaxima(nil, column)
}

// AppendLocalMaxima appends the local maxima of column to dst.
func AppendLocalMaxima(dst []int, column []float64) []int {
	n := len(column)
	if n < 3 {
		return dst
	}

	d := Derivative(column)
	for i := 1; i < n-1; i++ {
		// d[i-1] enters sample i, d[i] leaves it.
		if d[i-1] >= 0 && d[i] <= 0 {
			dst = append(dst, i)
		}
	}
	return dst
}
