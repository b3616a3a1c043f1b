package dispersion

import "math"

// Mean returns the arithmetic mean, 0.0 for an empty list.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0.0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// StdDev returns the standard deviation over the full list, 0.0 for an
// empty list.
func StdDev(values []float64) float64 {
	if len(values) == 0 {
		return 0.0
	}
	mean := Mean(values)
	sum := 0.0
	for _, v := range values {
		d := v - mean
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(values)))
}

// CV returns the coefficient of variation (stddev/mean), 0.0 when the list
// is empty or the mean is 0. Low CV over sentence or paragraph lengths
// signals suspiciously uniform prose.
func CV(values []float64) float64 {
	m := Mean(values)
	if m == 0 {
		return 0.0
	}
	return StdDev(values) / m
}
