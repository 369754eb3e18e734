// Package stats contains the small numeric helpers shared by the forecast models and the
// analytics calculator. Every helper has an explicit branch for short or degenerate input
// so callers never see NaN or Inf.
package stats

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Clamp bounds v to [lower, upper].
func Clamp(v, lower, upper float64) float64 {
	return math.Max(lower, math.Min(upper, v))
}

// largeValue is the magnitude above which sums and squares risk overflowing.
const largeValue = 1e150

// Rescale divides y by a power of two close to its largest magnitude when that magnitude
// is large enough for sums or squares to overflow. Otherwise it returns y with a scale of
// 1. Values of the scaled slice are below 2.
func Rescale(y []float64) ([]float64, float64) {
	if len(y) == 0 {
		return y, 1
	}
	hi := math.Max(math.Abs(floats.Max(y)), math.Abs(floats.Min(y)))
	if hi < largeValue || math.IsInf(hi, 0) || math.IsNaN(hi) {
		return y, 1
	}
	_, exp := math.Frexp(hi)
	scale := math.Ldexp(1, exp-1)
	scaled := make([]float64, len(y))
	for i, v := range y {
		scaled[i] = v / scale
	}
	return scaled, scale
}

// Mean returns the arithmetic mean or 0 for an empty slice. The result stays within the
// range of y for values near the float64 limit.
func Mean(y []float64) float64 {
	if len(y) == 0 {
		return 0
	}
	scaled, scale := Rescale(y)
	mean := stat.Mean(scaled, nil) * scale
	lo, hi := MinMax(y)
	return Clamp(mean, lo, hi)
}

// PopStdDev returns the population standard deviation or 0 for fewer than two values.
func PopStdDev(y []float64) float64 {
	if len(y) < 2 {
		return 0
	}
	scaled, scale := Rescale(y)
	_, std := stat.PopMeanStdDev(scaled, nil)
	return std * scale
}

// StdDev returns the sample standard deviation or 0 for fewer than two values.
func StdDev(y []float64) float64 {
	if len(y) < 2 {
		return 0
	}
	scaled, scale := Rescale(y)
	return stat.StdDev(scaled, nil) * scale
}

// CoefficientOfVariation is the population standard deviation divided by the mean. A
// non-positive mean or a single value returns 0.
func CoefficientOfVariation(y []float64) float64 {
	mean := Mean(y)
	if mean <= 0 {
		return 0
	}
	return PopStdDev(y) / mean
}

// PctChanges returns the percent change between consecutive values, in percent units.
// Values are expected to be positive.
func PctChanges(y []float64) []float64 {
	if len(y) < 2 {
		return nil
	}
	changes := make([]float64, 0, len(y)-1)
	for i := 1; i < len(y); i++ {
		changes = append(changes, PctChange(y[i-1], y[i]))
	}
	return changes
}

// PctChange is the percent change going from prev to curr. A non-positive prev returns 0.
func PctChange(prev, curr float64) float64 {
	if prev <= 0 {
		return 0
	}
	return (curr - prev) / prev * 100.0
}

// MinMax returns the smallest and largest value or zeros for an empty slice.
func MinMax(y []float64) (float64, float64) {
	if len(y) == 0 {
		return 0, 0
	}
	return floats.Min(y), floats.Max(y)
}

// DetectOutliers returns the indices of values outside the Tukey fence built from the
// lower and upper percentiles.
func DetectOutliers(y []float64, lowerPerc, upperPerc, tukeyFactor float64) []int {
	if len(y) == 0 {
		return nil
	}
	lowerPerc = math.Max(lowerPerc, 0.0)
	upperPerc = math.Min(upperPerc, 1.0)
	tukeyFactor = math.Max(tukeyFactor, 0.0)

	yCopy := make([]float64, len(y))
	copy(yCopy, y)
	sort.Float64s(yCopy)
	lowerIdx := int(math.Floor(float64(len(yCopy)) * lowerPerc))
	upperIdx := int(math.Ceil(float64(len(yCopy)) * upperPerc))
	if upperIdx >= len(yCopy) {
		upperIdx = len(yCopy) - 1
	}

	lower := yCopy[lowerIdx]
	upper := yCopy[upperIdx]
	innerRange := upper - lower
	// all values inside the percentile band are identical so nothing can stand out
	if innerRange == 0 {
		return nil
	}
	lower -= innerRange * tukeyFactor
	upper += innerRange * tukeyFactor

	var outlierIdx []int
	for i := 0; i < len(y); i++ {
		if y[i] >= upper || y[i] <= lower {
			outlierIdx = append(outlierIdx, i)
		}
	}
	return outlierIdx
}
