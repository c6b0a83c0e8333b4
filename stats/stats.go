package stats

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// Mean returns the arithmetic mean of values.
//
// Errors: ErrEmptyInput if values is empty.
//
// Complexity: O(n) time, O(1) space.
func Mean(values []float64) (float64, error) {
	if len(values) == 0 {
		return 0, ErrEmptyInput
	}
	return stat.Mean(values, nil), nil
}

// SampleStdDev returns the Bessel-corrected standard deviation of values
// (sum of squared deviations divided by n−1).
//
// Errors: ErrInsufficientData if len(values) < 2.
//
// Complexity: O(n) time, O(1) space.
func SampleStdDev(values []float64) (float64, error) {
	if len(values) < 2 {
		return 0, ErrInsufficientData
	}
	return stat.StdDev(values, nil), nil
}

// PopulationStdDev returns the population standard deviation of values
// (sum of squared deviations divided by n).
//
// Errors: ErrEmptyInput if values is empty.
//
// Complexity: O(n) time, O(1) space.
func PopulationStdDev(values []float64) (float64, error) {
	if len(values) == 0 {
		return 0, ErrEmptyInput
	}
	return stat.PopStdDev(values, nil), nil
}

// MovingRanges returns |values[i] − values[i−1]| for i = 1..n−1.
// The result has length n−1; a single-point series yields an empty slice.
//
// Errors: ErrEmptyInput if values is empty.
//
// Complexity: O(n) time, O(n) space for the result.
func MovingRanges(values []float64) ([]float64, error) {
	if len(values) == 0 {
		return nil, ErrEmptyInput
	}
	ranges := make([]float64, 0, len(values)-1)
	for i := 1; i < len(values); i++ {
		ranges = append(ranges, math.Abs(values[i]-values[i-1]))
	}
	return ranges, nil
}

// Proportion returns defectCount/sampleSize as a fraction in [0,1].
//
// Errors: ErrInvalidArgument if sampleSize <= 0, defectCount < 0, or
// defectCount > sampleSize.
//
// Complexity: O(1).
func Proportion(defectCount, sampleSize int) (float64, error) {
	if sampleSize <= 0 || defectCount < 0 || defectCount > sampleSize {
		return 0, ErrInvalidArgument
	}
	return float64(defectCount) / float64(sampleSize), nil
}

// Range returns max(values) − min(values), the within-subgroup range used by
// R charts.
//
// Errors: ErrEmptyInput if values is empty.
//
// Complexity: O(n) time, O(1) space.
func Range(values []float64) (float64, error) {
	if len(values) == 0 {
		return 0, ErrEmptyInput
	}
	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return hi - lo, nil
}
