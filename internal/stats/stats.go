// Package stats computes descriptive statistics over reading values.
//
// Every function takes the values in any order and leaves the input slice
// untouched. An empty input yields ErrEmptyResult.
package stats

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/itsatony/w4b_v3/server/readings/internal/models"
)

// ErrEmptyResult is returned when there are no values to aggregate
var ErrEmptyResult = errors.New("no values to aggregate")

func Min(values []int) (int, error) {
	if len(values) == 0 {
		return 0, ErrEmptyResult
	}
	return slices.Min(values), nil
}

func Max(values []int) (int, error) {
	if len(values) == 0 {
		return 0, ErrEmptyResult
	}
	return slices.Max(values), nil
}

func Mean(values []int) (float64, error) {
	if len(values) == 0 {
		return 0, ErrEmptyResult
	}
	sum := 0.0
	for _, v := range values {
		sum += float64(v)
	}
	return sum / float64(len(values)), nil
}

// Median averages the two middle values when the count is even
func Median(values []int) (float64, error) {
	return Quantile(values, 0.5)
}

// Mode returns the value with the strictly highest frequency.
// It returns nil when two or more values share that frequency, which
// includes every set of more than one distinct value where nothing repeats.
func Mode(values []int) (*int, error) {
	if len(values) == 0 {
		return nil, ErrEmptyResult
	}

	counts := make(map[int]int, len(values))
	for _, v := range values {
		counts[v]++
	}

	var mode int
	best, tied := 0, false
	for v, c := range counts {
		switch {
		case c > best:
			mode, best, tied = v, c, false
		case c == best:
			tied = true
		}
	}
	if tied {
		return nil, nil
	}
	return &mode, nil
}

// Quantile estimates the p-quantile by linear interpolation between the
// order statistics around rank (n-1)*p.
func Quantile(values []int, p float64) (float64, error) {
	if len(values) == 0 {
		return 0, ErrEmptyResult
	}
	if p < 0 || p > 1 || math.IsNaN(p) {
		return 0, fmt.Errorf("quantile %v out of range [0,1]", p)
	}

	sorted := slices.Clone(values)
	slices.Sort(sorted)

	h := float64(len(sorted)-1) * p
	lo := int(math.Floor(h))
	if lo >= len(sorted)-1 {
		return float64(sorted[len(sorted)-1]), nil
	}
	frac := h - float64(lo)
	return float64(sorted[lo]) + frac*float64(sorted[lo+1]-sorted[lo]), nil
}

// Quartiles returns the first and third quartiles
func Quartiles(values []int) (first, third float64, err error) {
	if first, err = Quantile(values, 0.25); err != nil {
		return 0, 0, err
	}
	if third, err = Quantile(values, 0.75); err != nil {
		return 0, 0, err
	}
	return first, third, nil
}

// Compute dispatches to the single-valued statistic named by stat.
// The result is an int for min and max, a float64 for mean and median,
// and an *int (nil when not unique) for mode.
func Compute(stat models.Statistic, values []int) (any, error) {
	switch stat {
	case models.StatMin:
		return Min(values)
	case models.StatMax:
		return Max(values)
	case models.StatMean:
		return Mean(values)
	case models.StatMedian:
		return Median(values)
	case models.StatMode:
		return Mode(values)
	default:
		return nil, fmt.Errorf("unknown statistic %q", stat)
	}
}
