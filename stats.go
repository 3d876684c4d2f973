package numvec

import (
	"fmt"
	"math"
	"slices"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Mean returns the arithmetic mean.
// It fails with ErrEmptyVector rather than returning NaN.
func (v *Vector) Mean() (float64, error) {
	if v.Len() == 0 {
		return 0, fmt.Errorf("%w: mean", ErrEmptyVector)
	}
	return stat.Mean(v.raw(), nil), nil
}

func checkPercentile(p float64) error {
	if math.IsNaN(p) || p < 0 || p > 100 {
		return fmt.Errorf("%w: percentile %g outside [0, 100]", ErrInvalidArgument, p)
	}
	return nil
}

func (v *Vector) sorted(op string) ([]float64, error) {
	if v.Len() == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyVector, op)
	}
	s := v.Elements()
	slices.Sort(s)
	return s, nil
}

// percentile interpolates linearly between the two sorted values that
// bracket the fractional rank (n-1)*p/100.
func percentile(sorted []float64, p float64) float64 {
	rank := float64(len(sorted)-1) * p / 100
	lo := math.Floor(rank)
	hi := math.Ceil(rank)
	if lo == hi {
		return sorted[int(lo)]
	}
	a, b := sorted[int(lo)], sorted[int(hi)]
	return a + (b-a)*(rank-lo)
}

// Percentile returns the p-th percentile, p in [0, 100], using linear
// interpolation.
func (v *Vector) Percentile(p float64) (float64, error) {
	if err := checkPercentile(p); err != nil {
		return 0, err
	}
	s, err := v.sorted("percentile")
	if err != nil {
		return 0, err
	}
	return percentile(s, p), nil
}

// Median returns the 50th percentile.
func (v *Vector) Median() (float64, error) {
	return v.Percentile(50)
}

// IQR returns the interquartile range, the 75th minus the 25th percentile.
func (v *Vector) IQR() (float64, error) {
	s, err := v.sorted("iqr")
	if err != nil {
		return 0, err
	}
	return percentile(s, 75) - percentile(s, 25), nil
}

// Quantile returns the q-1 cut points that split the data into q groups of
// equal probability, at percentiles 100/q, 200/q, ..., (q-1)*100/q.
func (v *Vector) Quantile(q int) ([]float64, error) {
	if q < 1 {
		return nil, fmt.Errorf("%w: quantile count must be positive, got %d", ErrInvalidArgument, q)
	}
	if q == 1 {
		return []float64{}, nil
	}
	s, err := v.sorted("quantile")
	if err != nil {
		return nil, err
	}
	cuts := make([]float64, q-1)
	for k := range cuts {
		cuts[k] = percentile(s, float64(k+1)*100/float64(q))
	}
	return cuts, nil
}

// Average returns the weighted mean Σ(xᵢ·wᵢ)/Σwᵢ.
func (v *Vector) Average(weights *Vector) (float64, error) {
	if err := checkLength(v.Len(), weights.Len()); err != nil {
		return 0, err
	}
	if v.Len() == 0 {
		return 0, fmt.Errorf("%w: average", ErrEmptyVector)
	}
	if floats.Sum(weights.raw()) == 0 {
		return 0, fmt.Errorf("%w: weights sum to zero", ErrDivisionByZero)
	}
	return stat.Mean(v.raw(), weights.raw()), nil
}

// Variance returns the mean squared deviation from the mean. The divisor is
// n when population is true and n-1 otherwise.
//
// The sample variance of a single element fails with ErrInvalidArgument.
func (v *Vector) Variance(population bool) (float64, error) {
	n := v.Len()
	if n == 0 {
		return 0, fmt.Errorf("%w: variance", ErrEmptyVector)
	}
	if population {
		return stat.PopVariance(v.raw(), nil), nil
	}
	if n == 1 {
		return 0, fmt.Errorf("%w: sample variance needs at least two elements", ErrInvalidArgument)
	}
	return stat.Variance(v.raw(), nil), nil
}

// Std returns the square root of Variance(population).
func (v *Vector) Std(population bool) (float64, error) {
	variance, err := v.Variance(population)
	if err != nil {
		return 0, err
	}
	return math.Sqrt(variance), nil
}
