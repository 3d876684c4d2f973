package numvec

import (
	"fmt"

	"github.com/hupe1980/numvec/distance"
)

// Dot returns the dot product of v and other.
func (v *Vector) Dot(other *Vector) (float64, error) {
	if err := checkLength(v.Len(), other.Len()); err != nil {
		return 0, err
	}
	return distance.Dot(v.raw(), other.raw()), nil
}

// Norm returns the Euclidean length of v.
func (v *Vector) Norm() float64 {
	return distance.Norm(v.raw())
}

// Distance returns the distance between v and other under metric.
func (v *Vector) Distance(other *Vector, metric distance.Metric) (float64, error) {
	fn, err := distance.Provider(metric)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}
	if err := checkLength(v.Len(), other.Len()); err != nil {
		return 0, err
	}
	return fn(v.raw(), other.raw()), nil
}
