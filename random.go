package numvec

import (
	"fmt"
	"math/rand/v2"
	"slices"
)

// Choice returns one uniformly selected element.
func (v *Vector) Choice() (float64, error) {
	if v.Len() == 0 {
		return 0, fmt.Errorf("%w: choice", ErrEmptyVector)
	}
	r := rand.New(v.source())
	return v.data[r.IntN(v.Len())], nil
}

// Sample draws size elements.
//
// With replacement the draws are independent and size may exceed Len.
// Without replacement every position is drawn at most once, so the result
// holds no element more often than v does.
func (v *Vector) Sample(size int, replace bool) ([]float64, error) {
	if err := checkCount("size", size); err != nil {
		return nil, err
	}

	n := v.Len()
	out := make([]float64, 0, size)
	r := rand.New(v.source())

	if replace {
		if size > 0 && n == 0 {
			return nil, fmt.Errorf("%w: sample", ErrEmptyVector)
		}
		for range size {
			out = append(out, v.data[r.IntN(n)])
		}
	} else {
		if size > n {
			return nil, fmt.Errorf("%w: sample size %d exceeds length %d without replacement", ErrInvalidArgument, size, n)
		}
		pool := v.Elements()
		for range size {
			i := r.IntN(len(pool))
			out = append(out, pool[i])
			pool = slices.Delete(pool, i, i+1)
		}
	}

	v.logger().WithOp("sample").WithLength(n).LogSample(size)

	return out, nil
}

// Shuffle returns a new vector holding a uniformly random permutation of
// the elements.
func (v *Vector) Shuffle() *Vector {
	dst := v.Elements()
	r := rand.New(v.source())
	r.Shuffle(len(dst), func(i, j int) {
		dst[i], dst[j] = dst[j], dst[i]
	})

	v.logger().WithOp("shuffle").WithLength(len(dst)).LogSample(len(dst))

	return v.derive(dst)
}
