package numvec

import (
	"fmt"
	"iter"
	"math"
	"math/rand/v2"
	"slices"
	"strconv"
	"strings"

	"github.com/hupe1980/numvec/rng"
)

// Number is the set of element types accepted by From.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Vector is an immutable, ordered sequence of float64 values.
//
// Elements are validated once, when the vector is built from external data:
// NaN and ±Inf are rejected with ErrInvalidInput. Results of transforms are
// not re-validated, so Log of a negative element or Divide by zero yield
// NaN and ±Inf elements in the returned vector.
//
// A Vector is never modified after construction and is safe for concurrent
// readers. The zero value is an empty vector.
type Vector struct {
	data []float64
	opts options
}

// New creates a vector from a list of values.
func New(values ...float64) (*Vector, error) {
	return FromSlice(values)
}

// FromSlice creates a vector holding a copy of values.
func FromSlice(values []float64, optFns ...Option) (*Vector, error) {
	return build("new", slices.Clone(values), newOptions(optFns...))
}

// FromSeq creates a vector from the values produced by seq.
func FromSeq(seq iter.Seq[float64], optFns ...Option) (*Vector, error) {
	return build("new", slices.Collect(seq), newOptions(optFns...))
}

// From converts a slice of any integer or float type into a vector.
func From[T Number](values []T, optFns ...Option) (*Vector, error) {
	data := make([]float64, len(values))
	for i, x := range values {
		data[i] = float64(x)
	}
	return build("new", data, newOptions(optFns...))
}

// build takes ownership of data and validates it.
func build(op string, data []float64, o options) (*Vector, error) {
	if err := validate(data); err != nil {
		o.logger.WithOp(op).LogInvalid(err)
		return nil, err
	}
	if data == nil {
		data = []float64{}
	}
	return &Vector{data: data, opts: o}, nil
}

func validate(data []float64) error {
	for i, x := range data {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return &ErrInvalidElement{Index: i, Value: x}
		}
	}
	return nil
}

// derive wraps a transform result. The result is not validated.
func (v *Vector) derive(data []float64) *Vector {
	return &Vector{data: data, opts: v.opts}
}

// With returns a vector with the same elements and a modified configuration.
func (v *Vector) With(optFns ...Option) *Vector {
	o := v.opts
	if o.source == nil {
		o = defaultOptions()
	}
	o.apply(optFns...)
	return &Vector{data: v.raw(), opts: o}
}

// raw returns the backing slice; callers must not modify it.
func (v *Vector) raw() []float64 {
	if v == nil {
		return nil
	}
	return v.data
}

func (v *Vector) source() rand.Source {
	if v.opts.source == nil {
		return rng.System()
	}
	return v.opts.source
}

func (v *Vector) logger() *Logger {
	if v.opts.logger == nil {
		return NoopLogger()
	}
	return v.opts.logger
}

func (v *Vector) separator() string {
	if v.opts.separator == "" {
		return DefaultSeparator
	}
	return v.opts.separator
}

// Elements returns a copy of the elements.
func (v *Vector) Elements() []float64 {
	out := make([]float64, v.Len())
	copy(out, v.raw())
	return out
}

// Element returns the element at index.
func (v *Vector) Element(index int) (float64, error) {
	if index < 0 || index >= v.Len() {
		return 0, fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfRange, index, v.Len())
	}
	return v.data[index], nil
}

// Len returns the number of elements.
func (v *Vector) Len() int {
	return len(v.raw())
}

// All returns an iterator over index/element pairs in order.
func (v *Vector) All() iter.Seq2[int, float64] {
	return slices.All(v.raw())
}

// Equal reports whether v and other hold the same elements in the same order.
// NaN elements never compare equal.
func (v *Vector) Equal(other *Vector) bool {
	return slices.Equal(v.raw(), other.raw())
}

// String joins the elements with the configured separator.
// The result parses back with FromString under the same separator.
func (v *Vector) String() string {
	var sb strings.Builder
	for i, x := range v.raw() {
		if i > 0 {
			sb.WriteString(v.separator())
		}
		sb.WriteString(strconv.FormatFloat(x, 'g', -1, 64))
	}
	return sb.String()
}
