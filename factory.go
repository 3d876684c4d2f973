package numvec

import (
	"fmt"
	"math"
	"math/rand/v2"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/stat/distuv"
)

func reject(o options, op string, err error) (*Vector, error) {
	o.logger.WithOp(op).LogInvalid(err)
	return nil, err
}

func finite(xs ...float64) bool {
	for _, x := range xs {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}
	return true
}

// Arange returns the values start, start+step, ... up to and including the
// last value that does not overshoot stop.
//
// The result is empty when start == stop or when step points away from stop.
func Arange(start, stop, step float64, optFns ...Option) (*Vector, error) {
	o := newOptions(optFns...)

	if step == 0 {
		return reject(o, "arange", fmt.Errorf("%w: step must not be zero", ErrInvalidArgument))
	}
	if !finite(start, stop, step) {
		return reject(o, "arange", fmt.Errorf("%w: bounds and step must be finite", ErrInvalidArgument))
	}

	span := stop - start
	if span == 0 || (span > 0) != (step > 0) {
		return build("arange", []float64{}, o)
	}

	steps := math.Floor(span / step)
	if steps >= math.MaxInt32 {
		return reject(o, "arange", fmt.Errorf("%w: range of %g values is too large", ErrInvalidArgument, steps+1))
	}

	n := int(steps) + 1
	data := make([]float64, n)
	for i := range data {
		data[i] = start + float64(i)*step
	}

	return build("arange", data, o)
}

// Fill returns a vector of length copies of value.
func Fill(length int, value float64, optFns ...Option) (*Vector, error) {
	o := newOptions(optFns...)

	if err := checkCount("length", length); err != nil {
		return reject(o, "fill", err)
	}

	data := make([]float64, length)
	for i := range data {
		data[i] = value
	}

	return build("fill", data, o)
}

// Ones returns a vector of length ones.
func Ones(length int, optFns ...Option) (*Vector, error) {
	return Fill(length, 1, optFns...)
}

// Zeros returns a vector of length zeros.
func Zeros(length int, optFns ...Option) (*Vector, error) {
	return Fill(length, 0, optFns...)
}

// FromString parses text as numbers separated by the configured separator
// (DefaultSeparator unless WithSeparator is given).
//
// Empty or whitespace-only text yields an empty vector. Surrounding
// whitespace of each token is ignored. A token that does not parse is
// rejected with ErrInvalidInput.
func FromString(text string, optFns ...Option) (*Vector, error) {
	o := newOptions(optFns...)

	if strings.TrimSpace(text) == "" {
		return build("fromString", []float64{}, o)
	}

	tokens := strings.Split(text, o.separator)
	data := make([]float64, len(tokens))
	for i, tok := range tokens {
		x, err := strconv.ParseFloat(strings.TrimSpace(tok), 64)
		if err != nil {
			x = math.NaN()
		}
		data[i] = x
	}

	return build("fromString", data, o)
}

// Linspace returns length values evenly spaced over [start, stop], both ends
// included.
//
// A length of one, or start == stop, yields the single element start.
func Linspace(start, stop float64, length int, optFns ...Option) (*Vector, error) {
	o := newOptions(optFns...)

	if err := checkCount("length", length); err != nil {
		return reject(o, "linspace", err)
	}

	switch {
	case length == 0:
		return build("linspace", []float64{}, o)
	case length == 1 || start == stop:
		return build("linspace", []float64{start}, o)
	}

	span := stop - start
	last := float64(length - 1)
	data := make([]float64, length)
	for i := range data {
		data[i] = start + span*float64(i)/last
	}
	data[length-1] = stop

	return build("linspace", data, o)
}

// Random returns length uniform samples in [0, 1).
func Random(length int, optFns ...Option) (*Vector, error) {
	o := newOptions(optFns...)

	if err := checkCount("length", length); err != nil {
		return reject(o, "random", err)
	}

	return uniform("random", 0, 1, length, o)
}

// RandomFloat returns length uniform samples in [min, max).
func RandomFloat(min, max float64, length int, optFns ...Option) (*Vector, error) {
	o := newOptions(optFns...)

	if err := checkCount("length", length); err != nil {
		return reject(o, "randomFloat", err)
	}
	if !finite(min, max) {
		return reject(o, "randomFloat", fmt.Errorf("%w: bounds must be finite", ErrInvalidArgument))
	}
	if min >= max {
		return reject(o, "randomFloat", fmt.Errorf("%w: min %g must be less than max %g", ErrInvalidArgument, min, max))
	}
	if math.IsInf(max-min, 0) {
		return reject(o, "randomFloat", fmt.Errorf("%w: range [%g, %g) overflows float64", ErrInvalidArgument, min, max))
	}

	return uniform("randomFloat", min, max, length, o)
}

func uniform(op string, min, max float64, length int, o options) (*Vector, error) {
	dist := distuv.Uniform{Min: min, Max: max, Src: o.source}

	data := make([]float64, length)
	for i := range data {
		data[i] = dist.Rand()
	}

	o.logger.WithOp(op).LogSample(length)

	return build(op, data, o)
}

// RandomInt returns length uniform integers in [min, max], both ends included.
func RandomInt(min, max, length int, optFns ...Option) (*Vector, error) {
	o := newOptions(optFns...)

	if err := checkCount("length", length); err != nil {
		return reject(o, "randomInt", err)
	}
	if min >= max {
		return reject(o, "randomInt", fmt.Errorf("%w: min %d must be less than max %d", ErrInvalidArgument, min, max))
	}

	r := rand.New(o.source)
	// Two's complement keeps the span correct even when max-min overflows int.
	span := uint64(max) - uint64(min) + 1

	data := make([]float64, length)
	for i := range data {
		var n uint64
		if span == 0 {
			n = r.Uint64()
		} else {
			n = r.Uint64N(span)
		}
		data[i] = float64(int(uint64(min) + n))
	}

	o.logger.WithOp("randomInt").LogSample(length)

	return build("randomInt", data, o)
}
