package numvec

import (
	"errors"
	"math"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustNew(t *testing.T, values ...float64) *Vector {
	t.Helper()
	v, err := New(values...)
	require.NoError(t, err)
	return v
}

func TestNewRoundTrip(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
	}{
		{"Simple", []float64{1, 2, 3}},
		{"Mixed", []float64{-1.5, 0, 2e10}},
		{"Single", []float64{42}},
		{"Empty", []float64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := New(tt.values...)
			require.NoError(t, err)
			assert.Equal(t, tt.values, v.Elements())
			assert.Equal(t, len(tt.values), v.Len())
		})
	}
}

func TestElementsIsACopy(t *testing.T) {
	v := mustNew(t, 1, 2, 3)

	e := v.Elements()
	e[0] = 100

	assert.Equal(t, []float64{1, 2, 3}, v.Elements())
}

func TestFromSliceCopiesInput(t *testing.T) {
	in := []float64{1, 2, 3}
	v, err := FromSlice(in)
	require.NoError(t, err)

	in[1] = 100

	assert.Equal(t, []float64{1, 2, 3}, v.Elements())
}

func TestFromSeq(t *testing.T) {
	v, err := FromSeq(slices.Values([]float64{4, 5, 6}))
	require.NoError(t, err)
	assert.Equal(t, []float64{4, 5, 6}, v.Elements())

	empty, err := FromSeq(slices.Values([]float64(nil)))
	require.NoError(t, err)
	assert.Equal(t, 0, empty.Len())
	assert.Equal(t, []float64{}, empty.Elements())
}

func TestFrom(t *testing.T) {
	v, err := From([]int{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3}, v.Elements())

	f, err := From([]float32{0.5, 1.5})
	require.NoError(t, err)
	assert.Equal(t, []float64{0.5, 1.5}, f.Elements())

	_, err = From([]float32{float32(math.NaN())})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestNewRejectsNonFinite(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		index  int
	}{
		{"NaN", []float64{1, math.NaN(), 3}, 1},
		{"PosInf", []float64{math.Inf(1)}, 0},
		{"NegInf", []float64{1, 2, math.Inf(-1)}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := New(tt.values...)
			require.Error(t, err)
			assert.Nil(t, v)
			assert.ErrorIs(t, err, ErrInvalidInput)

			var ie *ErrInvalidElement
			require.True(t, errors.As(err, &ie))
			assert.Equal(t, tt.index, ie.Index)
		})
	}
}

func TestElement(t *testing.T) {
	v := mustNew(t, 10, 20, 30)

	x, err := v.Element(1)
	require.NoError(t, err)
	assert.Equal(t, 20.0, x)

	for _, idx := range []int{-1, 3, 100} {
		_, err := v.Element(idx)
		assert.ErrorIs(t, err, ErrIndexOutOfRange)
	}
}

func TestAll(t *testing.T) {
	v := mustNew(t, 1, 2, 3)

	var idx []int
	var vals []float64
	for i, x := range v.All() {
		idx = append(idx, i)
		vals = append(vals, x)
	}

	assert.Equal(t, []int{0, 1, 2}, idx)
	assert.Equal(t, []float64{1, 2, 3}, vals)
}

func TestEqual(t *testing.T) {
	a := mustNew(t, 1, 2, 3)

	assert.True(t, a.Equal(mustNew(t, 1, 2, 3)))
	assert.False(t, a.Equal(mustNew(t, 3, 2, 1)))
	assert.False(t, a.Equal(mustNew(t, 1, 2)))
	assert.False(t, a.Equal(nil))
	assert.True(t, mustNew(t).Equal(nil))
}

func TestString(t *testing.T) {
	v := mustNew(t, 1, 2.5, -3)

	assert.Equal(t, "1;2.5;-3", v.String())
	assert.Equal(t, "1, 2.5, -3", v.With(WithSeparator(", ")).String())
	assert.Equal(t, "", mustNew(t).String())
}

func TestStringParsesBack(t *testing.T) {
	v := mustNew(t, 0.1, -2e-9, 12345.678, 1e300)

	w, err := FromString(v.String())
	require.NoError(t, err)
	assert.True(t, v.Equal(w))
}

func TestZeroValue(t *testing.T) {
	var v Vector

	assert.Equal(t, 0, v.Len())
	assert.Equal(t, []float64{}, v.Elements())
	assert.Equal(t, 0.0, v.Sum())
	assert.Equal(t, 0, v.Shuffle().Len())
	assert.Equal(t, "", v.String())

	_, err := v.Max()
	assert.ErrorIs(t, err, ErrEmptyVector)
}
