package testutil

import (
	"gonum.org/v1/gonum/stat"

	"github.com/hupe1980/numvec/rng"
)

// UniformSlice returns n seeded values in [minVal, maxVal).
func UniformSlice(seed uint64, n int, minVal, maxVal float64) []float64 {
	dst := make([]float64, n)
	rng.New(seed).FillUniformRange(dst, minVal, maxVal)
	return dst
}

// UnitSlice returns the first n values in [0, 1) drawn from rng.New(seed).
func UnitSlice(seed uint64, n int) []float64 {
	dst := make([]float64, n)
	rng.New(seed).FillUniform(dst)
	return dst
}

// Counts returns the multiplicity of every value in xs.
func Counts(xs []float64) map[float64]int {
	counts := make(map[float64]int, len(xs))
	for _, x := range xs {
		counts[x]++
	}
	return counts
}

// ChiSquareUniform returns Pearson's chi-square statistic of counts against
// a uniform expectation over len(counts) categories.
func ChiSquareUniform(counts []int) float64 {
	if len(counts) == 0 {
		return 0
	}

	var total int
	for _, c := range counts {
		total += c
	}

	obs := make([]float64, len(counts))
	exp := make([]float64, len(counts))
	want := float64(total) / float64(len(counts))
	for i, c := range counts {
		obs[i] = float64(c)
		exp[i] = want
	}

	return stat.ChiSquare(obs, exp)
}
