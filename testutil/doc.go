// Package testutil provides testing utilities for numvec.
//
// This package is intended for use in tests only. It provides seeded
// fixtures and helpers for checking random operations.
//
// # Fixtures
//
//	xs := testutil.UniformSlice(4711, 128, -10, 10)
//
// # Uniformity
//
//	counts := make([]int, n)
//	// ... tally draws
//	stat := testutil.ChiSquareUniform(counts)
package testutil
