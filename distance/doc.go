// Package distance provides float64 vector distance calculations.
//
// All functions are thin wrappers over gonum's floats package and assume
// equal-length inputs; length checks belong to the caller.
//
// # Supported Metrics
//
//   - MetricL2: Euclidean distance
//   - MetricSquaredL2: Squared Euclidean distance
//   - MetricManhattan: Sum of absolute differences
//   - MetricCosine: One minus cosine similarity
//   - MetricDot: Dot product (inner product)
//
// # Usage
//
//	dist := distance.L2(a, b)
//	sim := distance.Dot(a, b)
//	fn, _ := distance.Provider(distance.MetricCosine)
package distance
