// Package numvec provides an immutable float64 vector with NumPy-like
// operations: factories, elementwise math, linear algebra, random sampling
// and descriptive statistics.
//
// # Quick Start
//
//	v, _ := numvec.New(1, 2, 3)
//	w, _ := numvec.Arange(4, 6, 1)
//	dot, _ := v.Dot(w)         // 32
//	mean, _ := v.Mean()        // 2
//	scaled := v.Multiply(2)    // [2 4 6]
//
// # Validation
//
// Constructors and factories reject NaN and ±Inf elements with
// ErrInvalidInput. Transforms are not re-validated: Log of a negative
// element yields NaN, Divide by zero yields ±Inf, and both are kept.
//
// # Broadcasting
//
// Add, Subtract, Multiply, Divide, Maximum and Minimum take a scalar that
// applies to every element. Their *Vector counterparts (AddVector, ...)
// combine two vectors of equal length and fail with ErrLengthMismatch
// otherwise.
//
// # Randomness
//
// Random factories and the Choice, Sample and Shuffle methods draw from a
// math/rand/v2 Source. The default is rng.System(); pass WithSource for
// reproducible draws:
//
//	src := rng.New(4711)
//	v, _ := numvec.RandomInt(1, 6, 10, numvec.WithSource(src))
//	s := v.Shuffle() // uses the same source
//
// # Errors
//
// All failures are synchronous and wrap one of ErrInvalidInput,
// ErrInvalidArgument, ErrLengthMismatch, ErrDivisionByZero, ErrEmptyVector
// or ErrIndexOutOfRange; test them with errors.Is.
package numvec
