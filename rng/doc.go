// Package rng provides random sources for numvec.
//
// Every source implements math/rand/v2.Source, so it can be handed to
// numvec.WithSource, to rand.New, or to the gonum distributions.
//
// # Reproducible Draws
//
//	src := rng.New(4711)
//	v, _ := numvec.Random(8, numvec.WithSource(src))
//	src.Reset()
//	w, _ := numvec.Random(8, numvec.WithSource(src)) // w equals v
//
// # Process-wide Source
//
// System returns the source numvec uses when no source is configured.
// It is backed by the top-level math/rand/v2 generator and is safe for
// concurrent use.
package rng
