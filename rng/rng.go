package rng

import (
	"math/rand/v2"
	"sync"
)

// RNG struct encapsulates a seeded PCG generator and its seed.
// It is thread-safe.
type RNG struct {
	pcg  *rand.PCG
	rand *rand.Rand
	seed uint64
	mu   sync.Mutex
}

// New creates a new RNG instance with the specified seed.
func New(seed uint64) *RNG {
	pcg := rand.NewPCG(seed, seed)
	return &RNG{
		pcg:  pcg,
		rand: rand.New(pcg), // nolint gosec
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pcg.Seed(r.seed, r.seed)
}

// Uint64 returns a pseudo-random uint64. It implements rand.Source.
func (r *RNG) Uint64() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Uint64()
}

// FillUniform fills dst with random values in range [0, 1).
// Locks only once per call (preferred over calling Float64 in a loop).
func (r *RNG) FillUniform(dst []float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range dst {
		dst[i] = r.rand.Float64()
	}
}

// FillUniformRange fills dst with random values in range [minVal, maxVal).
func (r *RNG) FillUniformRange(dst []float64, minVal, maxVal float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	span := maxVal - minVal
	for i := range dst {
		dst[i] = minVal + r.rand.Float64()*span
	}
}

type systemSource struct{}

func (systemSource) Uint64() uint64 { return rand.Uint64() }

// System returns the process-wide source backed by the top-level
// math/rand/v2 generator. It is randomly seeded and cannot be reset.
func System() rand.Source {
	return systemSource{}
}
