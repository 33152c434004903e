// Package randutil centralises the seeded pseudo-random source used for
// reproducible shuffles. It is a plain linear congruential generator seeded
// from a string hash: identical seed strings yield identical sequences on
// every platform. This is deliberately not a CSPRNG; seed-replay
// reproducibility is a hard requirement for deal replays and tests.
package randutil

const (
	fnvOffset = 14695981039346656037
	fnvPrime  = 1099511628211

	lcgMul = 6364136223846793005
	lcgInc = 1442695040888963407
)

// Source is a deterministic pseudo-random sequence derived from a seed string.
type Source struct {
	state uint64
}

// NewString creates a Source seeded from the FNV-1a hash of seed.
func NewString(seed string) *Source {
	var h uint64 = fnvOffset
	for i := 0; i < len(seed); i++ {
		h ^= uint64(seed[i])
		h *= fnvPrime
	}
	return &Source{state: h}
}

// Uint64 advances the generator and returns the next value.
func (s *Source) Uint64() uint64 {
	s.state = s.state*lcgMul + lcgInc
	return s.state
}

// Intn returns a value in [0, n). Panics if n <= 0.
func (s *Source) Intn(n int) int {
	if n <= 0 {
		panic("randutil: Intn called with non-positive n")
	}
	// The low bits of an LCG have short periods; use the high bits.
	return int((s.Uint64() >> 16) % uint64(n))
}
