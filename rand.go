package combo32

// Generators used only to fill the random table: Sebastiano Vigna's
// SplitMix64 seeding a Xorshift128+ stream, which passes all BigCrush
// tests.

const golden64 = 0x9E3779B97F4A7C15

// splitMix64 runs one round of SplitMix64 over x.
func splitMix64(x uint64) uint64 {
	x = (x ^ (x >> 30)) * 0xBF58476D1CE4E5B9
	x = (x ^ (x >> 27)) * 0x94D049BB133111EB
	return x ^ (x >> 31)
}

type xorshift128p struct {
	x0, x1 uint64
}

// newXorshift128p seeds the generator state with two successive rounds of
// SplitMix64, as Vigna recommends.
func newXorshift128p(seed uint64) xorshift128p {
	seed += golden64
	x0 := splitMix64(seed)
	seed += golden64
	return xorshift128p{x0: x0, x1: splitMix64(seed)}
}

// next runs one round of Xorshift128+. The 23/18/5 shifts are tunable.
func (s *xorshift128p) next() uint64 {
	x0, x1 := s.x0, s.x1
	s.x0 = x1
	x0 ^= x0 << 23
	x0 ^= x0 >> 18
	x0 ^= x1 ^ (x1 >> 5)
	s.x1 = x0
	return x0 + x1
}
