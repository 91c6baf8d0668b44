package combo32

// Initial lane values. Mult32 reuses the same pair for its 64-to-32
// reduction, so the two engines must agree on them.
const (
	komiSeed1 = 0xC5A308D3
	komiSeed5 = 0xB8D01377
)

// komiSeedMix folds 4 bytes of seed material into the lane pair. The input
// is split into its odd-bit and even-bit halves so that each lane absorbs
// a de-correlated view of the same word before the widening multiply.
func komiSeedMix(s1, s5, x uint32) (uint32, uint32) {
	r := uint64(s1^(x&0x55555555)) * uint64(s5^(x&0xAAAAAAAA))
	s5 += uint32(r >> 32)
	return s5 ^ uint32(r), s5
}

// komiRound is a mixing round without new input: the simplest
// constant-less PRNG step, with s1 as the output lane.
func komiRound(s1, s5 uint32) (uint32, uint32) {
	r := uint64(s1) * uint64(s5)
	s5 += uint32(r >> 32)
	return s5 ^ uint32(r), s5
}

// komiHash8 mixes 8 message bytes into the lane pair.
func komiHash8(s1, s5 uint32, p []byte) (uint32, uint32) {
	r := uint64(s1^read32(p)) * uint64(s5^read32(p[4:]))
	s5 += uint32(r >> 32)
	return s5 ^ uint32(r), s5
}

// komiFinalBytes builds a padded word from the remaining 0 to 3 bytes of
// the message plus the sentinel fb placed immediately after them.
func komiFinalBytes(p []byte, fb uint32) uint32 {
	m := fb << (len(p) * 8)
	for i, b := range p {
		m |= uint32(b) << (i * 8)
	}
	return m
}

// Komi32 computes the short-input hash of data with the given seed.
//
// Komi32 is total over all input lengths, but it is the fast path for
// inputs below 64 bytes; HashSeeded routes longer inputs to Mult32.
// It reads the message strictly within bounds for every length,
// including 0.
func Komi32(data []byte, seed uint64) uint32 {
	p := data
	s1 := uint32(komiSeed1)
	s5 := uint32(komiSeed5)

	seed ^= uint64(len(data))
	s1, s5 = komiSeedMix(s1, s5, uint32(seed))
	s1, s5 = komiSeedMix(s1, s5, uint32(seed>>32))

	if len(p) == 0 {
		s1, s5 = komiRound(s1, s5)
		s1, s5 = komiRound(s1, s5)
		return s1
	}

	if len(p) >= 32 {
		// Expand to 8 lanes. The cross-lane feed below keeps the four
		// pairs coupled: each pair's low lane absorbs the previous
		// pair's low product, fusing them into a single 128-bit
		// equivalent PRNG and avoiding lane synchronization.
		s2 := 0x03707344 ^ s1
		s3 := 0x299F31D0 ^ s1
		s4 := 0xEC4E6C89 ^ s1
		s6 := 0x34E90C6C ^ s5
		s7 := 0xC97C50DD ^ s5
		s8 := 0xB5470917 ^ s5

		for len(p) >= 32 {
			r1 := uint64(s1^read32(p)) * uint64(s5^read32(p[4:]))
			s5 += uint32(r1 >> 32)
			r2 := uint64(s2^read32(p[8:])) * uint64(s6^read32(p[12:]))
			s2 = s5 ^ uint32(r2)
			s6 += uint32(r2 >> 32)
			r3 := uint64(s3^read32(p[16:])) * uint64(s7^read32(p[20:]))
			s3 = s6 ^ uint32(r3)
			s7 += uint32(r3 >> 32)
			r4 := uint64(s4^read32(p[24:])) * uint64(s8^read32(p[28:]))
			s4 = s7 ^ uint32(r4)
			s8 += uint32(r4 >> 32)
			s1 = s8 ^ uint32(r1)
			p = p[32:]
		}

		s5 ^= s6 ^ s7 ^ s8
		s1 ^= s2 ^ s3 ^ s4
	}

	// 0 to 31 bytes remain: up to three full 8-byte groups.
	for n := len(p) >> 3; n > 0; n-- {
		s1, s5 = komiHash8(s1, s5, p)
		p = p[8:]
	}

	// 0 to 7 bytes remain. The sentinel carries the sign bit of the final
	// byte of the whole message, which disambiguates tails that differ
	// only in trailing zeros; it is well defined even when the tail
	// itself is empty.
	fb := uint32(1) << (data[len(data)-1] >> 7)
	if len(p) >= 4 {
		s1 ^= read32(p)
		s5 ^= komiFinalBytes(p[4:], fb)
	} else {
		s1 ^= komiFinalBytes(p, fb)
	}

	s1, s5 = komiRound(s1, s5)
	s1, s5 = komiRound(s1, s5)
	return s1
}
