package combo32

import (
	"encoding/binary"
	"sync"
)

const (
	// randomPower must be a power of 2; the index mask keeps the table
	// cursor inside the first randomPower entries at the top of each
	// 64-byte block.
	randomPower = 128

	// Within one block the cursor advances up to 9 entries past the mask
	// boundary before being re-masked, so the table carries 9 guard
	// words and no read needs a mid-block wraparound check.
	randomExtra  = 9
	randomLength = randomPower + randomExtra
)

// multSentinel pads the final partial word. A modified version of
// 0xDEADBEEFDEADBEEF, merged in little-endian order with however many
// trailing bytes remain.
const multSentinel = 0xDCADBCEDDCADBCED

var (
	randomOnce  sync.Once
	randomTable [randomLength]uint64
)

// Init builds the shared random table. Calling it is optional: the first
// Mult32 call constructs the table on demand under the same guard. It is
// exposed so programs can pay the one-time cost during startup instead of
// on the first hash, and it is safe to call from multiple goroutines.
func Init() {
	randomOnce.Do(fillRandomTable)
}

// fillRandomTable draws the table from a Xorshift128+ stream with a fixed
// seed, so Mult32 output is reproducible across runs and platforms. Runs
// once per process; speed is unimportant here.
func fillRandomTable() {
	s := newXorshift128p(0xDEADBEEFDEADBEEF)
	for i := range randomTable {
		randomTable[i] = s.next()
	}
}

// multRound folds val through a widening multiply of its halves and XORs
// the product into hash. Per 8 bytes this costs one table read, one
// message read, two XORs, a shift and one 32x32->64 multiply.
func multRound(hash, val uint64) uint64 {
	return hash ^ uint64(uint32(val))*(val>>32)
}

// multFinalBytes merges the trailing 0 to 7 bytes over the sentinel
// pattern, copying only the bytes that exist.
func multFinalBytes(p []byte) uint64 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], multSentinel)
	copy(buf[:], p)
	return binary.LittleEndian.Uint64(buf[:])
}

// Mult32 computes the long-input hash of data with the given seed.
//
// Mult32 is total over all input lengths, but it is the fast path for
// inputs of 64 bytes or more; HashSeeded routes shorter inputs to Komi32.
// The first call constructs the shared random table; every later call
// only reads it.
func Mult32(data []byte, seed uint64) uint32 {
	randomOnce.Do(fillRandomTable)

	p := data
	msgLen := uint64(len(data))
	hash := seed ^ msgLen
	i := int(((msgLen >> 6) ^ msgLen) & (randomPower - 1))

	// Value round on the folded seed. i < randomPower here, and every
	// round below advances i by at most 9 before the re-mask, which the
	// guard words absorb.
	hash = multRound(hash, hash^randomTable[i])
	i++

	for len(p) >= 64 {
		hash = multRound(hash, read64(p)^randomTable[i])
		hash = multRound(hash, read64(p[8:])^randomTable[i+1])
		hash = multRound(hash, read64(p[16:])^randomTable[i+2])
		hash = multRound(hash, read64(p[24:])^randomTable[i+3])
		hash = multRound(hash, read64(p[32:])^randomTable[i+4])
		hash = multRound(hash, read64(p[40:])^randomTable[i+5])
		hash = multRound(hash, read64(p[48:])^randomTable[i+6])
		hash = multRound(hash, read64(p[56:])^randomTable[i+7])
		hash = multRound(hash, randomTable[i+8])
		i = (i + 9) & (randomPower - 1)
		p = p[64:]
	}

	// 0 to 63 bytes remain: up to seven full 8-byte groups, then one
	// round without input to advance the table cursor.
	if n := len(p) >> 3; n > 0 {
		for ; n > 0; n-- {
			hash = multRound(hash, read64(p)^randomTable[i])
			i++
			p = p[8:]
		}
		hash = multRound(hash, randomTable[i])
		i++
	}

	// 0 to 7 bytes remain.
	hash = multRound(hash, multFinalBytes(p)^randomTable[i])

	// Reduce 64 bits to 32 through the Komi32 seed rounds. Fast,
	// portable, and suitable for any 64-bit value.
	s1, s5 := komiSeedMix(komiSeed1, komiSeed5, uint32(hash))
	s1, _ = komiSeedMix(s1, s5, uint32(hash>>32))
	return s1
}
