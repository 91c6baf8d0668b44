// Package combo32 provides a family of fast, portable, non-cryptographic
// 32-bit hash functions for distributing keys across hash tables with up
// to 2^32 buckets.
//
// Two mixing engines cover the two input-size regimes: Komi32 is a
// multiplicative-feedback hasher tuned for byte strings shorter than 64
// bytes, and Mult32 is a table-driven multiply-xor hasher that wins on
// longer inputs by amortizing its setup over 64-byte blocks. Hash and
// HashSeeded dispatch between them on input length. Both engines use only
// ordinary 32x32->64 multiplies, no special CPU instructions.
//
// All reads go through encoding/binary in little-endian order, so unlike
// the usual C renditions of this kind of hasher there is no byte-order or
// alignment configuration: the hash stream is identical on every platform
// Go supports.
//
// The functions are not cryptographic. Seeds add entropy for bucket
// distribution but offer no resistance to adversarial seed recovery.
package combo32

// Hash computes the Combo32 hash of data with the default seed.
func Hash(data []byte) uint32 {
	return HashSeeded(data, 0)
}

// HashSeeded computes the Combo32 hash of data with a custom seed.
// The seed may have any bit length and statistical quality; it is used
// only as an additional entropy source. The crossover at 64 bytes is the
// empirically measured point where Mult32's table reuse overtakes Komi32's
// lower fixed overhead.
func HashSeeded(data []byte, seed uint64) uint32 {
	if len(data) < 64 {
		return Komi32(data, seed)
	}
	return Mult32(data, seed)
}

// HashString computes the Combo32 hash of s with the default seed.
func HashString(s string) uint32 {
	return HashSeeded([]byte(s), 0)
}

// HashStringSeeded computes the Combo32 hash of s with a custom seed.
func HashStringSeeded(s string, seed uint64) uint32 {
	return HashSeeded([]byte(s), seed)
}

// Sum32 is an alias for Hash matching the naming convention of
// hash.Hash32 implementations.
func Sum32(data []byte) uint32 {
	return Hash(data)
}
