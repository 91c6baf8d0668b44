package combo32

import "encoding/binary"

// Shared read primitives for both engines. Word order is fixed
// little-endian regardless of the host, and Go slice indexing makes
// unaligned reads safe everywhere, so this is the whole platform layer.

// read64 reads a little-endian uint64 from a byte slice.
func read64(p []byte) uint64 {
	return binary.LittleEndian.Uint64(p)
}

// read32 reads a little-endian uint32 from a byte slice.
func read32(p []byte) uint32 {
	return binary.LittleEndian.Uint32(p)
}
