package combo32

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHash(t *testing.T) {
	// Short inputs take the Komi32 path, long inputs the Mult32 path.
	assert.Equal(t, uint32(0x339F647E), Hash([]byte("Hello, World!")))
	assert.Equal(t, uint32(0xE00F806B), Hash(patternBytes(128)))
	assert.Equal(t, uint32(0xE3FFCC19), Hash(nil))
}

func TestHashSeeded(t *testing.T) {
	assert.Equal(t, uint32(0x4BD7FD07), HashSeeded([]byte("abc"), 0xDEADBEEF))
	assert.Equal(t, uint32(0x3B6D7772), HashSeeded(patternBytes(128), 0xDEADBEEF))
}

func TestHashString(t *testing.T) {
	assert.Equal(t, Hash([]byte("Hello, World!")), HashString("Hello, World!"))
	assert.Equal(t, HashSeeded([]byte("abc"), 7), HashStringSeeded("abc", 7))
}

func TestSum32(t *testing.T) {
	data := patternBytes(300)
	assert.Equal(t, Hash(data), Sum32(data))
}

// The dispatcher must agree with the short engine for every length below
// 64 and with the long engine from 64 up, for any seed.
func TestDispatchBoundary(t *testing.T) {
	seeds := []uint64{0, 1, 12345, 0xDEADBEEF, 1 << 63}

	for _, seed := range seeds {
		for n := 0; n <= 160; n++ {
			data := patternBytes(n)
			want := Komi32(data, seed)
			if n >= 64 {
				want = Mult32(data, seed)
			}
			require.Equal(t, want, HashSeeded(data, seed),
				"length %d seed %#x", n, seed)
		}
	}
}

func TestHashDeterminism(t *testing.T) {
	data := patternBytes(500)
	first := HashSeeded(data, 99)
	for i := 0; i < 10; i++ {
		require.Equal(t, first, HashSeeded(data, 99))
	}
}

func TestHashDifferentLengths(t *testing.T) {
	// Various input lengths to exercise the different code paths; any
	// collision among them would indicate broken mixing.
	lengths := []int{1, 2, 3, 4, 5, 7, 8, 15, 16, 17, 31, 32, 33, 63, 64, 65, 127, 128, 129, 256, 512}

	hashes := make(map[uint32]int)
	for _, length := range lengths {
		h := Hash(patternBytes(length))
		if prev, ok := hashes[h]; ok {
			t.Errorf("collision between lengths %d and %d", prev, length)
		}
		hashes[h] = length
	}
}

// For fixed input bytes, distinct seeds should collide no more often than
// chance. With 20000 samples of a 32-bit output the birthday bound puts
// the expected number of collisions near 0.05, so more than a handful
// indicates seed-mixing bias rather than bad luck.
func TestSeedDistribution(t *testing.T) {
	const samples = 20000
	const maxCollisions = 4

	for _, data := range [][]byte{[]byte("abc"), patternBytes(100)} {
		seen := make(map[uint32]bool, samples)
		collisions := 0
		for seed := uint64(0); seed < samples; seed++ {
			h := HashSeeded(data, seed)
			if seen[h] {
				collisions++
			}
			seen[h] = true
		}
		assert.LessOrEqual(t, collisions, maxCollisions,
			"len %d input", len(data))
	}
}

func BenchmarkHash16(b *testing.B) {
	data := []byte("0123456789abcdef")
	b.SetBytes(16)
	for i := 0; i < b.N; i++ {
		Hash(data)
	}
}

func BenchmarkHash63(b *testing.B) {
	data := patternBytes(63)
	b.SetBytes(63)
	for i := 0; i < b.N; i++ {
		Hash(data)
	}
}

func BenchmarkHash64(b *testing.B) {
	data := patternBytes(64)
	b.SetBytes(64)
	for i := 0; i < b.N; i++ {
		Hash(data)
	}
}

func BenchmarkHash256(b *testing.B) {
	data := patternBytes(256)
	b.SetBytes(256)
	for i := 0; i < b.N; i++ {
		Hash(data)
	}
}

func BenchmarkHash1024(b *testing.B) {
	data := patternBytes(1024)
	b.SetBytes(1024)
	for i := 0; i < b.N; i++ {
		Hash(data)
	}
}

func BenchmarkKomi32_32(b *testing.B) {
	data := patternBytes(32)
	b.SetBytes(32)
	for i := 0; i < b.N; i++ {
		Komi32(data, 0)
	}
}

func BenchmarkMult32_1024(b *testing.B) {
	Init()
	data := patternBytes(1024)
	b.SetBytes(1024)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Mult32(data, 0)
	}
}
