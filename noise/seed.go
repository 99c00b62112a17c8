// Seed expansion for the backend sources.
//
// The simplex primitive consumes a uint32 seed directly; opensimplex-go and
// go-perlin want an int64 to seed their permutation tables. Feeding them
// seed verbatim would make seeds 1 and 2 produce closely related tables on
// some backends, so the seed goes through a SplitMix64 finalizer first.

package noise

// splitMixGamma is the SplitMix64 increment (golden ratio * 2^64).
const splitMixGamma uint64 = 0x9e3779b97f4a7c15

// expandSeed mixes a 32-bit seed and a stream id into a well-distributed
// 64-bit seed. Same inputs ⇒ same output on every platform.
//
// Complexity: O(1).
func expandSeed(seed uint32, stream uint64) int64 {
	x := uint64(seed) ^ (stream + splitMixGamma)
	x += splitMixGamma
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// Stream ids keep backends seeded from the same uint32 independent.
const (
	streamOpenSimplex uint64 = 1
	streamPerlin      uint64 = 2
)
