package recommend

import (
	"math/rand/v2"

	"github.com/mager/moodring/moodring"
)

// Sampler decides how many songs to return and which ones.
//
// The two random sources are independent. Count draws the sample size from
// [Min, Max] and is unseeded by default, so the number of songs varies from
// call to call. Selection is seeded with Seed, so for a given pool and size
// the same songs come back in the same order.
type Sampler struct {
	Min  int
	Max  int
	Seed int64

	// Count returns a value in [lo, hi]. Nil uses the global source.
	Count func(lo, hi int) int
}

// NewSampler returns a Sampler with an unseeded count draw.
func NewSampler(lo, hi int, seed int64) Sampler {
	return Sampler{Min: lo, Max: hi, Seed: seed}
}

// Size returns min(count draw, n).
func (s Sampler) Size(n int) int {
	count := s.Count
	if count == nil {
		count = uniformCount
	}
	k := count(s.Min, s.Max)
	if k > n {
		k = n
	}
	if k < 0 {
		k = 0
	}
	return k
}

// Sample draws Size(len(pool)) songs uniformly without replacement. The
// selection is the prefix of a permutation seeded by Seed, so a smaller
// sample of the same pool is always a prefix of a larger one.
func (s Sampler) Sample(pool []moodring.Song) []moodring.Song {
	k := s.Size(len(pool))

	seed := uint64(s.Seed)
	rng := rand.New(rand.NewPCG(seed, seed))
	perm := rng.Perm(len(pool))

	out := make([]moodring.Song, k)
	for i := range out {
		out[i] = pool[perm[i]]
	}
	return out
}

func uniformCount(lo, hi int) int {
	return lo + rand.IntN(hi-lo+1)
}
