// Package rng provides the deterministic randomness sources the action
// arbitrator needs: a plain boolean coin flip and a perlin-noise-backed
// boolean sample that stays spatially and temporally coherent so an
// automation session doesn't flicker between two decisions every tick.
package rng

import (
	"encoding/binary"
	"hash/fnv"
	"math/rand"

	"fieldbot/internal/rng/perlin"
)

// Source is the randomness contract the action arbitrator and the
// movement states depend on.
type Source interface {
	// RandomBool returns true with probability p, independent of position
	// or tick.
	RandomBool(p float64) bool
	// RandomPerlinBool samples 3D perlin noise at (x, y, tick) and returns
	// true when the sample, rescaled to [0, 1], is below p. Nearby positions and
	// adjacent ticks return correlated results.
	RandomPerlinBool(x, y int32, tick uint64, p float64) bool
}

// deterministic is the production Source. Every subsystem gets its own
// rand.Rand seeded from a label-derived hash of the root seed, following
// the same subsystem-isolation idea as a per-subsystem RNG split: two
// subsystems drawing different numbers of samples per tick never desync
// each other's sequences.
type deterministic struct {
	coin   *rand.Rand
	noise  perlin.Noise
}

// NewSource builds a deterministic Source from the given seeds.
func NewSource(seeds Seeds) Source {
	return &deterministic{
		coin:  rand.New(rand.NewSource(seedValue(seeds.RNGSeed[:], "arbitrator.coin"))),
		noise: perlin.New(seeds.PerlinSeed),
	}
}

func (d *deterministic) RandomBool(p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	return d.coin.Float64() < p
}

func (d *deterministic) RandomPerlinBool(x, y int32, tick uint64, p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	sample := d.noise.Sample3(float64(x)*noiseScaleXY, float64(y)*noiseScaleXY, float64(tick)*noiseScaleTick)
	// Sample3 returns a value in [-1, 1]; rescale to [0, 1] before
	// comparing against the probability threshold.
	normalized := (sample + 1) / 2
	return normalized < p
}

const (
	noiseScaleXY   = 0.05
	noiseScaleTick = 0.08
)

// seedValue derives a 64-bit seed for a named subsystem from the root
// seed bytes, the same FNV-64a label-hashing approach used to keep
// independent subsystem RNGs reproducibly distinct from a single root
// seed.
func seedValue(root []byte, label string) int64 {
	h := fnv.New64a()
	h.Write(root)
	h.Write([]byte{0})
	h.Write([]byte(label))
	sum := h.Sum64()
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], sum)
	return int64(binary.BigEndian.Uint64(buf[:]))
}
