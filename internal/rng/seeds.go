package rng

// Seeds is the persisted randomness root for one player session. The host
// generates it once (or loads it from disk) so that re-running the same
// session with the same seeds reproduces the same sequence of arbitrator
// coin flips and perlin samples.
type Seeds struct {
	RNGSeed    [32]byte
	PerlinSeed uint32
}
