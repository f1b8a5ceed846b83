// Package perlin implements classic 3D gradient (Perlin) noise using only
// the standard library. No perlin/simplex noise library appears anywhere
// in the corpus this engine was modeled on, so this is a from-scratch,
// textbook implementation (Ken Perlin's reference permutation-table
// scheme) rather than an adaptation of example code — see the design
// ledger for why no third-party dependency could stand in for it.
package perlin

import "math/rand"

// Noise is a seeded gradient-noise sampler.
type Noise struct {
	perm [512]int
}

// New builds a Noise sampler from a 32-bit seed. The same seed always
// produces the same permutation table and therefore the same noise
// field.
func New(seed uint32) Noise {
	src := rand.New(rand.NewSource(int64(seed)))
	var p [256]int
	for i := range p {
		p[i] = i
	}
	src.Shuffle(len(p), func(i, j int) { p[i], p[j] = p[j], p[i] })

	var n Noise
	for i := 0; i < 512; i++ {
		n.perm[i] = p[i&255]
	}
	return n
}

// Sample3 returns a noise value in [-1, 1] at the given coordinates.
func (n Noise) Sample3(x, y, z float64) float64 {
	xi := int(floor(x)) & 255
	yi := int(floor(y)) & 255
	zi := int(floor(z)) & 255

	xf := x - floor(x)
	yf := y - floor(y)
	zf := z - floor(z)

	u := fade(xf)
	v := fade(yf)
	w := fade(zf)

	p := n.perm
	a := p[xi] + yi
	aa := p[a&511] + zi
	ab := p[(a+1)&511] + zi
	b := p[(xi+1)&511] + yi
	ba := p[b&511] + zi
	bb := p[(b+1)&511] + zi

	return lerp(w,
		lerp(v,
			lerp(u, grad(p[aa&511], xf, yf, zf), grad(p[ba&511], xf-1, yf, zf)),
			lerp(u, grad(p[ab&511], xf, yf-1, zf), grad(p[bb&511], xf-1, yf-1, zf)),
		),
		lerp(v,
			lerp(u, grad(p[(aa+1)&511], xf, yf, zf-1), grad(p[(ba+1)&511], xf-1, yf, zf-1)),
			lerp(u, grad(p[(ab+1)&511], xf, yf-1, zf-1), grad(p[(bb+1)&511], xf-1, yf-1, zf-1)),
		),
	)
}

func floor(v float64) float64 {
	i := int(v)
	if v < 0 && float64(i) != v {
		i--
	}
	return float64(i)
}

func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

func lerp(t, a, b float64) float64 {
	return a + t*(b-a)
}

func grad(hash int, x, y, z float64) float64 {
	h := hash & 15
	var u float64
	if h < 8 {
		u = x
	} else {
		u = y
	}
	var v float64
	switch {
	case h < 4:
		v = y
	case h == 12 || h == 14:
		v = x
	default:
		v = z
	}
	result := 0.0
	if h&1 == 0 {
		result += u
	} else {
		result -= u
	}
	if h&2 == 0 {
		result += v
	} else {
		result -= v
	}
	return result
}
