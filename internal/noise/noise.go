package noise

import (
	"math"

	"github.com/aquilax/go-perlin"
	"github.com/ojrac/opensimplex-go"

	"terramap/pkg/core"
)

// Cellular is seeded nearest-feature-point value noise. Every lattice cell
// owns one jittered feature point with an attached value in [-1, 1); a query
// returns the value of the nearest feature point, so the plane decomposes
// into irregular constant-value regions.
type Cellular struct {
	seed int64
	freq float64
}

// NewCellular constructs cellular noise. freq scales query coordinates into
// lattice space, so smaller frequencies produce larger regions.
func NewCellular(seed int64, freq float64) *Cellular {
	if freq <= 0 {
		freq = 1
	}
	return &Cellular{seed: seed, freq: freq}
}

// Value returns the value of the feature point nearest to (x, y). Two queries
// inside the same region return bit-identical values.
func (c *Cellular) Value(x, y float64) float64 {
	sx := x * c.freq
	sy := y * c.freq
	ix := int(math.Floor(sx))
	iy := int(math.Floor(sy))

	best := math.MaxFloat64
	var bestValue float64
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			cx := ix + dx
			cy := iy + dy
			jx := core.UnitFloat(core.Hash2(c.seed^0x5eed, cx, cy))
			jy := core.UnitFloat(core.Hash2(c.seed^0x7a77, cx, cy))
			px := float64(cx) + jx
			py := float64(cy) + jy
			ddx := sx - px
			ddy := sy - py
			d := ddx*ddx + ddy*ddy
			if d < best {
				best = d
				bestValue = core.UnitFloat(core.Hash2(c.seed, cx, cy))*2 - 1
			}
		}
	}
	return bestValue
}

// Fractal wraps octave Perlin noise behind a frequency, producing smooth
// relief-style fields in roughly [-1, 1].
type Fractal struct {
	p    *perlin.Perlin
	freq float64
}

// NewFractal constructs fractal noise from a seed and query frequency.
func NewFractal(seed int64, freq float64) *Fractal {
	if freq <= 0 {
		freq = 1
	}
	return &Fractal{p: perlin.NewPerlin(2, 2, 3, seed), freq: freq}
}

// Sample evaluates the noise at (x, y).
func (f *Fractal) Sample(x, y float64) float64 {
	return f.p.Noise2D(x*f.freq+0.137, y*f.freq+0.731)
}

// Smooth wraps simplex noise behind a frequency; values fall in [-1, 1].
// Used where a single continuous band of low-amplitude variation is enough,
// such as edge perturbation and temperature detail.
type Smooth struct {
	n    opensimplex.Noise
	freq float64
}

// NewSmooth constructs simplex noise from a seed and query frequency.
func NewSmooth(seed int64, freq float64) *Smooth {
	if freq <= 0 {
		freq = 1
	}
	return &Smooth{n: opensimplex.New(seed), freq: freq}
}

// Sample evaluates the noise at (x, y).
func (s *Smooth) Sample(x, y float64) float64 {
	return s.n.Eval2(x*s.freq, y*s.freq)
}
