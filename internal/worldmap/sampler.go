package worldmap

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"terramap/pkg/core"
)

// Sample is the ephemeral, fully blended result of querying the map at one
// world position. It has no identity or lifecycle beyond the call that
// produced it.
type Sample struct {
	Height      float64
	Temperature float64
	Humidity    float64

	// Corners hold the resolved biomes of the four bounding cells with
	// their blend weights.
	Corners [4]Biome
	Weights [4]float64

	// Special is the mountain or coastline biome competing with the
	// corners, weighted by SpecialStrength.
	Special         Biome
	SpecialStrength float64

	// Stone blend data of the four bounding cells.
	Stones       [4]StoneType
	StoneWeights [4]float64
}

// Biome resolves the final biome by weighted selection across the four
// corners and the special biome.
func (s *Sample) Biome() Biome {
	best := s.Special
	bestWeight := s.SpecialStrength
	for i, w := range s.Weights {
		scaled := w * (1 - s.SpecialStrength)
		if scaled > bestWeight {
			bestWeight = scaled
			best = s.Corners[i]
		}
	}
	return best
}

// remapPolyline is the monotonic biome change function applied to raw blend
// factors. It compresses blending near 0, 0.5 and 1, producing sharp
// transitions inside a cell and smooth ones at cell boundaries.
var remapPolyline = [][2]float64{
	{0, 0},
	{0.15, 0.03},
	{0.35, 0.45},
	{0.5, 0.5},
	{0.65, 0.55},
	{0.85, 0.97},
	{1, 1},
}

func remapBlend(t float64) float64 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	for i := 1; i < len(remapPolyline); i++ {
		x0, y0 := remapPolyline[i-1][0], remapPolyline[i-1][1]
		x1, y1 := remapPolyline[i][0], remapPolyline[i][1]
		if t <= x1 {
			return y0 + (y1-y0)*(t-x0)/(x1-x0)
		}
	}
	return 1
}

// borderStrength peaks at blend factor 0.5 and vanishes at the cell
// centers, so edge-noise perturbation never distorts values sampled exactly
// on a cell center.
func borderStrength(t float64) float64 {
	return 2 * math.Min(t, 1-t)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// GetSample blends the four cells around a world position into one Sample.
// It never mutates the grid and is safe for concurrent use once the map is
// initialized.
func (m *Map) GetSample(x, z float64) Sample {
	if !m.initialized {
		panic("worldmap: GetSample before Initialize")
	}
	g := m.grid
	p := m.cfg.Params
	half := float64(g.Half())

	// Interpolation runs between true nearest cell centers: cell c is
	// centered at world c*CellSize, so the integer part of the scaled
	// coordinate selects the lower corner and the fraction the blend.
	u := mgl64.Clamp(x/g.CellSize(), -half, half)
	v := mgl64.Clamp(z/g.CellSize(), -half, half)
	x0 := int(math.Floor(u))
	y0 := int(math.Floor(v))
	tx := u - float64(x0)
	ty := v - float64(y0)
	if x0 >= g.Half() {
		x0 = g.Half() - 1
		tx = 1
	}
	if y0 >= g.Half() {
		y0 = g.Half() - 1
		ty = 1
	}

	c00 := g.At(x0, y0)
	c10 := g.At(x0+1, y0)
	c01 := g.At(x0, y0+1)
	c11 := g.At(x0+1, y0+1)

	// Remap, then perturb with low-amplitude noise scaled by the border
	// strength to break up grid-aligned seams.
	fx := remapBlend(tx)
	fy := remapBlend(ty)
	if p.EdgeNoiseAmplitude > 0 {
		nx := m.edgeNoise.Sample(u, v)
		ny := m.edgeNoise.Sample(u+511.3, v-173.7)
		fx = clamp01(fx + p.EdgeNoiseAmplitude*nx*borderStrength(tx))
		fy = clamp01(fy + p.EdgeNoiseAmplitude*ny*borderStrength(ty))
	}

	w00 := (1 - fx) * (1 - fy)
	w10 := fx * (1 - fy)
	w01 := (1 - fx) * fy
	w11 := fx * fy

	s := Sample{
		Weights: [4]float64{w00, w10, w01, w11},
		Stones:  [4]StoneType{c00.Stone, c10.Stone, c01.Stone, c11.Stone},
	}
	s.StoneWeights = s.Weights

	corners := [4]*Cell{c00, c10, c01, c11}
	for i, c := range corners {
		s.Corners[i] = m.cellBiome(c)
	}

	s.Height = w00*c00.Height + w10*c10.Height + w01*c01.Height + w11*c11.Height
	s.Temperature = w00*c00.Temperature + w10*c10.Temperature + w01*c01.Temperature + w11*c11.Temperature
	s.Humidity = w00*c00.Humidity + w10*c10.Humidity + w01*c01.Humidity + w11*c11.Humidity

	mountain := m.mountainStrength(&s, corners)
	coast, coastBiome := m.coastlineStrength(&s, corners, fx, fy)

	if mountain >= coast {
		s.Special = BiomeMountains
		s.SpecialStrength = mountain
	} else {
		s.Special = coastBiome
		s.SpecialStrength = coast
	}
	return s
}

// mountainStrength measures how steeply the land corners deviate from the
// blended height, through a clamping response curve with a dead zone at the
// bottom.
func (m *Map) mountainStrength(s *Sample, corners [4]*Cell) float64 {
	if s.Height <= 0 {
		return 0
	}
	p := m.cfg.Params
	slope := 0.0
	for i, c := range corners {
		if c.IsLand() {
			slope += s.Weights[i] * math.Abs(c.Height-s.Height)
		}
	}
	raw := slope * p.MountainSlopeGain
	if raw <= p.MountainFloor {
		return 0
	}
	return clamp01((raw - p.MountainFloor) / (1 - p.MountainFloor))
}

// coastlineStrength combines a depth term, the distance to the nearest
// zero-height contour of the bilinear surface, and an ocean-presence term.
// It also flattens near-shore land and decides between the beach, cliff and
// underwater coastline variants. The contour distance comes from one Newton
// step along the bilinear gradient; when the gradient vanishes (all four
// corner heights equal) the deterministic fallback is the binary
// inside/outside test on the blended height's sign.
func (m *Map) coastlineStrength(s *Sample, corners [4]*Cell, fx, fy float64) (float64, Biome) {
	p := m.cfg.Params

	h00 := corners[0].Height
	h10 := corners[1].Height
	h01 := corners[2].Height
	h11 := corners[3].Height

	gradX := (1-fy)*(h10-h00) + fy*(h11-h01)
	gradY := (1-fx)*(h01-h00) + fx*(h11-h10)
	gradMag := math.Hypot(gradX, gradY)

	distTerm := 0.0
	if gradMag > 1e-9 {
		dist := math.Abs(s.Height) / gradMag
		distTerm = 1 - clamp01(dist/p.CoastDistanceScale)
	} else if s.Height <= 0 {
		// Degenerate flat quad: no contour to find, treat water as "at
		// the coast" only when it is shallow enough for the depth term
		// to matter anyway.
		distTerm = 1
	}

	depthTerm := 1 - clamp01(math.Abs(s.Height)/p.CoastDepthScale)

	oceanPresence := 0.0
	for i, c := range corners {
		if !c.IsLand() {
			oceanPresence += s.Weights[i]
		}
	}
	oceanTerm := clamp01(2 * oceanPresence)

	coast := clamp01(depthTerm*(0.35+0.65*distTerm)) * oceanTerm
	if coast <= 0 {
		return 0, BiomeBeach
	}

	cliff := gradMag > p.CliffThreshold

	// Near-shore flattening: beaches grade gently into the water while
	// cliffs keep their drop.
	if s.Height > 0 && !cliff {
		s.Height *= 1 - p.ShoreFlatten*coast
		if s.Height <= 0 {
			s.Height = math.SmallestNonzeroFloat64
		}
	}

	switch {
	case s.Height <= 0:
		return coast, BiomeCoastalWaters
	case cliff:
		return coast, BiomeCliffs
	default:
		return coast, BiomeBeach
	}
}

// GetTemperature returns the blended temperature at a world position.
func (m *Map) GetTemperature(x, z float64) float64 {
	s := m.GetSample(x, z)
	return s.Temperature
}

// GetStoneType resolves the blended stone data of a sample to one concrete
// stone via a deterministic position hash, so per-block queries are stable
// without any stored per-block state.
func (m *Map) GetStoneType(x, z float64, s *Sample) StoneType {
	if s == nil {
		sample := m.GetSample(x, z)
		s = &sample
	}
	total := 0.0
	for _, w := range s.StoneWeights {
		total += w
	}
	if total <= 0 {
		return s.Stones[0]
	}
	pick := core.UnitFloat(core.Hash2(m.seed, int(math.Floor(x)), int(math.Floor(z)))) * total
	for i, w := range s.StoneWeights {
		if pick < w {
			return s.Stones[i]
		}
		pick -= w
	}
	return s.Stones[len(s.Stones)-1]
}
