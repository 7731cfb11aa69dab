package worldmap

import "terramap/pkg/core"

// Biome identifies one terrain biome. Land biomes come out of the
// temperature/humidity table; the special biomes are resolved by the
// sampler from mountain and coastline strength.
type Biome uint8

const (
	BiomeOcean Biome = iota
	BiomePolarDesert
	BiomeTundra
	BiomeTaiga
	BiomeColdDesert
	BiomeShrubland
	BiomeGrassland
	BiomeTemperateForest
	BiomeTemperateRainforest
	BiomeSubtropicalDesert
	BiomeSavanna
	BiomeTropicalRainforest

	// Special biomes, never produced by the table.
	BiomeMountains
	BiomeBeach
	BiomeCliffs
	BiomeCoastalWaters

	biomeCount
)

// String returns the biome name for logs and debug views.
func (b Biome) String() string {
	switch b {
	case BiomeOcean:
		return "ocean"
	case BiomePolarDesert:
		return "polar desert"
	case BiomeTundra:
		return "tundra"
	case BiomeTaiga:
		return "taiga"
	case BiomeColdDesert:
		return "cold desert"
	case BiomeShrubland:
		return "shrubland"
	case BiomeGrassland:
		return "grassland"
	case BiomeTemperateForest:
		return "temperate forest"
	case BiomeTemperateRainforest:
		return "temperate rainforest"
	case BiomeSubtropicalDesert:
		return "subtropical desert"
	case BiomeSavanna:
		return "savanna"
	case BiomeTropicalRainforest:
		return "tropical rainforest"
	case BiomeMountains:
		return "mountains"
	case BiomeBeach:
		return "beach"
	case BiomeCliffs:
		return "cliffs"
	case BiomeCoastalWaters:
		return "coastal waters"
	}
	return "unknown"
}

// BiomeDistribution maps temperature and humidity onto land biomes and
// carries the per-biome stone weights. It is a plain value owned by the
// Map; there is no process-wide biome state.
type BiomeDistribution struct {
	// table is indexed [temperature band][humidity band], coldest and
	// driest first. Loosely follows the Whittaker diagram.
	table [4][4]Biome
	// stones holds per-biome weights for sandstone, granite, limestone
	// and marble, in that order. Each row sums to 1.
	stones [biomeCount][stoneTypeCount]float64
}

// DefaultBiomeDistribution constructs the standard distribution.
func DefaultBiomeDistribution() BiomeDistribution {
	d := BiomeDistribution{
		table: [4][4]Biome{
			{BiomePolarDesert, BiomeTundra, BiomeTundra, BiomeTundra},
			{BiomeColdDesert, BiomeShrubland, BiomeTaiga, BiomeTaiga},
			{BiomeGrassland, BiomeShrubland, BiomeTemperateForest, BiomeTemperateRainforest},
			{BiomeSubtropicalDesert, BiomeSavanna, BiomeTropicalRainforest, BiomeTropicalRainforest},
		},
	}

	// Sandstone, granite, limestone, marble.
	even := [stoneTypeCount]float64{0.25, 0.25, 0.25, 0.25}
	for b := range d.stones {
		d.stones[b] = even
	}
	d.stones[BiomeOcean] = [stoneTypeCount]float64{0.2, 0.2, 0.5, 0.1}
	d.stones[BiomeCoastalWaters] = [stoneTypeCount]float64{0.35, 0.1, 0.45, 0.1}
	d.stones[BiomeBeach] = [stoneTypeCount]float64{0.7, 0.05, 0.2, 0.05}
	d.stones[BiomeCliffs] = [stoneTypeCount]float64{0.1, 0.4, 0.3, 0.2}
	d.stones[BiomeMountains] = [stoneTypeCount]float64{0.05, 0.6, 0.15, 0.2}
	d.stones[BiomePolarDesert] = [stoneTypeCount]float64{0.1, 0.5, 0.2, 0.2}
	d.stones[BiomeTundra] = [stoneTypeCount]float64{0.1, 0.45, 0.3, 0.15}
	d.stones[BiomeTaiga] = [stoneTypeCount]float64{0.1, 0.4, 0.35, 0.15}
	d.stones[BiomeColdDesert] = [stoneTypeCount]float64{0.5, 0.2, 0.2, 0.1}
	d.stones[BiomeShrubland] = [stoneTypeCount]float64{0.3, 0.2, 0.4, 0.1}
	d.stones[BiomeGrassland] = [stoneTypeCount]float64{0.25, 0.15, 0.5, 0.1}
	d.stones[BiomeTemperateForest] = [stoneTypeCount]float64{0.2, 0.25, 0.4, 0.15}
	d.stones[BiomeTemperateRainforest] = [stoneTypeCount]float64{0.15, 0.3, 0.4, 0.15}
	d.stones[BiomeSubtropicalDesert] = [stoneTypeCount]float64{0.75, 0.1, 0.1, 0.05}
	d.stones[BiomeSavanna] = [stoneTypeCount]float64{0.45, 0.15, 0.3, 0.1}
	d.stones[BiomeTropicalRainforest] = [stoneTypeCount]float64{0.2, 0.2, 0.45, 0.15}
	return d
}

// GetBiome resolves the land biome for normalized temperature and humidity.
func (d *BiomeDistribution) GetBiome(t, h float64) Biome {
	return d.table[bandIndex(t)][bandIndex(h)]
}

// StoneWeights returns the stone-type weights of a biome.
func (d *BiomeDistribution) StoneWeights(b Biome) [stoneTypeCount]float64 {
	if int(b) >= int(biomeCount) {
		b = BiomeOcean
	}
	return d.stones[b]
}

func bandIndex(v float64) int {
	i := int(v * 4)
	if i < 0 {
		i = 0
	} else if i > 3 {
		i = 3
	}
	return i
}

// pickStone draws one stone type from a weight vector using a stable
// position hash, so per-block stone queries never need stored state.
func pickStone(weights [stoneTypeCount]float64, seed int64, hx, hy int) StoneType {
	total := 0.0
	for _, w := range weights {
		total += w
	}
	if total <= 0 {
		return StoneGranite
	}
	r := core.UnitFloat(core.Hash2(seed, hx, hy)) * total
	for i, w := range weights {
		if r < w {
			return StoneType(i)
		}
		r -= w
	}
	return StoneType(stoneTypeCount - 1)
}
