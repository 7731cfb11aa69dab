// Package worldmap generates and samples the macro-scale terrain grid of a
// voxel world: continents, elevation, temperature, humidity, stone and the
// derived biome assignment, all reproducible from one integer seed.
package worldmap

import (
	"io"
	"log/slog"
	"math"

	"terramap/internal/core"
	"terramap/internal/noise"
)

// Seed stream offsets. Every noise source derives from the world seed with
// a fixed offset so the passes never share a stream.
const (
	seedOffsetRelief = 1
	seedOffsetPieces = 2
	seedOffsetTemp   = 3
	seedOffsetStone  = 4
	seedOffsetEdge   = 5
)

// Map owns the world grid and answers all terrain queries. Generation runs
// exactly once (or is skipped when a persisted grid loads); afterwards the
// grid is immutable and safe for unlimited concurrent readers.
type Map struct {
	cfg    Config
	log    *slog.Logger
	biomes BiomeDistribution

	grid      *CellGrid
	seed      int64
	edgeNoise *noise.Smooth

	// Generation telemetry; zero for loaded maps.
	pieceCount     int
	continentCount int
	boundaries     tectonicStats

	initialized bool
}

// New constructs an uninitialized Map. A nil logger falls back to
// slog.Default(); library code never prints on its own.
func New(cfg Config, logger *slog.Logger) *Map {
	if logger == nil {
		logger = slog.Default()
	}
	return &Map{
		cfg:    cfg,
		log:    logger,
		biomes: DefaultBiomeDistribution(),
	}
}

// Config returns the configuration the map was constructed with.
func (m *Map) Config() Config { return m.cfg }

// Seed returns the seed the grid was generated (or loaded) under.
func (m *Map) Seed() int64 { return m.seed }

// Grid exposes the cell grid for read-only use by views and tests.
func (m *Map) Grid() *CellGrid { return m.grid }

// Biomes returns the biome distribution owned by the map.
func (m *Map) Biomes() *BiomeDistribution { return &m.biomes }

// Initialize populates the grid, either from the optional persisted blob or
// by running the full generation pipeline. It returns true when the caller
// must persist the freshly generated grid. A second call is a programmer
// error and panics.
func (m *Map) Initialize(blob io.Reader, seed int64) bool {
	if m.initialized {
		panic("worldmap: Map initialized twice")
	}
	if blob != nil {
		if err := m.load(blob, seed); err == nil {
			m.initialized = true
			m.log.Info("world map loaded", "seed", seed, "side", m.grid.Side())
			return false
		} else {
			m.log.Info("could not load persisted map, regenerating", "err", err)
		}
	}
	m.generate(seed)
	m.initialized = true
	return true
}

// generate runs the one-shot pipeline: relief, partition, merge, tectonics,
// temperature, climate, stone assignment.
func (m *Map) generate(seed int64) {
	p := m.cfg.Params
	sw := core.NewStopwatch()

	g := newCellGrid(m.cfg.WorldExtent, m.cfg.CellSize)
	m.grid = g
	m.seed = seed
	m.edgeNoise = noise.NewSmooth(seed+seedOffsetEdge, p.EdgeNoiseFrequency)

	paintRelief(g, noise.NewFractal(seed+seedOffsetRelief, p.ReliefFrequency), p.ReliefAmplitude)

	pieces := partitionPieces(g, noise.NewCellular(seed+seedOffsetPieces, p.PieceFrequency))
	m.pieceCount = pieces.count()
	m.log.Info("pieces partitioned", "pieces", m.pieceCount, "dur", sw.Lap())

	continents := mergeContinents(g, pieces, p)
	m.continentCount = len(continents.roots)
	m.log.Info("continents merged", "continents", m.continentCount, "dur", sw.Lap())

	m.boundaries = simulateTectonics(g, continents, p)
	m.log.Info("tectonics simulated",
		"transform", m.boundaries.Transform,
		"convergent", m.boundaries.Convergent,
		"divergent", m.boundaries.Divergent,
		"dur", sw.Lap())

	paintTemperature(g, noise.NewSmooth(seed+seedOffsetTemp, p.TemperatureFrequency), p)
	simulateClimate(g, p)
	m.log.Info("climate simulated", "steps", p.ClimateSteps, "dur", sw.Lap())

	m.assignStones(seed + seedOffsetStone)
	quantizeForStorage(g)

	m.log.Info("world map generated",
		"seed", seed,
		"side", g.Side(),
		"land_fraction", landFraction(g),
		"dur", sw.Lap())
}

// paintRelief writes the initial low-amplitude height field every later
// pass reshapes.
func paintRelief(g *CellGrid, fn *noise.Fractal, amplitude float64) {
	half := g.Half()
	for cy := -half; cy <= half; cy++ {
		for cx := -half; cx <= half; cx++ {
			v := fn.Sample(float64(cx), float64(cy))
			if v > 1 {
				v = 1
			} else if v < -1 {
				v = -1
			}
			g.At(cx, cy).Height = v * amplitude
		}
	}
}

// paintTemperature derives the temperature field from the distance to the
// grid's equator row, a detail noise band, and altitude cooling over the
// final heights.
func paintTemperature(g *CellGrid, detail *noise.Smooth, p Params) {
	half := g.Half()
	for cy := -half; cy <= half; cy++ {
		latitude := 1 - math.Abs(float64(cy))/float64(half)
		base := 0.05 + 0.9*latitude
		for cx := -half; cx <= half; cx++ {
			cell := g.At(cx, cy)
			t := base + p.TemperatureDetail*detail.Sample(float64(cx), float64(cy))
			if cell.Height > 0 {
				t -= p.AltitudeCooling * cell.Height
			}
			if t < 0 {
				t = 0
			} else if t > 1 {
				t = 1
			}
			cell.Temperature = t
		}
	}
}

// assignStones picks one dominant stone per cell from its biome's weights.
// Vulcanism pushes the pick hard toward granite, rifts toward limestone.
func (m *Map) assignStones(seed int64) {
	g := m.grid
	half := g.Half()
	for cy := -half; cy <= half; cy++ {
		for cx := -half; cx <= half; cx++ {
			cell := g.At(cx, cy)
			weights := m.biomes.StoneWeights(m.cellBiome(cell))
			if cell.Conditions.Has(ConditionVulcanism) {
				weights[StoneGranite] += 1.5
			}
			if cell.Conditions.Has(ConditionRift) {
				weights[StoneLimestone] += 0.5
			}
			cell.Stone = pickStone(weights, seed, cx, cy)
		}
	}
}

// cellBiome resolves one cell's stored temperature and humidity onto the
// distribution table. Water cells are always ocean at the cell level; the
// coastal variants only exist as sampler specials.
func (m *Map) cellBiome(c *Cell) Biome {
	if !c.IsLand() {
		return BiomeOcean
	}
	return m.biomes.GetBiome(c.Temperature, c.Humidity)
}

func landFraction(g *CellGrid) float64 {
	cells := g.Cells()
	if len(cells) == 0 {
		return 0
	}
	land := 0
	for i := range cells {
		if cells[i].IsLand() {
			land++
		}
	}
	return float64(land) / float64(len(cells))
}
