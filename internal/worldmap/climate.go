package worldmap

import "math"

// initialSoilMoisture is the starting moisture of land cells. Water cells
// start (and stay) saturated.
const initialSoilMoisture = 0.1

// climateState holds the double-buffered per-cell fields of the moisture
// simulation. Dispersal and runoff carry one step of latency: a step decides
// how much a cell exports, and the neighbors collect it on the next step.
// Every step therefore reads only the current buffers and writes only the
// next ones, which keeps the pass order-independent and seed-deterministic.
type climateState struct {
	side int

	cloudsCur    []float64
	cloudsNext   []float64
	moistureCur  []float64
	moistureNext []float64
	dispCur      []float64
	dispNext     []float64
	runoffCur    []float64
	runoffNext   []float64

	// downhill caches the number of strictly lower 4-neighbors per cell.
	// Heights are static during the climate pass.
	downhill []uint8
}

func newClimateState(g *CellGrid) *climateState {
	side := g.Side()
	total := side * side
	s := &climateState{
		side:         side,
		cloudsCur:    make([]float64, total),
		cloudsNext:   make([]float64, total),
		moistureCur:  make([]float64, total),
		moistureNext: make([]float64, total),
		dispCur:      make([]float64, total),
		dispNext:     make([]float64, total),
		runoffCur:    make([]float64, total),
		runoffNext:   make([]float64, total),
		downhill:     make([]uint8, total),
	}

	cells := g.Cells()
	for i := range cells {
		if cells[i].IsLand() {
			s.moistureCur[i] = initialSoilMoisture
		} else {
			s.moistureCur[i] = 1
		}
	}
	for y := 0; y < side; y++ {
		for x := 0; x < side; x++ {
			i := y*side + x
			h := cells[i].Height
			n := uint8(0)
			if x > 0 && cells[i-1].Height < h {
				n++
			}
			if x < side-1 && cells[i+1].Height < h {
				n++
			}
			if y > 0 && cells[i-side].Height < h {
				n++
			}
			if y < side-1 && cells[i+side].Height < h {
				n++
			}
			s.downhill[i] = n
		}
	}
	return s
}

func (s *climateState) swap() {
	s.cloudsCur, s.cloudsNext = s.cloudsNext, s.cloudsCur
	s.moistureCur, s.moistureNext = s.moistureNext, s.moistureCur
	s.dispCur, s.dispNext = s.dispNext, s.dispCur
	s.runoffCur, s.runoffNext = s.runoffNext, s.runoffCur
}

// step advances the simulation by one tick: evaporation, precipitation, the
// orographic cloud cap, wind-biased dispersal, and downhill runoff.
func (s *climateState) step(g *CellGrid, p Params) {
	cells := g.Cells()
	side := s.side

	windForward := p.WindBias
	windBack := 0.05
	windSide := (1 - windForward - windBack) / 2

	for y := 0; y < side; y++ {
		for x := 0; x < side; x++ {
			i := y*side + x
			cell := &cells[i]
			clouds := s.cloudsCur[i]
			moisture := s.moistureCur[i]

			// Collect the dispersal exported by neighbors last step.
			// The prevailing wind blows +X, so the share arriving from
			// the left dominates.
			if x > 0 {
				clouds += windForward * s.dispCur[i-1]
			}
			if x < side-1 {
				clouds += windBack * s.dispCur[i+1]
			}
			if y > 0 {
				clouds += windSide * s.dispCur[i-side]
			}
			if y < side-1 {
				clouds += windSide * s.dispCur[i+side]
			}

			// Collect runoff from higher neighbors; each donor split its
			// export evenly across its lower neighbors.
			h := cell.Height
			if x > 0 && cells[i-1].Height > h && s.downhill[i-1] > 0 {
				moisture += s.runoffCur[i-1] / float64(s.downhill[i-1])
			}
			if x < side-1 && cells[i+1].Height > h && s.downhill[i+1] > 0 {
				moisture += s.runoffCur[i+1] / float64(s.downhill[i+1])
			}
			if y > 0 && cells[i-side].Height > h && s.downhill[i-side] > 0 {
				moisture += s.runoffCur[i-side] / float64(s.downhill[i-side])
			}
			if y < side-1 && cells[i+side].Height > h && s.downhill[i+side] > 0 {
				moisture += s.runoffCur[i+side] / float64(s.downhill[i+side])
			}

			if cell.IsLand() {
				evap := p.EvaporationRate * moisture
				moisture -= evap
				clouds += evap
			} else {
				// Open water is a boundless source: held saturated and
				// continuously emitting clouds.
				moisture = 1
				clouds += p.CloudEmission
			}

			precip := p.PrecipitationRate * clouds
			clouds -= precip
			moisture += precip

			// Orographic cap: cold or high cells cannot hold a full
			// cloud column, the overflow rains out immediately.
			cap := 1 - math.Min(cell.Height, cell.Temperature)
			if cap < 0 {
				cap = 0
			} else if cap > 1 {
				cap = 1
			}
			if clouds > cap {
				moisture += clouds - cap
				clouds = cap
			}

			out := p.DispersalRate * clouds
			clouds -= out
			s.dispNext[i] = out

			runOut := 0.0
			if cell.IsLand() && s.downhill[i] > 0 {
				runOut = p.RunoffRate * moisture
				moisture -= runOut
			}
			s.runoffNext[i] = runOut

			if moisture > 1 {
				moisture = 1
			}
			s.cloudsNext[i] = clouds
			s.moistureNext[i] = moisture
		}
	}
	s.swap()
}

// simulateClimate runs the fixed-iteration moisture simulation and copies
// the final moisture field into the grid.
func simulateClimate(g *CellGrid, p Params) {
	s := newClimateState(g)
	for i := 0; i < p.ClimateSteps; i++ {
		s.step(g, p)
	}
	cells := g.Cells()
	for i := range cells {
		m := s.moistureCur[i]
		if m < 0 {
			m = 0
		} else if m > 1 {
			m = 1
		}
		cells[i].Humidity = m
	}
}
