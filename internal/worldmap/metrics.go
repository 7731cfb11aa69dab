package worldmap

// Metrics summarizes a generated (or loaded) map. Cell-derived numbers are
// recomputed from the grid; pass telemetry (pieces, boundary counts) is
// only available for maps generated in this process and stays zero for
// loaded ones.
type Metrics struct {
	Cells     int
	LandCells int

	LandFraction float64

	Pieces     int
	Continents int

	TransformBoundaries  int
	ConvergentBoundaries int
	DivergentBoundaries  int

	VulcanismCells int
	SeismicCells   int
	RiftCells      int

	MinHeight  float64
	MaxHeight  float64
	MeanHeight float64

	MeanTemperature float64
	MeanHumidity    float64
}

// Metrics computes the summary for the initialized map.
func (m *Map) Metrics() Metrics {
	if !m.initialized {
		panic("worldmap: Metrics before Initialize")
	}
	cells := m.grid.Cells()
	r := Metrics{
		Cells:                len(cells),
		Pieces:               m.pieceCount,
		TransformBoundaries:  m.boundaries.Transform,
		ConvergentBoundaries: m.boundaries.Convergent,
		DivergentBoundaries:  m.boundaries.Divergent,
		MinHeight:            1,
		MaxHeight:            -1,
	}
	continents := map[int]struct{}{}
	var sumHeight, sumTemp, sumHum float64
	for i := range cells {
		c := &cells[i]
		continents[c.Continent] = struct{}{}
		if c.IsLand() {
			r.LandCells++
		}
		if c.Conditions.Has(ConditionVulcanism) {
			r.VulcanismCells++
		}
		if c.Conditions.Has(ConditionSeismic) {
			r.SeismicCells++
		}
		if c.Conditions.Has(ConditionRift) {
			r.RiftCells++
		}
		if c.Height < r.MinHeight {
			r.MinHeight = c.Height
		}
		if c.Height > r.MaxHeight {
			r.MaxHeight = c.Height
		}
		sumHeight += c.Height
		sumTemp += c.Temperature
		sumHum += c.Humidity
	}
	r.Continents = len(continents)
	if r.Cells > 0 {
		total := float64(r.Cells)
		r.LandFraction = float64(r.LandCells) / total
		r.MeanHeight = sumHeight / total
		r.MeanTemperature = sumTemp / total
		r.MeanHumidity = sumHum / total
	}
	return r
}
