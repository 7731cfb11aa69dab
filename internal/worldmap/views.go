package worldmap

import (
	"image"
	"image/color"
	"os"
	"path/filepath"

	"github.com/Flokey82/genbiome"
	"github.com/pkg/errors"

	"terramap/internal/render"
	"terramap/pkg/core"
)

// View is one named debug rendering of the grid. Paint fills an RGBA buffer
// of Side()*Side() pixels in row-major order.
type View struct {
	Name  string
	Paint func(m *Map, buf []byte)
}

// Views returns the registered field views in display order. The same
// painters feed EmitViews and the interactive viewer.
func Views() []View {
	return []View{
		{Name: "terrain", Paint: paintTerrainView},
		{Name: "continents", Paint: paintContinentsView},
		{Name: "temperature", Paint: paintTemperatureView},
		{Name: "humidity", Paint: paintHumidityView},
		{Name: "biome", Paint: paintBiomeView},
		{Name: "conditions", Paint: paintConditionsView},
	}
}

// EmitViews renders every view to dir as a PNG, upscaled by scale.
// Development aid only; the images carry no compatibility contract.
func (m *Map) EmitViews(dir string, scale int) error {
	if !m.initialized {
		panic("worldmap: EmitViews before Initialize")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrap(err, "create view directory")
	}
	side := m.grid.Side()
	for _, v := range Views() {
		img := image.NewRGBA(image.Rect(0, 0, side, side))
		v.Paint(m, img.Pix)
		if err := render.WritePNG(filepath.Join(dir, v.Name+".png"), render.Upscale(img, scale)); err != nil {
			return errors.Wrapf(err, "emit %s view", v.Name)
		}
	}
	return nil
}

func paintTerrainView(m *Map, buf []byte) {
	deep := color.RGBA{R: 8, G: 24, B: 88, A: 255}
	shallow := color.RGBA{R: 36, G: 96, B: 180, A: 255}
	low := color.RGBA{R: 60, G: 130, B: 60, A: 255}
	high := color.RGBA{R: 150, G: 120, B: 80, A: 255}
	peak := color.RGBA{R: 245, G: 245, B: 245, A: 255}

	cells := m.grid.Cells()
	for i := range cells {
		h := cells[i].Height
		var col color.RGBA
		if h > 0 {
			if h < 0.5 {
				col = render.Lerp(low, high, h*2)
			} else {
				col = render.Lerp(high, peak, (h-0.5)*2)
			}
		} else {
			col = render.Lerp(shallow, deep, -h)
		}
		writePixel(buf, i, col)
	}
}

func paintContinentsView(m *Map, buf []byte) {
	cells := m.grid.Cells()
	for i := range cells {
		c := &cells[i]
		h := core.Hash2(int64(c.Continent), 0x5eed, 0xca11)
		col := color.RGBA{
			R: uint8(h),
			G: uint8(h >> 8),
			B: uint8(h >> 16),
			A: 255,
		}
		if !c.IsLand() {
			// Darken water continents so land ones pop.
			col.R /= 3
			col.G /= 3
			col.B /= 3
		}
		writePixel(buf, i, col)
	}
}

func paintTemperatureView(m *Map, buf []byte) {
	cells := m.grid.Cells()
	vals := make([]float64, len(cells))
	for i := range cells {
		vals[i] = cells[i].Temperature
	}
	render.FillScalarRGBA(buf, vals,
		color.RGBA{R: 30, G: 60, B: 180, A: 255},
		color.RGBA{R: 210, G: 60, B: 30, A: 255})
}

func paintHumidityView(m *Map, buf []byte) {
	cells := m.grid.Cells()
	vals := make([]float64, len(cells))
	for i := range cells {
		vals[i] = cells[i].Humidity
	}
	render.FillScalarRGBA(buf, vals,
		color.RGBA{R: 200, G: 180, B: 120, A: 255},
		color.RGBA{R: 20, G: 90, B: 170, A: 255})
}

func paintBiomeView(m *Map, buf []byte) {
	ocean := color.RGBA{R: 12, G: 40, B: 110, A: 255}
	cells := m.grid.Cells()
	for i := range cells {
		c := &cells[i]
		if !c.IsLand() {
			writePixel(buf, i, ocean)
			continue
		}
		// Whittaker colors: map normalized temperature onto roughly
		// -15..30 degrees and humidity onto dm/year of precipitation.
		nc := genbiome.GetWhittakerModBiomeColor(int(c.Temperature*45-15), int(c.Humidity*45), 1)
		writePixel(buf, i, color.RGBA{R: nc.R, G: nc.G, B: nc.B, A: 255})
	}
}

// conditionPalette maps each combination of condition bits to a color:
// vulcanism on red, seismic on green, rift on blue.
var conditionPalette = func() []color.RGBA {
	palette := make([]color.RGBA, 8)
	for bits := range palette {
		col := color.RGBA{R: 20, G: 20, B: 20, A: 255}
		if Condition(bits).Has(ConditionVulcanism) {
			col.R = 230
		}
		if Condition(bits).Has(ConditionSeismic) {
			col.G = 200
		}
		if Condition(bits).Has(ConditionRift) {
			col.B = 230
		}
		palette[bits] = col
	}
	return palette
}()

func paintConditionsView(m *Map, buf []byte) {
	cells := m.grid.Cells()
	vals := make([]uint8, len(cells))
	for i := range cells {
		vals[i] = uint8(cells[i].Conditions)
	}
	render.FillPaletteRGBA(buf, vals, conditionPalette)
}

func writePixel(buf []byte, i int, col color.RGBA) {
	base := i * 4
	buf[base+0] = col.R
	buf[base+1] = col.G
	buf[base+2] = col.B
	buf[base+3] = col.A
}
