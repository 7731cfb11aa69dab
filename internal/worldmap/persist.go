package worldmap

import (
	"encoding/binary"
	"io"
	"math"

	"github.com/pkg/errors"

	"terramap/internal/noise"
)

// Persisted blob layout: one fixed-size little-endian record per cell in
// grid-row-major order, no header.
//
//	continentId int16
//	height      float32
//	temperature float32
//	humidity    float32
//	conditions  byte
//	stoneType   byte
const cellRecordSize = 16

// Store writes the grid as a flat record stream. The caller owns atomicity
// of the destination; the blob itself is a pure function of the grid.
func (m *Map) Store(w io.Writer) error {
	if !m.initialized {
		panic("worldmap: Store before Initialize")
	}
	cells := m.grid.Cells()
	buf := make([]byte, cellRecordSize*len(cells))
	for i := range cells {
		c := &cells[i]
		rec := buf[i*cellRecordSize:]
		binary.LittleEndian.PutUint16(rec[0:2], uint16(int16(c.Continent)))
		binary.LittleEndian.PutUint32(rec[2:6], math.Float32bits(float32(c.Height)))
		binary.LittleEndian.PutUint32(rec[6:10], math.Float32bits(float32(c.Temperature)))
		binary.LittleEndian.PutUint32(rec[10:14], math.Float32bits(float32(c.Humidity)))
		rec[14] = byte(c.Conditions)
		rec[15] = byte(c.Stone)
	}
	if _, err := w.Write(buf); err != nil {
		return errors.Wrap(err, "write cell records")
	}
	return nil
}

// load populates the grid from a persisted blob. Truncated or failing
// streams return an error so the caller can fall back to generation;
// trailing bytes beyond the expected record count are ignored.
func (m *Map) load(r io.Reader, seed int64) error {
	g := newCellGrid(m.cfg.WorldExtent, m.cfg.CellSize)
	cells := g.Cells()
	rec := make([]byte, cellRecordSize)
	for i := range cells {
		if _, err := io.ReadFull(r, rec); err != nil {
			return errors.Wrapf(err, "cell record %d of %d", i, len(cells))
		}
		c := &cells[i]
		c.Continent = int(int16(binary.LittleEndian.Uint16(rec[0:2])))
		c.Height = float64(math.Float32frombits(binary.LittleEndian.Uint32(rec[2:6])))
		c.Temperature = float64(math.Float32frombits(binary.LittleEndian.Uint32(rec[6:10])))
		c.Humidity = float64(math.Float32frombits(binary.LittleEndian.Uint32(rec[10:14])))
		c.Conditions = Condition(rec[14])
		c.Stone = StoneType(rec[15])
	}
	m.grid = g
	m.seed = seed
	m.edgeNoise = noise.NewSmooth(seed+seedOffsetEdge, m.cfg.Params.EdgeNoiseFrequency)
	return nil
}

// quantizeForStorage rounds every float field through float32 so a
// generated grid and its stored-then-loaded copy are bit-identical.
func quantizeForStorage(g *CellGrid) {
	cells := g.Cells()
	for i := range cells {
		cells[i].Height = float64(float32(cells[i].Height))
		cells[i].Temperature = float64(float32(cells[i].Temperature))
		cells[i].Humidity = float64(float32(cells[i].Humidity))
	}
}
