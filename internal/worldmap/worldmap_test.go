package worldmap

import (
	"bytes"
	"crypto/sha256"
	"testing"
)

func TestGenerateDeterministic(t *testing.T) {
	digest := func(seed int64) [32]byte {
		m := generatedTestMap(t, seed)
		var buf bytes.Buffer
		if err := m.Store(&buf); err != nil {
			t.Fatalf("store: %v", err)
		}
		return sha256.Sum256(buf.Bytes())
	}
	if digest(42) != digest(42) {
		t.Fatal("same seed produced different worlds")
	}
	if digest(42) == digest(43) {
		t.Fatal("different seeds produced identical worlds")
	}
}

func TestInitializeTwicePanics(t *testing.T) {
	m := generatedTestMap(t, 1)
	defer func() {
		if recover() == nil {
			t.Fatal("second Initialize did not panic")
		}
	}()
	m.Initialize(nil, 2)
}

func TestGeneratedHeightInvariant(t *testing.T) {
	m := generatedTestMap(t, 42)
	for i := range m.Grid().Cells() {
		c := &m.Grid().Cells()[i]
		if c.Height == 0 {
			t.Fatalf("cell %d has height exactly zero", i)
		}
		if c.IsLand() != (c.Height > 0) {
			t.Fatalf("cell %d land flag disagrees with its height %v", i, c.Height)
		}
		if c.Temperature < 0 || c.Temperature > 1 {
			t.Fatalf("cell %d temperature %v out of [0, 1]", i, c.Temperature)
		}
		if c.Humidity < 0 || c.Humidity > 1 {
			t.Fatalf("cell %d humidity %v out of [0, 1]", i, c.Humidity)
		}
	}
}

func TestPolesColderThanEquator(t *testing.T) {
	m := generatedTestMap(t, 42)
	g := m.Grid()
	half := g.Half()

	var poleSum, equatorSum float64
	for cx := -half; cx <= half; cx++ {
		poleSum += g.At(cx, -half).Temperature + g.At(cx, half).Temperature
		equatorSum += 2 * g.At(cx, 0).Temperature
	}
	if poleSum >= equatorSum {
		t.Fatalf("pole rows (%v) not colder than the equator row (%v)", poleSum, equatorSum)
	}
}

func TestMetricsConsistent(t *testing.T) {
	m := generatedTestMap(t, 42)
	r := m.Metrics()

	side := m.Grid().Side()
	if r.Cells != side*side {
		t.Fatalf("metrics cells = %d, want %d", r.Cells, side*side)
	}
	if r.LandCells <= 0 || r.LandCells >= r.Cells {
		t.Fatalf("land cells = %d of %d, want a mixed world", r.LandCells, r.Cells)
	}
	if got := float64(r.LandCells) / float64(r.Cells); got != r.LandFraction {
		t.Fatalf("land fraction = %v, recomputed %v", r.LandFraction, got)
	}
	if r.Continents < 2 {
		t.Fatalf("continents = %d, want at least land and water", r.Continents)
	}
	if r.Pieces <= r.Continents {
		t.Fatalf("pieces = %d not above continents = %d", r.Pieces, r.Continents)
	}
	if r.MinHeight >= 0 || r.MaxHeight <= 0 {
		t.Fatalf("height range [%v, %v] does not straddle sea level", r.MinHeight, r.MaxHeight)
	}
}

func TestMetricsBeforeInitializePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Metrics on an uninitialized map did not panic")
		}
	}()
	m := New(DefaultConfig(), nil)
	m.Metrics()
}
