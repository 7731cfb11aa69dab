package noise

import "testing"

func TestCellularDeterministic(t *testing.T) {
	a := NewCellular(1337, 0.1)
	b := NewCellular(1337, 0.1)
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			va := a.Value(float64(x), float64(y))
			vb := b.Value(float64(x), float64(y))
			if va != vb {
				t.Fatalf("cellular value diverged at (%d,%d): %v vs %v", x, y, va, vb)
			}
			if va < -1 || va >= 1 {
				t.Fatalf("cellular value %v out of [-1,1) at (%d,%d)", va, x, y)
			}
		}
	}
}

func TestCellularSeedsDiffer(t *testing.T) {
	a := NewCellular(1, 0.1)
	b := NewCellular(2, 0.1)
	same := 0
	total := 0
	for y := 0; y < 12; y++ {
		for x := 0; x < 12; x++ {
			if a.Value(float64(x), float64(y)) == b.Value(float64(x), float64(y)) {
				same++
			}
			total++
		}
	}
	if same == total {
		t.Fatal("different seeds produced identical cellular fields")
	}
}

func TestCellularQuantizes(t *testing.T) {
	c := NewCellular(7, 0.05)
	// Distinct query points must collapse onto a small set of region values.
	seen := map[float64]bool{}
	for y := 0; y < 40; y++ {
		for x := 0; x < 40; x++ {
			seen[c.Value(float64(x), float64(y))] = true
		}
	}
	if len(seen) < 2 {
		t.Fatal("cellular field degenerated into a single region")
	}
	if len(seen) >= 40*40 {
		t.Fatalf("cellular field has %d distinct values; expected constant regions", len(seen))
	}
}

func TestFractalDeterministic(t *testing.T) {
	a := NewFractal(42, 0.05)
	b := NewFractal(42, 0.05)
	for i := 0; i < 64; i++ {
		x := float64(i) * 1.7
		y := float64(i) * 0.9
		if a.Sample(x, y) != b.Sample(x, y) {
			t.Fatalf("fractal sample diverged at i=%d", i)
		}
	}
}

func TestSmoothBounded(t *testing.T) {
	s := NewSmooth(9, 0.3)
	for i := 0; i < 256; i++ {
		v := s.Sample(float64(i)*0.31, float64(i)*0.17)
		if v < -1.0001 || v > 1.0001 {
			t.Fatalf("smooth sample %v out of [-1,1] at i=%d", v, i)
		}
	}
}
