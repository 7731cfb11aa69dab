package worldmap

import (
	"testing"

	"terramap/internal/noise"
	"terramap/pkg/disjoint"
)

func buildMergedGrid(t *testing.T, seed int64) (*CellGrid, *continentField) {
	t.Helper()
	cfg := DefaultConfig()
	cfg.WorldExtent = 256
	g := newCellGrid(cfg.WorldExtent, cfg.CellSize)
	p := cfg.Params
	paintRelief(g, noise.NewFractal(seed+seedOffsetRelief, p.ReliefFrequency), p.ReliefAmplitude)
	pieces := partitionPieces(g, noise.NewCellular(seed+seedOffsetPieces, p.PieceFrequency))
	return g, mergeContinents(g, pieces, p)
}

func TestMergeHeightBands(t *testing.T) {
	g, _ := buildMergedGrid(t, 42)
	for i := range g.Cells() {
		h := g.Cells()[i].Height
		if h == 0 {
			t.Fatalf("cell %d has height exactly zero", i)
		}
		if h > 1 || h < -1 {
			t.Fatalf("cell %d height %v out of [-1, 1]", i, h)
		}
	}
}

func TestMergeBorderIsWater(t *testing.T) {
	g, _ := buildMergedGrid(t, 42)
	half := g.Half()
	for cx := -half; cx <= half; cx++ {
		if g.At(cx, -half).IsLand() || g.At(cx, half).IsLand() {
			t.Fatalf("border cell at cx=%d is land", cx)
		}
	}
	for cy := -half; cy <= half; cy++ {
		if g.At(-half, cy).IsLand() || g.At(half, cy).IsLand() {
			t.Fatalf("border cell at cy=%d is land", cy)
		}
	}
}

func TestMergeContinentStamps(t *testing.T) {
	g, c := buildMergedGrid(t, 42)
	roots := map[int]bool{}
	for _, r := range c.roots {
		roots[r] = true
	}
	for i := range g.Cells() {
		id := g.Cells()[i].Continent
		if !roots[id] {
			t.Fatalf("cell %d stamped with continent %d, not a coalesced root", i, id)
		}
	}
	if len(c.roots) < 2 {
		t.Fatalf("continent count = %d, want at least land and water", len(c.roots))
	}
}

func TestClassifyLandSpreadsOnce(t *testing.T) {
	// Piece 0 clears the threshold; 1 is its neighbor, 2 is only adjacent
	// to 1. The mark must reach 1 but never cascade to 2.
	c := &continentField{
		uf:     disjoint.New(3),
		pieces: &pieceField{values: []float64{0.9, 0.1, 0.1}, adjacency: [][]int{{1}, {0, 2}, {1}}},
		land:   make([]bool, 3),
	}
	p := DefaultConfig().Params
	c.classifyLand(p)
	if !c.land[0] || !c.land[1] {
		t.Fatalf("land flags = %v, want pieces 0 and 1 marked", c.land)
	}
	if c.land[2] {
		t.Fatal("land mark cascaded past the direct neighbors")
	}
}

func TestFillGapsFlipsEnclosed(t *testing.T) {
	// Piece 0 is water fully surrounded by land pieces and alone in its
	// union component, so it flips to land.
	c := &continentField{
		uf:     disjoint.New(3),
		pieces: &pieceField{values: make([]float64, 3), adjacency: [][]int{{1, 2}, {0, 2}, {0, 1}}},
		land:   []bool{false, true, true},
	}
	c.fillGaps()
	if !c.land[0] {
		t.Fatal("enclosed water piece was not flipped to land")
	}
	if !c.land[1] || !c.land[2] {
		t.Fatal("fillGaps flipped a piece that was not enclosed")
	}
}

func TestFillGapsKeepsConnectedClass(t *testing.T) {
	// Piece 0 is again surrounded by land, but its union component holds
	// water piece 3 elsewhere, so the lake survives.
	c := &continentField{
		uf:     disjoint.New(4),
		pieces: &pieceField{values: make([]float64, 4), adjacency: [][]int{{1, 2}, {0, 2, 3}, {0, 1, 3}, {1, 2}}},
		land:   []bool{false, true, true, false},
	}
	c.uf.Union(0, 3)
	c.fillGaps()
	if c.land[0] {
		t.Fatal("water piece flipped despite a same-class piece in its component")
	}
}

func TestConsumeEnclosedCollapsesRemnant(t *testing.T) {
	// Piece 2's only neighbor resolves to the 0/1 continent, so it is
	// consumed.
	c := &continentField{
		uf:     disjoint.New(3),
		pieces: &pieceField{values: make([]float64, 3), adjacency: [][]int{{1}, {0, 2}, {1}}},
		land:   make([]bool, 3),
	}
	c.uf.Union(0, 1)
	c.consumeEnclosed()
	if !c.uf.Connected(2, 0) {
		t.Fatal("enclosed remnant was not consumed by the surrounding continent")
	}
}
