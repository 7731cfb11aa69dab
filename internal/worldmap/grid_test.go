package worldmap

import "testing"

func TestNewCellGridSizing(t *testing.T) {
	g := newCellGrid(256, 16)
	wantHalf := 256/16 + 1
	if g.Half() != wantHalf {
		t.Fatalf("half = %d, want %d", g.Half(), wantHalf)
	}
	if g.Side() != 2*wantHalf+1 {
		t.Fatalf("side = %d, want %d", g.Side(), 2*wantHalf+1)
	}
	if len(g.Cells()) != g.Side()*g.Side() {
		t.Fatalf("arena size = %d, want %d", len(g.Cells()), g.Side()*g.Side())
	}
}

func TestGridIndexRoundTrip(t *testing.T) {
	g := newCellGrid(64, 16)
	seen := map[int]bool{}
	for cy := -g.Half(); cy <= g.Half(); cy++ {
		for cx := -g.Half(); cx <= g.Half(); cx++ {
			idx := g.Index(cx, cy)
			if idx < 0 || idx >= len(g.Cells()) {
				t.Fatalf("index(%d, %d) = %d out of range", cx, cy, idx)
			}
			if seen[idx] {
				t.Fatalf("index(%d, %d) = %d already used", cx, cy, idx)
			}
			seen[idx] = true
			if !g.InBounds(cx, cy) {
				t.Fatalf("InBounds(%d, %d) = false", cx, cy)
			}
		}
	}
	if g.InBounds(g.Half()+1, 0) || g.InBounds(0, -g.Half()-1) {
		t.Fatal("InBounds accepted out-of-range coordinates")
	}
}

func TestGridAtClamped(t *testing.T) {
	g := newCellGrid(64, 16)
	g.At(g.Half(), g.Half()).Height = 0.5
	if got := g.AtClamped(g.Half()+10, g.Half()+10).Height; got != 0.5 {
		t.Fatalf("AtClamped height = %v, want 0.5", got)
	}
	if g.AtClamped(-g.Half()-3, 0) != g.At(-g.Half(), 0) {
		t.Fatal("AtClamped did not clamp to the left edge cell")
	}
}
