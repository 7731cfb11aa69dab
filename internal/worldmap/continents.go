package worldmap

import (
	"math"
	"sort"

	"terramap/pkg/disjoint"
)

// continentField is the transient output of the merge pass: the union-find
// over pieces, the per-piece land classification, and the coalesced
// continent adjacency graph keyed by union-find roots.
type continentField struct {
	uf     *disjoint.Set
	pieces *pieceField
	land   []bool

	roots     []int
	adjacency map[int][]int
}

// driftValue returns the representative noise value of a continent root,
// used to derive its drift angle.
func (c *continentField) driftValue(root int) float64 {
	return c.pieces.values[root]
}

// isLandContinent reports whether any piece of the continent is classified
// land.
func (c *continentField) isLandContinent(root int) bool {
	for p := range c.land {
		if c.land[p] && c.uf.Find(p) == root {
			return true
		}
	}
	return false
}

// mergeContinents runs the merge heuristics over the piece graph, classifies
// pieces land or water, fixes enclosed gaps, floods the grid border to
// water, and rewrites every cell height into disjoint land/water bands.
func mergeContinents(g *CellGrid, pieces *pieceField, p Params) *continentField {
	n := pieces.count()
	c := &continentField{
		uf:     disjoint.New(n),
		pieces: pieces,
		land:   make([]bool, n),
	}

	c.buyNeighbors(p)
	c.consumeEnclosed()
	c.mergeSingletons()
	c.classifyLand(p)
	c.fillGaps()
	c.floodBorder(g)
	c.rewriteHeights(g, p)
	c.coalesce()
	return c
}

// buyNeighbors gives every piece an integer budget derived from its noise
// value and lets it union with that many neighbors in graph order. Pieces
// with extreme noise values absorb more neighbors and seed the large
// landmasses.
func (c *continentField) buyNeighbors(p Params) {
	for id, v := range c.pieces.values {
		budget := int(math.Floor(math.Exp2(math.Abs(v)/p.BudgetK) - p.BudgetC))
		for _, nb := range c.pieces.adjacency[id] {
			if budget <= 0 {
				break
			}
			if c.uf.Union(id, nb) {
				budget--
			}
		}
	}
}

// consumeEnclosed unions any piece whose every neighbor already resolves to
// one single other continent into that continent. Runs to a fixpoint so
// chains of enclosed remnants collapse.
func (c *continentField) consumeEnclosed() {
	for changed := true; changed; {
		changed = false
		for id := range c.pieces.values {
			neighbors := c.pieces.adjacency[id]
			if len(neighbors) == 0 {
				continue
			}
			own := c.uf.Find(id)
			target := -1
			uniform := true
			for _, nb := range neighbors {
				r := c.uf.Find(nb)
				if r == own {
					uniform = false
					break
				}
				if target == -1 {
					target = r
				} else if r != target {
					uniform = false
					break
				}
			}
			if uniform && target != -1 {
				if c.uf.Union(id, target) {
					changed = true
				}
			}
		}
	}
}

// mergeSingletons pairs up pieces that are still alone: each one unions with
// its first neighbor that is also still a singleton.
func (c *continentField) mergeSingletons() {
	for id := range c.pieces.values {
		if c.uf.GetSize(id) != 1 {
			continue
		}
		for _, nb := range c.pieces.adjacency[id] {
			if c.uf.GetSize(nb) == 1 {
				c.uf.Union(id, nb)
				break
			}
		}
	}
}

// classifyLand marks a piece land when the magnitude of its noise value
// clears the threshold, and spreads the mark to the piece's direct
// neighbors without merging their continents. Spreading does not cascade:
// only threshold pieces seed it.
func (c *continentField) classifyLand(p Params) {
	var seeds []int
	for id, v := range c.pieces.values {
		if math.Abs(v) > p.LandThreshold {
			seeds = append(seeds, id)
		}
	}
	for _, id := range seeds {
		c.land[id] = true
		for _, nb := range c.pieces.adjacency[id] {
			c.land[nb] = true
		}
	}
}

// fillGaps flips the classification of any piece that is entirely
// surrounded by the opposite class and whose union component holds no other
// piece of its own class. Flips are collected first so one scan cannot
// cascade into its own results.
func (c *continentField) fillGaps() {
	var flips []int
	for id := range c.pieces.values {
		neighbors := c.pieces.adjacency[id]
		if len(neighbors) == 0 {
			continue
		}
		enclosed := true
		for _, nb := range neighbors {
			if c.land[nb] == c.land[id] {
				enclosed = false
				break
			}
		}
		if !enclosed {
			continue
		}
		root := c.uf.Find(id)
		connectedSameClass := false
		for other := range c.pieces.values {
			if other != id && c.land[other] == c.land[id] && c.uf.Find(other) == root {
				connectedSameClass = true
				break
			}
		}
		if !connectedSameClass {
			flips = append(flips, id)
		}
	}
	for _, id := range flips {
		c.land[id] = !c.land[id]
	}
}

// floodBorder forces every continent touching the four grid edges to water,
// removing landmasses that would otherwise hug the world rim.
func (c *continentField) floodBorder(g *CellGrid) {
	half := g.Half()
	waterRoots := map[int]bool{}
	mark := func(cx, cy int) {
		piece := c.pieces.ids[g.Index(cx, cy)]
		waterRoots[c.uf.Find(piece)] = true
	}
	for cx := -half; cx <= half; cx++ {
		mark(cx, -half)
		mark(cx, half)
	}
	for cy := -half; cy <= half; cy++ {
		mark(-half, cy)
		mark(half, cy)
	}
	for id := range c.land {
		if c.land[id] && waterRoots[c.uf.Find(id)] {
			c.land[id] = false
		}
	}
}

// rewriteHeights moves every cell height into its class band: land heights
// become |h| + LandFloor, water heights shift down by WaterOffset. The
// bands are disjoint and exclude zero, so IsLand is exactly height > 0 from
// here on. Continent ids are stamped onto the cells at the same time.
func (c *continentField) rewriteHeights(g *CellGrid, p Params) {
	for idx := range g.Cells() {
		cell := &g.Cells()[idx]
		piece := c.pieces.ids[idx]
		cell.Continent = c.uf.Find(piece)
		if c.land[piece] {
			cell.Height = math.Abs(cell.Height) + p.LandFloor
			if cell.Height > 1 {
				cell.Height = 1
			}
		} else {
			cell.Height += p.WaterOffset
			if cell.Height < -1 {
				cell.Height = -1
			}
			if cell.Height >= 0 {
				cell.Height = -p.LandFloor
			}
		}
	}
}

// coalesce folds the piece adjacency graph into the continent-level graph
// used by the tectonic pass.
func (c *continentField) coalesce() {
	sets := map[int]map[int]struct{}{}
	for id, neighbors := range c.pieces.adjacency {
		root := c.uf.Find(id)
		if _, ok := sets[root]; !ok {
			sets[root] = map[int]struct{}{}
		}
		for _, nb := range neighbors {
			nr := c.uf.Find(nb)
			if nr != root {
				sets[root][nr] = struct{}{}
			}
		}
	}
	c.adjacency = make(map[int][]int, len(sets))
	c.roots = make([]int, 0, len(sets))
	for root, set := range sets {
		c.roots = append(c.roots, root)
		ids := make([]int, 0, len(set))
		for nb := range set {
			ids = append(ids, nb)
		}
		sort.Ints(ids)
		c.adjacency[root] = ids
	}
	sort.Ints(c.roots)
}
