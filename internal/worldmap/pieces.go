package worldmap

import (
	"sort"

	"terramap/internal/noise"
)

// pieceField is the transient output of the partition pass: every cell is
// assigned to one noise-quantized piece, and pieces that touch via a
// 4-neighbor cell pair are recorded as adjacent.
type pieceField struct {
	// ids holds the piece id of every cell, in arena order.
	ids []int
	// values maps piece id to the continuous noise value its region was
	// quantized from. All later heuristics (budget, land threshold, drift
	// angle) read this value.
	values []float64
	// adjacency maps piece id to its sorted, unique neighbor ids.
	adjacency [][]int
}

func (f *pieceField) count() int { return len(f.values) }

// partitionPieces evaluates cellular noise at every cell, quantizes the
// values into piece ids by first-seen order of a row-major scan, and builds
// the undirected adjacency graph. The first-seen allocation keeps piece ids
// deterministic for a fixed seed.
func partitionPieces(g *CellGrid, cn *noise.Cellular) *pieceField {
	side := g.Side()
	half := g.Half()

	f := &pieceField{ids: make([]int, side*side)}
	seen := make(map[float64]int)
	adjacency := []map[int]struct{}{}

	for cy := -half; cy <= half; cy++ {
		for cx := -half; cx <= half; cx++ {
			v := cn.Value(float64(cx), float64(cy))
			id, ok := seen[v]
			if !ok {
				id = len(f.values)
				seen[v] = id
				f.values = append(f.values, v)
				adjacency = append(adjacency, map[int]struct{}{})
			}
			idx := g.Index(cx, cy)
			f.ids[idx] = id

			if cx > -half {
				left := f.ids[g.Index(cx-1, cy)]
				if left != id {
					adjacency[id][left] = struct{}{}
					adjacency[left][id] = struct{}{}
				}
			}
			if cy > -half {
				top := f.ids[g.Index(cx, cy-1)]
				if top != id {
					adjacency[id][top] = struct{}{}
					adjacency[top][id] = struct{}{}
				}
			}
		}
	}

	f.adjacency = make([][]int, len(adjacency))
	for id, set := range adjacency {
		ids := make([]int, 0, len(set))
		for n := range set {
			ids = append(ids, n)
		}
		sort.Ints(ids)
		f.adjacency[id] = ids
	}
	return f
}
