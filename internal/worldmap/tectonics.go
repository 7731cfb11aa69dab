package worldmap

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// BoundaryType classifies the relative motion of two adjacent continents.
type BoundaryType uint8

const (
	// BoundaryTransform is lateral shear with no strong vertical effect.
	BoundaryTransform BoundaryType = iota
	// BoundaryConvergent is two continents approaching each other.
	BoundaryConvergent
	// BoundaryDivergent is two continents separating.
	BoundaryDivergent
)

// String returns the boundary name for logs.
func (b BoundaryType) String() string {
	switch b {
	case BoundaryTransform:
		return "transform"
	case BoundaryConvergent:
		return "convergent"
	case BoundaryDivergent:
		return "divergent"
	}
	return "unknown"
}

// tectonicStats counts the boundary edges seen during the walk, by type.
type tectonicStats struct {
	Transform  int
	Convergent int
	Divergent  int
}

// classifyBoundary derives the boundary type from the relative position and
// relative drift of two sample points on either side. Near-zero relative
// drift means the plates slide past each other; otherwise a positive
// projection of drift onto the separation axis means the plates separate.
func classifyBoundary(relPos, relDrift mgl64.Vec2, transformThreshold float64) BoundaryType {
	if relDrift.Len() < transformThreshold {
		return BoundaryTransform
	}
	if relPos.Dot(relDrift) > 0 {
		return BoundaryDivergent
	}
	return BoundaryConvergent
}

// driftVector derives a continent's drift direction from its representative
// noise value.
func driftVector(value float64) mgl64.Vec2 {
	angle := value * math.Pi
	return mgl64.Vec2{math.Cos(angle), math.Sin(angle)}
}

// simulateTectonics assigns a drift vector per continent, walks every grid
// edge once, classifies each continent boundary, and sculpts elevation and
// condition flags along it. All elevation offsets accumulate in a side
// buffer and land on the grid only after the full walk, so a cell touched
// by several boundaries is never double-applied mid-walk.
func simulateTectonics(g *CellGrid, c *continentField, p Params) tectonicStats {
	half := g.Half()

	drift := make(map[int]mgl64.Vec2, len(c.roots))
	landRoot := make(map[int]bool, len(c.roots))
	for _, root := range c.roots {
		drift[root] = driftVector(c.driftValue(root))
	}
	for id, isLand := range c.land {
		if isLand {
			landRoot[c.uf.Find(id)] = true
		}
	}

	offsets := make([]float64, len(g.Cells()))
	boundaryCache := map[[2]int]BoundaryType{}
	var stats tectonicStats

	handleEdge := func(ax, ay, bx, by int) {
		a := g.At(ax, ay)
		b := g.At(bx, by)
		if a.Continent == b.Continent {
			return
		}

		lo, hi := a.Continent, b.Continent
		loX, loY, hiX, hiY := ax, ay, bx, by
		if lo > hi {
			lo, hi = hi, lo
			loX, loY, hiX, hiY = bx, by, ax, ay
		}
		key := [2]int{lo, hi}
		kind, ok := boundaryCache[key]
		if !ok {
			relPos := mgl64.Vec2{float64(hiX - loX), float64(hiY - loY)}
			relDrift := drift[hi].Sub(drift[lo])
			kind = classifyBoundary(relPos, relDrift, p.TransformThreshold)
			boundaryCache[key] = kind
		}

		dLo, dHi := drift[lo], drift[hi]
		landLo, landHi := landRoot[lo], landRoot[hi]

		switch kind {
		case BoundaryTransform:
			stats.Transform++
			g.At(loX, loY).Conditions |= ConditionSeismic
			g.At(hiX, hiY).Conditions |= ConditionSeismic

		case BoundaryDivergent:
			stats.Divergent++
			angle := math.Acos(mgl64.Clamp(dLo.Dot(dHi), -1, 1))
			mag := p.DivergentScale * angle / math.Pi
			switch {
			case landLo && landHi:
				// Continental rift: a shallow valley opens along the
				// boundary.
				g.At(loX, loY).Conditions |= ConditionRift
				g.At(hiX, hiY).Conditions |= ConditionRift
				offsets[g.Index(loX, loY)] -= mag * 0.5
				offsets[g.Index(hiX, hiY)] -= mag * 0.5
			case !landLo && !landHi:
				// Mid-ocean ridge: the sea floor lifts and vents.
				g.At(loX, loY).Conditions |= ConditionRift | ConditionVulcanism
				g.At(hiX, hiY).Conditions |= ConditionRift | ConditionVulcanism
				offsets[g.Index(loX, loY)] += mag
				offsets[g.Index(hiX, hiY)] += mag
			default:
				// Mixed boundary: only the water side subsides.
				if landLo {
					offsets[g.Index(hiX, hiY)] -= mag * 0.5
				} else {
					offsets[g.Index(loX, loY)] -= mag * 0.5
				}
			}

		case BoundaryConvergent:
			stats.Convergent++
			relDrift := dHi.Sub(dLo)
			strength := math.Min(relDrift.Len(), 2) / 2
			combined := dLo.Add(dHi)
			if combined.Len() < 1e-9 {
				combined = mgl64.Vec2{float64(hiX - loX), float64(hiY - loY)}
			}
			dir := combined.Normalize()

			switch {
			case landLo && landHi:
				// Collision: mountain building along a ray from the
				// boundary cell of the larger continent.
				startX, startY := loX, loY
				if c.uf.GetSize(hi) > c.uf.GetSize(lo) {
					startX, startY = hiX, hiY
				}
				liftAlongRay(g, offsets, startX, startY, dir, strength, p)
			case landLo != landHi:
				// Subduction: the oceanic side sinks, the continental
				// side gets volcanic lift.
				waterX, waterY := loX, loY
				landX, landY := hiX, hiY
				if landLo {
					waterX, waterY, landX, landY = hiX, hiY, loX, loY
				}
				offsets[g.Index(waterX, waterY)] -= p.ConvergentScale * strength
				g.At(landX, landY).Conditions |= ConditionVulcanism
				liftAlongRay(g, offsets, landX, landY, dir, strength, p)
			default:
				// Ocean-ocean convergence: the smaller plate subducts
				// under the larger one, which gets an island arc.
				sinkX, sinkY := loX, loY
				arcX, arcY := hiX, hiY
				if c.uf.GetSize(lo) > c.uf.GetSize(hi) {
					sinkX, sinkY, arcX, arcY = hiX, hiY, loX, loY
				}
				offsets[g.Index(sinkX, sinkY)] -= p.ConvergentScale * strength * 0.5
				g.At(arcX, arcY).Conditions |= ConditionVulcanism
				offsets[g.Index(arcX, arcY)] += p.ConvergentScale * strength * 0.5
			}
		}
	}

	for cy := -half; cy <= half; cy++ {
		for cx := -half; cx <= half; cx++ {
			if cx > -half {
				handleEdge(cx-1, cy, cx, cy)
			}
			if cy > -half {
				handleEdge(cx, cy-1, cx, cy)
			}
		}
	}

	applyOffsets(g, offsets)
	return stats
}

// liftAlongRay applies increasing lift to the land cells on a ray traced in
// the combined drift direction. The lift grows toward the far end of the
// ray, pushing the crest of the range away from the boundary.
func liftAlongRay(g *CellGrid, offsets []float64, startX, startY int, dir mgl64.Vec2, strength float64, p Params) {
	length := int(p.RayLength * strength)
	if length < 1 {
		length = 1
	}
	for i := 1; i <= length; i++ {
		px := startX + int(math.Round(dir.X()*float64(i)))
		py := startY + int(math.Round(dir.Y()*float64(i)))
		if !g.InBounds(px, py) {
			break
		}
		if !g.At(px, py).IsLand() {
			continue
		}
		offsets[g.Index(px, py)] += p.ConvergentScale * strength * float64(i) / float64(length)
	}
}

// applyOffsets adds the accumulated elevation offsets to the grid in one
// sweep. Offsets never flip a cell across the land/water boundary: the
// height is clamped back into its class band.
func applyOffsets(g *CellGrid, offsets []float64) {
	const bandEpsilon = 0.01
	cells := g.Cells()
	for i, off := range offsets {
		if off == 0 {
			continue
		}
		cell := &cells[i]
		wasLand := cell.IsLand()
		cell.Height += off
		if wasLand {
			cell.Height = mgl64.Clamp(cell.Height, bandEpsilon, 1)
		} else {
			cell.Height = mgl64.Clamp(cell.Height, -1, -bandEpsilon)
		}
	}
}
