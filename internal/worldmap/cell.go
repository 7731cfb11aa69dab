package worldmap

// StoneType enumerates the dominant stone of a cell.
type StoneType uint8

const (
	StoneSandstone StoneType = iota
	StoneGranite
	StoneLimestone
	StoneMarble

	stoneTypeCount = 4
)

// String returns the stone name for logs and debug views.
func (s StoneType) String() string {
	switch s {
	case StoneSandstone:
		return "sandstone"
	case StoneGranite:
		return "granite"
	case StoneLimestone:
		return "limestone"
	case StoneMarble:
		return "marble"
	}
	return "unknown"
}

// Condition is a bit set of geological conditions attached to a cell.
type Condition uint8

const (
	// ConditionVulcanism marks volcanic activity (subduction zones,
	// mid-ocean ridges).
	ConditionVulcanism Condition = 1 << iota
	// ConditionSeismic marks lateral-shear boundaries.
	ConditionSeismic
	// ConditionRift marks separating continents.
	ConditionRift
)

// Has reports whether all bits of c are set.
func (f Condition) Has(c Condition) bool { return f&c == c }

// Cell is one entry of the world grid. Fields mutate only while the
// generation passes run; afterwards the grid is immutable.
type Cell struct {
	Height      float64
	Temperature float64
	Humidity    float64
	Continent   int
	Stone       StoneType
	Conditions  Condition
}

// IsLand reports whether the cell is above sea level. The generation passes
// guarantee height is never exactly zero, so land and water partition the
// grid exactly.
func (c *Cell) IsLand() bool { return c.Height > 0 }
