package disjoint

// Set is a union-find (disjoint-set) structure over integer ids 0..n-1 with
// path compression and union by size.
type Set struct {
	parent []int
	size   []int
}

// New allocates a Set where every id starts in its own singleton component.
func New(n int) *Set {
	if n < 0 {
		n = 0
	}
	s := &Set{
		parent: make([]int, n),
		size:   make([]int, n),
	}
	for i := range s.parent {
		s.parent[i] = i
		s.size[i] = 1
	}
	return s
}

// Len returns the number of ids managed by the set.
func (s *Set) Len() int { return len(s.parent) }

// Find returns the representative id of the component containing id,
// compressing the path along the way.
func (s *Set) Find(id int) int {
	for s.parent[id] != id {
		s.parent[id] = s.parent[s.parent[id]]
		id = s.parent[id]
	}
	return id
}

// Union merges the components of a and b and reports whether a merge
// happened (false when they were already connected). The larger component
// keeps its representative so ids stay stable as merges accumulate.
func (s *Set) Union(a, b int) bool {
	ra, rb := s.Find(a), s.Find(b)
	if ra == rb {
		return false
	}
	if s.size[ra] < s.size[rb] {
		ra, rb = rb, ra
	}
	s.parent[rb] = ra
	s.size[ra] += s.size[rb]
	return true
}

// Connected reports whether a and b share a component.
func (s *Set) Connected(a, b int) bool { return s.Find(a) == s.Find(b) }

// GetSize returns the number of ids in the component containing id.
func (s *Set) GetSize(id int) int { return s.size[s.Find(id)] }
