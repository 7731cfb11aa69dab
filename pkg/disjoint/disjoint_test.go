package disjoint

import "testing"

func TestSingletons(t *testing.T) {
	s := New(5)
	for i := 0; i < 5; i++ {
		if got := s.Find(i); got != i {
			t.Fatalf("Find(%d) = %d before any union", i, got)
		}
		if got := s.GetSize(i); got != 1 {
			t.Fatalf("GetSize(%d) = %d before any union", i, got)
		}
	}
	if s.Connected(0, 1) {
		t.Fatal("fresh set must not connect distinct ids")
	}
}

func TestUnionMergesComponents(t *testing.T) {
	s := New(8)
	if !s.Union(0, 1) {
		t.Fatal("first union must report a merge")
	}
	if s.Union(1, 0) {
		t.Fatal("repeated union must report no merge")
	}
	s.Union(2, 3)
	s.Union(0, 3)

	if !s.Connected(1, 2) {
		t.Fatal("transitive union failed")
	}
	if got := s.GetSize(1); got != 4 {
		t.Fatalf("component size = %d, want 4", got)
	}
	if s.Connected(0, 7) {
		t.Fatal("unrelated id joined a component")
	}
}

func TestRepresentativeStaysWithinComponent(t *testing.T) {
	s := New(6)
	s.Union(4, 5)
	s.Union(3, 4)
	root := s.Find(5)
	if root != s.Find(3) || root != s.Find(4) {
		t.Fatal("members of one component disagree on the representative")
	}
	if root < 3 || root > 5 {
		t.Fatalf("representative %d escaped the component", root)
	}
}

func TestZeroLength(t *testing.T) {
	s := New(0)
	if s.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", s.Len())
	}
	s = New(-3)
	if s.Len() != 0 {
		t.Fatalf("Len() after negative n = %d, want 0", s.Len())
	}
}
