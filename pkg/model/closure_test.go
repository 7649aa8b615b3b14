package model

import (
	"errors"
	"reflect"
	"testing"
)

func subunitWith(t *testing.T, multipliers []int) *Subunit {
	t.Helper()

	s, err := NewSubunit(len(multipliers))
	if err != nil {
		t.Fatal(err)
	}
	for i, m := range multipliers {
		if err := s.SetMultiplier(i, m); err != nil {
			t.Fatal(err)
		}
	}
	return s
}

func TestRecomputeClosure(t *testing.T) {
	s := subunitWith(t, []int{2, 3, 4})

	structure, err := RecomputeStructure(s, 3, 3.0)
	if err != nil {
		t.Fatal(err)
	}

	if structure.M != 9 {
		t.Errorf("M = %d, want 9", structure.M)
	}
	if structure.Ratio != 3.0 {
		t.Errorf("M/R = %v, want 3.0", structure.Ratio)
	}
	if !structure.Closed {
		t.Error("structure with M/R == target should be closed")
	}
	if len(structure.Domains) != 9 {
		t.Errorf("domain count = %d, want 9", len(structure.Domains))
	}

	structure, err = RecomputeStructure(s, 3, 3.5)
	if err != nil {
		t.Fatal(err)
	}
	if structure.Closed {
		t.Error("structure with M/R != target should not be closed")
	}
}

func TestRecomputeDeterministic(t *testing.T) {
	s := subunitWith(t, []int{2, 3, 4})

	a, err := RecomputeStructure(s, 3, 3.0)
	if err != nil {
		t.Fatal(err)
	}
	b, err := RecomputeStructure(s, 3, 3.0)
	if err != nil {
		t.Fatal(err)
	}

	if !reflect.DeepEqual(a, b) {
		t.Error("identical inputs must yield identical structures")
	}
}

func TestRecomputeReplicatesTemplate(t *testing.T) {
	s := subunitWith(t, []int{5, 7})

	structure, err := RecomputeStructure(s, 4, 3.0)
	if err != nil {
		t.Fatal(err)
	}

	for i, d := range structure.Domains {
		if d.Index != i {
			t.Errorf("domain %d re-indexed as %d", i, d.Index)
		}
		want := s.Domains[i%2].M
		if d.M != want {
			t.Errorf("domain %d multiplier = %d, want %d", i, d.M, want)
		}
	}
}

func TestRecomputeRejectsBadParameters(t *testing.T) {
	s := subunitWith(t, []int{1, 1})

	if _, err := RecomputeStructure(s, 0, 1.0); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("symmetry 0: got %v, want ErrInvalidParameter", err)
	}
	if _, err := RecomputeStructure(nil, 1, 1.0); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("nil template: got %v, want ErrInvalidParameter", err)
	}
}

func TestClosureTolerance(t *testing.T) {
	s := subunitWith(t, []int{2, 3, 4})

	// Within a relative 1e-3 of the target still counts as closed.
	structure, err := RecomputeStructure(s, 3, 3.0005)
	if err != nil {
		t.Fatal(err)
	}
	if !structure.Closed {
		t.Error("ratio within relative tolerance should be closed")
	}
}

func TestNeighborLookupWraps(t *testing.T) {
	s := subunitWith(t, []int{1, 1, 1})
	structure, err := RecomputeStructure(s, 1, 1.0)
	if err != nil {
		t.Fatal(err)
	}

	if got := structure.Left(0); got != 2 {
		t.Errorf("Left(0) = %d, want 2", got)
	}
	if got := structure.Right(2); got != 0 {
		t.Errorf("Right(2) = %d, want 0", got)
	}
}
