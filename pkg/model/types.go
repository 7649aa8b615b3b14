// Core data model for the nanotube structure computations.

package model

import "fmt"

// Direction is the up/downness of a helix within a domain.
type Direction int

const (
	UP Direction = iota
	DOWN
)

// Inverse returns the opposite direction.
func (d Direction) Inverse() Direction {
	if d == UP {
		return DOWN
	}
	return UP
}

func (d Direction) String() string {
	if d == UP {
		return "UP"
	}
	return "DOWN"
}

// ParseDirection reads a direction name as written in domain tables.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "UP", "up":
		return UP, nil
	case "DOWN", "down":
		return DOWN, nil
	}
	return UP, &ParameterError{Field: "direction", Msg: fmt.Sprintf("unknown direction %q", s)}
}

// Domain is one helical repeat unit of the nanotube wall.
//
// Neighbors are never stored; they are looked up by computed index with
// modular wraparound, so the circumferential adjacency carries no
// reference cycles.
type Domain struct {
	// Index within its subunit, 0-based.
	Index int
	// M is the interior-angle multiplier (number of characteristic
	// angles between this domain and the next one's line of tangency).
	// Always >= 1.
	M int
	// Direction of the domain's principal helix.
	Direction Direction
	// Offset is the helical phase shift in characteristic-angle steps,
	// kept in [0, B) where B is the profile's bases-per-T-turns.
	Offset int
}

// Subunit is the template group of domains that is replicated around the
// tube's circumference. All replicas share the template's multiplier
// sequence; only the template is ever edited.
type Subunit struct {
	Domains []Domain
}

// Count returns the number of domains in the template.
func (s *Subunit) Count() int {
	return len(s.Domains)
}

// Multipliers returns the per-position multiplier vector m_0..m_{C-1}.
func (s *Subunit) Multipliers() []int {
	ms := make([]int, len(s.Domains))
	for i, d := range s.Domains {
		ms[i] = d.M
	}
	return ms
}

// Clone deep-copies the template so edits never alias a committed one.
func (s *Subunit) Clone() *Subunit {
	out := &Subunit{Domains: make([]Domain, len(s.Domains))}
	copy(out.Domains, s.Domains)
	return out
}

// NanotubeStructure is the aggregate of all symmetry instances of the
// subunit arranged around the circumference. It is recomputed in full on
// every structural edit and never partially mutated.
type NanotubeStructure struct {
	// Domains holds all C*R domains in circumferential order. Index is
	// re-numbered 0..C*R-1 across instances.
	Domains []Domain
	// Symmetry is the instantiation count R.
	Symmetry int
	// M is the sum of multipliers over one subunit.
	M int
	// Ratio is M / R.
	Ratio float64
	// TargetRatio is the externally supplied geometric constant the
	// ratio must hit for the tube to close.
	TargetRatio float64
	// Closed reports whether Ratio matches TargetRatio within
	// tolerance. An unclosed structure is a valid, flagged state.
	Closed bool
}

// SubunitCount returns C, the domains-per-subunit count.
func (n *NanotubeStructure) SubunitCount() int {
	if n.Symmetry == 0 {
		return 0
	}
	return len(n.Domains) / n.Symmetry
}

// Left returns the index of the circumferential left neighbor.
func (n *NanotubeStructure) Left(index int) int {
	count := len(n.Domains)
	return ((index-1)%count + count) % count
}

// Right returns the index of the circumferential right neighbor.
func (n *NanotubeStructure) Right(index int) int {
	return (index + 1) % len(n.Domains)
}

// Position is one nucleotide slot along a strand: which domain it lies
// in, the phase offset of that domain, and the step within the domain.
type Position struct {
	Domain int
	Offset int
	Step   int
}

// Strand is a maximal continuous nucleotide path across one or more
// domains. Strands are derived by the tracer and never edited directly;
// structural edits retrace all strands from scratch.
type Strand struct {
	UUID      string
	Direction Direction
	// Positions visited, in backbone order.
	Positions []Position
	// Closed is set when the strand returns to its own start.
	Closed bool
	// Partner is the index, within the traced strand list, of the
	// antiparallel partner strand.
	Partner int
	// Sequence holds one base per position once assigned; nil until
	// then.
	Sequence []Base
}

// Junction is a crossover point where a strand transitions between two
// adjacent domains.
type Junction struct {
	// FromDomain and ToDomain are indexes into the structure's domain
	// list.
	FromDomain int
	ToDomain   int
	// Offset is the phase at which the transition occurs.
	Offset int
	// Valid reports whether the two domains' directions and phases
	// permit the crossover. Invalid junctions are data, not errors.
	Valid bool
}
