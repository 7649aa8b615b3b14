package model

import (
	"strconv"

	"github.com/google/uuid"
)

// Trace is the derived strand topology of a structure: every strand and
// every domain boundary's junction, valid or not.
type Trace struct {
	Strands   []Strand
	Junctions []Junction
}

// TraceStrands threads continuous strand paths through the domain
// lattice. The walk visits domains in circumferential order; at each
// boundary a junction to the next domain is placed if the two domains
// are antiparallel and their phase offsets agree modulo the full-turn
// period. Where the junction is invalid the strand terminates at that
// edge and a new strand begins on the far side.
//
// Every maximal run of junction-linked domains yields two strands, one
// per direction: the principal strand and its antiparallel partner,
// linked through the Partner index. Tracing is a pure function of the
// structure; calling it twice on an unmodified structure yields
// identical results, and runs always begin at the lowest eligible
// domain index so symmetry-boundary ties resolve deterministically.
func TraceStrands(structure *NanotubeStructure, profile Profile) (*Trace, error) {
	if structure == nil || len(structure.Domains) == 0 {
		return nil, &ParameterError{Field: "structure", Msg: "structure has no domains"}
	}

	n := len(structure.Domains)
	junctions := make([]Junction, n)
	for i := 0; i < n; i++ {
		j := structure.Right(i)
		junctions[i] = Junction{
			FromDomain: i,
			ToDomain:   j,
			Offset:     structure.Domains[j].Offset,
			Valid:      junctionValid(structure.Domains[i], structure.Domains[j], profile.B),
		}
	}

	runs := domainRuns(junctions, n)

	trace := &Trace{Junctions: junctions}
	for _, run := range runs {
		closed := len(run) == n && junctions[run[len(run)-1]].Valid

		principal := Strand{
			Direction: structure.Domains[run[0]].Direction,
			Closed:    closed,
			Partner:   len(trace.Strands) + 1,
		}
		for _, di := range run {
			d := structure.Domains[di]
			for step := 0; step < d.M; step++ {
				principal.Positions = append(principal.Positions, Position{
					Domain: di,
					Offset: d.Offset,
					Step:   step,
				})
			}
		}

		// The partner runs the same path backwards on the opposite
		// helix, as Watson-Crick pairing requires.
		partner := Strand{
			Direction: principal.Direction.Inverse(),
			Closed:    closed,
			Partner:   len(trace.Strands),
			Positions: make([]Position, len(principal.Positions)),
		}
		for i, p := range principal.Positions {
			partner.Positions[len(principal.Positions)-1-i] = p
		}

		principal.UUID = strandID(run[0], principal.Direction)
		partner.UUID = strandID(run[0], partner.Direction)
		trace.Strands = append(trace.Strands, principal, partner)
	}

	return trace, nil
}

// junctionValid reports whether a crossover may connect two adjacent
// domains: they must run antiparallel, and the receiving domain's phase
// at the crossing point must equal the sending domain's modulo the
// full-turn period, or the strand would occupy two backbone positions
// at once.
func junctionValid(from, to Domain, period int) bool {
	if from.Direction == to.Direction {
		return false
	}
	if period < 1 {
		period = 1
	}
	return ((from.Offset-to.Offset)%period+period)%period == 0
}

// domainRuns splits the circumferential ring into maximal chains of
// domains linked by valid junctions. Each chain starts at the lowest
// index whose incoming junction is invalid; when every junction is
// valid the whole ring is one chain anchored at domain 0.
func domainRuns(junctions []Junction, n int) [][]int {
	starts := make([]int, 0, n)
	for i := 0; i < n; i++ {
		left := ((i-1)%n + n) % n
		if !junctions[left].Valid {
			starts = append(starts, i)
		}
	}
	if len(starts) == 0 {
		starts = append(starts, 0)
	}

	runs := make([][]int, 0, len(starts))
	for _, start := range starts {
		run := []int{start}
		for i := start; junctions[i].Valid; i = (i + 1) % n {
			next := (i + 1) % n
			if next == start {
				break
			}
			run = append(run, next)
		}
		runs = append(runs, run)
	}
	return runs
}

// strandID derives a stable identifier so retracing an unmodified
// structure reproduces the same strand list.
func strandID(startDomain int, dir Direction) string {
	name := "strand/" + dir.String() + "/" + strconv.Itoa(startDomain)
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(name)).String()
}
