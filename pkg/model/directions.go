package model

import "strconv"

// DirectionMode selects how strand directions are assigned: either the
// automatic alternating pattern, or a full manual override table. One
// tagged variant consumed by one function, instead of auto/manual
// branching scattered across call sites.
type DirectionMode struct {
	Auto bool
	// Overrides maps template index -> direction. Consulted only when
	// Auto is false, and must then cover every index.
	Overrides map[int]Direction
}

// AutoDirections is the automatic alternating assignment.
func AutoDirections() DirectionMode {
	return DirectionMode{Auto: true}
}

// ManualDirections assigns exactly the given per-index directions.
func ManualDirections(overrides map[int]Direction) DirectionMode {
	return DirectionMode{Overrides: overrides}
}

// AssignDirections sets the strand direction of every domain in the
// structure.
//
// In auto mode directions alternate UP, DOWN, ... across the indices of
// a subunit, and the alternation restarts at every subunit boundary:
// the R instances are structurally independent copies of the template,
// not one continuous parity around the tube.
//
// Any direction change invalidates previously traced strands, so the
// caller retraces afterwards.
func AssignDirections(structure *NanotubeStructure, mode DirectionMode) error {
	count := structure.SubunitCount()

	if !mode.Auto {
		for i := 0; i < count; i++ {
			if _, ok := mode.Overrides[i]; !ok {
				return &ParameterError{Field: "overrides", Msg: "missing direction for domain " + strconv.Itoa(i)}
			}
		}
	}

	for i := range structure.Domains {
		within := i % count
		if mode.Auto {
			if within%2 == 0 {
				structure.Domains[i].Direction = UP
			} else {
				structure.Domains[i].Direction = DOWN
			}
		} else {
			structure.Domains[i].Direction = mode.Overrides[within]
		}
	}
	return nil
}
