package model

// Template subunit edits. The subunit is configured once and replicated
// R times, so all operations here act on the template only; the full
// structure is rebuilt afterwards by RecomputeStructure.

// NewSubunit creates a template of count domains with multiplier 1,
// direction UP and zero phase offset.
func NewSubunit(count int) (*Subunit, error) {
	if count < 1 {
		return nil, &ParameterError{Field: "count", Msg: "domain count must be at least 1"}
	}
	s := &Subunit{Domains: make([]Domain, count)}
	for i := range s.Domains {
		s.Domains[i] = Domain{Index: i, M: 1}
	}
	return s, nil
}

// SetDomainCount re-indexes the template to hold count domains.
// Multipliers, directions and offsets of surviving indices are
// preserved; new domains default to multiplier 1.
func (s *Subunit) SetDomainCount(count int) error {
	if count < 1 {
		return &ParameterError{Field: "count", Msg: "domain count must be at least 1"}
	}
	domains := make([]Domain, count)
	for i := range domains {
		if i < len(s.Domains) {
			domains[i] = s.Domains[i]
			domains[i].Index = i
		} else {
			domains[i] = Domain{Index: i, M: 1}
		}
	}
	s.Domains = domains
	return nil
}

// SetMultiplier sets the interior-angle multiplier of one domain.
func (s *Subunit) SetMultiplier(index, m int) error {
	if index < 0 || index >= len(s.Domains) {
		return &ParameterError{Field: "index", Msg: "no such domain"}
	}
	if m < 1 {
		return &ParameterError{Field: "m", Msg: "multiplier must be at least 1"}
	}
	s.Domains[index].M = m
	return nil
}

// Rotate shifts a domain's helical phase by one step in the given
// direction. Offsets are modular over the full-turn period, so the
// operation is always well-defined; it touches neither the multiplier
// nor the strand direction.
func (s *Subunit) Rotate(index int, dir Direction, period int) error {
	if index < 0 || index >= len(s.Domains) {
		return &ParameterError{Field: "index", Msg: "no such domain"}
	}
	if period < 1 {
		return &ParameterError{Field: "period", Msg: "rotation period must be at least 1"}
	}
	step := 1
	if dir == DOWN {
		step = -1
	}
	s.Domains[index].Offset = ((s.Domains[index].Offset+step)%period + period) % period
	return nil
}
