package model

import "math"

// closureTolerance is the relative tolerance used when comparing M/R
// against the target ratio. It absorbs floating-point rounding in the
// ratio, not genuine mismatches.
const closureTolerance = 1e-3

// RecomputeStructure assembles the full structure from the template
// subunit: C*R domains in circumferential order, the subunit angle sum
// M, the ratio M/R and the closure flag.
//
// targetRatio is a geometric constant supplied by the caller (it derives
// from helix pitch and diameter, outside this core). No autocorrection
// is performed: an unclosed structure is returned as-is with the flag
// cleared, for the caller to inspect, adjust and recompute.
func RecomputeStructure(template *Subunit, symmetry int, targetRatio float64) (*NanotubeStructure, error) {
	if template == nil || template.Count() == 0 {
		return nil, &ParameterError{Field: "template", Msg: "subunit template is empty"}
	}
	if symmetry < 1 {
		return nil, &ParameterError{Field: "symmetry", Msg: "symmetry factor must be at least 1"}
	}
	for _, d := range template.Domains {
		if d.M < 1 {
			return nil, &ParameterError{Field: "m", Msg: "multiplier must be at least 1"}
		}
	}

	count := template.Count()
	domains := make([]Domain, 0, count*symmetry)
	m := 0
	for _, d := range template.Domains {
		m += d.M
	}
	for cycle := 0; cycle < symmetry; cycle++ {
		for _, d := range template.Domains {
			d.Index = len(domains)
			domains = append(domains, d)
		}
	}

	ratio := float64(m) / float64(symmetry)
	return &NanotubeStructure{
		Domains:     domains,
		Symmetry:    symmetry,
		M:           m,
		Ratio:       ratio,
		TargetRatio: targetRatio,
		Closed:      ratiosMatch(ratio, targetRatio),
	}, nil
}

func ratiosMatch(ratio, target float64) bool {
	if target == 0 {
		return ratio == 0
	}
	return math.Abs(ratio-target) <= closureTolerance*math.Abs(target)
}
