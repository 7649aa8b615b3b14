package model

// Base is a single nucleotide base, one of A, T, C, G.
type Base byte

const (
	BaseA Base = 'A'
	BaseT Base = 'T'
	BaseC Base = 'C'
	BaseG Base = 'G'
)

// Complement returns the Watson-Crick complement of the base.
func (b Base) Complement() Base {
	switch b {
	case BaseA:
		return BaseT
	case BaseT:
		return BaseA
	case BaseC:
		return BaseG
	case BaseG:
		return BaseC
	}
	return b
}

// ParseBases reads a base sequence, case-insensitively, canonicalizing
// to uppercase. Characters outside {A,T,C,G} are rejected.
func ParseBases(s string) ([]Base, error) {
	bases := make([]Base, 0, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		switch Base(c) {
		case BaseA, BaseT, BaseC, BaseG:
			bases = append(bases, Base(c))
		default:
			return nil, &ParameterError{Field: "bases", Msg: "sequence contains a character outside {A,T,C,G}"}
		}
	}
	return bases, nil
}

// BasesString renders a base sequence as a string.
func BasesString(bases []Base) string {
	buf := make([]byte, len(bases))
	for i, b := range bases {
		buf[i] = byte(b)
	}
	return string(buf)
}

// AssignSequence maps a nucleotide sequence onto the strand, one base
// per traced position. On a length mismatch the strand's prior sequence
// (if any) is left untouched.
func AssignSequence(strand *Strand, bases []Base) error {
	if strand == nil {
		return &ParameterError{Field: "strand", Msg: "strand is nil"}
	}
	if len(bases) != len(strand.Positions) {
		return &LengthError{Want: len(strand.Positions), Got: len(bases)}
	}
	seq := make([]Base, len(bases))
	copy(seq, bases)
	strand.Sequence = seq
	return nil
}

// DeriveComplement computes the sequence of the strand's paired
// antiparallel partner: the per-position Watson-Crick complement,
// reversed in order to respect the opposite backbone direction.
func DeriveComplement(strand *Strand) ([]Base, error) {
	if strand == nil || strand.Sequence == nil {
		return nil, &ParameterError{Field: "strand", Msg: "strand has no sequence assigned"}
	}
	out := make([]Base, len(strand.Sequence))
	for i, b := range strand.Sequence {
		out[len(strand.Sequence)-1-i] = b.Complement()
	}
	return out, nil
}

// ValidatePairing checks that two paired strands are complementary at
// every paired position. Position i of one strand pairs with position
// len-1-i of the other, matching the antiparallel orientation.
func ValidatePairing(a, b *Strand) error {
	if a == nil || b == nil || a.Sequence == nil || b.Sequence == nil {
		return &ParameterError{Field: "strand", Msg: "both strands need an assigned sequence"}
	}
	if len(a.Sequence) != len(b.Sequence) {
		return &LengthError{Want: len(a.Sequence), Got: len(b.Sequence)}
	}
	n := len(a.Sequence)
	for i := 0; i < n; i++ {
		mate := b.Sequence[n-1-i]
		if mate != a.Sequence[i].Complement() {
			return &PairingError{Position: i, BaseA: a.Sequence[i], BaseB: mate}
		}
	}
	return nil
}
