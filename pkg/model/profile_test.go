package model

import (
	"math"
	"testing"
)

func TestBDNADerivedQuantities(t *testing.T) {
	p := BDNA()

	if got, want := p.ZB(), 2*3.549/21; math.Abs(got-want) > 1e-12 {
		t.Errorf("ZB = %v, want %v", got, want)
	}
	if got, want := p.ThetaB(), 360.0*2/21; math.Abs(got-want) > 1e-12 {
		t.Errorf("ThetaB = %v, want %v", got, want)
	}
	if got, want := p.ThetaC(), 360.0/21; math.Abs(got-want) > 1e-12 {
		t.Errorf("ThetaC = %v, want %v", got, want)
	}
	// The switch angle folds into the characteristic angle's
	// half-range.
	if s := p.ThetaS(); math.Abs(s) > p.ThetaC()/2 {
		t.Errorf("ThetaS = %v, outside half-range of %v", s, p.ThetaC())
	}
}
