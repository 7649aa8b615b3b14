package model

import "math"

// Profile holds the geometrical parameters of a nucleic acid. The
// derived quantities below are what the solver and tracer actually
// consume; everything else is carried so snapshots round-trip.
type Profile struct {
	Name string

	// D is the diameter of a domain in nanometers.
	D float64
	// H is the height of one helical turn in nanometers.
	H float64
	// G is the nucleoside-mate angle in degrees.
	G float64
	// T turns per B bases.
	T int
	B int
	// ZC is the characteristic height.
	ZC float64
	// ZMate is the nucleoside-mate vertical distance.
	ZMate float64
}

// BDNA returns the MFD B-DNA profile, the default nucleic acid.
func BDNA() Profile {
	return Profile{
		Name:  "MFD B-DNA",
		D:     2.2,
		H:     3.549,
		G:     134.8,
		T:     2,
		B:     21,
		ZC:    0.17,
		ZMate: 0.094,
	}
}

// ZB is the base height: T*H/B.
func (p Profile) ZB() float64 {
	return float64(p.T) * p.H / float64(p.B)
}

// ThetaB is the base angle: 360*T/B degrees.
func (p Profile) ThetaB() float64 {
	return 360 * float64(p.T) / float64(p.B)
}

// ThetaC is the characteristic angle: 360/B degrees.
func (p Profile) ThetaC() float64 {
	return 360 / float64(p.B)
}

// ThetaS is the strand switch angle, folded into the characteristic
// angle's half-range.
func (p Profile) ThetaS() float64 {
	m := math.Mod(p.G, p.ThetaC())
	if m <= p.ThetaC()/2 {
		return m
	}
	return m - p.ThetaC()
}
