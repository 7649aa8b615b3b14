package model

import "math"

// TopView computes the (u, v) center coordinates of every domain around
// the tube's circumference, walking domain to domain by the profile
// diameter and turning by each exterior angle. One extra coordinate is
// appended for a hypothetical count+1th domain so the trailing direction
// of the last domain is available to consumers.
func TopView(structure *NanotubeStructure, profile Profile) [][2]float64 {
	domains := structure.Domains
	coords := make([][2]float64, len(domains)+1)
	thetaC := profile.ThetaC()

	angle := 0.0
	for i := 1; i < len(coords); i++ {
		coords[i] = [2]float64{
			coords[i-1][0] + profile.D*math.Cos(angle*math.Pi/180),
			coords[i-1][1] + profile.D*math.Sin(angle*math.Pi/180),
		}
		interior := float64(domains[i-1].M) * thetaC
		angle += 180 - interior
	}
	return coords
}

// closedThreshold is the permitted gap, in nanometers, between the
// first and last top view coordinate of a closed tube. It absorbs
// accumulated floating-point error over the walk.
const closedThreshold = 0.01

// TopViewClosed reports whether the top view path returns to its
// origin, the geometric reading of the closure condition.
func TopViewClosed(structure *NanotubeStructure, profile Profile) bool {
	coords := TopView(structure, profile)
	last := coords[len(coords)-1]
	return math.Hypot(last[0], last[1]) < closedThreshold
}
