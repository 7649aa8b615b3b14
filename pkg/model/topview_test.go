package model

import (
	"math"
	"testing"
)

func TestTopViewClosesForReferenceTube(t *testing.T) {
	// 14 domains of 9 characteristic angles each: 14 turns of
	// 180 - 9*(360/21) degrees sum to exactly 360, a closed ring.
	structure := tracedStructure(t, 14, 9)

	if !TopViewClosed(structure, BDNA()) {
		t.Error("the reference 14x9 tube should close geometrically")
	}

	coords := TopView(structure, BDNA())
	if len(coords) != 15 {
		t.Fatalf("coordinate count = %d, want 15", len(coords))
	}
	last := coords[len(coords)-1]
	if math.Hypot(last[0], last[1]) > 1e-9 {
		t.Errorf("closed walk ends %.3g from origin", math.Hypot(last[0], last[1]))
	}
}

func TestTopViewOpenForPerturbedTube(t *testing.T) {
	structure := tracedStructure(t, 14, 9)
	structure.Domains[3].M = 10

	if TopViewClosed(structure, BDNA()) {
		t.Error("perturbing one interior angle must open the ring")
	}
}

func TestTopViewStepIsDiameter(t *testing.T) {
	structure := tracedStructure(t, 4, 2)
	profile := BDNA()
	coords := TopView(structure, profile)

	for i := 1; i < len(coords); i++ {
		dx := coords[i][0] - coords[i-1][0]
		dy := coords[i][1] - coords[i-1][1]
		if math.Abs(math.Hypot(dx, dy)-profile.D) > 1e-9 {
			t.Errorf("segment %d length = %v, want %v", i, math.Hypot(dx, dy), profile.D)
		}
	}
}
