package testutil

import (
	"testing"

	"github.com/banshee-data/track.finder/internal/tpc/points"
)

func TestSorted(t *testing.T) {
	pts := []points.SpacePoint{
		{R: 2, Phi: 0, Z: 0},
		{R: 1, Phi: 1, Z: 0},
		{R: 1, Phi: 0, Z: 1},
		{R: 1, Phi: 0, Z: 0},
	}

	got := Sorted(pts)

	want := []points.SpacePoint{
		{R: 1, Phi: 0, Z: 0},
		{R: 1, Phi: 0, Z: 1},
		{R: 1, Phi: 1, Z: 0},
		{R: 2, Phi: 0, Z: 0},
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Sorted()[%d] = %v, want %v", i, got[i], want[i])
		}
	}

	// The input must not be reordered.
	if pts[0] != (points.SpacePoint{R: 2, Phi: 0, Z: 0}) {
		t.Error("Sorted mutated its input")
	}
}

func TestAssertSameMultiset(t *testing.T) {
	a := []points.SpacePoint{{R: 1}, {R: 2}}
	b := []points.SpacePoint{{R: 2}, {R: 1}}
	AssertSameMultiset(t, a, b)
}
