// Package testutil provides shared test utilities and fixtures.
//
// This package centralises common test helpers to reduce code duplication
// across test files and improve test maintainability.
package testutil

import (
	"sort"
	"testing"

	"github.com/banshee-data/track.finder/internal/tpc/points"
)

// AssertNoError fails the test if err is not nil.
func AssertNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// AssertError fails the test if err is nil.
func AssertError(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		t.Fatal("expected error, got nil")
	}
}

// Sorted returns a copy of pts ordered by (R, Phi, Z) so unordered point
// collections can be compared element-wise.
func Sorted(pts []points.SpacePoint) []points.SpacePoint {
	out := append([]points.SpacePoint(nil), pts...)
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.R != b.R {
			return a.R < b.R
		}
		if a.Phi != b.Phi {
			return a.Phi < b.Phi
		}
		return a.Z < b.Z
	})
	return out
}

// AssertSameMultiset fails the test unless got and want hold exactly the
// same points, ignoring order.
func AssertSameMultiset(t *testing.T, got, want []points.SpacePoint) {
	t.Helper()
	g, w := Sorted(got), Sorted(want)
	if len(g) != len(w) {
		t.Fatalf("point count = %d, want %d", len(g), len(w))
	}
	for i := range g {
		if g[i] != w[i] {
			t.Fatalf("point %d = %v, want %v", i, g[i], w[i])
		}
	}
}
