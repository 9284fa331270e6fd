// Package points defines the calibrated space-point geometry shared by the
// track-finding layers.
//
// Responsibilities: cylindrical hit positions, cylindrical-to-Cartesian
// conversion, pairwise distance, and the conformal (u, v) projection.
// Key types: SpacePoint.
//
// Dependency rule: points may not depend on any other internal/tpc package.
package points

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
	"gonum.org/v1/gonum/unit"
)

// ErrNonPositiveRadius reports a space point whose radial coordinate is zero
// or negative. The conformal projection divides by r, so such a point has no
// defined image in (u, v) space.
var ErrNonPositiveRadius = errors.New("space point radius must be positive")

// SpacePoint is a single calibrated detector hit in cylindrical coordinates:
// radial distance from the detector axis, azimuthal angle, and axial
// position. SpacePoints are plain values with no identity; equality is exact
// field-wise comparison with ==.
type SpacePoint struct {
	R   unit.Length
	Phi unit.Angle
	Z   unit.Length
}

// Validate reports whether the point has a usable radial coordinate.
func (p SpacePoint) Validate() error {
	if p.R <= 0 {
		return fmt.Errorf("%w: r = %v m", ErrNonPositiveRadius, float64(p.R))
	}
	return nil
}

// Cartesian converts the point to Cartesian coordinates in metres.
func (p SpacePoint) Cartesian() r3.Vec {
	sin, cos := math.Sincos(float64(p.Phi))
	return r3.Vec{
		X: float64(p.R) * cos,
		Y: float64(p.R) * sin,
		Z: float64(p.Z),
	}
}

// UV projects the point onto the conformal (u, v) plane:
//
//	u = cos(phi) / r
//	v = sin(phi) / r
//
// Any transverse-plane circle or line through the detector axis maps to a
// straight line in (u, v). Annihilation products originate close to the
// axis, so their curved tracks become near-straight lines there and can be
// picked up by a straight-line Hough transform. Coordinates are in
// reciprocal metres. The projection is undefined for r <= 0; callers must
// Validate first.
func (p SpacePoint) UV() (u, v float64) {
	sin, cos := math.Sincos(float64(p.Phi))
	return cos / float64(p.R), sin / float64(p.R)
}

// Distance returns the 3-D Euclidean distance between two space points.
func Distance(a, b SpacePoint) unit.Length {
	return unit.Length(r3.Norm(r3.Sub(a.Cartesian(), b.Cartesian())))
}
