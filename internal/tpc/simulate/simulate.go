// Package simulate generates synthetic detector events for tests and
// benchmarks.
//
// Tracks are modelled as transverse circles through the detector axis (the
// signature of annihilation products) with a linear axial drift, sampled
// between the cathode and the outer wall and smeared with Gaussian noise.
//
// Dependency rule: simulate may depend on points and units, but never on
// hough or trackfind; it feeds their tests and must not pull them in.
package simulate

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
	"gonum.org/v1/gonum/unit"

	"github.com/banshee-data/track.finder/internal/tpc/points"
	"github.com/banshee-data/track.finder/internal/units"
)

// Nominal geometry of the cylindrical drift volume, in millimetres. Hits
// occur between the inner cathode and the outer wall.
const (
	CathodeRadiusMM = 109.0
	WallRadiusMM    = 190.0
	HalfLengthMM    = 1152.0
)

// CathodeRadius returns the inner cathode radius in metres.
func CathodeRadius() unit.Length {
	return unit.Length(units.ConvertLength(CathodeRadiusMM, units.MM))
}

// WallRadius returns the outer wall radius in metres.
func WallRadius() unit.Length {
	return unit.Length(units.ConvertLength(WallRadiusMM, units.MM))
}

// HalfLength returns half the axial extent of the drift volume in metres.
func HalfLength() unit.Length {
	return unit.Length(units.ConvertLength(HalfLengthMM, units.MM))
}

// Track describes one charged-particle trajectory: a transverse circle
// through the origin with the given radius, rotated so its diameter points
// along Bearing, drifting axially from Z0 with DipSlope metres of z per
// metre of radial travel.
type Track struct {
	Radius   unit.Length
	Bearing  unit.Angle
	Z0       unit.Length
	DipSlope float64
}

// Hits samples n space points along the track between the cathode and the
// outer wall. Each coordinate is smeared with Gaussian noise of standard
// deviation sigma (the angular smear scales with 1/r so it stays sigma in
// arc length). Sampling stops early if the track curls back inside the
// outer wall.
func (t Track) Hits(n int, sigma unit.Length, src rand.Source) []points.SpacePoint {
	if n < 1 {
		return nil
	}

	noise := distuv.Normal{Mu: 0, Sigma: float64(sigma), Src: src}

	cathode := float64(CathodeRadius())
	wall := float64(WallRadius())
	steps := math.Max(1, float64(n-1))

	hits := make([]points.SpacePoint, 0, n)
	for i := 0; i < n; i++ {
		r := cathode + float64(i)/steps*(wall-cathode)
		// A circle of radius rc through the origin has the polar form
		// r = 2*rc*cos(phi - bearing).
		arg := r / (2 * float64(t.Radius))
		if arg > 1 {
			break
		}
		phi := float64(t.Bearing) + math.Acos(arg)
		z := float64(t.Z0) + t.DipSlope*(r-cathode)

		if sigma > 0 {
			r += noise.Rand()
			phi += noise.Rand() / r
			z += noise.Rand()
		}

		hits = append(hits, points.SpacePoint{
			R:   unit.Length(r),
			Phi: unit.Angle(phi),
			Z:   unit.Length(z),
		})
	}

	return hits
}

// Event generates the union of hits from several tracks, shuffled into a
// single unordered point cloud the way an event arrives from the detector.
// The same seed always produces the same event.
func Event(tracks []Track, hitsPerTrack int, sigma unit.Length, seed uint64) []points.SpacePoint {
	src := rand.NewPCG(seed, seed)
	rng := rand.New(src)

	var sp []points.SpacePoint
	for _, t := range tracks {
		sp = append(sp, t.Hits(hitsPerTrack, sigma, src)...)
	}
	rng.Shuffle(len(sp), func(i, j int) { sp[i], sp[j] = sp[j], sp[i] })

	return sp
}
