// Package hough implements the straight-line Hough voting structure used to
// find track candidates in the conformal projection.
//
// Responsibilities: per-point bin computation, vote bookkeeping, and
// most-popular-bin queries.
// Key types: Accumulator, BinKey.
//
// Dependency rule: hough may depend on points, but never on trackfind.
package hough

import (
	"math"

	"github.com/banshee-data/track.finder/internal/tpc/points"
)

// BinKey identifies one discretised cell of the (theta, rho) parameter
// space. Theta ranges over a fixed count of uniform angular sectors spanning
// one full turn; Rho is never negative.
type BinKey struct {
	Theta int
	Rho   int
}

// Less orders keys by (Theta, Rho). Used as the deterministic tie-break when
// several bins hold the same number of votes.
func (k BinKey) Less(other BinKey) bool {
	if k.Theta != other.Theta {
		return k.Theta < other.Theta
	}
	return k.Rho < other.Rho
}

// Accumulator is a mutable Hough voting structure. Counting votes per bin is
// not enough for track finding: each bin keeps the space points that voted
// for it, so that a whole bin's contributors can be pulled out once a
// cluster claims them. State is transient and rebuilt for every clustering
// call; it is never shared or persisted.
type Accumulator struct {
	rhoMax    float64 // largest (u, v) origin distance among the inputs, in 1/m
	rhoBins   int
	thetaBins int
	bins      map[BinKey][]points.SpacePoint
}

// NewAccumulator returns an empty accumulator over a parameter space with
// the given bin counts. rhoMax must be the largest origin distance in
// (u, v) space over all points that will be added; it fixes the rho bin
// width at rhoMax/rhoBins.
func NewAccumulator(rhoMax float64, rhoBins, thetaBins int) *Accumulator {
	return &Accumulator{
		rhoMax:    rhoMax,
		rhoBins:   rhoBins,
		thetaBins: thetaBins,
		bins:      make(map[BinKey][]points.SpacePoint),
	}
}

// Bins returns the set of bins the given point votes for.
//
// The family of lines through the point's (u, v) image is
//
//	rho(theta) = u*cos(theta) + v*sin(theta)
//
// sampled at thetaBins uniform angles over one full turn, starting at
// theta = 0. Each sampled rho is floored onto its bin; negative rho is
// clamped to bin 0, since the line (theta, rho) duplicates
// (theta+pi, -rho) and only non-negative rho carries unique information.
// The bin index can jump across several bins between consecutive theta
// samples, so the point votes for every bin in the range between the
// previous and current index; a sparse single vote per sample would leave
// gaps the true line could fall through. A step where the raw rho is
// negative at both endpoints is skipped entirely. Each bin is voted at most
// once per point.
func (a *Accumulator) Bins(p points.SpacePoint) map[BinKey]struct{} {
	u, v := p.UV()

	deltaTheta := 2 * math.Pi / float64(a.thetaBins)

	bins := make(map[BinKey]struct{})
	// The first sample is theta = 0, where rho = u.
	prevRho := u
	prevBin := a.rhoBin(prevRho)
	for thetaBin := 1; thetaBin <= a.thetaBins; thetaBin++ {
		theta := float64(thetaBin) * deltaTheta
		sin, cos := math.Sincos(theta)
		rho := u*cos + v*sin
		rhoBin := a.rhoBin(rho)
		if rho >= 0 || prevRho >= 0 {
			lo, hi := prevBin, rhoBin
			if lo > hi {
				lo, hi = hi, lo
			}
			for bin := lo; bin <= hi; bin++ {
				bins[BinKey{Theta: thetaBin - 1, Rho: bin}] = struct{}{}
			}
		}
		// Keep the raw rho alongside its bin: clamping maps every negative
		// rho to bin 0, so the bin index alone cannot tell that the previous
		// sample was negative.
		prevRho = rho
		prevBin = rhoBin
	}

	return bins
}

// rhoBin floors a continuous rho value onto its distance bin, clamping
// negative values to bin 0.
func (a *Accumulator) rhoBin(rho float64) int {
	bin := int(math.Floor(rho / (a.rhoMax / float64(a.rhoBins))))
	if bin < 0 {
		return 0
	}
	return bin
}

// Add records the point's vote in every bin it touches.
func (a *Accumulator) Add(p points.SpacePoint) {
	for bin := range a.Bins(p) {
		a.bins[bin] = append(a.bins[bin], p)
	}
}

// Remove withdraws the point's votes. Each touched bin loses one occurrence
// matched by value equality; bins that no longer hold the point are left
// alone.
func (a *Accumulator) Remove(p points.SpacePoint) {
	for bin := range a.Bins(p) {
		voters := a.bins[bin]
		for i := range voters {
			if voters[i] == p {
				voters[i] = voters[len(voters)-1]
				a.bins[bin] = voters[:len(voters)-1]
				break
			}
		}
	}
}

// MostPopular returns a copy of the voter list of the bin currently holding
// the most points, or nil when the accumulator holds no votes. Ties are
// broken towards the lowest (Theta, Rho) key so the result never depends on
// map iteration order.
func (a *Accumulator) MostPopular() []points.SpacePoint {
	var (
		best    []points.SpacePoint
		bestKey BinKey
	)
	for key, voters := range a.bins {
		if len(voters) == 0 {
			continue
		}
		if len(voters) > len(best) || (len(voters) == len(best) && key.Less(bestKey)) {
			best = voters
			bestKey = key
		}
	}
	if best == nil {
		return nil
	}
	out := make([]points.SpacePoint, len(best))
	copy(out, best)
	return out
}
