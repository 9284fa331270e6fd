package trackfind

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/unit"

	"github.com/banshee-data/track.finder/internal/tpc/hough"
	"github.com/banshee-data/track.finder/internal/tpc/points"
)

// Cluster is an unordered set of space points hypothesised to originate
// from one physical particle track.
type Cluster []points.SpacePoint

// Result is the outcome of partitioning one event's space points. Every
// input point appears in exactly one cluster or in the remainder; nothing
// is duplicated or dropped.
type Result struct {
	Clusters  []Cluster
	Remainder []points.SpacePoint
}

// Find partitions an event's space points into track candidates.
//
// All points are validated up front: a zero or negative radius fails the
// whole call before any accumulator is built, since the conformal
// projection is undefined there and silently dropping hits would break the
// partition guarantee. An empty input yields an empty result.
//
// Every cluster in the result has at least params.MinPointsPerCluster
// points and at most params.MaxClusters clusters are emitted; whatever was
// not claimed ends up in the remainder, matched against the input by exact
// value equality.
func Find(sp []points.SpacePoint, params Params) (Result, error) {
	if err := params.Validate(); err != nil {
		return Result{}, fmt.Errorf("invalid clustering params: %w", err)
	}
	for _, p := range sp {
		if err := p.Validate(); err != nil {
			return Result{}, err
		}
	}
	if len(sp) == 0 {
		return Result{}, nil
	}

	// rho can never exceed the largest origin distance in (u, v) space, so
	// that distance fixes the bin width.
	var rhoMax float64
	for _, p := range sp {
		u, v := p.UV()
		rhoMax = math.Max(rhoMax, math.Hypot(u, v))
	}

	acc := hough.NewAccumulator(rhoMax, params.RhoBins, params.ThetaBins)
	for _, p := range sp {
		acc.Add(p)
	}

	var clusters []Cluster
	for len(clusters) < params.MaxClusters {
		cluster := bestCluster(acc, params.MaxDistance)
		if len(cluster) < params.MinPointsPerCluster {
			break
		}
		clusters = append(clusters, cluster)
	}

	remainder := append([]points.SpacePoint(nil), sp...)
	for _, cluster := range clusters {
		for _, p := range cluster {
			// Clustered points are guaranteed to come from the input, so a
			// match always exists.
			for i := range remainder {
				if remainder[i] == p {
					remainder[i] = remainder[len(remainder)-1]
					remainder = remainder[:len(remainder)-1]
					break
				}
			}
		}
	}

	return Result{Clusters: clusters, Remainder: remainder}, nil
}

// bestCluster extracts one cluster from the accumulator by local search.
//
// The most popular bin may alias several physical tracks, and trimming its
// voters down to one connected component can change which bin is most
// populated next, so the loop re-queries after every tentative removal
// instead of trusting the first peak. Each accepted step strictly grows the
// candidate and the candidate is bounded by the total point count, so the
// search terminates.
//
// On return the winning cluster's points have been removed from the
// accumulator; no other points are affected.
func bestCluster(acc *hough.Accumulator, maxDistance unit.Length) Cluster {
	var prevBest []points.SpacePoint

	for {
		best := largestComponent(acc.MostPopular(), maxDistance)
		if len(best) <= len(prevBest) {
			break
		}

		for _, p := range best {
			acc.Remove(p)
		}
		for _, p := range prevBest {
			acc.Add(p)
		}

		prevBest = best
	}

	return Cluster(prevBest)
}
