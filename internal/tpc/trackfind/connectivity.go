package trackfind

import (
	"gonum.org/v1/gonum/unit"

	"github.com/banshee-data/track.finder/internal/tpc/points"
)

// largestComponent returns the biggest connected component of the candidate
// points under the relation "3-D distance <= maxDistance".
//
// A single Hough bin can alias points from more than one physical track:
// two back-to-back segments separated by the gap at the inner cathode, or
// two tracks at different z that share the same transverse-plane line.
// Both cases have to be split by spatial proximity, not by the 2-D
// projection.
//
// Components are grown by iterative flood fill: pop a seed, absorb every
// remaining point within maxDistance of any point already in the component,
// repeat until nothing is absorbed, then emit. Among equally-sized
// components the earliest-emitted one wins, which keeps the selection
// deterministic.
func largestComponent(candidates []points.SpacePoint, maxDistance unit.Length) []points.SpacePoint {
	remaining := append([]points.SpacePoint(nil), candidates...)

	var best []points.SpacePoint
	for len(remaining) > 0 {
		n := len(remaining) - 1
		component := []points.SpacePoint{remaining[n]}
		remaining = remaining[:n]

		for i := 0; i < len(component); i++ {
			for j := 0; j < len(remaining); {
				if points.Distance(component[i], remaining[j]) <= maxDistance {
					component = append(component, remaining[j])
					remaining[j] = remaining[len(remaining)-1]
					remaining = remaining[:len(remaining)-1]
				} else {
					j++
				}
			}
		}

		if len(component) > len(best) {
			best = component
		}
	}

	return best
}
