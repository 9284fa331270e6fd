package trackfind

import (
	"fmt"

	"gonum.org/v1/gonum/unit"

	"github.com/banshee-data/track.finder/internal/units"
)

// Default clustering parameters, tuned for annihilation events in the
// cylindrical drift volume.
const (
	// DefaultMaxClusters bounds the number of track candidates per event.
	DefaultMaxClusters = 8
	// DefaultMinPointsPerCluster is the smallest accepted cluster size.
	DefaultMinPointsPerCluster = 10
	// DefaultRhoBins is the number of distance bins in Hough space.
	DefaultRhoBins = 200
	// DefaultThetaBins is the number of angle bins spanning one full turn.
	DefaultThetaBins = 180
	// DefaultMaxDistance is the largest intra-cluster neighbour distance.
	DefaultMaxDistance = unit.Length(0.04)
)

// Params configures a single clustering call.
type Params struct {
	MaxClusters         int         // Upper bound on emitted clusters (default: 8)
	MinPointsPerCluster int         // Smallest accepted cluster size, at least 1 (default: 10)
	RhoBins             int         // Distance bins in Hough space (default: 200)
	ThetaBins           int         // Angle bins over one full turn (default: 180)
	MaxDistance         unit.Length // Largest intra-cluster neighbour distance (default: 4 cm)
}

// DefaultParams returns parameters suitable for rTPC annihilation events.
func DefaultParams() Params {
	return Params{
		MaxClusters:         DefaultMaxClusters,
		MinPointsPerCluster: DefaultMinPointsPerCluster,
		RhoBins:             DefaultRhoBins,
		ThetaBins:           DefaultThetaBins,
		MaxDistance:         DefaultMaxDistance,
	}
}

// Validate checks if the parameters are valid.
// Returns an error if any parameter is out of acceptable range.
func (p Params) Validate() error {
	if p.MaxClusters < 0 {
		return fmt.Errorf("MaxClusters must be non-negative, got %d", p.MaxClusters)
	}
	if p.MinPointsPerCluster < 1 {
		return fmt.Errorf("MinPointsPerCluster must be at least 1, got %d", p.MinPointsPerCluster)
	}
	if p.RhoBins < 1 {
		return fmt.Errorf("RhoBins must be positive, got %d", p.RhoBins)
	}
	if p.ThetaBins < 1 {
		return fmt.Errorf("ThetaBins must be positive, got %d", p.ThetaBins)
	}
	if p.MaxDistance <= 0 {
		return fmt.Errorf("MaxDistance must be positive, got %v", p.MaxDistance)
	}
	return nil
}

// WithMaxClusters sets the upper bound on emitted clusters.
func (p Params) WithMaxClusters(n int) Params {
	p.MaxClusters = n
	return p
}

// WithMinPointsPerCluster sets the smallest accepted cluster size.
func (p Params) WithMinPointsPerCluster(n int) Params {
	p.MinPointsPerCluster = n
	return p
}

// WithBins sets the Hough space resolution.
func (p Params) WithBins(rhoBins, thetaBins int) Params {
	p.RhoBins = rhoBins
	p.ThetaBins = thetaBins
	return p
}

// WithMaxDistance sets the largest intra-cluster neighbour distance.
func (p Params) WithMaxDistance(d unit.Length) Params {
	p.MaxDistance = d
	return p
}

// WithMaxDistanceIn sets the largest intra-cluster neighbour distance from
// a value tagged with a length-unit string, for callers holding externally
// configured values. The unit must be one of internal/units.ValidUnits.
func (p Params) WithMaxDistanceIn(value float64, lengthUnits string) (Params, error) {
	if !units.IsValid(lengthUnits) {
		return p, fmt.Errorf("unknown length units %q, valid units are: %s",
			lengthUnits, units.GetValidUnitsString())
	}
	p.MaxDistance = unit.Length(units.ConvertLength(value, lengthUnits))
	return p, nil
}
