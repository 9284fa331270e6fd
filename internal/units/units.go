// Package units provides shared constants and validation for length units
package units

// Unit constants
const (
	M  = "m"
	CM = "cm"
	MM = "mm"
)

// ValidUnits contains all valid unit values
var ValidUnits = []string{M, CM, MM}

// IsValid checks if the given unit is in the list of valid units
func IsValid(unit string) bool {
	for _, validUnit := range ValidUnits {
		if unit == validUnit {
			return true
		}
	}
	return false
}

// GetValidUnitsString returns a comma-separated string of valid units for error messages
func GetValidUnitsString() string {
	return "m, cm, mm"
}

// ConvertLength converts a length in the given units to metres
// The clustering core and detector geometry work in metres throughout
func ConvertLength(value float64, fromUnits string) float64 {
	switch fromUnits {
	case MM:
		return value / 1000 // mm to m
	case CM:
		return value / 100 // cm to m
	case M:
		return value // no conversion needed
	default:
		return value // default to metres if unknown unit
	}
}
