// Package units provides shared constants and validation for length units
package units

// Unit constants
const (
	AU       = "au" // Bohr radii, the native unit of the evaluator
	Angstrom = "angstrom"
	NM       = "nm"
	PM       = "pm"
)

// bohrRadiusMeters is the CODATA value of a0 in meters.
const bohrRadiusMeters = 5.29177210544e-11

// ValidUnits contains all valid unit values
var ValidUnits = []string{AU, Angstrom, NM, PM}

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
	return "au, angstrom, nm, pm"
}

// ConvertLength converts a length from Bohr radii to the target units.
// The evaluator works in atomic units throughout; conversion only happens
// at the display edge.
func ConvertLength(lengthAU float64, targetUnits string) float64 {
	switch targetUnits {
	case Angstrom:
		return lengthAU * bohrRadiusMeters * 1e10
	case NM:
		return lengthAU * bohrRadiusMeters * 1e9
	case PM:
		return lengthAU * bohrRadiusMeters * 1e12
	case AU:
		return lengthAU
	default:
		return lengthAU
	}
}

// AxisLabel returns the radial axis label for a unit.
func AxisLabel(unit string) string {
	switch unit {
	case Angstrom:
		return "r (Å)"
	case NM:
		return "r (nm)"
	case PM:
		return "r (pm)"
	default:
		return "r (a0)"
	}
}
