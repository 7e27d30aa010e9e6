package tissue

import "sort"

// FallbackName is returned for any tissue the registry does not know.
const FallbackName = "Unknown"

// Gains holds the default controller parameters recommended for a tissue.
type Gains struct {
	Kp       float64
	Ki       float64
	Kd       float64
	MaxForce float64
}

// Profile describes the material parameters of a tissue class.
type Profile struct {
	Name            string
	YoungModulusKPa float64
	BreakingPoint   float64
	Friction        float64
	Defaults        Gains
}

var profiles = map[string]Profile{
	"Liver": {
		Name:            "Liver",
		YoungModulusKPa: 6.0,
		BreakingPoint:   5.0,
		Friction:        0.2,
		Defaults:        Gains{Kp: 0.8, Ki: 0.1, Kd: 2.5, MaxForce: 5.0},
	},
	"Intestine": {
		Name:            "Intestine",
		YoungModulusKPa: 3.0,
		BreakingPoint:   2.0,
		Friction:        0.1,
		Defaults:        Gains{Kp: 0.3, Ki: 0.05, Kd: 0.5, MaxForce: 2.0},
	},
	"Bone": {
		Name:            "Bone",
		YoungModulusKPa: 1000.0,
		BreakingPoint:   20.0,
		Friction:        0.5,
		Defaults:        Gains{Kp: 2.0, Ki: 0.0, Kd: 0.1, MaxForce: 20.0},
	},
	FallbackName: {
		Name:            FallbackName,
		YoungModulusKPa: 50.0,
		BreakingPoint:   100.0,
		Friction:        0.3,
		Defaults:        Gains{Kp: 10.0, Ki: 0.1, Kd: 1.0, MaxForce: 100.0},
	},
}

// Lookup returns the profile for name, or the Unknown profile for any
// unrecognized name. The registry is fixed at startup and never mutated.
func Lookup(name string) Profile {
	if p, ok := profiles[name]; ok {
		return p
	}
	return profiles[FallbackName]
}

// Names lists the registered tissue names in sorted order.
func Names() []string {
	names := make([]string, 0, len(profiles))
	for name := range profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
