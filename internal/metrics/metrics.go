// Package metrics scores completed traces for the auto-tuner.
package metrics

import (
	"math"

	"github.com/san-kum/graspsim/internal/sim"
)

// settleBand is the tolerance around the target, as a fraction of target
// magnitude, inside which the response counts as settled.
const settleBand = 0.1

// Overshoot reports how far the peak grip exceeded the target. Never
// negative.
func Overshoot(tr *sim.Trace, target float64) float64 {
	return math.Max(0, tr.MaxGrip-target)
}

// SettlingTime scans the trace backward and returns the timestamp of the
// last sample outside the settle band. The first sample is never examined,
// and fallback is returned when the scan finds no out-of-band sample.
func SettlingTime(tr *sim.Trace, target, fallback float64) float64 {
	for i := len(tr.Grips) - 1; i >= 1; i-- {
		if math.Abs(tr.Grips[i]-target) > settleBand*target {
			return tr.Times[i]
		}
	}
	return fallback
}
