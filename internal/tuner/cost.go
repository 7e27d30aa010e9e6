package tuner

import (
	"github.com/san-kum/graspsim/internal/metrics"
	"github.com/san-kum/graspsim/internal/sim"
)

// damagePenalty dominates every achievable overshoot and settling term, so
// a damaging candidate only wins when the whole grid damages.
const damagePenalty = 1e6

// Cost scores one candidate run: overshoot plus settling time, with the
// hard safety penalty added when the trace breached the breaking point.
func Cost(tr *sim.Trace, target float64) float64 {
	cost := metrics.Overshoot(tr, target) + metrics.SettlingTime(tr, target, TuneDuration)
	if tr.Damaged {
		cost += damagePenalty
	}
	return cost
}
