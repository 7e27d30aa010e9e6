// Package tuner searches the controller gain grid for the safest, fastest
// response on a given tissue.
package tuner

import (
	"math"
	"math/rand"
	"sync"

	"github.com/san-kum/graspsim/internal/sim"
	"github.com/san-kum/graspsim/internal/tissue"
)

const (
	// KiFixed is the integral gain used for every grid point.
	KiFixed = 0.1

	// TuneDuration is the shortened horizon per candidate run; the search
	// trades fidelity for speed against the 5s manual default.
	TuneDuration = 3.0

	ghostProbability = 0.2
)

var (
	kpCandidates = []float64{0.1, 0.5, 1.0, 2.0, 5.0, 10.0}
	kdCandidates = []float64{0.0, 0.1, 0.5, 1.0, 2.0}
)

// Ghost is the trajectory of one evaluated candidate, retained for
// comparative display. Ghosts never influence gain selection.
type Ghost struct {
	Gains sim.Gains
	Times []float64
	Grips []float64
}

// Result holds the winning gains and the sampled ghost trajectories.
type Result struct {
	Best     sim.Gains
	BestCost float64
	Ghosts   []Ghost
}

// Tuner evaluates the gain grid. The seed only drives ghost sampling; gain
// selection is fully deterministic.
type Tuner struct {
	seed int64
}

func New(seed int64) *Tuner {
	return &Tuner{seed: seed}
}

type evaluation struct {
	gains sim.Gains
	cost  float64
	trace *sim.Trace
	ghost bool
}

// Tune runs the simulator over every grid combination and returns the
// lowest-cost gains, breaking ties by grid order. Candidates run
// concurrently; the reduction walks the grid order so parallelism never
// changes the outcome. Damage is scored, not rejected: when every
// combination breaches the breaking point the least-bad one is returned and
// the caller must inspect its trace.
func (t *Tuner) Tune(profile tissue.Profile, target float64, breathing bool) *Result {
	combos := grid()
	evals := make([]evaluation, len(combos))

	var wg sync.WaitGroup
	for i, g := range combos {
		wg.Add(1)
		go func(idx int, g sim.Gains) {
			defer wg.Done()

			tr := sim.Run(g, target, profile, breathing, TuneDuration)

			// Per-combination source keeps ghost inclusion independent
			// of evaluation order.
			rng := rand.New(rand.NewSource(t.seed + int64(idx)))

			evals[idx] = evaluation{
				gains: g,
				cost:  Cost(tr, target),
				trace: tr,
				ghost: rng.Float64() < ghostProbability,
			}
		}(i, g)
	}
	wg.Wait()

	d := profile.Defaults
	result := &Result{
		Best:     sim.Gains{Kp: d.Kp, Ki: d.Ki, Kd: d.Kd},
		BestCost: math.Inf(1),
	}

	for _, ev := range evals {
		if ev.cost < result.BestCost {
			result.BestCost = ev.cost
			result.Best = ev.gains
		}
		if ev.ghost {
			result.Ghosts = append(result.Ghosts, Ghost{
				Gains: ev.gains,
				Times: ev.trace.Times,
				Grips: ev.trace.Grips,
			})
		}
	}

	return result
}

// grid enumerates the search space, kp outer and kd inner.
func grid() []sim.Gains {
	combos := make([]sim.Gains, 0, len(kpCandidates)*len(kdCandidates))
	for _, kp := range kpCandidates {
		for _, kd := range kdCandidates {
			combos = append(combos, sim.Gains{Kp: kp, Ki: KiFixed, Kd: kd})
		}
	}
	return combos
}
