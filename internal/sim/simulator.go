// Package sim runs the closed grasp-control loop: a PID controller commanding
// a spring-mass-damper tissue body over fixed time steps.
package sim

import (
	"github.com/san-kum/graspsim/internal/actuator"
	"github.com/san-kum/graspsim/internal/control"
	"github.com/san-kum/graspsim/internal/tissue"
)

const (
	// Dt is the fixed integration step.
	Dt = 0.01

	// DefaultDuration is the horizon for manual runs.
	DefaultDuration = 5.0

	// clampHeadroom scales the profile's nominal max force into the
	// controller clamp. The headroom lets the loop overshoot into the
	// damage region instead of hiding instability behind the clamp.
	clampHeadroom = 1.5
)

// Run simulates a grasp with the given gains and returns the completed
// trace. Runs are deterministic: identical inputs produce identical traces.
func Run(g Gains, target float64, profile tissue.Profile, breathing bool, duration float64) *Trace {
	steps := int(duration / Dt)

	pid := control.NewClampedPID(g.Kp, g.Ki, g.Kd, target, clampHeadroom*profile.Defaults.MaxForce)
	body := actuator.New(profile, breathing)

	trace := &Trace{
		Times:         make([]float64, 0, steps),
		Grips:         make([]float64, 0, steps),
		Setpoints:     make([]float64, 0, steps),
		BreakingPoint: profile.BreakingPoint,
	}

	// Warm-up call at t=0 establishes the controller's time base; its
	// output is discarded.
	t := 0.0
	pid.Update(body.Grip(), t)

	for i := 0; i < steps; i++ {
		t += Dt

		u := pid.Update(body.Grip(), t)
		grip := body.Step(u, Dt, t)

		if grip > profile.BreakingPoint && !trace.Damaged {
			trace.Damaged = true
			trace.DamageTime = t
		}
		if grip > trace.MaxGrip {
			trace.MaxGrip = grip
		}

		trace.Times = append(trace.Times, t)
		trace.Grips = append(trace.Grips, grip)
		trace.Setpoints = append(trace.Setpoints, target)
	}

	return trace
}
