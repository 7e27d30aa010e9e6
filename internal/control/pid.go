package control

import "math"

// PID is a discrete PID controller driving a scalar measurement toward a
// setpoint. When MaxOutput > 0 the command is clamped to [0, MaxOutput]; the
// lower bound is always 0 because the grasp actuator only pushes.
//
// The integral term accumulates without an anti-windup gate, so it can grow
// while the output is saturated. Known limitation, kept because changing it
// would shift the tuner's cost landscape.
type PID struct {
	Kp        float64
	Ki        float64
	Kd        float64
	Setpoint  float64
	MaxOutput float64

	integral float64
	prevErr  float64
	lastTime float64
	primed   bool
}

// NewPID returns an unclamped controller.
func NewPID(kp, ki, kd, setpoint float64) *PID {
	return &PID{
		Kp:       kp,
		Ki:       ki,
		Kd:       kd,
		Setpoint: setpoint,
	}
}

// NewClampedPID returns a controller whose output is clamped to
// [0, maxOutput].
func NewClampedPID(kp, ki, kd, setpoint, maxOutput float64) *PID {
	p := NewPID(kp, ki, kd, setpoint)
	p.MaxOutput = maxOutput
	return p
}

// Update advances the controller with a measurement taken at time t and
// returns the force command.
//
// The first call only establishes the time base and returns 0. A call with
// a non-positive time delta is a silent no-op: it returns 0 and leaves all
// controller state untouched.
func (p *PID) Update(measurement, t float64) float64 {
	if !p.primed {
		p.lastTime = t
		p.primed = true
		return 0
	}

	dt := t - p.lastTime
	if dt <= 0 {
		return 0
	}

	err := p.Setpoint - measurement
	p.integral += err * dt
	derivative := (err - p.prevErr) / dt

	out := p.Kp*err + p.Ki*p.integral + p.Kd*derivative

	if p.MaxOutput > 0 {
		out = math.Max(0, math.Min(p.MaxOutput, out))
	}

	p.prevErr = err
	p.lastTime = t
	return out
}
