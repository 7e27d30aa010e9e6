package sim

// Gains are the controller parameters for a single run.
type Gains struct {
	Kp float64
	Ki float64
	Kd float64
}

// Trace is the recorded result of one closed-loop run: one sample per time
// step plus the safety verdict. It is not modified after Run returns.
type Trace struct {
	Times     []float64
	Grips     []float64
	Setpoints []float64

	// Damaged is set on the first sample whose grip strength exceeds the
	// profile's breaking point and never cleared; DamageTime is the time of
	// that sample and only meaningful when Damaged is true.
	Damaged    bool
	DamageTime float64

	BreakingPoint float64
	MaxGrip       float64
}

// Len returns the number of recorded samples.
func (t *Trace) Len() int { return len(t.Times) }

// End returns the timestamp of the last sample, or 0 for an empty trace.
func (t *Trace) End() float64 {
	if len(t.Times) == 0 {
		return 0
	}
	return t.Times[len(t.Times)-1]
}
