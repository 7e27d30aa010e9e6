package actuator

import (
	"math"

	"github.com/san-kum/graspsim/internal/tissue"
)

const (
	DefaultMass    = 0.5
	DefaultDamping = 2.0

	// StiffnessScale converts tissue stiffness (kPa) to a spring constant
	// (N/m) for the grasp contact.
	StiffnessScale = 10.0

	breathAmplitude = 0.2
	breathPeriod    = 4.0
)

// Model is a single-degree-of-freedom spring-mass-damper body representing
// the grasped tissue. When breathing is enabled the tissue base is displaced
// by a slow sinusoid, shifting the spring's rest point.
type Model struct {
	Mass      float64
	Damping   float64
	SpringK   float64
	Breathing bool

	position float64
	velocity float64
	grip     float64
}

// New builds an actuator body from a tissue profile.
func New(p tissue.Profile, breathing bool) *Model {
	return &Model{
		Mass:      DefaultMass,
		Damping:   DefaultDamping,
		SpringK:   p.YoungModulusKPa * StiffnessScale,
		Breathing: breathing,
	}
}

// Step advances the body by dt under an applied force at absolute simulation
// time t and returns the grip strength the force sensor reports. The sensor
// reads the spring's reaction, so the value is never negative, and the body
// cannot be pushed below its rest contact point.
func (m *Model) Step(force, dt, t float64) float64 {
	perturbation := 0.0
	if m.Breathing {
		perturbation = breathAmplitude * math.Sin(2*math.Pi*t/breathPeriod)
	}

	springForce := m.SpringK * (m.position - perturbation)
	acceleration := (force - m.Damping*m.velocity - springForce) / m.Mass

	m.velocity += acceleration * dt
	m.position += m.velocity * dt
	m.position = math.Max(0, m.position)

	m.grip = math.Max(0, springForce)
	return m.grip
}

// Grip returns the most recent sensor reading.
func (m *Model) Grip() float64 { return m.grip }

func (m *Model) Position() float64 { return m.position }
func (m *Model) Velocity() float64 { return m.velocity }
