package actuator

import (
	"math"
	"testing"

	"github.com/san-kum/graspsim/internal/tissue"
)

const eps = 1e-12

func TestNewScalesStiffness(t *testing.T) {
	m := New(tissue.Lookup("Liver"), false)

	if m.SpringK != 60.0 {
		t.Fatalf("SpringK = %v, want 60", m.SpringK)
	}
	if m.Mass != DefaultMass || m.Damping != DefaultDamping {
		t.Fatalf("mass/damping = %v/%v, want %v/%v", m.Mass, m.Damping, DefaultMass, DefaultDamping)
	}
}

func TestStepIntegration(t *testing.T) {
	m := New(tissue.Lookup("Liver"), false)

	// From rest the spring is unloaded, so the reported grip lags the
	// motion by one step.
	grip := m.Step(10, 0.1, 0.1)
	if grip != 0 {
		t.Fatalf("first grip = %v, want 0", grip)
	}
	if math.Abs(m.Velocity()-2.0) > eps {
		t.Fatalf("velocity = %v, want 2", m.Velocity())
	}
	if math.Abs(m.Position()-0.2) > eps {
		t.Fatalf("position = %v, want 0.2", m.Position())
	}

	// springForce = 60*0.2 = 12, acc = (0 - 2*2 - 12)/0.5 = -32
	grip = m.Step(0, 0.1, 0.2)
	if math.Abs(grip-12.0) > eps {
		t.Fatalf("second grip = %v, want 12", grip)
	}
	if math.Abs(m.Velocity()+1.2) > 1e-9 {
		t.Fatalf("velocity = %v, want -1.2", m.Velocity())
	}
	if m.Grip() != grip {
		t.Fatalf("Grip() = %v, want %v", m.Grip(), grip)
	}
}

func TestStepClampsPositionAtRestPoint(t *testing.T) {
	m := New(tissue.Lookup("Liver"), false)

	grip := m.Step(-100, 0.1, 0.1)
	if grip != 0 {
		t.Fatalf("grip = %v, want 0", grip)
	}
	if m.Position() != 0 {
		t.Fatalf("position = %v, want 0", m.Position())
	}
}

func TestStepGripNeverNegativeUnderBreathing(t *testing.T) {
	m := New(tissue.Lookup("Liver"), true)

	// At t=1s the breathing sinusoid peaks and pulls the base away from
	// the jaw, so the raw spring force is negative.
	grip := m.Step(0, 0.01, 1.0)
	if grip != 0 {
		t.Fatalf("grip = %v, want 0", grip)
	}
	if m.Velocity() <= 0 {
		t.Fatalf("velocity = %v, want > 0 (body chases the receding base)", m.Velocity())
	}
}

func TestBreathingDisabledBodyStaysAtRest(t *testing.T) {
	m := New(tissue.Lookup("Liver"), false)

	for i := 1; i <= 100; i++ {
		if grip := m.Step(0, 0.01, float64(i)*0.01); grip != 0 {
			t.Fatalf("unforced body produced grip %v at step %d", grip, i)
		}
	}
	if m.Position() != 0 || m.Velocity() != 0 {
		t.Fatalf("unforced body moved: pos=%v vel=%v", m.Position(), m.Velocity())
	}
}
