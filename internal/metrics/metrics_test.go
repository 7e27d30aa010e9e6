package metrics

import (
	"testing"

	"github.com/san-kum/graspsim/internal/sim"
)

func TestOvershoot(t *testing.T) {
	tests := []struct {
		name    string
		maxGrip float64
		target  float64
		want    float64
	}{
		{"above target", 12.0, 10.0, 2.0},
		{"below target", 8.0, 10.0, 0.0},
		{"at target", 10.0, 10.0, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := &sim.Trace{MaxGrip: tt.maxGrip}
			if got := Overshoot(tr, tt.target); got != tt.want {
				t.Fatalf("Overshoot = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSettlingTimeFindsLastExcursion(t *testing.T) {
	tr := &sim.Trace{
		Times: []float64{0.0, 0.1, 0.2, 0.3, 0.4, 0.5},
		Grips: []float64{0.0, 5.0, 9.5, 10.2, 9.8, 10.0},
	}

	// Band is 10% of target: index 1 is the last sample outside it.
	if got := SettlingTime(tr, 10.0, 99.0); got != 0.1 {
		t.Fatalf("SettlingTime = %v, want 0.1", got)
	}
}

func TestSettlingTimeFallbackWhenSettled(t *testing.T) {
	// Index 0 is out of band but never examined; the scan stops at
	// index 1, so the fallback applies.
	tr := &sim.Trace{
		Times: []float64{0.0, 0.1, 0.2},
		Grips: []float64{0.0, 10.0, 10.0},
	}

	if got := SettlingTime(tr, 10.0, 3.0); got != 3.0 {
		t.Fatalf("SettlingTime = %v, want fallback 3", got)
	}
}

func TestSettlingTimeNeverSettles(t *testing.T) {
	tr := &sim.Trace{
		Times: []float64{0.0, 0.1, 0.2},
		Grips: []float64{0.0, 20.0, 20.0},
	}

	if got := SettlingTime(tr, 10.0, 3.0); got != 0.2 {
		t.Fatalf("SettlingTime = %v, want 0.2", got)
	}
}
