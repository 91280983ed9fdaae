package integrators

import (
	"math"
	"testing"

	"github.com/KhliustovDmitrii/Physical-Simulations/internal/dynamo"
)

func TestStepVelocityFirst(t *testing.T) {
	e := NewSymplecticEuler(PositionReset)

	s := dynamo.State{
		CartVel: 1.0,
		Angles:  []float64{0.5},
		Omegas:  []float64{2.0},
	}
	accel := []float64{3.0, -4.0}
	dt := 0.1

	next := e.Step(s, accel, dt)

	wantVel := 1.0 + 3.0*0.1
	if math.Abs(next.CartVel-wantVel) > 1e-12 {
		t.Errorf("cart velocity = %f, want %f", next.CartVel, wantVel)
	}

	// The angle must move with the updated angular velocity, not the old one.
	wantOmega := 2.0 - 4.0*0.1
	wantAngle := 0.5 + wantOmega*0.1
	if math.Abs(next.Omegas[0]-wantOmega) > 1e-12 {
		t.Errorf("omega = %f, want %f", next.Omegas[0], wantOmega)
	}
	if math.Abs(next.Angles[0]-wantAngle) > 1e-12 {
		t.Errorf("angle = %f, want %f", next.Angles[0], wantAngle)
	}
}

func TestPositionModes(t *testing.T) {
	s := dynamo.State{
		CartPos: 10.0,
		CartVel: 1.0,
		Angles:  []float64{0},
		Omegas:  []float64{0},
	}
	accel := []float64{0, 0}
	dt := 0.1

	reset := NewSymplecticEuler(PositionReset).Step(s, accel, dt)
	if math.Abs(reset.CartPos-0.1) > 1e-12 {
		t.Errorf("reset mode position = %f, want 0.1 (velocity*dt, no memory)", reset.CartPos)
	}

	acc := NewSymplecticEuler(PositionAccumulate).Step(s, accel, dt)
	if math.Abs(acc.CartPos-10.1) > 1e-12 {
		t.Errorf("accumulate mode position = %f, want 10.1", acc.CartPos)
	}
}

func TestStepDoesNotMutateInput(t *testing.T) {
	e := NewSymplecticEuler(PositionReset)

	s := dynamo.State{
		CartVel: 1.0,
		Angles:  []float64{0.5},
		Omegas:  []float64{2.0},
	}
	e.Step(s, []float64{3, -4}, 0.1)

	if s.CartVel != 1.0 || s.Angles[0] != 0.5 || s.Omegas[0] != 2.0 {
		t.Errorf("input state was mutated: %+v", s)
	}
}
