// Package integrators advances the chain state by one fixed time step.
package integrators

import "github.com/KhliustovDmitrii/Physical-Simulations/internal/dynamo"

// PositionMode selects how the cart position is produced each step.
type PositionMode int

const (
	// PositionReset recomputes the cart position as velocity*dt from only
	// the just-updated velocity, matching the historical behavior of this
	// simulation: the position is not a running integral and carries no
	// memory of previous steps. Kept as the default for output parity.
	PositionReset PositionMode = iota

	// PositionAccumulate integrates the cart position properly:
	// pos += velocity*dt.
	PositionAccumulate
)

// SymplecticEuler is semi-implicit Euler: each velocity is updated from the
// solved acceleration first, and the corresponding coordinate then moves with
// the updated velocity. This ordering keeps long-run energy bounded where
// fully explicit Euler drifts.
type SymplecticEuler struct {
	Mode PositionMode
}

func NewSymplecticEuler(mode PositionMode) *SymplecticEuler {
	return &SymplecticEuler{Mode: mode}
}

func (e *SymplecticEuler) Step(s dynamo.State, accel []float64, dt float64) dynamo.State {
	next := s.Clone()

	next.CartVel = s.CartVel + accel[0]*dt
	if e.Mode == PositionAccumulate {
		next.CartPos = s.CartPos + next.CartVel*dt
	} else {
		next.CartPos = next.CartVel * dt
	}

	for j := range s.Angles {
		next.Omegas[j] = s.Omegas[j] + accel[j+1]*dt
		next.Angles[j] = s.Angles[j] + next.Omegas[j]*dt
	}
	return next
}
