package dynamo

import "math"

// State is the configuration of a cart-mounted pendulum chain: cart position
// and velocity plus one angle/angular-velocity pair per joint. Angles are
// radians measured from the upward vertical.
type State struct {
	CartPos float64
	CartVel float64
	Angles  []float64
	Omegas  []float64
}

// NewState returns a zeroed state for a chain with n joints.
func NewState(n int) State {
	return State{
		Angles: make([]float64, n),
		Omegas: make([]float64, n),
	}
}

func (s State) Joints() int {
	return len(s.Angles)
}

// Clone returns a deep copy; the simulation loop replaces states rather than
// mutating caller-supplied slices in place.
func (s State) Clone() State {
	c := State{CartPos: s.CartPos, CartVel: s.CartVel}
	c.Angles = make([]float64, len(s.Angles))
	c.Omegas = make([]float64, len(s.Omegas))
	copy(c.Angles, s.Angles)
	copy(c.Omegas, s.Omegas)
	return c
}

func (s State) IsValid() bool {
	check := func(v float64) bool {
		return !math.IsNaN(v) && !math.IsInf(v, 0)
	}
	if !check(s.CartPos) || !check(s.CartVel) {
		return false
	}
	for j := range s.Angles {
		if !check(s.Angles[j]) || !check(s.Omegas[j]) {
			return false
		}
	}
	return true
}

// Row flattens the state into a trajectory row:
// [cart position, cart velocity, theta1, omega1, ..., thetaN, omegaN].
func (s State) Row() []float64 {
	row := make([]float64, 2+2*len(s.Angles))
	row[0] = s.CartPos
	row[1] = s.CartVel
	for j := range s.Angles {
		row[2+2*j] = s.Angles[j]
		row[3+2*j] = s.Omegas[j]
	}
	return row
}

// Trajectory is the recorded output table, one row per step.
type Trajectory [][]float64

// Column extracts a single column across all rows.
func (tr Trajectory) Column(i int) []float64 {
	col := make([]float64, len(tr))
	for k, row := range tr {
		if i < len(row) {
			col[k] = row[i]
		}
	}
	return col
}

// Stepper advances a state by one fixed time step from the generalized
// accelerations solved for that step. accel[0] is cart acceleration,
// accel[1:] the joint angular accelerations.
type Stepper interface {
	Step(s State, accel []float64, dt float64) State
}

// Observer receives each post-integration state. step counts from 0.
type Observer interface {
	OnStep(s State, accel []float64, step int)
}

// Metric accumulates a scalar over a run.
type Metric interface {
	Name() string
	Observe(s State, accel []float64, step int)
	Value() float64
	Reset()
}
