package sim

import (
	"context"

	"github.com/KhliustovDmitrii/Physical-Simulations/internal/dynamo"
	"github.com/KhliustovDmitrii/Physical-Simulations/internal/integrators"
	"github.com/KhliustovDmitrii/Physical-Simulations/internal/physics"
	"github.com/KhliustovDmitrii/Physical-Simulations/internal/solver"
)

// Simulate is the one-call entry point: it builds a chain from the raw
// parameter arrays, runs steps fixed time steps from the given initial
// conditions, and returns the trajectory table. masses must have joints+1
// entries (cart first), angles, omegas and lengths exactly joints entries.
// It fails before producing any rows if joints <= 0 or the array lengths
// disagree with joints.
func Simulate(masses, angles, omegas []float64, cartVel float64, lengths []float64, joints int, dt float64, steps int) (dynamo.Trajectory, error) {
	chain, err := physics.NewChain(joints, masses, lengths, physics.StandardGravity)
	if err != nil {
		return nil, err
	}

	initial := dynamo.State{
		CartVel: cartVel,
		Angles:  append([]float64(nil), angles...),
		Omegas:  append([]float64(nil), omegas...),
	}

	s := New(chain, solver.NewLeastSquares(), integrators.NewSymplecticEuler(integrators.PositionReset))
	result, err := s.Run(context.Background(), initial, Config{Dt: dt, Steps: steps})
	if err != nil {
		return nil, err
	}
	return result.Trajectory, nil
}
