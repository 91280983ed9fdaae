package sim

import (
	"context"
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/KhliustovDmitrii/Physical-Simulations/internal/dynamo"
	"github.com/KhliustovDmitrii/Physical-Simulations/internal/physics"
	"github.com/KhliustovDmitrii/Physical-Simulations/internal/solver"
)

type Config struct {
	Dt    float64
	Steps int
}

type Result struct {
	Trajectory dynamo.Trajectory
	StepsTaken int
	Metrics    map[string]float64
}

// Simulator drives the per-step recurrence: assemble the equations of motion
// at the current state, solve for generalized accelerations, integrate, and
// record the new state as one trajectory row. The loop is strictly
// sequential; step k+1 depends on the state produced by step k.
type Simulator struct {
	chain     *physics.Chain
	solver    *solver.LeastSquares
	stepper   dynamo.Stepper
	metrics   []dynamo.Metric
	observers []dynamo.Observer
}

func New(chain *physics.Chain, ls *solver.LeastSquares, stepper dynamo.Stepper) *Simulator {
	return &Simulator{
		chain:   chain,
		solver:  ls,
		stepper: stepper,
	}
}

func (s *Simulator) AddMetric(m dynamo.Metric)     { s.metrics = append(s.metrics, m) }
func (s *Simulator) AddObserver(o dynamo.Observer) { s.observers = append(s.observers, o) }

// Run executes cfg.Steps steps from the initial state and returns the
// recorded trajectory: cfg.Steps rows of length 2*joints+2. The initial
// state is cloned; caller-supplied slices are never written to.
func (s *Simulator) Run(ctx context.Context, initial dynamo.State, cfg Config) (*Result, error) {
	if err := s.validate(initial, cfg); err != nil {
		return nil, err
	}

	n := s.chain.Joints()
	a := mat.NewDense(n+1, n+1, nil)
	b := mat.NewVecDense(n+1, nil)

	result := &Result{
		Trajectory: make(dynamo.Trajectory, 0, cfg.Steps),
		Metrics:    make(map[string]float64),
	}
	for _, m := range s.metrics {
		m.Reset()
	}

	x := initial.Clone()
	for k := 0; k < cfg.Steps; k++ {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		s.chain.Assemble(x, a, b)
		accel, err := s.solver.Solve(a, b)
		if err != nil {
			return result, fmt.Errorf("step %d: %w", k, err)
		}

		x = s.stepper.Step(x, accel, cfg.Dt)
		result.Trajectory = append(result.Trajectory, x.Row())
		result.StepsTaken++

		for _, m := range s.metrics {
			m.Observe(x, accel, k)
		}
		for _, o := range s.observers {
			o.OnStep(x, accel, k)
		}
	}

	for _, m := range s.metrics {
		result.Metrics[m.Name()] = m.Value()
	}
	return result, nil
}

func (s *Simulator) validate(initial dynamo.State, cfg Config) error {
	if cfg.Dt <= 0 {
		return fmt.Errorf("%w: dt = %g", dynamo.ErrNonPositiveParameter, cfg.Dt)
	}
	if cfg.Steps <= 0 {
		return fmt.Errorf("%w: steps = %d", dynamo.ErrNonPositiveParameter, cfg.Steps)
	}
	return s.chain.CheckState(initial)
}
