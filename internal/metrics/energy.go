// Package metrics provides per-run accumulated scalars.
package metrics

import (
	"math"

	"github.com/KhliustovDmitrii/Physical-Simulations/internal/dynamo"
	"github.com/KhliustovDmitrii/Physical-Simulations/internal/physics"
)

// Energy averages the total mechanical energy of the chain over a run.
type Energy struct {
	chain   *physics.Chain
	total   float64
	samples int
}

func NewEnergy(chain *physics.Chain) *Energy {
	return &Energy{chain: chain}
}

func (e *Energy) Name() string { return "energy" }

func (e *Energy) Observe(x dynamo.State, accel []float64, step int) {
	e.total += e.chain.Energy(x)
	e.samples++
}

func (e *Energy) Value() float64 {
	if e.samples == 0 {
		return 0
	}
	return e.total / float64(e.samples)
}

func (e *Energy) Reset() {
	e.total = 0
	e.samples = 0
}

// EnergyDrift tracks the maximum relative deviation from the energy seen on
// the first observed step.
type EnergyDrift struct {
	chain    *physics.Chain
	initial  float64
	maxDrift float64
	samples  int
}

func NewEnergyDrift(chain *physics.Chain) *EnergyDrift {
	return &EnergyDrift{chain: chain}
}

func (e *EnergyDrift) Name() string { return "energy_drift" }

func (e *EnergyDrift) Observe(x dynamo.State, accel []float64, step int) {
	energy := e.chain.Energy(x)
	if e.samples == 0 {
		e.initial = energy
	}
	e.samples++

	if e.initial != 0 {
		drift := math.Abs(energy-e.initial) / math.Abs(e.initial)
		e.maxDrift = math.Max(e.maxDrift, drift)
	}
}

func (e *EnergyDrift) Value() float64 {
	return e.maxDrift
}

func (e *EnergyDrift) Reset() {
	e.initial = 0
	e.maxDrift = 0
	e.samples = 0
}
