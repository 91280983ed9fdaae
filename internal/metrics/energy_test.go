package metrics

import (
	"math"
	"testing"

	"github.com/KhliustovDmitrii/Physical-Simulations/internal/dynamo"
	"github.com/KhliustovDmitrii/Physical-Simulations/internal/physics"
)

func newChain(t *testing.T) *physics.Chain {
	t.Helper()
	chain, err := physics.NewChain(1, []float64{1, 2}, []float64{1}, 9.81)
	if err != nil {
		t.Fatal(err)
	}
	return chain
}

func TestEnergyAverages(t *testing.T) {
	chain := newChain(t)
	e := NewEnergy(chain)

	s := dynamo.NewState(1)
	e.Observe(s, nil, 0)
	e.Observe(s, nil, 1)

	want := chain.Energy(s)
	if math.Abs(e.Value()-want) > 1e-12 {
		t.Errorf("average energy = %f, want %f", e.Value(), want)
	}
}

func TestEnergyDriftConstantState(t *testing.T) {
	chain := newChain(t)
	d := NewEnergyDrift(chain)

	s := dynamo.NewState(1)
	s.Angles[0] = 0.3
	for k := 0; k < 5; k++ {
		d.Observe(s, nil, k)
	}

	if d.Value() != 0 {
		t.Errorf("drift for constant state = %f, want 0", d.Value())
	}
}

func TestMetricsReset(t *testing.T) {
	chain := newChain(t)
	e := NewEnergy(chain)
	d := NewEnergyDrift(chain)

	s := dynamo.NewState(1)
	s.Omegas[0] = 1
	e.Observe(s, nil, 0)
	d.Observe(s, nil, 0)

	e.Reset()
	d.Reset()

	if e.Value() != 0 {
		t.Errorf("energy after reset = %f, want 0", e.Value())
	}
	if d.Value() != 0 {
		t.Errorf("drift after reset = %f, want 0", d.Value())
	}
}
