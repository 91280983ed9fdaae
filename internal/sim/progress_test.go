package sim

import (
	"strings"
	"testing"

	"github.com/KhliustovDmitrii/Physical-Simulations/internal/dynamo"
)

func TestProgressPrintsEveryN(t *testing.T) {
	var b strings.Builder
	p := NewProgress(&b, 10, 30)

	s := dynamo.NewState(1)
	for k := 0; k < 30; k++ {
		p.OnStep(s, []float64{0, 0}, k)
	}

	want := "step 10/30\nstep 20/30\nstep 30/30\n"
	if b.String() != want {
		t.Errorf("got %q, want %q", b.String(), want)
	}
}
