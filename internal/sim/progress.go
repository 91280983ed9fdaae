package sim

import (
	"fmt"
	"io"

	"github.com/KhliustovDmitrii/Physical-Simulations/internal/dynamo"
)

// Progress prints the current step index every Every steps. It is an optional
// side channel; the trajectory itself is unaffected by whether one is
// attached.
type Progress struct {
	W     io.Writer
	Every int
	Total int
}

func NewProgress(w io.Writer, every, total int) *Progress {
	if every <= 0 {
		every = 1
	}
	return &Progress{W: w, Every: every, Total: total}
}

func (p *Progress) OnStep(x dynamo.State, accel []float64, step int) {
	if (step+1)%p.Every != 0 && step+1 != p.Total {
		return
	}
	fmt.Fprintf(p.W, "step %d/%d\n", step+1, p.Total)
}
