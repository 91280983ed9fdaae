package viz

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/KhliustovDmitrii/Physical-Simulations/internal/dynamo"
)

type column struct {
	index   int
	caption string
}

// consumerColumns lists the trajectory columns downstream consumers read:
// cart position, cart velocity, and up to the first three joint angles.
func consumerColumns(joints int) []column {
	cols := []column{
		{0, "cart position"},
		{1, "cart velocity"},
	}
	for j := 0; j < joints && j < 3; j++ {
		cols = append(cols, column{2 + 2*j, fmt.Sprintf("joint %d angle", j+1)})
	}
	return cols
}

// PlotColumns renders terminal charts of the consumer columns.
func PlotColumns(tr dynamo.Trajectory, joints int) string {
	var b strings.Builder
	for _, col := range consumerColumns(joints) {
		graph := asciigraph.Plot(tr.Column(col.index),
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(col.caption),
		)
		b.WriteString(graph)
		b.WriteString("\n\n")
	}
	return b.String()
}
