package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"gonum.org/v1/gonum/mat"

	"github.com/KhliustovDmitrii/Physical-Simulations/internal/dynamo"
	"github.com/KhliustovDmitrii/Physical-Simulations/internal/physics"
	"github.com/KhliustovDmitrii/Physical-Simulations/internal/solver"
)

const (
	liveWidth       = 64
	liveHeight      = 22
	historyCapacity = 300
)

var (
	canvasStyle = lipgloss.NewStyle().Padding(1, 2)
	statsStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(1, 2).Width(40)
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(10)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(2)
)

type TickMsg time.Time

// Model runs the simulation step-by-step and renders the chain live.
type Model struct {
	chain   *physics.Chain
	solver  *solver.LeastSquares
	stepper dynamo.Stepper

	state   dynamo.State
	initial dynamo.State
	a       *mat.Dense
	b       *mat.VecDense
	dt      float64
	step    int

	canvas        *Canvas
	energyHistory []float64
	running       bool
	failed        bool
}

func NewModel(chain *physics.Chain, ls *solver.LeastSquares, stepper dynamo.Stepper, initial dynamo.State, dt float64) Model {
	n := chain.Joints()
	return Model{
		chain:         chain,
		solver:        ls,
		stepper:       stepper,
		state:         initial.Clone(),
		initial:       initial.Clone(),
		a:             mat.NewDense(n+1, n+1, nil),
		b:             mat.NewVecDense(n+1, nil),
		dt:            dt,
		canvas:        NewCanvas(liveWidth, liveHeight),
		energyHistory: make([]float64, 0, historyCapacity),
		running:       true,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Tick(time.Second/60, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.state = m.initial.Clone()
			m.step = 0
			m.failed = false
			m.energyHistory = m.energyHistory[:0]
		}
	case TickMsg:
		if m.running && !m.failed {
			// Several substeps per frame so small dt still animates.
			for i := 0; i < 16; i++ {
				m.advance()
			}
			m.energyHistory = append(m.energyHistory, m.chain.Energy(m.state))
			if len(m.energyHistory) > historyCapacity {
				m.energyHistory = m.energyHistory[1:]
			}
		}
		return m, tea.Tick(time.Second/60, func(t time.Time) tea.Msg { return TickMsg(t) })
	}
	return m, nil
}

func (m *Model) advance() {
	m.chain.Assemble(m.state, m.a, m.b)
	accel, err := m.solver.Solve(m.a, m.b)
	if err != nil {
		m.failed = true
		return
	}
	m.state = m.stepper.Step(m.state, accel, m.dt)
	m.step++
	if !m.state.IsValid() {
		m.failed = true
	}
}

func (m Model) View() string {
	m.canvas.Clear()
	m.canvas.DrawChain(m.chain, m.state)
	canvasView := canvasStyle.Render(m.canvas.String())

	var s strings.Builder
	s.WriteString(headerStyle.Render(fmt.Sprintf("%d-JOINT CHAIN", m.chain.Joints())) + "\n")

	status := "RUNNING"
	if m.failed {
		status = "DIVERGED"
	} else if !m.running {
		status = "PAUSED"
	}
	s.WriteString(status + "\n\n")

	if len(m.energyHistory) > 1 {
		chart := asciigraph.Plot(m.energyHistory, asciigraph.Height(4), asciigraph.Width(28), asciigraph.Caption("Energy"))
		s.WriteString(graphStyle.Render(chart) + "\n\n")
	}

	s.WriteString(labelStyle.Render("Time") + valueStyle.Render(fmt.Sprintf("%.2fs", float64(m.step)*m.dt)) + "\n")
	s.WriteString(labelStyle.Render("Cart") + valueStyle.Render(fmt.Sprintf("%.3f m", m.state.CartPos)) + "\n")
	for j := 0; j < m.chain.Joints() && j < 3; j++ {
		s.WriteString(labelStyle.Render(fmt.Sprintf("Theta%d", j+1)) + valueStyle.Render(fmt.Sprintf("%.3f rad", m.state.Angles[j])) + "\n")
	}

	s.WriteString(helpStyle.Render("\nSP:Pause R:Reset Q:Quit"))

	return lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsStyle.Render(s.String()))
}

// RunLive starts the interactive live view.
func RunLive(chain *physics.Chain, ls *solver.LeastSquares, stepper dynamo.Stepper, initial dynamo.State, dt float64) error {
	p := tea.NewProgram(NewModel(chain, ls, stepper, initial, dt))
	_, err := p.Run()
	return err
}
