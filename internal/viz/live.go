package viz

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/axesim/internal/dynamo"
	"github.com/san-kum/axesim/internal/physics"
)

const (
	width           = 80
	height          = 24
	historyCapacity = 600
)

// Snapshot stores state at a specific time for replay.
type Snapshot struct {
	State  dynamo.State
	Time   float64
	Energy float64
}

var (
	canvasStyle      = lipgloss.NewStyle().Padding(1, 2)
	statsStyle       = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(1, 2).Width(45)
	headerStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12)
	valueStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	activeParamStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	graphStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	helpStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(2)
)

type TickMsg time.Time

// Model contains simulation state, visualization buffers, and UI context.
type Model struct {
	axe           *physics.Axe
	integrator    dynamo.Integrator
	state         dynamo.State
	t, dt         float64
	canvas        *Canvas
	trail         []struct{ x, y int }
	running       bool
	params        map[string]float64
	initialParams map[string]float64
	paramKeys     []string
	selected      int
	initialState  dynamo.State
	heightHistory []float64
	history       []Snapshot
	playHead      int
	showHelp      bool
}

// NewModel initializes the simulation and visualization state.
func NewModel(axe *physics.Axe, integ dynamo.Integrator, initState []float64, dt float64) Model {
	params := make(map[string]float64)
	for k, v := range axe.GetParams() {
		params[k] = v
	}
	keys := make([]string, 0, len(params))
	initialParams := make(map[string]float64)
	for k, v := range params {
		keys = append(keys, k)
		if v == 0 {
			v = 1e-6
		}
		initialParams[k] = v
	}
	sort.Strings(keys)

	return Model{
		axe:           axe,
		integrator:    integ,
		state:         dynamo.State(initState).Clone(),
		t:             0,
		dt:            dt,
		canvas:        NewCanvas(width, height),
		trail:         make([]struct{ x, y int }, 0, historyCapacity),
		running:       true,
		params:        params,
		initialParams: initialParams,
		paramKeys:     keys,
		selected:      0,
		initialState:  dynamo.State(initState).Clone(),
		heightHistory: make([]float64, 0, historyCapacity),
		history:       make([]Snapshot, 0, historyCapacity),
		playHead:      -1,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Tick(time.Second/30, func(t time.Time) tea.Msg { return TickMsg(t) })
}

// Update handles input events and steps the simulation.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.reset()
		case "[":
			m.scrub(-1)
		case "]":
			m.scrub(1)
		case "tab":
			m.cycleParam()
		case "up", "k":
			m.adjustParam(1.05)
		case "down", "j":
			m.adjustParam(0.95)
		case "?":
			m.showHelp = !m.showHelp
		}
	case TickMsg:
		if m.running {
			if m.playHead == -1 {
				m.step()
			} else {
				m.playHead++
				if m.playHead >= len(m.history) {
					m.playHead = -1
				}
			}
		}
		m.draw()
		return m, tea.Tick(time.Second/30, func(t time.Time) tea.Msg { return TickMsg(t) })
	}
	return m, nil
}

func (m *Model) cycleParam() {
	if len(m.paramKeys) == 0 {
		return
	}
	m.selected = (m.selected + 1) % len(m.paramKeys)
}

func (m *Model) adjustParam(factor float64) {
	if len(m.paramKeys) == 0 {
		return
	}
	key := m.paramKeys[m.selected]
	newVal := m.params[key] * factor
	m.params[key] = newVal
	m.axe.SetParam(key, newVal)
}

// step advances the physics simulation.
func (m *Model) step() {
	if adaptive, ok := m.integrator.(dynamo.AdaptiveIntegrator); ok {
		newState, suggestedDt, _ := adaptive.StepAdaptive(m.axe, m.state, m.t, m.dt, 1e-6)
		m.state = newState
		m.t += m.dt
		if suggestedDt > 0.0001 && suggestedDt < 0.1 {
			m.dt = suggestedDt
		}
	} else {
		m.state = m.integrator.Step(m.axe, m.state, m.t, m.dt)
		m.t += m.dt
	}

	m.heightHistory = append(m.heightHistory, m.state[1])
	if len(m.heightHistory) > historyCapacity {
		m.heightHistory = m.heightHistory[1:]
	}

	snap := Snapshot{State: m.state.Clone(), Time: m.t, Energy: m.axe.Energy(m.state)}
	m.history = append(m.history, snap)
	if len(m.history) > historyCapacity {
		m.history = m.history[1:]
	}
}

// scrub changes the playback position in history.
func (m *Model) scrub(dir int) {
	if m.playHead == -1 {
		if len(m.history) > 0 {
			m.playHead = len(m.history) - 1
			m.running = false
		} else {
			return
		}
	}
	m.playHead += dir
	if m.playHead < 0 {
		m.playHead = 0
	}
	if m.playHead >= len(m.history) {
		m.playHead = -1
	}
}

// reset restores the initial state and parameters.
func (m *Model) reset() {
	m.t = 0
	m.trail = m.trail[:0]
	m.state = m.initialState.Clone()
	m.heightHistory = m.heightHistory[:0]
	m.history = m.history[:0]
	m.playHead = -1
	for k, v := range m.initialParams {
		m.params[k] = v
		m.axe.SetParam(k, v)
	}
}

// draw renders the axe pose onto the canvas: ground, COG trail, handle
// segment, and blade edge.
func (m *Model) draw() {
	state := m.state
	if m.playHead != -1 && m.playHead < len(m.history) {
		state = m.history[m.playHead].State
	}
	m.canvas.Clear()

	cw, ch := width*2, height*4

	// World window: the reference throw covers roughly 9 m by 3 m.
	const scale = 14.0
	ox, groundY := 8, ch-8
	toScreen := func(wx, wy float64) (int, int) {
		return ox + int(wx*scale), groundY - int(wy*scale)
	}

	m.canvas.DrawLine(0, groundY+2, cw, groundY+2)

	pose := m.axe.Pose(state)

	cx, cy := toScreen(pose.COG.X, pose.COG.Y)
	if m.playHead == -1 {
		m.trail = append(m.trail, struct{ x, y int }{cx, cy})
		if len(m.trail) > historyCapacity {
			m.trail = m.trail[1:]
		}
	}
	for _, pt := range m.trail {
		m.canvas.Set(pt.x, pt.y)
	}

	bx, by := toScreen(pose.Butt.X, pose.Butt.Y)
	hx, hy := toScreen(pose.Head.X, pose.Head.Y)
	tx, ty := toScreen(pose.BladeTop.X, pose.BladeTop.Y)
	dx, dy := toScreen(pose.BladeBottom.X, pose.BladeBottom.Y)

	m.canvas.DrawLine(bx, by, hx, hy)
	m.canvas.DrawLine(tx, ty, dx, dy)
	m.canvas.DrawMarker(cx, cy)
}

// View renders the TUI interface.
func (m Model) View() string {
	state, t, status := m.state, m.t, "RUNNING"
	if m.playHead >= 0 && m.playHead < len(m.history) {
		snap := m.history[m.playHead]
		state, t = snap.State, snap.Time
	}
	canvasView := canvasStyle.Render(m.canvas.String())

	var s strings.Builder
	s.WriteString(headerStyle.Render("AXE THROW") + "\n")
	if !m.running {
		status = "PAUSED"
	}
	if m.playHead != -1 && len(m.history) > 0 {
		status = fmt.Sprintf("REPLAY (%.1fs)", m.history[m.playHead].Time-m.history[len(m.history)-1].Time)
	}
	s.WriteString(fmt.Sprintf("%s\n\n", status))

	if len(m.heightHistory) > 1 {
		chart := asciigraph.Plot(m.heightHistory, asciigraph.Height(4), asciigraph.Width(30), asciigraph.Caption("Height"))
		s.WriteString(graphStyle.Render(chart) + "\n\n")
	}

	st := physics.AxeStateFrom(state)
	s.WriteString(labelStyle.Render("Time") + valueStyle.Render(fmt.Sprintf("%.2fs", t)) + "\n")
	s.WriteString(labelStyle.Render("Position") + valueStyle.Render(fmt.Sprintf("(%.2f, %.2f) m", st.X, st.Y)) + "\n")
	s.WriteString(labelStyle.Render("Velocity") + valueStyle.Render(fmt.Sprintf("(%.2f, %.2f) m/s", st.VX, st.VY)) + "\n")
	s.WriteString(labelStyle.Render("Theta") + valueStyle.Render(fmt.Sprintf("%.2f rad", math.Mod(st.Theta, 2*math.Pi))) + "\n")
	s.WriteString(labelStyle.Render("Spin") + valueStyle.Render(fmt.Sprintf("%.2f rad/s", st.Omega)) + "\n")
	s.WriteString(labelStyle.Render("Energy") + valueStyle.Render(fmt.Sprintf("%.2f J", m.axe.Energy(state))) + "\n")

	s.WriteString("\nPARAMETERS\n")
	for i, k := range m.paramKeys {
		val, initial := m.params[k], m.initialParams[k]
		barWidth, ratio := 10, val/(2.0*initial)
		if ratio > 1 {
			ratio = 1
		} else if ratio < 0 {
			ratio = 0
		}
		filled := int(ratio * float64(barWidth))
		bar := "[" + strings.Repeat("=", filled) + strings.Repeat("-", barWidth-filled) + "]"
		line := fmt.Sprintf("%-10s %s %.2f", k, bar, val)
		if i == m.selected {
			s.WriteString(activeParamStyle.Render("> "+line) + "\n")
		} else {
			s.WriteString("  " + labelStyle.Render(line) + "\n")
		}
	}

	s.WriteString(helpStyle.Render("\n─────────────────────\nSP:Pause R:Reset Q:Quit\n[ ]:Time-Travel ↑↓:Tune ?:Help"))
	statsView := statsStyle.Render(s.String())
	mainView := lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsView)

	if m.showHelp {
		return `
╔══════════════════════════════════════╗
║          KEYBOARD SHORTCUTS          ║
╠══════════════════════════════════════╣
║  Space    - Pause/Resume simulation  ║
║  R        - Reset simulation         ║
║  Q        - Quit                     ║
║  Tab      - Cycle parameters         ║
║  Up/K     - Increase parameter (+5%) ║
║  Down/J   - Decrease parameter (-5%) ║
║  [        - Rewind (time travel)     ║
║  ]        - Forward (time travel)    ║
║  ?        - Toggle this help         ║
╚══════════════════════════════════════╝
` + "\n\n" + mainView
	}
	return mainView
}
