// Package viz renders a live terminal view of a grasp simulation.
package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/graspsim/internal/actuator"
	"github.com/san-kum/graspsim/internal/control"
	"github.com/san-kum/graspsim/internal/sim"
	"github.com/san-kum/graspsim/internal/tissue"
)

const (
	historyCapacity = 600
	framesPerSecond = 30

	// The loop steps at sim.Dt; running a few steps per frame keeps the
	// display close to wall-clock speed.
	stepsPerFrame = 3
)

type TickMsg time.Time

// Model steps the closed loop on a timer and draws the grip history.
type Model struct {
	profile   tissue.Profile
	gains     sim.Gains
	target    float64
	breathing bool
	duration  float64

	pid  *control.PID
	body *actuator.Model

	t       float64
	grips   []float64
	maxGrip float64
	damaged bool
	damageT float64

	running bool
}

// NewModel prepares a live run; the controller warm-up happens here so the
// first drawn step already carries a control action.
func NewModel(p tissue.Profile, g sim.Gains, target float64, breathing bool, duration float64) Model {
	m := Model{
		profile:   p,
		gains:     g,
		target:    target,
		breathing: breathing,
		duration:  duration,
		grips:     make([]float64, 0, historyCapacity),
		running:   true,
	}
	m.rebuild()
	return m
}

func (m *Model) rebuild() {
	m.pid = control.NewClampedPID(m.gains.Kp, m.gains.Ki, m.gains.Kd, m.target, 1.5*m.profile.Defaults.MaxForce)
	m.body = actuator.New(m.profile, m.breathing)
	m.t = 0
	m.grips = m.grips[:0]
	m.maxGrip = 0
	m.damaged = false
	m.damageT = 0
	m.pid.Update(m.body.Grip(), 0)
}

func (m Model) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(time.Second/framesPerSecond, func(t time.Time) tea.Msg { return TickMsg(t) })
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
			m.rebuild()
		}
	case TickMsg:
		if m.running && m.t < m.duration {
			for i := 0; i < stepsPerFrame && m.t < m.duration; i++ {
				m.step()
			}
		}
		return m, tick()
	}
	return m, nil
}

func (m *Model) step() {
	m.t += sim.Dt

	u := m.pid.Update(m.body.Grip(), m.t)
	grip := m.body.Step(u, sim.Dt, m.t)

	if grip > m.profile.BreakingPoint && !m.damaged {
		m.damaged = true
		m.damageT = m.t
	}
	if grip > m.maxGrip {
		m.maxGrip = grip
	}

	m.grips = append(m.grips, grip)
	if len(m.grips) > historyCapacity {
		m.grips = m.grips[1:]
	}
}

func (m Model) View() string {
	var s strings.Builder

	s.WriteString(headerStyle.Render(strings.ToUpper(m.profile.Name)+" GRASP") + "\n")

	status := "RUNNING"
	switch {
	case m.t >= m.duration:
		status = "DONE"
	case !m.running:
		status = "PAUSED"
	}
	s.WriteString(status + "\n\n")

	if len(m.grips) > 1 {
		chart := asciigraph.Plot(m.grips,
			asciigraph.Height(10),
			asciigraph.Width(70),
			asciigraph.Caption("grip strength (N)"),
		)
		s.WriteString(graphStyle.Render(chart) + "\n\n")
	}

	grip := 0.0
	if len(m.grips) > 0 {
		grip = m.grips[len(m.grips)-1]
	}

	s.WriteString(labelStyle.Render("Time") + valueStyle.Render(fmt.Sprintf("%.2fs / %.1fs", m.t, m.duration)) + "\n")
	s.WriteString(labelStyle.Render("Grip") + valueStyle.Render(fmt.Sprintf("%.2f N", grip)) + "\n")
	s.WriteString(labelStyle.Render("Target") + valueStyle.Render(fmt.Sprintf("%.2f N", m.target)) + "\n")
	s.WriteString(labelStyle.Render("Peak") + valueStyle.Render(fmt.Sprintf("%.2f N", m.maxGrip)) + "\n")
	s.WriteString(labelStyle.Render("Limit") + valueStyle.Render(fmt.Sprintf("%.2f N", m.profile.BreakingPoint)) + "\n")

	if m.damaged {
		s.WriteString(dangerStyle.Render(fmt.Sprintf("TISSUE INJURY at t=%.2fs", m.damageT)) + "\n")
	} else {
		s.WriteString(safeStyle.Render("safe operation") + "\n")
	}

	s.WriteString(helpStyle.Render("\nSP:Pause  R:Reset  Q:Quit"))

	return panelStyle.Render(s.String())
}
