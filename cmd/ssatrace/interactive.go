package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/ssa-build/script"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	stepStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))

	paneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)
)

type stepperModel struct {
	err       error
	filename  string
	trace     *script.Trace
	replayErr error
	state     viewport.Model
	selected  int
	width     int
	height    int
	ready     bool
}

func newStepperModel(filename string) *stepperModel {
	return &stepperModel{filename: filename}
}

type replayedMsg struct {
	trace *script.Trace
	err   error
}

func (m *stepperModel) Init() tea.Cmd {
	return m.replayScript
}

func (m *stepperModel) replayScript() tea.Msg {
	data, err := os.ReadFile(m.filename)
	if err != nil {
		return replayedMsg{err: err}
	}
	prog, err := script.Parse(data)
	if err != nil {
		return replayedMsg{err: err}
	}
	trace, err := script.Replay(prog)
	if trace == nil {
		return replayedMsg{err: err}
	}
	// A replay error still carries the events up to the failing step.
	return replayedMsg{trace: trace, err: err}
}

func (m *stepperModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit

		case "up", "k":
			if m.selected > 0 {
				m.selected--
				m.refreshState()
			}

		case "down", "j":
			if m.trace != nil && m.selected < len(m.trace.Events)-1 {
				m.selected++
				m.refreshState()
			}

		case "g", "home":
			m.selected = 0
			m.refreshState()

		case "G", "end":
			if m.trace != nil && len(m.trace.Events) > 0 {
				m.selected = len(m.trace.Events) - 1
				m.refreshState()
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.state = viewport.New(msg.Width/2-4, msg.Height-6)
		m.ready = true
		m.refreshState()

	case replayedMsg:
		if msg.trace == nil {
			m.err = msg.err
			return m, nil
		}
		m.trace = msg.trace
		m.replayErr = msg.err
		if len(m.trace.Events) > 0 {
			m.selected = len(m.trace.Events) - 1
		}
		m.refreshState()
	}

	var cmd tea.Cmd
	m.state, cmd = m.state.Update(msg)
	return m, cmd
}

func (m *stepperModel) refreshState() {
	if !m.ready || m.trace == nil || len(m.trace.Events) == 0 {
		return
	}
	m.state.SetContent(m.trace.Events[m.selected].State)
}

func (m *stepperModel) View() string {
	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("Error: %v\n\nPress q to quit.", m.err))
	}
	if m.trace == nil || !m.ready {
		return "Replaying script..."
	}

	var left strings.Builder
	for i, ev := range m.trace.Events {
		line := fmt.Sprintf("%3d  %s", ev.Step, ev.Desc)
		if ev.Result != "" {
			line += " -> " + resultStyle.Render(ev.Result)
		}
		if i == m.selected {
			left.WriteString(selectedStyle.Render("> " + line))
		} else {
			left.WriteString("  " + stepStyle.Render(line))
		}
		left.WriteString("\n")
	}
	if m.replayErr != nil {
		left.WriteString("\n")
		left.WriteString(errorStyle.Render(m.replayErr.Error()))
		left.WriteString("\n")
	}

	header := titleStyle.Render("SSA Trace") + " " + m.filename + "\n\n"
	body := lipgloss.JoinHorizontal(lipgloss.Top,
		paneStyle.Width(m.width/2-2).Render(left.String()),
		paneStyle.Width(m.width/2-2).Render(m.state.View()),
	)
	help := "\n" + helpStyle.Render("↑/↓ step • g/G first/last • q quit")

	return header + body + help
}

func runInteractive(filename string) error {
	p := tea.NewProgram(newStepperModel(filename), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
