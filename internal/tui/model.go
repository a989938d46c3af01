// Package tui is an interactive terminal driver for the automaton. One
// generation is appended per tick while running.
package tui

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"ternary369/internal/render"
	"ternary369/internal/sims/ternary369"
)

// tickMsg requests one step. It is ignored unless epoch still matches the
// automaton, so ticks scheduled before a reset never land on the new run.
type tickMsg struct {
	epoch uint64
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#22D3EE"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#9CA3AF"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#F87171"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
)

const helpText = "space start/pause · n step · r reset · s randomize · ←/→ width · ↑/↓ steps · q quit"

// Model is the bubbletea model driving an Automaton.
type Model struct {
	sim      *ternary369.Automaton
	renderer *render.TextRenderer
	interval time.Duration

	running bool
	err     string
	height  int
}

// New returns a paused model. interval is the delay between generations.
func New(sim *ternary369.Automaton, renderer *render.TextRenderer, interval time.Duration) Model {
	if interval <= 0 {
		interval = time.Second / 30
	}
	return Model{sim: sim, renderer: renderer, interval: interval}
}

// Running reports whether steps are being scheduled.
func (m Model) Running() bool { return m.running }

// Init implements tea.Model.
func (m Model) Init() tea.Cmd { return nil }

func (m Model) tick() tea.Cmd {
	epoch := m.sim.Epoch()
	return tea.Tick(m.interval, func(time.Time) tea.Msg { return tickMsg{epoch: epoch} })
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg.String())
	case tea.WindowSizeMsg:
		m.height = msg.Height
	case tickMsg:
		if !m.running || msg.epoch != m.sim.Epoch() {
			return m, nil
		}
		return m.step()
	}
	return m, nil
}

func (m Model) handleKey(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "q", "esc", "ctrl+c":
		return m, tea.Quit
	case " ", "enter":
		if m.sim.Done() {
			m.running = false
			return m, nil
		}
		m.running = !m.running
		if m.running {
			m.err = ""
			return m, m.tick()
		}
	case "n":
		if !m.running {
			return m.step()
		}
	case "r":
		m.running = false
		m.err = ""
		m.sim.Center()
	case "s":
		m.running = false
		m.err = ""
		m.sim.Randomize(0)
		slog.Debug("randomized", "seed", m.sim.Seed())
	case "left", "h":
		m.adjust("w", m.sim.Width()-2)
	case "right", "l":
		m.adjust("w", m.sim.Width()+2)
	case "down", "j":
		m.adjust("steps", m.sim.Steps()-10)
	case "up", "k":
		m.adjust("steps", m.sim.Steps()+10)
	}
	return m, nil
}

// adjust applies a parameter change. Parameters are locked while running,
// and a rejected value keeps the current run.
func (m *Model) adjust(key string, value int) {
	if m.running {
		m.err = "pause before changing parameters"
		return
	}
	if err := m.sim.SetIntParameter(key, value); err != nil {
		m.err = err.Error()
		return
	}
	m.err = ""
}

func (m Model) step() (tea.Model, tea.Cmd) {
	err := m.sim.Step()
	switch {
	case errors.Is(err, ternary369.ErrComplete):
		m.running = false
		return m, nil
	case err != nil:
		m.running = false
		m.err = err.Error()
		slog.Error("step failed", "generation", m.sim.Generation(), "err", err)
		return m, nil
	}
	if m.sim.Done() {
		m.running = false
		slog.Debug("run complete", "generation", m.sim.Generation())
		return m, nil
	}
	if m.running {
		return m, m.tick()
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Ternary 369 Cellular Automaton"))
	b.WriteByte('\n')

	gen := m.sim.Generation()
	from := 0
	// Keep the newest rows visible: title, status, help and error lines
	// take four lines.
	if m.height > 0 {
		if visible := m.height - 4; visible > 0 && gen > visible {
			from = gen - visible
		}
	}
	b.WriteString(m.renderer.Rows(m.sim.Cells(), m.sim.Width(), from, gen))
	b.WriteByte('\n')

	state := "paused"
	if m.running {
		state = "running"
	} else if m.sim.Done() {
		state = "complete"
	}
	b.WriteString(statusStyle.Render(fmt.Sprintf("Generation: %d / %d · width %d · %s", gen, m.sim.Steps(), m.sim.Width(), state)))
	b.WriteByte('\n')
	if m.err != "" {
		b.WriteString(errorStyle.Render(m.err))
		b.WriteByte('\n')
	}
	b.WriteString(helpStyle.Render(helpText))
	return b.String()
}

// Run starts the interactive program and blocks until the user quits.
func Run(m Model, opts ...tea.ProgramOption) error {
	if _, err := tea.NewProgram(m, opts...).Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
