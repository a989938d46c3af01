package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ternary369/internal/render"
	"ternary369/internal/sims/ternary369"
)

func newModel(t *testing.T, cfg ternary369.Config) (Model, *ternary369.Automaton) {
	t.Helper()
	sim, err := ternary369.New(cfg)
	require.NoError(t, err)
	r, err := render.NewPlain(nil)
	require.NoError(t, err)
	return New(sim, r, time.Millisecond), sim
}

func key(s string) tea.KeyMsg {
	switch s {
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	require.True(t, ok)
	return nm, cmd
}

func TestStartSchedulesTicksUntilComplete(t *testing.T) {
	m, sim := newModel(t, ternary369.Config{Width: 5, Steps: 3})

	m, cmd := update(t, m, key(" "))
	require.True(t, m.Running())
	require.NotNil(t, cmd)

	m, cmd = update(t, m, tickMsg{epoch: sim.Epoch()})
	assert.Equal(t, 2, sim.Generation())
	require.NotNil(t, cmd, "next tick should be scheduled")

	m, cmd = update(t, m, tickMsg{epoch: sim.Epoch()})
	assert.Equal(t, 3, sim.Generation())
	assert.Nil(t, cmd)
	assert.False(t, m.Running())

	// Start on a complete run stays paused.
	m, cmd = update(t, m, key(" "))
	assert.False(t, m.Running())
	assert.Nil(t, cmd)
}

func TestPauseDropsPendingTick(t *testing.T) {
	m, sim := newModel(t, ternary369.Config{Width: 5, Steps: 10})
	m, _ = update(t, m, key(" "))
	epoch := sim.Epoch()
	m, _ = update(t, m, key(" "))
	require.False(t, m.Running())

	_, cmd := update(t, m, tickMsg{epoch: epoch})
	assert.Nil(t, cmd)
	assert.Equal(t, 1, sim.Generation())
}

func TestResetDropsStaleTick(t *testing.T) {
	m, sim := newModel(t, ternary369.Config{Width: 5, Steps: 10})
	m, _ = update(t, m, key(" "))
	stale := sim.Epoch()

	m, _ = update(t, m, key("r"))
	m, _ = update(t, m, key(" "))
	require.True(t, m.Running())

	_, cmd := update(t, m, tickMsg{epoch: stale})
	assert.Nil(t, cmd)
	assert.Equal(t, 1, sim.Generation(), "stale tick must not step the fresh run")
}

func TestSingleStepAndParameters(t *testing.T) {
	m, sim := newModel(t, ternary369.Config{Width: 5, Steps: 10})

	m, _ = update(t, m, key("n"))
	assert.Equal(t, 2, sim.Generation())

	m, _ = update(t, m, key("right"))
	assert.Equal(t, 7, sim.Width())
	assert.Equal(t, 1, sim.Generation(), "width change resets the run")

	m, _ = update(t, m, key("up"))
	assert.Equal(t, 20, sim.Steps())

	for i := 0; i < 3; i++ {
		m, _ = update(t, m, key("left"))
	}
	assert.Equal(t, 3, sim.Width())
	assert.Contains(t, m.View(), "width must be between 3 and 201")

	m, _ = update(t, m, key(" "))
	m, _ = update(t, m, key("right"))
	assert.Equal(t, 3, sim.Width(), "parameters are locked while running")
	assert.Contains(t, m.View(), "pause before changing parameters")
}

func TestRandomizeAndQuit(t *testing.T) {
	m, sim := newModel(t, ternary369.Config{Width: 9, Steps: 10})
	epoch := sim.Epoch()
	m, _ = update(t, m, key("s"))
	assert.NotEqual(t, epoch, sim.Epoch())
	assert.Equal(t, 1, sim.Generation())

	_, cmd := update(t, m, key("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestViewShowsNewestRows(t *testing.T) {
	m, sim := newModel(t, ternary369.Config{Width: 5, Steps: 10})
	for i := 0; i < 5; i++ {
		require.NoError(t, sim.Step())
	}
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 6})
	view := m.View()
	assert.Contains(t, view, "Generation: 6 / 10")
	// Generation zero (..o..) has scrolled off; the newest row is shown.
	assert.NotContains(t, view, "..o..")
	assert.Contains(t, view, "@@@@@\n.@@@.")
}
