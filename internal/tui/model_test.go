package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/freshcart/gridkit/pkg/fluidgrid"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	require.True(t, ok)
	return model, cmd
}

func newTestModel(t *testing.T, items int) Model {
	t.Helper()
	m := NewModel(Options{Grid: fluidgrid.DefaultConfig(), Items: items, Title: "Specials"})
	t.Cleanup(m.Dispose)
	return m
}

func TestUpdate_WindowSizeMeasures(t *testing.T) {
	m := newTestModel(t, 3)

	_, ok := m.Solution()
	require.False(t, ok)

	// 65 columns of 8px is the 520px container from the reference scenario.
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 65, Height: 30})
	solution, ok := m.Solution()
	require.True(t, ok)
	assert.Equal(t, 3, solution.Columns)
	assert.InDelta(t, 165.333333, solution.ItemWidth, 1e-5)
}

func TestUpdate_ZeroWidthRevertsToUnmeasured(t *testing.T) {
	m := newTestModel(t, 3)

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 65, Height: 30})
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 0, Height: 30})

	_, ok := m.Solution()
	assert.False(t, ok)
}

func TestUpdate_Keys(t *testing.T) {
	m := newTestModel(t, 1)

	m, _ = update(t, m, runes("+"))
	m, _ = update(t, m, runes("+"))
	assert.Equal(t, 3, m.Items())

	m, _ = update(t, m, runes("-"))
	assert.Equal(t, 2, m.Items())

	m, _ = update(t, m, runes("-"))
	m, _ = update(t, m, runes("-"))
	assert.Equal(t, 0, m.Items(), "item count never goes negative")

	m, _ = update(t, m, runes("]"))
	assert.Equal(t, float64(fluidgrid.DefaultGap+GapStep), m.Gap())

	for i := 0; i < 10; i++ {
		m, _ = update(t, m, runes("["))
	}
	assert.Equal(t, 0.0, m.Gap(), "gap never goes negative")
}

func TestUpdate_GapChangeResolves(t *testing.T) {
	m := newTestModel(t, 3)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 65, Height: 30})

	m, _ = update(t, m, runes("]"))
	solution, ok := m.Solution()
	require.True(t, ok)
	assert.Equal(t, fluidgrid.Solve(520, fluidgrid.Config{MinItemWidth: 140, MaxItemWidth: 200, Gap: 16}), solution)
}

func TestUpdate_Quit(t *testing.T) {
	for _, msg := range []tea.KeyMsg{runes("q"), {Type: tea.KeyCtrlC}} {
		m := newTestModel(t, 1)
		m, cmd := update(t, m, msg)
		require.NotNil(t, cmd)
		_, isQuit := cmd().(tea.QuitMsg)
		assert.True(t, isQuit, msg.String())
		assert.True(t, m.Quitting())
		assert.Empty(t, m.View())
	}
}

func TestView_UnmeasuredShowsStatusOnly(t *testing.T) {
	m := newTestModel(t, 5)

	view := m.View()
	assert.Contains(t, view, "measuring")
	assert.NotContains(t, view, "item 1")
	assert.NotContains(t, view, "Specials")
}

func TestView_RendersRows(t *testing.T) {
	m := newTestModel(t, 4)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 65, Height: 30})

	view := m.View()
	assert.Contains(t, view, "Specials")
	for _, label := range []string{"item 1", "item 2", "item 3", "item 4"} {
		assert.Contains(t, view, label)
	}
	assert.Contains(t, view, "3 columns")

	// Three tiles on the first row, one on the second: every rendered
	// line stays within the terminal width.
	for _, line := range strings.Split(view, "\n") {
		assert.LessOrEqual(t, lipgloss.Width(line), 65, line)
	}
}

func TestTileCells(t *testing.T) {
	tests := []struct {
		width, cell float64
		want        int
	}{
		{165.33, 8, 20},
		{200, 10, 20},
		{10, 8, 3},
		{160, 0, 20},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, TileCells(tt.width, tt.cell))
	}
}

func TestTileWithWidth(t *testing.T) {
	slots := fluidgrid.Arrange([]tile{{label: "a"}, {label: "b"}}, fluidgrid.Solution{Columns: 2, ItemWidth: 90}, 4)
	require.Len(t, slots, 2)
	assert.Equal(t, 90.0, slots[1].Item.width)
	assert.Equal(t, 94.0, slots[1].X)
}
