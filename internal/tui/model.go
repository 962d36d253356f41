// Package tui renders a fluid grid in the terminal. The terminal width,
// scaled by a cell width, is the container width fed to the grid controller.
package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/freshcart/gridkit/pkg/fluidgrid"
)

// GapStep is how much one gap key press changes the gap, in logical pixels.
const GapStep = 4

// DefaultCellWidth is the number of logical pixels per terminal column.
const DefaultCellWidth = 8

// Options configures a Model.
type Options struct {
	Grid      fluidgrid.Config
	Items     int
	Title     string
	CellWidth float64
}

// Model is the bubbletea model of the watch command.
type Model struct {
	controller *fluidgrid.Controller
	keys       keyMap
	help       help.Model

	title     string
	items     int
	cellWidth float64
	cols      int
	rows      int
	quitting  bool
}

// NewModel builds a model in the unmeasured state. The controller is owned
// by the model and released with Dispose.
func NewModel(opts Options) Model {
	cellWidth := opts.CellWidth
	if cellWidth <= 0 {
		cellWidth = DefaultCellWidth
	}
	items := opts.Items
	if items < 0 {
		items = 0
	}
	return Model{
		controller: fluidgrid.NewController(opts.Grid),
		keys:       defaultKeyMap(),
		help:       help.New(),
		title:      opts.Title,
		items:      items,
		cellWidth:  cellWidth,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.cols = msg.Width
		m.rows = msg.Height
		m.help.Width = msg.Width
		m.controller.Observe(float64(msg.Width) * m.cellWidth)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.MoreItems):
		m.items++
	case key.Matches(msg, m.keys.LessItems):
		if m.items > 0 {
			m.items--
		}
	case key.Matches(msg, m.keys.WiderGap):
		m.setGap(m.controller.Config().Gap + GapStep)
	case key.Matches(msg, m.keys.NarrowGap):
		m.setGap(max(0, m.controller.Config().Gap-GapStep))
	}
	return m, nil
}

func (m Model) setGap(gap float64) {
	cfg := m.controller.Config()
	cfg.Gap = gap
	m.controller.SetConfig(cfg)
}

// Solution returns the current grid solution and whether a width has been
// measured.
func (m Model) Solution() (fluidgrid.Solution, bool) {
	return m.controller.Solution()
}

// Items returns the number of tiles shown.
func (m Model) Items() int {
	return m.items
}

// Gap returns the current gap in logical pixels.
func (m Model) Gap() float64 {
	return m.controller.Config().Gap
}

// Quitting reports whether a quit key was pressed.
func (m Model) Quitting() bool {
	return m.quitting
}

// Dispose releases the controller.
func (m Model) Dispose() {
	m.controller.Dispose()
}

// Run starts the watch program and blocks until it exits.
func Run(opts Options, programOpts ...tea.ProgramOption) error {
	m := NewModel(opts)
	defer m.Dispose()

	if len(programOpts) == 0 {
		programOpts = []tea.ProgramOption{tea.WithAltScreen()}
	}
	if _, err := tea.NewProgram(m, programOpts...).Run(); err != nil {
		return fmt.Errorf("watch: %w", err)
	}
	return nil
}
