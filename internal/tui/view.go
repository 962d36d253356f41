package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/freshcart/gridkit/pkg/fluidgrid"
	"github.com/freshcart/gridkit/pkg/theme"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(theme.Primary.Hex()))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Muted.Hex()))
)

// tile is a terminal grid item. Its width is injected by fluidgrid.Arrange.
type tile struct {
	label string
	width float64
}

func (t tile) WithWidth(width float64) tile {
	t.width = width
	return t
}

// View implements tea.Model. While unmeasured only the status line is shown.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	solution, ok := m.controller.Solution()
	if !ok {
		return statusStyle.Render("measuring container width...")
	}

	var b strings.Builder
	if m.title != "" {
		b.WriteString(titleStyle.Render(m.title))
		b.WriteString("\n")
	}
	if grid := m.renderGrid(solution); grid != "" {
		b.WriteString(grid)
		b.WriteString("\n")
	}
	b.WriteString(statusStyle.Render(m.status(solution)))
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m Model) status(solution fluidgrid.Solution) string {
	return fmt.Sprintf("%d columns  item %.2fpx  gap %gpx  %d items  container %gpx",
		solution.Columns, solution.ItemWidth, m.Gap(), m.items, m.controller.Width())
}

func (m Model) renderGrid(solution fluidgrid.Solution) string {
	items := make([]tile, m.items)
	for i := range items {
		items[i] = tile{label: fmt.Sprintf("item %d", i+1)}
	}
	slots := fluidgrid.Arrange(items, solution, m.Gap())
	if len(slots) == 0 {
		return ""
	}

	gapCells := max(0, int(math.Round(m.Gap()/m.cellWidth)))
	spacer := strings.Repeat(" ", gapCells)

	var rows []string
	var row []string
	for _, slot := range slots {
		if slot.Column == 0 && len(row) > 0 {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row = row[:0]
		}
		if slot.Column > 0 && gapCells > 0 {
			row = append(row, spacer)
		}
		row = append(row, m.renderTile(slot.Item, slot.Index))
	}
	rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))

	sep := strings.Repeat("\n", max(0, gapCells/2))
	return strings.Join(rows, "\n"+sep)
}

// TileCells converts an item width to a whole number of terminal columns,
// border included. A tile is never narrower than its border and one cell.
func TileCells(itemWidth, cellWidth float64) int {
	if cellWidth <= 0 {
		cellWidth = DefaultCellWidth
	}
	return max(3, int(itemWidth/cellWidth))
}

func (m Model) renderTile(t tile, index int) string {
	cells := TileCells(t.width, m.cellWidth)
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Department(index).Hex())).
		Width(cells - 2).
		MaxWidth(cells)
	return style.Render(t.label)
}
