package fluidgrid

import "math"

// Solution is the column count and per-item width for one container width.
type Solution struct {
	Columns   int     `json:"columns"`
	ItemWidth float64 `json:"itemWidth"`
}

// Sentinel is the placeholder solution for an unmeasured container.
// It must never be used to render content.
func Sentinel(cfg Config) Solution {
	return Solution{Columns: 2, ItemWidth: cfg.MinItemWidth}
}

// Solve computes the grid layout for containerWidth.
//
// Items fill the row edge to edge at the largest column count where they are
// at least MinItemWidth wide. Columns are then dropped while items exceed
// MaxItemWidth. A single column is capped at MaxItemWidth rather than
// stretched. A non-positive width yields the Sentinel. No rounding is applied.
func Solve(containerWidth float64, cfg Config) Solution {
	solution, _ := solve(containerWidth, cfg)
	return solution
}

// Measurable reports whether width is a usable container measurement: a
// finite width above zero. Anything else means the container is hidden or
// not laid out yet.
func Measurable(width float64) bool {
	return width > 0 && !math.IsInf(width, 1)
}

// MaxColumns bounds the column count. A container wide enough to fit more
// columns keeps MaxColumns and caps its items at MaxItemWidth, the same way a
// single column is capped, so the row no longer spans the container.
const MaxColumns = math.MaxInt32

// solve is Solve that also reports how many columns the max-width loop dropped.
//
// Narrowing by one column only widens the items, so once the first fit is
// wider than MaxItemWidth every smaller count is too and the loop ends at a
// single column. solve takes that step directly.
func solve(containerWidth float64, cfg Config) (Solution, int) {
	if !(containerWidth > 0) {
		return Sentinel(cfg), 0
	}
	gap := cfg.Gap

	fit := 1.0
	if step := cfg.MinItemWidth + gap; step > 0 {
		fit = math.Floor((containerWidth + gap) / step)
	}
	if !(fit >= 1) {
		fit = 1
	}
	if fit > MaxColumns {
		itemWidth := math.Min(fill(containerWidth, MaxColumns, gap), cfg.MaxItemWidth)
		return Solution{Columns: MaxColumns, ItemWidth: itemWidth}, 0
	}
	columns := int(fit)
	itemWidth := fill(containerWidth, columns, gap)

	reductions := 0
	if itemWidth > cfg.MaxItemWidth && columns > 1 {
		reductions = columns - 1
		columns = 1
	}

	if columns == 1 {
		itemWidth = math.Min(containerWidth, cfg.MaxItemWidth)
	}
	return Solution{Columns: columns, ItemWidth: itemWidth}, reductions
}

// fill returns the item width that fills containerWidth exactly at columns.
func fill(containerWidth float64, columns int, gap float64) float64 {
	return (containerWidth - float64(columns-1)*gap) / float64(columns)
}

// RowWidth returns the width occupied by one full row.
func (s Solution) RowWidth(gap float64) float64 {
	if s.Columns <= 0 {
		return 0
	}
	return float64(s.Columns)*s.ItemWidth + float64(s.Columns-1)*gap
}

// Rows returns how many rows n items occupy.
func (s Solution) Rows(n int) int {
	if n <= 0 || s.Columns <= 0 {
		return 0
	}
	return (n + s.Columns - 1) / s.Columns
}
