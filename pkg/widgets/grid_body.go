package widgets

import (
	"github.com/freshcart/gridkit/pkg/core"
	"github.com/freshcart/gridkit/pkg/fluidgrid"
	"github.com/freshcart/gridkit/pkg/graphics"
	"github.com/freshcart/gridkit/pkg/layout"
)

// gridBody lays out already-solved slots in row-major order.
type gridBody struct {
	core.RenderObjectBase
	Solution fluidgrid.Solution
	Gap      float64
	Children []core.Widget
}

func (g gridBody) ChildrenWidgets() []core.Widget {
	return g.Children
}

func (g gridBody) CreateRenderObject(ctx core.BuildContext) layout.RenderObject {
	r := &renderFluidGrid{solution: g.Solution, gap: g.Gap}
	r.SetSelf(r)
	return r
}

func (g gridBody) UpdateRenderObject(ctx core.BuildContext, renderObject layout.RenderObject) {
	if r, ok := renderObject.(*renderFluidGrid); ok {
		if r.solution == g.Solution && r.gap == g.Gap {
			return
		}
		r.solution = g.Solution
		r.gap = g.Gap
		r.MarkNeedsLayout()
		r.MarkNeedsPaint()
	}
}

type renderFluidGrid struct {
	layout.RenderBoxBase
	children []layout.RenderBox
	solution fluidgrid.Solution
	gap      float64
}

func (r *renderFluidGrid) SetChildren(children []layout.RenderObject) {
	for _, child := range r.children {
		layout.SetParentOnChild(child, nil)
	}
	r.children = r.children[:0]
	for _, child := range children {
		if box, ok := child.(layout.RenderBox); ok {
			r.children = append(r.children, box)
			layout.SetParentOnChild(box, r)
		}
	}
}

func (r *renderFluidGrid) VisitChildren(visitor func(layout.RenderObject)) {
	for _, child := range r.children {
		visitor(child)
	}
}

func (r *renderFluidGrid) DebugProperties() map[string]any {
	return map[string]any{
		"columns":   r.solution.Columns,
		"itemWidth": r.solution.ItemWidth,
		"gap":       r.gap,
		"rows":      r.solution.Rows(len(r.children)),
	}
}

func (r *renderFluidGrid) PerformLayout() {
	constraints := r.Constraints()
	columns := r.solution.Columns
	itemWidth := r.solution.ItemWidth
	if columns <= 0 || len(r.children) == 0 {
		r.SetSize(constraints.Constrain(graphics.Size{}))
		return
	}

	slotConstraints := layout.TightWidth(itemWidth)
	rowHeights := make([]float64, r.solution.Rows(len(r.children)))
	for i, child := range r.children {
		child.Layout(slotConstraints, true)
		row := i / columns
		rowHeights[row] = max(rowHeights[row], child.Size().Height)
	}

	y := 0.0
	for i, child := range r.children {
		row, column := i/columns, i%columns
		if column == 0 && row > 0 {
			y += rowHeights[row-1] + r.gap
		}
		x := float64(column) * (itemWidth + r.gap)
		child.SetParentData(&layout.BoxParentData{Offset: graphics.Offset{X: x, Y: y}})
	}
	height := y + rowHeights[len(rowHeights)-1]

	width := r.solution.RowWidth(r.gap)
	if constraints.HasBoundedWidth() {
		width = constraints.MaxWidth
	}
	r.SetSize(constraints.Constrain(graphics.Size{Width: width, Height: height}))
}

func (r *renderFluidGrid) Paint(ctx *layout.PaintContext) {
	for _, child := range r.children {
		ctx.PaintChild(child, layout.ChildOffset(child))
	}
}

func (r *renderFluidGrid) HitTest(position graphics.Offset, result *layout.HitTestResult) bool {
	if !layout.WithinBounds(position, r.Size()) {
		return false
	}
	// Children are hit-tested in reverse paint order.
	for i := len(r.children) - 1; i >= 0; i-- {
		child := r.children[i]
		offset := layout.ChildOffset(child)
		local := graphics.Offset{X: position.X - offset.X, Y: position.Y - offset.Y}
		if child.HitTest(local, result) {
			return true
		}
	}
	result.Add(r)
	return true
}
