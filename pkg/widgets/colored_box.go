package widgets

import (
	"github.com/freshcart/gridkit/pkg/core"
	"github.com/freshcart/gridkit/pkg/graphics"
	"github.com/freshcart/gridkit/pkg/layout"
)

// ColoredBox fills its area with Color and paints its child on top.
// Without a child it takes the smallest size the constraints allow.
type ColoredBox struct {
	core.RenderObjectBase
	Color graphics.Color
	Child core.Widget
}

func (c ColoredBox) ChildWidget() core.Widget {
	return c.Child
}

func (c ColoredBox) CreateRenderObject(ctx core.BuildContext) layout.RenderObject {
	box := &renderColoredBox{color: c.Color}
	box.SetSelf(box)
	return box
}

func (c ColoredBox) UpdateRenderObject(ctx core.BuildContext, renderObject layout.RenderObject) {
	if box, ok := renderObject.(*renderColoredBox); ok && box.color != c.Color {
		box.color = c.Color
		box.MarkNeedsPaint()
	}
}

type renderColoredBox struct {
	layout.RenderBoxBase
	child layout.RenderBox
	color graphics.Color
}

func (r *renderColoredBox) SetChild(child layout.RenderObject) {
	layout.SetParentOnChild(r.child, nil)
	r.child = layout.AsRenderBox(child)
	layout.SetParentOnChild(r.child, r)
}

func (r *renderColoredBox) Child() layout.RenderObject {
	return r.child
}

func (r *renderColoredBox) VisitChildren(visitor func(layout.RenderObject)) {
	if r.child != nil {
		visitor(r.child)
	}
}

func (r *renderColoredBox) PerformLayout() {
	constraints := r.Constraints()
	if r.child == nil {
		r.SetSize(constraints.Constrain(graphics.Size{}))
		return
	}
	r.child.Layout(constraints, true)
	r.child.SetParentData(&layout.BoxParentData{})
	r.SetSize(constraints.Constrain(r.child.Size()))
}

func (r *renderColoredBox) Paint(ctx *layout.PaintContext) {
	size := r.Size()
	ctx.Canvas.DrawRect(graphics.RectFromLTWH(0, 0, size.Width, size.Height), graphics.Paint{Color: r.color})
	if r.child != nil {
		ctx.PaintChild(r.child, graphics.Offset{})
	}
}

func (r *renderColoredBox) HitTest(position graphics.Offset, result *layout.HitTestResult) bool {
	if !layout.WithinBounds(position, r.Size()) {
		return false
	}
	if r.child != nil {
		r.child.HitTest(position, result)
	}
	result.Add(r)
	return true
}
