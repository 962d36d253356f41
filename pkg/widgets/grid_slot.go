package widgets

import (
	"github.com/freshcart/gridkit/pkg/core"
	"github.com/freshcart/gridkit/pkg/graphics"
	"github.com/freshcart/gridkit/pkg/layout"
)

// GridSlot is the fixed-width wrapper placed around each grid child.
//
// The child is laid out at exactly Width and its paint is clipped to the slot,
// so a child that draws wider than the slot cannot bleed into its neighbours.
type GridSlot struct {
	core.RenderObjectBase
	Width float64
	Child core.Widget
}

// Key forwards the child's key, so a keyed item keeps its slot element and
// state when a resize moves it to another row.
func (s GridSlot) Key() any {
	if s.Child == nil {
		return nil
	}
	return s.Child.Key()
}

func (s GridSlot) ChildWidget() core.Widget {
	return s.Child
}

func (s GridSlot) CreateRenderObject(ctx core.BuildContext) layout.RenderObject {
	r := &renderGridSlot{width: s.Width}
	r.SetSelf(r)
	return r
}

func (s GridSlot) UpdateRenderObject(ctx core.BuildContext, renderObject layout.RenderObject) {
	if r, ok := renderObject.(*renderGridSlot); ok && r.width != s.Width {
		r.width = s.Width
		r.MarkNeedsLayout()
		r.MarkNeedsPaint()
	}
}

type renderGridSlot struct {
	layout.RenderBoxBase
	child layout.RenderBox
	width float64
}

func (r *renderGridSlot) SetChild(child layout.RenderObject) {
	layout.SetParentOnChild(r.child, nil)
	r.child = layout.AsRenderBox(child)
	layout.SetParentOnChild(r.child, r)
	if r.child != nil {
		r.child.SetParentData(&layout.BoxParentData{})
	}
}

func (r *renderGridSlot) Child() layout.RenderObject {
	return r.child
}

func (r *renderGridSlot) VisitChildren(visitor func(layout.RenderObject)) {
	if r.child != nil {
		visitor(r.child)
	}
}

func (r *renderGridSlot) PerformLayout() {
	constraints := r.Constraints()
	height := 0.0
	if r.child != nil {
		r.child.Layout(layout.Constraints{
			MinWidth:  r.width,
			MaxWidth:  r.width,
			MaxHeight: constraints.MaxHeight,
		}, true)
		height = r.child.Size().Height
	}
	r.SetSize(constraints.Constrain(graphics.Size{Width: r.width, Height: height}))
}

func (r *renderGridSlot) DebugProperties() map[string]any {
	return map[string]any{"width": r.width}
}

func (r *renderGridSlot) Paint(ctx *layout.PaintContext) {
	if r.child == nil {
		return
	}
	size := r.Size()
	ctx.PaintChildClipped(r.child, graphics.Offset{}, graphics.RectFromLTWH(0, 0, size.Width, size.Height))
}

func (r *renderGridSlot) HitTest(position graphics.Offset, result *layout.HitTestResult) bool {
	if !layout.WithinBounds(position, r.Size()) {
		return false
	}
	if r.child != nil {
		r.child.HitTest(position, result)
	}
	result.Add(r)
	return true
}
