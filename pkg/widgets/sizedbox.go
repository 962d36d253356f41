package widgets

import (
	"github.com/freshcart/gridkit/pkg/core"
	"github.com/freshcart/gridkit/pkg/graphics"
	"github.com/freshcart/gridkit/pkg/layout"
)

// SizedBox gives its child a fixed Width, Height or both. A zero dimension
// is left to the child. Inside a grid slot the width is already fixed, so
// SizedBox is mostly used for a row's height:
//
//	SizedBox{Height: 48, Child: ColoredBox{Color: theme.Surface}}
//
// SizedBox does not accept an injected width.
type SizedBox struct {
	core.RenderObjectBase
	Width  float64
	Height float64
	Child  core.Widget
}

func (s SizedBox) ChildWidget() core.Widget {
	return s.Child
}

func (s SizedBox) CreateRenderObject(ctx core.BuildContext) layout.RenderObject {
	box := &renderSizedBox{width: s.Width, height: s.Height}
	box.SetSelf(box)
	return box
}

func (s SizedBox) UpdateRenderObject(ctx core.BuildContext, renderObject layout.RenderObject) {
	box, ok := renderObject.(*renderSizedBox)
	if !ok || (box.width == s.Width && box.height == s.Height) {
		return
	}
	box.width = s.Width
	box.height = s.Height
	box.MarkNeedsLayout()
}

type renderSizedBox struct {
	layout.RenderBoxBase
	child  layout.RenderBox
	width  float64
	height float64
}

func (r *renderSizedBox) SetChild(child layout.RenderObject) {
	layout.SetParentOnChild(r.child, nil)
	r.child = layout.AsRenderBox(child)
	layout.SetParentOnChild(r.child, r)
}

func (r *renderSizedBox) Child() layout.RenderObject {
	return r.child
}

func (r *renderSizedBox) VisitChildren(visitor func(layout.RenderObject)) {
	if r.child != nil {
		visitor(r.child)
	}
}

// fixed returns the explicit dimensions clamped to c, with zero for the
// dimensions the child decides.
func (r *renderSizedBox) fixed(c layout.Constraints) graphics.Size {
	clamped := c.Constrain(graphics.Size{Width: r.width, Height: r.height})
	var out graphics.Size
	if r.width > 0 {
		out.Width = clamped.Width
	}
	if r.height > 0 {
		out.Height = clamped.Height
	}
	return out
}

func (r *renderSizedBox) PerformLayout() {
	c := r.Constraints()
	if r.child == nil {
		r.SetSize(c.Constrain(graphics.Size{Width: r.width, Height: r.height}))
		return
	}

	fixed := r.fixed(c)
	inner := c
	if fixed.Width > 0 {
		inner.MinWidth, inner.MaxWidth = fixed.Width, fixed.Width
	}
	if fixed.Height > 0 {
		inner.MinHeight, inner.MaxHeight = fixed.Height, fixed.Height
	}
	r.child.Layout(inner, true)
	r.child.SetParentData(&layout.BoxParentData{})

	size := r.child.Size()
	if fixed.Width > 0 {
		size.Width = fixed.Width
	}
	if fixed.Height > 0 {
		size.Height = fixed.Height
	}
	r.SetSize(c.Constrain(size))
}

func (r *renderSizedBox) Paint(ctx *layout.PaintContext) {
	if r.child != nil {
		ctx.PaintChild(r.child, graphics.Offset{})
	}
}

func (r *renderSizedBox) HitTest(position graphics.Offset, result *layout.HitTestResult) bool {
	if !layout.WithinBounds(position, r.Size()) {
		return false
	}
	if r.child == nil || !r.child.HitTest(position, result) {
		result.Add(r)
	}
	return true
}
