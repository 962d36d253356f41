package widgets

import (
	"github.com/freshcart/gridkit/pkg/core"
	"github.com/freshcart/gridkit/pkg/graphics"
	"github.com/freshcart/gridkit/pkg/layout"
)

// LayoutObserver reports the rectangle it was laid out at.
//
// The observer fills the incoming max width and passes that width to its
// child as a tight constraint. OnLayout fires at the end of every layout pass
// in which the rectangle changed. An unbounded incoming width is reported as
// zero, which callers treat as "not measured".
//
// When the observer is attached to a pipeline, OnLayout runs after the layout
// flush completes. Callers that want to rebuild in response still schedule it
// with SetState; the rebuild lands in the next frame.
type LayoutObserver struct {
	core.RenderObjectBase
	OnLayout func(rect graphics.Rect)
	Child    core.Widget
}

func (o LayoutObserver) ChildWidget() core.Widget {
	return o.Child
}

func (o LayoutObserver) CreateRenderObject(ctx core.BuildContext) layout.RenderObject {
	r := &renderLayoutObserver{onLayout: o.OnLayout}
	r.SetSelf(r)
	return r
}

func (o LayoutObserver) UpdateRenderObject(ctx core.BuildContext, renderObject layout.RenderObject) {
	if r, ok := renderObject.(*renderLayoutObserver); ok {
		r.onLayout = o.OnLayout
	}
}

type renderLayoutObserver struct {
	layout.RenderBoxBase
	child    layout.RenderBox
	onLayout func(graphics.Rect)
	reported graphics.Rect
	hasRect  bool
}

func (r *renderLayoutObserver) SetChild(child layout.RenderObject) {
	layout.SetParentOnChild(r.child, nil)
	r.child = layout.AsRenderBox(child)
	layout.SetParentOnChild(r.child, r)
	if r.child != nil {
		r.child.SetParentData(&layout.BoxParentData{})
	}
}

func (r *renderLayoutObserver) Child() layout.RenderObject {
	return r.child
}

func (r *renderLayoutObserver) VisitChildren(visitor func(layout.RenderObject)) {
	if r.child != nil {
		visitor(r.child)
	}
}

func (r *renderLayoutObserver) PerformLayout() {
	constraints := r.Constraints()
	width := 0.0
	if constraints.HasBoundedWidth() {
		width = constraints.MaxWidth
	}

	height := 0.0
	if r.child != nil && width > 0 {
		r.child.Layout(layout.Constraints{
			MinWidth:  width,
			MaxWidth:  width,
			MaxHeight: constraints.MaxHeight,
		}, true)
		height = r.child.Size().Height
	}
	r.SetSize(constraints.Constrain(graphics.Size{Width: width, Height: height}))

	rect := graphics.RectFromLTWH(0, 0, width, r.Size().Height)
	if r.hasRect && rect == r.reported {
		return
	}
	r.reported = rect
	r.hasRect = true
	if r.onLayout == nil {
		return
	}
	report := r.onLayout
	if owner := r.Owner(); owner != nil {
		owner.AfterLayout(func() { report(rect) })
		return
	}
	report(rect)
}

func (r *renderLayoutObserver) Paint(ctx *layout.PaintContext) {
	if r.child != nil {
		ctx.PaintChild(r.child, graphics.Offset{})
	}
}

func (r *renderLayoutObserver) HitTest(position graphics.Offset, result *layout.HitTestResult) bool {
	if !layout.WithinBounds(position, r.Size()) {
		return false
	}
	if r.child != nil {
		r.child.HitTest(position, result)
	}
	result.Add(r)
	return true
}
