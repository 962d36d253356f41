package layout

import "slices"

// PipelineOwner schedules layout and paint for one render tree.
//
// Render objects never lay themselves out directly. MarkNeedsLayout walks up
// to the nearest relayout boundary and queues that boundary here. A frame
// then calls FlushLayoutForRoot, which lays out the root and every queued
// boundary that is still dirty, parents before children.
//
// Callbacks registered with AfterLayout run once the flush has finished, so
// a width observer can report the measured container without touching the
// tree while layout is in progress.
type PipelineOwner struct {
	boundaries  dirtyQueue
	painted     bool
	paintDue    bool
	afterLayout []func()
	passes      int
}

// dirtyQueue is a de-duplicated list of relayout boundaries.
type dirtyQueue struct {
	items  []RenderObject
	queued map[RenderObject]struct{}
}

func (q *dirtyQueue) push(obj RenderObject) bool {
	if _, ok := q.queued[obj]; ok {
		return false
	}
	if q.queued == nil {
		q.queued = make(map[RenderObject]struct{})
	}
	q.queued[obj] = struct{}{}
	q.items = append(q.items, obj)
	return true
}

// drain returns the queued objects shallowest first and empties the queue.
func (q *dirtyQueue) drain() []RenderObject {
	items := q.items
	q.items = nil
	q.queued = nil
	slices.SortStableFunc(items, func(a, b RenderObject) int {
		return depthOf(a) - depthOf(b)
	})
	return items
}

func (q *dirtyQueue) empty() bool {
	return len(q.items) == 0
}

// ScheduleLayout queues a relayout boundary. Queuing also implies a repaint.
func (p *PipelineOwner) ScheduleLayout(object RenderObject) {
	if p.boundaries.push(object) {
		p.paintDue = true
	}
}

// SchedulePaint records that the tree rooted at object must be repainted.
func (p *PipelineOwner) SchedulePaint(object RenderObject) {
	if object != nil {
		p.paintDue = true
	}
}

// AfterLayout registers fn to run when the current or next layout flush
// completes. Callbacks run in registration order, exactly once.
func (p *PipelineOwner) AfterLayout(fn func()) {
	if fn != nil {
		p.afterLayout = append(p.afterLayout, fn)
	}
}

// NeedsLayout reports whether any boundary is waiting for layout.
func (p *PipelineOwner) NeedsLayout() bool {
	return !p.boundaries.empty()
}

// NeedsPaint reports whether a repaint is due.
func (p *PipelineOwner) NeedsPaint() bool {
	return p.paintDue
}

// LayoutPasses returns how many flushes actually ran layout.
func (p *PipelineOwner) LayoutPasses() int {
	return p.passes
}

// FlushLayoutForRoot lays out root under constraints, then every boundary
// still marked dirty, then runs the AfterLayout callbacks.
//
// A frame calls it between the build flush and the paint pass. It does
// nothing when no layout was scheduled.
func (p *PipelineOwner) FlushLayoutForRoot(root RenderObject, constraints Constraints) {
	if root == nil || p.boundaries.empty() {
		p.runAfterLayout()
		return
	}
	p.passes++
	root.Layout(constraints, false)
	for !p.boundaries.empty() {
		for _, node := range p.boundaries.drain() {
			relayout(node)
		}
	}
	p.runAfterLayout()
}

// runAfterLayout runs pending callbacks. A callback may register further
// callbacks, which run in the same call.
func (p *PipelineOwner) runAfterLayout() {
	for len(p.afterLayout) > 0 {
		pending := p.afterLayout
		p.afterLayout = nil
		for _, fn := range pending {
			fn()
		}
	}
}

// relayout lays a boundary out again with the constraints it last received.
// A parent flushed earlier in the same pass may already have cleaned it.
func relayout(node RenderObject) {
	box, ok := node.(interface {
		NeedsLayout() bool
		Constraints() Constraints
	})
	if !ok || !box.NeedsLayout() {
		return
	}
	node.Layout(box.Constraints(), false)
}

func depthOf(obj RenderObject) int {
	if d, ok := obj.(interface{ Depth() int }); ok {
		return d.Depth()
	}
	return 0
}

// FlushPaint reports whether a paint pass is due and clears the request.
// The caller paints from the root and then calls ClearPaintFlags.
func (p *PipelineOwner) FlushPaint() bool {
	due := p.paintDue || !p.painted
	p.paintDue = false
	p.painted = true
	return due
}

// ClearPaintFlags walks the subtree under root and marks every node painted.
func ClearPaintFlags(root RenderObject) {
	if root == nil {
		return
	}
	if c, ok := root.(interface{ ClearNeedsPaint() }); ok {
		c.ClearNeedsPaint()
	}
	if v, ok := root.(ChildVisitor); ok {
		v.VisitChildren(ClearPaintFlags)
	}
}
