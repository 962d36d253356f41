package layout

import "github.com/freshcart/gridkit/pkg/graphics"

// RenderObject is a node of the render tree. It sizes itself under
// constraints, paints into a PaintContext and answers hit tests.
type RenderObject interface {
	Layout(constraints Constraints, parentUsesSize bool)
	Size() graphics.Size
	Paint(ctx *PaintContext)
	HitTest(position graphics.Offset, result *HitTestResult) bool
	ParentData() any
	SetParentData(data any)
	MarkNeedsLayout()
	MarkNeedsPaint()
	SetOwner(owner *PipelineOwner)
}

// RenderBox is a RenderObject laid out in the box model. Every render object
// in gridkit is a box; the separate name marks call sites that rely on it.
type RenderBox interface {
	RenderObject
}

// ChildVisitor is implemented by render objects that have children.
type ChildVisitor interface {
	VisitChildren(visitor func(RenderObject))
}

// BoxParentData is the slot a parent writes a child's paint offset into.
type BoxParentData struct {
	Offset graphics.Offset
}

type dirtyFlags uint8

const (
	dirtyLayout dirtyFlags = 1 << iota
	dirtyPaint
)

// RenderBoxBase carries the bookkeeping shared by every render box: tree
// links, the cached relayout boundary, last constraints and dirty flags.
//
// Embedders must call SetSelf with the concrete object right after
// construction and implement PerformLayout.
type RenderBoxBase struct {
	self     RenderObject
	parent   RenderObject
	owner    *PipelineOwner
	boundary RenderObject
	depth    int

	size        graphics.Size
	constraints Constraints
	parentData  any
	dirty       dirtyFlags
}

// SetSelf registers the concrete render object and marks it fully dirty.
func (r *RenderBoxBase) SetSelf(self RenderObject) {
	r.self = self
	r.dirty = dirtyLayout | dirtyPaint
}

// Self returns the object registered with SetSelf.
func (r *RenderBoxBase) Self() RenderObject { return r.self }

// SetOwner attaches the box to a pipeline.
func (r *RenderBoxBase) SetOwner(owner *PipelineOwner) { r.owner = owner }

// Owner returns the pipeline the box schedules on, or nil when detached.
func (r *RenderBoxBase) Owner() *PipelineOwner { return r.owner }

func (r *RenderBoxBase) Size() graphics.Size { return r.size }

// SetSize stores the laid out size. A new size needs a repaint.
func (r *RenderBoxBase) SetSize(size graphics.Size) {
	if r.size != size {
		r.size = size
		r.MarkNeedsPaint()
	}
}

func (r *RenderBoxBase) ParentData() any { return r.parentData }

// SetParentData replaces the parent data. Moving a child repaints its parent.
func (r *RenderBoxBase) SetParentData(data any) {
	if next, ok := data.(*BoxParentData); ok && r.parent != nil {
		prev, ok := r.parentData.(*BoxParentData)
		if !ok || prev.Offset != next.Offset {
			r.parent.MarkNeedsPaint()
		}
	}
	r.parentData = data
}

func (r *RenderBoxBase) Parent() RenderObject { return r.parent }

// SetParent links the box under parent, recomputing its depth and dropping
// layout state that belonged to the previous position in the tree.
func (r *RenderBoxBase) SetParent(parent RenderObject) {
	prev := r.parent
	if prev == parent {
		return
	}
	r.parent = parent
	r.depth = 0
	if parent != nil {
		r.depth = depthOf(parent) + 1
	}
	r.boundary = nil
	r.constraints = Constraints{}
	r.dirty = dirtyLayout | dirtyPaint

	for _, p := range [...]RenderObject{prev, parent} {
		if p != nil {
			p.MarkNeedsPaint()
		}
	}
}

// Depth is the distance from the root, which has depth 0.
func (r *RenderBoxBase) Depth() int { return r.depth }

// RelayoutBoundary returns the boundary found during the last layout.
func (r *RenderBoxBase) RelayoutBoundary() RenderObject { return r.boundary }

func (r *RenderBoxBase) NeedsLayout() bool { return r.dirty&dirtyLayout != 0 }

func (r *RenderBoxBase) NeedsPaint() bool { return r.dirty&dirtyPaint != 0 }

func (r *RenderBoxBase) ClearNeedsPaint() { r.dirty &^= dirtyPaint }

// Constraints returns the constraints from the last layout.
func (r *RenderBoxBase) Constraints() Constraints { return r.constraints }

// MarkNeedsLayout flags the box and every ancestor up to its relayout
// boundary. The boundary, or the root when none is known, is queued on the
// pipeline.
func (r *RenderBoxBase) MarkNeedsLayout() {
	if r.NeedsLayout() {
		return
	}
	r.dirty |= dirtyLayout
	if r.owner == nil || r.self == nil {
		return
	}
	if r.parent == nil || r.boundary == r.self {
		r.owner.ScheduleLayout(r.self)
		return
	}
	r.parent.MarkNeedsLayout()
}

// MarkNeedsPaint flags the box and its ancestors. The root asks the pipeline
// for a paint pass.
func (r *RenderBoxBase) MarkNeedsPaint() {
	if r.NeedsPaint() {
		return
	}
	r.dirty |= dirtyPaint
	switch {
	case r.parent != nil:
		r.parent.MarkNeedsPaint()
	case r.owner != nil && r.self != nil:
		r.owner.SchedulePaint(r.self)
	}
}

// Layout records the relayout boundary and calls PerformLayout unless the
// box is clean and the constraints did not change.
//
// The box is its own boundary when it is the root, receives tight
// constraints or its parent ignores its size. Otherwise it inherits the
// parent's boundary.
func (r *RenderBoxBase) Layout(constraints Constraints, parentUsesSize bool) {
	switch {
	case r.parent == nil, !parentUsesSize, constraints.IsTight():
		r.boundary = r.self
	default:
		if p, ok := r.parent.(interface{ RelayoutBoundary() RenderObject }); ok {
			r.boundary = p.RelayoutBoundary()
		}
	}

	if !r.NeedsLayout() && constraints == r.constraints {
		return
	}
	r.constraints = constraints
	r.dirty &^= dirtyLayout
	if p, ok := r.self.(interface{ PerformLayout() }); ok {
		p.PerformLayout()
	}
}

// SetParentOnChild reparents child under parent. When the parent actually
// changes, both the old and the new parent are marked for layout.
func SetParentOnChild(child, parent RenderObject) {
	if child == nil {
		return
	}
	node, ok := child.(interface {
		Parent() RenderObject
		SetParent(RenderObject)
	})
	if !ok {
		return
	}
	prev := node.Parent()
	if prev == parent {
		return
	}
	node.SetParent(parent)
	for _, p := range [...]RenderObject{prev, parent} {
		if p != nil {
			p.MarkNeedsLayout()
		}
	}
}

// AsRenderBox narrows child to a RenderBox, returning nil for nil or a
// non-box object.
func AsRenderBox(child RenderObject) RenderBox {
	box, _ := child.(RenderBox)
	return box
}

// WithinBounds reports whether position lies inside a box of the given size,
// edges included.
func WithinBounds(position graphics.Offset, size graphics.Size) bool {
	return position.X >= 0 && position.Y >= 0 &&
		position.X <= size.Width && position.Y <= size.Height
}
