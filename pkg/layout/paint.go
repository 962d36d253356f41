package layout

import "github.com/freshcart/gridkit/pkg/graphics"

// HitTestResult collects hit test entries in paint order.
type HitTestResult struct {
	Entries []RenderObject
}

// Add inserts a render object into the hit test result list.
func (h *HitTestResult) Add(target RenderObject) {
	h.Entries = append(h.Entries, target)
}

// PaintContext provides the canvas for painting render objects.
type PaintContext struct {
	Canvas graphics.Canvas
}

// PaintChild paints a child render box at the given offset.
func (p *PaintContext) PaintChild(child RenderBox, offset graphics.Offset) {
	if child == nil {
		return
	}
	p.Canvas.Save()
	p.Canvas.Translate(offset.X, offset.Y)
	child.Paint(p)
	p.Canvas.Restore()
}

// PaintChildClipped paints a child at offset with its paint clipped to clip,
// which is given in the child's coordinate space.
func (p *PaintContext) PaintChildClipped(child RenderBox, offset graphics.Offset, clip graphics.Rect) {
	if child == nil {
		return
	}
	p.Canvas.Save()
	p.Canvas.Translate(offset.X, offset.Y)
	p.Canvas.ClipRect(clip)
	child.Paint(p)
	p.Canvas.Restore()
}

// ChildOffset returns the offset a parent stored in the child's BoxParentData.
func ChildOffset(child RenderObject) graphics.Offset {
	if child == nil {
		return graphics.Offset{}
	}
	if data, ok := child.ParentData().(*BoxParentData); ok {
		return data.Offset
	}
	return graphics.Offset{}
}

// Diagnosable is implemented by render objects that expose extra state to
// render tree dumps.
type Diagnosable interface {
	DebugProperties() map[string]any
}
