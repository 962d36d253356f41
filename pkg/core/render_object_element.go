package core

import (
	"reflect"

	"github.com/freshcart/gridkit/pkg/layout"
)

// RenderObjectElement hosts a render object and its child elements.
type RenderObjectElement struct {
	elementBase
	renderObject layout.RenderObject
	children     []Element
	reconciling  bool
}

// NewRenderObjectElement returns an element for a render object widget.
func NewRenderObjectElement() *RenderObjectElement {
	el := &RenderObjectElement{}
	el.setSelf(el)
	return el
}

// RenderObject returns the render object this element created at mount.
func (e *RenderObjectElement) RenderObject() layout.RenderObject {
	return e.renderObject
}

func (e *RenderObjectElement) Mount(parent Element, slot any) {
	e.attach(parent, slot)
	e.renderObject = e.widget.(RenderObjectWidget).CreateRenderObject(e)
	if e.owner != nil {
		e.renderObject.SetOwner(e.owner.Pipeline())
	}
	// The render object joins its host before children mount, so their
	// own render objects find a parent to attach to.
	if e.host != nil {
		e.host.adoptRenderChild(e.renderObject)
	}
	e.dirty = true
	e.RebuildIfNeeded()
}

func (e *RenderObjectElement) Update(next Widget) {
	e.widget = next
	e.MarkNeedsBuild()
}

func (e *RenderObjectElement) Unmount() {
	e.mounted = false
	for _, child := range e.children {
		child.Unmount()
	}
	e.children = nil
	if e.host != nil {
		e.host.dropRenderChild(e.renderObject)
		e.host = nil
	}
	if d, ok := e.renderObject.(interface{ Dispose() }); ok {
		d.Dispose()
	}
}

func (e *RenderObjectElement) RebuildIfNeeded() {
	if !e.takeDirty() {
		return
	}
	e.widget.(RenderObjectWidget).UpdateRenderObject(e, e.renderObject)

	switch w := e.widget.(type) {
	case SingleChildWidget:
		var prev Element
		if len(e.children) > 0 {
			prev = e.children[0]
		}
		e.children = e.children[:0]
		if child := updateChild(prev, w.ChildWidget(), e, e.owner); child != nil {
			e.children = append(e.children, child)
		}
	case MultiChildWidget:
		e.reconciling = true
		e.children = e.reconcile(w.ChildrenWidgets())
		e.reconciling = false
		e.syncRenderChildren()
	}
}

// reconcile matches the new child widgets against the current children.
//
// A keyed widget reuses the old element with the same type and key wherever
// it sat before, so a keyed tile keeps its state when it moves to another
// slot. Unkeyed widgets take the unkeyed old elements in order. Old
// elements that find no match are unmounted.
func (e *RenderObjectElement) reconcile(widgets []Widget) []Element {
	keyed := make(map[childKey]Element)
	var unkeyed []Element
	for _, old := range e.children {
		if k, ok := keyOf(old.Widget()); ok {
			if _, dup := keyed[k]; !dup {
				keyed[k] = old
				continue
			}
		}
		unkeyed = append(unkeyed, old)
	}

	out := make([]Element, 0, len(widgets))
	for _, w := range widgets {
		if w == nil {
			continue
		}
		var prev Element
		if k, ok := keyOf(w); ok {
			prev = keyed[k]
			delete(keyed, k)
		} else if len(unkeyed) > 0 {
			prev, unkeyed = unkeyed[0], unkeyed[1:]
		}
		if child := updateChild(prev, w, e, e.owner); child != nil {
			out = append(out, child)
		}
	}

	for _, left := range unkeyed {
		left.Unmount()
	}
	for _, left := range keyed {
		left.Unmount()
	}
	return out
}

// childKey identifies a keyed widget among its siblings.
type childKey struct {
	typ reflect.Type
	key any
}

// keyOf returns the sibling key of w. Keys must be comparable to take part in
// keyed matching; other keys fall back to positional matching.
func keyOf(w Widget) (childKey, bool) {
	k := w.Key()
	if k == nil || !reflect.TypeOf(k).Comparable() {
		return childKey{}, false
	}
	return childKey{typ: reflect.TypeOf(w), key: k}, true
}

func (e *RenderObjectElement) VisitChildren(visitor func(Element) bool) {
	for _, child := range e.children {
		if !visitor(child) {
			return
		}
	}
}

// adoptRenderChild attaches a descendant's render object. Single-child
// render objects take it directly. Multi-child lists are rebuilt as a whole
// by syncRenderChildren once reconciliation is done.
func (e *RenderObjectElement) adoptRenderChild(child layout.RenderObject) {
	if child == nil {
		return
	}
	if single, ok := e.renderObject.(interface{ SetChild(layout.RenderObject) }); ok {
		single.SetChild(child)
		e.renderObject.MarkNeedsLayout()
		return
	}
	if node, ok := child.(interface{ SetParent(layout.RenderObject) }); ok {
		node.SetParent(e.renderObject)
	}
}

func (e *RenderObjectElement) dropRenderChild(child layout.RenderObject) {
	if child == nil {
		return
	}
	if single, ok := e.renderObject.(interface {
		SetChild(layout.RenderObject)
		Child() layout.RenderObject
	}); ok {
		if single.Child() == child {
			single.SetChild(nil)
			e.renderObject.MarkNeedsLayout()
		}
		return
	}
	if node, ok := child.(interface{ SetParent(layout.RenderObject) }); ok {
		node.SetParent(nil)
	}
}

// childRenderObjectChanged runs when a component child starts exposing a
// different render object than before.
func (e *RenderObjectElement) childRenderObjectChanged() {
	if !e.reconciling {
		e.syncRenderChildren()
	}
}

// syncRenderChildren hands a multi-child render object the render objects of
// the current children, in order.
func (e *RenderObjectElement) syncRenderChildren() {
	multi, ok := e.renderObject.(interface{ SetChildren([]layout.RenderObject) })
	if !ok {
		return
	}
	objects := make([]layout.RenderObject, 0, len(e.children))
	for _, child := range e.children {
		if ro := renderObjectOf(child); ro != nil {
			objects = append(objects, ro)
		}
	}
	multi.SetChildren(objects)
	e.renderObject.MarkNeedsLayout()
}
