package core

import (
	"reflect"
	"time"

	"github.com/freshcart/gridkit/pkg/errors"
	"github.com/freshcart/gridkit/pkg/layout"
)

// elementBase holds the tree links every element kind shares.
type elementBase struct {
	self   Element
	widget Widget
	owner  *BuildOwner
	parent Element
	host   *RenderObjectElement // nearest ancestor that owns a render object
	depth  int
	slot   any

	dirty   bool
	mounted bool
}

func (e *elementBase) Widget() Widget { return e.widget }

func (e *elementBase) Depth() int { return e.depth }

// MarkNeedsBuild queues the element for the next build flush. Repeated marks
// before the flush are free.
func (e *elementBase) MarkNeedsBuild() {
	if e.dirty {
		return
	}
	e.dirty = true
	if e.owner != nil && e.self != nil {
		e.owner.ScheduleBuild(e.self)
	}
}

// FindAncestor returns the closest ancestor accepted by predicate.
func (e *elementBase) FindAncestor(predicate func(Element) bool) Element {
	for cur := e.parent; cur != nil; {
		if predicate(cur) {
			return cur
		}
		up, ok := cur.(interface{ parentElement() Element })
		if !ok {
			return nil
		}
		cur = up.parentElement()
	}
	return nil
}

func (e *elementBase) parentElement() Element      { return e.parent }
func (e *elementBase) setSelf(self Element)        { e.self = self }
func (e *elementBase) setWidget(widget Widget)     { e.widget = widget }
func (e *elementBase) setBuildOwner(o *BuildOwner) { e.owner = o }
func (e *elementBase) isMounted() bool             { return e.mounted }

// attach links the element under parent and resolves its render host.
func (e *elementBase) attach(parent Element, slot any) {
	e.parent = parent
	e.slot = slot
	e.depth = 0
	if parent != nil {
		e.depth = parent.Depth() + 1
	}
	if found := e.FindAncestor(isRenderHost); found != nil {
		e.host = found.(*RenderObjectElement)
	}
	e.mounted = true
}

// takeDirty consumes the dirty flag. It reports false for clean or
// unmounted elements.
func (e *elementBase) takeDirty() bool {
	if !e.dirty || !e.mounted {
		return false
	}
	e.dirty = false
	return true
}

func isRenderHost(el Element) bool {
	_, ok := el.(*RenderObjectElement)
	return ok
}

// guardedBuild runs build and turns a panic into a reported BuildError and
// an empty subtree, so one broken tile does not take the grid down.
func (e *elementBase) guardedBuild(build func() Widget) (out Widget) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		errors.ReportBuildError(&errors.BuildError{
			Widget:     reflect.TypeOf(e.widget).String(),
			Element:    reflect.TypeOf(e.self).String(),
			Recovered:  r,
			StackTrace: errors.CaptureStack(),
			Timestamp:  time.Now(),
		})
		out = nil
	}()
	return build()
}

// componentElement is the part of stateless and stateful elements that owns
// a single built child and forwards that child's render object.
type componentElement struct {
	elementBase
	child Element
}

func (e *componentElement) rebuild(build func() Widget) {
	before := renderObjectOf(e.child)
	e.child = updateChild(e.child, e.guardedBuild(build), e.self, e.owner)
	if renderObjectOf(e.child) != before && e.host != nil {
		e.host.childRenderObjectChanged()
	}
}

func (e *componentElement) detach() {
	e.mounted = false
	if e.child != nil {
		e.child.Unmount()
		e.child = nil
	}
}

func (e *componentElement) VisitChildren(visitor func(Element) bool) {
	if e.child != nil {
		visitor(e.child)
	}
}

// RenderObject returns the render object of the nearest render descendant.
func (e *componentElement) RenderObject() layout.RenderObject {
	return renderObjectOf(e.child)
}

// StatelessElement hosts a StatelessWidget.
type StatelessElement struct {
	componentElement
}

// NewStatelessElement returns an element for a stateless widget. The widget
// and owner are attached by inflation.
func NewStatelessElement() *StatelessElement {
	el := &StatelessElement{}
	el.setSelf(el)
	return el
}

func (e *StatelessElement) Mount(parent Element, slot any) {
	e.attach(parent, slot)
	e.dirty = true
	e.RebuildIfNeeded()
}

func (e *StatelessElement) Update(next Widget) {
	e.widget = next
	e.MarkNeedsBuild()
}

func (e *StatelessElement) Unmount() { e.detach() }

func (e *StatelessElement) RebuildIfNeeded() {
	if !e.takeDirty() {
		return
	}
	w := e.widget.(StatelessWidget)
	e.rebuild(func() Widget { return w.Build(e) })
}

// StatefulElement hosts a StatefulWidget together with its State.
type StatefulElement struct {
	componentElement
	state State
}

// NewStatefulElement returns an element for a stateful widget.
func NewStatefulElement() *StatefulElement {
	el := &StatefulElement{}
	el.setSelf(el)
	return el
}

// State returns the state created when the element was mounted.
func (e *StatefulElement) State() State { return e.state }

func (e *StatefulElement) Mount(parent Element, slot any) {
	e.attach(parent, slot)
	e.state = e.widget.(StatefulWidget).CreateState()
	if s, ok := e.state.(interface{ setElement(*StatefulElement) }); ok {
		s.setElement(e)
	}
	e.state.InitState()
	e.dirty = true
	e.RebuildIfNeeded()
}

func (e *StatefulElement) Update(next Widget) {
	prev := e.widget.(StatefulWidget)
	e.widget = next
	e.state.DidUpdateWidget(prev)
	e.MarkNeedsBuild()
}

// Unmount tears the subtree down first and then disposes the state, which
// runs everything registered with OnDispose.
func (e *StatefulElement) Unmount() {
	e.detach()
	if e.state != nil {
		e.state.Dispose()
	}
}

func (e *StatefulElement) RebuildIfNeeded() {
	if e.takeDirty() {
		e.rebuild(func() Widget { return e.state.Build(e) })
	}
}

// MountRoot inflates widget as the root of a tree owned by owner.
func MountRoot(widget Widget, owner *BuildOwner) Element {
	el := inflateWidget(widget, owner)
	if el != nil {
		el.Mount(nil, nil)
	}
	return el
}

func renderObjectOf(el Element) layout.RenderObject {
	if p, ok := el.(interface{ RenderObject() layout.RenderObject }); ok {
		return p.RenderObject()
	}
	return nil
}

// updateChild brings existing in line with widget: it updates in place when
// the widget is compatible, replaces the element otherwise and unmounts it
// when widget is nil.
func updateChild(existing Element, widget Widget, parent Element, owner *BuildOwner) Element {
	switch {
	case widget == nil:
		if existing != nil {
			existing.Unmount()
		}
		return nil
	case existing != nil && canUpdateWidget(existing.Widget(), widget):
		existing.Update(widget)
		return existing
	case existing != nil:
		existing.Unmount()
	}
	el := inflateWidget(widget, owner)
	el.Mount(parent, nil)
	return el
}

// canUpdateWidget reports whether next can reuse the element built for
// existing: same concrete type and equal keys.
func canUpdateWidget(existing, next Widget) bool {
	if existing == nil || next == nil {
		return false
	}
	return reflect.TypeOf(existing) == reflect.TypeOf(next) &&
		reflect.DeepEqual(existing.Key(), next.Key())
}

func inflateWidget(widget Widget, owner *BuildOwner) Element {
	if widget == nil {
		return nil
	}
	el := widget.CreateElement()
	if s, ok := el.(interface {
		setWidget(Widget)
		setBuildOwner(*BuildOwner)
		setSelf(Element)
	}); ok {
		s.setWidget(widget)
		s.setBuildOwner(owner)
		s.setSelf(el)
	}
	return el
}
