package core

import "github.com/freshcart/gridkit/pkg/layout"

// Widget is an immutable description of part of the UI.
type Widget interface {
	CreateElement() Element
	// Key identifies the widget among its siblings. A comparable non-nil key
	// lets the element follow the widget when siblings are reordered; nil
	// keys match by position.
	Key() any
}

// BuildContext is the handle a widget receives while building.
type BuildContext interface {
	Widget() Widget
	FindAncestor(predicate func(Element) bool) Element
}

// Element is a widget instantiated at a location in the tree.
type Element interface {
	BuildContext
	Mount(parent Element, slot any)
	Update(newWidget Widget)
	Unmount()
	MarkNeedsBuild()
	RebuildIfNeeded()
	VisitChildren(visitor func(Element) bool)
	Depth() int
}

// StatelessWidget builds its subtree purely from its configuration.
type StatelessWidget interface {
	Widget
	Build(ctx BuildContext) Widget
}

// StatefulWidget owns a State that persists across rebuilds.
type StatefulWidget interface {
	Widget
	CreateState() State
}

// State is the mutable half of a StatefulWidget.
type State interface {
	InitState()
	Build(ctx BuildContext) Widget
	SetState(fn func())
	Dispose()
	DidUpdateWidget(oldWidget StatefulWidget)
}

// RenderObjectWidget creates a render object directly.
type RenderObjectWidget interface {
	Widget
	CreateRenderObject(ctx BuildContext) layout.RenderObject
	UpdateRenderObject(ctx BuildContext, renderObject layout.RenderObject)
}

// SingleChildWidget is a RenderObjectWidget with at most one child.
type SingleChildWidget interface {
	ChildWidget() Widget
}

// MultiChildWidget is a RenderObjectWidget with an ordered list of children.
type MultiChildWidget interface {
	ChildrenWidgets() []Widget
}

// Disposable is implemented by controllers whose lifetime follows a State.
type Disposable interface {
	Dispose()
}
