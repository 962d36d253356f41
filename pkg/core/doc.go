// Package core provides the widget and element framework interfaces and lifecycle.
//
// Widget is an immutable description of part of the UI. Element is the
// instantiation of a Widget at a particular location in the tree; elements
// manage lifecycle and identity and own the render objects that do layout.
//
// For widgets that need mutable state, embed StateBase in your state struct:
//
//	type gridState struct {
//	    core.StateBase
//	    width float64
//	}
//
//	func (s *gridState) Build(ctx core.BuildContext) core.Widget {
//	    return widgets.SizedBox{Width: s.width}
//	}
//
// SetState runs the mutation and schedules a rebuild for the next frame.
// Resources tied to a state's lifetime are registered with OnDispose or
// UseController and released when the element is unmounted.
package core
